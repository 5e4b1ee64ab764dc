package service

import (
	"math"
	"strconv"
	"strings"
)

// Shift names the work period a record belongs to.
type Shift string

const (
	ShiftMorning   Shift = "Morning"
	ShiftAfternoon Shift = "Afternoon"
	ShiftNight     Shift = "Night"
)

// Valid reports whether s is one of the known work periods.
func (s Shift) Valid() bool {
	switch s {
	case ShiftMorning, ShiftAfternoon, ShiftNight:
		return true
	}
	return false
}

// Sample is one raw weight reading exactly as the operator entered it.
// The raw text is kept so partially typed or malformed input never has
// to be rejected: anything that does not parse as a finite non-negative
// number is simply not a measurement yet.
type Sample struct {
	Raw string
}

// Value returns the numeric weight and true when the sample holds a
// finite, non-negative number.
func (s Sample) Value() (float64, bool) {
	raw := strings.TrimSpace(s.Raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	return v, true
}

// Present reports whether the sample holds a usable measurement.
func (s Sample) Present() bool {
	_, ok := s.Value()
	return ok
}

// Stats holds the derived summary for one spout. Average is rounded to
// 1 decimal place, StdDev (population standard deviation) to 2.
type Stats struct {
	Average float64
	StdDev  float64
}

// SpoutMeasurement is the ordered set of samples taken at one spout
// during a shift. Average and StdDev are derived; they are only ever
// written by ComputeStats so they cannot drift from the samples.
type SpoutMeasurement struct {
	Samples []Sample
	Average float64
	StdDev  float64
	Comment string
}

// ShiftRecord is one data-collection session. It is treated as an
// immutable value: transition helpers return a new record and the
// caller owns the mutable reference.
type ShiftRecord struct {
	OperatorName    string
	Shift           Shift
	Date            string
	Time            string
	Spouts          []SpoutMeasurement
	GeneralComments string
}

// NewShiftRecord returns an empty record with the configured number of
// spouts and samples per spout, ready for field-by-field entry.
func NewShiftRecord(spouts, samplesPerSpout int) ShiftRecord {
	sp := make([]SpoutMeasurement, spouts)
	for i := range sp {
		sp[i] = SpoutMeasurement{Samples: make([]Sample, samplesPerSpout)}
	}
	return ShiftRecord{Spouts: sp}
}

// ToleranceWindow is the inclusive acceptable weight range around the
// target fill weight. Global read-only configuration.
type ToleranceWindow struct {
	Target    float64
	Tolerance float64
}

// Min returns the lower inclusive bound of the window.
func (w ToleranceWindow) Min() float64 { return w.Target - w.Tolerance }

// Max returns the upper inclusive bound of the window.
func (w ToleranceWindow) Max() float64 { return w.Target + w.Tolerance }

// Contains reports whether v lies within [Min, Max]. Boundary values
// are in range.
func (w ToleranceWindow) Contains(v float64) bool {
	return v >= w.Min() && v <= w.Max()
}

// RangeStatus classifies a sample against a tolerance window. Absent or
// unparseable samples are neutral: neither in nor out of range, used
// only for display and never counted in an out-of-spec tally.
type RangeStatus int

const (
	RangeNeutral RangeStatus = iota
	RangeIn
	RangeOut
)
