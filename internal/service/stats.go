package service

import "math"

// Derived stats carry a fixed precision, independent of how any caller
// formats them: 1 decimal place for the average, 2 for the standard
// deviation.
const (
	averagePrecision = 1
	stdDevPrecision  = 2
)

// roundEpsilon nudges values sitting a hair below a .5 boundary due to
// binary representation (e.g. the mean of 49.4 and 50.1) onto it, so
// decimal half-up rounding behaves as written. Weights are non-negative
// so the nudge is always upward-safe.
const roundEpsilon = 1e-9

func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p+roundEpsilon) / p
}

// ComputeStats returns the arithmetic mean and population standard
// deviation (variance divided by count, not count-1) over the present
// samples. Absent or malformed samples are skipped; with no present
// samples the result is {0, 0}, never NaN.
func ComputeStats(samples []Sample) Stats {
	values := make([]float64, 0, len(samples))
	for _, s := range samples {
		if v, ok := s.Value(); ok {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return Stats{}
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var sqDiff float64
	for _, v := range values {
		d := v - mean
		sqDiff += d * d
	}
	stdDev := math.Sqrt(sqDiff / float64(len(values)))

	return Stats{
		Average: roundTo(mean, averagePrecision),
		StdDev:  roundTo(stdDev, stdDevPrecision),
	}
}

// CheckSample classifies one sample against the window. Absent input is
// RangeNeutral, never in or out of range.
func CheckSample(s Sample, w ToleranceWindow) RangeStatus {
	v, ok := s.Value()
	if !ok {
		return RangeNeutral
	}
	if w.Contains(v) {
		return RangeIn
	}
	return RangeOut
}

// IsInRange reports whether raw parses as a finite non-negative number
// lying within the window, boundaries inclusive.
func IsInRange(raw string, w ToleranceWindow) bool {
	return CheckSample(Sample{Raw: raw}, w) == RangeIn
}

// SummarizeOutOfSpec returns the 1-based indices, in ascending order, of
// every spout with at least one present sample outside the window. A
// spout with no present samples never appears.
func SummarizeOutOfSpec(rec ShiftRecord, w ToleranceWindow) []int {
	var out []int
	for i, spout := range rec.Spouts {
		for _, s := range spout.Samples {
			if CheckSample(s, w) == RangeOut {
				out = append(out, i+1)
				break
			}
		}
	}
	return out
}

// UpdateSample returns a copy of the spout with the sample at idx
// replaced by the raw input and the derived stats recomputed in the
// same step, so Average and StdDev are never observed stale. An
// out-of-bounds index returns the spout unchanged.
func UpdateSample(spout SpoutMeasurement, idx int, raw string) SpoutMeasurement {
	if idx < 0 || idx >= len(spout.Samples) {
		return spout
	}

	samples := make([]Sample, len(spout.Samples))
	copy(samples, spout.Samples)
	samples[idx] = Sample{Raw: raw}

	stats := ComputeStats(samples)
	return SpoutMeasurement{
		Samples: samples,
		Average: stats.Average,
		StdDev:  stats.StdDev,
		Comment: spout.Comment,
	}
}

// UpdateShiftSample is the record-level transition: it replaces one
// sample of one spout and returns a new record, leaving the input
// untouched.
func UpdateShiftSample(rec ShiftRecord, spoutIdx, sampleIdx int, raw string) ShiftRecord {
	if spoutIdx < 0 || spoutIdx >= len(rec.Spouts) {
		return rec
	}

	spouts := make([]SpoutMeasurement, len(rec.Spouts))
	copy(spouts, rec.Spouts)
	spouts[spoutIdx] = UpdateSample(spouts[spoutIdx], sampleIdx, raw)

	rec.Spouts = spouts
	return rec
}
