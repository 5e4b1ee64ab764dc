package service_test

import (
	"github.com/godilite/shiftlog-server/internal/service"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleSeq(raw ...string) []service.Sample {
	samples := make([]service.Sample, len(raw))
	for i, r := range raw {
		samples[i] = service.Sample{Raw: r}
	}
	return samples
}

func TestSampleValue(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    float64
		present bool
	}{
		{name: "plain number", raw: "49.4", want: 49.4, present: true},
		{name: "integer", raw: "50", want: 50, present: true},
		{name: "zero", raw: "0", want: 0, present: true},
		{name: "surrounding whitespace", raw: " 50.1 ", want: 50.1, present: true},
		{name: "empty", raw: "", present: false},
		{name: "whitespace only", raw: "   ", present: false},
		{name: "not a number", raw: "abc", present: false},
		{name: "partial input", raw: "49.", want: 49, present: true},
		{name: "trailing garbage", raw: "49.4kg", present: false},
		{name: "negative weight", raw: "-5", present: false},
		{name: "NaN literal", raw: "NaN", present: false},
		{name: "infinity", raw: "+Inf", present: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, ok := service.Sample{Raw: tc.raw}.Value()
			assert.Equal(t, tc.present, ok)
			if tc.present {
				assert.Equal(t, tc.want, v)
			}
		})
	}
}

func TestComputeStats(t *testing.T) {
	t.Run("no samples", func(t *testing.T) {
		assert.Equal(t, service.Stats{}, service.ComputeStats(nil))
		assert.Equal(t, service.Stats{}, service.ComputeStats(sampleSeq()))
	})

	t.Run("all samples absent yields zero values not NaN", func(t *testing.T) {
		stats := service.ComputeStats(sampleSeq("", "abc", "  "))
		assert.Equal(t, 0.0, stats.Average)
		assert.Equal(t, 0.0, stats.StdDev)
	})

	t.Run("all samples equal", func(t *testing.T) {
		stats := service.ComputeStats(sampleSeq("50", "50", "50"))
		assert.Equal(t, 50.0, stats.Average)
		assert.Equal(t, 0.0, stats.StdDev)
	})

	t.Run("single sample", func(t *testing.T) {
		stats := service.ComputeStats(sampleSeq("49.9"))
		assert.Equal(t, 49.9, stats.Average)
		assert.Equal(t, 0.0, stats.StdDev)
	})

	t.Run("population standard deviation", func(t *testing.T) {
		// Mean 1.5, deviations ±0.5, variance 0.25 (divided by n).
		stats := service.ComputeStats(sampleSeq("1", "2"))
		assert.Equal(t, 1.5, stats.Average)
		assert.Equal(t, 0.5, stats.StdDev)
	})

	t.Run("malformed samples are skipped", func(t *testing.T) {
		stats := service.ComputeStats(sampleSeq("49.4", "oops", "50.1", ""))
		assert.Equal(t, 49.8, stats.Average)
		assert.Equal(t, 0.35, stats.StdDev)
	})

	t.Run("worked example from the tolerance sheet", func(t *testing.T) {
		// 49.4 and 50.1 present, third sample not yet taken.
		stats := service.ComputeStats(sampleSeq("49.4", "50.1", ""))
		assert.Equal(t, 49.8, stats.Average) // 49.75 rounded to 1 decimal
		assert.Equal(t, 0.35, stats.StdDev)
	})

	t.Run("average rounded to one decimal place", func(t *testing.T) {
		// 49.75 sits exactly on the boundary and rounds away from zero.
		stats := service.ComputeStats(sampleSeq("49.75", "49.75"))
		assert.Equal(t, 49.8, stats.Average)

		stats = service.ComputeStats(sampleSeq("50.04", "50.04"))
		assert.Equal(t, 50.0, stats.Average)
	})
}

func TestToleranceWindow(t *testing.T) {
	w := service.ToleranceWindow{Target: 50, Tolerance: 0.5}

	t.Run("bounds", func(t *testing.T) {
		assert.Equal(t, 49.5, w.Min())
		assert.Equal(t, 50.5, w.Max())
	})

	t.Run("boundaries are inclusive", func(t *testing.T) {
		assert.True(t, w.Contains(49.5))
		assert.True(t, w.Contains(50.5))
		assert.True(t, w.Contains(50.0))
	})

	t.Run("outside", func(t *testing.T) {
		assert.False(t, w.Contains(49.4999))
		assert.False(t, w.Contains(50.5001))
		assert.False(t, w.Contains(0))
	})
}

func TestCheckSample(t *testing.T) {
	w := service.ToleranceWindow{Target: 50, Tolerance: 0.5}

	cases := []struct {
		name string
		raw  string
		want service.RangeStatus
	}{
		{name: "in range", raw: "50.1", want: service.RangeIn},
		{name: "lower boundary in range", raw: "49.5", want: service.RangeIn},
		{name: "upper boundary in range", raw: "50.5", want: service.RangeIn},
		{name: "below window", raw: "49.4", want: service.RangeOut},
		{name: "above window", raw: "50.6", want: service.RangeOut},
		{name: "absent is neutral", raw: "", want: service.RangeNeutral},
		{name: "malformed is neutral", raw: "5o.1", want: service.RangeNeutral},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, service.CheckSample(service.Sample{Raw: tc.raw}, w))
		})
	}
}

func TestIsInRange(t *testing.T) {
	w := service.ToleranceWindow{Target: 50, Tolerance: 0.5}

	assert.True(t, service.IsInRange("50.0", w))
	assert.True(t, service.IsInRange("49.5", w))
	assert.False(t, service.IsInRange("49.4", w))

	// Neutral input is never reported in range.
	assert.False(t, service.IsInRange("", w))
	assert.False(t, service.IsInRange("abc", w))
}

func TestSummarizeOutOfSpec(t *testing.T) {
	w := service.ToleranceWindow{Target: 50, Tolerance: 0.5}

	t.Run("indices are 1-based and ascending", func(t *testing.T) {
		rec := service.ShiftRecord{Spouts: []service.SpoutMeasurement{
			{Samples: sampleSeq("49.4", "50.0", "")},   // out
			{Samples: sampleSeq("", "", "")},           // all absent, excluded
			{Samples: sampleSeq("49.9", "50.1", "50")}, // in
			{Samples: sampleSeq("50.0", "50.6", "")},   // out
		}}

		assert.Equal(t, []int{1, 4}, service.SummarizeOutOfSpec(rec, w))
	})

	t.Run("no spouts out of spec", func(t *testing.T) {
		rec := service.ShiftRecord{Spouts: []service.SpoutMeasurement{
			{Samples: sampleSeq("49.5", "50.5", "")},
			{Samples: sampleSeq("", "", "")},
		}}

		assert.Empty(t, service.SummarizeOutOfSpec(rec, w))
	})

	t.Run("empty record", func(t *testing.T) {
		assert.Empty(t, service.SummarizeOutOfSpec(service.ShiftRecord{}, w))
	})
}

func TestUpdateSample(t *testing.T) {
	t.Run("assignment and recompute are one step", func(t *testing.T) {
		spout := service.SpoutMeasurement{Samples: sampleSeq("49.4", "", "")}

		got := service.UpdateSample(spout, 1, "50.1")

		assert.Equal(t, "50.1", got.Samples[1].Raw)
		assert.Equal(t, 49.8, got.Average)
		assert.Equal(t, 0.35, got.StdDev)
	})

	t.Run("input spout is not mutated", func(t *testing.T) {
		spout := service.SpoutMeasurement{Samples: sampleSeq("49.4", "", "")}

		_ = service.UpdateSample(spout, 0, "51")

		assert.Equal(t, "49.4", spout.Samples[0].Raw)
		assert.Equal(t, 0.0, spout.Average)
	})

	t.Run("idempotent for a repeated identical assignment", func(t *testing.T) {
		spout := service.SpoutMeasurement{Samples: sampleSeq("49.4", "50.1", "")}

		once := service.UpdateSample(spout, 2, "50.0")
		twice := service.UpdateSample(once, 2, "50.0")

		assert.Equal(t, once, twice)
	})

	t.Run("clearing a sample recomputes", func(t *testing.T) {
		spout := service.UpdateSample(service.SpoutMeasurement{Samples: sampleSeq("49.4", "50.1", "")}, 0, "")

		assert.Equal(t, 50.1, spout.Average)
		assert.Equal(t, 0.0, spout.StdDev)
	})

	t.Run("out-of-bounds index returns spout unchanged", func(t *testing.T) {
		spout := service.SpoutMeasurement{Samples: sampleSeq("49.4")}

		assert.Equal(t, spout, service.UpdateSample(spout, -1, "50"))
		assert.Equal(t, spout, service.UpdateSample(spout, 1, "50"))
	})

	t.Run("comment survives the transition", func(t *testing.T) {
		spout := service.SpoutMeasurement{Samples: sampleSeq(""), Comment: "sticky valve"}

		got := service.UpdateSample(spout, 0, "49.9")

		assert.Equal(t, "sticky valve", got.Comment)
	})
}

func TestUpdateShiftSample(t *testing.T) {
	t.Run("targets one spout, leaves the rest alone", func(t *testing.T) {
		rec := service.NewShiftRecord(3, 3)

		got := service.UpdateShiftSample(rec, 1, 0, "49.9")

		assert.Equal(t, "49.9", got.Spouts[1].Samples[0].Raw)
		assert.Equal(t, 49.9, got.Spouts[1].Average)
		assert.Equal(t, rec.Spouts[0], got.Spouts[0])
		assert.Equal(t, rec.Spouts[2], got.Spouts[2])
	})

	t.Run("input record is not mutated", func(t *testing.T) {
		rec := service.NewShiftRecord(2, 3)

		_ = service.UpdateShiftSample(rec, 0, 0, "49.9")

		assert.Equal(t, "", rec.Spouts[0].Samples[0].Raw)
		assert.Equal(t, 0.0, rec.Spouts[0].Average)
	})

	t.Run("out-of-bounds spout index returns record unchanged", func(t *testing.T) {
		rec := service.NewShiftRecord(2, 3)

		assert.Equal(t, rec, service.UpdateShiftSample(rec, 5, 0, "49.9"))
	})
}

func BenchmarkComputeStats(b *testing.B) {
	samples := sampleSeq("49.4", "50.1", "49.9")
	for i := 0; i < b.N; i++ {
		service.ComputeStats(samples)
	}
}

func TestNewShiftRecord(t *testing.T) {
	rec := service.NewShiftRecord(8, 3)

	assert.Len(t, rec.Spouts, 8)
	for _, sp := range rec.Spouts {
		assert.Len(t, sp.Samples, 3)
		assert.Equal(t, 0.0, sp.Average)
		assert.Equal(t, 0.0, sp.StdDev)
	}
	assert.Empty(t, rec.OperatorName)
}
