package telemetry

import (
	"math"
	"testing"
)

func TestComputeShiftStats(t *testing.T) {
	factors := []float64{0.8, 0.9, 1.0, 1.1, 1.2}
	s := ComputeShiftStats("Keplerian Orbit", 0.25, factors)

	if s.Stars != 5 {
		t.Errorf("stars = %d, want 5", s.Stars)
	}
	if math.Abs(s.FactorMean-1.0) > 1e-9 {
		t.Errorf("mean = %v, want 1.0", s.FactorMean)
	}
	if s.FactorStd <= 0 {
		t.Errorf("std = %v, want positive", s.FactorStd)
	}
	if s.Redshifted != 2 || s.Blueshifted != 2 {
		t.Errorf("shift counts = (%d, %d), want (2, 2); factor exactly 1 counts as neither",
			s.Redshifted, s.Blueshifted)
	}
	if s.Model != "Keplerian Orbit" || s.ObserverVelocity != 0.25 {
		t.Errorf("labels not carried: %+v", s)
	}
	if s.FactorP10 > s.FactorP50 || s.FactorP50 > s.FactorP90 {
		t.Errorf("percentiles out of order: p10=%v p50=%v p90=%v",
			s.FactorP10, s.FactorP50, s.FactorP90)
	}
}

func TestComputeShiftStatsEmpty(t *testing.T) {
	s := ComputeShiftStats("Flat Rotation Curve", 0, nil)

	if s.Stars != 0 || s.FactorMean != 0 || s.FactorStd != 0 {
		t.Errorf("empty input should zero the distribution, got %+v", s)
	}
}

func TestComputeShiftStatsSingleStar(t *testing.T) {
	s := ComputeShiftStats("Keplerian Orbit", 0, []float64{1.5})

	if s.FactorMean != 1.5 {
		t.Errorf("mean = %v, want 1.5", s.FactorMean)
	}
	if s.FactorStd != 0 {
		t.Errorf("std for one star = %v, want 0", s.FactorStd)
	}
	if s.Redshifted != 1 {
		t.Errorf("redshifted = %d, want 1", s.Redshifted)
	}
}

func TestCollectorCadence(t *testing.T) {
	c := NewCollector(2.0, 1.0/60.0)

	if c.ShouldFlush(60) {
		t.Error("should not flush before the window elapses")
	}
	if !c.ShouldFlush(120) {
		t.Error("should flush once the window elapses")
	}
}

func TestCollectorMinimumWindow(t *testing.T) {
	// A window shorter than one tick still flushes every tick.
	c := NewCollector(0.001, 1.0/60.0)
	if !c.ShouldFlush(1) {
		t.Error("sub-tick window should flush on the next tick")
	}
}
