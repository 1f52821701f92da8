package telemetry

import (
	"github.com/astrofield/redshift/components"
	"github.com/astrofield/redshift/starfield"
)

// Collector emits per-model shift statistics at a fixed tick cadence.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float32

	windowStartTick int32
}

// NewCollector creates a stats collector.
// windowDurationSec: how long each stats window lasts in wall seconds
// dt: seconds per frame tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec float64, dt float32) *Collector {
	ticksPerWindow := int32(windowDurationSec / float64(dt))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the
// window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush samples both populations' Doppler factors at the current observer
// velocity and starts the next window. Returns one record per model.
func (c *Collector) Flush(currentTick int32, field *starfield.Field, observerVel components.Velocity) []ShiftStats {
	records := make([]ShiftStats, 0, 2)
	for _, m := range []components.Model{components.ModelKeplerian, components.ModelFlat} {
		s := ComputeShiftStats(m.String(), float64(observerVel.Z), field.Factors(m, observerVel))
		s.WindowEndTick = currentTick
		s.SimTimeSec = float64(currentTick) * float64(c.dt)
		records = append(records, s)
	}
	c.windowStartTick = currentTick
	return records
}
