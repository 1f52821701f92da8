// Package telemetry aggregates Doppler-shift statistics over the star
// populations.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ShiftStats holds the shift distribution of one population within a
// stats window.
type ShiftStats struct {
	WindowEndTick    int32   `csv:"window_end"`
	SimTimeSec       float64 `csv:"sim_time"`
	Model            string  `csv:"model"`
	ObserverVelocity float64 `csv:"observer_velocity"`

	// Doppler factor distribution
	Stars      int     `csv:"stars"`
	FactorMean float64 `csv:"factor_mean"`
	FactorStd  float64 `csv:"factor_std"`
	FactorP10  float64 `csv:"factor_p10"`
	FactorP50  float64 `csv:"factor_p50"`
	FactorP90  float64 `csv:"factor_p90"`

	// Shift direction counts (factor above / below 1)
	Redshifted  int `csv:"redshifted"`
	Blueshifted int `csv:"blueshifted"`
}

// ComputeShiftStats builds the distribution summary for one population's
// Doppler factors. An empty factor slice yields a zeroed record.
func ComputeShiftStats(model string, observerVelocity float64, factors []float64) ShiftStats {
	s := ShiftStats{
		Model:            model,
		ObserverVelocity: observerVelocity,
		Stars:            len(factors),
	}
	if len(factors) == 0 {
		return s
	}

	s.FactorMean = stat.Mean(factors, nil)
	if len(factors) > 1 {
		s.FactorStd = stat.StdDev(factors, nil)
	}

	sorted := make([]float64, len(factors))
	copy(sorted, factors)
	sort.Float64s(sorted)

	s.FactorP10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	s.FactorP50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	s.FactorP90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)

	for _, f := range factors {
		if f > 1 {
			s.Redshifted++
		} else if f < 1 {
			s.Blueshifted++
		}
	}

	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s ShiftStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.String("model", s.Model),
		slog.Float64("observer_velocity", s.ObserverVelocity),
		slog.Int("stars", s.Stars),
		slog.Float64("factor_mean", s.FactorMean),
		slog.Float64("factor_std", s.FactorStd),
		slog.Float64("factor_p10", s.FactorP10),
		slog.Float64("factor_p50", s.FactorP50),
		slog.Float64("factor_p90", s.FactorP90),
		slog.Int("redshifted", s.Redshifted),
		slog.Int("blueshifted", s.Blueshifted),
	)
}

// LogStats logs the window stats using slog.
func (s ShiftStats) LogStats() {
	slog.Info("shift stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"model", s.Model,
		"observer_velocity", s.ObserverVelocity,
		"stars", s.Stars,
		"factor_mean", s.FactorMean,
		"factor_std", s.FactorStd,
		"factor_p10", s.FactorP10,
		"factor_p50", s.FactorP50,
		"factor_p90", s.FactorP90,
		"redshifted", s.Redshifted,
		"blueshifted", s.Blueshifted,
	)
}
