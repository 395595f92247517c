package axisrange

import (
	"math"

	"github.com/ukaji3/axisrange-go/pkg/axisrange/models"
)

// Validate checks an axis configuration without resolving it.
func Validate(cfg models.AxisConfig) error {
	if !validFraction(cfg.MinPadding) {
		return NewConfigurationError(cfg.Name, "min_padding", ErrInvalidPadding)
	}
	if !validFraction(cfg.MaxPadding) {
		return NewConfigurationError(cfg.Name, "max_padding", ErrInvalidPadding)
	}
	if cfg.ExplicitMin != nil && !finite(*cfg.ExplicitMin) {
		return NewConfigurationError(cfg.Name, "min", ErrInvalidExtremes)
	}
	if cfg.ExplicitMax != nil && !finite(*cfg.ExplicitMax) {
		return NewConfigurationError(cfg.Name, "max", ErrInvalidExtremes)
	}
	if cfg.ExplicitMin != nil && cfg.ExplicitMax != nil && *cfg.ExplicitMin >= *cfg.ExplicitMax {
		return NewConfigurationError(cfg.Name, "min", ErrInvalidExtremes)
	}
	return nil
}

// Resolve computes the effective range of an axis from the data extent and the
// axis configuration. plotLength is the axis length in pixels and only feeds the
// translation slope. Resolve is pure: identical inputs give identical results.
func Resolve(extent models.SeriesExtent, cfg models.AxisConfig, plotLength float64) (models.ResolvedExtremes, error) {
	if err := Validate(cfg); err != nil {
		return models.ResolvedExtremes{}, err
	}
	if plotLength < 0 || !finite(plotLength) {
		return models.ResolvedExtremes{}, NewConfigurationError(cfg.Name, "plot_length", ErrInvalidPlotLength)
	}

	var res models.ResolvedExtremes
	unit := minimalUnit(extent, cfg)

	if cfg.ExplicitMin != nil && cfg.ExplicitMax != nil {
		res.Min, res.Max = *cfg.ExplicitMin, *cfg.ExplicitMax
	} else {
		lo, hi := extent.DataMin, extent.DataMax
		if extent.Empty() {
			lo, hi = 0, 0
		}
		if cfg.ExplicitMin != nil {
			lo = *cfg.ExplicitMin
		}
		if cfg.ExplicitMax != nil {
			hi = *cfg.ExplicitMax
		}

		width := hi - lo
		if width > 0 {
			if cfg.ExplicitMin == nil {
				lo -= width * cfg.MinPadding
			}
			if cfg.ExplicitMax == nil {
				hi += width * cfg.MaxPadding
			}
		}

		if autoConnects(extent, cfg) {
			hi += unit
			res.AutoConnected = true
		}
		res.Min, res.Max = lo, hi
	}

	if res.Max <= res.Min || (extent.Empty() && cfg.ExplicitMin == nil && cfg.ExplicitMax == nil) {
		if cfg.ExplicitMax != nil && cfg.ExplicitMin == nil {
			res.Min = res.Max - unit
		} else {
			res.Max = res.Min + unit
		}
		res.Degenerate = true
	}

	res.PlotLength = plotLength
	res.TranslationSlope = TranslationSlope(res.Min, res.Max, plotLength)
	return res, nil
}

// TranslationSlope returns pixels per data unit for the range [min, max].
func TranslationSlope(min, max, plotLength float64) float64 {
	span := max - min
	if span <= 0 {
		return 0
	}
	return plotLength / span
}

// autoConnects reports whether a circular axis gets the wraparound unit. An explicit
// max pins the upper bound and wins over auto-connect.
func autoConnects(extent models.SeriesExtent, cfg models.AxisConfig) bool {
	if !cfg.IsPolar || !cfg.Circular || !cfg.AutoConnect || cfg.ExplicitMax != nil {
		return false
	}
	if !FullCircle(cfg.Pane) {
		return false
	}
	return cfg.Type == models.AxisCategory || extent.EvenlySpaced
}

// minimalUnit is the step used for the wraparound unit and for degenerate ranges.
func minimalUnit(extent models.SeriesExtent, cfg models.AxisConfig) float64 {
	if cfg.Type != models.AxisCategory && extent.PointRange > 0 {
		return extent.PointRange
	}
	return 1
}

func validFraction(v float64) bool {
	return v >= 0 && v <= 1
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
