// Package axisrange resolves the numeric extremes of chart axes, including the
// wraparound behavior of circular axes on polar charts.
package axisrange

import (
	"go.uber.org/zap"

	"github.com/ukaji3/axisrange-go/pkg/axisrange/models"
)

// Default paddings, as fractions of the data span.
const (
	DefaultXPadding        = 0.01
	DefaultYPadding        = 0.05
	DefaultCircularPadding = 0
)

// Default plot size in pixels when a chart spec does not set one.
const (
	DefaultWidth  = 600
	DefaultHeight = 400
)

// Options configures chart construction.
type Options struct {
	// Logger receives debug and warning output. If nil, a no-op logger is used.
	Logger *zap.Logger
	// Width overrides the plot width from the chart spec when non-zero.
	Width float64
	// Height overrides the plot height from the chart spec when non-zero.
	Height float64
}

// DefaultOptions returns default chart options.
func DefaultOptions() Options {
	return Options{
		Logger: zap.NewNop(),
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

// AxisConfigFromOptions converts user options into an effective axis configuration.
// On a polar chart the x axis becomes the circular (angular) axis.
func AxisConfigFromOptions(name string, opts models.AxisOptions, polar, isX bool) models.AxisConfig {
	cfg := models.AxisConfig{
		Name:        name,
		ExplicitMin: opts.Min,
		ExplicitMax: opts.Max,
		Reversed:    opts.Reversed,
		IsPolar:     polar,
		Circular:    polar && isX,
		Type:        opts.Type,
	}
	if cfg.Type == "" {
		cfg.Type = models.AxisLinear
		if isX {
			cfg.Type = models.AxisCategory
		}
	}

	switch {
	case cfg.Circular:
		cfg.MinPadding, cfg.MaxPadding = DefaultCircularPadding, DefaultCircularPadding
	case isX:
		cfg.MinPadding, cfg.MaxPadding = DefaultXPadding, DefaultXPadding
	default:
		cfg.MinPadding, cfg.MaxPadding = DefaultYPadding, DefaultYPadding
	}
	if opts.MinPadding != nil {
		cfg.MinPadding = *opts.MinPadding
	}
	if opts.MaxPadding != nil {
		cfg.MaxPadding = *opts.MaxPadding
	}

	cfg.AutoConnect = cfg.Circular
	if opts.AutoConnect != nil {
		cfg.AutoConnect = *opts.AutoConnect
	}
	return cfg
}
