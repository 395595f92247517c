package axisrange

import (
	"math"

	"github.com/tiendc/go-deepcopy"
	chart "github.com/wcharczuk/go-chart/v2"
	"go.uber.org/zap"

	"github.com/ukaji3/axisrange-go/pkg/axisrange/models"
)

// Axis holds the configuration and data extent of one axis together with its
// last resolved extremes. Every mutation marks the axis dirty; reads that depend
// on the extremes fail with ErrStale until Resolve is called again.
type Axis struct {
	cfg      models.AxisConfig
	extent   models.SeriesExtent
	plotLen  float64
	resolved models.ResolvedExtremes
	dirty    bool
	log      *zap.Logger
}

// NewAxis creates an axis from cfg. The configuration is copied; later changes
// to cfg do not affect the axis.
func NewAxis(cfg models.AxisConfig, logger *zap.Logger) (*Axis, error) {
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	own, err := cloneConfig(cfg)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Axis{
		cfg:   own,
		dirty: true,
		log:   logger.With(zap.String("axis", cfg.Name)),
	}, nil
}

// Name returns the axis name.
func (a *Axis) Name() string {
	return a.cfg.Name
}

// Config returns a copy of the current configuration.
func (a *Axis) Config() models.AxisConfig {
	cfg, err := cloneConfig(a.cfg)
	if err != nil {
		a.log.Warn("config copy failed", zap.Error(err))
		return a.cfg
	}
	return cfg
}

// Extent returns the data extent the axis resolves from.
func (a *Axis) Extent() models.SeriesExtent {
	return a.extent
}

// Dirty reports whether the axis must be resolved before its extremes are read.
func (a *Axis) Dirty() bool {
	return a.dirty
}

func (a *Axis) invalidate(reason string) {
	if !a.dirty {
		a.log.Debug("extremes invalidated", zap.String("reason", reason))
	}
	a.dirty = true
}

// SetExtremes overrides the explicit min and max. Nil clears a bound so it is
// derived from data again. The previous configuration is kept on error.
func (a *Axis) SetExtremes(min, max *float64) error {
	next := a.cfg
	next.ExplicitMin = copyFloat(min)
	next.ExplicitMax = copyFloat(max)
	if err := Validate(next); err != nil {
		return err
	}
	a.cfg = next
	a.invalidate("set_extremes")
	return nil
}

// Update replaces the whole configuration.
func (a *Axis) Update(cfg models.AxisConfig) error {
	if err := Validate(cfg); err != nil {
		return err
	}
	own, err := cloneConfig(cfg)
	if err != nil {
		return err
	}
	a.cfg = own
	a.invalidate("update")
	return nil
}

// SetPane changes the arc a circular axis is drawn on.
func (a *Axis) SetPane(p *models.Pane) {
	var pane *models.Pane
	if p != nil {
		pane = &models.Pane{StartAngle: p.StartAngle, EndAngle: copyFloat(p.EndAngle)}
	}
	a.cfg.Pane = pane
	a.invalidate("pane")
}

// SetExtent replaces the data extent.
func (a *Axis) SetExtent(ext models.SeriesExtent) {
	a.extent = ext
	a.invalidate("data")
}

// SetPlotLength sets the axis length in pixels.
func (a *Axis) SetPlotLength(length float64) error {
	if length < 0 || !finite(length) {
		return NewConfigurationError(a.cfg.Name, "plot_length", ErrInvalidPlotLength)
	}
	a.plotLen = length
	a.invalidate("plot_length")
	return nil
}

// Resolve recomputes the extremes and clears the dirty flag.
func (a *Axis) Resolve() (models.ResolvedExtremes, error) {
	res, err := Resolve(a.extent, a.cfg, a.plotLen)
	if err != nil {
		return models.ResolvedExtremes{}, err
	}
	if res.Degenerate {
		a.log.Warn("degenerate data range, using synthetic span",
			zap.Float64("min", res.Min), zap.Float64("max", res.Max))
	}
	a.log.Debug("extremes resolved",
		zap.Float64("min", res.Min),
		zap.Float64("max", res.Max),
		zap.Float64("slope", res.TranslationSlope),
		zap.Bool("auto_connected", res.AutoConnected))
	a.resolved = res
	a.dirty = false
	return res, nil
}

// Extremes returns the last resolved extremes.
func (a *Axis) Extremes() (models.ResolvedExtremes, error) {
	if a.dirty {
		return models.ResolvedExtremes{}, ErrStale
	}
	return a.resolved, nil
}

// AutoConnect reports whether the last resolve closed the axis into a ring.
func (a *Axis) AutoConnect() bool {
	return !a.dirty && a.resolved.AutoConnected
}

// BelowMin reports whether v falls under the explicit minimum.
func (a *Axis) BelowMin(v float64) bool {
	return a.cfg.ExplicitMin != nil && v < *a.cfg.ExplicitMin
}

// Translate converts a data value into a pixel offset along the axis.
func (a *Axis) Translate(v float64) (float64, error) {
	if a.dirty {
		return 0, ErrStale
	}
	if a.cfg.Reversed {
		return (a.resolved.Max - v) * a.resolved.TranslationSlope, nil
	}
	return (v - a.resolved.Min) * a.resolved.TranslationSlope, nil
}

// Pixel converts a data value into a whole-pixel offset through Range.
func (a *Axis) Pixel(v float64) (int, error) {
	r, err := a.Range()
	if err != nil {
		return 0, err
	}
	return r.Translate(v), nil
}

// Range returns the resolved extremes as a chart range over whole pixels.
func (a *Axis) Range() (*chart.ContinuousRange, error) {
	if a.dirty {
		return nil, ErrStale
	}
	return &chart.ContinuousRange{
		Min:        a.resolved.Min,
		Max:        a.resolved.Max,
		Domain:     int(math.Round(a.resolved.PlotLength)),
		Descending: a.cfg.Reversed,
	}, nil
}

func cloneConfig(cfg models.AxisConfig) (models.AxisConfig, error) {
	var out models.AxisConfig
	if err := deepcopy.Copy(&out, &cfg); err != nil {
		return models.AxisConfig{}, err
	}
	return out, nil
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
