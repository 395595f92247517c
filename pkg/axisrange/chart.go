package axisrange

import (
	"fmt"
	"math"

	"github.com/tiendc/go-deepcopy"
	"go.uber.org/zap"

	"github.com/ukaji3/axisrange-go/pkg/axisrange/models"
)

// Chart binds an x axis, a y axis and the series drawn against them. On a polar
// chart the x axis is the circular (angular) axis and the y axis is radial.
type Chart struct {
	name   string
	polar  bool
	pane   *models.Pane
	width  float64
	height float64
	x      *Axis
	y      *Axis
	series []models.SeriesSpec
	points [][]models.Point
	dirty  bool
	log    *zap.Logger
}

// NewChart builds a chart from spec. Invalid axis configuration aborts construction.
func NewChart(spec models.ChartSpec, opts Options) (*Chart, error) {
	log := opts.logger().With(zap.String("chart", spec.Name))

	var series []models.SeriesSpec
	if err := deepcopy.Copy(&series, spec.Series); err != nil {
		return nil, fmt.Errorf("copy series: %w", err)
	}

	c := &Chart{
		name:   spec.Name,
		polar:  spec.Polar,
		width:  pickSize(opts.Width, spec.Width, DefaultWidth),
		height: pickSize(opts.Height, spec.Height, DefaultHeight),
		series: series,
		dirty:  true,
		log:    log,
	}
	if spec.Polar {
		c.pane = &models.Pane{StartAngle: 0}
		if spec.Pane != nil {
			c.pane = &models.Pane{StartAngle: spec.Pane.StartAngle, EndAngle: copyFloat(spec.Pane.EndAngle)}
		}
	}

	xcfg := AxisConfigFromOptions("x", spec.XAxis, spec.Polar, true)
	if xcfg.Circular {
		xcfg.Pane = c.pane
	}
	x, err := NewAxis(xcfg, log)
	if err != nil {
		return nil, err
	}
	y, err := NewAxis(AxisConfigFromOptions("y", spec.YAxis, spec.Polar, false), log)
	if err != nil {
		return nil, err
	}
	c.x, c.y = x, y

	if err := c.applySize(); err != nil {
		return nil, err
	}
	return c, nil
}

func pickSize(override, fromSpec, def float64) float64 {
	if override > 0 {
		return override
	}
	if fromSpec > 0 {
		return fromSpec
	}
	return def
}

// Name returns the chart name.
func (c *Chart) Name() string {
	return c.name
}

// Polar reports whether the chart uses polar geometry.
func (c *Chart) Polar() bool {
	return c.polar
}

// XAxis returns the x (angular) axis.
func (c *Chart) XAxis() *Axis {
	return c.x
}

// YAxis returns the y (radial) axis.
func (c *Chart) YAxis() *Axis {
	return c.y
}

// Dirty reports whether the chart or one of its axes changed since the last Resolve.
func (c *Chart) Dirty() bool {
	return c.dirty || c.x.Dirty() || c.y.Dirty()
}

// SeriesCount returns the number of series.
func (c *Chart) SeriesCount() int {
	return len(c.series)
}

// AddSeries appends a series.
func (c *Chart) AddSeries(name string, data []*float64) {
	c.series = append(c.series, models.SeriesSpec{Name: name, Data: copyData(data)})
	c.dirty = true
}

// SetData replaces the data of series i.
func (c *Chart) SetData(i int, data []*float64) error {
	if i < 0 || i >= len(c.series) {
		return fmt.Errorf("series %d: %w", i, ErrSeriesIndex)
	}
	c.series[i].Data = copyData(data)
	c.dirty = true
	return nil
}

// SetXData replaces the x values of series i. Nil restores index placement.
func (c *Chart) SetXData(i int, xs []*float64) error {
	if i < 0 || i >= len(c.series) {
		return fmt.Errorf("series %d: %w", i, ErrSeriesIndex)
	}
	c.series[i].X = copyData(xs)
	if xs == nil {
		c.series[i].X = nil
	}
	c.dirty = true
	return nil
}

// UpdatePoint sets the value of one point. A nil value marks the point as missing.
func (c *Chart) UpdatePoint(series, index int, value *float64) error {
	if series < 0 || series >= len(c.series) {
		return fmt.Errorf("series %d: %w", series, ErrSeriesIndex)
	}
	data := c.series[series].Data
	if index < 0 || index >= len(data) {
		return fmt.Errorf("series %d point %d: %w", series, index, ErrSeriesIndex)
	}
	data[index] = copyFloat(value)
	c.dirty = true
	return nil
}

// UpdatePane replaces the polar pane. A nil EndAngle makes the pane a full
// circle. It has no effect on cartesian charts.
func (c *Chart) UpdatePane(p models.Pane) {
	if !c.polar {
		return
	}
	c.setPane(&models.Pane{StartAngle: p.StartAngle, EndAngle: copyFloat(p.EndAngle)})
}

// RotatePane moves the pane to a new start angle and keeps its arc.
func (c *Chart) RotatePane(startAngle float64) {
	if !c.polar {
		return
	}
	p := &models.Pane{StartAngle: startAngle}
	if c.pane != nil && c.pane.EndAngle != nil {
		end := *c.pane.EndAngle + startAngle - c.pane.StartAngle
		p.EndAngle = &end
	}
	c.setPane(p)
}

// Pane returns a copy of the polar pane, nil on cartesian charts.
func (c *Chart) Pane() *models.Pane {
	if c.pane == nil {
		return nil
	}
	return &models.Pane{StartAngle: c.pane.StartAngle, EndAngle: copyFloat(c.pane.EndAngle)}
}

func (c *Chart) setPane(p *models.Pane) {
	c.pane = p
	c.log.Debug("pane updated",
		zap.Float64("start_angle", NormalizeAngle(p.StartAngle)),
		zap.Float64("arc", PaneArc(p)))
	if c.x.Config().Circular {
		c.x.SetPane(p)
	}
	c.dirty = true
}

// SetSize changes the plot size in pixels.
func (c *Chart) SetSize(width, height float64) error {
	c.width, c.height = width, height
	return c.applySize()
}

// PlotLengths returns the pixel lengths of the x and y axes. A polar chart is a
// circle of radius min(width, height)/2: the angular axis runs along its
// circumference and the radial axis from the center to the rim.
func (c *Chart) PlotLengths() (x, y float64) {
	if c.polar {
		r := math.Min(c.width, c.height) / 2
		return 2 * math.Pi * r, r
	}
	return c.width, c.height
}

func (c *Chart) applySize() error {
	xl, yl := c.PlotLengths()
	if err := c.x.SetPlotLength(xl); err != nil {
		return err
	}
	if err := c.y.SetPlotLength(yl); err != nil {
		return err
	}
	c.dirty = true
	return nil
}

// Resolve reclassifies every point and resolves both axes. A point is null when
// it has no value or falls below the explicit y minimum; classification runs on
// every resolve, so points become valid again once the bound or value allows it.
// On a linear x axis, series with x values are placed at them and points
// without a finite x are null.
func (c *Chart) Resolve() error {
	linearX := c.x.Config().Type != models.AxisCategory
	points := make([][]models.Point, len(c.series))
	var valid, xs []float64
	longest, placed := 0, false
	for i, s := range c.series {
		useX := linearX && len(s.X) > 0
		placed = placed || useX
		pts := make([]models.Point, len(s.Data))
		for j, v := range s.Data {
			p := models.Point{X: float64(j), Y: copyFloat(v)}
			p.IsNull = v == nil || !finite(*v) || c.y.BelowMin(*v)
			if useX {
				if j < len(s.X) && s.X[j] != nil && finite(*s.X[j]) {
					p.X = *s.X[j]
				} else {
					p.IsNull = true
				}
			}
			if !p.IsNull {
				valid = append(valid, *v)
				xs = append(xs, p.X)
			}
			pts[j] = p
		}
		points[i] = pts
		longest = max(longest, len(s.Data))
	}

	if placed {
		c.x.SetExtent(ComputeExtent(xs))
	} else {
		c.x.SetExtent(IndexExtent(longest))
	}
	c.y.SetExtent(ComputeExtent(valid))

	if _, err := c.x.Resolve(); err != nil {
		return err
	}
	if _, err := c.y.Resolve(); err != nil {
		return err
	}

	c.points = points
	c.dirty = false
	c.log.Debug("chart resolved", zap.Int("series", len(c.series)), zap.Int("points", longest))
	return nil
}

// Points returns the classified points of series i.
func (c *Chart) Points(i int) ([]models.Point, error) {
	if c.Dirty() {
		return nil, ErrStale
	}
	if i < 0 || i >= len(c.points) {
		return nil, fmt.Errorf("series %d: %w", i, ErrSeriesIndex)
	}
	out := make([]models.Point, len(c.points[i]))
	for j, p := range c.points[i] {
		out[j] = models.Point{X: p.X, Y: copyFloat(p.Y), IsNull: p.IsNull}
	}
	return out, nil
}

// NullFlags returns IsNull for every point of series i.
func (c *Chart) NullFlags(i int) ([]bool, error) {
	pts, err := c.Points(i)
	if err != nil {
		return nil, err
	}
	flags := make([]bool, len(pts))
	for j, p := range pts {
		flags[j] = p.IsNull
	}
	return flags, nil
}

// Report returns the resolved state of the chart.
func (c *Chart) Report() (*models.ChartReport, error) {
	if c.Dirty() {
		return nil, ErrStale
	}
	xr, err := axisReport(c.x)
	if err != nil {
		return nil, err
	}
	yr, err := axisReport(c.y)
	if err != nil {
		return nil, err
	}

	report := &models.ChartReport{
		Name:  c.name,
		Polar: c.polar,
		XAxis: xr,
		YAxis: yr,
	}
	for i, s := range c.series {
		pts, err := c.Points(i)
		if err != nil {
			return nil, err
		}
		for j := range pts {
			if err := c.placePoint(&pts[j]); err != nil {
				return nil, err
			}
		}
		report.Series = append(report.Series, models.Series{Name: s.Name, Points: pts})
	}
	return report, nil
}

// placePoint sets the pixel offsets of a drawn point.
func (c *Chart) placePoint(p *models.Point) error {
	if p.IsNull || p.Y == nil {
		return nil
	}
	px, err := c.x.Pixel(p.X)
	if err != nil {
		return err
	}
	py, err := c.y.Pixel(*p.Y)
	if err != nil {
		return err
	}
	p.PixelX, p.PixelY = &px, &py
	return nil
}

func axisReport(a *Axis) (models.AxisReport, error) {
	ext, err := a.Extremes()
	if err != nil {
		return models.AxisReport{}, err
	}
	return models.AxisReport{
		Config:   a.Config(),
		Extent:   a.Extent(),
		Extremes: ext,
	}, nil
}

func copyData(data []*float64) []*float64 {
	out := make([]*float64, len(data))
	for i, v := range data {
		out[i] = copyFloat(v)
	}
	return out
}
