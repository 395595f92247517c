package main

import (
	"github.com/spf13/pflag"

	"github.com/ukaji3/axisrange-go/pkg/axisrange"
)

// axisOverrides holds command line settings that take precedence over chart specs.
type axisOverrides struct {
	yMin, yMax float64
	xMin, xMax float64
	startAngle float64
	width      float64
	height     float64
	flags      *pflag.FlagSet
}

func (o *axisOverrides) bind(fs *pflag.FlagSet) {
	fs.Float64Var(&o.yMin, "min", 0, "Hard minimum of the y (radial) axis")
	fs.Float64Var(&o.yMax, "max", 0, "Hard maximum of the y (radial) axis")
	fs.Float64Var(&o.xMin, "x-min", 0, "Hard minimum of the x (angular) axis")
	fs.Float64Var(&o.xMax, "x-max", 0, "Hard maximum of the x (angular) axis")
	fs.Float64Var(&o.startAngle, "start-angle", 0, "Start angle of the polar pane in degrees")
	fs.Float64Var(&o.width, "width", 0, "Plot width in pixels (default: from chart spec)")
	fs.Float64Var(&o.height, "height", 0, "Plot height in pixels (default: from chart spec)")
	o.flags = fs
}

func (o *axisOverrides) changed(name string) bool {
	return o.flags != nil && o.flags.Changed(name)
}

// apply pushes the overrides into a chart through its update API.
func (o *axisOverrides) apply(c *axisrange.Chart) error {
	if o.changed("start-angle") {
		c.RotatePane(axisrange.NormalizeAngle(o.startAngle))
	}
	if err := o.applyExtremes(c.XAxis(), "x-min", o.xMin, "x-max", o.xMax); err != nil {
		return err
	}
	return o.applyExtremes(c.YAxis(), "min", o.yMin, "max", o.yMax)
}

func (o *axisOverrides) applyExtremes(a *axisrange.Axis, minFlag string, min float64, maxFlag string, max float64) error {
	if !o.changed(minFlag) && !o.changed(maxFlag) {
		return nil
	}
	cfg := a.Config()
	lo, hi := cfg.ExplicitMin, cfg.ExplicitMax
	if o.changed(minFlag) {
		lo = &min
	}
	if o.changed(maxFlag) {
		hi = &max
	}
	return a.SetExtremes(lo, hi)
}
