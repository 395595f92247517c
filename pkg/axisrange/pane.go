package axisrange

import (
	"math"

	"github.com/ukaji3/axisrange-go/pkg/axisrange/models"
)

const angleEpsilon = 1e-9

// NormalizeAngle maps an angle in degrees into [0, 360).
func NormalizeAngle(deg float64) float64 {
	a := math.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// PaneArc returns the angular span of a pane in degrees. A nil pane spans the full circle.
func PaneArc(p *models.Pane) float64 {
	if p == nil || p.EndAngle == nil {
		return 360
	}
	return *p.EndAngle - p.StartAngle
}

// FullCircle reports whether the pane arc is a non-zero multiple of 360 degrees.
// The start angle only rotates the ring.
func FullCircle(p *models.Pane) bool {
	arc := math.Abs(PaneArc(p))
	if arc < angleEpsilon {
		return false
	}
	rem := math.Mod(arc, 360)
	return rem < angleEpsilon || 360-rem < angleEpsilon
}
