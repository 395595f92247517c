package axisrange

import (
	"math"
	"slices"

	"github.com/ukaji3/axisrange-go/pkg/axisrange/models"
)

// spacingTolerance is the relative error allowed when deciding whether values are evenly spaced.
const spacingTolerance = 1e-9

// ComputeExtent returns the extent of all finite values in the given slices.
func ComputeExtent(values ...[]float64) models.SeriesExtent {
	var finite []float64
	for _, vals := range values {
		for _, v := range vals {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			finite = append(finite, v)
		}
	}
	return extentOf(finite)
}

// ComputeNullableExtent is ComputeExtent for data where nil marks a missing value.
func ComputeNullableExtent(values ...[]*float64) models.SeriesExtent {
	var flat []float64
	for _, vals := range values {
		for _, v := range vals {
			if v != nil {
				flat = append(flat, *v)
			}
		}
	}
	return ComputeExtent(flat)
}

// IndexExtent returns the extent of the category positions 0..n-1.
func IndexExtent(n int) models.SeriesExtent {
	if n <= 0 {
		return models.SeriesExtent{}
	}
	return models.SeriesExtent{
		DataMin:      0,
		DataMax:      float64(n - 1),
		Count:        n,
		PointRange:   1,
		EvenlySpaced: true,
	}
}

func extentOf(values []float64) models.SeriesExtent {
	if len(values) == 0 {
		return models.SeriesExtent{}
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)
	distinct := slices.Compact(sorted)

	ext := models.SeriesExtent{
		DataMin:      distinct[0],
		DataMax:      distinct[len(distinct)-1],
		Count:        len(values),
		EvenlySpaced: true,
	}
	if len(distinct) < 2 {
		return ext
	}

	closest := math.Inf(1)
	for i := 1; i < len(distinct); i++ {
		closest = math.Min(closest, distinct[i]-distinct[i-1])
	}
	ext.PointRange = closest

	for i := 1; i < len(distinct); i++ {
		gap := distinct[i] - distinct[i-1]
		if math.Abs(gap-closest) > spacingTolerance*math.Max(1, math.Abs(closest)) {
			ext.EvenlySpaced = false
			break
		}
	}
	return ext
}
