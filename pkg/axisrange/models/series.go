package models

// Point is a single series value.
type Point struct {
	// X is the position on the x axis (the point index for category data).
	X float64 `json:"x"`
	// Y is the value, nil for missing data.
	Y *float64 `json:"y"`
	// IsNull is true when the point is excluded from rendering.
	IsNull bool `json:"is_null"`
	// PixelX and PixelY are the whole-pixel offsets along each axis, set in
	// reports for points that are drawn.
	PixelX *int `json:"pixel_x,omitempty"`
	PixelY *int `json:"pixel_y,omitempty"`
}

// Series is a named list of points.
type Series struct {
	// Name is the series display name.
	Name string `json:"name"`
	// Points holds the series values in x order.
	Points []Point `json:"points"`
}
