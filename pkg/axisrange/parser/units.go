// Package parser reads chart definitions and series data from xlsx workbooks.
package parser

// EMUPerPixel is the number of EMUs (English Metric Units) per pixel at 96 DPI.
// 914400 EMU = 1 inch = 96 pixels.
const EMUPerPixel = 9525

// Default cell size in pixels, used to size charts anchored between cells.
const (
	DefaultColumnWidthPixels = 64
	DefaultRowHeightPixels   = 20
)

// EMUToPixels converts EMU to pixels at 96 DPI.
func EMUToPixels(emu int64) int {
	return int(emu / EMUPerPixel)
}

// anchorSpan returns the pixel span between two cell anchors.
func anchorSpan(fromCell int, fromOff int64, toCell int, toOff int64, cellPixels int) int {
	return (toCell-fromCell)*cellPixels + EMUToPixels(toOff) - EMUToPixels(fromOff)
}
