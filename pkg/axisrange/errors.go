package axisrange

import (
	"errors"
	"fmt"
)

// ErrInvalidPadding indicates a padding fraction outside [0,1].
var ErrInvalidPadding = errors.New("padding must be within [0, 1]")

// ErrInvalidExtremes indicates explicit extremes that do not form a range.
var ErrInvalidExtremes = errors.New("explicit min must be less than explicit max")

// ErrInvalidPlotLength indicates a negative or non-finite plot length.
var ErrInvalidPlotLength = errors.New("plot length must be a finite non-negative number")

// ErrStale is returned when extremes are read after a mutation and before Resolve.
var ErrStale = errors.New("extremes are stale, call Resolve first")

// ErrSeriesIndex indicates a series or point index out of range.
var ErrSeriesIndex = errors.New("index out of range")

// ConfigurationError reports an invalid axis configuration.
type ConfigurationError struct {
	Axis  string
	Field string // "min_padding", "max_padding", "min", "max", "plot_length"
	Err   error
}

func (e *ConfigurationError) Error() string {
	if e.Axis == "" {
		return fmt.Sprintf("invalid axis configuration (%s): %v", e.Field, e.Err)
	}
	return fmt.Sprintf("invalid configuration for axis %q (%s): %v", e.Axis, e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// NewConfigurationError creates a new ConfigurationError.
func NewConfigurationError(axis, field string, err error) *ConfigurationError {
	return &ConfigurationError{
		Axis:  axis,
		Field: field,
		Err:   err,
	}
}
