package raster

import "errors"

// ErrConfig is the umbrella error for every configuration failure reported by
// the raster, edge and label packages. Use errors.Is(err, ErrConfig) to
// distinguish bad parameters from I/O failures.
var ErrConfig = errors.New("configuration error")

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("raster: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("raster: all rows must have the same length")
	// ErrSampleCount indicates Pix does not hold Rows*Cols samples.
	ErrSampleCount = errors.New("raster: sample count does not match dimensions")
	// ErrShapeMismatch indicates two grids that must share a shape do not.
	ErrShapeMismatch = errors.New("raster: grids must have the same shape")
)

// ConfigError reports an invalid parameter or malformed input grid.
//
// Op names the operation that rejected the input (e.g. "label.Run") and Err
// holds the specific sentinel, so both of these hold for a bad connectivity:
//
//	errors.Is(err, raster.ErrConfig)
//	errors.Is(err, label.ErrConnectivity)
type ConfigError struct {
	Op  string
	Err error
}

// Configf wraps a sentinel as a ConfigError for the given operation.
func Configf(op string, err error) error {
	return &ConfigError{Op: op, Err: err}
}

func (e *ConfigError) Error() string {
	return e.Op + ": " + ErrConfig.Error() + ": " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Is makes every ConfigError match ErrConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
