package edge

import "errors"

var (
	// ErrThresholdOrder indicates a low hysteresis threshold above the high one.
	ErrThresholdOrder = errors.New("edge: low threshold must not exceed high threshold")
	// ErrMode indicates an unknown magnitude combination mode.
	ErrMode = errors.New("edge: unknown magnitude mode")
	// ErrPropagation indicates an unknown hysteresis propagation rule.
	ErrPropagation = errors.New("edge: unknown hysteresis propagation")
)
