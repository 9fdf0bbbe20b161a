package filter

import "errors"

var (
	// ErrDegenerate indicates input with a single distinct value, for which
	// no separating threshold exists.
	ErrDegenerate = errors.New("filter: grid holds a single value")
	// ErrMethod indicates an unknown binarize or denoise method name.
	ErrMethod = errors.New("filter: unknown method")
	// ErrRadius indicates a negative filter radius.
	ErrRadius = errors.New("filter: radius must not be negative")
)
