package label

import "errors"

// ErrConnectivity indicates a connectivity other than 4 or 8.
var ErrConnectivity = errors.New("label: connectivity must be 4 or 8")
