package tba

import "errors"

// ErrEmpty is returned for a nil cost matrix.
var ErrEmpty = errors.New("tba: empty cost matrix")
