package mindepth

import "errors"

// ErrInvalidK is returned when Analyze is called with k < 2 — a 1-input
// LUT cannot realize any two-input gate, so the model is undefined below 2.
var ErrInvalidK = errors.New("mindepth: k must be at least 2")
