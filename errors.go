package chaos

import "errors"

// ErrInvalidInput is returned when a precondition on an argument is violated
// (too few vertices, non-positive radius, non-finite ratio or jitter).
// Callers should match it with errors.Is; the wrapped message carries the
// offending value.
var ErrInvalidInput = errors.New("chaos: invalid input")
