package output

import "errors"

// ErrUnsupportedMode indicates a detail writer was called for a Result whose
// Mode does not match (e.g. WriteDetail on an aggregate-only Result).
var ErrUnsupportedMode = errors.New("output: result mode does not support this writer")
