package steam

import (
	stderrs "errors"
	"fmt"
)

// DecodeError reports an upstream payload that does not match the expected
// shape. It carries the raw payload so callers can capture it for offline
// diagnosis. This class is fatal to the caller and never retried here.
type DecodeError struct {
	Raw   []byte
	cause error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("steam: response shape mismatch: %v", e.cause)
}

// Unwrap returns the underlying decode failure
func (e *DecodeError) Unwrap() error { return e.cause }

// AsDecode unwraps and returns (*DecodeError, true) when err is a shape mismatch
func AsDecode(err error) (*DecodeError, bool) {
	var de *DecodeError
	if stderrs.As(err, &de) {
		return de, true
	}
	return nil, false
}
