package trainer

import (
	"errors"
	"fmt"
)

// Domain-specific errors for the trainer package.
var (
	ErrInputMissing      = errors.New("required input is missing")
	ErrInputKindMismatch = errors.New("input does not match mode")
	ErrUnknownMode       = errors.New("unknown mode")
	ErrModelUnavailable  = errors.New("model unavailable")
	ErrModelRequest      = errors.New("model rejected the request")
)

// ModelError wraps a failed model call. Kind is ErrModelUnavailable or ErrModelRequest.
type ModelError struct {
	Model string
	Kind  error
	Err   error
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("model %s: %v: %v", e.Model, e.Kind, e.Err)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the error's Kind.
func (e *ModelError) Is(target error) bool {
	return target == e.Kind
}
