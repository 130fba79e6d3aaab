package llm

import (
	"errors"
	"fmt"
)

// ErrEmptyResponse is wrapped in a ServiceError when the model returns no text.
var ErrEmptyResponse = errors.New("empty response from model")

// ServiceError reports a failed call to the text generation backend,
// including timeouts.
type ServiceError struct {
	Op  string
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("generation service: %s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// IsServiceError reports whether err is, or wraps, a *ServiceError.
func IsServiceError(err error) bool {
	var se *ServiceError
	return errors.As(err, &se)
}
