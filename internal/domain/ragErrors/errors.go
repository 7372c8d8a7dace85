package ragErrors

import (
	"errors"
	"fmt"
)

// The workflow boundary only ever surfaces these kinds. Anything a provider
// throws is translated before it leaves the rag package.
var (
	ErrStorageUnavailable = errors.New("session index unavailable")
	ErrNoContent          = errors.New("no relevant material in session")
)

// InputError - bad request parameters, never retried.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

func NewInputError(format string, args ...any) *InputError {
	return &InputError{Message: fmt.Sprintf(format, args...)}
}

// ProviderError - an external capability call failed. Triggers fallback where
// one exists, otherwise fatal for the current request.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// ParseError - a generation result did not match its schema. Workflows map
// this to their documented degraded shapes, it never crosses as a crash.
type ParseError struct {
	Workflow string
	Raw      string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("workflow %s: unparseable model output: %v", e.Workflow, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
