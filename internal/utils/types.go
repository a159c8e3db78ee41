package util

import (
	"fmt"
	"math"
)

// PageID represents a unique page identifier
type PageID uint64

// NeverUsed marks a page with no future reference. It is larger than any
// valid sequence position.
const NeverUsed = math.MaxInt

// ErrorType represents different types of simulator errors
type ErrorType int

const (
	ErrTypeInvalidCapacity ErrorType = iota
	ErrTypeInvalidSequence
	ErrTypeInvalidTrace
	ErrTypeIOError
)

func (t ErrorType) String() string {
	switch t {
	case ErrTypeInvalidCapacity:
		return "invalid-capacity"
	case ErrTypeInvalidSequence:
		return "invalid-sequence"
	case ErrTypeInvalidTrace:
		return "invalid-trace"
	case ErrTypeIOError:
		return "io"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// SimError represents a simulator error carrying where it happened
type SimError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

func (e *SimError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pagesim error [%s]: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("pagesim error [%s]: %s", e.Type, e.Message)
}

func (e *SimError) Unwrap() error {
	return e.Cause
}

// With attaches a context value and returns the same error.
func (e *SimError) With(key string, value interface{}) *SimError {
	e.Context[key] = value
	return e
}

// NewSimError creates a new simulator error
func NewSimError(errType ErrorType, message string, cause error) *SimError {
	return &SimError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}
