package models

import "fmt"

// ErrorType represents different categories of errors
type ErrorType int

const (
	ErrInvalidImage ErrorType = iota
	ErrUnknownDistro
	ErrOutputWrite
)

// String returns the string representation of ErrorType
func (e ErrorType) String() string {
	switch e {
	case ErrInvalidImage:
		return "InvalidImage"
	case ErrUnknownDistro:
		return "UnknownDistro"
	case ErrOutputWrite:
		return "OutputWrite"
	default:
		return "Unknown"
	}
}

// ExitCode returns the process exit status for this error category, so
// scripts invoking the tool can branch on the failure class.
func (e ErrorType) ExitCode() int {
	switch e {
	case ErrInvalidImage:
		return 2
	case ErrUnknownDistro:
		return 3
	case ErrOutputWrite:
		return 4
	default:
		return 1
	}
}

// GenError represents an error during Dockerfile generation
type GenError struct {
	Type ErrorType
	Err  error
}

// Error implements the error interface
func (e *GenError) Error() string {
	return fmt.Sprintf("[%s] %v", e.Type, e.Err)
}

// Unwrap returns the wrapped error
func (e *GenError) Unwrap() error {
	return e.Err
}
