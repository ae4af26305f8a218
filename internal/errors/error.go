package errors

import (
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryMarkup Category = "markup"
	CategoryStyle  Category = "style"
	CategoryRender Category = "render"
	CategoryConfig Category = "config"
	CategoryCLI    Category = "cli"
)

// HoistError is a structured error with a code, a tree location and a fix hint.
type HoistError struct {
	// Code is a unique error identifier (e.g., "E101").
	Code string

	// Category is the error type (markup, style, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Path locates the offending node in the element tree, if any.
	Path string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *HoistError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *HoistError) Unwrap() error {
	return e.Wrapped
}

// WithPath records where in the element tree the error occurred.
func (e *HoistError) WithPath(path string) *HoistError {
	e.Path = path
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *HoistError) WithSuggestion(s string) *HoistError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *HoistError) WithDetail(d string) *HoistError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *HoistError) Wrap(err error) *HoistError {
	e.Wrapped = err
	return e
}

// New creates a HoistError from a registered error code.
func New(code string) *HoistError {
	template, ok := registry[code]
	if !ok {
		return &HoistError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &HoistError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a new HoistError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *HoistError {
	return &HoistError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a HoistError.
func FromError(err error, code string) *HoistError {
	if err == nil {
		return nil
	}
	if he, ok := err.(*HoistError); ok {
		return he
	}
	return New(code).Wrap(err)
}
