// Package rostererrors provides typed errors for rostergen. Every error that
// crosses a package boundary carries an ErrorType so the CLI can choose an
// exit code and the logs can be filtered by category.
//
// # Basic Usage
//
//	err := rostererrors.New(rostererrors.ErrorTypeData, "business line has no org paths").
//	    WithDetail("business_line", name)
//
//	if err := os.Rename(tmp, path); err != nil {
//	    return rostererrors.Wrap(err, rostererrors.ErrorTypeFile, "failed to publish output").
//	        WithDetail("path", path)
//	}
//
// Error instances are not safe for concurrent modification.
package rostererrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorType is the category of an error.
type ErrorType string

const (
	// ErrorTypeInternal represents programming errors and unexpected states
	ErrorTypeInternal ErrorType = "internal"
	// ErrorTypeValidation represents invalid input values
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
	// ErrorTypeData represents malformed or empty reference data
	ErrorTypeData ErrorType = "data"
	// ErrorTypeFile represents file operation errors
	ErrorTypeFile ErrorType = "file"
	// ErrorTypeExhausted represents a bounded retry loop that ran out of attempts
	ErrorTypeExhausted ErrorType = "exhausted"
)

// Error is a structured error with a category, a message, an optional cause
// and key-value details.
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Details map[string]interface{}
}

// Error implements the error interface. Details are rendered in key order so
// messages are stable.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Type))
	b.WriteString(": ")
	b.WriteString(e.Message)
	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString(" (")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%v", k, e.Details[k])
		}
		b.WriteString(")")
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail adds a key-value detail to the error. Calls can be chained.
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// New creates a new error with the given type and message.
func New(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new error with a formatted message.
func Newf(errType ErrorType, format string, args ...interface{}) *Error {
	return New(errType, fmt.Sprintf(format, args...))
}

// Wrap wraps err with a type and message. Returns nil if err is nil.
func Wrap(err error, errType ErrorType, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   err,
	}
}

// IsType reports whether any error in err's chain is an Error of errType.
func IsType(err error, errType ErrorType) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Type == errType {
			return true
		}
		err = e.Cause
	}
	return false
}

// TypeOf returns the type of the outermost Error in err's chain, or the empty
// string if there is none.
func TypeOf(err error) ErrorType {
	var e *Error
	if errors.As(err, &e) {
		return e.Type
	}
	return ""
}
