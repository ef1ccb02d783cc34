package main

import (
	"context"
	"errors"

	rerrors "github.com/ajitpratap0/rostergen/pkg/rostererrors"
)

type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string {
	return e.err.Error()
}

func (e *cliError) Unwrap() error {
	return e.err
}

const (
	exitOK         = 0
	exitFailure    = 1
	exitValidation = 2
	exitUsage      = 3
	exitFile       = 4
	exitData       = 5
)

func withCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &cliError{code: code, err: err}
}

// exitCode picks the process exit status for err. An explicit code wins,
// then the type of the first typed error in the chain.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ce *cliError
	if errors.As(err, &ce) {
		return ce.code
	}
	if errors.Is(err, context.Canceled) {
		return exitFailure
	}
	switch rerrors.TypeOf(err) {
	case rerrors.ErrorTypeValidation, rerrors.ErrorTypeConfig:
		return exitValidation
	case rerrors.ErrorTypeFile:
		return exitFile
	case rerrors.ErrorTypeData, rerrors.ErrorTypeExhausted:
		return exitData
	default:
		return exitFailure
	}
}
