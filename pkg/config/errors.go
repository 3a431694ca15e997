package config

import (
	"errors"
	"fmt"
)

// Error is a configuration file failure. Its message is the diagnostic
// shown to the user; the cause is reachable through errors.Is and As.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return "configuration not set up properly at: " + e.Path
}

func (e *Error) Unwrap() error { return e.Err }

// Cause returns the underlying error message, for verbose output.
func (e *Error) Cause() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

// NotExistError is returned when an explicitly given file is missing.
type NotExistError struct {
	Path string
}

func (e *NotExistError) Error() string {
	return fmt.Sprintf("'%s' does not exist.\nPlease provide a valid file path.", e.Path)
}

// ValidationError is a command-line option that cannot be used as given.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// IsUserError reports whether err should be shown to the user as is and
// end the run with exit status 1.
func IsUserError(err error) bool {
	var (
		cfgErr *Error
		nxErr  *NotExistError
		valErr *ValidationError
	)
	return errors.As(err, &cfgErr) || errors.As(err, &nxErr) || errors.As(err, &valErr)
}
