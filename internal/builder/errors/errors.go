// Package errors provides sentinel errors for the build dispatch step.
// These enable consistent classification while keeping user-facing
// messages descriptive via wrapping.
package errors

import "errors"

var (
	// ErrGeneratorNotFound indicates the documentation generator executable was not detected on PATH.
	ErrGeneratorNotFound = errors.New("documentation generator not found")
	// ErrGeneratorFailed indicates the generator could not be started or was terminated abnormally.
	ErrGeneratorFailed = errors.New("documentation generator failed")
)
