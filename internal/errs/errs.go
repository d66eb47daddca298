// Package errs holds the sentinel errors shared by the service and api layers.
package errs

import "errors"

var (
	// ErrInvalidInput marks a missing or malformed request field.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownOption is returned by search for an unsupported filter target.
	ErrUnknownOption = errors.New("unknown option")

	// ErrNotFound indicates an empty result set or a missing row.
	ErrNotFound = errors.New("not found")

	// ErrUserNotFound indicates no account matches the login email.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials indicates a password mismatch at login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAlreadyExists indicates a unique constraint violation (e.g. email taken).
	ErrAlreadyExists = errors.New("already exists")
)
