package services

import "errors"

var (
	// ErrEmployeeNotFound is returned when an operation references an ID
	// that no record owns.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrEmailTaken is returned when a create or update would give two
	// records the same email.
	ErrEmailTaken = errors.New("employee with that email already exists")

	// ErrDirectoryUnavailable is returned when the external random-user API
	// cannot be reached or errors during seeding.
	ErrDirectoryUnavailable = errors.New("external directory source unavailable")
)
