package domain

import "errors"

var (
	// ErrProfileAlreadyExists is returned when a profile already exists for the user.
	ErrProfileAlreadyExists = errors.New("profile already exists")

	// ErrProfileNotFound is returned when the profile is not found.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrInvalidTimezone is returned when a timezone name cannot be loaded.
	ErrInvalidTimezone = errors.New("invalid timezone")
)
