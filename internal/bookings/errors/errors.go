package errors

import "errors"

var (
	ErrNotFound = errors.New("booking not found")

	ErrDuplicateID = errors.New("booking ID already exists")

	ErrInvalidTransition = errors.New("invalid status transition")

	ErrStatusChanged = errors.New("booking status changed concurrently")
)
