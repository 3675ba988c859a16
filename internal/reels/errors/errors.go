package errors

import "errors"

var (
	ErrNotFound = errors.New("reel not found")

	ErrDuplicateID = errors.New("reel ID already exists")
)
