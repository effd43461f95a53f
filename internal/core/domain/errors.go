package domain

import "errors"

var (
	ErrPlantNotFound = errors.New("plant not found")
	ErrTaskNotFound  = errors.New("task not found")
	ErrUnauthorized  = errors.New("unauthorized")

	// ErrUnsupportedColumn is reported by the task repository when an insert
	// fails because the backing schema lacks one of the optional columns.
	ErrUnsupportedColumn = errors.New("unsupported column")
)
