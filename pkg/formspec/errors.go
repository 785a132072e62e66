package formspec

import "errors"

var (
	// ErrEmptyDocument is returned for blank form files.
	ErrEmptyDocument = errors.New("formspec: empty document")
	// ErrNoFields is returned when a form or operation yields no fields.
	ErrNoFields = errors.New("formspec: no fields")
	// ErrOperationNotFound is returned by FromOpenAPI for unknown operations.
	ErrOperationNotFound = errors.New("formspec: operation not found")
)
