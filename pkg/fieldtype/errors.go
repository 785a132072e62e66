package fieldtype

import "errors"

var (
	// ErrUnknownType is returned by Parse for names outside the registry.
	ErrUnknownType = errors.New("fieldtype: unknown type")
	// ErrInvalidParams is returned by Parse for malformed type parameters.
	ErrInvalidParams = errors.New("fieldtype: invalid parameters")
)
