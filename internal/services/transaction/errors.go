package transaction

import "errors"

// Service errors
var (
	ErrNotFound = errors.New("transaction not found")
)
