package wallet

import "errors"

// Service errors
var (
	ErrNotFound = errors.New("wallet not found")
)
