package ledger

import "errors"

// Service errors. The two reference errors are distinct from a validation
// failure: they mean a foreign key did not resolve to an existing row.
var (
	ErrNotFound            = errors.New("ledger entry not found")
	ErrWalletNotFound      = errors.New("referenced wallet not found")
	ErrTransactionNotFound = errors.New("referenced transaction not found")
)
