package repositories

import "errors"

// Not-found sentinels returned by the repositories. Callers distinguish a
// missing row from an infrastructure failure with errors.Is.
var (
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrLedgerNotFound      = errors.New("ledger entry not found")
)
