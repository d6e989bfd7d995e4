package wallet

import "github.com/shopspring/decimal"

// CreateInput carries the already-typed fields of a wallet create request.
// Pointers distinguish "absent" from "zero value" so missing-field messages
// can name each field; wire-format coercion happens in the handlers.
type CreateInput struct {
	Name     *string
	Balance  *decimal.Decimal
	Currency *string
}

// UpdateInput carries a partial update; only non-nil fields are applied to
// the stored wallet before re-validation.
type UpdateInput struct {
	Name     *string
	Balance  *decimal.Decimal
	Currency *string
}
