package transaction

import "time"

// CreateInput carries the already-typed fields of a transaction create
// request. Pointer fields distinguish absent from zero so each missing
// field is named in the rejection; wire-format coercion happens in the
// handlers.
type CreateInput struct {
	Reference       *string
	Description     *string
	TransactionDate *time.Time
}

// UpdateInput carries a partial update; only non-nil fields are applied
// before re-validation.
type UpdateInput struct {
	Reference       *string
	Description     *string
	TransactionDate *time.Time
}
