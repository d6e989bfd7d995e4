package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"walletledger/internal/models"
)

// CreateInput carries the already-typed fields of a ledger create request.
// Every field is required; pointers let the service name each missing one.
type CreateInput struct {
	Amount          *decimal.Decimal
	Description     *string
	TransactionDate *time.Time
	TransactionType *models.TransactionType
	WalletID        *uint
	TransactionID   *uint
}

// UpdateInput carries a partial update. A provided WalletID or
// TransactionID replaces the reference after it resolves; references can be
// swapped but never nulled out.
type UpdateInput struct {
	Amount          *decimal.Decimal
	Description     *string
	TransactionDate *time.Time
	TransactionType *models.TransactionType
	WalletID        *uint
	TransactionID   *uint
}
