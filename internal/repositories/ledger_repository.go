package repositories

import (
	"context"

	"walletledger/internal/models"
)

// LedgerRepository is the persistence accessor for ledger entries. Reads
// preload the referenced wallet and transaction so callers can echo them
// back; Save translates a foreign-key violation into the matching not-found
// sentinel, so a reference deleted between validation and insert still
// surfaces as "referenced entity not found".
type LedgerRepository interface {
	FindAll(ctx context.Context) ([]models.Ledger, error)
	FindByID(ctx context.Context, id uint) (*models.Ledger, error)
	Save(ctx context.Context, ledger *models.Ledger) error
	Delete(ctx context.Context, id uint) error
}
