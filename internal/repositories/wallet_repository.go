package repositories

import (
	"context"

	"walletledger/internal/models"
)

// WalletRepository is the persistence accessor for wallets. Save inserts
// when the id is zero and updates otherwise; Delete removes the wallet's
// ledger entries in the same database transaction.
type WalletRepository interface {
	FindAll(ctx context.Context) ([]models.Wallet, error)
	FindByID(ctx context.Context, id uint) (*models.Wallet, error)
	Save(ctx context.Context, wallet *models.Wallet) error
	Delete(ctx context.Context, id uint) error
}
