package repositories

import (
	"context"

	"walletledger/internal/models"
)

// TransactionRepository is the persistence accessor for transactions.
// ExistsByReference backs the uniqueness rule on the reference column;
// excludeID skips the record being updated so it does not collide with
// itself.
type TransactionRepository interface {
	FindAll(ctx context.Context) ([]models.Transaction, error)
	FindByID(ctx context.Context, id uint) (*models.Transaction, error)
	ExistsByReference(ctx context.Context, reference string, excludeID uint) (bool, error)
	Save(ctx context.Context, transaction *models.Transaction) error
	Delete(ctx context.Context, id uint) error
}
