package ledger

import (
	"context"

	"walletledger/internal/models"
)

// Service is the ledger CRUD surface exposed to the handlers.
type Service interface {
	List(ctx context.Context) ([]models.Ledger, error)
	Get(ctx context.Context, id uint) (*models.Ledger, error)
	Create(ctx context.Context, input CreateInput) (*models.Ledger, error)
	Update(ctx context.Context, id uint, input UpdateInput) (*models.Ledger, error)
	Delete(ctx context.Context, id uint) error
}

// Cache is the subset of the cache service the ledger service needs.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, keys ...string) error
}
