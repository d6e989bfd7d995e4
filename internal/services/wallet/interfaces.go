package wallet

import (
	"context"

	"walletledger/internal/models"
)

// Service is the wallet CRUD surface exposed to the handlers.
type Service interface {
	List(ctx context.Context) ([]models.Wallet, error)
	Get(ctx context.Context, id uint) (*models.Wallet, error)
	Create(ctx context.Context, input CreateInput) (*models.Wallet, error)
	Update(ctx context.Context, id uint, input UpdateInput) (*models.Wallet, error)
	Delete(ctx context.Context, id uint) error
}

// Cache is the subset of the cache service the wallet service needs.
// Failures are treated as misses; the store stays the source of truth.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, keys ...string) error
	DeletePattern(ctx context.Context, pattern string) error
}
