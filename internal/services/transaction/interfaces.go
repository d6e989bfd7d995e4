package transaction

import (
	"context"

	"walletledger/internal/models"
)

// Service is the transaction CRUD surface exposed to the handlers.
type Service interface {
	List(ctx context.Context) ([]models.Transaction, error)
	Get(ctx context.Context, id uint) (*models.Transaction, error)
	Create(ctx context.Context, input CreateInput) (*models.Transaction, error)
	Update(ctx context.Context, id uint, input UpdateInput) (*models.Transaction, error)
	Delete(ctx context.Context, id uint) error
}

// Cache is the subset of the cache service the transaction service needs.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, keys ...string) error
	DeletePattern(ctx context.Context, pattern string) error
}
