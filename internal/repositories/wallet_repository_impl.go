package repositories

import (
	"context"
	"errors"
	"fmt"

	"walletledger/internal/models"

	"gorm.io/gorm"
)

type walletRepository struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &walletRepository{db: db}
}

func (r *walletRepository) FindAll(ctx context.Context) ([]models.Wallet, error) {
	var wallets []models.Wallet
	if err := r.db.WithContext(ctx).Find(&wallets).Error; err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	return wallets, nil
}

func (r *walletRepository) FindByID(ctx context.Context, id uint) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := r.db.WithContext(ctx).First(&wallet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

func (r *walletRepository) Save(ctx context.Context, wallet *models.Wallet) error {
	if err := r.db.WithContext(ctx).Save(wallet).Error; err != nil {
		return fmt.Errorf("failed to save wallet: %w", err)
	}
	return nil
}

// Delete removes the wallet and its ledger entries in one transaction. The
// FK constraint already cascades on PostgreSQL; the explicit delete keeps
// the cascade guarantee on stores that do not enforce it.
func (r *walletRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("wallet_id = ?", id).Delete(&models.Ledger{}).Error; err != nil {
			return fmt.Errorf("failed to delete wallet ledger entries: %w", err)
		}
		result := tx.Delete(&models.Wallet{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete wallet: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrWalletNotFound
		}
		return nil
	})
}
