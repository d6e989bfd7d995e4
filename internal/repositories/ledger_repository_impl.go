package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"walletledger/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Postgres error code for a foreign-key violation.
const fkViolationCode = "23503"

type ledgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) FindAll(ctx context.Context) ([]models.Ledger, error) {
	var ledgers []models.Ledger
	err := r.db.WithContext(ctx).
		Preload("Wallet").
		Preload("Transaction").
		Find(&ledgers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	return ledgers, nil
}

func (r *ledgerRepository) FindByID(ctx context.Context, id uint) (*models.Ledger, error) {
	var ledger models.Ledger
	err := r.db.WithContext(ctx).
		Preload("Wallet").
		Preload("Transaction").
		First(&ledger, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLedgerNotFound
		}
		return nil, fmt.Errorf("failed to get ledger entry: %w", err)
	}
	return &ledger, nil
}

func (r *ledgerRepository) Save(ctx context.Context, ledger *models.Ledger) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(ledger).Error
	if err != nil {
		if notFound := translateFKViolation(err); notFound != nil {
			return notFound
		}
		return fmt.Errorf("failed to save ledger entry: %w", err)
	}
	return nil
}

func (r *ledgerRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Ledger{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ledger entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrLedgerNotFound
	}
	return nil
}

// translateFKViolation maps a foreign-key constraint violation to the
// not-found sentinel of the missing reference. The existence checks run
// before validation, but a concurrent delete can still land between check
// and insert; the constraint closes that window at commit time.
func translateFKViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != fkViolationCode {
		return nil
	}
	if strings.Contains(pgErr.ConstraintName, "wallet") {
		return ErrWalletNotFound
	}
	return ErrTransactionNotFound
}
