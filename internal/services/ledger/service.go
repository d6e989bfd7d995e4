// Package ledger implements the ledger-entry CRUD service. A write first
// resolves both foreign keys against the store and fails fast with a
// reference error before any field validation runs; the repository's
// constraint translation covers a reference deleted after the check.
package ledger

import (
	"context"
	"errors"
	"fmt"

	errs "walletledger/internal/errors"
	"walletledger/internal/models"
	"walletledger/internal/repositories"
	"walletledger/internal/validation"
)

type service struct {
	repo         repositories.LedgerRepository
	wallets      repositories.WalletRepository
	transactions repositories.TransactionRepository
	validator    *validation.Validator
	cache        Cache
}

func NewService(
	repo repositories.LedgerRepository,
	wallets repositories.WalletRepository,
	transactions repositories.TransactionRepository,
	validator *validation.Validator,
	cache Cache,
) Service {
	return &service{
		repo:         repo,
		wallets:      wallets,
		transactions: transactions,
		validator:    validator,
		cache:        cache,
	}
}

func (s *service) List(ctx context.Context) ([]models.Ledger, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) Get(ctx context.Context, id uint) (*models.Ledger, error) {
	var cached models.Ledger
	if err := s.cache.Get(ctx, ledgerKey(id), &cached); err == nil {
		return &cached, nil
	}

	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrLedgerNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	_ = s.cache.Set(ctx, ledgerKey(id), entry)
	return entry, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*models.Ledger, error) {
	var missing []string
	if input.Amount == nil {
		missing = append(missing, "Field 'amount' is required.")
	}
	if input.Description == nil {
		missing = append(missing, "Field 'description' is required.")
	}
	if input.TransactionDate == nil {
		missing = append(missing, "Field 'transactionDate' is required.")
	}
	if input.TransactionType == nil {
		missing = append(missing, "Field 'transactionType' is required.")
	}
	if input.WalletID == nil {
		missing = append(missing, "Field 'walletId' is required.")
	}
	if input.TransactionID == nil {
		missing = append(missing, "Field 'transactionId' is required.")
	}
	if len(missing) > 0 {
		return nil, errs.NewValidation(missing...)
	}

	if err := s.resolveWallet(ctx, *input.WalletID); err != nil {
		return nil, err
	}
	if err := s.resolveTransaction(ctx, *input.TransactionID); err != nil {
		return nil, err
	}

	entry := &models.Ledger{
		Amount:          *input.Amount,
		Description:     *input.Description,
		TransactionDate: *input.TransactionDate,
		TransactionType: *input.TransactionType,
		WalletID:        *input.WalletID,
		TransactionID:   *input.TransactionID,
	}
	entry.Normalize()

	if messages := s.validator.ValidateLedger(entry); len(messages) > 0 {
		return nil, errs.NewValidation(messages...)
	}

	if err := s.save(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *service) Update(ctx context.Context, id uint, input UpdateInput) (*models.Ledger, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrLedgerNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.Amount != nil {
		entry.Amount = *input.Amount
	}
	if input.Description != nil {
		entry.Description = *input.Description
	}
	if input.TransactionDate != nil {
		entry.TransactionDate = *input.TransactionDate
	}
	if input.TransactionType != nil {
		entry.TransactionType = *input.TransactionType
	}
	if input.WalletID != nil {
		if err := s.resolveWallet(ctx, *input.WalletID); err != nil {
			return nil, err
		}
		entry.WalletID = *input.WalletID
	}
	if input.TransactionID != nil {
		if err := s.resolveTransaction(ctx, *input.TransactionID); err != nil {
			return nil, err
		}
		entry.TransactionID = *input.TransactionID
	}
	entry.Normalize()

	if messages := s.validator.ValidateLedger(entry); len(messages) > 0 {
		return nil, errs.NewValidation(messages...)
	}

	if err := s.save(ctx, entry); err != nil {
		return nil, err
	}

	// Re-read so a swapped reference comes back with its current row.
	return s.repo.FindByID(ctx, entry.ID)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrLedgerNotFound) {
			return ErrNotFound
		}
		return err
	}
	_ = s.cache.Delete(ctx, ledgerKey(id))
	return nil
}

func (s *service) save(ctx context.Context, entry *models.Ledger) error {
	if err := s.repo.Save(ctx, entry); err != nil {
		switch {
		case errors.Is(err, repositories.ErrWalletNotFound):
			return ErrWalletNotFound
		case errors.Is(err, repositories.ErrTransactionNotFound):
			return ErrTransactionNotFound
		}
		return err
	}
	_ = s.cache.Delete(ctx, ledgerKey(entry.ID))
	return nil
}

func (s *service) resolveWallet(ctx context.Context, id uint) error {
	if _, err := s.wallets.FindByID(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return ErrWalletNotFound
		}
		return err
	}
	return nil
}

func (s *service) resolveTransaction(ctx context.Context, id uint) error {
	if _, err := s.transactions.FindByID(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return ErrTransactionNotFound
		}
		return err
	}
	return nil
}

func ledgerKey(id uint) string {
	return fmt.Sprintf("ledger:%d", id)
}
