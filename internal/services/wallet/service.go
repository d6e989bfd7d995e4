// Package wallet implements the wallet CRUD service: presence checks,
// normalization, rule validation, persistence, and cache upkeep.
package wallet

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
	repo      repositories.WalletRepository
	validator *validation.Validator
	cache     Cache
}

func NewService(repo repositories.WalletRepository, validator *validation.Validator, cache Cache) Service {
	return &service{
		repo:      repo,
		validator: validator,
		cache:     cache,
	}
}

func (s *service) List(ctx context.Context) ([]models.Wallet, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) Get(ctx context.Context, id uint) (*models.Wallet, error) {
	var cached models.Wallet
	if err := s.cache.Get(ctx, walletKey(id), &cached); err == nil {
		return &cached, nil
	}

	wallet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	_ = s.cache.Set(ctx, walletKey(id), wallet)
	return wallet, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*models.Wallet, error) {
	var missing []string
	if input.Name == nil {
		missing = append(missing, "Wallet name cannot be blank.")
	}
	if input.Balance == nil {
		missing = append(missing, "Wallet balance must be provided.")
	}
	if input.Currency == nil {
		missing = append(missing, "Wallet currency cannot be blank.")
	}
	if len(missing) > 0 {
		return nil, errs.NewValidation(missing...)
	}

	wallet := &models.Wallet{
		Name:     *input.Name,
		Balance:  *input.Balance,
		Currency: *input.Currency,
	}
	wallet.Normalize()

	if messages := s.validator.ValidateWallet(wallet); len(messages) > 0 {
		return nil, errs.NewValidation(messages...)
	}

	if err := s.repo.Save(ctx, wallet); err != nil {
		return nil, err
	}
	return wallet, nil
}

func (s *service) Update(ctx context.Context, id uint, input UpdateInput) (*models.Wallet, error) {
	wallet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.Name != nil {
		wallet.Name = *input.Name
	}
	if input.Balance != nil {
		wallet.Balance = *input.Balance
	}
	if input.Currency != nil {
		wallet.Currency = *input.Currency
	}
	wallet.Normalize()

	if messages := s.validator.ValidateWallet(wallet); len(messages) > 0 {
		return nil, errs.NewValidation(messages...)
	}

	if err := s.repo.Save(ctx, wallet); err != nil {
		return nil, err
	}
	// Cached ledger reads embed the wallet summary, so they go stale too.
	_ = s.cache.Delete(ctx, walletKey(id))
	_ = s.cache.DeletePattern(ctx, "ledger:*")
	return wallet, nil
}

// Delete removes the wallet and, through the repository's cascade, all of
// its ledger entries. Cached ledger reads are dropped wholesale since the
// deleted entry ids are not known here.
func (s *service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return ErrNotFound
		}
		return err
	}
	_ = s.cache.Delete(ctx, walletKey(id))
	_ = s.cache.DeletePattern(ctx, "ledger:*")
	return nil
}

func walletKey(id uint) string {
	return fmt.Sprintf("wallet:%d", id)
}
