// Package transaction implements the transaction CRUD service. Reference
// uniqueness is enforced here at validation time, against the store, so a
// duplicate surfaces as a normal rejection rather than a constraint error.
package transaction

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
	repo      repositories.TransactionRepository
	validator *validation.Validator
	cache     Cache
}

func NewService(repo repositories.TransactionRepository, validator *validation.Validator, cache Cache) Service {
	return &service{
		repo:      repo,
		validator: validator,
		cache:     cache,
	}
}

func (s *service) List(ctx context.Context) ([]models.Transaction, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) Get(ctx context.Context, id uint) (*models.Transaction, error) {
	var cached models.Transaction
	if err := s.cache.Get(ctx, transactionKey(id), &cached); err == nil {
		return &cached, nil
	}

	transaction, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	_ = s.cache.Set(ctx, transactionKey(id), transaction)
	return transaction, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*models.Transaction, error) {
	var missing []string
	if input.Reference == nil {
		missing = append(missing, "Field 'reference' is required.")
	}
	if input.Description == nil {
		missing = append(missing, "Field 'description' is required.")
	}
	if input.TransactionDate == nil {
		missing = append(missing, "Field 'transactionDate' is required.")
	}
	if len(missing) > 0 {
		return nil, errs.NewValidation(missing...)
	}

	transaction := &models.Transaction{
		Reference:       *input.Reference,
		Description:     *input.Description,
		TransactionDate: *input.TransactionDate,
	}
	transaction.Normalize()

	if err := s.validateAndSave(ctx, transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}

func (s *service) Update(ctx context.Context, id uint, input UpdateInput) (*models.Transaction, error) {
	transaction, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.Reference != nil {
		transaction.Reference = *input.Reference
	}
	if input.Description != nil {
		transaction.Description = *input.Description
	}
	if input.TransactionDate != nil {
		transaction.TransactionDate = *input.TransactionDate
	}
	transaction.Normalize()

	if err := s.validateAndSave(ctx, transaction); err != nil {
		return nil, err
	}
	// Cached ledger reads embed the transaction summary, so they go stale too.
	_ = s.cache.DeletePattern(ctx, "ledger:*")
	return transaction, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return ErrNotFound
		}
		return err
	}
	_ = s.cache.Delete(ctx, transactionKey(id))
	_ = s.cache.DeletePattern(ctx, "ledger:*")
	return nil
}

func (s *service) validateAndSave(ctx context.Context, transaction *models.Transaction) error {
	messages, err := s.validator.ValidateTransaction(ctx, transaction)
	if err != nil {
		return err
	}
	if len(messages) > 0 {
		return errs.NewValidation(messages...)
	}
	if err := s.repo.Save(ctx, transaction); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, transactionKey(transaction.ID))
	return nil
}

func transactionKey(id uint) string {
	return fmt.Sprintf("transaction:%d", id)
}
