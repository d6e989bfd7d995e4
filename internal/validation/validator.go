// Package validation evaluates the declarative field rules on the entity
// models and collects every violation as a human-readable message. It never
// rejects a write itself; callers decide what to do with a non-empty result.
package validation

import (
	"context"
	"errors"
	"strings"

	"walletledger/internal/models"

	"github.com/go-playground/validator/v10"
)

// TransactionLookup answers whether a reference is already taken, backing
// the uniqueness rule against the store rather than in-memory state.
type TransactionLookup interface {
	ExistsByReference(ctx context.Context, reference string, excludeID uint) (bool, error)
}

// Validator runs all applicable rules for an entity and returns the full
// ordered list of failures, not just the first.
type Validator struct {
	validate     *validator.Validate
	transactions TransactionLookup
}

func New(transactions TransactionLookup) *Validator {
	v := validator.New()
	// "required" passes for strings of only whitespace; notblank does not.
	v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return &Validator{
		validate:     v,
		transactions: transactions,
	}
}

// ValidateWallet checks the wallet field rules: non-blank bounded name,
// 3-letter currency, non-negative balance.
func (v *Validator) ValidateWallet(wallet *models.Wallet) []string {
	messages := v.collect(wallet, walletMessage)
	if wallet.Balance.IsNegative() {
		messages = append(messages, "Wallet balance cannot be negative.")
	}
	return messages
}

// ValidateTransaction checks field rules plus reference uniqueness. The
// store lookup excludes the transaction's own id so updates do not collide
// with themselves. The error return is an infrastructure failure, never a
// validation outcome.
func (v *Validator) ValidateTransaction(ctx context.Context, transaction *models.Transaction) ([]string, error) {
	messages := v.collect(transaction, transactionMessage)
	if transaction.Reference != "" {
		taken, err := v.transactions.ExistsByReference(ctx, transaction.Reference, transaction.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			messages = append(messages, "Transaction reference must be unique.")
		}
	}
	return messages, nil
}

// ValidateLedger checks the field rules of an assembled ledger entry. The
// caller must have resolved the wallet and transaction references before
// this runs; a zero foreign key here is a rule violation, not a lookup.
func (v *Validator) ValidateLedger(ledger *models.Ledger) []string {
	messages := v.collect(ledger, ledgerMessage)
	if ledger.Amount.IsNegative() {
		messages = append(messages, "Amount cannot be negative.")
	}
	return messages
}

func (v *Validator) collect(entity interface{}, messageFor func(validator.FieldError) string) []string {
	var messages []string
	err := v.validate.Struct(entity)
	if err == nil {
		return messages
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}
	for _, fe := range fieldErrs {
		messages = append(messages, messageFor(fe))
	}
	return messages
}

func walletMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		if fe.Tag() == "max" {
			return "Wallet name cannot exceed 100 characters."
		}
		return "Wallet name cannot be blank."
	case "Currency":
		if fe.Tag() == "required" {
			return "Wallet currency cannot be blank."
		}
		return "Wallet currency must be a 3-letter code."
	}
	return fe.Error()
}

func transactionMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Reference":
		if fe.Tag() == "max" {
			return "Transaction reference cannot exceed 100 characters."
		}
		return "Transaction reference cannot be blank."
	case "Description":
		if fe.Tag() == "max" {
			return "Description cannot exceed 255 characters."
		}
		return "Description cannot be blank."
	case "TransactionDate":
		return "Transaction date is required."
	}
	return fe.Error()
}

func ledgerMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Description":
		if fe.Tag() == "max" {
			return "Description cannot exceed 255 characters."
		}
		return "Description cannot be blank."
	case "TransactionDate":
		return "Transaction date is required."
	case "TransactionType":
		if fe.Tag() == "oneof" {
			return "Transaction type must be credit or debit."
		}
		return "Transaction type is required."
	case "WalletID":
		return "Wallet must be associated with the ledger entry."
	case "TransactionID":
		return "Transaction must be associated with the ledger entry."
	}
	return fe.Error()
}
