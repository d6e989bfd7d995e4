package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a ledger posting. The amount itself is
// always non-negative; direction is carried here.
type TransactionType string

const (
	TransactionTypeCredit TransactionType = "credit"
	TransactionTypeDebit  TransactionType = "debit"
)

func (t TransactionType) IsValid() bool {
	return t == TransactionTypeCredit || t == TransactionTypeDebit
}

// Ledger is a single posting tied to exactly one wallet and one transaction.
// It owns the foreign keys; the reverse direction (a wallet's entries) is a
// query, never a maintained collection. Both FK constraints cascade on
// delete, so an entry cannot outlive its wallet or transaction.
type Ledger struct {
	ID              uint            `gorm:"primarykey" json:"id"`
	Amount          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Description     string          `gorm:"size:255;not null" json:"description" validate:"required,notblank,max=255"`
	TransactionDate time.Time       `gorm:"not null" json:"transactionDate" validate:"required"`
	TransactionType TransactionType `gorm:"size:50;not null" json:"transactionType" validate:"required,oneof=credit debit"`
	WalletID        uint            `gorm:"not null;index" json:"walletId" validate:"required"`
	TransactionID   uint            `gorm:"not null;index" json:"transactionId" validate:"required"`
	CreatedAt       time.Time       `json:"-"`
	UpdatedAt       time.Time       `json:"-"`

	Wallet      *Wallet      `gorm:"constraint:OnDelete:CASCADE" json:"wallet,omitempty"`
	Transaction *Transaction `gorm:"constraint:OnDelete:CASCADE" json:"transaction,omitempty"`
}

// Normalize brings a ledger entry into canonical form: two fractional digits
// on the amount and a second-precision UTC date.
func (l *Ledger) Normalize() {
	l.Amount = RoundMoney(l.Amount)
	l.TransactionDate = l.TransactionDate.UTC().Truncate(time.Second)
}
