package models

import (
	"strings"
	"time"
)

// Transaction groups related ledger postings under a reference that is
// unique across the whole table. The reference is the natural key used for
// external reconciliation; the surrogate id stays internal.
type Transaction struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	Reference       string    `gorm:"size:100;uniqueIndex;not null" json:"reference" validate:"required,notblank,max=100"`
	Description     string    `gorm:"size:255;not null" json:"description" validate:"required,notblank,max=255"`
	TransactionDate time.Time `gorm:"not null" json:"transactionDate" validate:"required"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}

// Normalize trims the reference and truncates the date to second precision
// in UTC, the granularity the column stores.
func (t *Transaction) Normalize() {
	t.Reference = strings.TrimSpace(t.Reference)
	t.TransactionDate = t.TransactionDate.UTC().Truncate(time.Second)
}
