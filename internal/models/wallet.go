package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Wallet holds a monetary balance in a single currency. Its ledger entries
// are owned by the wallet: deleting the wallet removes them as well.
type Wallet struct {
	ID        uint            `gorm:"primarykey" json:"id"`
	Name      string          `gorm:"size:100;not null" json:"name" validate:"required,notblank,max=100"`
	Balance   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"balance"`
	Currency  string          `gorm:"size:3;not null" json:"currency" validate:"required,len=3,alpha"`
	CreatedAt time.Time       `json:"-"`
	UpdatedAt time.Time       `json:"-"`
}

// Normalize brings a wallet into canonical form before validation and
// persistence: the balance carries exactly two fractional digits and the
// currency code is uppercase.
func (w *Wallet) Normalize() {
	w.Balance = RoundMoney(w.Balance)
	w.Currency = strings.ToUpper(strings.TrimSpace(w.Currency))
}
