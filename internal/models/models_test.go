package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionTypeIsValid(t *testing.T) {
	assert.True(t, TransactionTypeCredit.IsValid())
	assert.True(t, TransactionTypeDebit.IsValid())
	assert.False(t, TransactionType("transfer").IsValid())
	assert.False(t, TransactionType("").IsValid())
	assert.False(t, TransactionType("Credit").IsValid(), "enum is case sensitive")
}

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already canonical", "10.50", "10.5"},
		{"rounds half up", "10.005", "10.01"},
		{"truncates extra precision", "3.14159", "3.14"},
		{"zero", "0", "0"},
		{"negative rounds away from zero", "-2.675", "-2.68"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := decimal.RequireFromString(tt.in)
			assert.Equal(t, tt.want, RoundMoney(in).String())
		})
	}
}

func TestWalletNormalize(t *testing.T) {
	w := Wallet{
		Name:     "Main",
		Balance:  decimal.RequireFromString("100.005"),
		Currency: "usd",
	}
	w.Normalize()

	assert.Equal(t, "100.01", w.Balance.String())
	assert.Equal(t, "USD", w.Currency)
}

func TestTransactionNormalize(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	tx := Transaction{
		Reference:       "  TX1  ",
		Description:     "d",
		TransactionDate: time.Date(2023, 3, 1, 13, 0, 0, 500_000_000, loc),
	}
	tx.Normalize()

	assert.Equal(t, "TX1", tx.Reference)
	assert.Equal(t, time.Date(2023, 3, 1, 12, 0, 0, 0, time.UTC), tx.TransactionDate)
}

func TestLedgerNormalize(t *testing.T) {
	l := Ledger{
		Amount:          decimal.RequireFromString("19.999"),
		TransactionDate: time.Date(2023, 3, 1, 12, 0, 0, 999_000_000, time.UTC),
	}
	l.Normalize()

	assert.Equal(t, "20", l.Amount.String())
	assert.True(t, l.TransactionDate.Equal(time.Date(2023, 3, 1, 12, 0, 0, 0, time.UTC)))
}
