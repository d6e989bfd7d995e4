package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	errs "walletledger/internal/errors"
	"walletledger/internal/models"
	"walletledger/internal/repositories"
	"walletledger/internal/validation"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockLedgerRepo struct {
	mock.Mock
}

func (m *mockLedgerRepo) FindAll(ctx context.Context) ([]models.Ledger, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ledger), args.Error(1)
}

func (m *mockLedgerRepo) FindByID(ctx context.Context, id uint) (*models.Ledger, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ledger), args.Error(1)
}

func (m *mockLedgerRepo) Save(ctx context.Context, ledger *models.Ledger) error {
	args := m.Called(ctx, ledger)
	return args.Error(0)
}

func (m *mockLedgerRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockWalletRepo struct {
	mock.Mock
}

func (m *mockWalletRepo) FindAll(ctx context.Context) ([]models.Wallet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Wallet), args.Error(1)
}

func (m *mockWalletRepo) FindByID(ctx context.Context, id uint) (*models.Wallet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wallet), args.Error(1)
}

func (m *mockWalletRepo) Save(ctx context.Context, wallet *models.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *mockWalletRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockTransactionRepo struct {
	mock.Mock
}

func (m *mockTransactionRepo) FindAll(ctx context.Context) ([]models.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *mockTransactionRepo) FindByID(ctx context.Context, id uint) (*models.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *mockTransactionRepo) ExistsByReference(ctx context.Context, reference string, excludeID uint) (bool, error) {
	args := m.Called(ctx, reference, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockTransactionRepo) Save(ctx context.Context, transaction *models.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *mockTransactionRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type missCache struct {
	deleted []string
}

func (c *missCache) Get(context.Context, string, interface{}) error {
	return errors.New("cache miss")
}

func (c *missCache) Set(context.Context, string, interface{}) error { return nil }

func (c *missCache) Delete(_ context.Context, keys ...string) error {
	c.deleted = append(c.deleted, keys...)
	return nil
}

type deps struct {
	ledgers      *mockLedgerRepo
	wallets      *mockWalletRepo
	transactions *mockTransactionRepo
	cache        *missCache
}

func newTestService(t *testing.T) (Service, deps) {
	t.Helper()
	d := deps{
		ledgers:      new(mockLedgerRepo),
		wallets:      new(mockWalletRepo),
		transactions: new(mockTransactionRepo),
		cache:        &missCache{},
	}
	svc := NewService(d.ledgers, d.wallets, d.transactions, validation.New(d.transactions), d.cache)
	return svc, d
}

func strPtr(s string) *string { return &s }

func uintPtr(u uint) *uint { return &u }

func timePtr(t time.Time) *time.Time { return &t }

func decPtr(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

func typePtr(t models.TransactionType) *models.TransactionType { return &t }

func validCreateInput() CreateInput {
	return CreateInput{
		Amount:          decPtr(50.00),
		Description:     strPtr("pay"),
		TransactionDate: timePtr(time.Date(2023, 3, 1, 12, 0, 0, 0, time.UTC)),
		TransactionType: typePtr(models.TransactionTypeDebit),
		WalletID:        uintPtr(1),
		TransactionID:   uintPtr(1),
	}
}

func TestLedgerService_Create(t *testing.T) {
	t.Run("resolves both references then persists", func(t *testing.T) {
		svc, d := newTestService(t)
		d.wallets.On("FindByID", mock.Anything, uint(1)).Return(&models.Wallet{ID: 1}, nil)
		d.transactions.On("FindByID", mock.Anything, uint(1)).Return(&models.Transaction{ID: 1}, nil)
		d.ledgers.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Ledger).ID = 1
		}).Return(nil)

		created, err := svc.Create(context.Background(), validCreateInput())

		require.NoError(t, err)
		assert.Equal(t, uint(1), created.ID)
		assert.Equal(t, "pay", created.Description)
		assert.Equal(t, models.TransactionTypeDebit, created.TransactionType)
		assert.True(t, created.Amount.Equal(decimal.NewFromFloat(50)))
		d.ledgers.AssertExpectations(t)
	})

	t.Run("missing wallet is a reference error, not a validation failure", func(t *testing.T) {
		svc, d := newTestService(t)
		d.wallets.On("FindByID", mock.Anything, uint(1)).Return(nil, repositories.ErrWalletNotFound)

		_, err := svc.Create(context.Background(), validCreateInput())

		assert.ErrorIs(t, err, ErrWalletNotFound)
		var verr *errs.ValidationError
		assert.False(t, errors.As(err, &verr))
		d.ledgers.AssertNotCalled(t, "Save")
	})

	t.Run("missing transaction is a reference error", func(t *testing.T) {
		svc, d := newTestService(t)
		d.wallets.On("FindByID", mock.Anything, uint(1)).Return(&models.Wallet{ID: 1}, nil)
		d.transactions.On("FindByID", mock.Anything, uint(1)).Return(nil, repositories.ErrTransactionNotFound)

		_, err := svc.Create(context.Background(), validCreateInput())

		assert.ErrorIs(t, err, ErrTransactionNotFound)
		d.ledgers.AssertNotCalled(t, "Save")
	})

	t.Run("reference deleted between check and insert", func(t *testing.T) {
		svc, d := newTestService(t)
		d.wallets.On("FindByID", mock.Anything, uint(1)).Return(&models.Wallet{ID: 1}, nil)
		d.transactions.On("FindByID", mock.Anything, uint(1)).Return(&models.Transaction{ID: 1}, nil)
		d.ledgers.On("Save", mock.Anything, mock.Anything).Return(repositories.ErrWalletNotFound)

		_, err := svc.Create(context.Background(), validCreateInput())

		assert.ErrorIs(t, err, ErrWalletNotFound)
	})

	t.Run("names every missing field", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Create(context.Background(), CreateInput{})

		var verr *errs.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{
			"Field 'amount' is required.",
			"Field 'description' is required.",
			"Field 'transactionDate' is required.",
			"Field 'transactionType' is required.",
			"Field 'walletId' is required.",
			"Field 'transactionId' is required.",
		}, verr.Messages)
	})

	t.Run("rejects an unknown transaction type", func(t *testing.T) {
		svc, d := newTestService(t)
		d.wallets.On("FindByID", mock.Anything, uint(1)).Return(&models.Wallet{ID: 1}, nil)
		d.transactions.On("FindByID", mock.Anything, uint(1)).Return(&models.Transaction{ID: 1}, nil)

		input := validCreateInput()
		input.TransactionType = typePtr("transfer")
		_, err := svc.Create(context.Background(), input)

		var verr *errs.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"Transaction type must be credit or debit."}, verr.Messages)
		d.ledgers.AssertNotCalled(t, "Save")
	})
}

func TestLedgerService_Update(t *testing.T) {
	existing := func() *models.Ledger {
		return &models.Ledger{
			ID:              7,
			Amount:          decimal.NewFromFloat(50),
			Description:     "pay",
			TransactionDate: time.Date(2023, 3, 1, 12, 0, 0, 0, time.UTC),
			TransactionType: models.TransactionTypeDebit,
			WalletID:        1,
			TransactionID:   1,
		}
	}

	t.Run("description-only update leaves everything else unchanged", func(t *testing.T) {
		svc, d := newTestService(t)
		d.ledgers.On("FindByID", mock.Anything, uint(7)).Return(existing(), nil)
		d.ledgers.On("Save", mock.Anything, mock.Anything).Return(nil)

		updated, err := svc.Update(context.Background(), 7, UpdateInput{Description: strPtr("new text")})

		require.NoError(t, err)
		assert.Equal(t, "new text", updated.Description)
		assert.True(t, updated.Amount.Equal(decimal.NewFromFloat(50)))
		assert.Equal(t, models.TransactionTypeDebit, updated.TransactionType)
		assert.Equal(t, uint(1), updated.WalletID)
		assert.Equal(t, uint(1), updated.TransactionID)
		assert.Contains(t, d.cache.deleted, "ledger:7")
	})

	t.Run("swapping the wallet resolves the new reference first", func(t *testing.T) {
		svc, d := newTestService(t)
		d.ledgers.On("FindByID", mock.Anything, uint(7)).Return(existing(), nil)
		d.wallets.On("FindByID", mock.Anything, uint(2)).Return(nil, repositories.ErrWalletNotFound)

		_, err := svc.Update(context.Background(), 7, UpdateInput{WalletID: uintPtr(2)})

		assert.ErrorIs(t, err, ErrWalletNotFound)
		d.ledgers.AssertNotCalled(t, "Save")
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, d := newTestService(t)
		d.ledgers.On("FindByID", mock.Anything, uint(9)).Return(nil, repositories.ErrLedgerNotFound)

		_, err := svc.Update(context.Background(), 9, UpdateInput{Description: strPtr("x")})

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestLedgerService_Delete(t *testing.T) {
	t.Run("deleting an entry touches nothing else", func(t *testing.T) {
		svc, d := newTestService(t)
		d.ledgers.On("Delete", mock.Anything, uint(7)).Return(nil)

		require.NoError(t, svc.Delete(context.Background(), 7))

		assert.Contains(t, d.cache.deleted, "ledger:7")
		d.wallets.AssertNotCalled(t, "Delete")
		d.transactions.AssertNotCalled(t, "Delete")
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, d := newTestService(t)
		d.ledgers.On("Delete", mock.Anything, uint(9)).Return(repositories.ErrLedgerNotFound)

		assert.ErrorIs(t, svc.Delete(context.Background(), 9), ErrNotFound)
	})
}
