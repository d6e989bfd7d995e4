// Package handlers exposes the HTTP surface. Handlers coerce wire input
// into typed service inputs and map service outcomes onto the response
// taxonomy: 400 with messages for rejected writes, 404 for missing records,
// 500 only for infrastructure failures.
package handlers

import (
	"errors"
	"time"

	errs "walletledger/internal/errors"
	"walletledger/internal/services/ledger"
	"walletledger/internal/services/transaction"
	"walletledger/internal/services/wallet"
	"walletledger/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

const malformedPayload = "No valid JSON payload provided"

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(time.RFC3339, value)
}

// writeServiceError translates a service error into the HTTP response.
// Reference errors on ledger writes are client input errors (400) with a
// message naming the missing reference; a missing addressed record is 404.
func writeServiceError(c *fiber.Ctx, err error) error {
	var verr *errs.ValidationError
	if errors.As(err, &verr) {
		return response.BadRequest(c, verr.Messages...)
	}

	switch {
	case errors.Is(err, wallet.ErrNotFound):
		return response.NotFound(c, "Wallet not found.")
	case errors.Is(err, transaction.ErrNotFound):
		return response.NotFound(c, "Transaction not found.")
	case errors.Is(err, ledger.ErrNotFound):
		return response.NotFound(c, "Ledger entry not found.")
	case errors.Is(err, ledger.ErrWalletNotFound):
		return response.BadRequest(c, "Wallet not found.")
	case errors.Is(err, ledger.ErrTransactionNotFound):
		return response.BadRequest(c, "Transaction not found.")
	}

	return response.ServerError(c, "Internal server error")
}
