package handlers

import (
	"time"

	"walletledger/internal/models"
	"walletledger/internal/services/ledger"
	"walletledger/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type LedgerHandler struct {
	service ledger.Service
}

func NewLedgerHandler(service ledger.Service) *LedgerHandler {
	return &LedgerHandler{service: service}
}

type ledgerRequest struct {
	Amount          *decimal.Decimal `json:"amount"`
	Description     *string          `json:"description"`
	TransactionDate *string          `json:"transactionDate"`
	TransactionType *string          `json:"transactionType"`
	WalletID        *uint            `json:"walletId"`
	TransactionID   *uint            `json:"transactionId"`
}

func (r *ledgerRequest) parseTransactionDate() (*time.Time, error) {
	if r.TransactionDate == nil {
		return nil, nil
	}
	parsed, err := parseDate(*r.TransactionDate)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// transactionType passes the raw string through as the closed enum type;
// values outside {credit, debit} are rejected by validation, not here.
func (r *ledgerRequest) transactionType() *models.TransactionType {
	if r.TransactionType == nil {
		return nil
	}
	t := models.TransactionType(*r.TransactionType)
	return &t
}

func (h *LedgerHandler) ListLedgers(c *fiber.Ctx) error {
	ledgers, err := h.service.List(c.Context())
	if err != nil {
		return response.ServerError(c, "Failed to list ledger entries")
	}
	return response.OK(c, ledgers)
}

func (h *LedgerHandler) CreateLedger(c *fiber.Ctx) error {
	var req ledgerRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, malformedPayload)
	}
	date, err := req.parseTransactionDate()
	if err != nil {
		return response.BadRequest(c, "Invalid transactionDate format.")
	}

	created, err := h.service.Create(c.Context(), ledger.CreateInput{
		Amount:          req.Amount,
		Description:     req.Description,
		TransactionDate: date,
		TransactionType: req.transactionType(),
		WalletID:        req.WalletID,
		TransactionID:   req.TransactionID,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return response.Created(c, created)
}

func (h *LedgerHandler) GetLedger(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid id provided.")
	}

	found, err := h.service.Get(c.Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return response.OK(c, found)
}

func (h *LedgerHandler) UpdateLedger(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid id provided.")
	}

	var req ledgerRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, malformedPayload)
	}
	date, err := req.parseTransactionDate()
	if err != nil {
		return response.BadRequest(c, "Invalid transactionDate format.")
	}

	updated, err := h.service.Update(c.Context(), id, ledger.UpdateInput{
		Amount:          req.Amount,
		Description:     req.Description,
		TransactionDate: date,
		TransactionType: req.transactionType(),
		WalletID:        req.WalletID,
		TransactionID:   req.TransactionID,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return response.OK(c, updated)
}

func (h *LedgerHandler) DeleteLedger(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid id provided.")
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return response.NoContent(c)
}
