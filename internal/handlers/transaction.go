package handlers

import (
	"time"

	"walletledger/internal/services/transaction"
	"walletledger/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	service transaction.Service
}

func NewTransactionHandler(service transaction.Service) *TransactionHandler {
	return &TransactionHandler{service: service}
}

type transactionRequest struct {
	Reference       *string `json:"reference"`
	Description     *string `json:"description"`
	TransactionDate *string `json:"transactionDate"`
}

// parseTransactionDate coerces the wire date, reporting a dedicated message
// so a bad date is not mistaken for a malformed payload.
func (r *transactionRequest) parseTransactionDate() (*time.Time, error) {
	if r.TransactionDate == nil {
		return nil, nil
	}
	parsed, err := parseDate(*r.TransactionDate)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func (h *TransactionHandler) ListTransactions(c *fiber.Ctx) error {
	transactions, err := h.service.List(c.Context())
	if err != nil {
		return response.ServerError(c, "Failed to list transactions")
	}
	return response.OK(c, transactions)
}

func (h *TransactionHandler) CreateTransaction(c *fiber.Ctx) error {
	var req transactionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, malformedPayload)
	}
	date, err := req.parseTransactionDate()
	if err != nil {
		return response.BadRequest(c, "Invalid transactionDate format.")
	}

	created, err := h.service.Create(c.Context(), transaction.CreateInput{
		Reference:       req.Reference,
		Description:     req.Description,
		TransactionDate: date,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return response.Created(c, created)
}

func (h *TransactionHandler) GetTransaction(c *fiber.Ctx) error {
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

func (h *TransactionHandler) UpdateTransaction(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid id provided.")
	}

	var req transactionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, malformedPayload)
	}
	date, err := req.parseTransactionDate()
	if err != nil {
		return response.BadRequest(c, "Invalid transactionDate format.")
	}

	updated, err := h.service.Update(c.Context(), id, transaction.UpdateInput{
		Reference:       req.Reference,
		Description:     req.Description,
		TransactionDate: date,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return response.OK(c, updated)
}

func (h *TransactionHandler) DeleteTransaction(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid id provided.")
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return response.NoContent(c)
}
