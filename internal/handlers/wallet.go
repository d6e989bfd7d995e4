package handlers

import (
	"walletledger/internal/services/wallet"
	"walletledger/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type WalletHandler struct {
	service wallet.Service
}

func NewWalletHandler(service wallet.Service) *WalletHandler {
	return &WalletHandler{service: service}
}

type walletRequest struct {
	Name     *string          `json:"name"`
	Balance  *decimal.Decimal `json:"balance"`
	Currency *string          `json:"currency"`
}

func (h *WalletHandler) ListWallets(c *fiber.Ctx) error {
	wallets, err := h.service.List(c.Context())
	if err != nil {
		return response.ServerError(c, "Failed to list wallets")
	}
	return response.OK(c, wallets)
}

func (h *WalletHandler) CreateWallet(c *fiber.Ctx) error {
	var req walletRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, malformedPayload)
	}

	created, err := h.service.Create(c.Context(), wallet.CreateInput{
		Name:     req.Name,
		Balance:  req.Balance,
		Currency: req.Currency,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return response.Created(c, created)
}

func (h *WalletHandler) GetWallet(c *fiber.Ctx) error {
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

func (h *WalletHandler) UpdateWallet(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid id provided.")
	}

	var req walletRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, malformedPayload)
	}

	updated, err := h.service.Update(c.Context(), id, wallet.UpdateInput{
		Name:     req.Name,
		Balance:  req.Balance,
		Currency: req.Currency,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return response.OK(c, updated)
}

func (h *WalletHandler) DeleteWallet(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid id provided.")
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return response.NoContent(c)
}
