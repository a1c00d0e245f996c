package handlers

import (
	"SipMate-Backend/domain"
	"SipMate-Backend/internal/api/presenters"
	"SipMate-Backend/pkg/premium"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type (
	PremiumHandler interface {
		Subscribe(c *fiber.Ctx) error
		MidtransWebhook(c *fiber.Ctx) error
	}

	premiumHandler struct {
		premiumService premium.PremiumService
	}
)

func NewPremiumHandler(premiumService premium.PremiumService) PremiumHandler {
	return &premiumHandler{
		premiumService: premiumService,
	}
}

func (h *premiumHandler) Subscribe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.premiumService.CreateTransaction(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyPremium) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedSubscribe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSubscribe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSubscribe)
}

func (h *premiumHandler) MidtransWebhook(c *fiber.Ctx) error {
	req := new(domain.MidtransWebhookRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.premiumService.HandleWebhook(c.Context(), *req); err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedWebhook, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedWebhook, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessWebhook)
}
