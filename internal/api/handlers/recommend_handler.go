package handlers

import (
	"SipMate-Backend/domain"
	"SipMate-Backend/internal/api/presenters"
	"SipMate-Backend/pkg/recommend"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecommendHandler interface {
		GetRecommendations(c *fiber.Ctx) error
		ToggleMood(c *fiber.Ctx) error
		TogglePriceBand(c *fiber.Ctx) error
		GetMoods(c *fiber.Ctx) error
		GetPriceBands(c *fiber.Ctx) error
		Chat(c *fiber.Ctx) error
		GetTranscript(c *fiber.Ctx) error
	}

	recommendHandler struct {
		recommendService recommend.RecommendService
		validator        *validator.Validate
	}
)

func NewRecommendHandler(recommendService recommend.RecommendService, validator *validator.Validate) RecommendHandler {
	return &recommendHandler{
		recommendService: recommendService,
		validator:        validator,
	}
}

func (h *recommendHandler) GetRecommendations(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.recommendService.GetRecommendations(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecommendations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecommendations)
}

func (h *recommendHandler) ToggleMood(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	label := c.Params("label")

	res, err := h.recommendService.ToggleMood(c.Context(), userID, label)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownMood) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedToggleMood, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleMood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleMood)
}

func (h *recommendHandler) TogglePriceBand(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	label := c.Params("label")

	res, err := h.recommendService.TogglePriceBand(c.Context(), userID, label)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownPriceBand) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedTogglePriceBand, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedTogglePriceBand, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessTogglePriceBand)
}

func (h *recommendHandler) GetMoods(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.recommendService.Moods(), fiber.StatusOK, domain.MessageSuccessGetTaxonomy)
}

func (h *recommendHandler) GetPriceBands(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.recommendService.PriceBands(), fiber.StatusOK, domain.MessageSuccessGetTaxonomy)
}

func (h *recommendHandler) Chat(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ChatRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedChat, err)
	}

	res, err := h.recommendService.Chat(c.Context(), userID, req.Message)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedChat, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessChat)
}

func (h *recommendHandler) GetTranscript(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.recommendService.GetTranscript(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTranscript, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTranscript)
}
