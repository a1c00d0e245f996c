package handlers

import (
	"SipMate-Backend/domain"
	"SipMate-Backend/internal/api/presenters"
	"SipMate-Backend/pkg/cellar"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CellarHandler interface {
		SaveWine(c *fiber.Ctx) error
		UnsaveWine(c *fiber.Ctx) error
		GetSavedWines(c *fiber.Ctx) error
	}

	cellarHandler struct {
		cellarService cellar.CellarService
		validator     *validator.Validate
	}
)

func NewCellarHandler(cellarService cellar.CellarService, validator *validator.Validate) CellarHandler {
	return &cellarHandler{
		cellarService: cellarService,
		validator:     validator,
	}
}

func (h *cellarHandler) SaveWine(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SaveWineRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveWine, err)
	}

	res, err := h.cellarService.SaveWine(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrWineNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedSaveWine, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveWine, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSaveWine)
}

func (h *cellarHandler) UnsaveWine(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	wineID := c.Params("wine_id")

	if err := h.cellarService.UnsaveWine(c.Context(), wineID, userID); err != nil {
		if errors.Is(err, domain.ErrSavedWineNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUnsaveWine, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUnsaveWine, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUnsaveWine)
}

func (h *cellarHandler) GetSavedWines(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.cellarService.GetSavedWines(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSavedWines, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSavedWines)
}
