package handlers

import (
	"SipMate-Backend/domain"
	"SipMate-Backend/internal/api/presenters"
	"SipMate-Backend/pkg/wine"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	WineHandler interface {
		GetWines(c *fiber.Ctx) error
		GetWineDetails(c *fiber.Ctx) error
	}

	wineHandler struct {
		wineService wine.WineService
		validator   *validator.Validate
	}
)

func NewWineHandler(wineService wine.WineService, validator *validator.Validate) WineHandler {
	return &wineHandler{
		wineService: wineService,
		validator:   validator,
	}
}

func (h *wineHandler) GetWines(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	query := c.Query("q")
	wineType := c.Query("type", wine.TypeAll)
	sortKey := c.Query("sort", wine.SortNameAsc)

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	wines, count, err := h.wineService.BrowseWines(c.Context(), userID, query, wineType, sortKey, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetWines, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"wines": wines,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetWines)
}

func (h *wineHandler) GetWineDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	wineID := c.Params("id")

	res, err := h.wineService.GetWineByID(c.Context(), wineID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrWineNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetWineDetail, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetWineDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWineDetail)
}
