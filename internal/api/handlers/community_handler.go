package handlers

import (
	"SipMate-Backend/domain"
	"SipMate-Backend/internal/api/presenters"
	"SipMate-Backend/pkg/community"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CommunityHandler interface {
		GetPosts(c *fiber.Ctx) error
		CreatePost(c *fiber.Ctx) error
		DeletePost(c *fiber.Ctx) error
		ToggleLike(c *fiber.Ctx) error
		GetComments(c *fiber.Ctx) error
		CreateComment(c *fiber.Ctx) error
	}

	communityHandler struct {
		communityService community.CommunityService
		validator        *validator.Validate
	}
)

func NewCommunityHandler(communityService community.CommunityService, validator *validator.Validate) CommunityHandler {
	return &communityHandler{
		communityService: communityService,
		validator:        validator,
	}
}

func (h *communityHandler) GetPosts(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	posts, total, err := h.communityService.GetPosts(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPosts, err)
	}

	res := fiber.Map{
		"posts": posts,
		"total": total,
		"page":  page,
		"limit": limit,
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPosts)
}

func (h *communityHandler) CreatePost(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreatePostRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if image, err := c.FormFile("image"); err == nil {
		req.Image = image
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePost, err)
	}

	res, err := h.communityService.CreatePost(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyPostContent) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePost, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreatePost, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreatePost)
}

func (h *communityHandler) DeletePost(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	postID := c.Params("post_id")

	if err := h.communityService.DeletePost(c.Context(), postID, userID); err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeletePost, err)
		}
		if errors.Is(err, domain.ErrNotPostOwner) {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedDeletePost, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeletePost, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeletePost)
}

func (h *communityHandler) ToggleLike(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	postID := c.Params("post_id")

	res, err := h.communityService.ToggleLike(c.Context(), postID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedToggleLike, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleLike, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleLike)
}

func (h *communityHandler) GetComments(c *fiber.Ctx) error {
	postID := c.Params("post_id")

	res, err := h.communityService.GetComments(c.Context(), postID)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetComments, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetComments, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetComments)
}

func (h *communityHandler) CreateComment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	postID := c.Params("post_id")
	req := new(domain.CreateCommentRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateComment, err)
	}

	res, err := h.communityService.CreateComment(c.Context(), postID, *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedCreateComment, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateComment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateComment)
}
