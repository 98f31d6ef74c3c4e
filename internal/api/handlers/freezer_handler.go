package handlers

import (
	"freezer-backend/domain"
	"freezer-backend/internal/api/presenters"
	"freezer-backend/internal/utils"
	"freezer-backend/pkg/freezer"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FreezerHandler interface {
		GetFreezers(c *fiber.Ctx) error
		RenameFreezer(c *fiber.Ctx) error
	}

	freezerHandler struct {
		freezerService freezer.FreezerService
		validator      *validator.Validate
	}
)

func NewFreezerHandler(freezerService freezer.FreezerService, validator *validator.Validate) FreezerHandler {
	return &freezerHandler{
		freezerService: freezerService,
		validator:      validator,
	}
}

func (h *freezerHandler) GetFreezers(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.freezerService.GetFreezers(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetFreezers, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFreezers)
}

func (h *freezerHandler) RenameFreezer(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	freezerID := c.Params("id")

	if !utils.IsValidResourceID(freezerID) {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRenameFreezer, domain.ErrInvalidResourceID)
	}

	req := new(domain.RenameFreezerRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRenameFreezer, err)
	}

	res, err := h.freezerService.RenameFreezer(c.Context(), userID, freezerID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedRenameFreezer, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRenameFreezer)
}
