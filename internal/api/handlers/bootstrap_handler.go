package handlers

import (
	"freezer-backend/domain"
	"freezer-backend/internal/api/presenters"
	"freezer-backend/pkg/bootstrap"

	"github.com/gofiber/fiber/v2"
)

type (
	BootstrapHandler interface {
		Bootstrap(c *fiber.Ctx) error
	}

	bootstrapHandler struct {
		bootstrapService bootstrap.BootstrapService
	}
)

func NewBootstrapHandler(bootstrapService bootstrap.BootstrapService) BootstrapHandler {
	return &bootstrapHandler{bootstrapService: bootstrapService}
}

func (h *bootstrapHandler) Bootstrap(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	created, err := h.bootstrapService.EnsureUserInitialized(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedInitializeUser, err)
	}

	message := domain.MessageUserAlreadyInitialized
	if created {
		message = domain.MessageUserInitialized
	}

	return presenters.SuccessResponse(c, domain.BootstrapResponse{Created: created}, fiber.StatusOK, message)
}
