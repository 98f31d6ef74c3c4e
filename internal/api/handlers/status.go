package handlers

import (
	"errors"

	"freezer-backend/domain"

	"github.com/gofiber/fiber/v2"
)

// statusFor maps a service error onto the HTTP status of its error class.
// Anything unrecognized is an internal failure.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrFoodItemNotFound),
		errors.Is(err, domain.ErrFreezerNotFound):
		return fiber.StatusNotFound

	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden

	case errors.Is(err, domain.ErrTokenNotFound),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenExpired):
		return fiber.StatusUnauthorized

	case errors.Is(err, domain.ErrNameRequired),
		errors.Is(err, domain.ErrDescriptionRequired),
		errors.Is(err, domain.ErrInvalidFreezerBox),
		errors.Is(err, domain.ErrInvalidItemType),
		errors.Is(err, domain.ErrInvalidFrozenDate),
		errors.Is(err, domain.ErrEmptyUpdate),
		errors.Is(err, domain.ErrInvalidPhotoFormat),
		errors.Is(err, domain.ErrInvalidResourceID),
		errors.Is(err, domain.ErrFreezerNameRequired):
		return fiber.StatusBadRequest

	default:
		return fiber.StatusInternalServerError
	}
}
