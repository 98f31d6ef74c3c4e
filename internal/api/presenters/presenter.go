package presenters

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Response is the uniform envelope every endpoint answers with:
// {success:true, data, message?} or {success:false, error}.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data interface{}, status int, message string) error {
	return c.Status(status).JSON(Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// ErrorResponse shapes a failure. Internal errors keep their detail in the
// log and send only the generic message to the caller; client errors carry
// the specific reason.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	errMessage := message
	if status >= fiber.StatusInternalServerError {
		log.Errorf("%s %s: %s: %v", c.Method(), c.Path(), message, err)
	} else if err != nil {
		errMessage = err.Error()
	}

	return c.Status(status).JSON(Response{
		Success: false,
		Error:   errMessage,
	})
}
