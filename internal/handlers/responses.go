package handlers

import (
	"errors"
	"fmt"

	"loja/internal/notifications"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// customResponse drains the request's notification sink into the uniform
// envelope. Business-rule failures still answer 200; callers must
// inspect the envelope, not the status code.
func customResponse(c *fiber.Ctx, n *notifications.Notifier, data interface{}) error {
	if n.HasNotifications() {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": false,
			"errors":  n.Messages(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// validationResponse renders field-level validation errors. The shape is
// a field->message map rather than the notification list; both shapes
// are part of the existing client contract.
func validationResponse(c *fiber.Ctx, err error) error {
	errorMessages := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": false,
		"errors":  errorMessages,
	})
}
