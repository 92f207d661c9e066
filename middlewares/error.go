package middlewares

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"fatura-backend/apperr"
	"fatura-backend/logger"
)

// ErrorHandler centralizes error responses. Every failure reaches the
// user as readable text; only the message of an unknown error is hidden.
func ErrorHandler(c *fiber.Ctx, err error) error {
	// 1) Typed application errors (closed kind set, see apperr)
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return c.Status(statusForKind(ae.Kind)).JSON(fiber.Map{"message": ae.Message})
	}

	// 2) Fiber errors (use their status code + message)
	if fe, ok := err.(*fiber.Error); ok {
		return c.Status(fe.Code).JSON(fiber.Map{"message": fe.Message})
	}

	// 3) Validation errors (422 + per-field info)
	if ve, ok := err.(validator.ValidationErrors); ok {
		out := make(map[string]string, len(ve))
		for _, fe := range ve {
			out[fe.Field()] = fe.Tag()
		}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "validation failed",
			"errors":  out,
		})
	}

	// 4) Unknown errors (500)
	logger.L.Errorf("internal error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "internal server error",
	})
}

func statusForKind(kind apperr.Kind) int {
	switch kind {
	case apperr.Validation:
		return fiber.StatusUnprocessableEntity
	case apperr.MissingSnapshot:
		return fiber.StatusConflict
	case apperr.TransientRetry:
		return fiber.StatusServiceUnavailable
	default: // Collaborator
		return fiber.StatusBadGateway
	}
}
