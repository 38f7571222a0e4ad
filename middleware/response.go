package middleware

import (
	"eduak/logger"
	"eduak/policies"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusBadRequest, false, "Validation failed!", errors)
}

// ErrorResponse renders err with the status of its policies.Kind. Unclassified
// errors are logged and reported as a generic server error.
func ErrorResponse(c *fiber.Ctx, err error) error {
	kind := policies.KindOf(err)
	if kind == policies.KindInternal {
		logger.Log.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err))
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}
	return JsonResponse(c, policies.Status(kind), false, err.Error(), nil)
}

// ErrorHandler is the fiber fallback for errors no handler answered.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonResponse(c, fe.Code, false, fe.Message, nil)
	}
	return ErrorResponse(c, err)
}
