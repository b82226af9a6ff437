package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/servicehub/servicehub/internal/domain"
	"github.com/servicehub/servicehub/internal/handlers"
	"github.com/servicehub/servicehub/internal/logging"
	"github.com/servicehub/servicehub/internal/models"
)

// ErrorHandler renders errors that escape a handler as an ErrorResponse
func ErrorHandler(logger *logging.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		errCode := models.CodeInternalError
		message := "Internal Server Error"

		var fe *fiber.Error
		var de *domain.Error
		switch {
		case errors.As(err, &fe):
			code = fe.Code
			errCode = codeForStatus(fe.Code)
			message = fe.Message
		case errors.As(err, &de):
			code = handlers.StatusForKind(de.Kind)
			errCode = handlers.CodeForKind(de.Kind)
			message = de.Message
		}

		log := logger.WithContext(c.UserContext())
		fields := []interface{}{
			"path", c.Path(),
			"method", c.Method(),
			"status", code,
			"error", err,
		}
		if code >= fiber.StatusInternalServerError {
			log.Error("Request error", fields...)
		} else {
			log.Warn("Request error", fields...)
		}

		return c.Status(code).JSON(models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    errCode,
				Message: message,
				Path:    c.Path(),
			},
		})
	}
}

func codeForStatus(status int) string {
	switch {
	case status == fiber.StatusNotFound:
		return models.CodeNotFound
	case status == fiber.StatusConflict:
		return models.CodeAlreadyExists
	case status >= fiber.StatusInternalServerError:
		return models.CodeInternalError
	default:
		return models.CodeInvalidRequest
	}
}
