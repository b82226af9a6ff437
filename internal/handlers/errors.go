package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/servicehub/servicehub/internal/domain"
	"github.com/servicehub/servicehub/internal/models"
)

// StatusForKind maps a domain error kind to an HTTP status code
func StatusForKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation:
		return fiber.StatusBadRequest
	case domain.KindNotFound:
		return fiber.StatusNotFound
	case domain.KindAlreadyExists:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// CodeForKind maps a domain error kind to an ErrorDetail code
func CodeForKind(kind domain.ErrorKind) string {
	switch kind {
	case domain.KindValidation:
		return models.CodeValidationError
	case domain.KindNotFound:
		return models.CodeNotFound
	case domain.KindAlreadyExists:
		return models.CodeAlreadyExists
	default:
		return models.CodeInternalError
	}
}

func (h *Handler) presentError(c *fiber.Ctx, kind domain.ErrorKind, message string) error {
	status := StatusForKind(kind)
	log := h.logger.WithContext(c.UserContext())
	if status >= fiber.StatusInternalServerError {
		log.Error("Service request failed", "kind", string(kind), "error_message", message, "path", c.Path())
	} else {
		log.Warn("Service request rejected", "kind", string(kind), "error_message", message, "path", c.Path())
	}

	return c.Status(status).JSON(models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    CodeForKind(kind),
			Message: message,
			Path:    c.Path(),
		},
	})
}

func invalidRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    models.CodeInvalidRequest,
			Message: message,
			Path:    c.Path(),
		},
	})
}
