package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servicehub/servicehub/internal/domain"
	"github.com/servicehub/servicehub/internal/logging"
	"github.com/servicehub/servicehub/internal/models"
)

func runErrorHandler(t *testing.T, handlerErr error) (int, models.ErrorResponse) {
	t.Helper()

	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(logging.NewNop()),
	})
	app.Get("/test", func(c *fiber.Ctx) error {
		return handlerErr
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	return resp.StatusCode, errResp
}

func TestErrorHandler_FiberError(t *testing.T) {
	tests := []struct {
		name           string
		fiberError     *fiber.Error
		expectedStatus int
		expectedCode   string
		expectedMsg    string
	}{
		{"BadRequest error", fiber.ErrBadRequest, fiber.StatusBadRequest, models.CodeInvalidRequest, "Bad Request"},
		{"NotFound error", fiber.ErrNotFound, fiber.StatusNotFound, models.CodeNotFound, "Not Found"},
		{"Conflict error", fiber.ErrConflict, fiber.StatusConflict, models.CodeAlreadyExists, "Conflict"},
		{"InternalServerError", fiber.ErrInternalServerError, fiber.StatusInternalServerError, models.CodeInternalError, "Internal Server Error"},
		{"ServiceUnavailable error", fiber.ErrServiceUnavailable, fiber.StatusServiceUnavailable, models.CodeInternalError, "Service Unavailable"},
		{"Custom fiber error", fiber.NewError(fiber.StatusTeapot, "I'm a teapot"), fiber.StatusTeapot, models.CodeInvalidRequest, "I'm a teapot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, errResp := runErrorHandler(t, tt.fiberError)

			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedCode, errResp.Error.Code)
			assert.Equal(t, tt.expectedMsg, errResp.Error.Message)
			assert.Equal(t, "/test", errResp.Error.Path)
		})
	}
}

func TestErrorHandler_DomainError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{"validation", domain.NewValidationError("Service name too long"), 400, models.CodeValidationError},
		{"not found", domain.NewNotFoundError("Service with ID x not found"), 404, models.CodeNotFound},
		{"already exists", domain.NewAlreadyExistsError("dup"), 409, models.CodeAlreadyExists},
		{"internal", domain.NewInternalError(errors.New("boom")), 500, models.CodeInternalError},
		{"wrapped", fmt.Errorf("create: %w", domain.NewValidationError("bad")), 400, models.CodeValidationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, errResp := runErrorHandler(t, tt.err)

			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedCode, errResp.Error.Code)
		})
	}
}

func TestErrorHandler_GenericError(t *testing.T) {
	status, errResp := runErrorHandler(t, errors.New("something went wrong"))

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Internal Server Error", errResp.Error.Message)
	assert.Equal(t, models.CodeInternalError, errResp.Error.Code)
}
