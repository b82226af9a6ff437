package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/servicehub/servicehub/internal/models"
	"github.com/servicehub/servicehub/internal/usecases"
)

// CreateService creates a new service
func (h *Handler) CreateService(c *fiber.Ctx) error {
	var req models.CreateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidRequest(c, "Invalid request body: "+err.Error())
	}

	p := h.newPresenter()
	usecases.NewCreateServiceInteractor(h.deps, p).CreateService(c.UserContext(), req.Name, req.Description)
	if p.HasError() {
		return h.presentError(c, p.ErrorKind, p.Error)
	}

	return c.Status(fiber.StatusCreated).JSON(p.Response)
}

// GetService returns one service by ID
func (h *Handler) GetService(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidRequest(c, "Invalid service ID format")
	}

	p := h.newPresenter()
	usecases.NewGetServiceInteractor(h.deps, p).GetService(c.UserContext(), id)
	if p.HasError() {
		return h.presentError(c, p.ErrorKind, p.Error)
	}

	return c.JSON(p.Response)
}

// ListServices returns every service in creation order
func (h *Handler) ListServices(c *fiber.Ctx) error {
	p := h.newPresenter()
	usecases.NewGetServiceInteractor(h.deps, p).GetAllServices(c.UserContext())
	if p.HasError() {
		return h.presentError(c, p.ErrorKind, p.Error)
	}

	return c.JSON(models.ServiceListResponse{Services: p.Responses})
}

// UpdateService applies a partial update
func (h *Handler) UpdateService(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidRequest(c, "Invalid service ID format")
	}

	var req models.UpdateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidRequest(c, "Invalid request body: "+err.Error())
	}

	p := h.newPresenter()
	usecases.NewUpdateServiceInteractor(h.deps, p).UpdateService(c.UserContext(), id, usecases.UpdateServiceInput{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if p.HasError() {
		return h.presentError(c, p.ErrorKind, p.Error)
	}

	return c.JSON(p.Response)
}

// DeleteService removes a service
func (h *Handler) DeleteService(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidRequest(c, "Invalid service ID format")
	}

	p := h.newPresenter()
	usecases.NewDeleteServiceInteractor(h.deps, p).DeleteService(c.UserContext(), id)
	if p.HasError() {
		return h.presentError(c, p.ErrorKind, p.Error)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
