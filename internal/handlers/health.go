package handlers

import (
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/servicehub/servicehub/internal/models"
)

// Health handles health check requests
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(h.health())
}

// HealthDetailed adds uptime, component state and runtime statistics
func (h *Handler) HealthDetailed(c *fiber.Ctx) error {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return c.JSON(models.HealthDetailedResponse{
		HealthResponse: h.health(),
		Uptime:         time.Since(h.startTime).Seconds(),
		Services: map[string]string{
			"repository": "healthy",
			"events":     h.events,
		},
		SystemMetrics: models.SystemMetrics{
			Goroutines:     runtime.NumGoroutine(),
			HeapAllocBytes: mem.HeapAlloc,
			SysBytes:       mem.Sys,
			NumCPU:         runtime.NumCPU(),
			NumGC:          mem.NumGC,
		},
	})
}

func (h *Handler) health() models.HealthResponse {
	return models.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   h.version,
	}
}

// NotFound handles 404 errors
func (h *Handler) NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    models.CodeNotFound,
			Message: "Route not found",
			Path:    c.Path(),
		},
	})
}
