package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Track(t *testing.T) {
	c := NewCollector("")

	err := c.Track("create_service", func() error { return nil })
	require.NoError(t, err)

	boom := errors.New("boom")
	err = c.Track("create_service", func() error { return boom })
	assert.Same(t, boom, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.operations.WithLabelValues("create_service", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.operations.WithLabelValues("create_service", "error")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.operationLatency))
}

func TestCollector_SetServices(t *testing.T) {
	c := NewCollector("")
	c.SetServices(7)
	assert.Equal(t, 7.0, testutil.ToFloat64(c.servicesCount))
}

func TestNopTracker(t *testing.T) {
	called := false
	err := NopTracker{}.Track("x", func() error {
		called = true
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, called)
}

func TestFiberMiddleware_UsesRouteTemplate(t *testing.T) {
	c := NewCollector("")
	app := fiber.New()
	app.Use(FiberMiddleware(c))
	app.Get("/v1/services/:id", func(ctx *fiber.Ctx) error {
		return ctx.SendString(ctx.Params("id"))
	})

	for _, id := range []string{"a", "b", "c"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/v1/services/"+id, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(c.requestCount.WithLabelValues("GET", "/v1/services/:id", "200")))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.requestsInProgress.WithLabelValues("GET")))
}

func TestFiberMiddleware_ErrorStatus(t *testing.T) {
	c := NewCollector("")
	app := fiber.New()
	app.Use(FiberMiddleware(c))
	app.Get("/teapot", func(ctx *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	_, err := app.Test(httptest.NewRequest("GET", "/teapot", nil))
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.requestCount.WithLabelValues("GET", "/teapot", "418")))
}

func TestFiberMiddleware_PanicReleasesInProgress(t *testing.T) {
	c := NewCollector("")
	app := fiber.New()
	app.Use(recover.New())
	app.Use(FiberMiddleware(c))
	app.Get("/boom", func(ctx *fiber.Ctx) error {
		panic("handler exploded")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	assert.Equal(t, 0.0, testutil.ToFloat64(c.requestsInProgress.WithLabelValues("GET")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.requestCount.WithLabelValues("GET", "/boom", "500")))
}

func TestHandler_ExposesRegistry(t *testing.T) {
	c := NewCollector("servicehub")
	reg, err := NewRegistry(c)
	require.NoError(t, err)
	c.SetServices(2)
	_ = c.Track("get_service", func() error { return nil })

	app := fiber.New()
	app.Get("/metrics", Handler(reg))

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	text := string(body)
	assert.True(t, strings.Contains(text, "servicehub_services_total 2"))
	assert.Contains(t, text, `servicehub_service_operations_total{operation="get_service",status="success"} 1`)
	assert.Contains(t, text, "go_goroutines")
}
