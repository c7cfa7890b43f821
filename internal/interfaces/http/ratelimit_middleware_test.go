package http_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/scoutline-api/internal/interfaces/http"
)

func TestRateLimiter_PorIPSinSesion(t *testing.T) {
	rl := apphttp.NewRateLimiter(time.Minute, zerolog.Nop())
	t.Cleanup(rl.Stop)

	app := fiber.New()
	app.Get("/x", rl.Middleware("auth", 2), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/x", nil), -1)
		require.NoError(t, err)
		codes = append(codes, resp.StatusCode)
		resp.Body.Close()
	}
	assert.Equal(t, []int{fiber.StatusOK, fiber.StatusOK, fiber.StatusTooManyRequests}, codes)
	assert.Equal(t, 1, rl.Size("auth"))
	assert.Equal(t, 0, rl.Size("role_selection"))
}

func TestRateLimiter_DesactivadoConCero(t *testing.T) {
	rl := apphttp.NewRateLimiter(0, zerolog.Nop())
	t.Cleanup(rl.Stop)

	app := fiber.New()
	app.Get("/x", rl.Middleware("auth", 0), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	for i := 0; i < 5; i++ {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/x", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}
	assert.Equal(t, 0, rl.Size("auth"))
}
