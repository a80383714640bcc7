package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/cueros-api/internal/interfaces/http"
)

func TestLoginRateLimiter_BloqueaTrasRafaga(t *testing.T) {
	rl := apphttp.NewLoginRateLimiter(1, 2)
	app := fiber.New()
	app.Post("/login", rl.Middleware(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	codes := make([]int, 0, 3)
	var last *http.Response
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil), -1)
		require.NoError(t, err)
		codes = append(codes, resp.StatusCode)
		last = resp
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, "0", last.Header.Get("X-RateLimit-Remaining"))
	assert.Equal(t, "60", last.Header.Get("Retry-After"))
	assert.Equal(t, "2", last.Header.Get("X-RateLimit-Limit"))
}
