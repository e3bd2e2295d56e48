package webapi_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/expensetracker/internal/fixtures"
	"github.com/amirasaad/expensetracker/webapi/common"
	"github.com/amirasaad/expensetracker/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T, maxRequests int, window time.Duration, trustedProxies ...string) *fiber.App {
	cfg := testutils.NewTestConfig(t.TempDir())
	cfg.RateLimit.MaxRequests = maxRequests
	cfg.RateLimit.Window = window
	cfg.Server.TrustedProxies = trustedProxies
	app, _ := testutils.NewTestApp(t, fixtures.NewMemoryUoW(), cfg)
	return app
}

func getForwardedFor(t *testing.T, app *fiber.App, forwardedFor string) int {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", forwardedFor)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp.StatusCode
}

func TestHealthCheck(t *testing.T) {
	app := newApp(t, 100, time.Minute)
	resp := testutils.MakeRequest(t, app, fiber.MethodGet, "/", "", "")
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestUnknownRoute_ProblemDetails(t *testing.T) {
	app := newApp(t, 100, time.Minute)
	resp := testutils.MakeRequest(t, app, fiber.MethodGet, "/doesnotexist", "", "")
	defer resp.Body.Close() //nolint: errcheck
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "application/problem+json", resp.Header.Get("Content-Type"))

	var pd common.ProblemDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	assert.Equal(t, fiber.StatusNotFound, pd.Status)
	assert.Equal(t, "/doesnotexist", pd.Instance)
}

func TestRateLimit(t *testing.T) {
	app := newApp(t, 5, time.Second)

	for i := range 6 {
		resp := testutils.MakeRequest(t, app, fiber.MethodGet, "/", "", "")
		_ = resp.Body.Close()
		if i < 5 {
			assert.Equal(t, fiber.StatusOK, resp.StatusCode, "Expected OK for request %d", i+1)
		} else {
			assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode, "Expected Too Many Requests for request %d", i+1)
		}
	}

	// Wait for the rate limit window to reset
	time.Sleep(1100 * time.Millisecond)

	resp := testutils.MakeRequest(t, app, fiber.MethodGet, "/", "", "")
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusOK, resp.StatusCode, "Expected OK after rate limit reset")
}

// app.Test connections come from 0.0.0.0.
func TestRateLimit_KeyedByForwardedForFromTrustedProxy(t *testing.T) {
	app := newApp(t, 1, time.Minute, "0.0.0.0")

	assert.Equal(t, fiber.StatusOK, getForwardedFor(t, app, "203.0.113.1"))
	assert.Equal(t, fiber.StatusTooManyRequests, getForwardedFor(t, app, "203.0.113.1, 10.0.0.1"))
	assert.Equal(t, fiber.StatusOK, getForwardedFor(t, app, "203.0.113.2"))
}

func TestRateLimit_IgnoresForwardedForFromUntrustedPeer(t *testing.T) {
	app := newApp(t, 1, time.Minute)

	assert.Equal(t, fiber.StatusOK, getForwardedFor(t, app, "203.0.113.1"))
	assert.Equal(t, fiber.StatusTooManyRequests, getForwardedFor(t, app, "203.0.113.2"))
	assert.Equal(t, fiber.StatusTooManyRequests, getForwardedFor(t, app, "198.51.100.7"))
}

func TestSwaggerDoc(t *testing.T) {
	app := newApp(t, 100, time.Minute)
	resp := testutils.MakeRequest(t, app, fiber.MethodGet, "/swagger/doc.json", "", "")
	defer resp.Body.Close() //nolint: errcheck
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var doc struct {
		Paths map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(body, &doc))
	assert.Contains(t, doc.Paths, "/transactions/stats/category")
	assert.Contains(t, doc.Paths, "/users/upload-avatar")
}
