package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Abraxas-365/headhunter/pkg/errx"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRegistry = errx.NewRegistry("HTTPX_TEST")

var codeGone = testRegistry.Register("GONE", errx.TypeNotFound, http.StatusNotFound, "Thing not found")

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestErrorHandler(t *testing.T) {
	app := NewApp(Options{AppName: "test"})
	app.Get("/registered", func(c *fiber.Ctx) error {
		return testRegistry.New(codeGone).WithDetail("id", "42")
	})
	app.Get("/internal", func(c *fiber.Ctx) error {
		return errx.Wrap(errors.New("pq: password authentication failed"), "failed to load", errx.TypeInternal)
	})
	app.Get("/plain", func(c *fiber.Ctx) error {
		return errors.New("boom")
	})
	app.Get("/conflict", func(c *fiber.Ctx) error {
		return fiber.NewError(http.StatusConflict, "already there")
	})
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("unexpected")
	})

	t.Run("registered error", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/registered", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		body := decode(t, resp)
		assert.Equal(t, "HTTPX_TEST.GONE", body["code"])
		assert.Equal(t, "Thing not found", body["message"])
		assert.Equal(t, map[string]any{"id": "42"}, body["details"])
	})

	t.Run("internal cause is hidden", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/internal", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		body := decode(t, resp)
		assert.Equal(t, "failed to load", body["message"])
		assert.NotContains(t, body, "details")
	})

	t.Run("plain error", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/plain", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "INTERNAL_ERROR", decode(t, resp)["code"])
	})

	t.Run("panic is recovered", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/panic", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})

	t.Run("unknown route", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/nope", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		body := decode(t, resp)
		assert.Equal(t, "Not Found", body["error"])
		assert.Equal(t, "NOT_FOUND", body["type"])
		assert.Equal(t, "HTTP.NOT_FOUND", body["code"])
		assert.Equal(t, "Cannot GET /nope", body["message"])
	})

	t.Run("wrong method", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/registered", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

		body := decode(t, resp)
		assert.Equal(t, "Method Not Allowed", body["error"])
		assert.Equal(t, "VALIDATION", body["type"])
		assert.Equal(t, "HTTP.METHOD_NOT_ALLOWED", body["code"])
		assert.NotEmpty(t, body["message"])
	})

	t.Run("fiber error from handler", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/conflict", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		body := decode(t, resp)
		assert.Equal(t, "CONFLICT", body["type"])
		assert.Equal(t, "HTTP.CONFLICT", body["code"])
		assert.Equal(t, "already there", body["message"])
	})
}

func TestProxyHeader(t *testing.T) {
	app := NewApp(Options{ProxyHeader: fiber.HeaderXForwardedFor})
	app.Get("/ip", func(c *fiber.Ctx) error {
		return c.SendString(c.IP())
	})

	req := httptest.NewRequest(http.MethodGet, "/ip", nil)
	req.Header.Set(fiber.HeaderXForwardedFor, "203.0.113.7")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	ip, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "203.0.113.7", string(ip))
}
