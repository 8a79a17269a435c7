package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveWithHeaders(t *testing.T, hsts bool, target, routePath string, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(routePath)

	require.NoError(t, SecurityHeaders(hsts)(handler)(c))
	return rec
}

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func TestSecurityHeaders(t *testing.T) {
	rec := serveWithHeaders(t, true, "/api/v1/subscriptions", "/api/v1/subscriptions", okHandler)
	headers := rec.Header()

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "nosniff", headers.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", headers.Get("X-Frame-Options"))
	assert.Equal(t, "max-age=31536000; includeSubDomains", headers.Get("Strict-Transport-Security"))
	assert.Equal(t, "default-src 'none'; frame-ancestors 'none'", headers.Get("Content-Security-Policy"))
	assert.Equal(t, "strict-origin-when-cross-origin", headers.Get("Referrer-Policy"))
	assert.Equal(t, "no-store", headers.Get("Cache-Control"))
}

func TestSecurityHeadersWithoutHSTS(t *testing.T) {
	rec := serveWithHeaders(t, false, "/health", "/health", okHandler)

	assert.Empty(t, rec.Header().Get("Strict-Transport-Security"))
	assert.Empty(t, rec.Header().Get("Cache-Control"))
}

func TestSecurityHeadersHandlerOverridesCaching(t *testing.T) {
	rec := serveWithHeaders(t, false, "/api/v1/directory", "/api/v1/directory", func(c echo.Context) error {
		c.Response().Header().Set("Cache-Control", "no-cache")
		return c.NoContent(http.StatusNotModified)
	})

	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
}

func TestSecurityHeadersDocsEndpoint(t *testing.T) {
	rec := serveWithHeaders(t, false, "/docs", "/docs", func(c echo.Context) error {
		return c.HTML(http.StatusOK, "<html><body>Documentation</body></html>")
	})
	csp := rec.Header().Get("Content-Security-Policy")

	assert.Contains(t, csp, "script-src 'self' 'unsafe-inline' 'unsafe-eval' https://cdn.jsdelivr.net")
	assert.Contains(t, csp, "worker-src 'self' blob:")
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}
