package handlers

import (
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed assets/scalar.html
var scalarPage []byte

// DocsHandler serves the API reference page and the generated OpenAPI document
type DocsHandler struct {
	page     []byte
	pageETag string
	specPath string
}

// NewDocsHandler creates a docs handler reading the OpenAPI document from specPath
func NewDocsHandler(specPath string) *DocsHandler {
	sum := sha256.Sum256(scalarPage)
	return &DocsHandler{
		page:     scalarPage,
		pageETag: `"` + hex.EncodeToString(sum[:8]) + `"`,
		specPath: specPath,
	}
}

// ServeReference serves the Scalar API reference page
// @Summary API reference
// @Description Interactive API reference
// @Tags Documentation
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /docs [get]
func (h *DocsHandler) ServeReference(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")
	c.Response().Header().Set("ETag", h.pageETag)
	if etagMatches(c.Request().Header.Get("If-None-Match"), h.pageETag) {
		return c.NoContent(http.StatusNotModified)
	}
	return c.HTMLBlob(http.StatusOK, h.page)
}

// ServeOpenAPI serves the document produced by swag. A missing file is a 404.
func (h *DocsHandler) ServeOpenAPI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "public, max-age=300")
	c.Response().Header().Set(echo.HeaderContentType, "application/json; charset=utf-8")
	return c.File(h.specPath)
}
