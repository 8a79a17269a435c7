package handlers

import (
	"net/http"
	"strings"

	"subscription-tracker/internal/dto"
	"subscription-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

const maxDirectorySearchLimit = 50

// DirectoryHandler serves the cancellation directory
type DirectoryHandler struct {
	directory services.DirectoryServiceInterface
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(directory services.DirectoryServiceInterface) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

// GetDirectory returns the canonical directory
// @Summary Get cancellation directory
// @Description Return every canonical directory option. Responses are revalidated on each request; a matching If-None-Match returns 304.
// @Tags Directory
// @Produce json
// @Param If-None-Match header string false "ETag from a previous response"
// @Success 200 {object} SuccessResponse{data=dto.DirectoryResponse} "Directory"
// @Success 304 "Not modified"
// @Failure 503 {object} errors.ErrorResponse "DIRECTORY_002 - Directory unavailable"
// @Router /api/v1/directory [get]
func (h *DirectoryHandler) GetDirectory(c echo.Context) error {
	snapshot, err := h.directory.GetSnapshot(c.Request().Context())
	if err != nil {
		return SendServiceError(c, err)
	}

	etag := `"` + snapshot.ETag + `"`
	header := c.Response().Header()
	header.Set("Cache-Control", "no-cache")
	header.Set("ETag", etag)
	header.Set("Last-Modified", snapshot.ModifiedAt.UTC().Format(http.TimeFormat))

	if etagMatches(c.Request().Header.Get("If-None-Match"), etag) {
		return c.NoContent(http.StatusNotModified)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.DirectoryResponse{
			Options: snapshot.Options,
			Count:   len(snapshot.Options),
		},
	})
}

// SearchDirectory ranks directory options against a query
// @Summary Search cancellation directory
// @Description Fuzzy search over directory option names
// @Tags Directory
// @Produce json
// @Param q query string false "Search text"
// @Param limit query int false "Maximum results" default(6)
// @Success 200 {object} SuccessResponse{data=dto.DirectorySearchResponse} "Matches"
// @Failure 503 {object} errors.ErrorResponse "DIRECTORY_002 - Directory unavailable"
// @Router /api/v1/directory/search [get]
func (h *DirectoryHandler) SearchDirectory(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	limit := getIntParam(c, "limit", 0)
	if limit > maxDirectorySearchLimit {
		limit = maxDirectorySearchLimit
	}

	results, err := h.directory.Search(c.Request().Context(), query, limit)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.DirectorySearchResponse{
			Query:   query,
			Results: results,
		},
	})
}

// etagMatches reports whether an If-None-Match header names etag
func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}
