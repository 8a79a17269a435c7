package handlers

import (
	"net/http"

	"subscription-tracker/internal/errors"
	"subscription-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// ScanHandler runs inbox scans for signed-in users
type ScanHandler struct {
	scans services.ScanServiceInterface
}

// NewScanHandler creates a new scan handler
func NewScanHandler(scans services.ScanServiceInterface) *ScanHandler {
	return &ScanHandler{scans: scans}
}

// Scan detects subscriptions in the user's Gmail
// @Summary Scan inbox
// @Description Read billing email metadata from Gmail and store the detected vendors. The detected list replaces the previous one.
// @Tags Scan
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse{data=models.ScanResult} "Scan result"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing token, SCAN_001 - Reconnect Google"
// @Failure 502 {object} errors.ErrorResponse "SCAN_002 - Scan failed"
// @Router /api/v1/scan [post]
func (h *ScanHandler) Scan(c echo.Context) error {
	owner, err := getOwnerFromContext(c)
	if err != nil || !owner.Remote {
		return SendError(c, errors.AuthMissingToken)
	}

	result, err := h.scans.Scan(c.Request().Context(), owner)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    result,
		Message: "Scan completed",
	})
}
