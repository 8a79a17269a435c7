package handlers

import (
	"net/http"

	"subscription-tracker/internal/dto"
	"subscription-tracker/internal/errors"
	"subscription-tracker/internal/models"
	"subscription-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultActivityLimit = 20
	maxActivityLimit     = 100
)

// ActivityHandler serves the owner's audit trail
type ActivityHandler struct {
	audit services.AuditServiceInterface
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(audit services.AuditServiceInterface) *ActivityHandler {
	return &ActivityHandler{audit: audit}
}

// GetActivity lists audit entries newest first
// @Summary Get activity
// @Description List state transitions, scans and sign-ins. Signed-in users can filter by date.
// @Tags Activity
// @Produce json
// @Security BearerAuth
// @Param X-Client-ID header string false "Anonymous client id when not signed in"
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Limit" default(20)
// @Success 200 {object} SuccessResponse{data=dto.ActivityListResponse} "Activity"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid date"
// @Failure 401 {object} errors.ErrorResponse "AUTH_004 - No owner"
// @Router /api/v1/activity [get]
func (h *ActivityHandler) GetActivity(c echo.Context) error {
	owner, err := getOwnerFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingOwner)
	}

	offset := getIntParam(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}
	limit := getIntParam(c, "limit", defaultActivityLimit)
	if limit <= 0 || limit > maxActivityLimit {
		limit = defaultActivityLimit
	}

	var logs []*models.AuditLog
	var total int64

	if owner.Remote && owner.UserID != nil {
		startDate, err := getDateParam(c, "start_date")
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("start_date"))
		}
		endDate, err := getDateParam(c, "end_date")
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("end_date"))
		}
		logs, total, err = h.audit.GetUserActivity(c.Request().Context(), *owner.UserID, startDate, endDate, offset, limit)
		if err != nil {
			return SendServiceError(c, err)
		}
	} else {
		logs, total, err = h.audit.GetOwnerActivity(c.Request().Context(), owner.Key, offset, limit)
		if err != nil {
			return SendServiceError(c, err)
		}
	}

	entries := make([]dto.AuditLogResponse, 0, len(logs))
	for _, log := range logs {
		entries = append(entries, dto.NewAuditLogResponse(log))
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ActivityListResponse{
			Entries: entries,
			Total:   total,
			Offset:  offset,
			Limit:   limit,
		},
	})
}
