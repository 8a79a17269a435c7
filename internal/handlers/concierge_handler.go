package handlers

import (
	"net/http"

	"subscription-tracker/internal/dto"
	"subscription-tracker/internal/errors"
	"subscription-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// ConciergeHandler accepts requests for hands-on cancellation help
type ConciergeHandler struct {
	concierge services.ConciergeServiceInterface
}

// NewConciergeHandler creates a new concierge handler
func NewConciergeHandler(concierge services.ConciergeServiceInterface) *ConciergeHandler {
	return &ConciergeHandler{concierge: concierge}
}

// CreateRequest stores a concierge sign-up
// @Summary Request concierge help
// @Description Leave an email address to be contacted for hands-on cancellation help. Repeated sign-ups return the stored request.
// @Tags Concierge
// @Accept json
// @Produce json
// @Param request body dto.ConciergeSignupRequest true "Contact details"
// @Success 201 {object} SuccessResponse{data=dto.ConciergeSignupResponse} "Request stored"
// @Success 200 {object} SuccessResponse{data=dto.ConciergeSignupResponse} "Request already stored"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid email"
// @Router /api/v1/concierge-requests [post]
func (h *ConciergeHandler) CreateRequest(c echo.Context) error {
	var req dto.ConciergeSignupRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	userID := optionalUserID(c)
	request, created, err := h.concierge.Request(c.Request().Context(), req.Email, req.Source, userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	status := http.StatusOK
	message := "Request already received"
	if created {
		status = http.StatusCreated
		message = "Request received"
	}

	return c.JSON(status, SuccessResponse{
		Data: dto.ConciergeSignupResponse{
			ID:        request.ID,
			Email:     request.Email,
			Source:    request.Source,
			CreatedAt: request.CreatedAt,
		},
		Message: message,
	})
}
