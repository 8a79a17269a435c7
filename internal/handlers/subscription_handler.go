package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"subscription-tracker/internal/dto"
	"subscription-tracker/internal/errors"
	"subscription-tracker/internal/models"
	"subscription-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// SubscriptionHandler exposes the owner's subscription list and its transitions
type SubscriptionHandler struct {
	subscriptions services.SubscriptionServiceInterface
}

// NewSubscriptionHandler creates a new subscription handler
func NewSubscriptionHandler(subscriptions services.SubscriptionServiceInterface) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptions: subscriptions}
}

type transitionFunc func(ctx context.Context, owner models.Owner, id string) (*models.SubscriptionView, error)

// GetSubscriptions returns the reconciled view
// @Summary Get subscriptions
// @Description Return active, canceled and removed subscriptions with totals for the current owner
// @Tags Subscriptions
// @Produce json
// @Security BearerAuth
// @Param X-Client-ID header string false "Anonymous client id when not signed in"
// @Success 200 {object} SuccessResponse{data=models.SubscriptionView} "Subscription view"
// @Failure 401 {object} errors.ErrorResponse "AUTH_004 - No owner"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal error"
// @Router /api/v1/subscriptions [get]
func (h *SubscriptionHandler) GetSubscriptions(c echo.Context) error {
	owner, err := getOwnerFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingOwner)
	}

	view, err := h.subscriptions.GetView(c.Request().Context(), owner)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: view})
}

// ApplyStateCommand writes one whole-value state command
// @Summary Apply state command
// @Description Apply a tagged command: set_preferences, set_canceled_ids, set_removed_ids, upsert_custom, add_custom or reset_all. A positive expectedVersion makes the write conditional.
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Client-ID header string false "Anonymous client id when not signed in"
// @Param request body object true "Tagged command"
// @Success 200 {object} SuccessResponse{data=models.SubscriptionView} "Updated view"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001, VALIDATION_004 or VALIDATION_007"
// @Failure 409 {object} errors.ErrorResponse "STATE_001 - Stale write"
// @Router /api/v1/subscriptions/state [post]
func (h *SubscriptionHandler) ApplyStateCommand(c echo.Context) error {
	owner, err := getOwnerFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingOwner)
	}

	var req dto.StateCommandRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return SendBindError(c, err)
	}

	view, err := h.subscriptions.ApplyCommand(c.Request().Context(), owner, req.Command)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: view})
}

// AddCustom adds a manually entered subscription
// @Summary Add custom subscription
// @Description Add a subscription that is not in the built-in list. The name defaults to "Custom service".
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CustomSubscriptionRequest true "Custom subscription"
// @Success 201 {object} SuccessResponse{data=models.SubscriptionView} "Updated view"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 or VALIDATION_004"
// @Router /api/v1/subscriptions/custom [post]
func (h *SubscriptionHandler) AddCustom(c echo.Context) error {
	owner, err := getOwnerFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingOwner)
	}

	var req dto.CustomSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return SendBindError(c, err)
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	input, err := req.ToInput()
	if err != nil {
		return SendServiceError(c, err)
	}

	view, err := h.subscriptions.AddCustom(c.Request().Context(), owner, input)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    view,
		Message: "Subscription added",
	})
}

// PickFromDirectory adds a directory option as a pending subscription
// @Summary Add subscription from directory
// @Description Add a directory option as a placeholder that still needs a price
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DirectoryPickRequest true "Directory option"
// @Success 201 {object} SuccessResponse{data=models.SubscriptionView} "Updated view"
// @Failure 404 {object} errors.ErrorResponse "DIRECTORY_001 - Option not found"
// @Failure 409 {object} errors.ErrorResponse "SUBSCRIPTION_004 - Already active"
// @Router /api/v1/subscriptions/directory-picks [post]
func (h *SubscriptionHandler) PickFromDirectory(c echo.Context) error {
	owner, err := getOwnerFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingOwner)
	}

	var req dto.DirectoryPickRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	view, err := h.subscriptions.PickFromDirectory(c.Request().Context(), owner, req.OptionID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{Data: view})
}

// EditPrice sets the price, cadence and reminders of a subscription
// @Summary Edit subscription price
// @Description Set the monthly price of a subscription. Pending directory picks become regular entries.
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subscription id"
// @Param request body dto.PriceEditRequest true "Price edit"
// @Success 200 {object} SuccessResponse{data=models.SubscriptionView} "Updated view"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_004 - Invalid price"
// @Failure 404 {object} errors.ErrorResponse "SUBSCRIPTION_001 - Not found"
// @Router /api/v1/subscriptions/{id}/price [put]
func (h *SubscriptionHandler) EditPrice(c echo.Context) error {
	owner, err := getOwnerFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingOwner)
	}

	var req dto.PriceEditRequest
	if err := c.Bind(&req); err != nil {
		return SendBindError(c, err)
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	edit, err := req.ToPriceEdit()
	if err != nil {
		return SendServiceError(c, err)
	}

	view, err := h.subscriptions.EditPrice(c.Request().Context(), owner, c.Param("id"), edit)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: view})
}

// DiscardPending drops a directory pick that never got a price
// @Summary Discard pending subscription
// @Tags Subscriptions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subscription id"
// @Success 200 {object} SuccessResponse{data=models.SubscriptionView} "Updated view"
// @Failure 409 {object} errors.ErrorResponse "SUBSCRIPTION_003 - Not pending"
// @Router /api/v1/subscriptions/{id}/pending [delete]
func (h *SubscriptionHandler) DiscardPending(c echo.Context) error {
	return h.transition(c, h.subscriptions.DiscardPending)
}

// Cancel marks an active subscription as canceled
// @Summary Cancel subscription
// @Tags Subscriptions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subscription id"
// @Success 200 {object} SuccessResponse{data=models.SubscriptionView} "Updated view"
// @Failure 404 {object} errors.ErrorResponse "SUBSCRIPTION_001 - Not found"
// @Failure 409 {object} errors.ErrorResponse "SUBSCRIPTION_002 - Invalid transition"
// @Router /api/v1/subscriptions/{id}/cancel [post]
func (h *SubscriptionHandler) Cancel(c echo.Context) error {
	return h.transition(c, h.subscriptions.Cancel)
}

// Remove hides a subscription from the list
// @Summary Remove subscription
// @Tags Subscriptions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subscription id"
// @Success 200 {object} SuccessResponse{data=models.SubscriptionView} "Updated view"
// @Failure 404 {object} errors.ErrorResponse "SUBSCRIPTION_001 - Not found"
// @Router /api/v1/subscriptions/{id}/remove [post]
func (h *SubscriptionHandler) Remove(c echo.Context) error {
	return h.transition(c, h.subscriptions.Remove)
}

// Restore brings a canceled or removed subscription back
// @Summary Restore subscription
// @Tags Subscriptions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subscription id"
// @Success 200 {object} SuccessResponse{data=models.SubscriptionView} "Updated view"
// @Failure 409 {object} errors.ErrorResponse "SUBSCRIPTION_004 - Already active"
// @Router /api/v1/subscriptions/{id}/restore [post]
func (h *SubscriptionHandler) Restore(c echo.Context) error {
	return h.transition(c, h.subscriptions.Restore)
}

// OpenCancel returns the cancellation page for a subscription
// @Summary Open cancellation page
// @Description Return the cancellation URL to open. Repeats within a short window are rejected.
// @Tags Subscriptions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subscription id"
// @Success 200 {object} SuccessResponse{data=dto.OpenCancelResponse} "Cancellation link"
// @Failure 422 {object} errors.ErrorResponse "SUBSCRIPTION_005 - No cancellation link"
// @Failure 429 {object} errors.ErrorResponse "SUBSCRIPTION_006 - Debounced"
// @Router /api/v1/subscriptions/{id}/open-cancel [post]
func (h *SubscriptionHandler) OpenCancel(c echo.Context) error {
	owner, err := getOwnerFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingOwner)
	}

	id := strings.TrimSpace(c.Param("id"))
	url, err := h.subscriptions.OpenCancel(c.Request().Context(), owner, id)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.OpenCancelResponse{
			SubscriptionID: id,
			CancelURL:      url,
		},
	})
}

func (h *SubscriptionHandler) transition(c echo.Context, fn transitionFunc) error {
	owner, err := getOwnerFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingOwner)
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("id is required"))
	}

	view, err := fn(c.Request().Context(), owner, id)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: view})
}
