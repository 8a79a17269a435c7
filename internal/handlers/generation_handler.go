package handlers

import (
	"net/http"
	"strings"

	"subscription-tracker/internal/dto"
	"subscription-tracker/internal/errors"
	"subscription-tracker/internal/models"
	"subscription-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// GenerationHandler serves generated guides, insights and raw generation
type GenerationHandler struct {
	generation services.GenerationServiceInterface
}

// NewGenerationHandler creates a new generation handler
func NewGenerationHandler(generation services.GenerationServiceInterface) *GenerationHandler {
	return &GenerationHandler{generation: generation}
}

// Guide writes a cancellation checklist for one subscription
// @Summary Generate cancellation guide
// @Description Generate a short, step-by-step cancellation checklist for a subscription. Repeats within a short window are rejected.
// @Tags Generation
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subscription id"
// @Success 200 {object} SuccessResponse{data=dto.GuideResponse} "Guide"
// @Failure 404 {object} errors.ErrorResponse "SUBSCRIPTION_001 - Not found"
// @Failure 429 {object} errors.ErrorResponse "SUBSCRIPTION_006 - Debounced"
// @Failure 502 {object} errors.ErrorResponse "GENERATION_001 - Generation failed"
// @Failure 503 {object} errors.ErrorResponse "GENERATION_002 or GENERATION_004"
// @Router /api/v1/subscriptions/{id}/guide [post]
func (h *GenerationHandler) Guide(c echo.Context) error {
	owner, err := getOwnerFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingOwner)
	}

	sub, guide, err := h.generation.Guide(c.Request().Context(), owner, strings.TrimSpace(c.Param("id")))
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.GuideResponse{
			SubscriptionID: sub.ID,
			Name:           sub.Name,
			Guide:          guide,
		},
	})
}

// Insights lists observations about the active subscriptions
// @Summary Generate savings insights
// @Tags Generation
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse{data=dto.InsightsResponse} "Insights"
// @Failure 422 {object} errors.ErrorResponse "GENERATION_003 - No JSON in reply"
// @Failure 502 {object} errors.ErrorResponse "GENERATION_001 - Generation failed"
// @Router /api/v1/insights [post]
func (h *GenerationHandler) Insights(c echo.Context) error {
	owner, err := getOwnerFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingOwner)
	}

	insights, err := h.generation.Insights(c.Request().Context(), owner)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.InsightsResponse{Insights: insights},
	})
}

// Generate passes a prompt through to the text-generation API
// @Summary Generate text
// @Description Send a raw prompt. With json=true the reply's JSON block is extracted and returned alongside the text.
// @Tags Generation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GenerateRequest true "Prompt"
// @Success 200 {object} SuccessResponse{data=dto.GenerateResponse} "Generated text"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Validation failed"
// @Failure 502 {object} errors.ErrorResponse "GENERATION_001 - Generation failed"
// @Router /api/v1/generate [post]
func (h *GenerationHandler) Generate(c echo.Context) error {
	if _, err := getOwnerFromContext(c); err != nil {
		return SendError(c, errors.AuthMissingOwner)
	}

	var req dto.GenerateRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	result, err := h.generation.Generate(c.Request().Context(), models.GenerationRequest{
		Prompt:   req.Prompt,
		System:   req.System,
		WantJSON: req.JSON,
	})
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.GenerateResponse{
			Text: result.Text,
			JSON: result.JSON,
		},
	})
}
