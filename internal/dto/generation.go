package dto

import (
	"encoding/json"

	"subscription-tracker/internal/models"
)

// GenerateRequest is a raw prompt passed through to the text-generation API
type GenerateRequest struct {
	Prompt string `json:"prompt" validate:"required,max=8000"`
	System string `json:"system" validate:"max=4000"`
	JSON   bool   `json:"json"`
}

// GenerateResponse carries the generated text and, when requested, the extracted JSON
type GenerateResponse struct {
	Text string          `json:"text"`
	JSON json.RawMessage `json:"json,omitempty" swaggertype:"object"`
}

// GuideResponse is a generated cancellation checklist for one subscription
type GuideResponse struct {
	SubscriptionID string `json:"subscriptionId"`
	Name           string `json:"name"`
	Guide          string `json:"guide"`
}

// InsightsResponse lists observations about the active subscriptions
type InsightsResponse struct {
	Insights []models.Insight `json:"insights"`
}
