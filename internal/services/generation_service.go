package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"subscription-tracker/internal/models"

	"github.com/shopspring/decimal"
)

const (
	guideSystemPrompt = "You are NoMo, a helpful assistant that writes concise, step-by-step cancellation guides. Keep steps short and accurate."
	guidePromptFormat = "Create a simple checklist with headings for cancelling %s. Include the exact navigation and links if known. If there are fees, warn the user. Close with encouragement."

	insightsSystemPrompt = "You are NoMo, a friendly assistant that spots savings in a list of subscriptions. Reply with JSON only."
	insightsPromptFormat = "Subscriptions: %s. Return a JSON array of up to 3 objects with \"title\" and \"body\" fields, each a short, practical observation about overlap, cost or cheaper plans."
)

// GenerationService builds prompts for cancellation guides and savings
// insights on top of the text generator.
type GenerationService struct {
	generator     TextGeneratorInterface
	subscriptions SubscriptionServiceInterface
	debouncer     DebouncerInterface
	audit         AuditServiceInterface
	metrics       MetricsRecorderInterface
	activity      ActivityLoggerInterface
}

func NewGenerationService(
	generator TextGeneratorInterface,
	subscriptions SubscriptionServiceInterface,
	debouncer DebouncerInterface,
	audit AuditServiceInterface,
	metrics MetricsRecorderInterface,
	activity ActivityLoggerInterface,
) GenerationServiceInterface {
	return &GenerationService{
		generator:     generator,
		subscriptions: subscriptions,
		debouncer:     debouncer,
		audit:         audit,
		metrics:       metrics,
		activity:      activity,
	}
}

// Guide writes a cancellation checklist for one of the owner's
// subscriptions. Repeats for the same subscription inside the debounce
// window are rejected.
func (s *GenerationService) Guide(ctx context.Context, owner models.Owner, subscriptionID string) (*models.Subscription, string, error) {
	sub, err := s.subscriptions.Find(ctx, owner, subscriptionID)
	if err != nil {
		return nil, "", err
	}

	if !s.debouncer.Allow("guide:" + owner.Key + ":" + sub.Key()) {
		s.metrics.IncrementCounter("request.debounced", map[string]string{"action": "guide"})
		return nil, "", ErrDebounced
	}

	result, err := s.run(ctx, "guide", models.GenerationRequest{
		Prompt: fmt.Sprintf(guidePromptFormat, sub.Name),
		System: guideSystemPrompt,
	})
	if err != nil {
		return nil, "", err
	}

	s.audit.Record(ctx, owner, models.AuditActionGuideGenerated, models.AuditResourceSubscription, sub.ID, nil)
	return sub, result.Text, nil
}

// Insights asks for observations about the active subscriptions. No active
// subscriptions means no insights and no call.
func (s *GenerationService) Insights(ctx context.Context, owner models.Owner) ([]models.Insight, error) {
	active, err := s.subscriptions.ActiveSubscriptions(ctx, owner)
	if err != nil {
		return nil, err
	}
	if len(active) == 0 {
		return []models.Insight{}, nil
	}

	result, err := s.run(ctx, "insights", models.GenerationRequest{
		Prompt:   fmt.Sprintf(insightsPromptFormat, DescribeSubscriptions(active)),
		System:   insightsSystemPrompt,
		WantJSON: true,
	})
	if err != nil {
		return nil, err
	}

	var insights []models.Insight
	if err := json.Unmarshal(result.JSON, &insights); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationNoJSON, err)
	}

	out := make([]models.Insight, 0, len(insights))
	for _, insight := range insights {
		if strings.TrimSpace(insight.Title) == "" && strings.TrimSpace(insight.Body) == "" {
			continue
		}
		out = append(out, insight)
	}
	return out, nil
}

func (s *GenerationService) Generate(ctx context.Context, req models.GenerationRequest) (*models.GenerationResult, error) {
	return s.run(ctx, "raw", req)
}

func (s *GenerationService) run(ctx context.Context, purpose string, req models.GenerationRequest) (*models.GenerationResult, error) {
	result, err := s.generator.Generate(ctx, req)
	if err != nil {
		s.metrics.IncrementCounter("generation", map[string]string{"purpose": purpose, "status": "failed"})
		s.activity.LogGenerationFailed(ctx, purpose, err.Error())
		return nil, err
	}

	s.metrics.IncrementCounter("generation", map[string]string{"purpose": purpose, "status": "success"})
	return result, nil
}

// DescribeSubscriptions renders "Netflix $15.49/mo, Spotify $9.99/mo".
// Entries without a price are listed by name only.
func DescribeSubscriptions(subs []models.Subscription) string {
	parts := make([]string, 0, len(subs))
	for _, sub := range subs {
		if !sub.HasPrice() {
			parts = append(parts, sub.Name)
			continue
		}
		price := decimal.NewFromFloat(sub.PricePerMonthUSD).StringFixed(2)
		parts = append(parts, fmt.Sprintf("%s $%s/mo", sub.Name, price))
	}
	return strings.Join(parts, ", ")
}
