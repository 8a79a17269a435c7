package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"subscription-tracker/internal/models"
	"subscription-tracker/internal/repositories"

	"github.com/google/uuid"
)

var ErrInvalidConciergeEmail = errors.New("invalid concierge email")

// ConciergeService records requests for hands-on cancellation help. A
// repeated request for the same address returns the first one.
type ConciergeService struct {
	repo    repositories.ConciergeRequestRepositoryInterface
	audit   AuditServiceInterface
	metrics MetricsRecorderInterface
}

func NewConciergeService(
	repo repositories.ConciergeRequestRepositoryInterface,
	audit AuditServiceInterface,
	metrics MetricsRecorderInterface,
) ConciergeServiceInterface {
	return &ConciergeService{
		repo:    repo,
		audit:   audit,
		metrics: metrics,
	}
}

func (s *ConciergeService) Request(ctx context.Context, email, source string, userID *uuid.UUID) (*models.ConciergeRequest, bool, error) {
	email = strings.TrimSpace(email)
	if !models.IsValidEmail(email) {
		return nil, false, ErrInvalidConciergeEmail
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repositories.ErrConciergeRequestNotFound) {
		return nil, false, fmt.Errorf("failed to look up concierge request: %w", err)
	}

	if source == "" {
		source = models.ConciergeSourceWebApp
	}
	request := &models.ConciergeRequest{
		Email:  email,
		Source: source,
		UserID: userID,
	}
	if err := s.repo.Create(ctx, request); err != nil {
		return nil, false, err
	}

	s.metrics.IncrementCounter("concierge.requested", map[string]string{"source": source})

	owner := models.Owner{Key: "concierge:" + request.Email}
	if userID != nil {
		owner = models.NewRemoteOwner(*userID)
	}
	s.audit.Record(ctx, owner, models.AuditActionConciergeRequested, models.AuditResourceConcierge, request.ID.String(), map[string]interface{}{
		"source": source,
	})

	return request, true, nil
}
