package repositories

import (
	"context"
	"errors"
	"fmt"

	"subscription-tracker/internal/models"

	"gorm.io/gorm"
)

var ErrConciergeRequestNotFound = errors.New("concierge request not found")

type ConciergeRequestRepository struct {
	db *gorm.DB
}

func NewConciergeRequestRepository(db *gorm.DB) ConciergeRequestRepositoryInterface {
	return &ConciergeRequestRepository{db: db}
}

func (r *ConciergeRequestRepository) Create(ctx context.Context, request *models.ConciergeRequest) error {
	if request == nil {
		return errors.New("concierge request cannot be nil")
	}

	request.Email = normalizeEmail(request.Email)

	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		return fmt.Errorf("failed to create concierge request: %w", err)
	}
	return nil
}

// GetByEmail returns the earliest request for an address
func (r *ConciergeRequestRepository) GetByEmail(ctx context.Context, email string) (*models.ConciergeRequest, error) {
	var request models.ConciergeRequest
	err := r.db.WithContext(ctx).
		Where("email = ?", normalizeEmail(email)).
		Order("created_at ASC").
		First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConciergeRequestNotFound
		}
		return nil, fmt.Errorf("failed to get concierge request: %w", err)
	}
	return &request, nil
}
