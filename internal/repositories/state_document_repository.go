package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"subscription-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrStateDocumentNotFound = errors.New("state document not found")

// StateDocumentRepository keeps signed-in owners' state documents in the
// relational store
type StateDocumentRepository struct {
	db *gorm.DB
}

func NewStateDocumentRepository(db *gorm.DB) StateDocumentRepositoryInterface {
	return &StateDocumentRepository{db: db}
}

// GetAll returns every stored document for the owner
func (r *StateDocumentRepository) GetAll(ctx context.Context, ownerKey string) ([]models.StateDocument, error) {
	var docs []models.StateDocument
	if err := r.db.WithContext(ctx).Where("owner_key = ?", ownerKey).Order("kind ASC").Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("failed to get state documents: %w", err)
	}
	return docs, nil
}

// Get returns one document of the owner
func (r *StateDocumentRepository) Get(ctx context.Context, ownerKey string, kind models.DocumentKind) (*models.StateDocument, error) {
	var doc models.StateDocument
	err := r.db.WithContext(ctx).Where("owner_key = ? AND kind = ?", ownerKey, kind).First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStateDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get state document: %w", err)
	}
	return &doc, nil
}

// Put replaces the document's payload and bumps its version. On success
// doc.Version holds the new version.
func (r *StateDocumentRepository) Put(ctx context.Context, doc *models.StateDocument, expectedVersion int) error {
	if err := validateStateDocument(doc); err != nil {
		return err
	}

	now := time.Now()
	db := r.db.WithContext(ctx)

	if expectedVersion > 0 {
		result := db.Model(&models.StateDocument{}).
			Where("owner_key = ? AND kind = ? AND version = ?", doc.OwnerKey, doc.Kind, expectedVersion).
			Updates(map[string]interface{}{
				"payload":    doc.Payload,
				"version":    gorm.Expr("version + 1"),
				"updated_at": now,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update state document: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return models.ErrStaleWrite
		}

		doc.Version = expectedVersion + 1
		doc.UpdatedAt = now
		return nil
	}

	insert := &models.StateDocument{
		ID:        uuid.New(),
		OwnerKey:  doc.OwnerKey,
		Kind:      doc.Kind,
		Payload:   doc.Payload,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "owner_key"}, {Name: "kind"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"payload":    doc.Payload,
			"version":    gorm.Expr("state_documents.version + 1"),
			"updated_at": now,
		}),
	}).Create(insert).Error
	if err != nil {
		return fmt.Errorf("failed to upsert state document: %w", err)
	}

	stored, err := r.Get(ctx, doc.OwnerKey, doc.Kind)
	if err != nil {
		return err
	}

	doc.ID = stored.ID
	doc.Version = stored.Version
	doc.CreatedAt = stored.CreatedAt
	doc.UpdatedAt = stored.UpdatedAt
	return nil
}

// DeleteAll removes every document of the owner
func (r *StateDocumentRepository) DeleteAll(ctx context.Context, ownerKey string) error {
	if err := r.db.WithContext(ctx).Where("owner_key = ?", ownerKey).Delete(&models.StateDocument{}).Error; err != nil {
		return fmt.Errorf("failed to delete state documents: %w", err)
	}
	return nil
}

func validateStateDocument(doc *models.StateDocument) error {
	if doc == nil {
		return errors.New("state document cannot be nil")
	}
	if doc.OwnerKey == "" {
		return errors.New("state document owner key cannot be empty")
	}
	if !models.IsValidDocumentKind(doc.Kind) {
		return fmt.Errorf("invalid state document kind %q", doc.Kind)
	}
	return nil
}
