package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrStaleWrite = errors.New("stale write: document version mismatch")
)

// DocumentKind names one whole-value document in an owner's state.
type DocumentKind string

const (
	DocumentDetected    DocumentKind = "detected"
	DocumentCanceled    DocumentKind = "canceled"
	DocumentRemoved     DocumentKind = "removed"
	DocumentCustom      DocumentKind = "custom"
	DocumentPreferences DocumentKind = "preferences"
)

// AllDocumentKinds lists every kind in a stable order.
var AllDocumentKinds = []DocumentKind{
	DocumentDetected,
	DocumentCanceled,
	DocumentRemoved,
	DocumentCustom,
	DocumentPreferences,
}

func IsValidDocumentKind(kind DocumentKind) bool {
	for _, k := range AllDocumentKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// StateDocument is one JSON payload of an owner's subscription state.
// Version starts at 1 and increases on every write.
type StateDocument struct {
	ID        uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	OwnerKey  string       `gorm:"type:varchar(255);not null;uniqueIndex:idx_state_documents_owner_kind" json:"owner_key"`
	Kind      DocumentKind `gorm:"type:varchar(32);not null;uniqueIndex:idx_state_documents_owner_kind" json:"kind"`
	Payload   string       `gorm:"type:text;not null" json:"payload"`
	Version   int          `gorm:"not null;default:1" json:"version"`
	CreatedAt time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null;index" json:"updated_at"`
}

func (d *StateDocument) TableName() string {
	return "state_documents"
}

func (d *StateDocument) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}

	now := time.Now()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	if d.UpdatedAt.IsZero() {
		d.UpdatedAt = now
	}
	if d.Version == 0 {
		d.Version = 1
	}
	return nil
}

// DocumentVersions maps each stored kind to its current version. Kinds that
// were never written are absent.
type DocumentVersions map[DocumentKind]int
