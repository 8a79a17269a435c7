package dto

import (
	"time"

	"subscription-tracker/internal/models"

	"github.com/google/uuid"
)

// AuditLogResponse represents an audit log entry
type AuditLogResponse struct {
	ID         uuid.UUID       `json:"id"`
	Action     string          `json:"action"`
	Resource   string          `json:"resource"`
	ResourceID string          `json:"resourceId,omitempty"`
	Metadata   models.JSONBMap `json:"metadata,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// ActivityListResponse represents a paginated list of audit log entries
type ActivityListResponse struct {
	Entries []AuditLogResponse `json:"entries"`
	Total   int64              `json:"total"`
	Offset  int                `json:"offset"`
	Limit   int                `json:"limit"`
}

// NewAuditLogResponse maps a stored audit log to its API shape
func NewAuditLogResponse(log *models.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		ID:         log.ID,
		Action:     log.Action,
		Resource:   log.Resource,
		ResourceID: log.ResourceID,
		Metadata:   log.Metadata,
		CreatedAt:  log.CreatedAt,
	}
}
