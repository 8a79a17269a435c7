package services

import (
	"context"
	"sync"
	"time"

	"subscription-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

type auditEntry struct {
	owner      models.Owner
	action     string
	resourceID string
	metadata   map[string]interface{}
}

// recordingAudit keeps Record calls in memory.
type recordingAudit struct {
	mu      sync.Mutex
	entries []auditEntry
}

func (a *recordingAudit) Record(_ context.Context, owner models.Owner, action, _, resourceID string, metadata map[string]interface{}) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, auditEntry{owner: owner, action: action, resourceID: resourceID, metadata: metadata})
}

func (a *recordingAudit) CreateAuditLog(context.Context, *models.AuditLog) error { return nil }

func (a *recordingAudit) GetUserActivity(context.Context, uuid.UUID, *time.Time, *time.Time, int, int) ([]*models.AuditLog, int64, error) {
	return nil, 0, nil
}

func (a *recordingAudit) GetOwnerActivity(context.Context, string, int, int) ([]*models.AuditLog, int64, error) {
	return nil, 0, nil
}

func (a *recordingAudit) Prune(context.Context, time.Duration) (int64, error) { return 0, nil }

func (a *recordingAudit) actions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.entries))
	for i, e := range a.entries {
		out[i] = e.action
	}
	return out
}

func newTestMetrics() MetricsRecorderInterface {
	return NewPrometheusMetrics(prometheus.NewRegistry())
}
