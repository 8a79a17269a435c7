package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AuditActionSignedIn            = "signed_in"
	AuditActionInboxScanned        = "inbox_scanned"
	AuditActionSubscriptionCancel  = "subscription_canceled"
	AuditActionSubscriptionRemove  = "subscription_removed"
	AuditActionSubscriptionRestore = "subscription_restored"
	AuditActionPriceUpdated        = "price_updated"
	AuditActionDirectoryPicked     = "directory_picked"
	AuditActionPendingDiscarded    = "pending_discarded"
	AuditActionCustomAdded         = "custom_added"
	AuditActionStateWritten        = "state_written"
	AuditActionStateReset          = "state_reset"
	AuditActionGuideGenerated      = "guide_generated"
	AuditActionConciergeRequested  = "concierge_requested"
)

const (
	AuditResourceSubscription = "subscription"
	AuditResourceState        = "state"
	AuditResourceInbox        = "inbox"
	AuditResourceSession      = "session"
	AuditResourceConcierge    = "concierge"
)

// AuditLog is one recorded user action. UserID is nil for signed-out owners,
// which are identified by OwnerKey instead.
type AuditLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	OwnerKey   string     `gorm:"type:varchar(255);index" json:"owner_key,omitempty"`
	Action     string     `gorm:"type:varchar(100);not null;index" json:"action"`
	Resource   string     `gorm:"type:varchar(100);not null" json:"resource"`
	ResourceID string     `gorm:"type:varchar(255)" json:"resource_id,omitempty"`
	IPAddress  string     `gorm:"type:varchar(45)" json:"ip_address,omitempty"`
	UserAgent  string     `gorm:"type:text" json:"user_agent,omitempty"`
	Metadata   JSONBMap   `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt  time.Time  `gorm:"not null;index" json:"created_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
}

func (al *AuditLog) SetMetadata(key string, value interface{}) {
	if al.Metadata == nil {
		al.Metadata = make(JSONBMap)
	}
	al.Metadata[key] = value
}

func (al *AuditLog) String() string {
	who := al.OwnerKey
	if al.UserID != nil {
		who = al.UserID.String()
	}
	if who == "" {
		who = "anonymous"
	}

	return fmt.Sprintf("AuditLog[Owner: %s, Action: %s, Resource: %s/%s, Time: %s]",
		who, al.Action, al.Resource, al.ResourceID, al.CreatedAt.Format(time.RFC3339))
}

func (al *AuditLog) TableName() string {
	return "audit_logs"
}

func (al *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.New()
	}

	if al.CreatedAt.IsZero() {
		al.CreatedAt = time.Now()
	}
	return nil
}

// JSONBMap represents a JSONB map field for PostgreSQL
type JSONBMap map[string]interface{}

// Value implements driver.Valuer interface
func (m JSONBMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	// Return string for SQLite compatibility
	return string(bytes), nil
}

func (m *JSONBMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONBMap", value)
	}

	if len(bytes) == 0 {
		*m = nil
		return nil
	}

	return json.Unmarshal(bytes, m)
}
