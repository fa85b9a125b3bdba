package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/forkpoint/ordering-api/internal/domain/enum"
)

// SnapshotSchemaVersion is the current cart snapshot schema. Bump it when a
// field changes meaning so stale rows can be migrated or discarded on load.
const SnapshotSchemaVersion = 1

// CartSnapshot is the restricted subset of cart state carried across
// sessions. It holds only durable selections; transient UI state (open
// modals, in-flight flags) has no field here and so can never leak into
// storage.
type CartSnapshot struct {
	SchemaVersion int    `json:"schema_version"`
	SessionID     string `json:"session_id"`

	Items []CartItem `json:"items"`

	ActiveBranchID   *uuid.UUID       `json:"active_branch_id,omitempty"`
	ActiveBranchName string           `json:"active_branch_name,omitempty"`
	ServiceType      enum.ServiceType `json:"service_type"`
	SplitType        enum.SplitType   `json:"split_type"`

	Delivery            *DeliveryDetails `json:"delivery,omitempty"`
	Takeaway            *TakeawayDetails `json:"takeaway,omitempty"`
	SpecialInstructions string           `json:"special_instructions,omitempty"`
	AllergenIDs         []string         `json:"allergen_ids,omitempty"`
}

// CartStateRecord is the persisted form of a snapshot: one JSON document per
// session, last writer wins.
type CartStateRecord struct {
	SessionID     string    `gorm:"size:64;primary_key" json:"session_id"`
	SchemaVersion int       `gorm:"not null" json:"schema_version"`
	Payload       []byte    `gorm:"type:jsonb;not null" json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName returns the table name for the CartStateRecord model
func (CartStateRecord) TableName() string {
	return "cart_states"
}
