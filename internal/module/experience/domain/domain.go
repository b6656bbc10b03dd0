// Package domain models the XP event log and the level/streak math the
// experience engine runs over a user's profile.
package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EventType discriminates the reason an XP delta was recorded.
type EventType string

const (
	EventDailyLogin        EventType = "daily_login"
	EventTransaction       EventType = "transaction"
	EventStreakMilestone   EventType = "streak_milestone"
	EventInactivityPenalty EventType = "inactivity_penalty"
	EventFinancialGoal     EventType = "financial_goal"
)

// XPEvent is an append-only ledger row. Never mutated after insert.
type XPEvent struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_xp_events_user_created;column:user_id" json:"user_id"`
	XPAmount  int            `gorm:"not null;column:xp_amount" json:"xp_amount"`
	EventType EventType      `gorm:"type:varchar(30);not null;index;column:event_type" json:"event_type"`
	Description string       `gorm:"type:text;not null;column:description" json:"description"`
	Metadata  datatypes.JSON `gorm:"type:jsonb;column:metadata" json:"metadata,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index:idx_xp_events_user_created;column:created_at" json:"created_at"`
}

// TableName matches the database table.
func (XPEvent) TableName() string {
	return "xp_events"
}
