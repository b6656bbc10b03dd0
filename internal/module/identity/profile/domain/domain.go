package domain

import (
	"time"

	"github.com/google/uuid"

	"financequest/internal/pkg/caldate"
)

// UserProfile maps to the user_profiles table. It carries the
// gamification counters the experience engine reads and mutates, plus
// the timezone every "today" computation is resolved against.
type UserProfile struct {
	ID uuid.UUID `gorm:"type:uuid;default:uuidv7();primaryKey" json:"id"`

	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null;column:user_id" json:"user_id"`

	Timezone string `gorm:"type:varchar(64);not null;default:UTC;column:timezone" json:"timezone"`

	CurrentLevel  int `gorm:"not null;default:1;column:current_level" json:"current_level"`
	CurrentXP     int `gorm:"not null;default:0;column:current_xp" json:"current_xp"`
	TotalXPEarned int `gorm:"not null;default:0;column:total_xp_earned" json:"total_xp_earned"`

	CurrentStreak int           `gorm:"not null;default:0;column:current_streak" json:"current_streak"`
	LongestStreak int           `gorm:"not null;default:0;column:longest_streak" json:"longest_streak"`
	LastLoginDate *caldate.Date `gorm:"type:date;column:last_login_date" json:"last_login_date,omitempty"`

	TransactionsTodayCount int           `gorm:"not null;default:0;column:transactions_today_count" json:"transactions_today_count"`
	LastTransactionDate    *caldate.Date `gorm:"type:date;column:last_transaction_date" json:"last_transaction_date,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

// TableName matches the database table.
func (UserProfile) TableName() string {
	return "user_profiles"
}

// EvolutionStage buckets the level for presentation.
func (p *UserProfile) EvolutionStage() string {
	switch {
	case p.CurrentLevel <= 5:
		return "Baby"
	case p.CurrentLevel <= 15:
		return "Young"
	case p.CurrentLevel <= 30:
		return "Adult"
	case p.CurrentLevel <= 50:
		return "Prime"
	default:
		return "Legendary"
	}
}

// TodayIn resolves the profile's notion of "today".
func (p *UserProfile) TodayIn() caldate.Date {
	return caldate.TodayIn(p.Timezone)
}

// HasCheckedInToday reports whether the profile's last login date is today.
func (p *UserProfile) HasCheckedInToday(today caldate.Date) bool {
	return p.LastLoginDate != nil && p.LastLoginDate.Equal(today)
}
