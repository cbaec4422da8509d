package model

import (
	"time"

	"github.com/google/uuid"
)

// GeneralEventPassModel grants free entry to GENERAL events for the
// chosen number of festival days. One pass per user.
type GeneralEventPassModel struct {
	PassID     uuid.UUID `gorm:"column:pass_id;type:uuid;default:gen_random_uuid();primaryKey" json:"pass_id"`
	PassUserID uuid.UUID `gorm:"column:pass_user_id;type:uuid;uniqueIndex;not null" json:"pass_user_id"`
	PassDays   int       `gorm:"column:pass_days;not null" json:"pass_days"`
	PassAmount int       `gorm:"column:pass_amount;not null" json:"pass_amount"`
	PassActive bool      `gorm:"column:pass_active;not null;default:false" json:"pass_active"`

	PassCreatedAt time.Time `gorm:"column:pass_created_at;type:timestamptz;autoCreateTime" json:"pass_created_at"`
	PassUpdatedAt time.Time `gorm:"column:pass_updated_at;type:timestamptz;autoUpdateTime" json:"pass_updated_at"`
}

func (GeneralEventPassModel) TableName() string {
	return "general_event_passes"
}
