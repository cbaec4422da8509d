package model

import (
	"time"

	"github.com/google/uuid"
)

// Registration states
const (
	RegStatusPending    = "PENDING"
	RegStatusConfirmed  = "CONFIRMED"
	RegStatusCancelled  = "CANCELLED"
	RegStatusWaitlisted = "WAITLISTED"
)

// RegistrationModel ties either a user or a team to an event, never both.
// The composite unique indexes keep one registration per participant per
// event; rows are hard-deleted on cancel so the indexes stay clean.
type RegistrationModel struct {
	RegistrationID      uuid.UUID  `gorm:"column:registration_id;type:uuid;default:gen_random_uuid();primaryKey" json:"registration_id"`
	RegistrationEventID uuid.UUID  `gorm:"column:registration_event_id;type:uuid;not null;uniqueIndex:uq_reg_user_event;uniqueIndex:uq_reg_team_event" json:"registration_event_id"`
	RegistrationUserID  *uuid.UUID `gorm:"column:registration_user_id;type:uuid;uniqueIndex:uq_reg_user_event" json:"registration_user_id,omitempty"`
	RegistrationTeamID  *uuid.UUID `gorm:"column:registration_team_id;type:uuid;uniqueIndex:uq_reg_team_event" json:"registration_team_id,omitempty"`
	RegistrationStatus  string     `gorm:"column:registration_status;type:varchar(20);not null;default:'PENDING';index" json:"registration_status"`

	RegistrationCreatedAt time.Time `gorm:"column:registration_created_at;type:timestamptz;autoCreateTime" json:"registration_created_at"`
	RegistrationUpdatedAt time.Time `gorm:"column:registration_updated_at;type:timestamptz;autoUpdateTime" json:"registration_updated_at"`
}

func (RegistrationModel) TableName() string {
	return "registrations"
}
