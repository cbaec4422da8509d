package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event types
const (
	TypeGeneral = "GENERAL"
	TypePaid    = "PAID"
	TypeCombo   = "COMBO"
)

// Participation modes
const (
	ModeIndividual = "INDIVIDUAL"
	ModeTeam       = "TEAM"
)

// Lifecycle states
const (
	StatusDraft           = "DRAFT"
	StatusPendingApproval = "PENDING_APPROVAL"
	StatusApproved        = "APPROVED"
	StatusPublished       = "PUBLISHED"
	StatusCancelled       = "CANCELLED"
)

type EventModel struct {
	EventID          uuid.UUID `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`
	EventTitle       string    `gorm:"column:event_title;type:varchar(255);not null" json:"event_title"`
	EventDescription string    `gorm:"column:event_description;type:text" json:"event_description"`
	EventCategory    string    `gorm:"column:event_category;type:varchar(100)" json:"event_category"`
	EventDomain      string    `gorm:"column:event_domain;type:varchar(100)" json:"event_domain"`
	EventVenue       string    `gorm:"column:event_venue;type:varchar(255)" json:"event_venue"`

	EventType       string `gorm:"column:event_type;type:varchar(20);not null;default:'GENERAL'" json:"event_type"`
	EventMode       string `gorm:"column:event_mode;type:varchar(20);not null;default:'INDIVIDUAL'" json:"event_mode"`
	EventStatus     string `gorm:"column:event_status;type:varchar(30);not null;default:'PENDING_APPROVAL';index" json:"event_status"`
	EventIsWorkshop bool   `gorm:"column:event_is_workshop;not null;default:false" json:"event_is_workshop"`

	EventFeePerPerson int `gorm:"column:event_fee_per_person;not null;default:0" json:"event_fee_per_person"`
	EventFeePerTeam   int `gorm:"column:event_fee_per_team;not null;default:0" json:"event_fee_per_team"`

	// Denormalized counter kept consistent by atomic conditional updates
	// in the registrations feature. 0 max means uncapped.
	EventMaxRegistrations     int `gorm:"column:event_max_registrations;not null;default:0" json:"event_max_registrations"`
	EventCurrentRegistrations int `gorm:"column:event_current_registrations;not null;default:0" json:"event_current_registrations"`

	EventStartDate time.Time `gorm:"column:event_start_date;type:timestamptz;not null" json:"event_start_date"`
	EventEndDate   time.Time `gorm:"column:event_end_date;type:timestamptz;not null" json:"event_end_date"`

	EventCreatedBy uuid.UUID  `gorm:"column:event_created_by;type:uuid;not null;index" json:"event_created_by"`
	EventManagerID *uuid.UUID `gorm:"column:event_manager_id;type:uuid" json:"event_manager_id,omitempty"`

	EventCreatedAt time.Time      `gorm:"column:event_created_at;type:timestamptz;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt time.Time      `gorm:"column:event_updated_at;type:timestamptz;autoUpdateTime" json:"event_updated_at"`
	EventDeletedAt gorm.DeletedAt `gorm:"column:event_deleted_at;type:timestamptz;index" json:"event_deleted_at,omitempty"`
}

func (EventModel) TableName() string {
	return "events"
}
