package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Booking states
const (
	AccStatusRequested = "REQUESTED"
	AccStatusConfirmed = "CONFIRMED"
	AccStatusCancelled = "CANCELLED"
)

// AccommodationModel is one stay request per user. Roommates is a JSON
// list of names the admin fills in at confirmation.
type AccommodationModel struct {
	AccommodationID         uuid.UUID `gorm:"column:accommodation_id;type:uuid;default:gen_random_uuid();primaryKey" json:"accommodation_id"`
	AccommodationUserID     uuid.UUID `gorm:"column:accommodation_user_id;type:uuid;uniqueIndex;not null" json:"accommodation_user_id"`
	AccommodationRoomTypeID uuid.UUID `gorm:"column:accommodation_room_type_id;type:uuid;not null;index" json:"accommodation_room_type_id"`

	AccommodationCheckIn  time.Time `gorm:"column:accommodation_check_in;type:timestamptz;not null" json:"accommodation_check_in"`
	AccommodationCheckOut time.Time `gorm:"column:accommodation_check_out;type:timestamptz;not null" json:"accommodation_check_out"`

	AccommodationStatus     string         `gorm:"column:accommodation_status;type:varchar(20);not null;default:'REQUESTED';index" json:"accommodation_status"`
	AccommodationTotalCost  int            `gorm:"column:accommodation_total_cost;not null" json:"accommodation_total_cost"`
	AccommodationRoomNumber *string        `gorm:"column:accommodation_room_number;type:varchar(20)" json:"accommodation_room_number,omitempty"`
	AccommodationRoommates  datatypes.JSON `gorm:"column:accommodation_roommates;type:jsonb" json:"accommodation_roommates,omitempty"`

	AccommodationCreatedAt time.Time `gorm:"column:accommodation_created_at;type:timestamptz;autoCreateTime" json:"accommodation_created_at"`
	AccommodationUpdatedAt time.Time `gorm:"column:accommodation_updated_at;type:timestamptz;autoUpdateTime" json:"accommodation_updated_at"`
}

func (AccommodationModel) TableName() string {
	return "accommodations"
}
