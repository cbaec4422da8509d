package model

import (
	"time"

	"github.com/google/uuid"
)

// Room genders
const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"
)

type RoomTypeModel struct {
	RoomTypeID            uuid.UUID `gorm:"column:room_type_id;type:uuid;default:gen_random_uuid();primaryKey" json:"room_type_id"`
	RoomTypeName          string    `gorm:"column:room_type_name;type:varchar(120);uniqueIndex;not null" json:"room_type_name"`
	RoomTypeDescription   string    `gorm:"column:room_type_description;type:text" json:"room_type_description"`
	RoomTypeGender        string    `gorm:"column:room_type_gender;type:varchar(10);not null" json:"room_type_gender"`
	RoomTypeCapacity      int       `gorm:"column:room_type_capacity;not null;default:1" json:"room_type_capacity"`
	RoomTypePricePerNight int       `gorm:"column:room_type_price_per_night;not null" json:"room_type_price_per_night"`

	// Decremented atomically when a request is accepted, restored on cancel.
	RoomTypeTotalRooms     int `gorm:"column:room_type_total_rooms;not null" json:"room_type_total_rooms"`
	RoomTypeAvailableRooms int `gorm:"column:room_type_available_rooms;not null" json:"room_type_available_rooms"`

	RoomTypeIsActive bool `gorm:"column:room_type_is_active;not null;default:true" json:"room_type_is_active"`

	RoomTypeCreatedAt time.Time `gorm:"column:room_type_created_at;type:timestamptz;autoCreateTime" json:"room_type_created_at"`
	RoomTypeUpdatedAt time.Time `gorm:"column:room_type_updated_at;type:timestamptz;autoUpdateTime" json:"room_type_updated_at"`
}

func (RoomTypeModel) TableName() string {
	return "room_types"
}
