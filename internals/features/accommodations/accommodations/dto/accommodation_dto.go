package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"yugamki_backend/internals/features/accommodations/accommodations/model"
)

type RoomTypeCreateRequest struct {
	RoomTypeName          string `json:"room_type_name" validate:"required,min=2,max=120"`
	RoomTypeDescription   string `json:"room_type_description" validate:"omitempty,max=2000"`
	RoomTypeGender        string `json:"room_type_gender" validate:"required,oneof=MALE FEMALE"`
	RoomTypeCapacity      int    `json:"room_type_capacity" validate:"required,min=1,max=12"`
	RoomTypePricePerNight int    `json:"room_type_price_per_night" validate:"required,min=0"`
	RoomTypeTotalRooms    int    `json:"room_type_total_rooms" validate:"required,min=1"`
}

type RoomTypeUpdateRequest struct {
	RoomTypeName          *string `json:"room_type_name" validate:"omitempty,min=2,max=120"`
	RoomTypeDescription   *string `json:"room_type_description" validate:"omitempty,max=2000"`
	RoomTypePricePerNight *int    `json:"room_type_price_per_night" validate:"omitempty,min=0"`
	RoomTypeIsActive      *bool   `json:"room_type_is_active"`
}

type AccommodationRequest struct {
	RoomTypeID uuid.UUID `json:"room_type_id" validate:"required"`
	CheckIn    time.Time `json:"check_in" validate:"required"`
	CheckOut   time.Time `json:"check_out" validate:"required"`
}

type AccommodationUpdateRequest struct {
	CheckIn  *time.Time `json:"check_in"`
	CheckOut *time.Time `json:"check_out"`
}

type AccommodationConfirmRequest struct {
	RoomNumber string   `json:"room_number" validate:"required,min=1,max=20"`
	Roommates  []string `json:"roommates" validate:"omitempty,max=12,dive,min=1,max=120"`
}

type RoomTypeResponse struct {
	RoomTypeID             uuid.UUID `json:"room_type_id"`
	RoomTypeName           string    `json:"room_type_name"`
	RoomTypeDescription    string    `json:"room_type_description"`
	RoomTypeGender         string    `json:"room_type_gender"`
	RoomTypePricePerNight  int       `json:"room_type_price_per_night"`
	RoomTypeCapacity       int       `json:"room_type_capacity"`
	RoomTypeTotalRooms     int       `json:"room_type_total_rooms"`
	RoomTypeAvailableRooms int       `json:"room_type_available_rooms"`
	RoomTypeIsActive       bool      `json:"room_type_is_active"`
}

func ToRoomTypeResponse(m *model.RoomTypeModel) *RoomTypeResponse {
	return &RoomTypeResponse{
		RoomTypeID:             m.RoomTypeID,
		RoomTypeName:           m.RoomTypeName,
		RoomTypeDescription:    m.RoomTypeDescription,
		RoomTypeGender:         m.RoomTypeGender,
		RoomTypePricePerNight:  m.RoomTypePricePerNight,
		RoomTypeCapacity:       m.RoomTypeCapacity,
		RoomTypeTotalRooms:     m.RoomTypeTotalRooms,
		RoomTypeAvailableRooms: m.RoomTypeAvailableRooms,
		RoomTypeIsActive:       m.RoomTypeIsActive,
	}
}

func ToRoomTypeResponseList(models []model.RoomTypeModel) []RoomTypeResponse {
	out := make([]RoomTypeResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToRoomTypeResponse(&models[i]))
	}
	return out
}

type AccommodationResponse struct {
	AccommodationID         uuid.UUID      `json:"accommodation_id"`
	AccommodationUserID     uuid.UUID      `json:"accommodation_user_id"`
	AccommodationRoomTypeID uuid.UUID      `json:"accommodation_room_type_id"`
	AccommodationCheckIn    time.Time      `json:"accommodation_check_in"`
	AccommodationCheckOut   time.Time      `json:"accommodation_check_out"`
	AccommodationStatus     string         `json:"accommodation_status"`
	AccommodationTotalCost  int            `json:"accommodation_total_cost"`
	AccommodationRoomNumber *string        `json:"accommodation_room_number,omitempty"`
	AccommodationRoommates  datatypes.JSON `json:"accommodation_roommates,omitempty"`
	AccommodationCreatedAt  time.Time      `json:"accommodation_created_at"`
}

func ToAccommodationResponse(m *model.AccommodationModel) *AccommodationResponse {
	return &AccommodationResponse{
		AccommodationID:         m.AccommodationID,
		AccommodationUserID:     m.AccommodationUserID,
		AccommodationRoomTypeID: m.AccommodationRoomTypeID,
		AccommodationCheckIn:    m.AccommodationCheckIn,
		AccommodationCheckOut:   m.AccommodationCheckOut,
		AccommodationStatus:     m.AccommodationStatus,
		AccommodationTotalCost:  m.AccommodationTotalCost,
		AccommodationRoomNumber: m.AccommodationRoomNumber,
		AccommodationRoommates:  m.AccommodationRoommates,
		AccommodationCreatedAt:  m.AccommodationCreatedAt,
	}
}

func ToAccommodationResponseList(models []model.AccommodationModel) []AccommodationResponse {
	out := make([]AccommodationResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToAccommodationResponse(&models[i]))
	}
	return out
}
