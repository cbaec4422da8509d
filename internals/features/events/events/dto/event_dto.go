package dto

import (
	"time"

	"github.com/google/uuid"

	"yugamki_backend/internals/features/events/events/model"
)

type EventCreateRequest struct {
	EventTitle            string    `json:"event_title" validate:"required,min=3,max=255"`
	EventDescription      string    `json:"event_description" validate:"omitempty,max=5000"`
	EventCategory         string    `json:"event_category" validate:"omitempty,max=100"`
	EventDomain           string    `json:"event_domain" validate:"omitempty,max=100"`
	EventVenue            string    `json:"event_venue" validate:"omitempty,max=255"`
	EventType             string    `json:"event_type" validate:"required,oneof=GENERAL PAID COMBO"`
	EventMode             string    `json:"event_mode" validate:"required,oneof=INDIVIDUAL TEAM"`
	EventIsWorkshop       bool      `json:"event_is_workshop"`
	EventFeePerPerson     int       `json:"event_fee_per_person" validate:"omitempty,min=0"`
	EventFeePerTeam       int       `json:"event_fee_per_team" validate:"omitempty,min=0"`
	EventMaxRegistrations int       `json:"event_max_registrations" validate:"omitempty,min=0"`
	EventStartDate        time.Time `json:"event_start_date" validate:"required"`
	EventEndDate          time.Time `json:"event_end_date" validate:"required"`
}

func (r *EventCreateRequest) ToModel(createdBy uuid.UUID) *model.EventModel {
	return &model.EventModel{
		EventTitle:            r.EventTitle,
		EventDescription:      r.EventDescription,
		EventCategory:         r.EventCategory,
		EventDomain:           r.EventDomain,
		EventVenue:            r.EventVenue,
		EventType:             r.EventType,
		EventMode:             r.EventMode,
		// Creation always enters the approval queue, whatever was asked for.
		EventStatus:           model.StatusPendingApproval,
		EventIsWorkshop:       r.EventIsWorkshop,
		EventFeePerPerson:     r.EventFeePerPerson,
		EventFeePerTeam:       r.EventFeePerTeam,
		EventMaxRegistrations: r.EventMaxRegistrations,
		EventStartDate:        r.EventStartDate,
		EventEndDate:          r.EventEndDate,
		EventCreatedBy:        createdBy,
	}
}

// EventUpdateRequest: content fields only; status moves through the
// dedicated transition endpoint.
type EventUpdateRequest struct {
	EventTitle            *string    `json:"event_title" validate:"omitempty,min=3,max=255"`
	EventDescription      *string    `json:"event_description" validate:"omitempty,max=5000"`
	EventCategory         *string    `json:"event_category" validate:"omitempty,max=100"`
	EventDomain           *string    `json:"event_domain" validate:"omitempty,max=100"`
	EventVenue            *string    `json:"event_venue" validate:"omitempty,max=255"`
	EventFeePerPerson     *int       `json:"event_fee_per_person" validate:"omitempty,min=0"`
	EventFeePerTeam       *int       `json:"event_fee_per_team" validate:"omitempty,min=0"`
	EventMaxRegistrations *int       `json:"event_max_registrations" validate:"omitempty,min=0"`
	EventStartDate        *time.Time `json:"event_start_date"`
	EventEndDate          *time.Time `json:"event_end_date"`
}

type EventStatusRequest struct {
	EventStatus    string     `json:"event_status" validate:"required,oneof=APPROVED PUBLISHED CANCELLED"`
	EventManagerID *uuid.UUID `json:"event_manager_id"`
}

type EventResponse struct {
	EventID                   uuid.UUID  `json:"event_id"`
	EventTitle                string     `json:"event_title"`
	EventDescription          string     `json:"event_description"`
	EventCategory             string     `json:"event_category"`
	EventDomain               string     `json:"event_domain"`
	EventVenue                string     `json:"event_venue"`
	EventType                 string     `json:"event_type"`
	EventMode                 string     `json:"event_mode"`
	EventStatus               string     `json:"event_status"`
	EventIsWorkshop           bool       `json:"event_is_workshop"`
	EventFeePerPerson         int        `json:"event_fee_per_person"`
	EventFeePerTeam           int        `json:"event_fee_per_team"`
	EventMaxRegistrations     int        `json:"event_max_registrations"`
	EventCurrentRegistrations int        `json:"event_current_registrations"`
	EventStartDate            time.Time  `json:"event_start_date"`
	EventEndDate              time.Time  `json:"event_end_date"`
	EventCreatedBy            uuid.UUID  `json:"event_created_by"`
	EventManagerID            *uuid.UUID `json:"event_manager_id,omitempty"`
	EventCreatedAt            time.Time  `json:"event_created_at"`
}

func ToEventResponse(m *model.EventModel) *EventResponse {
	return &EventResponse{
		EventID:                   m.EventID,
		EventTitle:                m.EventTitle,
		EventDescription:          m.EventDescription,
		EventCategory:             m.EventCategory,
		EventDomain:               m.EventDomain,
		EventVenue:                m.EventVenue,
		EventType:                 m.EventType,
		EventMode:                 m.EventMode,
		EventStatus:               m.EventStatus,
		EventIsWorkshop:           m.EventIsWorkshop,
		EventFeePerPerson:         m.EventFeePerPerson,
		EventFeePerTeam:           m.EventFeePerTeam,
		EventMaxRegistrations:     m.EventMaxRegistrations,
		EventCurrentRegistrations: m.EventCurrentRegistrations,
		EventStartDate:            m.EventStartDate,
		EventEndDate:              m.EventEndDate,
		EventCreatedBy:            m.EventCreatedBy,
		EventManagerID:            m.EventManagerID,
		EventCreatedAt:            m.EventCreatedAt,
	}
}

func ToEventResponseList(models []model.EventModel) []EventResponse {
	out := make([]EventResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToEventResponse(&models[i]))
	}
	return out
}
