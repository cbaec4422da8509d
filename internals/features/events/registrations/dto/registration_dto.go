package dto

import (
	"time"

	"github.com/google/uuid"

	"yugamki_backend/internals/features/events/registrations/model"
)

type RegisterRequest struct {
	EventID uuid.UUID  `json:"event_id" validate:"required"`
	TeamID  *uuid.UUID `json:"team_id"`
}

type TeamCreateRequest struct {
	TeamName string    `json:"team_name" validate:"required,min=2,max=120"`
	EventID  uuid.UUID `json:"event_id" validate:"required"`
}

type TeamAddMemberRequest struct {
	UserID  *uuid.UUID `json:"user_id"`
	YugamID *string    `json:"yugam_id" validate:"omitempty,min=6,max=12"`
}

type RegistrationResponse struct {
	RegistrationID      uuid.UUID  `json:"registration_id"`
	RegistrationEventID uuid.UUID  `json:"registration_event_id"`
	RegistrationUserID  *uuid.UUID `json:"registration_user_id,omitempty"`
	RegistrationTeamID  *uuid.UUID `json:"registration_team_id,omitempty"`
	RegistrationStatus  string     `json:"registration_status"`
	RegistrationCreated time.Time  `json:"registration_created_at"`

	// Joined for list views
	EventTitle string `json:"event_title,omitempty"`
	TeamName   string `json:"team_name,omitempty"`
}

func ToRegistrationResponse(m *model.RegistrationModel) *RegistrationResponse {
	return &RegistrationResponse{
		RegistrationID:      m.RegistrationID,
		RegistrationEventID: m.RegistrationEventID,
		RegistrationUserID:  m.RegistrationUserID,
		RegistrationTeamID:  m.RegistrationTeamID,
		RegistrationStatus:  m.RegistrationStatus,
		RegistrationCreated: m.RegistrationCreatedAt,
	}
}

type TeamResponse struct {
	TeamID       uuid.UUID            `json:"team_id"`
	TeamName     string               `json:"team_name"`
	TeamLeaderID uuid.UUID            `json:"team_leader_id"`
	TeamEventID  uuid.UUID            `json:"team_event_id"`
	Members      []TeamMemberResponse `json:"members,omitempty"`
}

type TeamMemberResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	FullName string    `json:"full_name"`
	YugamID  string    `json:"yugam_id"`
}

func ToTeamResponse(t *model.TeamModel) *TeamResponse {
	return &TeamResponse{
		TeamID:       t.TeamID,
		TeamName:     t.TeamName,
		TeamLeaderID: t.TeamLeaderID,
		TeamEventID:  t.TeamEventID,
	}
}
