package dto

import (
	"time"

	"github.com/google/uuid"

	"yugamki_backend/internals/features/communications/communications/model"
)

type SendEmailRequest struct {
	Subject string     `json:"subject" validate:"required,min=3,max=255"`
	Body    string     `json:"body" validate:"required,min=3,max=20000"`
	EventID *uuid.UUID `json:"event_id"`
}

type WhatsAppCreateRequest struct {
	Message string     `json:"message" validate:"required,min=3,max=512"`
	EventID *uuid.UUID `json:"event_id"`
}

type WhatsAppTransitionRequest struct {
	Status string `json:"status" validate:"required,oneof=APPROVED REJECTED SENT"`
}

type WhatsAppResponse struct {
	WaRequestID      uuid.UUID  `json:"wa_request_id"`
	WaRequestMessage string     `json:"wa_request_message"`
	WaRequestEventID *uuid.UUID `json:"wa_request_event_id,omitempty"`
	WaRequestStatus  string     `json:"wa_request_status"`
	RequestedBy      uuid.UUID  `json:"requested_by"`
	ReviewedBy       *uuid.UUID `json:"reviewed_by,omitempty"`
	ReviewedAt       *time.Time `json:"reviewed_at,omitempty"`
	SentAt           *time.Time `json:"sent_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

func ToWhatsAppResponse(m *model.WhatsAppRequestModel) *WhatsAppResponse {
	return &WhatsAppResponse{
		WaRequestID:      m.WaRequestID,
		WaRequestMessage: m.WaRequestMessage,
		WaRequestEventID: m.WaRequestEventID,
		WaRequestStatus:  m.WaRequestStatus,
		RequestedBy:      m.WaRequestRequestedBy,
		ReviewedBy:       m.WaRequestReviewedBy,
		ReviewedAt:       m.WaRequestReviewedAt,
		SentAt:           m.WaRequestSentAt,
		CreatedAt:        m.WaRequestCreatedAt,
	}
}

func ToWhatsAppResponseList(models []model.WhatsAppRequestModel) []WhatsAppResponse {
	out := make([]WhatsAppResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToWhatsAppResponse(&models[i]))
	}
	return out
}
