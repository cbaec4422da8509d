package model

import (
	"time"

	"github.com/google/uuid"
)

// WhatsApp request states
const (
	WaStatusPending  = "PENDING"
	WaStatusApproved = "APPROVED"
	WaStatusRejected = "REJECTED"
	WaStatusSent     = "SENT"
)

// WhatsAppRequestModel is a coordinator's message draft awaiting admin
// approval before dispatch.
type WhatsAppRequestModel struct {
	WaRequestID      uuid.UUID  `gorm:"column:wa_request_id;type:uuid;default:gen_random_uuid();primaryKey" json:"wa_request_id"`
	WaRequestMessage string     `gorm:"column:wa_request_message;type:varchar(512);not null" json:"wa_request_message"`
	WaRequestEventID *uuid.UUID `gorm:"column:wa_request_event_id;type:uuid;index" json:"wa_request_event_id,omitempty"`
	WaRequestStatus  string     `gorm:"column:wa_request_status;type:varchar(20);not null;default:'PENDING';index" json:"wa_request_status"`

	WaRequestRequestedBy uuid.UUID  `gorm:"column:wa_request_requested_by;type:uuid;not null" json:"wa_request_requested_by"`
	WaRequestReviewedBy  *uuid.UUID `gorm:"column:wa_request_reviewed_by;type:uuid" json:"wa_request_reviewed_by,omitempty"`
	WaRequestReviewedAt  *time.Time `gorm:"column:wa_request_reviewed_at;type:timestamptz" json:"wa_request_reviewed_at,omitempty"`
	WaRequestSentAt      *time.Time `gorm:"column:wa_request_sent_at;type:timestamptz" json:"wa_request_sent_at,omitempty"`

	WaRequestCreatedAt time.Time `gorm:"column:wa_request_created_at;type:timestamptz;autoCreateTime" json:"wa_request_created_at"`
	WaRequestUpdatedAt time.Time `gorm:"column:wa_request_updated_at;type:timestamptz;autoUpdateTime" json:"wa_request_updated_at"`
}

func (WhatsAppRequestModel) TableName() string {
	return "whatsapp_requests"
}
