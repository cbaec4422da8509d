package dto

import (
	"time"

	"github.com/google/uuid"
)

type NotificationCreateRequest struct {
	Title      string     `json:"title" validate:"required,min=3,max=255"`
	Body       string     `json:"body" validate:"required,min=3,max=5000"`
	EventID    *uuid.UUID `json:"event_id"`
	TargetRole *string    `json:"target_role" validate:"omitempty,min=3,max=40"`
}

type InboxItemResponse struct {
	UserNotificationID uuid.UUID `json:"user_notification_id"`
	NotificationID     uuid.UUID `json:"notification_id"`
	Title              string    `json:"title"`
	Body               string    `json:"body"`
	IsRead             bool      `json:"is_read"`
	CreatedAt          time.Time `json:"created_at"`
}
