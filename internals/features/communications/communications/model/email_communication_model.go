package model

import (
	"time"

	"github.com/google/uuid"
)

// EmailCommunicationModel logs a sent blast; one row per dispatch, not
// per recipient.
type EmailCommunicationModel struct {
	EmailID             uuid.UUID  `gorm:"column:email_id;type:uuid;default:gen_random_uuid();primaryKey" json:"email_id"`
	EmailSubject        string     `gorm:"column:email_subject;type:varchar(255);not null" json:"email_subject"`
	EmailBody           string     `gorm:"column:email_body;type:text;not null" json:"email_body"`
	EmailEventID        *uuid.UUID `gorm:"column:email_event_id;type:uuid;index" json:"email_event_id,omitempty"`
	EmailRecipientCount int        `gorm:"column:email_recipient_count;not null" json:"email_recipient_count"`
	EmailSentBy         uuid.UUID  `gorm:"column:email_sent_by;type:uuid;not null" json:"email_sent_by"`

	EmailCreatedAt time.Time `gorm:"column:email_created_at;type:timestamptz;autoCreateTime" json:"email_created_at"`
}

func (EmailCommunicationModel) TableName() string {
	return "email_communications"
}
