package model

import (
	"time"

	"github.com/google/uuid"
)

type NotificationModel struct {
	NotificationID          uuid.UUID  `gorm:"column:notification_id;type:uuid;default:gen_random_uuid();primaryKey" json:"notification_id"`
	NotificationTitle       string     `gorm:"column:notification_title;type:varchar(255);not null" json:"notification_title"`
	NotificationBody        string     `gorm:"column:notification_body;type:text;not null" json:"notification_body"`
	NotificationEventID     *uuid.UUID `gorm:"column:notification_event_id;type:uuid;index" json:"notification_event_id,omitempty"`
	NotificationTargetRole  *string    `gorm:"column:notification_target_role;type:varchar(40)" json:"notification_target_role,omitempty"`
	NotificationCreatedBy   uuid.UUID  `gorm:"column:notification_created_by;type:uuid;not null" json:"notification_created_by"`
	NotificationAudienceLen int        `gorm:"column:notification_audience_len;not null;default:0" json:"notification_audience_len"`

	NotificationCreatedAt time.Time `gorm:"column:notification_created_at;type:timestamptz;autoCreateTime" json:"notification_created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

// UserNotificationModel is one inbox row per recipient.
type UserNotificationModel struct {
	UserNotificationID             uuid.UUID `gorm:"column:user_notification_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_notification_id"`
	UserNotificationUserID         uuid.UUID `gorm:"column:user_notification_user_id;type:uuid;not null;uniqueIndex:uq_user_notification" json:"user_notification_user_id"`
	UserNotificationNotificationID uuid.UUID `gorm:"column:user_notification_notification_id;type:uuid;not null;uniqueIndex:uq_user_notification" json:"user_notification_notification_id"`
	UserNotificationIsRead         bool      `gorm:"column:user_notification_is_read;not null;default:false;index" json:"user_notification_is_read"`

	UserNotificationReadAt    *time.Time `gorm:"column:user_notification_read_at;type:timestamptz" json:"user_notification_read_at,omitempty"`
	UserNotificationCreatedAt time.Time  `gorm:"column:user_notification_created_at;type:timestamptz;autoCreateTime" json:"user_notification_created_at"`
}

func (UserNotificationModel) TableName() string {
	return "user_notifications"
}
