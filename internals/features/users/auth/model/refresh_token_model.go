package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshTokenModel stores the SHA-256 hash of an issued refresh token.
// Raw refresh tokens never touch the database.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Token     string    `gorm:"size:64;not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	UserAgent *string   `gorm:"size:255" json:"user_agent,omitempty"`
	IP        *string   `gorm:"size:45" json:"ip,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
