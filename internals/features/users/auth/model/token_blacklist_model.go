package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenBlacklistModel holds access tokens revoked by logout, checked by the
// auth middleware on every request.
type TokenBlacklistModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Token     string    `gorm:"type:text;not null;index" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (TokenBlacklistModel) TableName() string {
	return "token_blacklist"
}
