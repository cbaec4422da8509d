package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel represents the users table.
type UserModel struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FullName   string    `gorm:"size:100;not null" json:"full_name"`
	Email      string    `gorm:"size:255;unique;not null" json:"email"`
	Password   string    `gorm:"not null" json:"-"`
	Role       string    `gorm:"type:varchar(30);not null;default:'PARTICIPANT'" json:"role"`
	Gender     *string   `gorm:"type:varchar(10)" json:"gender,omitempty"` // MALE | FEMALE
	Phone      *string   `gorm:"size:20" json:"phone,omitempty"`
	College    *string   `gorm:"size:150" json:"college,omitempty"`
	Department *string   `gorm:"size:100" json:"department,omitempty"`

	// Human-readable code printed on badges and QR passes.
	YugamID string `gorm:"size:12;unique;not null" json:"yugam_id"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
