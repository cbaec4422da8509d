package dto

import (
	"time"

	"github.com/google/uuid"

	"yugamki_backend/internals/features/users/user/model"
)

type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Gender     *string   `json:"gender,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
	College    *string   `json:"college,omitempty"`
	Department *string   `json:"department,omitempty"`
	YugamID    string    `json:"yugam_id"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToUserResponse(m *model.UserModel) *UserResponse {
	return &UserResponse{
		ID:         m.ID,
		FullName:   m.FullName,
		Email:      m.Email,
		Role:       m.Role,
		Gender:     m.Gender,
		Phone:      m.Phone,
		College:    m.College,
		Department: m.Department,
		YugamID:    m.YugamID,
		IsActive:   m.IsActive,
		CreatedAt:  m.CreatedAt,
	}
}

func ToUserResponseList(models []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToUserResponse(&models[i]))
	}
	return out
}

// UpdateProfileRequest: pointer fields so PATCH only touches what was sent.
type UpdateProfileRequest struct {
	FullName   *string `json:"full_name" validate:"omitempty,min=3,max=100"`
	Gender     *string `json:"gender" validate:"omitempty,oneof=MALE FEMALE"`
	Phone      *string `json:"phone" validate:"omitempty,min=7,max=20"`
	College    *string `json:"college" validate:"omitempty,max=150"`
	Department *string `json:"department" validate:"omitempty,max=100"`
}
