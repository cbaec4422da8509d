package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"yugamki_backend/internals/constants"
	authService "yugamki_backend/internals/features/users/auth/service"
	userModel "yugamki_backend/internals/features/users/user/model"
	helper "yugamki_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type RegisterRequest struct {
	FullName   string  `json:"full_name" validate:"required,min=3,max=100"`
	Email      string  `json:"email" validate:"required,email"`
	Password   string  `json:"password" validate:"required,min=8"`
	Gender     *string `json:"gender" validate:"omitempty,oneof=MALE FEMALE"`
	Phone      *string `json:"phone" validate:"omitempty,min=7,max=20"`
	College    *string `json:"college" validate:"omitempty,max=150"`
	Department *string `json:"department" validate:"omitempty,max=100"`
}

// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	yugamID, err := helper.EnsureUniqueYugamID(ctrl.DB)
	if err != nil {
		log.Printf("[ERROR] yugam id allocation: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to allocate participant id")
	}

	user := userModel.UserModel{
		FullName:   req.FullName,
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Password:   string(hashed),
		Role:       constants.RoleParticipant,
		Gender:     req.Gender,
		Phone:      req.Phone,
		College:    req.College,
		Department: req.Department,
		YugamID:    yugamID,
		IsActive:   true,
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Email is already registered")
		}
		log.Printf("[ERROR] create user: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create account")
	}

	return helper.JsonCreated(c, "Account created", fiber.Map{
		"id":       user.ID,
		"email":    user.Email,
		"yugam_id": user.YugamID,
		"role":     user.Role,
	})
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var user userModel.UserModel
	if err := ctrl.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	now := time.Now().UTC()
	access, err := authService.IssueAccessToken(&user, now)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}
	refresh, err := authService.IssueRefreshToken(user.ID, now)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue refresh token")
	}
	if err := authService.StoreRefreshToken(ctrl.DB, user.ID, refresh, c.Get("User-Agent"), c.IP(), now); err != nil {
		log.Printf("[ERROR] store refresh token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to persist session")
	}

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"access_token":  access,
		"refresh_token": refresh,
		"user": fiber.Map{
			"id":       user.ID,
			"email":    user.Email,
			"role":     user.Role,
			"yugam_id": user.YugamID,
		},
	})
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// POST /api/auth/refresh-token
func (ctrl *AuthController) RefreshToken(c *fiber.Ctx) error {
	var req RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(req.RefreshToken) == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing refresh token")
	}

	userID, err := authService.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}

	// Rotation: the presented token must exist exactly once and is consumed.
	found, err := authService.RotateRefreshToken(ctrl.DB, req.RefreshToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to rotate token")
	}
	if !found {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token is not recognized")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	now := time.Now().UTC()
	access, err := authService.IssueAccessToken(&user, now)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}
	refresh, err := authService.IssueRefreshToken(user.ID, now)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue refresh token")
	}
	if err := authService.StoreRefreshToken(ctrl.DB, user.ID, refresh, c.Get("User-Agent"), c.IP(), now); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to persist session")
	}

	return helper.JsonOK(c, "Token refreshed", fiber.Map{
		"access_token":  access,
		"refresh_token": refresh,
	})
}

// POST /api/u/auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing bearer token")
	}
	if err := authService.BlacklistAccessToken(ctrl.DB, strings.TrimSpace(parts[1]), time.Now().UTC()); err != nil {
		log.Printf("[ERROR] blacklist token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to revoke token")
	}
	return helper.JsonOK(c, "Logged out", nil)
}

// GET /api/u/auth/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return helper.JsonOK(c, "ok", user)
}

// POST /api/u/auth/change-password
func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	var input struct {
		CurrentPassword string `json:"current_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required,min=8"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&input); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.CurrentPassword)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Current password incorrect")
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash new password")
	}
	if err := ctrl.DB.Model(&user).Update("password", string(newHash)).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}
	return helper.JsonUpdated(c, "Password changed successfully", nil)
}
