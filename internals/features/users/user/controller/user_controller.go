package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"yugamki_backend/internals/constants"
	"yugamki_backend/internals/features/users/user/dto"
	"yugamki_backend/internals/features/users/user/model"
	helper "yugamki_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// PATCH /api/u/profile
func (ctrl *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Gender != nil {
		updates["gender"] = *req.Gender
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.College != nil {
		updates["college"] = *req.College
	}
	if req.Department != nil {
		updates["department"] = *req.Department
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(&model.UserModel{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] update profile: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload profile")
	}
	return helper.JsonUpdated(c, "Profile updated", dto.ToUserResponse(&user))
}

// GET /api/a/users?role=&q=&page=&per_page=
func (ctrl *UserController) ListUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.UserModel{})
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q = q.Where("role = ?", role)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(full_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(yugam_id) LIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	var users []model.UserModel
	if err := q.Order("created_at DESC").Limit(paging.Limit).Offset(paging.Offset).Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}

	return helper.JsonList(c, "ok", dto.ToUserResponseList(users), helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/a/users/:id
func (ctrl *UserController) GetUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}
	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return helper.JsonOK(c, "ok", dto.ToUserResponse(&user))
}

// PATCH /api/a/users/:id/role  (ADMIN only, enforced by route)
func (ctrl *UserController) ChangeRole(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	callerID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if callerID == id {
		return helper.JsonError(c, fiber.StatusConflict, "You cannot change your own role")
	}

	var body struct {
		Role string `json:"role" validate:"required"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if !constants.IsValidRole(body.Role) {
		return helper.JsonValidationError(c, map[string][]string{"role": {"must be a known role"}})
	}

	res := ctrl.DB.Model(&model.UserModel{}).Where("id = ?", id).Update("role", body.Role)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update role")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return helper.JsonUpdated(c, "Role updated", fiber.Map{"id": id, "role": body.Role})
}

// PATCH /api/a/users/:id/deactivate  (ADMIN only)
func (ctrl *UserController) Deactivate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}
	res := ctrl.DB.Model(&model.UserModel{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to deactivate user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return helper.JsonUpdated(c, "User deactivated", fiber.Map{"id": id})
}
