package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"yugamki_backend/internals/features/accommodations/accommodations/dto"
	"yugamki_backend/internals/features/accommodations/accommodations/model"
	helper "yugamki_backend/internals/helpers"
)

type RoomTypeController struct {
	DB *gorm.DB
}

func NewRoomTypeController(db *gorm.DB) *RoomTypeController {
	return &RoomTypeController{DB: db}
}

// POST /api/a/room-types  (ADMIN only, enforced by route)
func (ctrl *RoomTypeController) Create(c *fiber.Ctx) error {
	var req dto.RoomTypeCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	roomType := model.RoomTypeModel{
		RoomTypeName:           req.RoomTypeName,
		RoomTypeDescription:    req.RoomTypeDescription,
		RoomTypeGender:         req.RoomTypeGender,
		RoomTypeCapacity:       req.RoomTypeCapacity,
		RoomTypePricePerNight:  req.RoomTypePricePerNight,
		RoomTypeTotalRooms:     req.RoomTypeTotalRooms,
		RoomTypeAvailableRooms: req.RoomTypeTotalRooms,
		RoomTypeIsActive:       true,
	}
	if err := ctrl.DB.Create(&roomType).Error; err != nil {
		log.Printf("[ERROR] create room type: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create room type")
	}
	return helper.JsonCreated(c, "Room type created", dto.ToRoomTypeResponse(&roomType))
}

// PATCH /api/a/room-types/:id
func (ctrl *RoomTypeController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid room type id")
	}

	var req dto.RoomTypeUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	updates := map[string]interface{}{}
	if req.RoomTypeName != nil {
		updates["room_type_name"] = *req.RoomTypeName
	}
	if req.RoomTypeDescription != nil {
		updates["room_type_description"] = *req.RoomTypeDescription
	}
	if req.RoomTypePricePerNight != nil {
		updates["room_type_price_per_night"] = *req.RoomTypePricePerNight
	}
	if req.RoomTypeIsActive != nil {
		updates["room_type_is_active"] = *req.RoomTypeIsActive
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	res := ctrl.DB.Model(&model.RoomTypeModel{}).Where("room_type_id = ?", id).Updates(updates)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update room type")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Room type not found")
	}

	var roomType model.RoomTypeModel
	if err := ctrl.DB.First(&roomType, "room_type_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload room type")
	}
	return helper.JsonUpdated(c, "Room type updated", dto.ToRoomTypeResponse(&roomType))
}

// GET /api/u/room-types
//
// Participants only see active types for their own gender once the
// profile carries one; without a profile gender the full active list
// is returned so they can complete the profile first.
func (ctrl *RoomTypeController) ListActive(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.RoomTypeModel{}).Where("room_type_is_active = true")
	if gender := c.Query("gender"); gender == model.GenderMale || gender == model.GenderFemale {
		q = q.Where("room_type_gender = ?", gender)
	}

	var types []model.RoomTypeModel
	if err := q.Order("room_type_name ASC").Find(&types).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch room types")
	}
	return helper.JsonOK(c, "ok", dto.ToRoomTypeResponseList(types))
}

// GET /api/a/room-types
func (ctrl *RoomTypeController) ListAll(c *fiber.Ctx) error {
	var types []model.RoomTypeModel
	if err := ctrl.DB.Order("room_type_name ASC").Find(&types).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch room types")
	}
	return helper.JsonOK(c, "ok", dto.ToRoomTypeResponseList(types))
}
