package controller

import (
	"errors"
	"log"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"yugamki_backend/internals/features/accommodations/accommodations/dto"
	"yugamki_backend/internals/features/accommodations/accommodations/model"
	"yugamki_backend/internals/features/accommodations/accommodations/service"
	userModel "yugamki_backend/internals/features/users/user/model"
	helper "yugamki_backend/internals/helpers"
)

type AccommodationController struct {
	DB *gorm.DB
}

func NewAccommodationController(db *gorm.DB) *AccommodationController {
	return &AccommodationController{DB: db}
}

// POST /api/u/accommodations
//
// The room type must match the participant's profile gender and still
// have rooms. The inventory decrement is a conditional UPDATE so two
// requests cannot take the last room.
func (ctrl *AccommodationController) Request(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.AccommodationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var booking model.AccommodationModel

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var user userModel.UserModel
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			return err
		}
		if user.Gender == nil {
			return fiber.NewError(fiber.StatusConflict, "Set the gender on your profile before requesting accommodation")
		}

		var roomType model.RoomTypeModel
		if err := tx.First(&roomType, "room_type_id = ?", req.RoomTypeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Room type not found")
			}
			return err
		}
		if !roomType.RoomTypeIsActive {
			return fiber.NewError(fiber.StatusConflict, "Room type is not available")
		}
		if roomType.RoomTypeGender != *user.Gender {
			return fiber.NewError(fiber.StatusConflict, "Room type is not available for your gender")
		}

		cost, err := service.TotalCost(roomType.RoomTypePricePerNight, req.CheckIn, req.CheckOut)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		res := tx.Model(&model.RoomTypeModel{}).
			Where("room_type_id = ? AND room_type_available_rooms > 0", roomType.RoomTypeID).
			UpdateColumn("room_type_available_rooms", gorm.Expr("room_type_available_rooms - 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusConflict, "No rooms left for this room type")
		}

		booking = model.AccommodationModel{
			AccommodationUserID:     userID,
			AccommodationRoomTypeID: roomType.RoomTypeID,
			AccommodationCheckIn:    req.CheckIn,
			AccommodationCheckOut:   req.CheckOut,
			AccommodationStatus:     model.AccStatusRequested,
			AccommodationTotalCost:  cost,
		}
		if err := tx.Create(&booking).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fiber.NewError(fiber.StatusConflict, "You already have an accommodation request")
			}
			return err
		}
		return nil
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.FromFiberError(c, fe)
		}
		log.Printf("[ERROR] request accommodation: %v", txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to request accommodation")
	}

	return helper.JsonCreated(c, "Accommodation requested", dto.ToAccommodationResponse(&booking))
}

// PATCH /api/u/accommodations
//
// Dates may change while the request is unconfirmed; the cost is
// recomputed from the room type's current rate.
func (ctrl *AccommodationController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.AccommodationUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.CheckIn == nil && req.CheckOut == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	var booking model.AccommodationModel
	if err := ctrl.DB.First(&booking, "accommodation_user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "No accommodation request found")
	}
	if booking.AccommodationStatus == model.AccStatusConfirmed {
		return helper.JsonError(c, fiber.StatusConflict, "Confirmed bookings can no longer be changed")
	}

	checkIn, checkOut := booking.AccommodationCheckIn, booking.AccommodationCheckOut
	if req.CheckIn != nil {
		checkIn = *req.CheckIn
	}
	if req.CheckOut != nil {
		checkOut = *req.CheckOut
	}

	var roomType model.RoomTypeModel
	if err := ctrl.DB.First(&roomType, "room_type_id = ?", booking.AccommodationRoomTypeID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load room type")
	}
	cost, err := service.TotalCost(roomType.RoomTypePricePerNight, checkIn, checkOut)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	updates := map[string]interface{}{
		"accommodation_check_in":   checkIn,
		"accommodation_check_out":  checkOut,
		"accommodation_total_cost": cost,
	}
	if err := ctrl.DB.Model(&booking).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] update accommodation: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update accommodation")
	}
	if err := ctrl.DB.First(&booking, "accommodation_id = ?", booking.AccommodationID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload booking")
	}
	return helper.JsonUpdated(c, "Accommodation updated", dto.ToAccommodationResponse(&booking))
}

// GET /api/u/accommodations
func (ctrl *AccommodationController) My(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var booking model.AccommodationModel
	if err := ctrl.DB.First(&booking, "accommodation_user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "No accommodation request found")
	}
	return helper.JsonOK(c, "ok", dto.ToAccommodationResponse(&booking))
}

// DELETE /api/u/accommodations/:id
//
// Owners may cancel while unconfirmed; confirmed bookings need an
// admin. Either way the room goes back into inventory.
func (ctrl *AccommodationController) Cancel(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid accommodation id")
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var booking model.AccommodationModel
		if err := tx.First(&booking, "accommodation_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Accommodation not found")
			}
			return err
		}

		isOwner := booking.AccommodationUserID == userID
		if !isOwner && !helper.IsAdmin(c) {
			return fiber.NewError(fiber.StatusForbidden, "Not your accommodation")
		}
		if booking.AccommodationStatus == model.AccStatusConfirmed && !helper.IsAdmin(c) {
			return fiber.NewError(fiber.StatusConflict, "Confirmed bookings can only be cancelled by an admin")
		}
		if booking.AccommodationStatus == model.AccStatusCancelled {
			return fiber.NewError(fiber.StatusConflict, "Booking is already cancelled")
		}

		if err := tx.Model(&booking).Update("accommodation_status", model.AccStatusCancelled).Error; err != nil {
			return err
		}
		return tx.Model(&model.RoomTypeModel{}).
			Where("room_type_id = ? AND room_type_available_rooms < room_type_total_rooms", booking.AccommodationRoomTypeID).
			UpdateColumn("room_type_available_rooms", gorm.Expr("room_type_available_rooms + 1")).Error
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.FromFiberError(c, fe)
		}
		log.Printf("[ERROR] cancel accommodation %s: %v", id, txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to cancel accommodation")
	}
	return helper.JsonDeleted(c, "Accommodation cancelled", fiber.Map{"accommodation_id": id})
}

// PATCH /api/a/accommodations/:id/confirm  (ADMIN only, enforced by route)
func (ctrl *AccommodationController) Confirm(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid accommodation id")
	}

	var req dto.AccommodationConfirmRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var booking model.AccommodationModel
	if err := ctrl.DB.First(&booking, "accommodation_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Accommodation not found")
	}
	if booking.AccommodationStatus != model.AccStatusRequested {
		return helper.JsonError(c, fiber.StatusConflict, "Only requested bookings can be confirmed")
	}

	roommates, err := sonic.Marshal(req.Roommates)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid roommates list")
	}

	updates := map[string]interface{}{
		"accommodation_status":      model.AccStatusConfirmed,
		"accommodation_room_number": req.RoomNumber,
		"accommodation_roommates":   roommates,
	}
	if err := ctrl.DB.Model(&booking).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] confirm accommodation %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to confirm accommodation")
	}
	if err := ctrl.DB.First(&booking, "accommodation_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload booking")
	}
	return helper.JsonUpdated(c, "Accommodation confirmed", dto.ToAccommodationResponse(&booking))
}

// GET /api/a/accommodations
func (ctrl *AccommodationController) ListAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	q := ctrl.DB.Model(&model.AccommodationModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("accommodation_status = ?", status)
	}
	if roomType := c.Query("room_type_id"); roomType != "" {
		q = q.Where("accommodation_room_type_id = ?", roomType)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count accommodations")
	}
	var bookings []model.AccommodationModel
	if err := q.Order("accommodation_created_at DESC").Limit(paging.Limit).Offset(paging.Offset).Find(&bookings).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch accommodations")
	}
	return helper.JsonList(c, "ok", dto.ToAccommodationResponseList(bookings), helper.BuildPagination(total, paging.Page, paging.PerPage))
}
