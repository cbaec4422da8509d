package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	accModel "yugamki_backend/internals/features/accommodations/accommodations/model"
	eventModel "yugamki_backend/internals/features/events/events/model"
	regModel "yugamki_backend/internals/features/events/registrations/model"
	paymentModel "yugamki_backend/internals/features/finance/payments/model"
	userModel "yugamki_backend/internals/features/users/user/model"
	helper "yugamki_backend/internals/helpers"
)

type StatsController struct {
	DB *gorm.DB
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{DB: db}
}

type bucket struct {
	Key   string `gorm:"column:key"`
	Count int64  `gorm:"column:count"`
}

func toMap(buckets []bucket) map[string]int64 {
	out := make(map[string]int64, len(buckets))
	for _, b := range buckets {
		out[b.Key] = b.Count
	}
	return out
}

// GET /api/a/stats/dashboard  (ADMIN only, enforced by route)
func (ctrl *StatsController) Dashboard(c *fiber.Ctx) error {
	var usersByRole []bucket
	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Select("role AS key, COUNT(*) AS count").
		Group("role").Scan(&usersByRole).Error; err != nil {
		log.Printf("[ERROR] stats users: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute statistics")
	}

	var eventsByStatus []bucket
	if err := ctrl.DB.Model(&eventModel.EventModel{}).
		Select("event_status AS key, COUNT(*) AS count").
		Group("event_status").Scan(&eventsByStatus).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute statistics")
	}

	var regsByStatus []bucket
	if err := ctrl.DB.Model(&regModel.RegistrationModel{}).
		Select("registration_status AS key, COUNT(*) AS count").
		Group("registration_status").Scan(&regsByStatus).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute statistics")
	}

	var revenue struct {
		Collected int64 `gorm:"column:collected"`
		Refunded  int64 `gorm:"column:refunded"`
	}
	if err := ctrl.DB.Model(&paymentModel.PaymentModel{}).
		Select("COALESCE(SUM(payment_amount) FILTER (WHERE payment_status IN ('COMPLETED','PARTIAL_REFUND','REFUNDED')), 0) AS collected, COALESCE(SUM(payment_refund_amount), 0) AS refunded").
		Scan(&revenue).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute statistics")
	}

	var occupancy struct {
		TotalRooms     int64 `gorm:"column:total_rooms"`
		AvailableRooms int64 `gorm:"column:available_rooms"`
	}
	if err := ctrl.DB.Model(&accModel.RoomTypeModel{}).
		Select("COALESCE(SUM(room_type_total_rooms), 0) AS total_rooms, COALESCE(SUM(room_type_available_rooms), 0) AS available_rooms").
		Where("room_type_is_active = true").
		Scan(&occupancy).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute statistics")
	}

	var passCount int64
	if err := ctrl.DB.Model(&paymentModel.GeneralEventPassModel{}).
		Where("pass_active = true").Count(&passCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute statistics")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"users_by_role":           toMap(usersByRole),
		"events_by_status":        toMap(eventsByStatus),
		"registrations_by_status": toMap(regsByStatus),
		"revenue": fiber.Map{
			"collected": revenue.Collected,
			"refunded":  revenue.Refunded,
		},
		"accommodation": fiber.Map{
			"total_rooms":     occupancy.TotalRooms,
			"available_rooms": occupancy.AvailableRooms,
			"occupied_rooms":  occupancy.TotalRooms - occupancy.AvailableRooms,
		},
		"active_passes": passCount,
	})
}
