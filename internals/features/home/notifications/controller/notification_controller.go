package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"yugamki_backend/internals/features/home/notifications/dto"
	"yugamki_backend/internals/features/home/notifications/model"
	"yugamki_backend/internals/features/home/notifications/service"
	helper "yugamki_backend/internals/helpers"
)

const fanOutBatchSize = 1000

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// POST /api/a/notifications
//
// Creates the notification and fans it out to every resolved recipient
// in one transaction.
func (ctrl *NotificationController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.NotificationCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	audience, err := service.ResolveAudience(ctrl.DB, req.TargetRole, req.EventID)
	if err != nil {
		log.Printf("[ERROR] resolve notification audience: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve audience")
	}
	if len(audience) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Notification would reach no one")
	}

	notif := model.NotificationModel{
		NotificationTitle:       req.Title,
		NotificationBody:        req.Body,
		NotificationEventID:     req.EventID,
		NotificationTargetRole:  req.TargetRole,
		NotificationCreatedBy:   userID,
		NotificationAudienceLen: len(audience),
	}

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&notif).Error; err != nil {
			return err
		}
		rows := make([]model.UserNotificationModel, 0, len(audience))
		for _, uid := range audience {
			rows = append(rows, model.UserNotificationModel{
				UserNotificationUserID:         uid,
				UserNotificationNotificationID: notif.NotificationID,
			})
		}
		return tx.CreateInBatches(&rows, fanOutBatchSize).Error
	})
	if txErr != nil {
		log.Printf("[ERROR] fan out notification: %v", txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create notification")
	}

	return helper.JsonCreated(c, "Notification sent", fiber.Map{
		"notification_id": notif.NotificationID,
		"recipients":      len(audience),
	})
}

// GET /api/u/notifications
func (ctrl *NotificationController) MyNotifications(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	paging := helper.ResolvePaging(c, 20, 100)

	base := ctrl.DB.Model(&model.UserNotificationModel{}).
		Where("user_notification_user_id = ?", userID)
	if c.Query("unread") == "true" {
		base = base.Where("user_notification_is_read = false")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count notifications")
	}

	var items []dto.InboxItemResponse
	if err := base.
		Select(`user_notifications.user_notification_id,
			notifications.notification_id,
			notifications.notification_title AS title,
			notifications.notification_body AS body,
			user_notifications.user_notification_is_read AS is_read,
			notifications.notification_created_at AS created_at`).
		Joins("JOIN notifications ON notifications.notification_id = user_notifications.user_notification_notification_id").
		Order("notifications.notification_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Scan(&items).Error; err != nil {
		log.Printf("[ERROR] list notifications: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notifications")
	}
	return helper.JsonList(c, "ok", items, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/u/notifications/unread-count
func (ctrl *NotificationController) UnreadCount(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var count int64
	if err := ctrl.DB.Model(&model.UserNotificationModel{}).
		Where("user_notification_user_id = ? AND user_notification_is_read = false", userID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count notifications")
	}
	return helper.JsonOK(c, "ok", fiber.Map{"unread": count})
}

// PATCH /api/u/notifications/:id/read
func (ctrl *NotificationController) MarkRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification id")
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := ctrl.DB.Model(&model.UserNotificationModel{}).
		Where("user_notification_id = ? AND user_notification_user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"user_notification_is_read": true,
			"user_notification_read_at": time.Now(),
		})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark as read")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
	}
	return helper.JsonUpdated(c, "Marked as read", fiber.Map{"user_notification_id": id})
}

// PATCH /api/u/notifications/read-all
//
// Idempotent; already-read rows are untouched.
func (ctrl *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	res := ctrl.DB.Model(&model.UserNotificationModel{}).
		Where("user_notification_user_id = ? AND user_notification_is_read = false", userID).
		Updates(map[string]interface{}{
			"user_notification_is_read": true,
			"user_notification_read_at": time.Now(),
		})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark all as read")
	}
	return helper.JsonUpdated(c, "All notifications marked as read", fiber.Map{"updated": res.RowsAffected})
}
