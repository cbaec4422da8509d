package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"yugamki_backend/internals/features/communications/communications/dto"
	"yugamki_backend/internals/features/communications/communications/model"
	"yugamki_backend/internals/features/communications/communications/service"
	eventModel "yugamki_backend/internals/features/events/events/model"
	helper "yugamki_backend/internals/helpers"
)

type WhatsAppController struct {
	DB *gorm.DB
}

func NewWhatsAppController(db *gorm.DB) *WhatsAppController {
	return &WhatsAppController{DB: db}
}

// POST /api/a/communications/whatsapp
//
// Leads queue a message; nothing goes out until an admin approves and
// dispatches it.
func (ctrl *WhatsAppController) CreateRequest(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role, err := helper.GetUserRole(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.WhatsAppCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	if req.EventID != nil {
		var event eventModel.EventModel
		if err := ctrl.DB.First(&event, "event_id = ?", *req.EventID).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		if !service.CanTargetEvent(role, event.EventIsWorkshop) {
			return helper.JsonError(c, fiber.StatusForbidden, "You cannot message this event's registrants")
		}
	}

	row := model.WhatsAppRequestModel{
		WaRequestMessage:     req.Message,
		WaRequestEventID:     req.EventID,
		WaRequestStatus:      model.WaStatusPending,
		WaRequestRequestedBy: userID,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		log.Printf("[ERROR] create whatsapp request: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to queue message")
	}
	return helper.JsonCreated(c, "Message queued for approval", dto.ToWhatsAppResponse(&row))
}

// GET /api/a/communications/whatsapp?status=
func (ctrl *WhatsAppController) ListRequests(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.WhatsAppRequestModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("wa_request_status = ?", status)
	}
	if !helper.IsAdmin(c) {
		userID, err := helper.GetUserID(c)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		q = q.Where("wa_request_requested_by = ?", userID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count requests")
	}
	var rows []model.WhatsAppRequestModel
	if err := q.Order("wa_request_created_at DESC").Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch requests")
	}
	return helper.JsonList(c, "ok", dto.ToWhatsAppResponseList(rows), helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// PATCH /api/a/communications/whatsapp/:id/status  (ADMIN only, enforced by route)
//
// PENDING moves to APPROVED or REJECTED; APPROVED moves to SENT when
// the admin dispatches it from the operator device.
func (ctrl *WhatsAppController) Transition(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request id")
	}
	adminID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.WhatsAppTransitionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var row model.WhatsAppRequestModel
	if err := ctrl.DB.First(&row, "wa_request_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Request not found")
	}
	if !service.CanTransitionWhatsApp(row.WaRequestStatus, req.Status) {
		return helper.JsonError(c, fiber.StatusConflict,
			"Cannot move request from "+row.WaRequestStatus+" to "+req.Status)
	}

	now := time.Now()
	updates := map[string]interface{}{"wa_request_status": req.Status}
	switch req.Status {
	case model.WaStatusApproved, model.WaStatusRejected:
		updates["wa_request_reviewed_by"] = adminID
		updates["wa_request_reviewed_at"] = now
	case model.WaStatusSent:
		updates["wa_request_sent_at"] = now
	}

	if err := ctrl.DB.Model(&row).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] transition whatsapp request %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update request")
	}
	if err := ctrl.DB.First(&row, "wa_request_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload request")
	}
	return helper.JsonUpdated(c, "Request updated", dto.ToWhatsAppResponse(&row))
}
