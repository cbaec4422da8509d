package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yugamki_backend/internals/features/communications/communications/dto"
	"yugamki_backend/internals/features/communications/communications/model"
	"yugamki_backend/internals/features/communications/communications/service"
	eventModel "yugamki_backend/internals/features/events/events/model"
	helper "yugamki_backend/internals/helpers"
)

type EmailController struct {
	DB     *gorm.DB
	Mailer service.Mailer
}

func NewEmailController(db *gorm.DB) *EmailController {
	return &EmailController{DB: db, Mailer: service.DefaultMailer()}
}

// POST /api/a/communications/email
//
// Dispatches first, logs after; a failed dispatch leaves no log row.
func (ctrl *EmailController) SendEmail(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role, err := helper.GetUserRole(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.SendEmailRequest
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

	recipients, err := service.ResolveRecipients(ctrl.DB, req.EventID)
	if err != nil {
		log.Printf("[ERROR] resolve email recipients: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve recipients")
	}
	if len(recipients) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Blast would reach no one")
	}

	if err := ctrl.Mailer.SendBulk(req.Subject, req.Body, recipients); err != nil {
		log.Printf("[ERROR] email dispatch: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Email provider rejected the blast")
	}

	record := model.EmailCommunicationModel{
		EmailSubject:        req.Subject,
		EmailBody:           req.Body,
		EmailEventID:        req.EventID,
		EmailRecipientCount: len(recipients),
		EmailSentBy:         userID,
	}
	if err := ctrl.DB.Create(&record).Error; err != nil {
		log.Printf("[ERROR] log email blast: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Blast sent but logging failed")
	}

	return helper.JsonCreated(c, "Email blast sent", fiber.Map{
		"email_id":   record.EmailID,
		"recipients": len(recipients),
	})
}

// GET /api/a/communications/email
func (ctrl *EmailController) ListEmails(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.EmailCommunicationModel{})
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count email logs")
	}
	var logs []model.EmailCommunicationModel
	if err := q.Order("email_created_at DESC").Limit(paging.Limit).Offset(paging.Offset).Find(&logs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch email logs")
	}
	return helper.JsonList(c, "ok", logs, helper.BuildPagination(total, paging.Page, paging.PerPage))
}
