package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	eventModel "yugamki_backend/internals/features/events/events/model"
	"yugamki_backend/internals/features/events/registrations/dto"
	"yugamki_backend/internals/features/events/registrations/model"
	"yugamki_backend/internals/features/events/registrations/service"
	paymentModel "yugamki_backend/internals/features/finance/payments/model"
	helper "yugamki_backend/internals/helpers"
)

type RegistrationController struct {
	DB *gorm.DB
}

func NewRegistrationController(db *gorm.DB) *RegistrationController {
	return &RegistrationController{DB: db}
}

// POST /api/u/registrations
//
// Checks run in a fixed order inside one transaction: event exists,
// event is open, not already registered, capacity reserved, then the
// team ownership checks for TEAM mode.
func (ctrl *RegistrationController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var created model.RegistrationModel

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var event eventModel.EventModel
		if err := tx.First(&event, "event_id = ?", req.EventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Event not found")
			}
			return err
		}
		if event.EventStatus != eventModel.StatusPublished {
			return fiber.NewError(fiber.StatusConflict, "Event is not open for registration")
		}

		if event.EventMode == eventModel.ModeTeam {
			if req.TeamID == nil {
				return fiber.NewError(fiber.StatusBadRequest, "This event requires a team registration")
			}
			var team model.TeamModel
			if err := tx.First(&team, "team_id = ?", *req.TeamID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(fiber.StatusNotFound, "Team not found")
				}
				return err
			}
			if team.TeamEventID != event.EventID {
				return fiber.NewError(fiber.StatusConflict, "Team belongs to a different event")
			}
			if team.TeamLeaderID != userID {
				var membership int64
				if err := tx.Model(&model.TeamMemberModel{}).
					Where("team_member_team_id = ? AND team_member_user_id = ?", team.TeamID, userID).
					Count(&membership).Error; err != nil {
					return err
				}
				if membership == 0 {
					return fiber.NewError(fiber.StatusForbidden, "Only a team member may register the team")
				}
			}

			var dup int64
			if err := tx.Model(&model.RegistrationModel{}).
				Where("registration_event_id = ? AND registration_team_id = ?", event.EventID, team.TeamID).
				Count(&dup).Error; err != nil {
				return err
			}
			if dup > 0 {
				return fiber.NewError(fiber.StatusConflict, "Team is already registered for this event")
			}
			created.RegistrationTeamID = &team.TeamID
		} else {
			if req.TeamID != nil {
				return fiber.NewError(fiber.StatusBadRequest, "This event takes individual registrations only")
			}
			var dup int64
			if err := tx.Model(&model.RegistrationModel{}).
				Where("registration_event_id = ? AND registration_user_id = ?", event.EventID, userID).
				Count(&dup).Error; err != nil {
				return err
			}
			if dup > 0 {
				return fiber.NewError(fiber.StatusConflict, "Already registered for this event")
			}
			uid := userID
			created.RegistrationUserID = &uid
		}

		ok, err := service.TryReserveSlot(tx, event.EventID)
		if err != nil {
			return err
		}
		if !ok {
			return fiber.NewError(fiber.StatusConflict, "Event has reached its registration limit")
		}

		// Every registration waits on its payment flow, pass-covered
		// general events included.
		created.RegistrationEventID = event.EventID
		created.RegistrationStatus = model.RegStatusPending
		if err := tx.Create(&created).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fiber.NewError(fiber.StatusConflict, "Already registered for this event")
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
		log.Printf("[ERROR] create registration: %v", txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register")
	}

	return helper.JsonCreated(c, "Registered", dto.ToRegistrationResponse(&created))
}

// DELETE /api/u/registrations/:id
func (ctrl *RegistrationController) Cancel(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid registration id")
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var reg model.RegistrationModel
		if err := tx.First(&reg, "registration_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Registration not found")
			}
			return err
		}

		allowed := helper.IsAdmin(c)
		if !allowed && reg.RegistrationUserID != nil && *reg.RegistrationUserID == userID {
			allowed = true
		}
		if !allowed && reg.RegistrationTeamID != nil {
			var team model.TeamModel
			if err := tx.First(&team, "team_id = ?", *reg.RegistrationTeamID).Error; err == nil &&
				team.TeamLeaderID == userID {
				allowed = true
			}
		}
		if !allowed {
			return fiber.NewError(fiber.StatusForbidden, "Not your registration")
		}

		var paid int64
		if err := tx.Model(&paymentModel.PaymentModel{}).
			Where("payment_registration_id = ? AND payment_status = ?", reg.RegistrationID, paymentModel.PaymentStatusCompleted).
			Count(&paid).Error; err != nil {
			return err
		}
		if paid > 0 {
			return fiber.NewError(fiber.StatusConflict, "Registration has a completed payment, request a refund instead")
		}

		if err := tx.Delete(&reg).Error; err != nil {
			return err
		}
		return service.ReleaseSlot(tx, reg.RegistrationEventID)
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.FromFiberError(c, fe)
		}
		log.Printf("[ERROR] cancel registration %s: %v", id, txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to cancel registration")
	}

	return helper.JsonDeleted(c, "Registration cancelled", fiber.Map{"registration_id": id})
}

// GET /api/u/registrations
func (ctrl *RegistrationController) MyRegistrations(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	paging := helper.ResolvePaging(c, 20, 100)

	base := ctrl.DB.Model(&model.RegistrationModel{}).
		Where("registration_user_id = ? OR registration_team_id IN (?)",
			userID,
			ctrl.DB.Model(&model.TeamMemberModel{}).Select("team_member_team_id").Where("team_member_user_id = ?", userID),
		)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count registrations")
	}

	type row struct {
		model.RegistrationModel
		EventTitle string `gorm:"column:event_title"`
		TeamName   string `gorm:"column:team_name"`
	}
	var rows []row
	if err := base.
		Select("registrations.*, events.event_title, teams.team_name").
		Joins("JOIN events ON events.event_id = registrations.registration_event_id").
		Joins("LEFT JOIN teams ON teams.team_id = registrations.registration_team_id").
		Order("registration_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Scan(&rows).Error; err != nil {
		log.Printf("[ERROR] list my registrations: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch registrations")
	}

	out := make([]dto.RegistrationResponse, 0, len(rows))
	for i := range rows {
		r := dto.ToRegistrationResponse(&rows[i].RegistrationModel)
		r.EventTitle = rows[i].EventTitle
		r.TeamName = rows[i].TeamName
		out = append(out, *r)
	}
	return helper.JsonList(c, "ok", out, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/a/events/:id/registrations
func (ctrl *RegistrationController) ListEventRegistrations(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}
	paging := helper.ResolvePaging(c, 50, 200)

	q := ctrl.DB.Model(&model.RegistrationModel{}).Where("registration_event_id = ?", eventID)
	if status := c.Query("status"); status != "" {
		q = q.Where("registration_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count registrations")
	}

	var regs []model.RegistrationModel
	if err := q.Order("registration_created_at ASC").Limit(paging.Limit).Offset(paging.Offset).Find(&regs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch registrations")
	}

	out := make([]dto.RegistrationResponse, 0, len(regs))
	for i := range regs {
		out = append(out, *dto.ToRegistrationResponse(&regs[i]))
	}
	return helper.JsonList(c, "ok", out, helper.BuildPagination(total, paging.Page, paging.PerPage))
}
