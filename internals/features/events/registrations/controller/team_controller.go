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
	userModel "yugamki_backend/internals/features/users/user/model"
	helper "yugamki_backend/internals/helpers"
)

type TeamController struct {
	DB *gorm.DB
}

func NewTeamController(db *gorm.DB) *TeamController {
	return &TeamController{DB: db}
}

// POST /api/u/teams
//
// The creator becomes leader and the first member.
func (ctrl *TeamController) CreateTeam(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.TeamCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var team model.TeamModel

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var event eventModel.EventModel
		if err := tx.First(&event, "event_id = ?", req.EventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Event not found")
			}
			return err
		}
		if event.EventMode != eventModel.ModeTeam {
			return fiber.NewError(fiber.StatusConflict, "Event does not take team registrations")
		}

		team = model.TeamModel{
			TeamName:     req.TeamName,
			TeamLeaderID: userID,
			TeamEventID:  event.EventID,
		}
		if err := tx.Create(&team).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fiber.NewError(fiber.StatusConflict, "A team with that name already exists for this event")
			}
			return err
		}
		return tx.Create(&model.TeamMemberModel{
			TeamMemberTeamID: team.TeamID,
			TeamMemberUserID: userID,
		}).Error
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.FromFiberError(c, fe)
		}
		log.Printf("[ERROR] create team: %v", txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create team")
	}

	return helper.JsonCreated(c, "Team created", dto.ToTeamResponse(&team))
}

// POST /api/u/teams/:id/members
//
// Leader adds members by user id or by Yugam ID.
func (ctrl *TeamController) AddMember(c *fiber.Ctx) error {
	teamID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid team id")
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.TeamAddMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.UserID == nil && req.YugamID == nil {
		return helper.JsonValidationError(c, map[string][]string{"user_id": {"user_id or yugam_id is required"}})
	}

	var team model.TeamModel
	if err := ctrl.DB.First(&team, "team_id = ?", teamID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Team not found")
	}
	if team.TeamLeaderID != userID && !helper.IsAdmin(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the team leader may add members")
	}

	var member userModel.UserModel
	q := ctrl.DB.Model(&userModel.UserModel{})
	if req.UserID != nil {
		q = q.Where("id = ?", *req.UserID)
	} else {
		q = q.Where("yugam_id = ?", *req.YugamID)
	}
	if err := q.First(&member).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	row := model.TeamMemberModel{
		TeamMemberTeamID: team.TeamID,
		TeamMemberUserID: member.ID,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "User is already in the team")
		}
		log.Printf("[ERROR] add team member: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to add member")
	}
	return helper.JsonCreated(c, "Member added", fiber.Map{
		"team_id": team.TeamID,
		"user_id": member.ID,
	})
}

// DELETE /api/u/teams/:id/members/:userId
func (ctrl *TeamController) RemoveMember(c *fiber.Ctx) error {
	teamID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid team id")
	}
	memberID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var team model.TeamModel
	if err := ctrl.DB.First(&team, "team_id = ?", teamID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Team not found")
	}
	if team.TeamLeaderID != userID && !helper.IsAdmin(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the team leader may remove members")
	}
	if memberID == team.TeamLeaderID {
		return helper.JsonError(c, fiber.StatusConflict, "The leader cannot be removed from the team")
	}

	res := ctrl.DB.Where("team_member_team_id = ? AND team_member_user_id = ?", teamID, memberID).
		Delete(&model.TeamMemberModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to remove member")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User is not in the team")
	}
	return helper.JsonDeleted(c, "Member removed", fiber.Map{"team_id": teamID, "user_id": memberID})
}

// GET /api/u/teams/:id
func (ctrl *TeamController) GetTeam(c *fiber.Ctx) error {
	teamID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid team id")
	}

	var team model.TeamModel
	if err := ctrl.DB.First(&team, "team_id = ?", teamID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Team not found")
	}

	resp := dto.ToTeamResponse(&team)
	var members []dto.TeamMemberResponse
	if err := ctrl.DB.Model(&model.TeamMemberModel{}).
		Select("users.id AS user_id, users.full_name, users.yugam_id").
		Joins("JOIN users ON users.id = team_members.team_member_user_id").
		Where("team_member_team_id = ?", teamID).
		Scan(&members).Error; err != nil {
		log.Printf("[ERROR] list team members: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch team members")
	}
	resp.Members = members
	return helper.JsonOK(c, "ok", resp)
}
