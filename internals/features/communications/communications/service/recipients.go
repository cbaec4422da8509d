package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"yugamki_backend/internals/constants"
	regModel "yugamki_backend/internals/features/events/registrations/model"
	userModel "yugamki_backend/internals/features/users/user/model"
)

// ResolveRecipients collects the distinct email addresses for a blast.
// With an event it is that event's registrants plus team members; with
// none it is every active participant.
func ResolveRecipients(db *gorm.DB, eventID *uuid.UUID) ([]string, error) {
	q := db.Model(&userModel.UserModel{}).Where("is_active = true")
	if eventID == nil {
		q = q.Where("role = ?", constants.RoleParticipant)
	} else {
		direct := db.Model(&regModel.RegistrationModel{}).
			Select("registration_user_id").
			Where("registration_event_id = ? AND registration_user_id IS NOT NULL", *eventID)
		viaTeam := db.Model(&regModel.TeamMemberModel{}).
			Select("team_member_user_id").
			Where("team_member_team_id IN (?)",
				db.Model(&regModel.RegistrationModel{}).
					Select("registration_team_id").
					Where("registration_event_id = ? AND registration_team_id IS NOT NULL", *eventID))
		q = q.Where("id IN (?) OR id IN (?)", direct, viaTeam)
	}

	var emails []string
	if err := q.Distinct().Pluck("email", &emails).Error; err != nil {
		return nil, err
	}
	return emails, nil
}
