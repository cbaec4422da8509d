package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	regModel "yugamki_backend/internals/features/events/registrations/model"
	userModel "yugamki_backend/internals/features/users/user/model"
)

// ResolveAudience returns the distinct user ids a notification targets.
// A role filter narrows by role; an event filter narrows to that
// event's registrants (team members included). Both filters intersect.
func ResolveAudience(db *gorm.DB, targetRole *string, eventID *uuid.UUID) ([]uuid.UUID, error) {
	q := db.Model(&userModel.UserModel{}).Where("is_active = true")
	if targetRole != nil {
		q = q.Where("role = ?", *targetRole)
	}
	if eventID != nil {
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

	var ids []uuid.UUID
	if err := q.Distinct().Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
