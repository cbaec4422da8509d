package model

import (
	"time"

	"github.com/google/uuid"
)

type TeamModel struct {
	TeamID       uuid.UUID `gorm:"column:team_id;type:uuid;default:gen_random_uuid();primaryKey" json:"team_id"`
	TeamName     string    `gorm:"column:team_name;type:varchar(120);not null" json:"team_name"`
	TeamLeaderID uuid.UUID `gorm:"column:team_leader_id;type:uuid;not null;index" json:"team_leader_id"`
	TeamEventID  uuid.UUID `gorm:"column:team_event_id;type:uuid;not null;index:idx_team_event_name,unique" json:"team_event_id"`

	TeamCreatedAt time.Time `gorm:"column:team_created_at;type:timestamptz;autoCreateTime" json:"team_created_at"`
	TeamUpdatedAt time.Time `gorm:"column:team_updated_at;type:timestamptz;autoUpdateTime" json:"team_updated_at"`
}

func (TeamModel) TableName() string {
	return "teams"
}

type TeamMemberModel struct {
	TeamMemberID     uuid.UUID `gorm:"column:team_member_id;type:uuid;default:gen_random_uuid();primaryKey" json:"team_member_id"`
	TeamMemberTeamID uuid.UUID `gorm:"column:team_member_team_id;type:uuid;not null;uniqueIndex:uq_team_member" json:"team_member_team_id"`
	TeamMemberUserID uuid.UUID `gorm:"column:team_member_user_id;type:uuid;not null;uniqueIndex:uq_team_member" json:"team_member_user_id"`

	TeamMemberCreatedAt time.Time `gorm:"column:team_member_created_at;type:timestamptz;autoCreateTime" json:"team_member_created_at"`
}

func (TeamMemberModel) TableName() string {
	return "team_members"
}
