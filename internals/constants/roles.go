package constants

import "fmt"

// Festival roles. ADMIN is the only super-role: it passes every gate.
// No other implicit hierarchy exists (EVENTS_LEAD is not a WORKSHOPS_LEAD).
const (
	RoleParticipant         = "PARTICIPANT"
	RoleEventCoordinator    = "EVENT_COORDINATOR"
	RoleWorkshopCoordinator = "WORKSHOP_COORDINATOR"
	RoleEventsLead          = "EVENTS_LEAD"
	RoleWorkshopsLead       = "WORKSHOPS_LEAD"
	RoleSoftwareAdmin       = "SOFTWARE_ADMIN"
	RoleAdmin               = "ADMIN"
)

// ==========================
// Grouped role slices (permission matrix)
// ==========================
var (
	AllRoles = []string{
		RoleParticipant,
		RoleEventCoordinator,
		RoleWorkshopCoordinator,
		RoleEventsLead,
		RoleWorkshopsLead,
		RoleSoftwareAdmin,
		RoleAdmin,
	}

	// Event catalog management (non-workshop).
	EventManagerRoles = []string{RoleEventsLead, RoleAdmin}

	// Workshop catalog management.
	WorkshopManagerRoles = []string{RoleWorkshopsLead, RoleAdmin}

	// May view registrations / attendance for operational duty.
	CoordinatorAndAbove = []string{
		RoleEventCoordinator,
		RoleWorkshopCoordinator,
		RoleEventsLead,
		RoleWorkshopsLead,
		RoleAdmin,
	}

	// Outbound communications (email blasts, WhatsApp requests).
	CommunicationRoles = []string{RoleEventsLead, RoleWorkshopsLead, RoleAdmin}

	AdminOnly = []string{RoleAdmin}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Error message templates for role gates.
const (
	ErrOnlyAdminsCanAccess = "Only ADMIN may access %s."
	ErrOnlyLeadsCanAccess  = "Only a lead or ADMIN may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorLead(feature string) string {
	return fmt.Sprintf(ErrOnlyLeadsCanAccess, feature)
}
