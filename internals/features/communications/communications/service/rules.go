package service

import (
	"yugamki_backend/internals/constants"
	"yugamki_backend/internals/features/communications/communications/model"
)

// CanTargetEvent keeps each lead on their own track: an events lead
// cannot blast a workshop's registrants and a workshops lead cannot
// blast a regular event's. ADMIN targets anything.
func CanTargetEvent(role string, eventIsWorkshop bool) bool {
	switch role {
	case constants.RoleAdmin:
		return true
	case constants.RoleEventsLead:
		return !eventIsWorkshop
	case constants.RoleWorkshopsLead:
		return eventIsWorkshop
	default:
		return false
	}
}

var waTransitions = map[string][]string{
	model.WaStatusPending:  {model.WaStatusApproved, model.WaStatusRejected},
	model.WaStatusApproved: {model.WaStatusSent},
	model.WaStatusRejected: {},
	model.WaStatusSent:     {},
}

func CanTransitionWhatsApp(from, to string) bool {
	for _, next := range waTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
