// Lifecycle rules for the event catalog. Kept free of Fiber/GORM so the
// controllers stay thin and the rules stay testable.
package service

import (
	"errors"
	"math"
	"time"

	"yugamki_backend/internals/constants"
	"yugamki_backend/internals/features/events/events/model"
)

// CreatorRoles returns the allow-list for creating an event of the given
// shape. COMBO bundles cross categories, so only ADMIN may create them.
func CreatorRoles(eventType string, isWorkshop bool) []string {
	if eventType == model.TypeCombo {
		return constants.AdminOnly
	}
	if isWorkshop {
		return constants.WorkshopManagerRoles
	}
	return constants.EventManagerRoles
}

// StatusChangeRoles gates lifecycle transitions. Unlike creation the
// allow-list does not vary with the event shape.
var StatusChangeRoles = constants.EventManagerRoles

var transitions = map[string][]string{
	model.StatusDraft:           {model.StatusPendingApproval},
	model.StatusPendingApproval: {model.StatusApproved, model.StatusCancelled},
	model.StatusApproved:        {model.StatusPublished, model.StatusCancelled},
	model.StatusPublished:       {},
	model.StatusCancelled:       {},
}

func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsLocked reports whether content edits are frozen for the status.
func IsLocked(status string) bool {
	return status == model.StatusApproved || status == model.StatusPublished
}

func IsValidType(t string) bool {
	return t == model.TypeGeneral || t == model.TypePaid || t == model.TypeCombo
}

func IsValidMode(m string) bool {
	return m == model.ModeIndividual || m == model.ModeTeam
}

var (
	ErrStartAfterEnd  = errors.New("start date must precede end date")
	ErrDurationBounds = errors.New("event duration must be between 1 and 3 days")
)

// ValidateSchedule enforces start < end and a duration of 1-3 days.
func ValidateSchedule(start, end time.Time) error {
	if !start.Before(end) {
		return ErrStartAfterEnd
	}
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		days = 1
	}
	if days > 3 {
		return ErrDurationBounds
	}
	return nil
}
