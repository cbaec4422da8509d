package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"yugamki_backend/internals/constants"
	"yugamki_backend/internals/features/communications/communications/model"
)

func TestCanTargetEvent(t *testing.T) {
	// Admin reaches everything.
	assert.True(t, CanTargetEvent(constants.RoleAdmin, false))
	assert.True(t, CanTargetEvent(constants.RoleAdmin, true))

	// Leads stay on their own track.
	assert.True(t, CanTargetEvent(constants.RoleEventsLead, false))
	assert.False(t, CanTargetEvent(constants.RoleEventsLead, true))
	assert.True(t, CanTargetEvent(constants.RoleWorkshopsLead, true))
	assert.False(t, CanTargetEvent(constants.RoleWorkshopsLead, false))

	// Everyone else is out regardless of event kind.
	assert.False(t, CanTargetEvent(constants.RoleParticipant, false))
	assert.False(t, CanTargetEvent(constants.RoleEventCoordinator, true))
	assert.False(t, CanTargetEvent(constants.RoleSoftwareAdmin, false))
}

func TestCanTransitionWhatsApp(t *testing.T) {
	assert.True(t, CanTransitionWhatsApp(model.WaStatusPending, model.WaStatusApproved))
	assert.True(t, CanTransitionWhatsApp(model.WaStatusPending, model.WaStatusRejected))
	assert.True(t, CanTransitionWhatsApp(model.WaStatusApproved, model.WaStatusSent))

	assert.False(t, CanTransitionWhatsApp(model.WaStatusPending, model.WaStatusSent))
	assert.False(t, CanTransitionWhatsApp(model.WaStatusRejected, model.WaStatusApproved))
	assert.False(t, CanTransitionWhatsApp(model.WaStatusSent, model.WaStatusApproved))
	assert.False(t, CanTransitionWhatsApp(model.WaStatusApproved, model.WaStatusRejected))
}
