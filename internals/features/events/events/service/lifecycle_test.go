package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yugamki_backend/internals/constants"
	"yugamki_backend/internals/features/events/events/model"
)

func TestCreatorRoles(t *testing.T) {
	assert.Equal(t, constants.AdminOnly, CreatorRoles(model.TypeCombo, false))
	assert.Equal(t, constants.AdminOnly, CreatorRoles(model.TypeCombo, true))
	assert.Equal(t, constants.WorkshopManagerRoles, CreatorRoles(model.TypePaid, true))
	assert.Equal(t, constants.EventManagerRoles, CreatorRoles(model.TypePaid, false))
	assert.Equal(t, constants.EventManagerRoles, CreatorRoles(model.TypeGeneral, false))
}

func TestStatusChangeRoles(t *testing.T) {
	// The same allow-list for every event shape, workshops included.
	assert.ElementsMatch(t, []string{constants.RoleEventsLead, constants.RoleAdmin}, StatusChangeRoles)
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(model.StatusPendingApproval, model.StatusApproved))
	assert.True(t, CanTransition(model.StatusPendingApproval, model.StatusCancelled))
	assert.True(t, CanTransition(model.StatusApproved, model.StatusPublished))
	assert.True(t, CanTransition(model.StatusApproved, model.StatusCancelled))
	assert.True(t, CanTransition(model.StatusDraft, model.StatusPendingApproval))

	// No skipping, no reviving.
	assert.False(t, CanTransition(model.StatusPendingApproval, model.StatusPublished))
	assert.False(t, CanTransition(model.StatusPublished, model.StatusApproved))
	assert.False(t, CanTransition(model.StatusCancelled, model.StatusPublished))
	assert.False(t, CanTransition(model.StatusPublished, model.StatusPublished))
	assert.False(t, CanTransition("UNKNOWN", model.StatusApproved))
}

func TestIsLocked(t *testing.T) {
	assert.True(t, IsLocked(model.StatusApproved))
	assert.True(t, IsLocked(model.StatusPublished))
	assert.False(t, IsLocked(model.StatusDraft))
	assert.False(t, IsLocked(model.StatusPendingApproval))
	assert.False(t, IsLocked(model.StatusCancelled))
}

func TestValidateSchedule(t *testing.T) {
	base := time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC)

	require.NoError(t, ValidateSchedule(base, base.Add(8*time.Hour)))
	require.NoError(t, ValidateSchedule(base, base.Add(72*time.Hour)))

	assert.ErrorIs(t, ValidateSchedule(base, base), ErrStartAfterEnd)
	assert.ErrorIs(t, ValidateSchedule(base.Add(time.Hour), base), ErrStartAfterEnd)
	assert.ErrorIs(t, ValidateSchedule(base, base.Add(73*time.Hour)), ErrDurationBounds)
}
