package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"yugamki_backend/internals/constants"
)

func TestRoleAllowed(t *testing.T) {
	// ADMIN passes every gate, even an empty one.
	assert.True(t, RoleAllowed(constants.RoleAdmin, nil))
	assert.True(t, RoleAllowed(constants.RoleAdmin, []string{constants.RoleParticipant}))

	assert.True(t, RoleAllowed(constants.RoleEventsLead, constants.EventManagerRoles))
	assert.True(t, RoleAllowed(constants.RoleWorkshopsLead, constants.WorkshopManagerRoles))

	// No cross-track grants between the two leads.
	assert.False(t, RoleAllowed(constants.RoleEventsLead, constants.WorkshopManagerRoles))
	assert.False(t, RoleAllowed(constants.RoleWorkshopsLead, constants.EventManagerRoles))

	assert.False(t, RoleAllowed(constants.RoleParticipant, constants.CoordinatorAndAbove))
	assert.False(t, RoleAllowed(constants.RoleSoftwareAdmin, constants.AdminOnly))
	assert.False(t, RoleAllowed("", constants.AllRoles))
}

func TestGenerateYugamID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		id := GenerateYugamID()
		assert.Len(t, id, 12)
		assert.True(t, strings.HasPrefix(id, "YGM26-"))
		for _, r := range id[6:] {
			assert.Contains(t, yugamIDAlphabet, string(r))
		}
		seen[id] = true
	}
	// 200 draws from a 31^6 space should not all collide.
	assert.Greater(t, len(seen), 190)
}

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(95, 2, 20)
	assert.Equal(t, int64(95), p.Total)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, 5, p.TotalPages)

	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = BuildPagination(0, 1, 20)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)

	p = BuildPagination(20, 1, 20)
	assert.Equal(t, 1, p.TotalPages)
}
