package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"HotelOS/entity"
)

func staffWith(perms entity.UserPermissions) *entity.UserProfile {
	return &entity.UserProfile{
		UID:         "u1",
		Role:        entity.StaffRole,
		Permissions: perms,
	}
}

func TestCanNilUserDenied(t *testing.T) {
	assert.False(t, Can(nil, CapMaintenance))
}

func TestCanUnknownCapabilityDenied(t *testing.T) {
	user := staffWith(entity.AllPermissions())
	assert.False(t, Can(user, "time-travel"))
}

func TestCheckCarriesCapabilityReason(t *testing.T) {
	user := staffWith(entity.UserPermissions{CanViewSpa: true})

	err := Check(user, CapMaintenance)
	var denied *DeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, CapMaintenance, denied.Capability)
	assert.Equal(t, "Accès Maintenance restreint.", denied.Reason)

	assert.NoError(t, Check(user, CapSpa))
}

func TestRoleGatedAreasIgnorePermissionFlags(t *testing.T) {
	staff := staffWith(entity.AllPermissions())
	assert.False(t, Can(staff, CapStatistics))
	assert.False(t, Can(staff, CapClientDatabase))

	manager := &entity.UserProfile{UID: "m1", Role: entity.ManagerRole}
	assert.True(t, Can(manager, CapStatistics))
	assert.True(t, Can(manager, CapClientDatabase))

	admin := &entity.UserProfile{UID: "a1", Role: entity.AdminRole}
	assert.True(t, Can(admin, CapStatistics))
}

func TestCheckCollection(t *testing.T) {
	user := staffWith(entity.UserPermissions{CanViewReception: true})

	assert.NoError(t, CheckCollection(user, entity.ReceptionCollection))
	// personal tasks have no capability gate
	assert.NoError(t, CheckCollection(user, entity.TasksCollection))

	err := CheckCollection(user, entity.GroupsCollection)
	var denied *DeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, "Accès restreint au CRM.", denied.Reason)

	assert.Error(t, CheckCollection(nil, entity.RoomsCollection))
}
