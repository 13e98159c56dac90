package service

import (
	"testing"

	"census-api/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAdmin(t *testing.T) {
	setup(t)
	service := AdminService{}

	admin, err := service.CheckAdmin("admin", "P4ssword")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, "admin", admin.Login)
	assert.NotZero(t, admin.Id)

	admin, err = service.CheckAdmin("admin", "wrong")
	require.NoError(t, err)
	assert.Nil(t, admin)

	admin, err = service.CheckAdmin("nobody", "P4ssword")
	require.NoError(t, err)
	assert.Nil(t, admin)
}

func TestAdminSeedIsIdempotent(t *testing.T) {
	setup(t)

	// a second init against the same database must not duplicate the admin
	require.NoError(t, database.CloseDB())
	require.NoError(t, database.InitDB())

	var count int64
	require.NoError(t, database.GetDB().Table("admins").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
