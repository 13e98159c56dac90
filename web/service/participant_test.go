package service

import (
	"path/filepath"
	"testing"

	"census-api/database"
	"census-api/database/model"
	"census-api/logger"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_FILE", filepath.Join(t.TempDir(), "census-test.db"))
	t.Setenv("CENSUS_LOG_FOLDER", t.TempDir())
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "P4ssword")

	logger.InitLogger(logging.DEBUG)
	require.NoError(t, database.InitDB())
	t.Cleanup(func() {
		database.CloseDB()
	})
}

func testRecords(email string) (model.Participant, model.Work, model.Home) {
	participant := model.Participant{
		Email:     email,
		FirstName: "Jo",
		LastName:  "Doe",
		Dob:       "1990-05-10",
	}
	work := model.Work{
		ParticipantEmail: email,
		CompanyName:      "Acme",
		Salary:           50000,
		Currency:         "USD",
	}
	home := model.Home{
		ParticipantEmail: email,
		Country:          "NO",
		City:             "Oslo",
	}
	return participant, work, home
}

func TestParticipantCreateAndGet(t *testing.T) {
	setup(t)
	service := ParticipantService{}

	participant, work, home := testRecords("a@b.com")
	require.NoError(t, service.Create(&participant, &work, &home))
	assert.NotZero(t, participant.Id)

	got, err := service.GetByEmail("a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "Jo", got.FirstName)
	assert.Equal(t, "1990-05-10", got.Dob)

	gotWork, err := service.GetWork("a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "Acme", gotWork.CompanyName)
	assert.Equal(t, 50000.0, gotWork.Salary)

	gotHome, err := service.GetHome("a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "Oslo", gotHome.City)

	_, err = service.GetByEmail("missing@b.com")
	assert.ErrorIs(t, err, ErrParticipantNotFound)
}

func TestParticipantCreateDuplicateEmail(t *testing.T) {
	setup(t)
	service := ParticipantService{}

	participant, work, home := testRecords("a@b.com")
	require.NoError(t, service.Create(&participant, &work, &home))

	again, work2, home2 := testRecords("a@b.com")
	err := service.Create(&again, &work2, &home2)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestParticipantListOrder(t *testing.T) {
	setup(t)
	service := ParticipantService{}

	for _, email := range []string{"first@b.com", "second@b.com", "third@b.com"} {
		participant, work, home := testRecords(email)
		require.NoError(t, service.Create(&participant, &work, &home))
	}

	participants, err := service.GetAll()
	require.NoError(t, err)
	require.Len(t, participants, 3)
	// newest first
	assert.Equal(t, "third@b.com", participants[0].Email)
	assert.Equal(t, "first@b.com", participants[2].Email)
}

func TestParticipantDeleteSoftDeletesChildren(t *testing.T) {
	setup(t)
	service := ParticipantService{}

	participant, work, home := testRecords("a@b.com")
	require.NoError(t, service.Create(&participant, &work, &home))
	require.NoError(t, service.Delete("a@b.com"))

	_, err := service.GetByEmail("a@b.com")
	assert.ErrorIs(t, err, ErrParticipantNotFound)

	// child rows survive, flagged deleted
	var storedWork model.Work
	require.NoError(t, database.GetDB().Where("participant_email = ?", "a@b.com").First(&storedWork).Error)
	assert.True(t, storedWork.IsDeleted)

	var storedHome model.Home
	require.NoError(t, database.GetDB().Where("participant_email = ?", "a@b.com").First(&storedHome).Error)
	assert.True(t, storedHome.IsDeleted)
}

func TestParticipantDeleteMissing(t *testing.T) {
	setup(t)
	service := ParticipantService{}

	err := service.Delete("missing@b.com")
	assert.ErrorIs(t, err, ErrParticipantNotFound)
}

func TestParticipantRecreateRevivesChildren(t *testing.T) {
	setup(t)
	service := ParticipantService{}

	participant, work, home := testRecords("a@b.com")
	require.NoError(t, service.Create(&participant, &work, &home))
	require.NoError(t, service.Delete("a@b.com"))

	// same email again: participant row is new, child upserts reset the flag
	recreated, work2, home2 := testRecords("a@b.com")
	work2.CompanyName = "Globex"
	require.NoError(t, service.Create(&recreated, &work2, &home2))

	gotWork, err := service.GetWork("a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "Globex", gotWork.CompanyName)
	assert.False(t, gotWork.IsDeleted)

	_, err = service.GetHome("a@b.com")
	assert.NoError(t, err)
}

func TestParticipantUpdateReplacesFields(t *testing.T) {
	setup(t)
	service := ParticipantService{}

	participant, work, home := testRecords("a@b.com")
	require.NoError(t, service.Create(&participant, &work, &home))

	updated, work2, home2 := testRecords("a@b.com")
	updated.FirstName = "Joanna"
	updated.Dob = "1991-06-11"
	work2.Salary = 60000
	home2.City = "Bergen"
	require.NoError(t, service.Update(&updated, &work2, &home2))

	got, err := service.GetByEmail("a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "Joanna", got.FirstName)
	assert.Equal(t, "1991-06-11", got.Dob)

	gotWork, err := service.GetWork("a@b.com")
	require.NoError(t, err)
	assert.Equal(t, 60000.0, gotWork.Salary)

	gotHome, err := service.GetHome("a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "Bergen", gotHome.City)

	// only one row per child table despite the repeated upserts
	var workCount int64
	require.NoError(t, database.GetDB().Model(model.Work{}).Count(&workCount).Error)
	assert.EqualValues(t, 1, workCount)
}

func TestParticipantUpdateMissing(t *testing.T) {
	setup(t)
	service := ParticipantService{}

	participant, work, home := testRecords("missing@b.com")
	err := service.Update(&participant, &work, &home)
	assert.ErrorIs(t, err, ErrParticipantNotFound)
}

func TestGetWorkDistinguishesMissingParticipant(t *testing.T) {
	setup(t)
	service := ParticipantService{}

	_, err := service.GetWork("missing@b.com")
	assert.ErrorIs(t, err, ErrParticipantNotFound)

	participant, work, home := testRecords("a@b.com")
	require.NoError(t, service.Create(&participant, &work, &home))

	// soft-delete the child directly: participant exists, record inactive
	require.NoError(t, database.GetDB().Model(model.Work{}).
		Where("participant_email = ?", "a@b.com").
		Update("is_deleted", true).Error)

	_, err = service.GetWork("a@b.com")
	assert.ErrorIs(t, err, ErrWorkNotFound)
}
