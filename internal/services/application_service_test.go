package services

import (
	"encoding/json"
	"testing"

	"github.com/localnerve/ectd-registry/internal/database"
	"github.com/localnerve/ectd-registry/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestApplication(t *testing.T, db *gorm.DB, appNumber string) *models.Application {
	t.Helper()
	app, err := CreateApplication(db, appNumber, "NDA")
	require.NoError(t, err)
	return app
}

func strPtr(s string) *string {
	return &s
}

func TestCreateApplication(t *testing.T) {
	db := database.NewTestDB(t)

	app, err := CreateApplication(db, " NDA-1 ", "NDA")
	require.NoError(t, err)

	assert.NotZero(t, app.AppID)
	assert.Equal(t, "NDA-1", app.AppNumber)
	assert.Equal(t, models.StatusDraft, app.Status)

	var root models.SectionNode
	require.NoError(t, json.Unmarshal(app.RootSection.JSON, &root))
	assert.Equal(t, models.RootSectionNodeID, root.ID)
	assert.Equal(t, "application", root.NodeType)
	assert.Equal(t, "NDA-1", root.Name)
	require.Len(t, root.Children, 5)
	for i, module := range root.Children {
		assert.Equal(t, int64(8154+i), module.ID)
		assert.Equal(t, "module", module.NodeType)
	}

	stored, err := GetApplicationByID(db, app.AppID)
	require.NoError(t, err)
	assert.JSONEq(t, string(app.RootSection.JSON), string(stored.RootSection.JSON))
}

func TestCreateApplicationDuplicateNumber(t *testing.T) {
	db := database.NewTestDB(t)
	createTestApplication(t, db, "NDA-1")

	_, err := CreateApplication(db, "NDA-1", "BLA")
	assert.ErrorIs(t, err, ErrDuplicateKey)

	apps, err := ListApplications(db)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "NDA", apps[0].AppType)
}

func TestCreateApplicationRequiresFields(t *testing.T) {
	db := database.NewTestDB(t)

	_, err := CreateApplication(db, "", "NDA")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = CreateApplication(db, "NDA-1", "  ")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestGetApplication(t *testing.T) {
	db := database.NewTestDB(t)
	app := createTestApplication(t, db, "NDA-1")

	byNumber, err := GetApplicationByNumber(db, "NDA-1")
	require.NoError(t, err)
	assert.Equal(t, app.AppID, byNumber.AppID)

	_, err = GetApplicationByID(db, app.AppID+100)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = GetApplicationByNumber(db, "NDA-2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListApplicationsOrdered(t *testing.T) {
	db := database.NewTestDB(t)

	apps, err := ListApplications(db)
	require.NoError(t, err)
	assert.Empty(t, apps)

	first := createTestApplication(t, db, "NDA-2")
	second := createTestApplication(t, db, "NDA-1")

	apps, err = ListApplications(db)
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, first.AppID, apps[0].AppID)
	assert.Equal(t, second.AppID, apps[1].AppID)
}

func TestUpdateApplicationPartial(t *testing.T) {
	db := database.NewTestDB(t)
	app := createTestApplication(t, db, "NDA-1")

	updated, err := UpdateApplication(db, app.AppID, ApplicationPatch{AppType: strPtr("BLA")})
	require.NoError(t, err)
	assert.Equal(t, "BLA", updated.AppType)
	assert.Equal(t, "NDA-1", updated.AppNumber)
	assert.Equal(t, models.StatusDraft, updated.Status)
	assert.JSONEq(t, string(app.RootSection.JSON), string(updated.RootSection.JSON))

	updated, err = UpdateApplication(db, app.AppID, ApplicationPatch{
		AppNumber:   strPtr("NDA-1A"),
		Status:      strPtr("submitted"),
		RootSection: strPtr(`{"id":1,"children":[]}`),
	})
	require.NoError(t, err)
	assert.Equal(t, "NDA-1A", updated.AppNumber)
	assert.Equal(t, models.StatusSubmitted, updated.Status)
	assert.JSONEq(t, `{"id":1,"children":[]}`, string(updated.RootSection.JSON))

	unchanged, err := UpdateApplication(db, app.AppID, ApplicationPatch{})
	require.NoError(t, err)
	assert.Equal(t, "NDA-1A", unchanged.AppNumber)
}

func TestUpdateApplicationRejects(t *testing.T) {
	db := database.NewTestDB(t)
	app := createTestApplication(t, db, "NDA-1")
	createTestApplication(t, db, "NDA-2")

	_, err := UpdateApplication(db, app.AppID, ApplicationPatch{AppNumber: strPtr("NDA-2")})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	_, err = UpdateApplication(db, app.AppID, ApplicationPatch{AppNumber: strPtr("")})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = UpdateApplication(db, app.AppID, ApplicationPatch{Status: strPtr("ARCHIVED")})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = UpdateApplication(db, app.AppID, ApplicationPatch{Status: strPtr("APPROVED")})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = UpdateApplication(db, app.AppID, ApplicationPatch{RootSection: strPtr("{broken")})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = UpdateApplication(db, app.AppID+100, ApplicationPatch{AppType: strPtr("BLA")})
	assert.ErrorIs(t, err, ErrNotFound)

	stored, err := GetApplicationByID(db, app.AppID)
	require.NoError(t, err)
	assert.Equal(t, "NDA-1", stored.AppNumber)
	assert.Equal(t, models.StatusDraft, stored.Status)
	assert.JSONEq(t, string(app.RootSection.JSON), string(stored.RootSection.JSON))
}

func TestApplicationStatusLifecycle(t *testing.T) {
	db := database.NewTestDB(t)
	app := createTestApplication(t, db, "NDA-1")

	for _, step := range []string{"SUBMITTED", "REJECTED", "DRAFT", "SUBMITTED", "APPROVED"} {
		updated, err := UpdateApplication(db, app.AppID, ApplicationPatch{Status: strPtr(step)})
		require.NoError(t, err, step)
		assert.Equal(t, models.Status(step), updated.Status)
	}

	_, err := UpdateApplication(db, app.AppID, ApplicationPatch{Status: strPtr("DRAFT")})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestUpdateRootSection(t *testing.T) {
	db := database.NewTestDB(t)
	app := createTestApplication(t, db, "NDA-1")

	_, err := UpdateRootSection(db, app.AppID, `{"id": 9999990, "children": [`)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	stored, err := GetApplicationByID(db, app.AppID)
	require.NoError(t, err)
	assert.JSONEq(t, string(app.RootSection.JSON), string(stored.RootSection.JSON))

	_, err = UpdateRootSection(db, app.AppID+100, `{}`)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = UpdateRootSection(db, app.AppID, "  ")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	updated, err := UpdateRootSection(db, app.AppID, `{"id": 1, "name": "custom"}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": 1, "name": "custom"}`, string(updated.RootSection.JSON))
}

func TestDeleteApplication(t *testing.T) {
	db := database.NewTestDB(t)
	app := createTestApplication(t, db, "NDA-1")
	empty := createTestApplication(t, db, "NDA-2")
	createTestUnit(t, db, app.AppID, "2024-01-01")
	createTestUnit(t, db, app.AppID, "2024-02-01")

	_, err := DeleteApplication(db, app.AppID, false)
	assert.ErrorIs(t, err, ErrConflict)
	_, err = GetApplicationByID(db, app.AppID)
	require.NoError(t, err)

	deleted, err := DeleteApplication(db, app.AppID, true)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	_, err = GetApplicationByID(db, app.AppID)
	assert.ErrorIs(t, err, ErrNotFound)
	units, err := ListSubmissionUnits(db)
	require.NoError(t, err)
	assert.Empty(t, units)

	deleted, err = DeleteApplication(db, empty.AppID, false)
	require.NoError(t, err)
	assert.Zero(t, deleted)

	_, err = DeleteApplication(db, empty.AppID, false)
	assert.ErrorIs(t, err, ErrNotFound)
}
