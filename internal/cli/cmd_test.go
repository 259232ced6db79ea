package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/localnerve/ectd-registry/internal/database"
	"github.com/localnerve/ectd-registry/internal/models"
	"github.com/localnerve/ectd-registry/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// testApp wires an App backed by an in-memory DB.
func testApp(t *testing.T) (*App, *gorm.DB) {
	t.Helper()
	db := database.NewTestDB(t)
	return &App{OpenDB: func() (*gorm.DB, error) { return db, nil }}, db
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestAppDB_OpensOnce(t *testing.T) {
	db := database.NewTestDB(t)
	calls := 0
	app := &App{OpenDB: func() (*gorm.DB, error) {
		calls++
		return db, nil
	}}

	for i := 0; i < 3; i++ {
		got, err := app.DB()
		require.NoError(t, err)
		assert.Same(t, db, got)
	}
	assert.Equal(t, 1, calls)
}

func TestAppDB_Errors(t *testing.T) {
	_, err := (&App{}).DB()
	assert.Error(t, err)

	failing := &App{OpenDB: func() (*gorm.DB, error) { return nil, errors.New("refused") }}
	_, err = failing.DB()
	assert.EqualError(t, err, "refused")
}

func TestMigrateCmd(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "Schema is up to date")
}

func TestSeedCmd(t *testing.T) {
	app, db := testApp(t)

	out, err := executeCmd(t, app, "seed", "--app-number", "NDA-7", "--units", "3", "--start-date", "2024-01-31")
	require.NoError(t, err)
	assert.Contains(t, out, "Application NDA-7")
	assert.Contains(t, out, "sequence 0001")
	assert.Contains(t, out, "sequence 0003")

	application, err := services.GetApplicationByNumber(db, "NDA-7")
	require.NoError(t, err)
	units, err := services.ListSubmissionUnitsByApp(db, application.AppID)
	require.NoError(t, err)
	require.Len(t, units, 3)
	assert.Equal(t, "2024-01-31", units[0].EffectiveDate.String())
	assert.Equal(t, "2024-03-02", units[1].EffectiveDate.String())

	for _, su := range units {
		ops, err := services.CouLog(&su)
		require.NoError(t, err)
		require.Len(t, ops, 1)
		assert.Equal(t, models.OperationAdd, ops[0].Operation)
		assert.Equal(t, uint64(models.ModuleOneNodeID), ops[0].TargetNodeID.Uint64())
	}

	// Seeding again reuses the application and continues the sequence
	out, err = executeCmd(t, app, "seed", "--app-number", "NDA-7", "--units", "1")
	require.NoError(t, err)
	assert.Contains(t, out, fmt.Sprintf("(id %d)", application.AppID))
	assert.Contains(t, out, "sequence 0004")
}

func TestSeedCmd_InvalidFlags(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "seed", "--units", "-1")
	assert.Error(t, err)

	_, err = executeCmd(t, app, "seed", "--start-date", "01/01/2024")
	assert.Error(t, err)
}

func TestSampleCouCmd(t *testing.T) {
	out, err := executeCmd(t, &App{}, "sample-cou", "--operation", "replace", "--node-id", "8156", "--path", "m3/spec.pdf")
	require.NoError(t, err)

	var ops []models.CoUOperation
	require.NoError(t, json.Unmarshal([]byte(out), &ops))
	require.Len(t, ops, 1)
	assert.Equal(t, models.OperationReplace, ops[0].Operation)
	assert.Equal(t, uint64(8156), ops[0].TargetNodeID.Uint64())
	assert.Equal(t, "m3/spec.pdf", ops[0].Document.Path)

	_, err = executeCmd(t, &App{}, "sample-cou", "--operation", "move")
	assert.ErrorIs(t, err, services.ErrInvalidArgument)
}

func TestCouListCmd(t *testing.T) {
	app, db := testApp(t)
	_, err := executeCmd(t, app, "seed", "--units", "1")
	require.NoError(t, err)

	units, err := services.ListSubmissionUnits(db)
	require.NoError(t, err)
	require.Len(t, units, 1)

	out, err := executeCmd(t, app, "cou", "list", fmt.Sprint(units[0].SuID))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "["))
	assert.Contains(t, out, `"cou_id": "COU_`)

	_, err = executeCmd(t, app, "cou", "list", "abc")
	assert.Error(t, err)

	_, err = executeCmd(t, app, "cou", "list", "999")
	assert.ErrorIs(t, err, services.ErrNotFound)
}
