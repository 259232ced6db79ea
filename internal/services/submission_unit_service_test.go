package services

import (
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/localnerve/ectd-registry/internal/database"
	"github.com/localnerve/ectd-registry/internal/metrics"
	"github.com/localnerve/ectd-registry/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

func createTestUnit(t *testing.T, db *gorm.DB, appID uint64, effectiveDate string) *models.SubmissionUnit {
	t.Helper()
	su, err := CreateSubmissionUnit(db, SubmissionUnitInput{
		AppID:         appID,
		EffectiveDate: mustDate(t, effectiveDate),
		SuType:        "original",
		SuUnitType:    "initial",
	})
	require.NoError(t, err)
	return su
}

func TestCreateSubmissionUnitSequence(t *testing.T) {
	db := database.NewTestDB(t)
	app := createTestApplication(t, db, "NDA-1")
	before := counterValue(t, metrics.SubmissionUnitsCreatedTotal)

	for want := uint(1); want <= 3; want++ {
		su := createTestUnit(t, db, app.AppID, "2024-01-01")
		assert.Equal(t, want, su.SequenceNum)
		assert.Equal(t, app.AppID, su.AppID)
		assert.Equal(t, models.StatusDraft, su.Status)
		assert.Zero(t, su.CouVersion)
		assert.JSONEq(t, "[]", string(su.CouData.JSON))
	}

	assert.Equal(t, before+3, counterValue(t, metrics.SubmissionUnitsCreatedTotal))
}

func TestCreateSubmissionUnitSequencePerApplication(t *testing.T) {
	db := database.NewTestDB(t)
	first := createTestApplication(t, db, "NDA-1")
	second := createTestApplication(t, db, "NDA-2")

	createTestUnit(t, db, first.AppID, "2024-01-01")
	createTestUnit(t, db, first.AppID, "2024-01-02")
	other := createTestUnit(t, db, second.AppID, "2024-01-03")
	third := createTestUnit(t, db, first.AppID, "2024-01-04")

	assert.Equal(t, uint(1), other.SequenceNum)
	assert.Equal(t, uint(3), third.SequenceNum)
}

func TestCreateSubmissionUnitSequenceNotReused(t *testing.T) {
	db := database.NewTestDB(t)
	app := createTestApplication(t, db, "NDA-1")

	createTestUnit(t, db, app.AppID, "2024-01-01")
	last := createTestUnit(t, db, app.AppID, "2024-01-02")
	require.NoError(t, DeleteSubmissionUnit(db, last.SuID))

	next := createTestUnit(t, db, app.AppID, "2024-01-03")
	assert.Equal(t, uint(3), next.SequenceNum)
}

func TestCreateSubmissionUnitSequenceReconcilesCounter(t *testing.T) {
	db := database.NewTestDB(t)
	app := createTestApplication(t, db, "NDA-1")
	createTestUnit(t, db, app.AppID, "2024-01-01")

	// a row written without going through the counter
	require.NoError(t, db.Exec(
		"INSERT INTO submission_units (app_id, sequence_num, effective_date, su_type, su_unit_type, cou_data, cou_version, status) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		app.AppID, 7, "2024-01-02", "original", "initial", "[]", 0, "DRAFT",
	).Error)

	next := createTestUnit(t, db, app.AppID, "2024-01-03")
	assert.Equal(t, uint(8), next.SequenceNum)
}

func TestCreateSubmissionUnitConcurrent(t *testing.T) {
	db := database.NewTestDB(t)
	app := createTestApplication(t, db, "NDA-1")

	const workers = 10
	var wg sync.WaitGroup
	sequences := make(chan uint, workers)
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			su, err := CreateSubmissionUnit(db, SubmissionUnitInput{
				AppID:         app.AppID,
				EffectiveDate: models.NewDate(now()),
				SuType:        "original",
				SuUnitType:    "initial",
			})
			if err != nil {
				errs <- err
				return
			}
			sequences <- su.SequenceNum
		}()
	}
	wg.Wait()
	close(sequences)
	close(errs)

	for err := range errs {
		t.Errorf("concurrent create failed: %v", err)
	}

	var got []int
	for seq := range sequences {
		got = append(got, int(seq))
	}
	sort.Ints(got)
	want := make([]int, workers)
	for i := range want {
		want[i] = i + 1
	}
	assert.Equal(t, want, got)
}

func TestCreateSubmissionUnitMissingApplication(t *testing.T) {
	db := database.NewTestDB(t)

	_, err := CreateSubmissionUnit(db, SubmissionUnitInput{
		AppID:         42,
		EffectiveDate: mustDate(t, "2024-01-01"),
		SuType:        "original",
		SuUnitType:    "initial",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.True(t, errors.Is(err, ErrNotFound))

	units, err := ListSubmissionUnits(db)
	require.NoError(t, err)
	assert.Empty(t, units)
}

func TestCreateSubmissionUnitValidation(t *testing.T) {
	db := database.NewTestDB(t)
	app := createTestApplication(t, db, "NDA-1")
	valid := SubmissionUnitInput{
		AppID:         app.AppID,
		EffectiveDate: mustDate(t, "2024-01-01"),
		SuType:        "original",
		SuUnitType:    "initial",
	}

	tests := []struct {
		name   string
		modify func(in *SubmissionUnitInput)
	}{
		{"missing app id", func(in *SubmissionUnitInput) { in.AppID = 0 }},
		{"missing su type", func(in *SubmissionUnitInput) { in.SuType = " " }},
		{"missing unit type", func(in *SubmissionUnitInput) { in.SuUnitType = "" }},
		{"missing effective date", func(in *SubmissionUnitInput) { in.EffectiveDate = models.Date{} }},
		{"invalid couData", func(in *SubmissionUnitInput) { in.CouData = []byte("[{") }},
		{"couData not an array", func(in *SubmissionUnitInput) { in.CouData = []byte(`{"operation":"add"}`) }},
		{"couData missing document", func(in *SubmissionUnitInput) { in.CouData = []byte(`[{"operation":"add"}]`) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.modify(&in)
			_, err := CreateSubmissionUnit(db, in)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}

	units, err := ListSubmissionUnits(db)
	require.NoError(t, err)
	assert.Empty(t, units)
}

func TestCreateSubmissionUnitWithCouData(t *testing.T) {
	db := database.NewTestDB(t)
	app := createTestApplication(t, db, "NDA-1")

	su, err := CreateSubmissionUnit(db, SubmissionUnitInput{
		AppID:         app.AppID,
		EffectiveDate: mustDate(t, "2024-03-15"),
		SuType:        "original",
		SuUnitType:    "initial",
		CouData:       []byte(`[{"couId":"COU_1","operation":"delete","targetNodeId":"8154"}]`),
	})
	require.NoError(t, err)

	ops, err := CouLog(su)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, "COU_1", ops[0].CouID)
	assert.Equal(t, models.OperationDelete, ops[0].Operation)
	assert.Equal(t, uint64(8154), ops[0].TargetNodeID.Uint64())
	assert.Equal(t, "2024-03-15", su.EffectiveDate.String())
}

func TestGetSubmissionUnit(t *testing.T) {
	db := database.NewTestDB(t)
	app := createTestApplication(t, db, "NDA-1")
	created := createTestUnit(t, db, app.AppID, "2024-01-01")

	su, err := GetSubmissionUnitByID(db, created.SuID)
	require.NoError(t, err)
	assert.Equal(t, created.SequenceNum, su.SequenceNum)
	assert.Equal(t, "2024-01-01", su.EffectiveDate.String())

	su, err = GetSubmissionUnitByAppAndSequence(db, app.AppID, 1)
	require.NoError(t, err)
	assert.Equal(t, created.SuID, su.SuID)

	_, err = GetSubmissionUnitByAppAndSequence(db, app.AppID, 2)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = GetSubmissionUnitByID(db, created.SuID+100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListSubmissionUnitsByApp(t *testing.T) {
	db := database.NewTestDB(t)
	app := createTestApplication(t, db, "NDA-1")
	empty := createTestApplication(t, db, "NDA-2")
	createTestUnit(t, db, app.AppID, "2024-01-01")
	createTestUnit(t, db, app.AppID, "2024-01-02")

	units, err := ListSubmissionUnitsByApp(db, app.AppID)
	require.NoError(t, err)
	require.Len(t, units, 2)
	assert.Equal(t, uint(1), units[0].SequenceNum)
	assert.Equal(t, uint(2), units[1].SequenceNum)

	units, err = ListSubmissionUnitsByApp(db, empty.AppID)
	require.NoError(t, err)
	assert.NotNil(t, units)
	assert.Empty(t, units)

	_, err = ListSubmissionUnitsByApp(db, empty.AppID+100)
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := ListSubmissionUnits(db)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateSubmissionUnit(t *testing.T) {
	db := database.NewTestDB(t)
	app := createTestApplication(t, db, "NDA-1")
	created := createTestUnit(t, db, app.AppID, "2024-01-01")

	effective := mustDate(t, "2024-06-30")
	updated, err := UpdateSubmissionUnit(db, created.SuID, SubmissionUnitPatch{
		EffectiveDate: &effective,
		SuType:        strPtr("supplement"),
		Status:        strPtr("SUBMITTED"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-06-30", updated.EffectiveDate.String())
	assert.Equal(t, "supplement", updated.SuType)
	assert.Equal(t, "initial", updated.SuUnitType)
	assert.Equal(t, models.StatusSubmitted, updated.Status)
	assert.Equal(t, created.SequenceNum, updated.SequenceNum)
	assert.Zero(t, updated.CouVersion)

	updated, err = UpdateSubmissionUnit(db, created.SuID, SubmissionUnitPatch{
		CouData: strPtr(`[{"cou_id":"COU_A","operation":"delete"}]`),
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), updated.CouVersion)
	ops, err := CouLog(updated)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, "COU_A", ops[0].CouID)
}

func TestSubmissionUnitCouDataIDs(t *testing.T) {
	db := database.NewTestDB(t)
	app := createTestApplication(t, db, "NDA-1")

	su, err := CreateSubmissionUnit(db, SubmissionUnitInput{
		AppID:         app.AppID,
		EffectiveDate: mustDate(t, "2024-03-15"),
		SuType:        "original",
		SuUnitType:    "initial",
		CouData:       []byte(`[{"operation":"delete","target_node_id":8154}]`),
	})
	require.NoError(t, err)
	ops, err := CouLog(su)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.NotEmpty(t, ops[0].CouID)

	_, err = CreateSubmissionUnit(db, SubmissionUnitInput{
		AppID:         app.AppID,
		EffectiveDate: mustDate(t, "2024-03-16"),
		SuType:        "original",
		SuUnitType:    "initial",
		CouData:       []byte(`[{"cou_id":"COU_1","operation":"delete"},{"cou_id":"COU_1","operation":"delete"}]`),
	})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	_, err = UpdateSubmissionUnit(db, su.SuID, SubmissionUnitPatch{
		CouData: strPtr(`[{"cou_id":"COU_A","operation":"delete"},{"cou_id":"COU_A","operation":"delete"}]`),
	})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	updated, err := UpdateSubmissionUnit(db, su.SuID, SubmissionUnitPatch{
		CouData: strPtr(`[{"operation":"delete"}]`),
	})
	require.NoError(t, err)
	ops, err = CouLog(updated)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.NotEmpty(t, ops[0].CouID)
}

func TestUpdateSubmissionUnitRejects(t *testing.T) {
	db := database.NewTestDB(t)
	app := createTestApplication(t, db, "NDA-1")
	created := createTestUnit(t, db, app.AppID, "2024-01-01")

	_, err := UpdateSubmissionUnit(db, created.SuID, SubmissionUnitPatch{CouData: strPtr("not json")})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = UpdateSubmissionUnit(db, created.SuID, SubmissionUnitPatch{SuUnitType: strPtr("")})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = UpdateSubmissionUnit(db, created.SuID, SubmissionUnitPatch{Status: strPtr("APPROVED")})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = UpdateSubmissionUnit(db, created.SuID+100, SubmissionUnitPatch{SuType: strPtr("x")})
	assert.ErrorIs(t, err, ErrNotFound)

	stored, err := GetSubmissionUnitByID(db, created.SuID)
	require.NoError(t, err)
	assert.Equal(t, "original", stored.SuType)
	assert.Zero(t, stored.CouVersion)
}

func TestDeleteSubmissionUnit(t *testing.T) {
	db := database.NewTestDB(t)
	app := createTestApplication(t, db, "NDA-1")
	su := createTestUnit(t, db, app.AppID, "2024-01-01")

	require.NoError(t, DeleteSubmissionUnit(db, su.SuID))
	_, err := GetSubmissionUnitByID(db, su.SuID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, DeleteSubmissionUnit(db, su.SuID), ErrNotFound)
}
