package services

import (
	"sort"
	"sync"
	"testing"

	"github.com/localnerve/ectd-registry/internal/database"
	"github.com/localnerve/ectd-registry/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const parallelCallers = 20

func TestCreateSubmissionUnitParallelConnections(t *testing.T) {
	db := database.NewFileTestDB(t, 8)
	app := createTestApplication(t, db, "NDA-1")
	setRetryLimits(t, RetryLimits{Cou: 5, Sequence: 10})
	effective := mustDate(t, "2024-01-01")

	var wg sync.WaitGroup
	var mu sync.Mutex
	var sequences []int
	start := make(chan struct{})

	for i := 0; i < parallelCallers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			su, err := CreateSubmissionUnit(db, SubmissionUnitInput{
				AppID:         app.AppID,
				EffectiveDate: effective,
				SuType:        "original",
				SuUnitType:    "initial",
			})
			if err != nil {
				t.Errorf("create failed: %v", err)
				return
			}
			mu.Lock()
			sequences = append(sequences, int(su.SequenceNum))
			mu.Unlock()
		}()
	}
	close(start)
	wg.Wait()

	require.Len(t, sequences, parallelCallers)
	sort.Ints(sequences)
	for i, seq := range sequences {
		assert.Equal(t, i+1, seq)
	}
}

func TestAddCouOperationParallelConnections(t *testing.T) {
	db := database.NewFileTestDB(t, 8)
	app := createTestApplication(t, db, "NDA-1")
	su := createTestUnit(t, db, app.AppID, "2024-01-01")
	setRetryLimits(t, RetryLimits{Cou: 200, Sequence: 3})

	var wg sync.WaitGroup
	start := make(chan struct{})

	for i := 0; i < parallelCallers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if _, err := AddCouOperation(db, su.SuID, models.CoUOperation{Operation: models.OperationDelete}); err != nil {
				t.Errorf("add failed: %v", err)
			}
		}()
	}
	close(start)
	wg.Wait()

	stored, err := GetSubmissionUnitByID(db, su.SuID)
	require.NoError(t, err)
	assert.Equal(t, uint64(parallelCallers), stored.CouVersion)

	ops, err := CouLog(stored)
	require.NoError(t, err)
	require.Len(t, ops, parallelCallers)
	ids := make(map[string]bool, len(ops))
	for _, op := range ops {
		ids[op.CouID] = true
	}
	assert.Len(t, ids, parallelCallers)
}
