// cou_service.go
//
// eCTD submission registry: applications, submission units and their Context of Use logs
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of ectd-registry.
// ectd-registry is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// ectd-registry is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with ectd-registry.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/localnerve/ectd-registry/internal/metrics"
	"github.com/localnerve/ectd-registry/internal/models"
	"gorm.io/gorm"
)

// couMutation computes the next log from the stored unit. It reports false
// when nothing changed and no write is needed.
type couMutation func(su *models.SubmissionUnit) ([]models.CoUOperation, bool, error)

// NewCouID returns a fresh, time ordered CoU operation id
func NewCouID() string {
	return "COU_" + uuid.Must(uuid.NewV7()).String()
}

// ListCouOperations returns the decoded CoU log of a submission unit
func ListCouOperations(db *gorm.DB, suID uint64) ([]models.CoUOperation, error) {
	su, err := GetSubmissionUnitByID(db, suID)
	if err != nil {
		return nil, err
	}
	return CouLog(su)
}

// ReplaceCouData overwrites the whole CoU log with raw, which must be a JSON
// array of operations. An empty array clears the log.
func ReplaceCouData(db *gorm.DB, suID uint64, raw string) (*models.SubmissionUnit, error) {
	ops, err := parseCouInput([]byte(raw))
	if err != nil {
		return nil, err
	}

	return mutateCouLog(db, suID, "replace", func(*models.SubmissionUnit) ([]models.CoUOperation, bool, error) {
		return ops, true, nil
	})
}

// AddCouOperation appends one operation to the CoU log
func AddCouOperation(db *gorm.DB, suID uint64, op models.CoUOperation) (*models.SubmissionUnit, error) {
	return AddCouOperations(db, suID, []models.CoUOperation{op})
}

// AddCouOperations appends operations to the CoU log in order. Each one is
// stamped with the unit id and the current time, and gets a generated couId
// when it has none.
func AddCouOperations(db *gorm.DB, suID uint64, ops []models.CoUOperation) (*models.SubmissionUnit, error) {
	if len(ops) == 0 {
		return nil, fmt.Errorf("%w: at least one CoU operation is required", ErrInvalidArgument)
	}
	for i := range ops {
		if err := ops[i].Validate(); err != nil {
			return nil, fmt.Errorf("%w: operation %d: %v", ErrInvalidArgument, i, err)
		}
	}

	return mutateCouLog(db, suID, "add", func(su *models.SubmissionUnit) ([]models.CoUOperation, bool, error) {
		current, err := CouLog(su)
		if err != nil {
			return nil, false, err
		}

		seen := make(map[string]bool, len(current)+len(ops))
		for _, existing := range current {
			seen[existing.CouID] = true
		}

		stamp := models.NewTimestamp(now())
		next := make([]models.CoUOperation, 0, len(current)+len(ops))
		next = append(next, current...)
		for _, op := range ops {
			op.CouID = strings.TrimSpace(op.CouID)
			if op.CouID == "" {
				op.CouID = NewCouID()
			}
			if seen[op.CouID] {
				return nil, false, fmt.Errorf("%w: CoU operation %s already exists in submission unit %d",
					ErrDuplicateKey, op.CouID, su.SuID)
			}
			seen[op.CouID] = true
			op.SuID = strconv.FormatUint(su.SuID, 10)
			op.Timestamp = stamp
			next = append(next, op)
		}
		return next, true, nil
	})
}

// RemoveCouOperation drops every operation with the given couId. Removing an
// id that is not present leaves the log and its version untouched.
func RemoveCouOperation(db *gorm.DB, suID uint64, couID string) (*models.SubmissionUnit, error) {
	couID = strings.TrimSpace(couID)
	if couID == "" {
		return nil, fmt.Errorf("%w: couId is required", ErrInvalidArgument)
	}

	return mutateCouLog(db, suID, "remove", func(su *models.SubmissionUnit) ([]models.CoUOperation, bool, error) {
		current, err := CouLog(su)
		if err != nil {
			return nil, false, err
		}

		next := make([]models.CoUOperation, 0, len(current))
		for _, op := range current {
			if op.CouID != couID {
				next = append(next, op)
			}
		}
		return next, len(next) != len(current), nil
	})
}

// mutateCouLog runs a read-modify-write cycle on the CoU log. The write only
// lands when cou_version still holds the value that was read; otherwise the
// cycle starts over, up to the configured limit.
func mutateCouLog(db *gorm.DB, suID uint64, action string, mutate couMutation) (*models.SubmissionUnit, error) {
	for attempt := 1; ; attempt++ {
		su, err := GetSubmissionUnitByID(db, suID)
		if err != nil {
			return nil, err
		}

		next, changed, err := mutate(su)
		if err != nil {
			return nil, err
		}
		if !changed {
			return su, nil
		}

		couData, err := models.EncodeCouData(next)
		if err != nil {
			return nil, fmt.Errorf("failed to encode CoU data: %w", err)
		}

		result := db.Model(&models.SubmissionUnit{}).
			Where("su_id = ? AND cou_version = ?", su.SuID, su.CouVersion).
			Updates(map[string]interface{}{
				"cou_data":    couData,
				"cou_version": su.CouVersion + 1,
				"updated_at":  now(),
			})
		if result.Error != nil {
			return nil, result.Error
		}

		if result.RowsAffected == 1 {
			metrics.CouMutationsTotal.WithLabelValues(action).Inc()
			return GetSubmissionUnitByID(db, suID)
		}

		if attempt >= retryLimits.Cou {
			return nil, fmt.Errorf("%w: submission unit %d was modified concurrently, gave up after %d attempts",
				ErrVersion, suID, attempt)
		}
		metrics.OptimisticRetriesTotal.WithLabelValues("cou_log").Inc()
	}
}

// CouLog decodes the log held by su. Stored text that does not decode
// is reported as corrupt state, not as a caller error.
func CouLog(su *models.SubmissionUnit) ([]models.CoUOperation, error) {
	ops, err := models.ParseCouData(su.CouData.JSON)
	if err != nil {
		return nil, fmt.Errorf("%w: CoU data of submission unit %d: %v", ErrCorruptState, su.SuID, err)
	}
	return ops, nil
}

// parseCouInput decodes caller supplied CoU text. Operations without a couId
// get a generated one; a couId used twice is rejected.
func parseCouInput(raw []byte) ([]models.CoUOperation, error) {
	ops, err := models.ParseCouData(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	seen := make(map[string]bool, len(ops))
	for i := range ops {
		ops[i].CouID = strings.TrimSpace(ops[i].CouID)
		if ops[i].CouID == "" {
			ops[i].CouID = NewCouID()
		}
		if seen[ops[i].CouID] {
			return nil, fmt.Errorf("%w: CoU operation %s appears more than once", ErrDuplicateKey, ops[i].CouID)
		}
		seen[ops[i].CouID] = true
	}
	return ops, nil
}
