// submission_unit_service.go
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
	"errors"
	"fmt"
	"strings"

	"github.com/localnerve/ectd-registry/internal/metrics"
	"github.com/localnerve/ectd-registry/internal/models"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// errSequenceTaken signals a lost race for a sequence number.
var errSequenceTaken = errors.New("sequence number taken")

// SubmissionUnitInput holds the caller supplied fields of a new submission unit
type SubmissionUnitInput struct {
	AppID         uint64
	EffectiveDate models.Date
	SuType        string
	SuUnitType    string
	CouData       []byte
}

// SubmissionUnitPatch lists the fields a partial update may change. Nil
// fields are left untouched.
type SubmissionUnitPatch struct {
	EffectiveDate *models.Date
	SuType        *string
	SuUnitType    *string
	CouData       *string
	Status        *string
}

// CreateSubmissionUnit inserts a submission unit under its application with
// the next sequence number. Numbers are allocated from a counter on the
// application row, so a number is never handed out twice, even after the
// unit holding it is deleted.
func CreateSubmissionUnit(db *gorm.DB, in SubmissionUnitInput) (*models.SubmissionUnit, error) {
	if in.AppID == 0 {
		return nil, fmt.Errorf("%w: application id is required", ErrInvalidArgument)
	}
	in.SuType = strings.TrimSpace(in.SuType)
	in.SuUnitType = strings.TrimSpace(in.SuUnitType)
	if in.SuType == "" {
		return nil, fmt.Errorf("%w: submission unit type is required", ErrInvalidArgument)
	}
	if in.SuUnitType == "" {
		return nil, fmt.Errorf("%w: submission unit unit type is required", ErrInvalidArgument)
	}
	if in.EffectiveDate.Time().IsZero() {
		return nil, fmt.Errorf("%w: effective date is required", ErrInvalidArgument)
	}

	ops, err := parseCouInput(in.CouData)
	if err != nil {
		return nil, err
	}
	couData, err := models.EncodeCouData(ops)
	if err != nil {
		return nil, fmt.Errorf("failed to encode CoU data: %w", err)
	}

	for attempt := 1; ; attempt++ {
		su, err := insertSubmissionUnit(db, in, couData)
		if err == nil {
			metrics.SubmissionUnitsCreatedTotal.Inc()
			return su, nil
		}
		if !errors.Is(err, errSequenceTaken) {
			return nil, err
		}
		if attempt >= retryLimits.Sequence {
			return nil, fmt.Errorf("%w: could not allocate a sequence number for application %d after %d attempts",
				ErrConflict, in.AppID, attempt)
		}
		metrics.OptimisticRetriesTotal.WithLabelValues("sequence").Inc()
	}
}

// insertSubmissionUnit bumps the application's counter and inserts the unit
// in one transaction. The counter update takes the application row lock, so
// concurrent creates for the same application are serialized.
func insertSubmissionUnit(db *gorm.DB, in SubmissionUnitInput, couData models.JSON) (*models.SubmissionUnit, error) {
	var su models.SubmissionUnit

	err := db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Application{}).
			Where("app_id = ?", in.AppID).
			UpdateColumn("last_sequence_num", gorm.Expr("last_sequence_num + ?", 1))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: application %d does not exist (%w)", ErrInvalidArgument, in.AppID, ErrNotFound)
		}

		var app models.Application
		if err := silent(tx).Select("app_id", "last_sequence_num").
			Where("app_id = ?", in.AppID).
			First(&app).Error; err != nil {
			return err
		}

		// Rows written before the counter existed, or by another writer,
		// may already hold higher numbers.
		var maxSequence int64
		if err := silent(tx).Model(&models.SubmissionUnit{}).
			Where("app_id = ?", in.AppID).
			Select("COALESCE(MAX(sequence_num), 0)").
			Scan(&maxSequence).Error; err != nil {
			return err
		}

		next := app.LastSequenceNum
		if uint(maxSequence) >= next {
			next = uint(maxSequence) + 1
			if err := tx.Model(&models.Application{}).
				Where("app_id = ?", in.AppID).
				UpdateColumn("last_sequence_num", next).Error; err != nil {
				return err
			}
		}

		su = models.SubmissionUnit{
			AppID:         in.AppID,
			SequenceNum:   next,
			EffectiveDate: in.EffectiveDate,
			SuType:        in.SuType,
			SuUnitType:    in.SuUnitType,
			CouData:       couData,
			CouVersion:    0,
			Status:        models.StatusDraft,
		}
		if err := tx.Create(&su).Error; err != nil {
			if isDuplicateKey(err) {
				return errSequenceTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &su, nil
}

// GetSubmissionUnitByID retrieves a submission unit by its id
func GetSubmissionUnitByID(db *gorm.DB, suID uint64) (*models.SubmissionUnit, error) {
	var su models.SubmissionUnit
	if err := silent(db).Where("su_id = ?", suID).First(&su).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: submission unit %d", ErrNotFound, suID)
		}
		return nil, err
	}
	return &su, nil
}

// GetSubmissionUnitByAppAndSequence retrieves the unit holding a sequence number
func GetSubmissionUnitByAppAndSequence(db *gorm.DB, appID uint64, sequenceNum uint) (*models.SubmissionUnit, error) {
	var su models.SubmissionUnit
	err := silent(db).
		Where("app_id = ? AND sequence_num = ?", appID, sequenceNum).
		First(&su).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: sequence %d of application %d", ErrNotFound, sequenceNum, appID)
		}
		return nil, err
	}
	return &su, nil
}

// ListSubmissionUnits retrieves every submission unit
func ListSubmissionUnits(db *gorm.DB) ([]models.SubmissionUnit, error) {
	units := []models.SubmissionUnit{}
	err := silent(db).
		Clauses(hints.Comment("select", "ectd:list-submission-units")).
		Order("su_id").
		Find(&units).Error
	return units, err
}

// ListSubmissionUnitsByApp retrieves the units of one application in
// sequence order. A missing application is reported as not found rather
// than as an empty list.
func ListSubmissionUnitsByApp(db *gorm.DB, appID uint64) ([]models.SubmissionUnit, error) {
	if _, err := GetApplicationByID(db, appID); err != nil {
		return nil, err
	}

	units := []models.SubmissionUnit{}
	err := silent(db).
		Clauses(hints.Comment("select", "ectd:list-submission-units-by-app")).
		Where("app_id = ?", appID).
		Order("sequence_num").
		Find(&units).Error
	return units, err
}

// UpdateSubmissionUnit applies a partial update and returns the stored result.
// Replacing couData bumps the CoU version so concurrent log mutations retry.
func UpdateSubmissionUnit(db *gorm.DB, suID uint64, patch SubmissionUnitPatch) (*models.SubmissionUnit, error) {
	updates := map[string]interface{}{}

	if patch.EffectiveDate != nil {
		if patch.EffectiveDate.Time().IsZero() {
			return nil, fmt.Errorf("%w: effective date cannot be empty", ErrInvalidArgument)
		}
		updates["effective_date"] = *patch.EffectiveDate
	}
	if patch.SuType != nil {
		suType := strings.TrimSpace(*patch.SuType)
		if suType == "" {
			return nil, fmt.Errorf("%w: submission unit type cannot be empty", ErrInvalidArgument)
		}
		updates["su_type"] = suType
	}
	if patch.SuUnitType != nil {
		suUnitType := strings.TrimSpace(*patch.SuUnitType)
		if suUnitType == "" {
			return nil, fmt.Errorf("%w: submission unit unit type cannot be empty", ErrInvalidArgument)
		}
		updates["su_unit_type"] = suUnitType
	}
	if patch.CouData != nil {
		ops, err := parseCouInput([]byte(*patch.CouData))
		if err != nil {
			return nil, err
		}
		couData, err := models.EncodeCouData(ops)
		if err != nil {
			return nil, fmt.Errorf("failed to encode CoU data: %w", err)
		}
		updates["cou_data"] = couData
		updates["cou_version"] = gorm.Expr("cou_version + ?", 1)
	}

	var updated *models.SubmissionUnit

	err := db.Transaction(func(tx *gorm.DB) error {
		su, err := GetSubmissionUnitByID(tx, suID)
		if err != nil {
			return err
		}

		if patch.Status != nil {
			status, err := nextStatus(su.Status, *patch.Status)
			if err != nil {
				return err
			}
			updates["status"] = status
		}

		if len(updates) > 0 {
			if err := tx.Model(su).Updates(updates).Error; err != nil {
				return err
			}
		}

		updated, err = GetSubmissionUnitByID(tx, suID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if patch.CouData != nil {
		metrics.CouMutationsTotal.WithLabelValues("replace").Inc()
	}
	return updated, nil
}

// DeleteSubmissionUnit removes a submission unit. Its sequence number is not
// reused.
func DeleteSubmissionUnit(db *gorm.DB, suID uint64) error {
	result := db.Where("su_id = ?", suID).Delete(&models.SubmissionUnit{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: submission unit %d", ErrNotFound, suID)
	}
	return nil
}
