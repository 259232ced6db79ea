// application_service.go
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
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/localnerve/ectd-registry/internal/models"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// ApplicationPatch lists the fields a partial update may change. Nil fields
// are left untouched.
type ApplicationPatch struct {
	AppNumber   *string
	AppType     *string
	Status      *string
	RootSection *string
}

// CreateApplication creates a DRAFT application with the default eCTD root section
func CreateApplication(db *gorm.DB, appNumber, appType string) (*models.Application, error) {
	appNumber = strings.TrimSpace(appNumber)
	appType = strings.TrimSpace(appType)
	if appNumber == "" {
		return nil, fmt.Errorf("%w: application number is required", ErrInvalidArgument)
	}
	if appType == "" {
		return nil, fmt.Errorf("%w: application type is required", ErrInvalidArgument)
	}

	var count int64
	if err := silent(db).Model(&models.Application{}).
		Where("app_number = ?", appNumber).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: application number already exists: %s", ErrDuplicateKey, appNumber)
	}

	rootSection, err := json.Marshal(models.DefaultRootSection(appNumber))
	if err != nil {
		return nil, fmt.Errorf("failed to build root section: %w", err)
	}

	app := models.Application{
		AppNumber:   appNumber,
		AppType:     appType,
		Status:      models.StatusDraft,
		RootSection: models.NewJSON(rootSection),
	}
	if err := db.Create(&app).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, fmt.Errorf("%w: application number already exists: %s", ErrDuplicateKey, appNumber)
		}
		return nil, err
	}

	return &app, nil
}

// GetApplicationByID retrieves an application by its id
func GetApplicationByID(db *gorm.DB, appID uint64) (*models.Application, error) {
	var app models.Application
	if err := silent(db).Where("app_id = ?", appID).First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: application %d", ErrNotFound, appID)
		}
		return nil, err
	}
	return &app, nil
}

// GetApplicationByNumber retrieves an application by its business key
func GetApplicationByNumber(db *gorm.DB, appNumber string) (*models.Application, error) {
	var app models.Application
	if err := silent(db).Where("app_number = ?", appNumber).First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: application %q", ErrNotFound, appNumber)
		}
		return nil, err
	}
	return &app, nil
}

// ListApplications retrieves all applications in storage order
func ListApplications(db *gorm.DB) ([]models.Application, error) {
	apps := []models.Application{}
	err := silent(db).
		Clauses(hints.Comment("select", "ectd:list-applications")).
		Order("app_id").
		Find(&apps).Error
	return apps, err
}

// UpdateApplication applies a partial update and returns the stored result
func UpdateApplication(db *gorm.DB, appID uint64, patch ApplicationPatch) (*models.Application, error) {
	var updated *models.Application

	err := db.Transaction(func(tx *gorm.DB) error {
		app, err := GetApplicationByID(tx, appID)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{}

		if patch.AppNumber != nil {
			appNumber := strings.TrimSpace(*patch.AppNumber)
			if appNumber == "" {
				return fmt.Errorf("%w: application number cannot be empty", ErrInvalidArgument)
			}
			if appNumber != app.AppNumber {
				var count int64
				if err := silent(tx).Model(&models.Application{}).
					Where("app_number = ? AND app_id <> ?", appNumber, appID).
					Count(&count).Error; err != nil {
					return err
				}
				if count > 0 {
					return fmt.Errorf("%w: application number already exists: %s", ErrDuplicateKey, appNumber)
				}
				updates["app_number"] = appNumber
			}
		}

		if patch.AppType != nil {
			appType := strings.TrimSpace(*patch.AppType)
			if appType == "" {
				return fmt.Errorf("%w: application type cannot be empty", ErrInvalidArgument)
			}
			updates["app_type"] = appType
		}

		if patch.Status != nil {
			status, err := nextStatus(app.Status, *patch.Status)
			if err != nil {
				return err
			}
			updates["status"] = status
		}

		if patch.RootSection != nil {
			rootSection, err := validateDocument(*patch.RootSection, "root section")
			if err != nil {
				return err
			}
			updates["root_section"] = rootSection
		}

		if len(updates) > 0 {
			if err := tx.Model(app).Updates(updates).Error; err != nil {
				if isDuplicateKey(err) {
					return fmt.Errorf("%w: application number already exists", ErrDuplicateKey)
				}
				return err
			}
		}

		updated, err = GetApplicationByID(tx, appID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// UpdateRootSection replaces the stored root section tree verbatim
func UpdateRootSection(db *gorm.DB, appID uint64, rootSectionJSON string) (*models.Application, error) {
	rootSection, err := validateDocument(rootSectionJSON, "root section")
	if err != nil {
		return nil, err
	}

	app, err := GetApplicationByID(db, appID)
	if err != nil {
		return nil, err
	}

	if err := db.Model(app).Update("root_section", rootSection).Error; err != nil {
		return nil, err
	}

	return GetApplicationByID(db, appID)
}

// DeleteApplication removes an application. Submission units block the
// delete unless cascade is set, in which case they are removed with it.
// It returns the number of submission units deleted.
func DeleteApplication(db *gorm.DB, appID uint64, cascade bool) (int64, error) {
	var deletedUnits int64

	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := GetApplicationByID(tx, appID); err != nil {
			return err
		}

		var units int64
		if err := silent(tx).Model(&models.SubmissionUnit{}).
			Where("app_id = ?", appID).
			Count(&units).Error; err != nil {
			return err
		}

		if units > 0 {
			if !cascade {
				return fmt.Errorf("%w: application %d still has %d submission units, delete them first or use cascade",
					ErrConflict, appID, units)
			}
			result := tx.Where("app_id = ?", appID).Delete(&models.SubmissionUnit{})
			if result.Error != nil {
				return result.Error
			}
			deletedUnits = result.RowsAffected
		}

		return tx.Where("app_id = ?", appID).Delete(&models.Application{}).Error
	})

	return deletedUnits, err
}

// validateDocument checks that s is a well-formed JSON document.
func validateDocument(s, what string) (models.JSON, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return models.JSON{}, fmt.Errorf("%w: %s JSON is required", ErrInvalidArgument, what)
	}
	if !json.Valid([]byte(trimmed)) {
		return models.JSON{}, fmt.Errorf("%w: %s is not valid JSON", ErrInvalidArgument, what)
	}
	return models.NewJSON([]byte(trimmed)), nil
}

// nextStatus parses requested and checks it is reachable from current.
func nextStatus(current models.Status, requested string) (models.Status, error) {
	status, err := models.ParseStatus(requested)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	if !current.CanTransitionTo(status) {
		return "", fmt.Errorf("%w: status cannot change from %s to %s", ErrInvalidArgument, current, status)
	}
	return status, nil
}
