// submission_unit.go
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

package models

import (
	"time"
)

// SubmissionUnit represents one regulatory sequence filed for an application
type SubmissionUnit struct {
	SuID          uint64    `gorm:"column:su_id;primaryKey;autoIncrement" json:"suId"`
	AppID         uint64    `gorm:"column:app_id;not null;index:idx_su_app_sequence,unique,priority:1" json:"appId"`
	SequenceNum   uint      `gorm:"column:sequence_num;not null;index:idx_su_app_sequence,unique,priority:2" json:"sequenceNum"`
	EffectiveDate Date      `gorm:"column:effective_date;type:date" json:"effectiveDate"`
	SuType        string    `gorm:"column:su_type;size:64;not null" json:"suType"`
	SuUnitType    string    `gorm:"column:su_unit_type;size:64;not null" json:"suUnitType"`
	CouData       JSON      `gorm:"column:cou_data" json:"couData"`
	CouVersion    uint64    `gorm:"column:cou_version;not null;default:0" json:"couVersion"`
	Status        Status    `gorm:"column:status;size:16;not null;default:DRAFT" json:"status"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

// TableName overrides the table name for SubmissionUnit
func (SubmissionUnit) TableName() string {
	return "submission_units"
}
