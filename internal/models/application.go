// application.go
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

// Application represents one drug registration application
type Application struct {
	AppID           uint64    `gorm:"column:app_id;primaryKey;autoIncrement" json:"appId"`
	AppNumber       string    `gorm:"column:app_number;uniqueIndex;size:255;not null" json:"appNumber"`
	AppType         string    `gorm:"column:app_type;size:64;not null" json:"appType"`
	Status          Status    `gorm:"column:status;size:16;not null;default:DRAFT" json:"status"`
	RootSection     JSON      `gorm:"column:root_section" json:"rootSection"`
	LastSequenceNum uint      `gorm:"column:last_sequence_num;not null;default:0" json:"-"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

// TableName overrides the table name for Application
func (Application) TableName() string {
	return "applications"
}

// SectionNode is one node of an application's root section tree.
type SectionNode struct {
	ID       int64         `json:"id"`
	NodeType string        `json:"nodeType"`
	Name     string        `json:"name"`
	Children []SectionNode `json:"children"`
}

// Node ids of the eCTD root and its five modules.
const (
	RootSectionNodeID int64 = 9999990
	ModuleOneNodeID   int64 = 8154
)

var moduleNames = []string{
	"1. Administrative information",
	"2. Overview and Summaries",
	"3. Quality",
	"4. Nonclinical Study Reports",
	"5. Clinical Study Reports",
}

// DefaultRootSection builds the initial eCTD 4.0 tree for a new application.
func DefaultRootSection(appNumber string) SectionNode {
	modules := make([]SectionNode, 0, len(moduleNames))
	for i, name := range moduleNames {
		modules = append(modules, SectionNode{
			ID:       ModuleOneNodeID + int64(i),
			NodeType: "module",
			Name:     name,
			Children: []SectionNode{},
		})
	}

	return SectionNode{
		ID:       RootSectionNodeID,
		NodeType: "application",
		Name:     appNumber,
		Children: modules,
	}
}
