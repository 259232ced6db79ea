// sample.go
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

	"github.com/localnerve/ectd-registry/internal/models"
	"github.com/localnerve/ectd-registry/internal/types"
)

// BuildSampleCouData returns a one element operation array that callers can
// use as a template for a real CoU log. Nothing is stored.
func BuildSampleCouData(operation string, targetNodeID uint64, documentPath string) ([]models.CoUOperation, error) {
	kind, err := models.ParseOperationType(operation)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	at := now()
	return []models.CoUOperation{
		{
			CouID:        NewCouID(),
			Operation:    kind,
			TargetNodeID: types.Ptr(targetNodeID),
			Document: &models.DocumentInfo{
				FileID: fmt.Sprintf("doc-%d", at.UnixMilli()),
				Title:  "Sample Document",
				Format: "PDF",
				Path:   documentPath,
			},
			Timestamp: models.NewTimestamp(at),
		},
	}, nil
}
