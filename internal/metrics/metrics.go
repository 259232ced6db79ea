// metrics.go
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

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry metrics
var (
	// CouMutationsTotal tracks committed CoU log mutations by action
	CouMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ectd_cou_mutations_total",
			Help: "Committed CoU log mutations by action",
		},
		[]string{"action"},
	)

	// OptimisticRetriesTotal tracks retries caused by concurrent writers
	OptimisticRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ectd_optimistic_retries_total",
			Help: "Retries after losing a write race, by entity",
		},
		[]string{"entity"},
	)

	// SubmissionUnitsCreatedTotal tracks created submission units
	SubmissionUnitsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ectd_submission_units_created_total",
			Help: "Total submission units created",
		},
	)
)
