// options.go
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
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// RetryLimits bounds the optimistic retry loops.
type RetryLimits struct {
	// Cou is the number of attempts a CoU log mutation gets before it
	// reports a version conflict.
	Cou int
	// Sequence is the number of attempts a submission unit insert gets when
	// its sequence number collides with a concurrent insert.
	Sequence int
}

var retryLimits = RetryLimits{Cou: 5, Sequence: 3}

// SetRetryLimits replaces the retry limits. Non-positive values keep the
// current setting.
func SetRetryLimits(limits RetryLimits) {
	if limits.Cou > 0 {
		retryLimits.Cou = limits.Cou
	}
	if limits.Sequence > 0 {
		retryLimits.Sequence = limits.Sequence
	}
}

// now is replaced in tests
var now = time.Now

// silent returns a session that does not log, used for lookups where a
// missing record is an expected outcome.
func silent(db *gorm.DB) *gorm.DB {
	return db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)})
}
