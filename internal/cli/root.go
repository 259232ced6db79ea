// root.go
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

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// App holds what the operator commands need. The database is opened on first
// use so commands that never touch it work without one.
type App struct {
	OpenDB func() (*gorm.DB, error)

	db *gorm.DB
}

// DB opens the database once and returns the shared handle.
func (a *App) DB() (*gorm.DB, error) {
	if a.db != nil {
		return a.db, nil
	}
	if a.OpenDB == nil {
		return nil, fmt.Errorf("no database configured")
	}
	db, err := a.OpenDB()
	if err != nil {
		return nil, err
	}
	a.db = db
	return db, nil
}

// NewRootCmd creates the top-level "ectdctl" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "ectdctl",
		Short:         "Operator tooling for the eCTD submission registry",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newMigrateCmd(app),
		newSeedCmd(app),
		newSampleCouCmd(),
		newCouCmd(app),
	)

	return root
}
