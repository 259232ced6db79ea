// seed_cmd.go
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
	"errors"
	"fmt"

	"github.com/localnerve/ectd-registry/internal/models"
	"github.com/localnerve/ectd-registry/internal/services"
	"github.com/spf13/cobra"
)

type seedOptions struct {
	appNumber string
	appType   string
	units     int
	startDate string
	suType    string
	unitType  string
}

func newSeedCmd(app *App) *cobra.Command {
	opts := seedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create an application with sample submission units",
		Long: `Creates the application when its number is not taken yet, then adds
submission units one month apart. Each unit gets one sample "add" CoU
operation targeting module 1.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.appNumber, "app-number", "NDA-1", "Application number")
	cmd.Flags().StringVar(&opts.appType, "app-type", "NDA", "Application type")
	cmd.Flags().IntVar(&opts.units, "units", 2, "Number of submission units to add")
	cmd.Flags().StringVar(&opts.startDate, "start-date", "2024-01-01", "Effective date of the first unit (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.suType, "su-type", "original", "Submission unit type")
	cmd.Flags().StringVar(&opts.unitType, "unit-type", "initial", "Submission unit unit type")
	return cmd
}

func runSeed(cmd *cobra.Command, app *App, opts seedOptions) error {
	if opts.units < 0 {
		return fmt.Errorf("--units must not be negative")
	}
	start, err := models.ParseDate(opts.startDate)
	if err != nil {
		return err
	}

	db, err := app.DB()
	if err != nil {
		return err
	}
	db = db.WithContext(cmd.Context())

	application, err := services.CreateApplication(db, opts.appNumber, opts.appType)
	if errors.Is(err, services.ErrDuplicateKey) {
		application, err = services.GetApplicationByNumber(db, opts.appNumber)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Application %s (id %d)\n", application.AppNumber, application.AppID)

	for i := 0; i < opts.units; i++ {
		path := fmt.Sprintf("m1/us/cover-letter-%d.pdf", i+1)
		sample, err := services.BuildSampleCouData(string(models.OperationAdd), uint64(models.ModuleOneNodeID), path)
		if err != nil {
			return err
		}
		couData, err := models.EncodeCouData(sample)
		if err != nil {
			return err
		}

		su, err := services.CreateSubmissionUnit(db, services.SubmissionUnitInput{
			AppID:         application.AppID,
			EffectiveDate: models.NewDate(start.Time().AddDate(0, i, 0)),
			SuType:        opts.suType,
			SuUnitType:    opts.unitType,
			CouData:       couData.JSON,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  sequence %04d  su %d  effective %s\n", su.SequenceNum, su.SuID, su.EffectiveDate)
	}

	return nil
}
