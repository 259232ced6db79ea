// cou_cmd.go
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
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/localnerve/ectd-registry/internal/models"
	"github.com/localnerve/ectd-registry/internal/services"
	"github.com/spf13/cobra"
)

func newSampleCouCmd() *cobra.Command {
	var operation, path string
	var nodeID uint64

	cmd := &cobra.Command{
		Use:   "sample-cou",
		Short: "Print a sample CoU operation array",
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := services.BuildSampleCouData(operation, nodeID, path)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), ops)
		},
	}

	cmd.Flags().StringVar(&operation, "operation", "add", "Operation type (add, replace, delete)")
	cmd.Flags().Uint64Var(&nodeID, "node-id", uint64(models.ModuleOneNodeID), "Target node id")
	cmd.Flags().StringVar(&path, "path", "m1/us/sample.pdf", "Document path")
	return cmd
}

func newCouCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cou",
		Short: "Inspect CoU operation logs",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list <suId>",
		Short: "Print the CoU log of a submission unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			suID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid submission unit id %q", args[0])
			}

			db, err := app.DB()
			if err != nil {
				return err
			}

			ops, err := services.ListCouOperations(db.WithContext(cmd.Context()), suID)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), ops)
		},
	})

	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
