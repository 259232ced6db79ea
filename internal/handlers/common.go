// common.go
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

package handlers

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/ectd-registry/internal/services"
	"github.com/localnerve/ectd-registry/internal/types"
	"github.com/localnerve/ectd-registry/internal/utils"
	"gorm.io/gorm"
)

// parseIDParam reads a positive numeric route parameter.
func parseIDParam(c *fiber.Ctx, name string) (uint64, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, types.NewCustomError(fiber.StatusBadRequest, types.ErrorTypeValidation,
			"invalid %s: %q", name, raw)
	}
	return id, nil
}

// withContext binds the request context to the database handle so a client
// disconnect cancels in-flight queries.
func withContext(c *fiber.Ctx, db *gorm.DB) *gorm.DB {
	return db.WithContext(c.UserContext())
}

// badRequest reports a request the handler rejected before calling a service.
func badRequest(c *fiber.Ctx, format string, args ...any) error {
	return utils.ErrorResponse(c, fmt.Sprintf(format, args...), fiber.StatusBadRequest, types.ErrorTypeValidation)
}

// serviceError renders a service failure with the status its kind maps to.
// operation names the failing call in logs for unexpected errors.
func serviceError(c *fiber.Ctx, err error, operation string) error {
	var custom *types.CustomError
	switch {
	case errors.As(err, &custom):
		return utils.ErrorResponse(c, custom.Message, custom.Code, custom.Type)
	case errors.Is(err, services.ErrInvalidArgument):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, types.ErrorTypeValidation)
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, services.ErrDuplicateKey):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, types.ErrorTypeDuplicateKey)
	case errors.Is(err, services.ErrVersion):
		return utils.VersionErrorResponse(c, "")
	case errors.Is(err, services.ErrConflict):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusConflict, types.ErrorTypeConflict)
	case errors.Is(err, services.ErrCorruptState):
		log.Printf("%s: %v", operation, err)
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, types.ErrorTypeCorruptState)
	}

	log.Printf("%s: %v", operation, err)
	return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, types.ErrorTypeUnexpected)
}
