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

package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/ectd-registry/internal/services"
	"github.com/localnerve/ectd-registry/internal/types"
	"github.com/localnerve/ectd-registry/internal/utils"
	"gorm.io/gorm"
)

// ApplicationHandler handles application routes
type ApplicationHandler struct {
	DB *gorm.DB
}

// CreateApplicationRequest is the body of POST /api/applications
type CreateApplicationRequest struct {
	AppNumber string `json:"appNumber"`
	AppType   string `json:"appType"`
}

// UpdateApplicationRequest is the partial patch body of PUT /api/applications/:id
type UpdateApplicationRequest struct {
	AppNumber   *string        `json:"appNumber"`
	AppType     *string        `json:"appType"`
	Status      *string        `json:"status"`
	RootSection types.FlexJSON `json:"rootSection" swaggertype:"string"`
}

// RootSectionRequest is the body of PUT /api/applications/:id/root-section
type RootSectionRequest struct {
	RootSection types.FlexJSON `json:"rootSection" swaggertype:"string"`
}

// CreateApplication handles POST /api/applications
// @Summary Create an application
// @Description Create a DRAFT application with the default eCTD module tree
// @Tags Applications
// @Accept json
// @Produce json
// @Param body body CreateApplicationRequest true "Application number and type"
// @Success 200 {object} models.Application
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /applications [post]
func (h *ApplicationHandler) CreateApplication(c *fiber.Ctx) error {
	var body CreateApplicationRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid input: %v", err)
	}
	if strings.TrimSpace(body.AppNumber) == "" || strings.TrimSpace(body.AppType) == "" {
		return badRequest(c, "appNumber and appType are required")
	}

	app, err := services.CreateApplication(withContext(c, h.DB), body.AppNumber, body.AppType)
	if err != nil {
		return serviceError(c, err, "createApplication")
	}

	return utils.SuccessResponse(c, app, fiber.StatusOK)
}

// GetApplication handles GET /api/applications/:id
// @Summary Get an application
// @Tags Applications
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} models.Application
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /applications/{id} [get]
func (h *ApplicationHandler) GetApplication(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return serviceError(c, err, "getApplication")
	}

	app, err := services.GetApplicationByID(withContext(c, h.DB), id)
	if err != nil {
		return serviceError(c, err, "getApplication")
	}

	return utils.SuccessResponse(c, app, fiber.StatusOK)
}

// GetApplicationByNumber handles GET /api/applications/number/:appNumber
// @Summary Get an application by number
// @Tags Applications
// @Produce json
// @Param appNumber path string true "Application number"
// @Success 200 {object} models.Application
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /applications/number/{appNumber} [get]
func (h *ApplicationHandler) GetApplicationByNumber(c *fiber.Ctx) error {
	appNumber := strings.TrimSpace(c.Params("appNumber"))
	if appNumber == "" {
		return badRequest(c, "appNumber is required")
	}

	app, err := services.GetApplicationByNumber(withContext(c, h.DB), appNumber)
	if err != nil {
		return serviceError(c, err, "getApplicationByNumber")
	}

	return utils.SuccessResponse(c, app, fiber.StatusOK)
}

// ListApplications handles GET /api/applications
// @Summary List applications
// @Tags Applications
// @Produce json
// @Success 200 {array} models.Application
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /applications [get]
func (h *ApplicationHandler) ListApplications(c *fiber.Ctx) error {
	apps, err := services.ListApplications(withContext(c, h.DB))
	if err != nil {
		return serviceError(c, err, "listApplications")
	}

	return utils.SuccessResponse(c, apps, fiber.StatusOK)
}

// UpdateApplication handles PUT /api/applications/:id
// @Summary Update an application
// @Description Partial update, only the fields present in the body change
// @Tags Applications
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param body body UpdateApplicationRequest true "Fields to change"
// @Success 200 {object} models.Application
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /applications/{id} [put]
func (h *ApplicationHandler) UpdateApplication(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return serviceError(c, err, "updateApplication")
	}

	var body UpdateApplicationRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid input: %v", err)
	}

	patch := services.ApplicationPatch{
		AppNumber: body.AppNumber,
		AppType:   body.AppType,
		Status:    body.Status,
	}
	if body.RootSection.Present {
		rootSection := body.RootSection.String()
		patch.RootSection = &rootSection
	}

	app, err := services.UpdateApplication(withContext(c, h.DB), id, patch)
	if err != nil {
		return serviceError(c, err, "updateApplication")
	}

	return utils.SuccessResponse(c, app, fiber.StatusOK)
}

// UpdateRootSection handles PUT /api/applications/:id/root-section
// @Summary Replace the root section tree
// @Tags Applications
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param body body RootSectionRequest true "Root section JSON"
// @Success 200 {object} models.Application
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /applications/{id}/root-section [put]
func (h *ApplicationHandler) UpdateRootSection(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return serviceError(c, err, "updateRootSection")
	}

	var body RootSectionRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid input: %v", err)
	}
	if body.RootSection.Blank() {
		return badRequest(c, "rootSection is required")
	}

	app, err := services.UpdateRootSection(withContext(c, h.DB), id, body.RootSection.String())
	if err != nil {
		return serviceError(c, err, "updateRootSection")
	}

	return utils.SuccessResponse(c, app, fiber.StatusOK)
}

// DeleteApplication handles DELETE /api/applications/:id
// @Summary Delete an application
// @Description Refused while submission units exist unless cascade=true
// @Tags Applications
// @Produce json
// @Param id path int true "Application ID"
// @Param cascade query bool false "Also delete the application's submission units"
// @Success 200 {object} utils.DeletedResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /applications/{id} [delete]
func (h *ApplicationHandler) DeleteApplication(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return serviceError(c, err, "deleteApplication")
	}

	deletedUnits, err := services.DeleteApplication(withContext(c, h.DB), id, c.QueryBool("cascade", false))
	if err != nil {
		return serviceError(c, err, "deleteApplication")
	}

	return utils.DeletedResponse(c, fmt.Sprintf("Application %d deleted", id), deletedUnits)
}
