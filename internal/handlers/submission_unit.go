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

package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/ectd-registry/internal/models"
	"github.com/localnerve/ectd-registry/internal/services"
	"github.com/localnerve/ectd-registry/internal/types"
	"github.com/localnerve/ectd-registry/internal/utils"
	"gorm.io/gorm"
)

// SubmissionUnitHandler handles submission unit and CoU routes
type SubmissionUnitHandler struct {
	DB *gorm.DB
}

// CreateSubmissionUnitRequest is the body of POST /api/submission-units
type CreateSubmissionUnitRequest struct {
	AppID         types.FlexUint64 `json:"appId" swaggertype:"integer"`
	EffectiveDate string           `json:"effectiveDate" example:"2024-01-01"`
	SuType        string           `json:"suType"`
	SuUnitType    string           `json:"suUnitType"`
	CouData       types.FlexJSON   `json:"couData" swaggertype:"string"`
}

// UpdateSubmissionUnitRequest is the partial patch body of PUT /api/submission-units/:id.
// appId and sequenceNum are accepted only to reject them.
type UpdateSubmissionUnitRequest struct {
	AppID         *types.FlexUint64 `json:"appId,omitempty" swaggerignore:"true"`
	SequenceNum   *types.FlexUint64 `json:"sequenceNum,omitempty" swaggerignore:"true"`
	EffectiveDate *string           `json:"effectiveDate" example:"2024-01-01"`
	SuType        *string           `json:"suType"`
	SuUnitType    *string           `json:"suUnitType"`
	CouData       types.FlexJSON    `json:"couData" swaggertype:"string"`
	Status        *string           `json:"status"`
}

// CouDataRequest is the body of PUT /api/submission-units/:id/cou-data
type CouDataRequest struct {
	CouData types.FlexJSON `json:"couData" swaggertype:"string"`
}

// SampleCouDataRequest is the optional body of POST /api/submission-units/sample-cou-data
type SampleCouDataRequest struct {
	OperationType string            `json:"operationType"`
	NodeID        *types.FlexUint64 `json:"nodeId" swaggertype:"integer"`
	DocumentPath  string            `json:"documentPath"`
}

// CreateSubmissionUnit handles POST /api/submission-units
// @Summary Create a submission unit
// @Description Assigns the next sequence number of the application
// @Tags SubmissionUnits
// @Accept json
// @Produce json
// @Param body body CreateSubmissionUnitRequest true "Submission unit"
// @Success 201 {object} models.SubmissionUnit
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /submission-units [post]
func (h *SubmissionUnitHandler) CreateSubmissionUnit(c *fiber.Ctx) error {
	var body CreateSubmissionUnitRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid input: %v", err)
	}

	if body.AppID == 0 || strings.TrimSpace(body.SuType) == "" || strings.TrimSpace(body.SuUnitType) == "" {
		return badRequest(c, "appId, effectiveDate, suType and suUnitType are required")
	}
	effectiveDate, err := models.ParseDate(strings.TrimSpace(body.EffectiveDate))
	if err != nil {
		return badRequest(c, "%v", err)
	}

	su, err := services.CreateSubmissionUnit(withContext(c, h.DB), services.SubmissionUnitInput{
		AppID:         body.AppID.Uint64(),
		EffectiveDate: effectiveDate,
		SuType:        body.SuType,
		SuUnitType:    body.SuUnitType,
		CouData:       body.CouData.Raw,
	})
	if err != nil {
		return serviceError(c, err, "createSubmissionUnit")
	}

	return utils.SuccessResponse(c, su, fiber.StatusCreated)
}

// GetSubmissionUnit handles GET /api/submission-units/:id
// @Summary Get a submission unit
// @Tags SubmissionUnits
// @Produce json
// @Param id path int true "Submission unit ID"
// @Success 200 {object} models.SubmissionUnit
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /submission-units/{id} [get]
func (h *SubmissionUnitHandler) GetSubmissionUnit(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return serviceError(c, err, "getSubmissionUnit")
	}

	su, err := services.GetSubmissionUnitByID(withContext(c, h.DB), id)
	if err != nil {
		return serviceError(c, err, "getSubmissionUnit")
	}

	return utils.SuccessResponse(c, su, fiber.StatusOK)
}

// ListSubmissionUnits handles GET /api/submission-units
// @Summary List submission units
// @Tags SubmissionUnits
// @Produce json
// @Success 200 {array} models.SubmissionUnit
// @Router /submission-units [get]
func (h *SubmissionUnitHandler) ListSubmissionUnits(c *fiber.Ctx) error {
	units, err := services.ListSubmissionUnits(withContext(c, h.DB))
	if err != nil {
		return serviceError(c, err, "listSubmissionUnits")
	}

	return utils.SuccessResponse(c, units, fiber.StatusOK)
}

// ListSubmissionUnitsByApp handles GET /api/submission-units/by-app/:appId
// @Summary List the submission units of an application
// @Tags SubmissionUnits
// @Produce json
// @Param appId path int true "Application ID"
// @Success 200 {array} models.SubmissionUnit
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /submission-units/by-app/{appId} [get]
func (h *SubmissionUnitHandler) ListSubmissionUnitsByApp(c *fiber.Ctx) error {
	appID, err := parseIDParam(c, "appId")
	if err != nil {
		return serviceError(c, err, "listSubmissionUnitsByApp")
	}

	units, err := services.ListSubmissionUnitsByApp(withContext(c, h.DB), appID)
	if err != nil {
		return serviceError(c, err, "listSubmissionUnitsByApp")
	}

	return utils.SuccessResponse(c, units, fiber.StatusOK)
}

// GetSubmissionUnitBySequence handles GET /api/submission-units/by-app/:appId/sequence/:sequenceNum
// @Summary Get a submission unit by sequence number
// @Tags SubmissionUnits
// @Produce json
// @Param appId path int true "Application ID"
// @Param sequenceNum path int true "Sequence number"
// @Success 200 {object} models.SubmissionUnit
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /submission-units/by-app/{appId}/sequence/{sequenceNum} [get]
func (h *SubmissionUnitHandler) GetSubmissionUnitBySequence(c *fiber.Ctx) error {
	appID, err := parseIDParam(c, "appId")
	if err != nil {
		return serviceError(c, err, "getSubmissionUnitBySequence")
	}
	sequenceNum, err := parseIDParam(c, "sequenceNum")
	if err != nil {
		return serviceError(c, err, "getSubmissionUnitBySequence")
	}

	su, err := services.GetSubmissionUnitByAppAndSequence(withContext(c, h.DB), appID, uint(sequenceNum))
	if err != nil {
		return serviceError(c, err, "getSubmissionUnitBySequence")
	}

	return utils.SuccessResponse(c, su, fiber.StatusOK)
}

// UpdateSubmissionUnit handles PUT /api/submission-units/:id
// @Summary Update a submission unit
// @Description Partial update, only the fields present in the body change. appId and sequenceNum are immutable.
// @Tags SubmissionUnits
// @Accept json
// @Produce json
// @Param id path int true "Submission unit ID"
// @Param body body UpdateSubmissionUnitRequest true "Fields to change"
// @Success 200 {object} models.SubmissionUnit
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /submission-units/{id} [put]
func (h *SubmissionUnitHandler) UpdateSubmissionUnit(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return serviceError(c, err, "updateSubmissionUnit")
	}

	var body UpdateSubmissionUnitRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid input: %v", err)
	}
	if body.AppID != nil || body.SequenceNum != nil {
		return badRequest(c, "appId and sequenceNum cannot be changed")
	}

	patch := services.SubmissionUnitPatch{
		SuType:     body.SuType,
		SuUnitType: body.SuUnitType,
		Status:     body.Status,
	}
	if body.EffectiveDate != nil {
		effectiveDate, err := models.ParseDate(strings.TrimSpace(*body.EffectiveDate))
		if err != nil {
			return badRequest(c, "%v", err)
		}
		patch.EffectiveDate = &effectiveDate
	}
	if body.CouData.Present {
		couData := body.CouData.String()
		patch.CouData = &couData
	}

	su, err := services.UpdateSubmissionUnit(withContext(c, h.DB), id, patch)
	if err != nil {
		return serviceError(c, err, "updateSubmissionUnit")
	}

	return utils.SuccessResponse(c, su, fiber.StatusOK)
}

// DeleteSubmissionUnit handles DELETE /api/submission-units/:id
// @Summary Delete a submission unit
// @Tags SubmissionUnits
// @Produce json
// @Param id path int true "Submission unit ID"
// @Success 200 {object} utils.DeletedResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /submission-units/{id} [delete]
func (h *SubmissionUnitHandler) DeleteSubmissionUnit(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return serviceError(c, err, "deleteSubmissionUnit")
	}

	if err := services.DeleteSubmissionUnit(withContext(c, h.DB), id); err != nil {
		return serviceError(c, err, "deleteSubmissionUnit")
	}

	return utils.DeletedResponse(c, fmt.Sprintf("Submission unit %d deleted", id), 1)
}

// ReplaceCouData handles PUT /api/submission-units/:id/cou-data
// @Summary Replace the CoU log
// @Description Overwrites the whole CoU operation array. An empty or blank value clears it.
// @Tags CoU
// @Accept json
// @Produce json
// @Param id path int true "Submission unit ID"
// @Param body body CouDataRequest true "CoU operation array as JSON"
// @Success 200 {object} models.SubmissionUnit
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /submission-units/{id}/cou-data [put]
func (h *SubmissionUnitHandler) ReplaceCouData(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return serviceError(c, err, "replaceCouData")
	}

	var body CouDataRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid input: %v", err)
	}
	if !body.CouData.Present {
		return badRequest(c, "couData is required")
	}

	su, err := services.ReplaceCouData(withContext(c, h.DB), id, body.CouData.String())
	if err != nil {
		return serviceError(c, err, "replaceCouData")
	}

	return utils.SuccessResponse(c, su, fiber.StatusOK)
}

// AddCouOperations handles POST /api/submission-units/:id/cou-operations
// @Summary Append CoU operations
// @Description Accepts one operation object or an array of them, appended in order
// @Tags CoU
// @Accept json
// @Produce json
// @Param id path int true "Submission unit ID"
// @Param body body models.CoUOperation true "CoU operation"
// @Success 200 {object} models.SubmissionUnit
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /submission-units/{id}/cou-operations [post]
func (h *SubmissionUnitHandler) AddCouOperations(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return serviceError(c, err, "addCouOperations")
	}

	var body types.FlexList[models.CoUOperation]
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid input: %v", err)
	}
	if len(body) == 0 {
		return badRequest(c, "at least one CoU operation is required")
	}

	su, err := services.AddCouOperations(withContext(c, h.DB), id, body.Slice())
	if err != nil {
		return serviceError(c, err, "addCouOperations")
	}

	return utils.SuccessResponse(c, su, fiber.StatusOK)
}

// ListCouOperations handles GET /api/submission-units/:id/cou-operations
// @Summary List CoU operations
// @Tags CoU
// @Produce json
// @Param id path int true "Submission unit ID"
// @Success 200 {array} models.CoUOperation
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /submission-units/{id}/cou-operations [get]
func (h *SubmissionUnitHandler) ListCouOperations(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return serviceError(c, err, "listCouOperations")
	}

	ops, err := services.ListCouOperations(withContext(c, h.DB), id)
	if err != nil {
		return serviceError(c, err, "listCouOperations")
	}

	return utils.SuccessResponse(c, ops, fiber.StatusOK)
}

// RemoveCouOperation handles DELETE /api/submission-units/:id/cou-operations/:couId
// @Summary Remove a CoU operation
// @Description Removes every operation with the couId and returns the remaining array
// @Tags CoU
// @Produce json
// @Param id path int true "Submission unit ID"
// @Param couId path string true "CoU operation ID"
// @Success 200 {array} models.CoUOperation
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /submission-units/{id}/cou-operations/{couId} [delete]
func (h *SubmissionUnitHandler) RemoveCouOperation(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return serviceError(c, err, "removeCouOperation")
	}

	su, err := services.RemoveCouOperation(withContext(c, h.DB), id, c.Params("couId"))
	if err != nil {
		return serviceError(c, err, "removeCouOperation")
	}

	ops, err := services.CouLog(su)
	if err != nil {
		return serviceError(c, err, "removeCouOperation")
	}

	return utils.SuccessResponse(c, ops, fiber.StatusOK)
}

// SampleCouData handles GET and POST /api/submission-units/sample-cou-data
// @Summary Generate sample CoU data
// @Description Builds a one element CoU operation array. Nothing is stored.
// @Tags CoU
// @Accept json
// @Produce json
// @Param operationType query string true "add, replace or delete"
// @Param nodeId query int true "Target node ID"
// @Param documentPath query string true "Document path"
// @Success 200 {array} models.CoUOperation
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /submission-units/sample-cou-data [get]
// @Router /submission-units/sample-cou-data [post]
func (h *SubmissionUnitHandler) SampleCouData(c *fiber.Ctx) error {
	req := SampleCouDataRequest{
		OperationType: c.Query("operationType"),
		DocumentPath:  c.Query("documentPath"),
	}
	if nodeID := c.Query("nodeId"); nodeID != "" {
		n, err := strconv.ParseUint(nodeID, 10, 64)
		if err != nil {
			return badRequest(c, "invalid nodeId: %q", nodeID)
		}
		req.NodeID = types.Ptr(n)
	}

	if c.Method() == fiber.MethodPost && len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid input: %v", err)
		}
	}

	if strings.TrimSpace(req.OperationType) == "" || req.NodeID == nil || strings.TrimSpace(req.DocumentPath) == "" {
		return badRequest(c, "operationType, nodeId and documentPath are required")
	}

	ops, err := services.BuildSampleCouData(req.OperationType, req.NodeID.Uint64(), req.DocumentPath)
	if err != nil {
		return serviceError(c, err, "sampleCouData")
	}

	return utils.SuccessResponse(c, ops, fiber.StatusOK)
}
