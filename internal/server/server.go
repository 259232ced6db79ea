// server.go
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

package server

import (
	"errors"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	swagger "github.com/gofiber/swagger"
	"github.com/localnerve/ectd-registry/internal/config"
	"github.com/localnerve/ectd-registry/internal/handlers"
	"github.com/localnerve/ectd-registry/internal/middleware"
	"github.com/localnerve/ectd-registry/internal/types"
	"gorm.io/gorm"
)

// Options toggles the parts of the app that touch process-wide state
type Options struct {
	// Prometheus is mounted at /metrics when set
	Prometheus *fiberprometheus.FiberPrometheus
	// AccessLog enables the request logger
	AccessLog bool
	// Swagger serves the API docs at /swagger
	Swagger bool
}

// New builds the Fiber app with all routes mounted
func New(cfg *config.Config, db *gorm.DB, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler,
		AppName:      "ectd-registry",
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	if opts.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		}))
	}
	app.Use(compress.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, X-Api-Version",
	}))

	if opts.Prometheus != nil {
		opts.Prometheus.RegisterAt(app, "/metrics")
		app.Use(opts.Prometheus.Middleware)
	}

	if opts.Swagger {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	// API routes under /api
	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())

	healthHandler := &handlers.HealthHandler{Config: cfg, DB: db}
	appHandler := &handlers.ApplicationHandler{DB: db}
	suHandler := &handlers.SubmissionUnitHandler{DB: db}

	api.Get("/health", healthHandler.Health)

	applications := api.Group("/applications")
	applications.Post("/", appHandler.CreateApplication)
	applications.Get("/", appHandler.ListApplications)
	applications.Get("/number/:appNumber", appHandler.GetApplicationByNumber)
	applications.Get("/:id", appHandler.GetApplication)
	applications.Put("/:id", appHandler.UpdateApplication)
	applications.Put("/:id/root-section", appHandler.UpdateRootSection)
	applications.Delete("/:id", appHandler.DeleteApplication)

	units := api.Group("/submission-units")
	// Registered ahead of /:id so the literal segment wins
	units.Get("/sample-cou-data", suHandler.SampleCouData)
	units.Post("/sample-cou-data", suHandler.SampleCouData)
	units.Post("/", suHandler.CreateSubmissionUnit)
	units.Get("/", suHandler.ListSubmissionUnits)
	units.Get("/by-app/:appId", suHandler.ListSubmissionUnitsByApp)
	units.Get("/by-app/:appId/sequence/:sequenceNum", suHandler.GetSubmissionUnitBySequence)
	units.Get("/:id", suHandler.GetSubmissionUnit)
	units.Put("/:id", suHandler.UpdateSubmissionUnit)
	units.Delete("/:id", suHandler.DeleteSubmissionUnit)
	units.Put("/:id/cou-data", suHandler.ReplaceCouData)
	units.Get("/:id/cou-operations", suHandler.ListCouOperations)
	units.Post("/:id/cou-operations", suHandler.AddCouOperations)
	units.Delete("/:id/cou-operations/:couId", suHandler.RemoveCouOperation)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
			"type":      types.ErrorTypeNotFound,
		})
	})

	return app
}

// ErrorHandler renders errors that escape the handlers in the standard envelope
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := types.ErrorTypeUnexpected

	var fiberErr *fiber.Error
	var customErr *types.CustomError
	switch {
	case errors.As(err, &customErr):
		code = customErr.Code
		message = customErr.Message
		errorType = customErr.Type
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
		if code < fiber.StatusInternalServerError {
			errorType = types.ErrorTypeValidation
		}
	}

	// Check for version errors
	versionError := len(message) >= 9 && message[:9] == "E_VERSION"
	if versionError {
		errorType = "version"
		code = fiber.StatusConflict
	}

	return c.Status(code).JSON(fiber.Map{
		"status":       code,
		"message":      message,
		"ok":           false,
		"versionError": versionError,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
		"url":          c.OriginalURL(),
		"type":         errorType,
	})
}
