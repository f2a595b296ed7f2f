// Package v1alpha1 exposes the generation service over HTTP. Handlers are
// thin adapters: they parse, call an orchestrator or repository, and render
// JSON. Domain errors map to statuses in the app-level error handler.
package v1alpha1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Samer-Gassouma/aeon-generator/internal/artifacts"
	"github.com/Samer-Gassouma/aeon-generator/internal/errors"
	"github.com/Samer-Gassouma/aeon-generator/internal/orchestrators/armory"
	"github.com/Samer-Gassouma/aeon-generator/internal/pkg/clock"
	"github.com/Samer-Gassouma/aeon-generator/internal/repositories/personalities"
	"github.com/Samer-Gassouma/aeon-generator/internal/stats"
)

// Config holds the dependencies for the HTTP handler
type Config struct {
	Armory          armory.Service
	PersonalityRepo personalities.Repository
	Artifacts       artifacts.Store
	Stats           *stats.Collector
	Clock           clock.Clock

	// TextBackendConfigured and MeshBackendConfigured feed the health
	// endpoint; generation works either way thanks to the fallbacks
	TextBackendConfigured bool
	MeshBackendConfigured bool
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Armory == nil {
		vb.RequiredField("Armory")
	}
	if c.PersonalityRepo == nil {
		vb.RequiredField("PersonalityRepo")
	}
	if c.Artifacts == nil {
		vb.RequiredField("Artifacts")
	}
	if c.Stats == nil {
		vb.RequiredField("Stats")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

// Handler serves the weapon generation API
type Handler struct {
	armory          armory.Service
	personalityRepo personalities.Repository
	artifacts       artifacts.Store
	stats           *stats.Collector
	clock           clock.Clock

	textBackend bool
	meshBackend bool
}

// NewHandler creates the HTTP handler with the provided dependencies
func NewHandler(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		armory:          cfg.Armory,
		personalityRepo: cfg.PersonalityRepo,
		artifacts:       cfg.Artifacts,
		stats:           cfg.Stats,
		clock:           cfg.Clock,
		textBackend:     cfg.TextBackendConfigured,
		meshBackend:     cfg.MeshBackendConfigured,
	}, nil
}

// RegisterRoutes attaches all API routes to the app
func (h *Handler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/health", h.health)

	api.Post("/weapons/generate", h.generateWeapons)
	api.Post("/weapons/create-model", h.createModel)
	api.Post("/weapons/batch-create", h.batchCreateModels)
	api.Get("/weapons/list", h.listWeapons)
	api.Get("/weapons/stats", h.weaponStats)
	api.Delete("/weapons/:id", h.deleteWeapon)

	api.Get("/personalities", h.listPersonalities)
	api.Post("/personalities", h.registerPersonality)

	api.Post("/jobs/generate", h.startJob)
	api.Get("/jobs/:id", h.getJob)
	api.Delete("/jobs/:id", h.cleanupJob)

	app.Get("/download/weapon/:filename", h.downloadWeapon)
	app.Get("/download/batch", h.downloadBatch)
}

func (h *Handler) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":       "healthy",
		"text_backend": h.textBackend,
		"mesh_backend": h.meshBackend,
		"timestamp":    h.clock.Now().Unix(),
		"stats":        h.stats.Snapshot(),
	})
}
