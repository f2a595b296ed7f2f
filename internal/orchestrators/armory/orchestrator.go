// Package armory implements the generation flows around the forge: writing
// mesh artifacts, running asynchronous jobs, and cleaning up after them.
package armory

//go:generate mockgen -destination=mock/mock_service.go -package=armorymock github.com/Samer-Gassouma/aeon-generator/internal/orchestrators/armory Service

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/Samer-Gassouma/aeon-generator/internal/artifacts"
	"github.com/Samer-Gassouma/aeon-generator/internal/clients/meshgen"
	"github.com/Samer-Gassouma/aeon-generator/internal/entities"
	"github.com/Samer-Gassouma/aeon-generator/internal/errors"
	"github.com/Samer-Gassouma/aeon-generator/internal/meshes"
	"github.com/Samer-Gassouma/aeon-generator/internal/orchestrators/forge"
	"github.com/Samer-Gassouma/aeon-generator/internal/pkg/clock"
	"github.com/Samer-Gassouma/aeon-generator/internal/pkg/idgen"
	"github.com/Samer-Gassouma/aeon-generator/internal/repositories/jobs"
	"github.com/Samer-Gassouma/aeon-generator/internal/stats"
)

// Service defines the generation flow operations
type Service interface {
	// GenerateWeapons runs a synchronous round, meshes included
	GenerateWeapons(ctx context.Context, input *GenerateWeaponsInput) (*GenerateWeaponsOutput, error)

	// CreateModel writes one mesh for a free-form description
	CreateModel(ctx context.Context, input *CreateModelInput) (*CreateModelOutput, error)

	// BatchCreateModels writes meshes for a weapon list, continuing past
	// per-item failures
	BatchCreateModels(ctx context.Context, input *BatchCreateModelsInput) (*BatchCreateModelsOutput, error)

	// StartGeneration queues an asynchronous round and returns its job ID
	StartGeneration(ctx context.Context, input *StartGenerationInput) (*StartGenerationOutput, error)

	// GetJob returns the current job payload
	GetJob(ctx context.Context, input *GetJobInput) (*GetJobOutput, error)

	// CleanupJob deletes a job's artifact files and its record
	CleanupJob(ctx context.Context, input *CleanupJobInput) (*CleanupJobOutput, error)

	// Wait blocks until all running job goroutines finish
	Wait()
}

// Config holds the dependencies for the armory orchestrator
type Config struct {
	Forge       forge.Service
	JobRepo     jobs.Repository
	Artifacts   artifacts.Store
	Clock       clock.Clock
	IDGenerator idgen.Generator

	// MeshClient is optional; nil means static placeholder meshes only
	MeshClient meshgen.Client

	// Stats is optional; nil disables counter reporting
	Stats *stats.Collector

	// JobTTL overrides the repository default when positive
	JobTTL time.Duration

	// MaxWeapons bounds a single job's count, matching the forge bound.
	// Zero means forge.DefaultWeaponCount.
	MaxWeapons int32
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Forge == nil {
		vb.RequiredField("Forge")
	}
	if c.JobRepo == nil {
		vb.RequiredField("JobRepo")
	}
	if c.Artifacts == nil {
		vb.RequiredField("Artifacts")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	forge      forge.Service
	jobRepo    jobs.Repository
	artifacts  artifacts.Store
	clock      clock.Clock
	idGen      idgen.Generator
	mesh       meshgen.Client
	stats      *stats.Collector
	jobTTL     time.Duration
	maxWeapons int32

	// wg tracks job goroutines so tests and shutdown can drain them
	wg sync.WaitGroup
}

// NewOrchestrator creates a new armory orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	maxWeapons := cfg.MaxWeapons
	if maxWeapons == 0 {
		maxWeapons = forge.DefaultWeaponCount
	}

	return &orchestrator{
		forge:      cfg.Forge,
		jobRepo:    cfg.JobRepo,
		artifacts:  cfg.Artifacts,
		clock:      cfg.Clock,
		idGen:      cfg.IDGenerator,
		mesh:       cfg.MeshClient,
		stats:      cfg.Stats,
		jobTTL:     cfg.JobTTL,
		maxWeapons: maxWeapons,
	}, nil
}

// writeMesh writes the mesh for one description, preferring the generative
// backend and falling back to a static placeholder on any failure
func (o *orchestrator) writeMesh(ctx context.Context, description, filename string) (string, bool, error) {
	if o.mesh != nil {
		output, err := o.mesh.Generate(ctx, &meshgen.GenerateInput{Description: description})
		if err == nil {
			path, writeErr := o.artifacts.Write(filename, output.OBJ)
			if writeErr != nil {
				return "", false, writeErr
			}
			return path, true, nil
		}
		slog.Warn("mesh backend failed, using placeholder",
			"filename", filename,
			"error", err.Error())
	}

	_, content := meshes.Render(description, o.clock.Now())
	path, err := o.artifacts.Write(filename, []byte(content))
	if err != nil {
		return "", false, err
	}
	return path, false, nil
}

// GenerateWeapons composes a round and writes every mesh before returning
func (o *orchestrator) GenerateWeapons(ctx context.Context, input *GenerateWeaponsInput) (*GenerateWeaponsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	theme := input.ArenaTheme
	if theme == "" {
		theme = forge.DefaultArenaTheme
	}

	start := o.clock.Now()

	forgeOutput, err := o.forge.GenerateWeapons(ctx, &forge.GenerateWeaponsInput{
		Player1Personality: input.Player1Personality,
		Player2Personality: input.Player2Personality,
		ArenaTheme:         theme,
		Count:              input.Count,
		Player1Power:       input.Player1Power,
		Player2Power:       input.Player2Power,
	})
	if err != nil {
		o.recordGeneration(nil, 0, false)
		return nil, err
	}

	weapons := forgeOutput.Weapons
	timestamp := start.Unix()
	for i := range weapons {
		filename := fmt.Sprintf("weapon_%d_%d.obj", timestamp, i)
		path, _, err := o.writeMesh(ctx, weapons[i].Description, filename)
		if err != nil {
			o.recordGeneration(nil, 0, false)
			return nil, errors.Wrapf(err, "failed to write mesh for weapon %d", i)
		}
		weapons[i].FileLocation = path
	}

	elapsed := o.clock.Now().Sub(start)
	if o.stats != nil {
		o.stats.RecordTheme(theme)
	}
	o.recordGeneration(weapons, elapsed, true)

	slog.Info("generated weapon round",
		"count", len(weapons),
		"arena_theme", theme,
		"elapsed", elapsed)

	return &GenerateWeaponsOutput{
		Weapons:           weapons,
		ArenaTheme:        theme,
		GenerationSeconds: elapsed.Seconds(),
	}, nil
}

func (o *orchestrator) recordGeneration(weapons []entities.WeaponRecord, elapsed time.Duration, success bool) {
	if o.stats != nil {
		o.stats.RecordGeneration(weapons, elapsed, success)
	}
}

// CreateModel writes one mesh for a free-form description
func (o *orchestrator) CreateModel(ctx context.Context, input *CreateModelInput) (*CreateModelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Description == "" {
		return nil, errors.InvalidArgument("description is required")
	}

	filename := input.Filename
	if filename == "" {
		filename = fmt.Sprintf("weapon_%d.obj", o.clock.Now().Unix())
	}

	start := o.clock.Now()
	path, fromBackend, err := o.writeMesh(ctx, input.Description, filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write mesh")
	}

	return &CreateModelOutput{
		Filename:          filename,
		Path:              path,
		FromBackend:       fromBackend,
		GenerationSeconds: o.clock.Now().Sub(start).Seconds(),
	}, nil
}

// BatchCreateModels writes meshes for a weapon list. Item failures are
// reported in the results, never as a batch error.
func (o *orchestrator) BatchCreateModels(ctx context.Context, input *BatchCreateModelsInput) (*BatchCreateModelsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if len(input.Items) == 0 {
		return nil, errors.InvalidArgument("weapons list cannot be empty")
	}

	start := o.clock.Now()
	output := &BatchCreateModelsOutput{
		Results: make([]BatchResult, 0, len(input.Items)),
	}

	for i, item := range input.Items {
		name := item.Name
		if name == "" {
			name = fmt.Sprintf("Weapon_%d", i)
		}

		itemStart := o.clock.Now()
		result := BatchResult{Name: name}

		modelOutput, err := o.CreateModel(ctx, &CreateModelInput{
			Description: item.Description,
			Filename:    item.Filename,
		})
		if err != nil {
			result.Status = "failed"
			result.Error = errors.GetMessage(err)
			output.Failed++
		} else {
			result.Status = "completed"
			result.Path = modelOutput.Path
			output.Successful++
		}
		result.GenerationSeconds = o.clock.Now().Sub(itemStart).Seconds()

		output.Results = append(output.Results, result)
	}

	output.TotalSeconds = o.clock.Now().Sub(start).Seconds()
	return output, nil
}

// StartGeneration queues a job and hands it to a single worker goroutine.
// The goroutine is the job's only writer.
func (o *orchestrator) StartGeneration(ctx context.Context, input *StartGenerationInput) (*StartGenerationOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.Player1Personality == "" {
		vb.RequiredField("player1_personality")
	}
	if input.Player2Personality == "" {
		vb.RequiredField("player2_personality")
	}
	if input.Count < 0 || input.Count > o.maxWeapons {
		vb.Fieldf("count", "must be between 1 and %d", o.maxWeapons)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	job := &entities.GenerationJob{
		ID:     o.idGen.Generate(),
		Status: entities.JobStatusQueued,
	}

	createOutput, err := o.jobRepo.Create(ctx, jobs.CreateInput{
		Job: job,
		TTL: o.jobTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create job")
	}

	o.wg.Add(1)
	go o.runJob(createOutput.Job, input)

	return &StartGenerationOutput{
		JobID:  createOutput.Job.ID,
		Status: createOutput.Job.Status,
	}, nil
}

// runJob drives one asynchronous round. It never shares the job struct with
// other writers; failures land on the record as a failed status.
func (o *orchestrator) runJob(job *entities.GenerationJob, input *StartGenerationInput) {
	defer o.wg.Done()

	// The request context dies with the HTTP call, the job must not
	ctx := context.Background()

	theme := input.ArenaTheme
	if theme == "" {
		theme = forge.DefaultArenaTheme
	}

	count := input.Count
	if count == 0 {
		count = o.maxWeapons
	}

	fail := func(err error) {
		slog.Error("generation job failed",
			"job_id", job.ID,
			"error", err.Error())
		job.Status = entities.JobStatusFailed
		job.Error = errors.GetMessage(err)
		if updateErr := o.jobRepo.Update(ctx, job); updateErr != nil {
			slog.Error("failed to record job failure",
				"job_id", job.ID,
				"error", updateErr.Error())
		}
		o.recordGeneration(nil, 0, false)
	}

	start := o.clock.Now()

	job.Status = entities.JobStatusProcessing
	job.Progress = 10
	if err := o.jobRepo.Update(ctx, job); err != nil {
		fail(err)
		return
	}

	powerLevel := averagePower(input.Player1Power, input.Player2Power)
	timestamp := start.Unix()
	weapons := make([]entities.WeaponRecord, 0, count)

	for i := int32(0); i < count; i++ {
		player := int32(1)
		personality := input.Player1Personality
		if i%2 == 1 {
			player = 2
			personality = input.Player2Personality
		}

		job.Progress = min(10+i*20, 99)
		if err := o.jobRepo.Update(ctx, job); err != nil {
			fail(err)
			return
		}

		composeOutput, err := o.forge.ComposeWeapon(ctx, &forge.ComposeWeaponInput{
			Personality: personality,
			ArenaTheme:  theme,
			Player:      player,
			PowerLevel:  powerLevel,
		})
		if err != nil {
			fail(errors.Wrapf(err, "failed to compose weapon %d", i))
			return
		}
		weapon := composeOutput.Weapon

		filename := fmt.Sprintf("weapon_%s_%d_%d.obj", job.ID, timestamp, i)
		path, _, err := o.writeMesh(ctx, weapon.Description, filename)
		if err != nil {
			fail(errors.Wrapf(err, "failed to write mesh for weapon %d", i))
			return
		}
		weapon.FileLocation = path
		weapons = append(weapons, *weapon)

		job.Progress = min(30+i*17, 99)
		if err := o.jobRepo.Update(ctx, job); err != nil {
			fail(err)
			return
		}
	}

	job.Status = entities.JobStatusCompleted
	job.Progress = 100
	job.Weapons = weapons
	if err := o.jobRepo.Update(ctx, job); err != nil {
		fail(err)
		return
	}

	elapsed := o.clock.Now().Sub(start)
	if o.stats != nil {
		o.stats.RecordTheme(theme)
	}
	o.recordGeneration(weapons, elapsed, true)

	slog.Info("generation job completed",
		"job_id", job.ID,
		"count", len(weapons),
		"elapsed", elapsed)
}

// averagePower mirrors the forge aggregation for the async path
func averagePower(p1, p2 *int32) *int32 {
	switch {
	case p1 != nil && p2 != nil:
		avg := (*p1 + *p2) / 2
		return &avg
	case p1 != nil:
		return p1
	case p2 != nil:
		return p2
	default:
		return nil
	}
}

// GetJob returns the job payload for polling
func (o *orchestrator) GetJob(ctx context.Context, input *GetJobInput) (*GetJobOutput, error) {
	if input == nil || input.JobID == "" {
		return nil, errors.InvalidArgument("job ID is required")
	}

	getOutput, err := o.jobRepo.Get(ctx, jobs.GetInput{JobID: input.JobID})
	if err != nil {
		return nil, err
	}

	return &GetJobOutput{Job: getOutput.Job}, nil
}

// CleanupJob removes the job's artifact files, then its record. Later polls
// return NotFound.
func (o *orchestrator) CleanupJob(ctx context.Context, input *CleanupJobInput) (*CleanupJobOutput, error) {
	if input == nil || input.JobID == "" {
		return nil, errors.InvalidArgument("job ID is required")
	}

	getOutput, err := o.jobRepo.Get(ctx, jobs.GetInput{JobID: input.JobID})
	if err != nil {
		return nil, err
	}

	filesDeleted := int32(0)
	for _, weapon := range getOutput.Job.Weapons {
		if weapon.FileLocation == "" {
			continue
		}
		filename := filepath.Base(weapon.FileLocation)
		if err := o.artifacts.Delete(filename); err != nil {
			if errors.IsNotFound(err) {
				continue
			}
			return nil, errors.Wrapf(err, "failed to delete %s", filename)
		}
		filesDeleted++
	}

	if _, err := o.jobRepo.Delete(ctx, jobs.DeleteInput{JobID: input.JobID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete job record")
	}

	slog.Info("cleaned up generation job",
		"job_id", input.JobID,
		"files_deleted", filesDeleted)

	return &CleanupJobOutput{FilesDeleted: filesDeleted}, nil
}

// Wait blocks until all job goroutines finish. Shutdown and tests use it.
func (o *orchestrator) Wait() {
	o.wg.Wait()
}
