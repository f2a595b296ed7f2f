package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/Samer-Gassouma/aeon-generator/internal/entities"
	"github.com/Samer-Gassouma/aeon-generator/internal/errors"
	"github.com/Samer-Gassouma/aeon-generator/internal/pkg/clock"
	redisclient "github.com/Samer-Gassouma/aeon-generator/internal/redis"
)

const (
	// Key pattern: generation_job:{job_id}
	jobKeyPrefix = "generation_job:"

	// DefaultJobTTL keeps finished jobs queryable for an hour before Redis
	// reaps them. Explicit cleanup removes them sooner.
	DefaultJobTTL = time.Hour

	errJobNil     = "job cannot be nil"
	errJobIDEmpty = "job ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for generation jobs
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Create stores a new job with the specified TTL
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Job == nil {
		return nil, errors.InvalidArgument(errJobNil)
	}
	if input.Job.ID == "" {
		return nil, errors.InvalidArgument(errJobIDEmpty)
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = DefaultJobTTL
	}

	job := input.Job
	if job.Status == "" {
		job.Status = entities.JobStatusQueued
	}
	if job.CreatedAt == 0 {
		job.CreatedAt = r.clock.Now().Unix()
	}

	jobJSON, err := json.Marshal(job)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal job")
	}

	key := r.buildKey(job.ID)

	// SetNX so a duplicate ID cannot clobber a live job
	created, err := r.client.SetNX(ctx, key, jobJSON, ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store job in Redis")
	}
	if !created {
		return nil, errors.AlreadyExists(
			fmt.Sprintf("job %s already exists", job.ID))
	}

	return &CreateOutput{Job: job}, nil
}

// Get retrieves a job by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.JobID == "" {
		return nil, errors.InvalidArgument(errJobIDEmpty)
	}

	jobJSON, err := r.client.Get(ctx, r.buildKey(input.JobID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("job not found").WithMeta("job_id", input.JobID)
		}
		return nil, errors.Wrapf(err, "failed to get job from Redis")
	}

	var job entities.GenerationJob
	if err := json.Unmarshal([]byte(jobJSON), &job); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal job")
	}

	return &GetOutput{Job: &job}, nil
}

// Update replaces a job record. The status may only move forward along the
// lifecycle; a regression indicates a writer bug and is rejected.
func (r *redisRepository) Update(ctx context.Context, job *entities.GenerationJob) error {
	if job == nil {
		return errors.InvalidArgument(errJobNil)
	}
	if job.ID == "" {
		return errors.InvalidArgument(errJobIDEmpty)
	}

	current, err := r.Get(ctx, GetInput{JobID: job.ID})
	if err != nil {
		return errors.Wrap(err, "failed to load job for update")
	}

	if job.Status != current.Job.Status && !current.Job.Status.CanTransitionTo(job.Status) {
		return errors.FailedPreconditionf(
			"job %s cannot move from %s to %s", job.ID, current.Job.Status, job.Status)
	}

	jobJSON, err := json.Marshal(job)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal job")
	}

	// KeepTTL preserves whatever expiry Create established
	err = r.client.Set(ctx, r.buildKey(job.ID), jobJSON, redis.KeepTTL).Err()
	if err != nil {
		return errors.Wrapf(err, "failed to update job in Redis")
	}

	return nil
}

// Delete removes a job record
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.JobID == "" {
		return nil, errors.InvalidArgument(errJobIDEmpty)
	}

	getOutput, err := r.Get(ctx, GetInput{JobID: input.JobID})
	if err != nil {
		return nil, err
	}

	if err := r.client.Del(ctx, r.buildKey(input.JobID)).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete job from Redis")
	}

	// nolint:gosec // weapon count is always small
	return &DeleteOutput{
		WeaponsDeleted: int32(len(getOutput.Job.Weapons)),
	}, nil
}

// buildKey creates the Redis key for a job
func (r *redisRepository) buildKey(jobID string) string {
	return jobKeyPrefix + jobID
}
