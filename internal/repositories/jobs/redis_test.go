package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Samer-Gassouma/aeon-generator/internal/entities"
	"github.com/Samer-Gassouma/aeon-generator/internal/errors"
	"github.com/Samer-Gassouma/aeon-generator/internal/pkg/clock"
	"github.com/Samer-Gassouma/aeon-generator/internal/testutils"
)

func newTestRepository(t *testing.T) Repository {
	t.Helper()

	client, cleanup := testutils.CreateTestRedisClient(t)
	t.Cleanup(cleanup)

	repo, err := NewRedisRepository(&Config{
		Client: client,
		Clock:  &clock.Fixed{T: time.Unix(1700000000, 0)},
	})
	require.NoError(t, err)

	return repo
}

func TestCreateAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	createOutput, err := repo.Create(ctx, CreateInput{
		Job: &entities.GenerationJob{ID: "job_1"},
	})
	require.NoError(t, err)
	assert.Equal(t, entities.JobStatusQueued, createOutput.Job.Status)
	assert.Equal(t, int64(1700000000), createOutput.Job.CreatedAt)

	getOutput, err := repo.Get(ctx, GetInput{JobID: "job_1"})
	require.NoError(t, err)
	assert.Equal(t, "job_1", getOutput.Job.ID)
	assert.Equal(t, entities.JobStatusQueued, getOutput.Job.Status)
	assert.EqualValues(t, 0, getOutput.Job.Progress)
}

func TestCreate_DuplicateIDRejected(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, CreateInput{Job: &entities.GenerationJob{ID: "job_1"}})
	require.NoError(t, err)

	_, err = repo.Create(ctx, CreateInput{Job: &entities.GenerationJob{ID: "job_1"}})
	require.Error(t, err)
	assert.Equal(t, errors.CodeAlreadyExists, errors.GetCode(err))
}

func TestGet_UnknownJobIsNotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Get(context.Background(), GetInput{JobID: "missing"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestUpdate_ForwardTransitions(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	job := &entities.GenerationJob{ID: "job_1"}
	_, err := repo.Create(ctx, CreateInput{Job: job})
	require.NoError(t, err)

	job.Status = entities.JobStatusProcessing
	job.Progress = 10
	require.NoError(t, repo.Update(ctx, job))

	job.Status = entities.JobStatusCompleted
	job.Progress = 100
	job.Weapons = []entities.WeaponRecord{{ID: "weapon_1", Name: "Brutal Axe of Flame"}}
	require.NoError(t, repo.Update(ctx, job))

	getOutput, err := repo.Get(ctx, GetInput{JobID: "job_1"})
	require.NoError(t, err)
	assert.Equal(t, entities.JobStatusCompleted, getOutput.Job.Status)
	assert.EqualValues(t, 100, getOutput.Job.Progress)
	require.Len(t, getOutput.Job.Weapons, 1)
}

func TestUpdate_RegressionRejected(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	job := &entities.GenerationJob{ID: "job_1"}
	_, err := repo.Create(ctx, CreateInput{Job: job})
	require.NoError(t, err)

	job.Status = entities.JobStatusCompleted
	require.NoError(t, repo.Update(ctx, job))

	job.Status = entities.JobStatusProcessing
	err = repo.Update(ctx, job)
	require.Error(t, err)
	assert.True(t, errors.IsFailedPrecondition(err))
}

func TestDelete_RemovesRecord(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	job := &entities.GenerationJob{ID: "job_1"}
	_, err := repo.Create(ctx, CreateInput{Job: job})
	require.NoError(t, err)

	job.Status = entities.JobStatusCompleted
	job.Weapons = []entities.WeaponRecord{{ID: "w1"}, {ID: "w2"}}
	require.NoError(t, repo.Update(ctx, job))

	deleteOutput, err := repo.Delete(ctx, DeleteInput{JobID: "job_1"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleteOutput.WeaponsDeleted)

	_, err = repo.Get(ctx, GetInput{JobID: "job_1"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestDelete_UnknownJobIsNotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Delete(context.Background(), DeleteInput{JobID: "missing"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestCreate_TTLExpiresRecord(t *testing.T) {
	mr, client := testutils.CreateTestRedisServer(t)

	repo, err := NewRedisRepository(&Config{
		Client: client,
		Clock:  clock.New(),
	})
	require.NoError(t, err)

	ctx := context.Background()
	_, err = repo.Create(ctx, CreateInput{
		Job: &entities.GenerationJob{ID: "job_1"},
		TTL: time.Minute,
	})
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = repo.Get(ctx, GetInput{JobID: "job_1"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}
