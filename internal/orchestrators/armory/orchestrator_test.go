package armory_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Samer-Gassouma/aeon-generator/internal/artifacts"
	"github.com/Samer-Gassouma/aeon-generator/internal/clients/meshgen"
	meshgenmock "github.com/Samer-Gassouma/aeon-generator/internal/clients/meshgen/mock"
	"github.com/Samer-Gassouma/aeon-generator/internal/config"
	"github.com/Samer-Gassouma/aeon-generator/internal/entities"
	"github.com/Samer-Gassouma/aeon-generator/internal/errors"
	"github.com/Samer-Gassouma/aeon-generator/internal/orchestrators/armory"
	"github.com/Samer-Gassouma/aeon-generator/internal/orchestrators/forge"
	forgemock "github.com/Samer-Gassouma/aeon-generator/internal/orchestrators/forge/mock"
	"github.com/Samer-Gassouma/aeon-generator/internal/pkg/clock"
	"github.com/Samer-Gassouma/aeon-generator/internal/pkg/idgen"
	"github.com/Samer-Gassouma/aeon-generator/internal/pkg/roller"
	"github.com/Samer-Gassouma/aeon-generator/internal/repositories/jobs"
	jobsmock "github.com/Samer-Gassouma/aeon-generator/internal/repositories/jobs/mock"
	"github.com/Samer-Gassouma/aeon-generator/internal/repositories/personalities"
	"github.com/Samer-Gassouma/aeon-generator/internal/stats"
	"github.com/Samer-Gassouma/aeon-generator/internal/testutils"
)

type testDeps struct {
	service   armory.Service
	artifacts artifacts.Store
	stats     *stats.Collector
}

func newTestArmory(t *testing.T, forgeSvc forge.Service, mesh meshgen.Client) testDeps {
	t.Helper()

	if forgeSvc == nil {
		repo, err := personalities.NewMemoryRepository(&personalities.Config{})
		require.NoError(t, err)

		forgeSvc, err = forge.NewOrchestrator(&forge.Config{
			PersonalityRepo: repo,
			Roller:          roller.New(),
			IDGenerator:     idgen.NewSequential("weapon"),
			Stats: config.StatRanges{
				DamageMin: 30, DamageMax: 100,
				SpeedMin: 20, SpeedMax: 90,
				DamageClampMin: 20, DamageClampMax: 100,
				SpeedClampMin: 10, SpeedClampMax: 100,
			},
		})
		require.NoError(t, err)
	}

	client, cleanup := testutils.CreateTestRedisClient(t)
	t.Cleanup(cleanup)

	jobRepo, err := jobs.NewRedisRepository(&jobs.Config{
		Client: client,
		Clock:  clock.New(),
	})
	require.NoError(t, err)

	store, err := artifacts.NewDirStore(&artifacts.Config{Dir: t.TempDir()})
	require.NoError(t, err)

	collector := stats.New(clock.New())

	service, err := armory.NewOrchestrator(&armory.Config{
		Forge:       forgeSvc,
		JobRepo:     jobRepo,
		Artifacts:   store,
		Clock:       clock.New(),
		IDGenerator: idgen.NewSequential("job"),
		MeshClient:  mesh,
		Stats:       collector,
	})
	require.NoError(t, err)

	return testDeps{service: service, artifacts: store, stats: collector}
}

func TestGenerateWeapons_WritesMeshes(t *testing.T) {
	deps := newTestArmory(t, nil, nil)

	output, err := deps.service.GenerateWeapons(context.Background(), &armory.GenerateWeaponsInput{
		Player1Personality: "aggressive_warrior",
		Player2Personality: "strategic_mage",
		ArenaTheme:         "volcanic",
		Count:              4,
	})
	require.NoError(t, err)
	require.Len(t, output.Weapons, 4)
	assert.Equal(t, "volcanic", output.ArenaTheme)

	for _, weapon := range output.Weapons {
		require.NotEmpty(t, weapon.FileLocation)

		content, err := os.ReadFile(weapon.FileLocation)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(content), "# AEON Weapon Model - Generated by AI"))
		assert.Contains(t, string(content), "# Description: "+weapon.Description)
	}

	snapshot := deps.stats.Snapshot()
	assert.EqualValues(t, 4, snapshot.TotalGenerated)
	assert.EqualValues(t, 1, snapshot.SuccessfulGenerations)
	assert.EqualValues(t, 1, snapshot.ArenaThemeCounts["volcanic"])
}

func TestCreateModel_BackendMesh(t *testing.T) {
	ctrl := gomock.NewController(t)
	mesh := meshgenmock.NewMockClient(ctrl)
	mesh.EXPECT().Generate(gomock.Any(), &meshgen.GenerateInput{Description: "a crystal orb"}).
		Return(&meshgen.GenerateOutput{OBJ: []byte("# Backend Mesh\nv 0 0 0\n")}, nil)

	deps := newTestArmory(t, nil, mesh)

	output, err := deps.service.CreateModel(context.Background(), &armory.CreateModelInput{
		Description: "a crystal orb",
		Filename:    "orb.obj",
	})
	require.NoError(t, err)
	assert.True(t, output.FromBackend)

	content, err := os.ReadFile(output.Path)
	require.NoError(t, err)
	assert.Equal(t, "# Backend Mesh\nv 0 0 0\n", string(content))
}

func TestCreateModel_BackendFailureFallsBackToPlaceholder(t *testing.T) {
	ctrl := gomock.NewController(t)
	mesh := meshgenmock.NewMockClient(ctrl)
	mesh.EXPECT().Generate(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("sidecar down"))

	deps := newTestArmory(t, nil, mesh)

	output, err := deps.service.CreateModel(context.Background(), &armory.CreateModelInput{
		Description: "a brutal battle axe",
		Filename:    "axe.obj",
	})
	require.NoError(t, err)
	assert.False(t, output.FromBackend)

	content, err := os.ReadFile(output.Path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# Axe Model")
}

func TestCreateModel_DefaultFilename(t *testing.T) {
	deps := newTestArmory(t, nil, nil)

	output, err := deps.service.CreateModel(context.Background(), &armory.CreateModelInput{
		Description: "a shadow dagger",
	})
	require.NoError(t, err)
	assert.Regexp(t, `^weapon_\d+\.obj$`, output.Filename)
}

func TestCreateModel_EmptyDescriptionRejected(t *testing.T) {
	deps := newTestArmory(t, nil, nil)

	_, err := deps.service.CreateModel(context.Background(), &armory.CreateModelInput{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestBatchCreateModels_ContinuesPastFailures(t *testing.T) {
	deps := newTestArmory(t, nil, nil)

	output, err := deps.service.BatchCreateModels(context.Background(), &armory.BatchCreateModelsInput{
		Items: []armory.BatchItem{
			{Name: "Brutal Axe", Description: "a brutal axe", Filename: "axe.obj"},
			{Name: "Broken", Description: ""},
			{Description: "a crystal orb", Filename: "orb.obj"},
		},
	})
	require.NoError(t, err)
	require.Len(t, output.Results, 3)
	assert.EqualValues(t, 2, output.Successful)
	assert.EqualValues(t, 1, output.Failed)

	assert.Equal(t, "completed", output.Results[0].Status)
	assert.Equal(t, "failed", output.Results[1].Status)
	assert.NotEmpty(t, output.Results[1].Error)
	assert.Equal(t, "completed", output.Results[2].Status)
	assert.Equal(t, "Weapon_2", output.Results[2].Name)
}

func TestJobLifecycle(t *testing.T) {
	deps := newTestArmory(t, nil, nil)
	ctx := context.Background()

	startOutput, err := deps.service.StartGeneration(ctx, &armory.StartGenerationInput{
		Player1Personality: "aggressive_warrior",
		Player2Personality: "agile_assassin",
		ArenaTheme:         "shadow",
		Count:              4,
	})
	require.NoError(t, err)
	assert.Equal(t, "job_1", startOutput.JobID)
	assert.Equal(t, entities.JobStatusQueued, startOutput.Status)

	deps.service.Wait()

	getOutput, err := deps.service.GetJob(ctx, &armory.GetJobInput{JobID: startOutput.JobID})
	require.NoError(t, err)
	assert.Equal(t, entities.JobStatusCompleted, getOutput.Job.Status)
	assert.EqualValues(t, 100, getOutput.Job.Progress)
	require.Len(t, getOutput.Job.Weapons, 4)

	for i, weapon := range getOutput.Job.Weapons {
		if i%2 == 0 {
			assert.EqualValues(t, 1, weapon.Player)
		} else {
			assert.EqualValues(t, 2, weapon.Player)
		}
		_, err := os.Stat(weapon.FileLocation)
		require.NoError(t, err, "weapon %d mesh missing", i)
	}

	cleanupOutput, err := deps.service.CleanupJob(ctx, &armory.CleanupJobInput{JobID: startOutput.JobID})
	require.NoError(t, err)
	assert.EqualValues(t, 4, cleanupOutput.FilesDeleted)

	for _, weapon := range getOutput.Job.Weapons {
		_, err := os.Stat(weapon.FileLocation)
		assert.True(t, os.IsNotExist(err))
	}

	_, err = deps.service.GetJob(ctx, &armory.GetJobInput{JobID: startOutput.JobID})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestStartGeneration_ComposeFailureMarksJobFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	forgeSvc := forgemock.NewMockService(ctrl)
	forgeSvc.EXPECT().ComposeWeapon(gomock.Any(), gomock.Any()).
		Return(nil, errors.FailedPrecondition("personality has empty effects vocabulary"))

	deps := newTestArmory(t, forgeSvc, nil)
	ctx := context.Background()

	startOutput, err := deps.service.StartGeneration(ctx, &armory.StartGenerationInput{
		Player1Personality: "broken",
		Player2Personality: "broken",
		Count:              2,
	})
	require.NoError(t, err)

	deps.service.Wait()

	getOutput, err := deps.service.GetJob(ctx, &armory.GetJobInput{JobID: startOutput.JobID})
	require.NoError(t, err)
	assert.Equal(t, entities.JobStatusFailed, getOutput.Job.Status)
	assert.Contains(t, getOutput.Job.Error, "empty effects vocabulary")
	assert.Empty(t, getOutput.Job.Weapons)

	files, err := deps.artifacts.List()
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestStartGeneration_CountOutOfBoundsRejected(t *testing.T) {
	deps := newTestArmory(t, nil, nil)
	ctx := context.Background()

	_, err := deps.service.StartGeneration(ctx, &armory.StartGenerationInput{
		Player1Personality: "aggressive_warrior",
		Player2Personality: "strategic_mage",
		Count:              6,
	})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, errors.GetMessage(err), "count")

	_, err = deps.service.StartGeneration(ctx, &armory.StartGenerationInput{
		Player1Personality: "aggressive_warrior",
		Player2Personality: "strategic_mage",
		Count:              -1,
	})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestRunJob_ProgressNeverExceedsHundred(t *testing.T) {
	ctrl := gomock.NewController(t)

	var progressWrites []int32
	jobRepo := jobsmock.NewMockRepository(ctrl)
	jobRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input jobs.CreateInput) (*jobs.CreateOutput, error) {
			return &jobs.CreateOutput{Job: input.Job}, nil
		})
	jobRepo.EXPECT().Update(gomock.Any(), gomock.Any()).AnyTimes().
		DoAndReturn(func(_ context.Context, job *entities.GenerationJob) error {
			progressWrites = append(progressWrites, job.Progress)
			return nil
		})

	repo, err := personalities.NewMemoryRepository(&personalities.Config{})
	require.NoError(t, err)

	forgeSvc, err := forge.NewOrchestrator(&forge.Config{
		PersonalityRepo: repo,
		Roller:          roller.New(),
		IDGenerator:     idgen.NewSequential("weapon"),
		Stats: config.StatRanges{
			DamageMin: 30, DamageMax: 100,
			SpeedMin: 20, SpeedMax: 90,
			DamageClampMin: 20, DamageClampMax: 100,
			SpeedClampMin: 10, SpeedClampMax: 100,
		},
		MaxWeapons: 8,
	})
	require.NoError(t, err)

	store, err := artifacts.NewDirStore(&artifacts.Config{Dir: t.TempDir()})
	require.NoError(t, err)

	service, err := armory.NewOrchestrator(&armory.Config{
		Forge:       forgeSvc,
		JobRepo:     jobRepo,
		Artifacts:   store,
		Clock:       clock.New(),
		IDGenerator: idgen.NewSequential("job"),
		MaxWeapons:  8,
	})
	require.NoError(t, err)

	_, err = service.StartGeneration(context.Background(), &armory.StartGenerationInput{
		Player1Personality: "aggressive_warrior",
		Player2Personality: "strategic_mage",
		Count:              8,
	})
	require.NoError(t, err)

	service.Wait()

	require.NotEmpty(t, progressWrites)
	for _, progress := range progressWrites {
		assert.GreaterOrEqual(t, progress, int32(0))
		assert.LessOrEqual(t, progress, int32(100))
	}
	assert.EqualValues(t, 100, progressWrites[len(progressWrites)-1])
}

func TestStartGeneration_MissingPersonalityRejected(t *testing.T) {
	deps := newTestArmory(t, nil, nil)

	_, err := deps.service.StartGeneration(context.Background(), &armory.StartGenerationInput{
		Player1Personality: "aggressive_warrior",
	})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestCleanupJob_UnknownJobIsNotFound(t *testing.T) {
	deps := newTestArmory(t, nil, nil)

	_, err := deps.service.CleanupJob(context.Background(), &armory.CleanupJobInput{JobID: "missing"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}
