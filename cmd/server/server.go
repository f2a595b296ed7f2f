package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Samer-Gassouma/aeon-generator/internal/artifacts"
	"github.com/Samer-Gassouma/aeon-generator/internal/clients/meshgen"
	"github.com/Samer-Gassouma/aeon-generator/internal/clients/textgen"
	"github.com/Samer-Gassouma/aeon-generator/internal/config"
	"github.com/Samer-Gassouma/aeon-generator/internal/errors"
	v1alpha1 "github.com/Samer-Gassouma/aeon-generator/internal/handlers/api/v1alpha1"
	"github.com/Samer-Gassouma/aeon-generator/internal/orchestrators/armory"
	"github.com/Samer-Gassouma/aeon-generator/internal/orchestrators/forge"
	"github.com/Samer-Gassouma/aeon-generator/internal/pkg/clock"
	"github.com/Samer-Gassouma/aeon-generator/internal/pkg/idgen"
	"github.com/Samer-Gassouma/aeon-generator/internal/pkg/roller"
	redisclient "github.com/Samer-Gassouma/aeon-generator/internal/redis"
	"github.com/Samer-Gassouma/aeon-generator/internal/repositories/jobs"
	"github.com/Samer-Gassouma/aeon-generator/internal/repositories/personalities"
	"github.com/Samer-Gassouma/aeon-generator/internal/stats"
)

var httpPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the weapon generation HTTP server with all configured backends.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&httpPort, "port", 0, "HTTP port (overrides API_PORT)")
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Local development reads .env; absence is normal in containers
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if httpPort != 0 {
		cfg.HTTPPort = httpPort
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	redisClient, err := redisclient.NewClient(cfg.RedisEndpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer func() { _ = redisClient.Close() }()

	clk := clock.New()

	personalityRepo, err := personalities.NewMemoryRepository(&personalities.Config{
		OverlayPath: cfg.PersonalityConfigPath,
	})
	if err != nil {
		return fmt.Errorf("failed to load personality catalog: %w", err)
	}

	jobRepo, err := jobs.NewRedisRepository(&jobs.Config{
		Client: redisClient,
		Clock:  clk,
	})
	if err != nil {
		return fmt.Errorf("failed to create job repository: %w", err)
	}

	artifactStore, err := artifacts.NewDirStore(&artifacts.Config{
		Dir: cfg.WeaponOutputDir,
	})
	if err != nil {
		return fmt.Errorf("failed to open artifact store: %w", err)
	}

	var textClient textgen.Client
	if cfg.TextBackendURL != "" {
		textClient, err = textgen.New(&textgen.Config{
			BaseURL: cfg.TextBackendURL,
			APIKey:  cfg.TextBackendKey,
			Model:   cfg.TextBackendModel,
		})
		if err != nil {
			return fmt.Errorf("failed to create text client: %w", err)
		}
	}

	var meshClient meshgen.Client
	if cfg.MeshBackendURL != "" {
		meshClient, err = meshgen.New(&meshgen.Config{
			BaseURL: cfg.MeshBackendURL,
		})
		if err != nil {
			return fmt.Errorf("failed to create mesh client: %w", err)
		}
	}

	forgeService, err := forge.NewOrchestrator(&forge.Config{
		PersonalityRepo: personalityRepo,
		Roller:          roller.New(),
		IDGenerator:     idgen.NewUUID("weapon"),
		TextClient:      textClient,
		Stats:           cfg.Stats,
		MaxWeapons:      int32(cfg.MaxWeaponsPerRequest),
	})
	if err != nil {
		return fmt.Errorf("failed to create forge: %w", err)
	}

	collector := stats.New(clk)

	armoryService, err := armory.NewOrchestrator(&armory.Config{
		Forge:       forgeService,
		JobRepo:     jobRepo,
		Artifacts:   artifactStore,
		Clock:       clk,
		IDGenerator: idgen.NewUUID("job"),
		MeshClient:  meshClient,
		Stats:       collector,
		MaxWeapons:  int32(cfg.MaxWeaponsPerRequest),
	})
	if err != nil {
		return fmt.Errorf("failed to create armory: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.Config{
		Armory:                armoryService,
		PersonalityRepo:       personalityRepo,
		Artifacts:             artifactStore,
		Stats:                 collector,
		Clock:                 clk,
		TextBackendConfigured: textClient != nil,
		MeshBackendConfigured: meshClient != nil,
	})
	if err != nil {
		return fmt.Errorf("failed to create handler: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "aeon-generator",
		ErrorHandler: errors.FiberErrorHandler,
	})
	handler.RegisterRoutes(app)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting",
			"port", cfg.HTTPPort,
			"text_backend", textClient != nil,
			"mesh_backend", meshClient != nil)
		if err := app.Listen(fmt.Sprintf(":%d", cfg.HTTPPort)); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down HTTP server")

		if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
			slog.Error("shutdown error", "error", err.Error())
		}

		// Let in-flight generation jobs write their final status
		armoryService.Wait()

		slog.Info("server stopped")
		return nil
	case err := <-errChan:
		return err
	}
}
