package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"zrpg/internal/config"
	"zrpg/internal/repository/postgres"
	"zrpg/internal/seed"
	"zrpg/internal/service"

	"github.com/joho/godotenv"
)

func main() {
	// Parse command-line flags
	seedFile := flag.String("file", "seed.yaml", "Path to the YAML seed file")
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed fixtures")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && *dropTables {
		log.Fatalf("BLOCKED: cannot run --drop-tables in production environment")
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Create database connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)

	if *dropTables {
		logger.Info("dropping tables", "prefix", cfg.TablePrefix)
		if err := postgres.DropTables(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
	}

	if err := postgres.EnsureSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}
	logger.Info("schema ready", "prefix", cfg.TablePrefix)

	if *schemaOnly {
		return
	}

	// Load fixtures
	file, err := seed.Load(*seedFile)
	if err != nil {
		log.Fatalf("Failed to load seed file: %v", err)
	}

	// Seed through the service layer so validation and uniqueness apply
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	encounterService := service.NewEncounterService(postgres.NewEncounterRepository(repoConfig), logger)
	weaponService := service.NewWeaponService(postgres.NewWeaponRepository(repoConfig), logger)

	if err := seed.Run(ctx, file, encounterService, weaponService, logger); err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	logger.Info("seeding complete",
		"encounters", len(file.Encounters),
		"weapons", len(file.Weapons),
	)
}
