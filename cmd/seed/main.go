// Command seed populates Firestore with the Unity app's static league and
// venue records.
//
// Usage:
//
//	unity-seed leagues
//	unity-seed venues
//	unity-seed all --dry-run
//	unity-seed venues --data venues.yaml
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/unityleagues/unity-data/internal/config"
	"github.com/unityleagues/unity-data/internal/db"
	"github.com/unityleagues/unity-data/internal/seed"
)

var (
	logLevel = new(slog.LevelVar)
	logger   = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
)

// runOptions are the persistent flags shared by every subcommand.
type runOptions struct {
	dryRun   bool
	dataFile string
}

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	opts := &runOptions{}
	root := &cobra.Command{
		Use:   "unity-seed",
		Short: "Seed Unity leagues and venues into Firestore",
	}
	root.PersistentFlags().BoolVar(&opts.dryRun, "dry-run", false, "Write to an in-memory store instead of Firestore")
	root.PersistentFlags().StringVar(&opts.dataFile, "data", "", "YAML manifest replacing the built-in records")

	root.AddCommand(leaguesCmd(opts))
	root.AddCommand(venuesCmd(opts))
	root.AddCommand(allCmd(opts))

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// leagues / venues / all commands
// --------------------------------------------------------------------------

func leaguesCmd(opts *runOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "leagues",
		Short: "Upsert league records into the leagues collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(opts, func(ctx context.Context, env *seedEnv) error {
				_, err := seedLeagues(ctx, env)
				return err
			})
		},
	}
}

func venuesCmd(opts *runOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "venues",
		Short: "Batch-write venue records into the pending_venues collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(opts, func(ctx context.Context, env *seedEnv) error {
				_, err := seedVenues(ctx, env)
				return err
			})
		},
	}
}

func allCmd(opts *runOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Seed leagues, then venues",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(opts, func(ctx context.Context, env *seedEnv) error {
				var total seed.Result
				r, err := seedLeagues(ctx, env)
				if err != nil {
					return err
				}
				total.Add(r)

				r, err = seedVenues(ctx, env)
				if err != nil {
					return err
				}
				total.Add(r)

				env.logger.Info("All seeds finished", "summary", total.Summary())
				return nil
			})
		},
	}
}

func seedLeagues(ctx context.Context, env *seedEnv) (seed.Result, error) {
	start := time.Now()
	leagues := seed.BuildLeagues(env.manifest.Leagues, start.UTC())
	result, err := seed.SeedLeagues(ctx, env.store, leagues, env.logger)
	if err != nil {
		return result, fmt.Errorf("seed leagues: %w", err)
	}
	env.logger.Info("League seed finished",
		"duration", time.Since(start).Round(time.Millisecond),
		"summary", result.Summary())
	return result, nil
}

func seedVenues(ctx context.Context, env *seedEnv) (seed.Result, error) {
	start := time.Now()
	writer := seed.NewBatchWriter(env.store, seed.MaxBatchWrites, commitLimiter(env.cfg), env.logger)
	result, err := seed.SeedVenues(ctx, writer, env.manifest.Venues, env.logger)
	if err != nil {
		return result, fmt.Errorf("seed venues: %w", err)
	}
	env.logger.Info("Venue seed finished",
		"duration", time.Since(start).Round(time.Millisecond),
		"summary", result.Summary())
	return result, nil
}

// commitLimiter paces batch commits when SEED_COMMITS_PER_SECOND is set.
func commitLimiter(cfg *config.Config) *rate.Limiter {
	if cfg.CommitsPerSecond <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(cfg.CommitsPerSecond), 1)
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// seedEnv is everything a seed command needs once setup succeeded.
type seedEnv struct {
	cfg      *config.Config
	store    db.Store
	manifest *seed.Manifest
	logger   *slog.Logger
}

// runSeed handles config loading, manifest loading, store connection and
// context cancellation.
func runSeed(opts *runOptions, fn func(ctx context.Context, env *seedEnv) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logLevel.Set(cfg.LogLevel)

	runLogger := logger.With("run_id", uuid.NewString())

	manifest := seed.DefaultManifest()
	if opts.dataFile != "" {
		manifest, err = seed.LoadManifest(opts.dataFile)
		if err != nil {
			return fmt.Errorf("load manifest: %w", err)
		}
		runLogger.Info("Loaded manifest", "path", opts.dataFile,
			"leagues", len(manifest.Leagues), "venues", len(manifest.Venues))
	}

	env := &seedEnv{cfg: cfg, manifest: manifest, logger: runLogger}

	if opts.dryRun {
		runLogger.Info("Dry run: writing to in-memory store")
		env.store = db.NewMemory()
		return fn(ctx, env)
	}

	client, err := db.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to firestore: %w", err)
	}
	defer client.Close()
	runLogger.Info("Firestore connected", "emulator", cfg.UsesEmulator())

	env.store = client
	return fn(ctx, env)
}
