package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/unityleagues/unity-data/internal/config"
	"github.com/unityleagues/unity-data/internal/db"
)

func TestRunSeedDryRunWritesBuiltInRecords(t *testing.T) {
	t.Setenv("LOG_LEVEL", "ERROR")

	var store *db.Memory
	err := runSeed(&runOptions{dryRun: true}, func(ctx context.Context, env *seedEnv) error {
		mem, ok := env.store.(*db.Memory)
		if !ok {
			t.Fatalf("dry run store has type %T, want *db.Memory", env.store)
		}
		store = mem

		if _, err := seedLeagues(ctx, env); err != nil {
			return err
		}
		_, err := seedVenues(ctx, env)
		return err
	})
	if err != nil {
		t.Fatalf("runSeed: %v", err)
	}

	if got := store.Count(config.LeaguesCollection); got != 3 {
		t.Errorf("leagues = %d, want 3", got)
	}
	if got := store.Count(config.PendingVenuesCollection); got != 31 {
		t.Errorf("venues = %d, want 31", got)
	}
	if got := store.Commits(); len(got) != 1 || got[0] != 31 {
		t.Errorf("commits = %v, want [31]", got)
	}
}

func TestAllCommandDryRun(t *testing.T) {
	t.Setenv("LOG_LEVEL", "ERROR")

	cmd := allCmd(&runOptions{dryRun: true})
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("all --dry-run: %v", err)
	}
}

func TestRunSeedRejectsBadManifest(t *testing.T) {
	t.Setenv("LOG_LEVEL", "ERROR")

	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte("venues:\n  - id: x\n    colour: red\n"), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	called := false
	err := runSeed(&runOptions{dryRun: true, dataFile: path}, func(ctx context.Context, env *seedEnv) error {
		called = true
		return nil
	})
	if err == nil {
		t.Fatal("expected error for manifest with unknown field")
	}
	if called {
		t.Error("seed function must not run when the manifest fails to load")
	}
}
