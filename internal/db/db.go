// Package db provides the Firestore client used by the seeders, behind a small
// Store interface so the seed logic can also run against an in-memory store.
package db

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"github.com/unityleagues/unity-data/internal/config"
)

// emulatorProjectID is used when talking to the emulator without an explicit
// project. The emulator accepts any id; the demo- prefix keeps it offline.
const emulatorProjectID = "demo-unity"

// Store is the write surface the seeders need: keyed full-overwrite upserts
// and batched writes with an explicit commit.
type Store interface {
	Set(ctx context.Context, collection, id string, data any) error
	NewBatch() Batch
}

// Batch groups writes that are applied atomically on Commit.
type Batch interface {
	Set(collection, id string, data any)
	Commit(ctx context.Context) error
}

var (
	_ Store = (*Client)(nil)
	_ Store = (*Memory)(nil)
)

// Client wraps firestore.Client with the Store interface.
type Client struct {
	fs *firestore.Client
}

// New loads the service-account credential and opens a Firestore client.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	projectID := cfg.ProjectID
	var opts []option.ClientOption

	if cfg.UsesEmulator() {
		// The SDK picks up FIRESTORE_EMULATOR_HOST itself and skips auth.
		if projectID == "" {
			projectID = emulatorProjectID
		}
	} else {
		if _, err := os.Stat(cfg.CredentialsFile); err != nil {
			return nil, fmt.Errorf("read credentials file: %w", err)
		}
		if projectID == "" {
			projectID = firestore.DetectProjectID
		}
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	fs, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("create firestore client: %w", err)
	}
	return &Client{fs: fs}, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	return c.fs.Close()
}

// Set creates or fully overwrites collection/id with data.
func (c *Client) Set(ctx context.Context, collection, id string, data any) error {
	if _, err := c.fs.Collection(collection).Doc(id).Set(ctx, data); err != nil {
		return fmt.Errorf("set %s/%s: %w", collection, id, err)
	}
	return nil
}

// NewBatch starts an empty write batch.
func (c *Client) NewBatch() Batch {
	return &firestoreBatch{client: c.fs, wb: c.fs.Batch()}
}

type firestoreBatch struct {
	client *firestore.Client
	wb     *firestore.WriteBatch
}

func (b *firestoreBatch) Set(collection, id string, data any) {
	b.wb.Set(b.client.Collection(collection).Doc(id), data)
}

func (b *firestoreBatch) Commit(ctx context.Context) error {
	if _, err := b.wb.Commit(ctx); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}
	return nil
}
