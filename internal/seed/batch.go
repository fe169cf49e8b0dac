package seed

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/unityleagues/unity-data/internal/db"
)

// MaxBatchWrites caps the writes grouped into one commit. Firestore rejects
// batches over 500 writes; 400 leaves headroom.
const MaxBatchWrites = 400

type pendingWrite struct {
	collection string
	id         string
	data       any
}

// BatchWriter accumulates writes and commits them in groups of at most limit,
// preserving the order in which they were added. A fresh store batch is built
// for every commit. Callers must Flush after the last Add.
type BatchWriter struct {
	store   db.Store
	limit   int
	limiter *rate.Limiter
	logger  *slog.Logger

	pending []pendingWrite
	commits int
	written int
}

// NewBatchWriter returns a writer committing every limit writes. A limit
// outside (0, MaxBatchWrites] falls back to MaxBatchWrites. limiter may be
// nil for unpaced commits.
func NewBatchWriter(store db.Store, limit int, limiter *rate.Limiter, logger *slog.Logger) *BatchWriter {
	if limit <= 0 || limit > MaxBatchWrites {
		limit = MaxBatchWrites
	}
	return &BatchWriter{
		store:   store,
		limit:   limit,
		limiter: limiter,
		logger:  logger,
		pending: make([]pendingWrite, 0, limit),
	}
}

// Add stages a write of data to collection/id. When the pending count reaches
// the limit the batch is committed before Add returns.
func (w *BatchWriter) Add(ctx context.Context, collection, id string, data any) error {
	w.pending = append(w.pending, pendingWrite{collection: collection, id: id, data: data})
	if len(w.pending) >= w.limit {
		return w.commit(ctx)
	}
	return nil
}

// Flush commits any staged writes. It is a no-op when nothing is pending.
func (w *BatchWriter) Flush(ctx context.Context) error {
	if len(w.pending) == 0 {
		return nil
	}
	return w.commit(ctx)
}

// Pending returns the number of staged, uncommitted writes.
func (w *BatchWriter) Pending() int { return len(w.pending) }

// Commits returns the number of successful commits.
func (w *BatchWriter) Commits() int { return w.commits }

// Written returns the number of writes committed so far.
func (w *BatchWriter) Written() int { return w.written }

func (w *BatchWriter) commit(ctx context.Context) error {
	if w.limiter != nil {
		if err := w.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("wait for commit slot: %w", err)
		}
	}

	batch := w.store.NewBatch()
	for _, p := range w.pending {
		batch.Set(p.collection, p.id, p.data)
	}
	n := len(w.pending)
	if err := batch.Commit(ctx); err != nil {
		return fmt.Errorf("commit %d (%d writes): %w", w.commits+1, n, err)
	}

	w.commits++
	w.written += n
	w.pending = make([]pendingWrite, 0, w.limit)
	w.logger.Info("Committed batch", "commit", w.commits, "writes", n)
	return nil
}
