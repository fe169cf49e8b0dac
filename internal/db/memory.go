package db

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// ErrEmptyBatch mirrors Firestore's refusal to commit a batch with no writes.
var ErrEmptyBatch = errors.New("cannot commit empty batch")

// Memory is an in-memory Store used for dry runs and tests. It records every
// applied write in order so callers can inspect what a run would have sent.
type Memory struct {
	mu       sync.Mutex
	docs     map[string]map[string]any
	writeLog []string
	commits  []int
	setCalls int

	// CommitErr, when set, makes every batch commit fail with it.
	CommitErr error
	// SetErr, when set, makes every direct Set fail with it.
	SetErr error
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{docs: make(map[string]map[string]any)}
}

// Set creates or overwrites collection/id.
func (m *Memory) Set(ctx context.Context, collection, id string, data any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetErr != nil {
		return m.SetErr
	}
	m.setCalls++
	m.put(collection, id, data)
	return nil
}

// NewBatch starts an empty batch; nothing is visible until Commit.
func (m *Memory) NewBatch() Batch {
	return &memoryBatch{store: m}
}

// Doc returns the stored document at collection/id.
func (m *Memory) Doc(collection, id string) (any, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.docs[collection][id]
	return d, ok
}

// Count returns the number of documents in a collection.
func (m *Memory) Count(collection string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.docs[collection])
}

// IDs returns the sorted document ids of a collection.
func (m *Memory) IDs(collection string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, len(m.docs[collection]))
	for id := range m.docs[collection] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Writes returns "collection/id" for every applied write, in apply order.
func (m *Memory) Writes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.writeLog...)
}

// Commits returns the size of each successful batch commit.
func (m *Memory) Commits() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int(nil), m.commits...)
}

// SetCalls returns the number of successful direct Set calls.
func (m *Memory) SetCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.setCalls
}

func (m *Memory) put(collection, id string, data any) {
	col, ok := m.docs[collection]
	if !ok {
		col = make(map[string]any)
		m.docs[collection] = col
	}
	col[id] = data
	m.writeLog = append(m.writeLog, collection+"/"+id)
}

type memoryWrite struct {
	collection string
	id         string
	data       any
}

type memoryBatch struct {
	store     *Memory
	writes    []memoryWrite
	committed bool
}

func (b *memoryBatch) Set(collection, id string, data any) {
	b.writes = append(b.writes, memoryWrite{collection: collection, id: id, data: data})
}

func (b *memoryBatch) Commit(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if b.committed {
		return errors.New("batch already committed")
	}
	if len(b.writes) == 0 {
		return ErrEmptyBatch
	}

	b.store.mu.Lock()
	defer b.store.mu.Unlock()
	if b.store.CommitErr != nil {
		return b.store.CommitErr
	}
	for _, w := range b.writes {
		b.store.put(w.collection, w.id, w.data)
	}
	b.store.commits = append(b.store.commits, len(b.writes))
	b.committed = true
	return nil
}
