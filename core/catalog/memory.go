package catalog

import (
	"context"
	"sort"
	"sync"
)

// MemoryWorks is an in-memory WorkRepository for tests and development.
type MemoryWorks struct {
	mu     sync.RWMutex
	nextID int64
	works  map[int64]Work
}

// NewMemoryWorks constructs an empty in-memory work repository.
func NewMemoryWorks() *MemoryWorks {
	return &MemoryWorks{nextID: 1, works: make(map[int64]Work)}
}

// Insert assigns the next id and stores a copy of the draft.
func (r *MemoryWorks) Insert(_ context.Context, draft Work) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	draft.ID = &id
	r.works[id] = draft
	return id, nil
}

// GetByID returns the stored work or ErrNotFound.
func (r *MemoryWorks) GetByID(_ context.Context, id int64) (Work, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.works[id]
	if !ok {
		return Work{}, ErrNotFound
	}
	return w, nil
}

// List returns all works ordered by id.
func (r *MemoryWorks) List(_ context.Context) ([]Work, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Work, 0, len(r.works))
	for _, w := range r.works {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return *out[i].ID < *out[j].ID })
	return out, nil
}

// Delete removes a work if present; missing ids are a no-op.
func (r *MemoryWorks) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.works, id)
	return nil
}

// MemoryChapters is an in-memory ChapterRepository for tests and development.
type MemoryChapters struct {
	mu       sync.RWMutex
	nextID   int64
	chapters map[int64]Chapter
}

// NewMemoryChapters constructs an empty in-memory chapter repository.
func NewMemoryChapters() *MemoryChapters {
	return &MemoryChapters{nextID: 1, chapters: make(map[int64]Chapter)}
}

// Insert assigns the next id and stores a copy of the draft.
func (r *MemoryChapters) Insert(_ context.Context, draft Chapter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	draft.ID = &id
	r.chapters[id] = draft
	return id, nil
}

// GetByID returns the stored chapter or ErrNotFound.
func (r *MemoryChapters) GetByID(_ context.Context, id int64) (Chapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ch, ok := r.chapters[id]
	if !ok {
		return Chapter{}, ErrNotFound
	}
	return ch, nil
}

// ListByWork returns the chapters of a work in insertion order.
func (r *MemoryChapters) ListByWork(_ context.Context, workID int64) ([]Chapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Chapter{}
	for _, ch := range r.chapters {
		if ch.WorkID == workID {
			out = append(out, ch)
		}
	}
	sort.Slice(out, func(i, j int) bool { return *out[i].ID < *out[j].ID })
	return out, nil
}

// Delete removes a chapter if present; missing ids are a no-op.
func (r *MemoryChapters) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.chapters, id)
	return nil
}
