package catalog

import "context"

// Repository is the uniform CRUD contract shared by every entity kind.
//
// Insert takes a draft without an id and returns the store-assigned id.
// GetByID fails with ErrNotFound when no row matches. Delete is idempotent:
// removing a nonexistent id is a successful no-op. Any connectivity or
// constraint failure surfaces as a *StorageError.
type Repository[T any] interface {
	Insert(ctx context.Context, draft T) (int64, error)
	GetByID(ctx context.Context, id int64) (T, error)
	Delete(ctx context.Context, id int64) error
}

// WorkRepository persists works and answers the top-level listing query.
type WorkRepository interface {
	Repository[Work]
	// List returns all works in an order that is stable for a given store state.
	List(ctx context.Context) ([]Work, error)
}

// ChapterRepository persists chapters and answers per-work navigation.
type ChapterRepository interface {
	Repository[Chapter]
	// ListByWork returns the chapters of a work in insertion order.
	// An empty slice, not an error, is returned when none exist.
	ListByWork(ctx context.Context, workID int64) ([]Chapter, error)
}
