package catalog

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"

	"shelfbot/core/logger"
)

// PostgresWorks implements WorkRepository on top of sqlx.
// This package is the only place work/chapter SQL is issued.
type PostgresWorks struct {
	db *sqlx.DB
}

// NewPostgresWorks builds the work repository over an existing connection pool.
func NewPostgresWorks(db *sqlx.DB) *PostgresWorks {
	return &PostgresWorks{db: db}
}

// Insert stores a draft work and returns the assigned id.
func (r *PostgresWorks) Insert(ctx context.Context, draft Work) (int64, error) {
	start := time.Now()
	var id int64
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO works (kind, title, description, cover_ref)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		draft.Kind, draft.Title, draft.Description, draft.CoverRef,
	).Scan(&id)
	if err != nil {
		logger.Catalog.Error("work insert failed",
			slog.String("event", "works.insert"),
			slog.Duration("duration", logger.Took(start)),
			slog.String("err", err.Error()),
		)
		return 0, storageErr("insert work", err)
	}
	logger.Catalog.Debug("work inserted",
		slog.String("event", "works.insert"),
		slog.Int64("work_id", id),
		slog.Duration("duration", logger.Took(start)),
	)
	return id, nil
}

// GetByID fetches one work or ErrNotFound.
func (r *PostgresWorks) GetByID(ctx context.Context, id int64) (Work, error) {
	var w Work
	err := r.db.GetContext(ctx, &w,
		`SELECT id, kind, title, description, cover_ref FROM works WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Work{}, ErrNotFound
	}
	if err != nil {
		return Work{}, storageErr("get work", err)
	}
	return w, nil
}

// List returns all works ordered by id.
func (r *PostgresWorks) List(ctx context.Context) ([]Work, error) {
	works := []Work{}
	err := r.db.SelectContext(ctx, &works,
		`SELECT id, kind, title, description, cover_ref FROM works ORDER BY id`)
	if err != nil {
		return nil, storageErr("list works", err)
	}
	return works, nil
}

// Delete removes a work. Deleting a missing id succeeds.
// Chapters of the work are intentionally left in place.
func (r *PostgresWorks) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM works WHERE id = $1`, id); err != nil {
		return storageErr("delete work", err)
	}
	return nil
}

// PostgresChapters implements ChapterRepository on top of sqlx.
type PostgresChapters struct {
	db *sqlx.DB
}

// NewPostgresChapters builds the chapter repository over an existing connection pool.
func NewPostgresChapters(db *sqlx.DB) *PostgresChapters {
	return &PostgresChapters{db: db}
}

// Insert stores a draft chapter and returns the assigned id.
func (r *PostgresChapters) Insert(ctx context.Context, draft Chapter) (int64, error) {
	start := time.Now()
	var id int64
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO chapters (work_id, uploader_id, label, link)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		draft.WorkID, draft.UploaderID, draft.Label, draft.Link,
	).Scan(&id)
	if err != nil {
		logger.Catalog.Error("chapter insert failed",
			slog.String("event", "chapters.insert"),
			slog.Int64("work_id", draft.WorkID),
			slog.Duration("duration", logger.Took(start)),
			slog.String("err", err.Error()),
		)
		return 0, storageErr("insert chapter", err)
	}
	logger.Catalog.Debug("chapter inserted",
		slog.String("event", "chapters.insert"),
		slog.Int64("chapter_id", id),
		slog.Int64("work_id", draft.WorkID),
		slog.Duration("duration", logger.Took(start)),
	)
	return id, nil
}

// GetByID fetches one chapter or ErrNotFound.
func (r *PostgresChapters) GetByID(ctx context.Context, id int64) (Chapter, error) {
	var ch Chapter
	err := r.db.GetContext(ctx, &ch,
		`SELECT id, work_id, uploader_id, label, link FROM chapters WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Chapter{}, ErrNotFound
	}
	if err != nil {
		return Chapter{}, storageErr("get chapter", err)
	}
	return ch, nil
}

// ListByWork returns the chapters of a work in insertion order.
func (r *PostgresChapters) ListByWork(ctx context.Context, workID int64) ([]Chapter, error) {
	chapters := []Chapter{}
	err := r.db.SelectContext(ctx, &chapters,
		`SELECT id, work_id, uploader_id, label, link FROM chapters
		 WHERE work_id = $1 ORDER BY id`, workID)
	if err != nil {
		return nil, storageErr("list chapters", err)
	}
	return chapters, nil
}

// Delete removes a chapter. Deleting a missing id succeeds.
func (r *PostgresChapters) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM chapters WHERE id = $1`, id); err != nil {
		return storageErr("delete chapter", err)
	}
	return nil
}
