// Package catalog defines the browsable domain entities (works and their
// chapters) and the repository contract used to persist them.
package catalog

import (
	"fmt"
	"strings"
)

// WorkKind is the closed category of a work.
type WorkKind string

const (
	// KindManga marks a manga-style work.
	KindManga WorkKind = "manga"
	// KindRanobe marks a light-novel-style work.
	KindRanobe WorkKind = "ranobe"
)

// ParseWorkKind converts a user-supplied token into a WorkKind.
func ParseWorkKind(token string) (WorkKind, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "manga":
		return KindManga, nil
	case "ranobe", "light novel", "lightnovel":
		return KindRanobe, nil
	default:
		return "", fmt.Errorf("unknown work kind %q", token)
	}
}

// String returns the canonical token for the kind.
func (k WorkKind) String() string { return string(k) }

// Work is the top-level browsable catalog entity.
// ID is nil until the work has been persisted and immutable afterwards.
type Work struct {
	ID          *int64   `db:"id"`
	Kind        WorkKind `db:"kind"`
	Title       string   `db:"title"`
	Description string   `db:"description"`
	CoverRef    string   `db:"cover_ref"`
}

// DefaultCoverRef is stored when a work is created without a cover.
const DefaultCoverRef = "none"
