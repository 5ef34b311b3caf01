package catalog

import (
	"context"
	"testing"
)

func TestWorkInsertRoundTrip(t *testing.T) {
	repo := NewMemoryWorks()
	ctx := context.Background()

	draft := Work{
		Kind:        KindManga,
		Title:       "One Piece",
		Description: "Pirates.",
		CoverRef:    DefaultCoverRef,
	}
	id, err := repo.Insert(ctx, draft)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID == nil || *got.ID != id {
		t.Fatalf("id = %v, want %d", got.ID, id)
	}
	if got.Kind != draft.Kind || got.Title != draft.Title ||
		got.Description != draft.Description || got.CoverRef != draft.CoverRef {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestWorkDeleteIdempotent(t *testing.T) {
	repo := NewMemoryWorks()
	ctx := context.Background()

	id, err := repo.Insert(ctx, Work{Kind: KindRanobe, Title: "t", Description: "d", CoverRef: "none"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("second delete must be a no-op success, got %v", err)
	}
	if _, err := repo.GetByID(ctx, id); err != ErrNotFound {
		t.Fatalf("get after delete = %v, want ErrNotFound", err)
	}
}

func TestChapterListByWorkEmpty(t *testing.T) {
	works := NewMemoryWorks()
	chapters := NewMemoryChapters()
	ctx := context.Background()

	workID, err := works.Insert(ctx, Work{Kind: KindManga, Title: "t", Description: "d", CoverRef: "none"})
	if err != nil {
		t.Fatalf("insert work: %v", err)
	}

	got, err := chapters.ListByWork(ctx, workID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty chapter list, got %d", len(got))
	}
}

func TestChapterListInsertionOrder(t *testing.T) {
	chapters := NewMemoryChapters()
	ctx := context.Background()

	for _, label := range []string{"1", "2", "3"} {
		if _, err := chapters.Insert(ctx, Chapter{WorkID: 5, UploaderID: 9, Label: label, Link: "https://x/" + label}); err != nil {
			t.Fatalf("insert %s: %v", label, err)
		}
	}
	// A chapter of another work must not leak into the listing.
	if _, err := chapters.Insert(ctx, Chapter{WorkID: 6, UploaderID: 9, Label: "other", Link: "https://y"}); err != nil {
		t.Fatalf("insert other: %v", err)
	}

	got, err := chapters.ListByWork(ctx, 5)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, want := range []string{"1", "2", "3"} {
		if got[i].Label != want {
			t.Fatalf("order: got[%d].Label = %s, want %s", i, got[i].Label, want)
		}
	}
}

func TestParseWorkKind(t *testing.T) {
	cases := []struct {
		in   string
		want WorkKind
		ok   bool
	}{
		{"manga", KindManga, true},
		{" Manga ", KindManga, true},
		{"ranobe", KindRanobe, true},
		{"light novel", KindRanobe, true},
		{"comic", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, err := ParseWorkKind(c.in)
		if c.ok && (err != nil || got != c.want) {
			t.Errorf("ParseWorkKind(%q) = %v, %v; want %v", c.in, got, err, c.want)
		}
		if !c.ok && err == nil {
			t.Errorf("ParseWorkKind(%q) succeeded, want error", c.in)
		}
	}
}
