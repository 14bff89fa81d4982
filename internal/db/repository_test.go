package db

import (
	"path/filepath"
	"testing"
	"time"
)

func TestRecordAndListExports(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	base := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	first, err := RecordExport(dbPath, ExportRecord{
		CreatedAt:    base,
		Title:        "episode-1",
		FilePath:     "/tmp/a.txt",
		WordCount:    47,
		ClipCount:    4,
		WordsPerClip: 15,
		Bytes:        1024,
	})
	if err != nil {
		t.Fatalf("record first export: %v", err)
	}
	if first.ID == "" {
		t.Fatal("expected generated id")
	}

	if _, err := RecordExport(dbPath, ExportRecord{CreatedAt: base.Add(time.Minute), Title: "episode-2", ClipCount: 2}); err != nil {
		t.Fatalf("record second export: %v", err)
	}

	recs, err := ListExports(dbPath, 0)
	if err != nil {
		t.Fatalf("list exports: %v", err)
	}
	if len(recs) != 2 || recs[0].Title != "episode-2" {
		t.Fatalf("expected newest first, got %+v", recs)
	}
	got := recs[1]
	if got.ID != first.ID || got.ClipCount != 4 || got.WordsPerClip != 15 || got.Bytes != 1024 || !got.CreatedAt.Equal(base) {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	limited, err := ListExports(dbPath, 1)
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("expected 1 export, got %d", len(limited))
	}
}

func TestListExportsEmpty(t *testing.T) {
	recs, err := ListExports(filepath.Join(t.TempDir(), "history.db"), 10)
	if err != nil {
		t.Fatalf("list exports: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected no exports, got %d", len(recs))
	}
}
