package db

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Fixed width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// ExportRecord describes one saved command artifact. Settings are never
// stored, only what was produced.
type ExportRecord struct {
	ID           string
	CreatedAt    time.Time
	Title        string
	FilePath     string
	WordCount    int
	ClipCount    int
	WordsPerClip int
	Bytes        int64
}

func RecordExport(dbPath string, rec ExportRecord) (ExportRecord, error) {
	conn, err := Open(dbPath)
	if err != nil {
		return rec, err
	}
	defer conn.Close()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	if _, err := conn.Exec(
		`INSERT INTO exports(id, created_at, title, file_path, word_count, clip_count, words_per_clip, bytes) VALUES(?,?,?,?,?,?,?,?)`,
		rec.ID,
		rec.CreatedAt.UTC().Format(timeLayout),
		rec.Title,
		rec.FilePath,
		rec.WordCount,
		rec.ClipCount,
		rec.WordsPerClip,
		rec.Bytes,
	); err != nil {
		return rec, fmt.Errorf("insert export: %w", err)
	}
	return rec, nil
}

// ListExports returns the most recent exports first. limit <= 0 means all.
func ListExports(dbPath string, limit int) ([]ExportRecord, error) {
	conn, err := Open(dbPath)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	query := `SELECT id, created_at, title, file_path, word_count, clip_count, words_per_clip, bytes FROM exports ORDER BY created_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query exports: %w", err)
	}
	defer rows.Close()

	var out []ExportRecord
	for rows.Next() {
		var (
			rec     ExportRecord
			created string
		)
		if err := rows.Scan(&rec.ID, &created, &rec.Title, &rec.FilePath, &rec.WordCount, &rec.ClipCount, &rec.WordsPerClip, &rec.Bytes); err != nil {
			return nil, fmt.Errorf("scan export: %w", err)
		}
		rec.CreatedAt, err = time.Parse(timeLayout, created)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exports: %w", err)
	}
	return out, nil
}
