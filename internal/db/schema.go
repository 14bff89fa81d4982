package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const SchemaSQL = `
CREATE TABLE IF NOT EXISTS exports (
    id TEXT PRIMARY KEY,
    created_at TEXT NOT NULL,
    title TEXT,
    file_path TEXT,
    word_count INTEGER,
    clip_count INTEGER,
    words_per_clip INTEGER,
    bytes INTEGER
);

CREATE INDEX IF NOT EXISTS idx_exports_created_at ON exports(created_at);
`

func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`PRAGMA busy_timeout=5000`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}
	if _, err := db.Exec(SchemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}
