package lexicon

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.
)

// schema contains the DDL executed on first open. Using IF NOT EXISTS makes
// it safe to run on every startup.
const schema = `
CREATE TABLE IF NOT EXISTS senses (
    id    INTEGER PRIMARY KEY AUTOINCREMENT,
    word  TEXT NOT NULL,
    pos   TEXT NOT NULL DEFAULT '',
    gloss TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_senses_word ON senses(word);
`

// SQLite is a Lexicon backed by a local SQLite database holding one row per
// dictionary sense.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) a sense database at dbPath, enables WAL mode
// and busy timeout, and creates the schema if it does not exist. An unreadable
// database is a fatal initialization error; there is no degraded mode.
func OpenSQLite(ctx context.Context, dbPath string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("lexicon: open database: %w", err)
	}

	// One connection: SQLite has a single writer, and a lone connection keeps
	// the PRAGMA setup applying to every query.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("lexicon: enable WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("lexicon: set busy timeout: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("lexicon: create schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Senses returns the number of sense rows recorded for word.
func (l *SQLite) Senses(ctx context.Context, word string) (int, error) {
	var n int
	err := l.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM senses WHERE word = ?", word).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("lexicon: count senses for %q: %w", word, err)
	}
	return n, nil
}

// AddSense records one dictionary sense for word. Used by the lexicon add
// command and tests; augmentation runs never write.
func (l *SQLite) AddSense(ctx context.Context, word, pos, gloss string) error {
	if _, err := l.db.ExecContext(ctx,
		"INSERT INTO senses (word, pos, gloss) VALUES (?, ?, ?)", word, pos, gloss); err != nil {
		return fmt.Errorf("lexicon: add sense for %q: %w", word, err)
	}
	return nil
}

// ImportWordList loads a newline-delimited word file, recording one sense per
// word inside a single transaction. Blank lines and #-comments are skipped.
func (l *SQLite) ImportWordList(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("lexicon: open word list: %w", err)
	}
	defer f.Close()

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("lexicon: begin import tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO senses (word) VALUES (?)")
	if err != nil {
		return 0, fmt.Errorf("lexicon: prepare import: %w", err)
	}
	defer stmt.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		if _, err := stmt.ExecContext(ctx, word); err != nil {
			return 0, fmt.Errorf("lexicon: import %q: %w", word, err)
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("lexicon: read word list: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("lexicon: commit import: %w", err)
	}
	return count, nil
}

// Close releases the underlying database handle.
func (l *SQLite) Close() error {
	if err := l.db.Close(); err != nil {
		return fmt.Errorf("lexicon: close: %w", err)
	}
	return nil
}
