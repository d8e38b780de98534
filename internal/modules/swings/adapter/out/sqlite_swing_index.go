package out

import (
	"context"
	"database/sql"
	"fmt"

	"nextround/internal/modules/swings/domain"
	swingsout "nextround/internal/modules/swings/port/out"

	_ "modernc.org/sqlite"
)

// SQLiteSwingIndex answers ordering queries over the swing history. It lives
// in a private in-memory database.
type SQLiteSwingIndex struct {
	db *sql.DB
}

func NewSQLiteSwingIndex(ctx context.Context) (swingsout.SwingIndex, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// Each pooled connection to :memory: would see its own empty database.
	db.SetMaxOpenConns(1)
	index := &SQLiteSwingIndex{db: db}
	if err := index.ensureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return index, nil
}

func (s *SQLiteSwingIndex) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS swings (
  id INTEGER PRIMARY KEY,
  swing_date TEXT NOT NULL,
  score INTEGER NOT NULL,
  improvement INTEGER NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create swings table: %w", err)
	}
	return nil
}

func (s *SQLiteSwingIndex) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM swings`); err != nil {
		return fmt.Errorf("reset swings: %w", err)
	}
	return nil
}

func (s *SQLiteSwingIndex) UpsertSwing(ctx context.Context, swing domain.Swing) error {
	const stmt = `
INSERT INTO swings (id, swing_date, score, improvement)
VALUES (?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  swing_date=excluded.swing_date,
  score=excluded.score,
  improvement=excluded.improvement;
`
	_, err := s.db.ExecContext(ctx, stmt,
		swing.ID,
		swing.Date.Format("2006-01-02"),
		swing.Score,
		swing.Improvement,
	)
	if err != nil {
		return fmt.Errorf("upsert swing: %w", err)
	}
	return nil
}

func (s *SQLiteSwingIndex) SortedIDs(ctx context.Context, key domain.SortKey) ([]int, error) {
	var query string
	switch key {
	case domain.SortByDate:
		query = `SELECT id FROM swings ORDER BY swing_date DESC, id DESC`
	case domain.SortByScore:
		query = `SELECT id FROM swings ORDER BY score DESC, swing_date DESC, id DESC`
	case domain.SortByImprovement:
		query = `SELECT id FROM swings ORDER BY improvement DESC, swing_date DESC, id DESC`
	default:
		return nil, fmt.Errorf("unsupported sort key %q", string(key))
	}
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query swings: %w", err)
	}
	defer rows.Close()
	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan swing id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate swings: %w", err)
	}
	return ids, nil
}

func (s *SQLiteSwingIndex) Close() error {
	return s.db.Close()
}
