// Package sqlite provides a SQLite-backed store for saved games and the
// results of finished games.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/AustinJGreen/goyahtzee/internal/storage"
	"github.com/AustinJGreen/goyahtzee/internal/storage/sqlite/migrations"
)

// Store persists saves and results in SQLite.
type Store struct {
	sqlDB *sql.DB
}

var _ storage.Store = (*Store)(nil)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(context.Background(), sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) Save(ctx context.Context, name, text string) error {
	if err := storage.ValidateName(name); err != nil {
		return err
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO saves (name, body, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		name, text, toMillis(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}

func (s *Store) Load(ctx context.Context, name string) (string, error) {
	if err := storage.ValidateName(name); err != nil {
		return "", err
	}
	var body string
	err := s.sqlDB.QueryRowContext(ctx, `SELECT body FROM saves WHERE name = ?`, name).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("save %s: %w", name, storage.ErrNotFound)
	} else if err != nil {
		return "", fmt.Errorf("load %s: %w", name, err)
	}
	return body, nil
}

func (s *Store) List(ctx context.Context) ([]string, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT name FROM saves ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan save: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *Store) Delete(ctx context.Context, name string) error {
	if err := storage.ValidateName(name); err != nil {
		return err
	}
	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM saves WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete %s: %w", name, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("save %s: %w", name, storage.ErrNotFound)
	}
	return nil
}

// RecordResult stores a result and its per-player scores in one
// transaction.
func (s *Store) RecordResult(ctx context.Context, r storage.Result) error {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin result: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO results (game_id, winner, draw, rounds, finished_at) VALUES (?, ?, ?, ?, ?)`,
		r.GameID, r.Winner, r.Draw, r.Rounds, toMillis(r.FinishedAt),
	)
	if err != nil {
		return fmt.Errorf("insert result: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("result id: %w", err)
	}
	for seat, ps := range r.Scores {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO result_scores (result_id, seat, player, score) VALUES (?, ?, ?, ?)`,
			id, seat, ps.Player, ps.Score,
		); err != nil {
			return fmt.Errorf("insert score: %w", err)
		}
	}
	return tx.Commit()
}

func (s *Store) Results(ctx context.Context, limit int) ([]storage.Result, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, game_id, winner, draw, rounds, finished_at FROM results ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}

	var (
		out []storage.Result
		ids []int64
	)
	for rows.Next() {
		var (
			id       int64
			r        storage.Result
			finished int64
		)
		if err := rows.Scan(&id, &r.GameID, &r.Winner, &r.Draw, &r.Rounds, &finished); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan result: %w", err)
		}
		r.FinishedAt = fromMillis(finished)
		out = append(out, r)
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	for i, id := range ids {
		scores, err := s.scores(ctx, id)
		if err != nil {
			return nil, err
		}
		out[i].Scores = scores
	}
	return out, nil
}

func (s *Store) scores(ctx context.Context, resultID int64) ([]storage.PlayerScore, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT player, score FROM result_scores WHERE result_id = ? ORDER BY seat`, resultID)
	if err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}
	defer rows.Close()

	var out []storage.PlayerScore
	for rows.Next() {
		var ps storage.PlayerScore
		if err := rows.Scan(&ps.Player, &ps.Score); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		out = append(out, ps)
	}
	return out, rows.Err()
}
