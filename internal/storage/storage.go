// Package storage defines persistence contracts for saved games and the
// history of finished games.
package storage

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"
)

var (
	// ErrNotFound indicates a requested save slot is missing.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidName indicates a save slot name that cannot be stored.
	ErrInvalidName = errors.New("invalid save name")
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,63}$`)

// ValidateName checks that a save slot name is usable by every backend.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%q: %w", name, ErrInvalidName)
	}
	return nil
}

// SaveStore persists serialized games under named slots. Saving to an
// existing slot replaces it.
type SaveStore interface {
	Save(ctx context.Context, name, text string) error
	Load(ctx context.Context, name string) (string, error)
	// List returns the slot names in ascending order.
	List(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, name string) error
}

// PlayerScore is one player's final total.
type PlayerScore struct {
	Player string `json:"player"`
	Score  int    `json:"score"`
}

// Result records one finished game.
type Result struct {
	GameID string `json:"game_id"`
	// Winner is empty for a draw.
	Winner     string        `json:"winner,omitempty"`
	Draw       bool          `json:"draw"`
	Rounds     int           `json:"rounds"`
	Scores     []PlayerScore `json:"scores"`
	FinishedAt time.Time     `json:"finished_at"`
}

// ResultStore keeps the history of finished games.
type ResultStore interface {
	RecordResult(ctx context.Context, r Result) error
	// Results returns up to limit results, most recent first. A limit of
	// zero or less returns all of them.
	Results(ctx context.Context, limit int) ([]Result, error)
}

// Store is a backend holding both saves and results.
type Store interface {
	SaveStore
	ResultStore
	Close() error
}
