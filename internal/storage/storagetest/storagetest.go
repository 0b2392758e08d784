// Package storagetest checks that a storage backend honours the
// storage.Store contract.
package storagetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/AustinJGreen/goyahtzee/internal/storage"
)

// Run exercises saves and results against stores returned by open. Each
// subtest gets a fresh, empty store.
func Run(t *testing.T, open func(t *testing.T) storage.Store) {
	t.Run("save round trip", func(t *testing.T) {
		ctx := context.Background()
		s := open(t)
		const text = "Round: 2\nScorecard:\n40 Human 1\n0\n"
		if err := s.Save(ctx, "slot-1", text); err != nil {
			t.Fatalf("Save: %v", err)
		}
		got, err := s.Load(ctx, "slot-1")
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if diff := cmp.Diff(got, text); diff != "" {
			t.Errorf("Load (-got, +want):\n%s", diff)
		}

		if err := s.Save(ctx, "slot-1", "Round: 3\n"); err != nil {
			t.Fatalf("Save overwrite: %v", err)
		}
		if got, _ := s.Load(ctx, "slot-1"); got != "Round: 3\n" {
			t.Errorf("overwritten save: got %q", got)
		}
	})

	t.Run("list and delete", func(t *testing.T) {
		ctx := context.Background()
		s := open(t)
		names, err := s.List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(names) != 0 {
			t.Errorf("empty store lists %v", names)
		}
		for _, name := range []string{"beta", "alpha", "gamma"} {
			if err := s.Save(ctx, name, name); err != nil {
				t.Fatalf("Save(%s): %v", name, err)
			}
		}
		if err := s.Delete(ctx, "gamma"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		names, err = s.List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if diff := cmp.Diff(names, []string{"alpha", "beta"}); diff != "" {
			t.Errorf("List (-got, +want):\n%s", diff)
		}
	})

	t.Run("missing", func(t *testing.T) {
		ctx := context.Background()
		s := open(t)
		if _, err := s.Load(ctx, "nope"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Load: got %v; want %v", err, storage.ErrNotFound)
		}
		if err := s.Delete(ctx, "nope"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Delete: got %v; want %v", err, storage.ErrNotFound)
		}
	})

	t.Run("invalid name", func(t *testing.T) {
		s := open(t)
		for _, name := range []string{"", "../escape", "has space"} {
			if err := s.Save(context.Background(), name, "x"); !errors.Is(err, storage.ErrInvalidName) {
				t.Errorf("Save(%q): got %v; want %v", name, err, storage.ErrInvalidName)
			}
		}
	})

	t.Run("results newest first", func(t *testing.T) {
		ctx := context.Background()
		s := open(t)
		base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
		var want []storage.Result
		for i, winner := range []string{"Human", "", "Computer"} {
			r := storage.Result{
				GameID: string(rune('a' + i)),
				Winner: winner,
				Draw:   winner == "",
				Rounds: 6 + i,
				Scores: []storage.PlayerScore{
					{Player: "Human", Score: 100 + i},
					{Player: "Computer", Score: 90 + i},
				},
				FinishedAt: base.Add(time.Duration(i) * time.Minute),
			}
			if err := s.RecordResult(ctx, r); err != nil {
				t.Fatalf("RecordResult: %v", err)
			}
			want = append([]storage.Result{r}, want...)
		}

		got, err := s.Results(ctx, 0)
		if err != nil {
			t.Fatalf("Results: %v", err)
		}
		if diff := cmp.Diff(got, want); diff != "" {
			t.Errorf("Results (-got, +want):\n%s", diff)
		}
		got, err = s.Results(ctx, 2)
		if err != nil {
			t.Fatalf("Results: %v", err)
		}
		if diff := cmp.Diff(got, want[:2]); diff != "" {
			t.Errorf("Results(2) (-got, +want):\n%s", diff)
		}
	})
}
