package game

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/AustinJGreen/goyahtzee/internal/category"
	"github.com/AustinJGreen/goyahtzee/internal/dice"
	"github.com/AustinJGreen/goyahtzee/internal/player"
	"github.com/AustinJGreen/goyahtzee/internal/scorecard"
)

func TestSerializeLoad(t *testing.T) {
	g := newTestGame(t, 41)
	for _, hand := range [][]int{{1, 2, 3, 4, 5}, {3, 3, 3, 2, 2}, {6, 6, 6, 6, 1}, {1, 1, 1, 5, 5}} {
		if err := g.SetDice(hand); err != nil {
			t.Fatalf("SetDice: %v", err)
		}
		c, _ := g.Card().MaxScoringCategory(hand)
		if _, err := g.SelectCategory(c); err != nil {
			t.Fatalf("SelectCategory: %v", err)
		}
	}

	text := g.Serialize()
	if !strings.HasPrefix(text, "Round: 3\nScorecard:\n") {
		t.Errorf("Serialize header:\n%s", text)
	}

	loaded, err := Load(text, Options{Roller: dice.NewRoller(1)})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !loaded.Card().Equal(g.Card()) {
		t.Errorf("card changed on reload:\n%s\nwant:\n%s", loaded.Card().Serialize(), g.Card().Serialize())
	}
	if loaded.Round() != g.Round() || loaded.RollCount() != 1 {
		t.Errorf("got round %d roll %d; want round %d roll 1", loaded.Round(), loaded.RollCount(), g.Round())
	}
	if got := loaded.Serialize(); got != text {
		t.Errorf("Serialize after Load (-got, +want):\n%s", cmp.Diff(got, text))
	}
}

func TestSaveMidRoundReplaysTheRound(t *testing.T) {
	g := newTestGame(t, 47, alice, bob)
	first := mustCurrent(t, g)
	if err := g.SetDice([]int{4, 4, 4, 4, 4}); err != nil {
		t.Fatalf("SetDice: %v", err)
	}
	if _, err := g.SelectCategory(category.Yahtzee); err != nil {
		t.Fatalf("SelectCategory: %v", err)
	}
	if !g.RoundInProgress() {
		t.Fatalf("round not in progress after %s's turn", first.Name)
	}

	loaded, err := Load(g.Serialize(), Options{Players: []player.Player{alice, bob}, Roller: dice.NewRoller(2)})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !loaded.Card().Equal(scorecard.New()) {
		t.Errorf("save kept a turn from the unfinished round:\n%s", loaded.Card().Serialize())
	}
	if loaded.Round() != 1 || loaded.RoundInProgress() {
		t.Errorf("loaded game: round %d, in progress %v; want round 1 from its start", loaded.Round(), loaded.RoundInProgress())
	}

	turns := map[string]int{}
	for loaded.Round() == 1 {
		p := mustCurrent(t, loaded)
		turns[p.Name]++
		if _, err := loaded.Skip(); err != nil {
			t.Fatalf("Skip: %v", err)
		}
	}
	if diff := cmp.Diff(turns, map[string]int{"Alice": 1, "Bob": 1}); diff != "" {
		t.Errorf("turns in round 1 (-got, +want):\n%s", diff)
	}
	if _, ok := loaded.Card().Entry(category.Yahtzee); ok {
		t.Errorf("%s's discarded yahtzee reappeared", first.Name)
	}
}

func TestLoadMalformed(t *testing.T) {
	open12 := strings.Repeat("0\n", category.Count)
	for _, tt := range []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"no round", "Scorecard:\n" + open12},
		{"bad round", "Round: one\nScorecard:\n" + open12},
		{"zero round", "Round: 0\nScorecard:\n" + open12},
		{"no marker", "Round: 1\n" + open12},
		{"short card", "Round: 1\nScorecard:\n0\n0\n"},
		{"unknown winner", "Round: 1\nScorecard:\n5 Zed 1\n" + strings.Repeat("0\n", category.Count-1)},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.text, Options{}); !errors.Is(err, ErrMalformedSave) {
				t.Errorf("Load: got %v; want %v", err, ErrMalformedSave)
			}
		})
	}
}

// finished builds a save with every category filled, alternating winners.
func finished(a, b player.Player, pointsA, pointsB int) string {
	var sb strings.Builder
	sb.WriteString("Round: 6\nScorecard:\n")
	for i := range category.Count {
		if i%2 == 0 {
			fmt.Fprintf(&sb, "%d %s %d\n", pointsA, a.Name, i/2+1)
		} else {
			fmt.Fprintf(&sb, "%d %s %d\n", pointsB, b.Name, i/2+1)
		}
	}
	return sb.String()
}

func TestResult(t *testing.T) {
	for _, tt := range []struct {
		name string
		text string
		want string
	}{
		{
			name: "human wins",
			text: finished(player.Human, player.Computer, 20, 10),
			want: "Human wins!\nFinal scores:\nHuman: 120 points\nComputer: 60 points\n",
		},
		{
			name: "draw",
			text: finished(player.Human, player.Computer, 15, 15),
			want: "It's a draw!\nFinal scores:\nHuman: 90 points\nComputer: 90 points\n",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Load(tt.text, Options{})
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if !g.IsOver() {
				t.Fatalf("loaded game not over")
			}
			if diff := cmp.Diff(g.Result(), tt.want); diff != "" {
				t.Errorf("Result (-got, +want):\n%s", diff)
			}
		})
	}

	g := newTestGame(t, 43)
	if got := g.Result(); got != "Game not over" {
		t.Errorf("Result mid-game: %q", got)
	}
	if got, want := g.ScoreText(), "Scores:\nHuman: 0 points\nComputer: 0 points\n\n"; got != want {
		t.Errorf("ScoreText: got %q; want %q", got, want)
	}

	first := mustCurrent(t, g)
	if err := g.SetDice([]int{1, 2, 2, 3, 3}); err != nil {
		t.Fatalf("SetDice: %v", err)
	}
	if _, err := g.SelectCategory(category.Ones); err != nil {
		t.Fatalf("SelectCategory: %v", err)
	}
	if want := first.Name + ": 1 point\n"; !strings.Contains(g.ScoreText(), want) {
		t.Errorf("ScoreText: got %q; want a line %q", g.ScoreText(), want)
	}
}
