package game

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/AustinJGreen/goyahtzee/internal/category"
	"github.com/AustinJGreen/goyahtzee/internal/dice"
	"github.com/AustinJGreen/goyahtzee/internal/player"
	"github.com/AustinJGreen/goyahtzee/internal/scorecard"
)

var (
	alice = player.Player{Name: "Alice"}
	bob   = player.Player{Name: "Bob"}
	carol = player.Player{Name: "Carol"}
)

// scriptedDecider replays canned rolls and answers. Once the rolls run
// out the game falls back to its own roller.
type scriptedDecider struct {
	rolls [][]int
	keep  []int
	stand bool
	cat   category.Category
	pick  bool
}

func (s *scriptedDecider) RollDice(int) []int {
	if len(s.rolls) == 0 {
		return nil
	}
	r := s.rolls[0]
	s.rolls = s.rolls[1:]
	return r
}

func (s *scriptedDecider) ChooseDiceToKeep(scorecard.ScoreCard, []int, []int) []int { return s.keep }
func (s *scriptedDecider) WantsToStand(scorecard.ScoreCard, []int, []int) bool     { return s.stand }
func (s *scriptedDecider) WantsHelp() bool                                          { return true }
func (s *scriptedDecider) SelectCategory(scorecard.ScoreCard, []int) (category.Category, bool) {
	return s.cat, s.pick
}

func newTestGame(t *testing.T, seed uint64, players ...player.Player) *Game {
	t.Helper()
	g, err := New(Options{Players: players, Roller: dice.NewRoller(seed)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func mustCurrent(t *testing.T, g *Game) player.Player {
	t.Helper()
	p, err := g.CurrentPlayer()
	if err != nil {
		t.Fatalf("CurrentPlayer: %v", err)
	}
	return p
}

func TestNew(t *testing.T) {
	g := newTestGame(t, 1)
	if g.Round() != 1 || g.RollCount() != 1 {
		t.Errorf("got round %d roll %d; want 1 1", g.Round(), g.RollCount())
	}
	if got := len(g.Queue()); got != 2 {
		t.Errorf("queue length: got %d; want 2", got)
	}
	if !dice.Valid(dice.Values(g.dice[:])) {
		t.Errorf("dice not rolled: %v", g.dice)
	}
	if g.Phase() != AwaitingKeepDecision {
		t.Errorf("phase: got %v; want %v", g.Phase(), AwaitingKeepDecision)
	}
	if g.ID() == "" {
		t.Errorf("empty session id")
	}
	if !slices.ContainsFunc(g.Journal(), func(s string) bool { return strings.HasPrefix(s, "Tie-break") }) {
		t.Errorf("opening tie-break missing from journal: %q", g.Journal())
	}
}

func TestNewRejectsBadPlayers(t *testing.T) {
	for _, players := range [][]player.Player{
		{alice, alice},
		{{Name: ""}, bob},
		{{Name: "Two Words"}, bob},
	} {
		if _, err := New(Options{Players: players}); !errors.Is(err, ErrInvalidPlayer) {
			t.Errorf("New(%v): got %v; want %v", players, err, ErrInvalidPlayer)
		}
	}
}

func TestTieBreak(t *testing.T) {
	for _, tt := range []struct {
		name  string
		rolls map[string][][]int
		tied  []player.Player
		want  []player.Player
	}{
		{
			name:  "single roll",
			rolls: map[string][][]int{"Alice": {{2}}, "Bob": {{5}}},
			tied:  []player.Player{alice, bob},
			want:  []player.Player{bob, alice},
		},
		{
			name:  "repeat on equal rolls",
			rolls: map[string][][]int{"Alice": {{3}, {5}}, "Bob": {{3}, {2}}},
			tied:  []player.Player{alice, bob},
			want:  []player.Player{alice, bob},
		},
		{
			name: "only the tied pair re-rolls",
			rolls: map[string][][]int{
				"Alice": {{4}, {1}},
				"Bob":   {{6}},
				"Carol": {{4}, {2}},
			},
			tied: []player.Player{alice, bob, carol},
			want: []player.Player{bob, carol, alice},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, 7, alice, bob, carol)
			for name, rolls := range tt.rolls {
				g.deciders[name] = &scriptedDecider{rolls: rolls}
			}
			got := g.TieBreak(tt.tied)
			if diff := cmp.Diff(got, tt.want); diff != "" {
				t.Errorf("TieBreak (-got, +want):\n%s", diff)
			}
		})
	}
}

func TestTieBreakAlwaysOrdersEveryone(t *testing.T) {
	players := []player.Player{alice, bob, carol, {Name: "Dave"}, {Name: "Erin"}, {Name: "Frank"}, {Name: "Grace"}}
	for seed := uint64(1); seed <= 50; seed++ {
		g := newTestGame(t, seed, players...)
		got := g.TieBreak(players)
		if len(got) != len(players) {
			t.Fatalf("seed %d: got %d players; want %d", seed, len(got), len(players))
		}
		for _, p := range players {
			if !slices.ContainsFunc(got, p.Equal) {
				t.Fatalf("seed %d: %s missing from %v", seed, p, got)
			}
		}
	}
}

func TestRollLocksMarkedDice(t *testing.T) {
	g := newTestGame(t, 3, alice, bob)
	first := dice.Values(g.dice[:2])
	if err := g.MarkForLock(0, 1); err != nil {
		t.Fatalf("MarkForLock: %v", err)
	}
	if g.Phase() != AwaitingRoll {
		t.Errorf("phase after marking: got %v; want %v", g.Phase(), AwaitingRoll)
	}
	if err := g.Roll(); err != nil {
		t.Fatalf("Roll: %v", err)
	}
	if got := dice.Values(g.KeptDice()); !cmp.Equal(got, first) {
		t.Errorf("kept dice: got %v; want %v", got, first)
	}
	if got := len(g.MarkedDice()); got != 0 {
		t.Errorf("marks survive a roll: %d", got)
	}
	if g.RollCount() != 2 {
		t.Errorf("roll count: got %d; want 2", g.RollCount())
	}
	if err := g.Roll(); err != nil {
		t.Fatalf("Roll: %v", err)
	}
	if g.Phase() != AwaitingCategorySelection {
		t.Errorf("phase after last roll: got %v; want %v", g.Phase(), AwaitingCategorySelection)
	}
	if err := g.Roll(); !errors.Is(err, ErrNoRollsLeft) {
		t.Errorf("fourth roll: got %v; want %v", err, ErrNoRollsLeft)
	}
	if err := g.MarkForLock(5); !errors.Is(err, ErrInvalidKeep) {
		t.Errorf("MarkForLock(5): got %v; want %v", err, ErrInvalidKeep)
	}
}

func TestRollWithEveryDieKept(t *testing.T) {
	g := newTestGame(t, 4, alice, bob)
	before := g.Dice()
	if err := g.MarkForLock(0, 1, 2, 3, 4); err != nil {
		t.Fatalf("MarkForLock: %v", err)
	}
	if g.Phase() != AwaitingCategorySelection {
		t.Errorf("phase with every die marked: got %v; want %v", g.Phase(), AwaitingCategorySelection)
	}
	if err := g.Roll(); !errors.Is(err, ErrAllKept) {
		t.Fatalf("Roll: got %v; want %v", err, ErrAllKept)
	}
	if g.RollCount() != 1 {
		t.Errorf("roll count: got %d; want 1", g.RollCount())
	}
	after := g.Dice()
	if got, want := dice.Values(after[:]), dice.Values(before[:]); !cmp.Equal(got, want) {
		t.Errorf("dice changed: got %v; want %v", got, want)
	}
}

func TestKeepValues(t *testing.T) {
	g := newTestGame(t, 5, alice, bob)
	if err := g.SetDice([]int{6, 1, 6, 2, 6}); err != nil {
		t.Fatalf("SetDice: %v", err)
	}
	if err := g.KeepValues([]int{6, 6}); err != nil {
		t.Fatalf("KeepValues: %v", err)
	}
	var marked []bool
	for _, d := range g.dice {
		marked = append(marked, d.MarkedForLock())
	}
	if diff := cmp.Diff(marked, []bool{true, false, true, false, false}); diff != "" {
		t.Errorf("marks (-got, +want):\n%s", diff)
	}
	if err := g.KeepValues([]int{3}); !errors.Is(err, ErrInvalidKeep) {
		t.Errorf("KeepValues([3]): got %v; want %v", err, ErrInvalidKeep)
	}
	if err := g.SetDice([]int{1, 2}); !errors.Is(err, ErrInvalidDice) {
		t.Errorf("SetDice short: got %v; want %v", err, ErrInvalidDice)
	}
	if err := g.SetDice([]int{1, 2, 3, 4, 7}); !errors.Is(err, ErrInvalidDice) {
		t.Errorf("SetDice out of range: got %v; want %v", err, ErrInvalidDice)
	}
}

func TestSelectCategory(t *testing.T) {
	g := newTestGame(t, 11, alice, bob)
	first := mustCurrent(t, g)
	if err := g.SetDice([]int{3, 1, 2, 5, 4}); err != nil {
		t.Fatalf("SetDice: %v", err)
	}
	res, err := g.SelectCategory(category.FiveStraight)
	if err != nil {
		t.Fatalf("SelectCategory: %v", err)
	}
	want := TurnResult{
		Player:   first,
		Round:    1,
		Dice:     []int{3, 1, 2, 5, 4},
		Chosen:   true,
		Category: category.FiveStraight,
		Scored:   true,
		Points:   category.FiveStraightScore,
	}
	if diff := cmp.Diff(res, want); diff != "" {
		t.Errorf("TurnResult (-got, +want):\n%s", diff)
	}
	if e, ok := g.Card().Entry(category.FiveStraight); !ok || !e.Winner.Equal(first) {
		t.Errorf("entry: got %+v, %v", e, ok)
	}

	second := mustCurrent(t, g)
	if second.Equal(first) {
		t.Fatalf("turn did not pass from %s", first)
	}
	if g.RollCount() != 1 {
		t.Errorf("roll count not reset: %d", g.RollCount())
	}

	// A filled or non-applicable category ends the turn without scoring.
	if err := g.SetDice([]int{1, 2, 3, 4, 5}); err != nil {
		t.Fatalf("SetDice: %v", err)
	}
	res, err = g.SelectCategory(category.FiveStraight)
	if err != nil {
		t.Fatalf("SelectCategory: %v", err)
	}
	if res.Scored {
		t.Errorf("scored a filled category: %+v", res)
	}
	if g.Card().PlayerScore(second) != 0 {
		t.Errorf("%s gained points from a skip", second)
	}

	// Round 2 starts with the lower score.
	if g.Round() != 2 {
		t.Fatalf("round: got %d; want 2", g.Round())
	}
	if diff := cmp.Diff(g.Queue(), []player.Player{second, first}); diff != "" {
		t.Errorf("round 2 order (-got, +want):\n%s", diff)
	}
}

func TestSkip(t *testing.T) {
	g := newTestGame(t, 13, alice, bob)
	first := mustCurrent(t, g)
	res, err := g.Skip()
	if err != nil {
		t.Fatalf("Skip: %v", err)
	}
	if res.Chosen || res.Scored || !res.Player.Equal(first) {
		t.Errorf("Skip result: %+v", res)
	}
	if len(g.Card().OpenCategories()) != category.Count {
		t.Errorf("skip filled a category")
	}
}

func TestHelpAfterLastRollUsesAllDice(t *testing.T) {
	g := newTestGame(t, 17, alice, bob)
	if err := g.SetDice([]int{6, 6, 6, 2, 1}); err != nil {
		t.Fatalf("SetDice: %v", err)
	}
	advice, err := g.MarkDiceForHelp()
	if err != nil {
		t.Fatalf("MarkDiceForHelp: %v", err)
	}
	if diff := cmp.Diff(advice.Keep, []int{6, 6, 6}); diff != "" {
		t.Errorf("advice (-got, +want):\n%s", diff)
	}
	var highlighted []int
	for _, d := range g.dice {
		if d.MarkedForHelp() {
			highlighted = append(highlighted, d.Value())
		}
	}
	if diff := cmp.Diff(highlighted, []int{6, 6, 6}); diff != "" {
		t.Errorf("highlighted (-got, +want):\n%s", diff)
	}

	g.rollCount = MaxRolls
	advice, err = g.Help()
	if err != nil {
		t.Fatalf("Help: %v", err)
	}
	if len(advice.Keep) != 0 || !advice.Stand {
		t.Errorf("after the last roll advice should stand with nothing to keep: %+v", advice)
	}
	text, err := g.Explain()
	if err != nil || !strings.Contains(text, "You should stand") {
		t.Errorf("Explain: %v\n%s", err, text)
	}
}

func TestPlayTurnScripted(t *testing.T) {
	g := newTestGame(t, 19, alice, bob)
	p := mustCurrent(t, g)
	g.deciders[p.Name] = &scriptedDecider{
		rolls: [][]int{{2, 2, 2, 2, 2}},
		stand: true,
		cat:   category.Yahtzee,
		pick:  true,
	}
	if err := g.SetDice([]int{2, 2, 2, 2, 2}); err != nil {
		t.Fatalf("SetDice: %v", err)
	}
	res, err := g.PlayTurn()
	if err != nil {
		t.Fatalf("PlayTurn: %v", err)
	}
	if !res.Scored || res.Points != category.YahtzeeScore {
		t.Errorf("PlayTurn: got %+v; want a yahtzee", res)
	}
	if !slices.ContainsFunc(g.Journal(), func(s string) bool { return strings.HasPrefix(s, "Help for "+p.Name) }) {
		t.Errorf("help request missing from journal")
	}
}

func TestPlayTurnStandsWhenEveryDieIsKept(t *testing.T) {
	g := newTestGame(t, 21, alice, bob)
	p := mustCurrent(t, g)
	g.deciders[p.Name] = &scriptedDecider{
		keep: []int{2, 3, 4, 5, 6},
		cat:  category.FiveStraight,
		pick: true,
	}
	if err := g.SetDice([]int{2, 3, 4, 5, 6}); err != nil {
		t.Fatalf("SetDice: %v", err)
	}
	res, err := g.PlayTurn()
	if err != nil {
		t.Fatalf("PlayTurn: %v", err)
	}
	if diff := cmp.Diff(res.Dice, []int{2, 3, 4, 5, 6}); diff != "" {
		t.Errorf("dice were re-rolled (-got, +want):\n%s", diff)
	}
	if !res.Scored || res.Points != category.FiveStraightScore {
		t.Errorf("PlayTurn: got %+v; want a five straight", res)
	}
	if !slices.ContainsFunc(g.Journal(), func(s string) bool { return strings.Contains(s, "keeps every die") }) {
		t.Errorf("stand missing from journal")
	}
}

func TestPlayTurnRejectsForeignKeep(t *testing.T) {
	g := newTestGame(t, 23, alice, bob)
	p := mustCurrent(t, g)
	g.deciders[p.Name] = &scriptedDecider{keep: []int{7}}
	if _, err := g.PlayTurn(); !errors.Is(err, ErrInvalidKeep) {
		t.Errorf("PlayTurn: got %v; want %v", err, ErrInvalidKeep)
	}
}

func TestPlayTurnWithoutDecider(t *testing.T) {
	g := newTestGame(t, 29, alice, bob)
	if _, err := g.PlayTurn(); !errors.Is(err, ErrNoDecider) {
		t.Errorf("PlayTurn: got %v; want %v", err, ErrNoDecider)
	}
}

func TestPlayFullGame(t *testing.T) {
	for _, tt := range []struct {
		name     string
		deciders func(r *dice.Roller) map[string]Decider
	}{
		{
			name:     "computer vs computer",
			deciders: func(*dice.Roller) map[string]Decider { return nil },
		},
		{
			name: "random vs computer",
			deciders: func(r *dice.Roller) map[string]Decider {
				return map[string]Decider{"Alice": NewRandomDecider(r)}
			},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			r := dice.NewRoller(31)
			players := []player.Player{
				{Name: "Alice", Kind: player.KindComputer},
				{Name: "Bob", Kind: player.KindComputer},
			}
			g, err := New(Options{Players: players, Roller: r, Deciders: tt.deciders(r)})
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if err := g.Play(context.Background()); err != nil {
				t.Fatalf("Play: %v", err)
			}
			if !g.IsOver() || !g.Card().IsFull() {
				t.Fatalf("game not over after Play")
			}
			if _, err := g.CurrentPlayer(); !errors.Is(err, ErrGameOver) {
				t.Errorf("CurrentPlayer after the game: got %v; want %v", err, ErrGameOver)
			}
			if g.Phase() != TurnComplete {
				t.Errorf("phase: got %v; want %v", g.Phase(), TurnComplete)
			}

			var total int
			for _, c := range category.All {
				e, _ := g.Card().Entry(c)
				if e.Round < 1 || e.Round > g.Round() {
					t.Errorf("%s filled in round %d of %d", c, e.Round, g.Round())
				}
				total += e.Points
			}
			scores := g.Card().PlayerScores(players)
			if got := scores[0] + scores[1]; got != total {
				t.Errorf("player totals %v do not add up to %d", scores, total)
			}
			if !strings.Contains(g.Result(), "Final scores:") {
				t.Errorf("Result: %q", g.Result())
			}
		})
	}
}

func TestPlayCanceled(t *testing.T) {
	g := newTestGame(t, 37, player.Player{Name: "Alice", Kind: player.KindComputer}, player.Computer)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := g.Play(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Play: got %v; want %v", err, context.Canceled)
	}
	if g.IsOver() {
		t.Errorf("canceled game finished")
	}
}
