// Package scorecard holds the shared scorecard of a game. A ScoreCard is a
// value: adding an entry returns a new card and never changes the old one.
package scorecard

import (
	"fmt"
	"slices"

	"github.com/AustinJGreen/goyahtzee/internal/category"
	"github.com/AustinJGreen/goyahtzee/internal/player"
)

// Entry records who filled a category, in which round, for how many points.
type Entry struct {
	Points int
	Winner player.Player
	Round  int
}

// ScoreCard maps every category to an optional entry. A nil slot is open.
// Entries are never mutated once placed, so copies may share them.
type ScoreCard struct {
	entries [category.Count]*Entry
}

// New returns an empty card.
func New() ScoreCard {
	return ScoreCard{}
}

// Entry returns the entry for c, if the category is filled.
func (sc ScoreCard) Entry(c category.Category) (Entry, bool) {
	if !c.Valid() || sc.entries[c] == nil {
		return Entry{}, false
	}
	return *sc.entries[c], true
}

func (sc ScoreCard) IsOpen(c category.Category) bool {
	return c.Valid() && sc.entries[c] == nil
}

// AddEntry returns a new card with c filled. It fails with
// ErrEntryConflict if c already holds an entry.
func (sc ScoreCard) AddEntry(c category.Category, round int, winner player.Player, points int) (ScoreCard, error) {
	if !c.Valid() {
		return sc, fmt.Errorf("add entry: %w", category.ErrUnknown)
	}
	if sc.entries[c] != nil {
		return sc, fmt.Errorf("add entry %s: %w", c, ErrEntryConflict)
	}
	next := sc
	next.entries[c] = &Entry{Points: points, Winner: winner, Round: round}
	return next, nil
}

// Score fills c with the points the dice earn there. A filled category
// leaves the card as it is.
func (sc ScoreCard) Score(c category.Category, round int, winner player.Player, dice []int) ScoreCard {
	if !sc.IsOpen(c) {
		return sc
	}
	next, err := sc.AddEntry(c, round, winner, category.Score(dice, c))
	if err != nil {
		return sc
	}
	return next
}

// AddBest fills the highest scoring open category for the dice, if any.
func (sc ScoreCard) AddBest(round int, winner player.Player, dice []int) ScoreCard {
	c, ok := sc.MaxScoringCategory(dice)
	if !ok {
		return sc
	}
	return sc.Score(c, round, winner, dice)
}

func (sc ScoreCard) IsFull() bool {
	for _, e := range sc.entries {
		if e == nil {
			return false
		}
	}
	return true
}

// OpenCategories returns the unfilled categories in reverse declaration
// order, Yahtzee first. The heuristic relies on this order to try the
// rarer categories first.
func (sc ScoreCard) OpenCategories() []category.Category {
	var open []category.Category
	for i := len(category.All) - 1; i >= 0; i-- {
		if sc.entries[i] == nil {
			open = append(open, category.All[i])
		}
	}
	return open
}

// PossibleCategories returns the open categories the kept dice can still reach.
func (sc ScoreCard) PossibleCategories(dice []int) []category.Category {
	var out []category.Category
	for _, c := range sc.OpenCategories() {
		if category.Possible(dice, c) {
			out = append(out, c)
		}
	}
	return out
}

// ApplicableCategories returns the open categories the dice satisfy now.
func (sc ScoreCard) ApplicableCategories(dice []int) []category.Category {
	var out []category.Category
	for _, c := range sc.OpenCategories() {
		if category.Applicable(dice, c) {
			out = append(out, c)
		}
	}
	return out
}

// MaxScoringCategory picks the open, applicable category paying the most
// for the dice. A Four/Five Straight tie goes to Five Straight; any other
// tie goes to the category declared first.
func (sc ScoreCard) MaxScoringCategory(dice []int) (category.Category, bool) {
	var best []category.Category
	var maxScore int
	for _, c := range category.ApplicableCategories(dice) {
		if !sc.IsOpen(c) {
			continue
		}
		score := category.Score(dice, c)
		switch {
		case score > maxScore:
			maxScore = score
			best = append(best[:0], c)
		case score == maxScore:
			best = append(best, c)
		}
	}
	if len(best) == 0 {
		return 0, false
	}
	if slices.Contains(best, category.FourStraight) && slices.Contains(best, category.FiveStraight) {
		return category.FiveStraight, true
	}
	return best[0], true
}

// PlayerScore totals the points p has won.
func (sc ScoreCard) PlayerScore(p player.Player) int {
	var total int
	for _, e := range sc.entries {
		if e != nil && e.Winner.Equal(p) {
			total += e.Points
		}
	}
	return total
}

// PlayerScores totals each player's points, in the order given.
func (sc ScoreCard) PlayerScores(players []player.Player) []int {
	out := make([]int, len(players))
	for i, p := range players {
		out[i] = sc.PlayerScore(p)
	}
	return out
}

// Players returns everyone holding at least one entry, in category order
// of their first entry.
func (sc ScoreCard) Players() []player.Player {
	var out []player.Player
	for _, e := range sc.entries {
		if e == nil {
			continue
		}
		if !slices.ContainsFunc(out, e.Winner.Equal) {
			out = append(out, e.Winner)
		}
	}
	return out
}

// Winner returns the player with the strictly highest total once the card
// is full. There is no winner on an unfinished card or a draw.
func (sc ScoreCard) Winner() (player.Player, bool) {
	if !sc.IsFull() || sc.IsDraw() {
		return player.Player{}, false
	}
	var winner player.Player
	var best int
	for _, p := range sc.Players() {
		if score := sc.PlayerScore(p); score > best {
			best, winner = score, p
		}
	}
	return winner, best > 0
}

// IsDraw reports whether a full card has two or more players sharing the
// highest total.
func (sc ScoreCard) IsDraw() bool {
	if !sc.IsFull() {
		return false
	}
	scores := sc.PlayerScores(sc.Players())
	if len(scores) == 0 {
		return false
	}
	best := slices.Max(scores)
	var n int
	for _, s := range scores {
		if s == best {
			n++
		}
	}
	return n > 1
}

// Equal reports whether both cards hold the same entries.
func (sc ScoreCard) Equal(o ScoreCard) bool {
	for i := range sc.entries {
		a, b := sc.entries[i], o.entries[i]
		switch {
		case a == nil && b == nil:
		case a == nil || b == nil:
			return false
		case a.Points != b.Points || a.Round != b.Round || !a.Winner.Equal(b.Winner):
			return false
		}
	}
	return true
}
