package help

import (
	"github.com/AustinJGreen/goyahtzee/internal/category"
	"github.com/AustinJGreen/goyahtzee/internal/dice"
	"github.com/AustinJGreen/goyahtzee/internal/scorecard"
)

// Reason explains what chasing one category could earn from the kept dice.
// It only feeds help text and never changes a decision.
type Reason struct {
	Current  []int
	Category category.Category

	MaxScore     int
	RollToGetMax []int

	// MinScore is the lowest nonzero score reachable, 0 if none is.
	MinScore     int
	RollToGetMin []int
}

// Pursuits returns a Reason for every open category the kept dice can
// still reach, in open-category order.
func Pursuits(card scorecard.ScoreCard, kept []int) []Reason {
	completions := dice.Combinations(dice.HandSize - len(kept))
	var reasons []Reason
	for _, c := range card.PossibleCategories(kept) {
		r := Reason{Current: kept, Category: c}
		for _, remaining := range completions {
			score := category.Score(dice.Concat(kept, remaining), c)
			if score > r.MaxScore {
				r.MaxScore, r.RollToGetMax = score, remaining
			}
			if score > 0 && (r.MinScore == 0 || score < r.MinScore) {
				r.MinScore, r.RollToGetMin = score, remaining
			}
		}
		reasons = append(reasons, r)
	}
	return reasons
}

// FindBestRoll returns the first final hand, in enumeration order, that
// reaches the highest score available in any open category.
func FindBestRoll(card scorecard.ScoreCard, kept []int) ([]int, bool) {
	open := card.OpenCategories()
	var best []int
	bestScore := -1
	for _, remaining := range dice.Combinations(dice.HandSize - len(kept)) {
		final := dice.Sorted(dice.Concat(kept, remaining))
		for _, c := range open {
			if score := category.Score(final, c); score > bestScore {
				best, bestScore = final, score
			}
		}
	}
	return best, best != nil
}

// Target names the category the best reachable hand would score in and
// the dice still needed to complete it.
func Target(card scorecard.ScoreCard, kept []int) (category.Category, []int, bool) {
	best, ok := FindBestRoll(card, kept)
	if !ok {
		return 0, nil, false
	}
	c, ok := card.MaxScoringCategory(best)
	if !ok {
		return 0, nil, false
	}
	return c, dice.Difference(best, kept), true
}
