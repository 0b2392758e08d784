// Package help decides which dice the computer keeps, which category it
// chases and when it stands. The same advice is offered to a human who
// asks for help.
//
// The search is greedy: it looks at every way the open dice slots could
// land this turn and chases the best immediate score. It does not weigh
// probabilities or future turns.
package help

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/AustinJGreen/goyahtzee/internal/category"
	"github.com/AustinJGreen/goyahtzee/internal/dice"
	"github.com/AustinJGreen/goyahtzee/internal/scorecard"
)

// Advice is the outcome of one decision: the rolled dice worth keeping,
// the category to aim for and whether to stop rolling.
type Advice struct {
	Keep      []int
	Target    category.Category
	HasTarget bool
	Stand     bool
}

// Message is a one-line hint for the advice.
func (a Advice) Message() string {
	target := "none"
	if a.HasTarget {
		target = a.Target.String()
	}
	switch {
	case a.Stand:
		return "Choose " + target
	case len(a.Keep) == 0:
		return "Roll all dice for " + target
	default:
		return fmt.Sprintf("Keep %v for %s", a.Keep, target)
	}
}

// DiceAnalysis is one reachable final hand scored against one category.
type DiceAnalysis struct {
	// Remaining are the values the unkept slots would need to show.
	Remaining []int
	Category  category.Category
	Score     int
	// Keepable are the dice of the current roll that already match Remaining.
	Keepable []int
}

// Advise decides what to do with rolled given the dice already kept.
func Advise(card scorecard.ScoreCard, kept, rolled []int) Advice {
	open := card.OpenCategories()
	hand := dice.Concat(kept, rolled)

	if slices.Contains(open, category.Yahtzee) && category.Applicable(hand, category.Yahtzee) {
		return Advice{Keep: dice.Sorted(rolled), Target: category.Yahtzee, HasTarget: true, Stand: true}
	}
	if slices.Contains(open, category.FiveStraight) && category.Applicable(hand, category.FiveStraight) {
		return Advice{Keep: straightKeep(kept, rolled), Target: category.FiveStraight, HasTarget: true, Stand: true}
	}
	if slices.Contains(open, category.FourStraight) && category.Applicable(hand, category.FourStraight) {
		keep := straightKeep(kept, rolled)
		if slices.Contains(open, category.FiveStraight) && category.Possible(dice.Concat(kept, keep), category.FiveStraight) {
			return Advice{Keep: keep, Target: category.FiveStraight, HasTarget: true}
		}
		return Advice{Keep: keep, Target: category.FourStraight, HasTarget: true, Stand: true}
	}
	if slices.Contains(open, category.FullHouse) && category.Applicable(hand, category.FullHouse) {
		return Advice{Keep: dice.Sorted(rolled), Target: category.FullHouse, HasTarget: true, Stand: true}
	}

	analyses := Analyze(open, kept, rolled)
	if len(analyses) == 0 {
		return Advice{Stand: len(rolled) == 0}
	}

	top := analyses[0]
	var tied []category.Category
	for _, a := range analyses {
		if a.Score != top.Score {
			break
		}
		tied = append(tied, a.Category)
	}

	target := top.Category
	if slices.Contains(tied, category.FiveStraight) && slices.Contains(tied, category.FourStraight) {
		target = category.FiveStraight
	}
	if slices.Contains(tied, category.ThreeOfAKind) && slices.Contains(tied, category.FourOfAKind) {
		target = category.FourOfAKind
	}

	keep := top.Keepable
	switch target {
	case category.FourStraight, category.FiveStraight:
		// Duplicates cannot extend a straight.
		keep = dice.Distinct(rolled)
	case category.FullHouse:
		final := dice.Concat(kept, keep)
		keep = nil
		for _, v := range rolled {
			if dice.CountOf(final, v) >= 2 {
				keep = append(keep, v)
			}
		}
	}

	return Advice{
		Keep:      keep,
		Target:    target,
		HasTarget: true,
		Stand:     dice.UnorderedEqual(keep, rolled),
	}
}

// Analyze enumerates every completion of the unkept slots and records
// each open category it satisfies. The result is ordered by score, then
// by how many of the rolled dice the plan keeps, both descending; equal
// plans keep enumeration order.
func Analyze(open []category.Category, kept, rolled []int) []DiceAnalysis {
	var analyses []DiceAnalysis
	for _, remaining := range dice.Combinations(dice.HandSize - len(kept)) {
		final := dice.Concat(kept, remaining)
		for _, c := range open {
			if !category.Applicable(final, c) {
				continue
			}
			analyses = append(analyses, DiceAnalysis{
				Remaining: remaining,
				Category:  c,
				Score:     category.Score(final, c),
				Keepable:  dice.Intersection(remaining, rolled),
			})
		}
	}
	slices.SortStableFunc(analyses, func(a, b DiceAnalysis) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(len(b.Keepable), len(a.Keepable))
	})
	return analyses
}

// straightKeep keeps the distinct rolled faces that are not already kept.
// When a 1 and a 6 are both in play, the endpoint that is not kept yet is
// dropped since both cannot belong to one straight.
func straightKeep(kept, rolled []int) []int {
	keep := rolled
	switch {
	case dice.Contains(kept, 1) && dice.Contains(rolled, 6):
		keep = without(rolled, 6)
	case dice.Contains(kept, 6) && dice.Contains(rolled, 1):
		keep = without(rolled, 1)
	}
	keep = dice.Distinct(keep)
	for _, k := range kept {
		if i := slices.Index(keep, k); i >= 0 {
			keep = slices.Delete(keep, i, i+1)
		}
	}
	return keep
}

func without(values []int, face int) []int {
	out := make([]int, 0, len(values))
	for _, v := range values {
		if v != face {
			out = append(out, v)
		}
	}
	return out
}
