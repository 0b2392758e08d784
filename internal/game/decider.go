package game

import (
	"github.com/AustinJGreen/goyahtzee/internal/category"
	"github.com/AustinJGreen/goyahtzee/internal/dice"
	"github.com/AustinJGreen/goyahtzee/internal/help"
	"github.com/AustinJGreen/goyahtzee/internal/scorecard"
)

// Decider makes the choices for one seat. The game never blocks on I/O
// itself; a human seat is driven by a Decider backed by a console or UI.
type Decider interface {
	// RollDice returns n die faces for the seat.
	RollDice(n int) []int
	// ChooseDiceToKeep picks the values of rolled to hold for the next roll.
	ChooseDiceToKeep(card scorecard.ScoreCard, rolled, kept []int) []int
	WantsToStand(card scorecard.ScoreCard, kept, rolled []int) bool
	WantsHelp() bool
	// SelectCategory names the category to score the final dice in. false
	// skips the turn.
	SelectCategory(card scorecard.ScoreCard, dice []int) (category.Category, bool)
}

var (
	_ Decider = (*help.Computer)(nil)
	_ Decider = (*RandomDecider)(nil)
)

// RandomDecider keeps, stands and picks categories at random. It is used
// for simulations.
type RandomDecider struct {
	roller *dice.Roller
}

func NewRandomDecider(roller *dice.Roller) *RandomDecider {
	return &RandomDecider{roller: roller}
}

func (rd *RandomDecider) String() string { return "random player" }

func (rd *RandomDecider) RollDice(n int) []int {
	return rd.roller.Roll(n)
}

func (rd *RandomDecider) ChooseDiceToKeep(_ scorecard.ScoreCard, rolled, _ []int) []int {
	var keep []int
	for _, v := range rolled {
		if rd.roller.IntN(2) == 0 {
			keep = append(keep, v)
		}
	}
	return keep
}

func (rd *RandomDecider) WantsToStand(_ scorecard.ScoreCard, _, _ []int) bool {
	return rd.roller.IntN(3) == 0
}

func (rd *RandomDecider) WantsHelp() bool { return false }

// SelectCategory picks uniformly among the open categories the dice apply to.
func (rd *RandomDecider) SelectCategory(card scorecard.ScoreCard, values []int) (category.Category, bool) {
	cats := card.ApplicableCategories(values)
	if len(cats) == 0 {
		return 0, false
	}
	return cats[rd.roller.IntN(len(cats))], true
}
