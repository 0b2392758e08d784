package help

import (
	"github.com/AustinJGreen/goyahtzee/internal/category"
	"github.com/AustinJGreen/goyahtzee/internal/dice"
	"github.com/AustinJGreen/goyahtzee/internal/scorecard"
)

// Computer plays a seat using Advise. It rolls with its own roller.
type Computer struct {
	roller *dice.Roller
}

func NewComputer(roller *dice.Roller) *Computer {
	return &Computer{roller: roller}
}

func (c *Computer) String() string { return "computer" }

func (c *Computer) RollDice(n int) []int {
	return c.roller.Roll(n)
}

func (c *Computer) ChooseDiceToKeep(card scorecard.ScoreCard, rolled, kept []int) []int {
	return Advise(card, kept, rolled).Keep
}

// WantsToStand stands when nothing from the roll would be thrown back.
func (c *Computer) WantsToStand(card scorecard.ScoreCard, kept, rolled []int) bool {
	return dice.UnorderedEqual(Advise(card, kept, rolled).Keep, rolled)
}

func (c *Computer) WantsHelp() bool { return false }

func (c *Computer) SelectCategory(card scorecard.ScoreCard, values []int) (category.Category, bool) {
	return card.MaxScoringCategory(values)
}
