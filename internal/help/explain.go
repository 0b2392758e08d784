package help

import (
	"fmt"
	"strings"

	"github.com/AustinJGreen/goyahtzee/internal/dice"
	"github.com/AustinJGreen/goyahtzee/internal/scorecard"
)

// Explain writes the long-form help for a human: what to keep and why,
// the category to aim for, and whether to stand.
func Explain(card scorecard.ScoreCard, kept, rolled []int) string {
	advice := Advise(card, kept, rolled)
	planned := dice.Concat(kept, advice.Keep)

	var b strings.Builder
	fmt.Fprintf(&b, "You should keep: %v because:\n", advice.Keep)
	for _, r := range Pursuits(card, planned) {
		if r.MinScore == 0 || r.MinScore == r.MaxScore {
			fmt.Fprintf(&b, " - You can get %s with a score of %d. For example, by rolling %v\n",
				r.Category, r.MaxScore, r.RollToGetMax)
			continue
		}
		fmt.Fprintf(&b, " - You can get %s with a minimum score of %d by getting %v and a maximum score of %d by rolling %v\n",
			r.Category, r.MinScore, r.RollToGetMin, r.MaxScore, r.RollToGetMax)
	}

	b.WriteString("\nConsidering this, your target should be to get ")
	if c, needed, ok := Target(card, planned); ok {
		fmt.Fprintf(&b, "%s. A way to do this would be to roll %v in your subsequent rolls.\n", c, needed)
	} else {
		b.WriteString("None\n")
	}

	if advice.Stand {
		b.WriteString("You should stand.\n")
	} else {
		b.WriteString("Do not stand. You should keep rolling.\n")
	}
	if len(advice.Keep) == 0 {
		b.WriteString("Do not keep any dice. You should roll all the dice.\n")
	} else {
		fmt.Fprintf(&b, "You should keep the following dice before you roll: %v\n", advice.Keep)
	}
	return b.String()
}
