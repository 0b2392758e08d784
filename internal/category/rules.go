package category

import "github.com/AustinJGreen/goyahtzee/internal/dice"

// Fixed scores for the combination categories.
const (
	FullHouseScore    = 25
	FourStraightScore = 30
	FiveStraightScore = 40
	YahtzeeScore      = 50
)

// Applicable reports whether the dice satisfy the scoring rule of c as
// they stand. Straights are order independent: a straight of n needs n
// distinct consecutive faces.
func Applicable(values []int, c Category) bool {
	switch c {
	case Ones, Twos, Threes, Fours, Fives, Sixes:
		return dice.Contains(values, c.Face())
	case ThreeOfAKind:
		return dice.MaxCount(values) >= 3
	case FourOfAKind:
		return dice.MaxCount(values) >= 4
	case FullHouse:
		var hasTwo, hasThree bool
		for _, f := range dice.Counts(values) {
			if f == 2 {
				hasTwo = true
			} else if f == 3 {
				hasThree = true
			}
		}
		return hasTwo && hasThree
	case FourStraight:
		return dice.LongestRun(values) >= 4
	case FiveStraight:
		return dice.LongestRun(values) >= 5
	case Yahtzee:
		return dice.MaxCount(values) >= 5
	default:
		return false
	}
}

// Possible reports whether c can still be reached once the remaining
// 5 - len(values) dice are rolled. An empty hand can reach anything.
func Possible(values []int, c Category) bool {
	if len(values) == 0 {
		return true
	}
	slotsLeft := dice.HandSize - len(values)
	switch c {
	case Ones, Twos, Threes, Fours, Fives, Sixes:
		return dice.Contains(values, c.Face()) || slotsLeft > 0
	case ThreeOfAKind:
		return slotsLeft+dice.MaxCount(values) >= 3
	case FourOfAKind:
		return slotsLeft+dice.MaxCount(values) >= 4
	case FullHouse:
		return dice.CountUnique(values) <= 2 && dice.MaxCount(values) <= 3
	case FourStraight:
		return dice.NumRepeats(values) < 2
	case FiveStraight:
		// 1 and 6 can never sit in the same five-run.
		return dice.NumRepeats(values) < 1 &&
			!(dice.Contains(values, 1) && dice.Contains(values, 6))
	case Yahtzee:
		return dice.AllSame(values)
	default:
		return true
	}
}

// Score returns the points the dice earn in c, or 0 when c does not apply.
func Score(values []int, c Category) int {
	if !Applicable(values, c) {
		return 0
	}
	switch c {
	case Ones, Twos, Threes, Fours, Fives, Sixes:
		return dice.CountOf(values, c.Face()) * c.Face()
	case ThreeOfAKind, FourOfAKind:
		return dice.Sum(values)
	case FullHouse:
		return FullHouseScore
	case FourStraight:
		return FourStraightScore
	case FiveStraight:
		return FiveStraightScore
	case Yahtzee:
		return YahtzeeScore
	default:
		return 0
	}
}

// ApplicableCategories lists the categories the dice satisfy, in
// declaration order.
func ApplicableCategories(values []int) []Category {
	var out []Category
	for _, c := range All {
		if Applicable(values, c) {
			out = append(out, c)
		}
	}
	return out
}
