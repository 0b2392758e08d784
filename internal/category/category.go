// Package category defines the twelve scoring categories and the rules that
// decide whether a set of dice can score in one of them.
package category

import (
	"fmt"
	"strings"
)

type Category uint8

const (
	Ones Category = iota
	Twos
	Threes
	Fours
	Fives
	Sixes
	ThreeOfAKind
	FourOfAKind
	FullHouse
	FourStraight
	FiveStraight
	Yahtzee
)

// Count is the number of categories on a scorecard.
const Count = 12

// All lists every category in declaration order.
var All = [Count]Category{
	Ones, Twos, Threes, Fours, Fives, Sixes,
	ThreeOfAKind, FourOfAKind, FullHouse, FourStraight, FiveStraight, Yahtzee,
}

var names = [Count]string{
	"Ones",
	"Twos",
	"Threes",
	"Fours",
	"Fives",
	"Sixes",
	"Three of a Kind",
	"Four of a Kind",
	"Full House",
	"Four Straight",
	"Five Straight",
	"Yahtzee",
}

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", c)
	}
	return names[c]
}

func (c Category) Valid() bool {
	return c < Count
}

// Upper reports whether c is one of Ones..Sixes.
func (c Category) Upper() bool {
	return c <= Sixes
}

// Face returns the die face counted by an upper category, or 0.
func (c Category) Face() int {
	if !c.Upper() {
		return 0
	}
	return int(c-Ones) + 1
}

// Parse looks a category up by display name, ignoring case and spacing.
func Parse(name string) (Category, error) {
	key := normalize(name)
	for i, n := range names {
		if normalize(n) == key {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknown, name)
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}
