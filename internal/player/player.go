// Package player identifies the participants of a game. A player carries
// no game state; the scorecard and the game session own all of it.
package player

import "fmt"

// Kind tags who is behind a seat.
type Kind uint8

const (
	KindHuman Kind = iota
	KindComputer
)

func (k Kind) String() string {
	switch k {
	case KindHuman:
		return "human"
	case KindComputer:
		return "computer"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Player is a seat at the table. Two players are the same player when
// their names match.
type Player struct {
	Name string
	Kind Kind
}

var (
	Human    = Player{Name: "Human", Kind: KindHuman}
	Computer = Player{Name: "Computer", Kind: KindComputer}
)

// Default returns the two seats of a standard game.
func Default() []Player {
	return []Player{Human, Computer}
}

func (p Player) String() string { return p.Name }

func (p Player) Equal(o Player) bool { return p.Name == o.Name }

func (p Player) IsComputer() bool { return p.Kind == KindComputer }

// Lookup finds a player by name.
func Lookup(players []Player, name string) (Player, bool) {
	for _, p := range players {
		if p.Name == name {
			return p, true
		}
	}
	return Player{}, false
}
