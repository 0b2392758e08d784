// Package game runs a session: whose turn it is, the dice on the table,
// the roll counter and the shared scorecard. A Game is owned by a single
// goroutine; nothing in it is safe for concurrent use.
package game

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/AustinJGreen/goyahtzee/internal/dice"
	"github.com/AustinJGreen/goyahtzee/internal/help"
	"github.com/AustinJGreen/goyahtzee/internal/player"
	"github.com/AustinJGreen/goyahtzee/internal/scorecard"
)

// MaxRolls is the number of rolls a turn allows.
const MaxRolls = 3

// Options configure a new or loaded session. The zero value plays the
// default human and computer seats with a time-seeded roller.
type Options struct {
	// ID names the session. A random UUID is used when empty.
	ID      string
	Players []player.Player
	// Deciders are keyed by player name. Computer seats without one get
	// a help.Computer.
	Deciders map[string]Decider
	Roller   *dice.Roller
	Logger   logrus.FieldLogger
}

type Game struct {
	id      string
	players []player.Player

	card  scorecard.ScoreCard
	round int
	// roundStart is the card as the current round began. Saves write it,
	// since the save format cannot express a partly played round.
	roundStart scorecard.ScoreCard
	// queue holds the players yet to play this round; the head is on turn.
	queue []player.Player

	dice      [dice.HandSize]dice.Die
	rollCount int

	roller   *dice.Roller
	deciders map[string]Decider
	log      logrus.FieldLogger
	journal  journal
}

// New starts a game at round 1 with an empty card and the first turn
// already rolled.
func New(opts Options) (*Game, error) {
	g, err := newSession(opts)
	if err != nil {
		return nil, err
	}
	g.round = 1
	g.log.WithField("players", g.players).Info("new game")
	g.journal.addf("New game between %s", joinPlayers(g.players))
	g.beginRound()
	return g, nil
}

func newSession(opts Options) (*Game, error) {
	players := opts.Players
	if len(players) == 0 {
		players = player.Default()
	}
	seen := make(map[string]bool, len(players))
	for _, p := range players {
		if p.Name == "" || strings.ContainsAny(p.Name, " \t\n") {
			return nil, fmt.Errorf("player name %q: %w", p.Name, ErrInvalidPlayer)
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("duplicate player %q: %w", p.Name, ErrInvalidPlayer)
		}
		seen[p.Name] = true
	}

	roller := opts.Roller
	if roller == nil {
		roller = dice.NewRoller(0)
	}
	id := opts.ID
	if id == "" {
		id = uuid.NewString()
	}
	logger := opts.Logger
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}

	deciders := make(map[string]Decider, len(players))
	for _, p := range players {
		if d, ok := opts.Deciders[p.Name]; ok {
			deciders[p.Name] = d
		} else if p.IsComputer() {
			deciders[p.Name] = help.NewComputer(roller)
		}
	}

	return &Game{
		id:       id,
		players:  slices.Clone(players),
		card:     scorecard.New(),
		roller:   roller,
		deciders: deciders,
		log:      logger.WithField("game", id),
	}, nil
}

func (g *Game) ID() string { return g.id }

func (g *Game) Card() scorecard.ScoreCard { return g.card }

func (g *Game) Round() int { return g.round }

func (g *Game) RollCount() int { return g.rollCount }

func (g *Game) Players() []player.Player { return slices.Clone(g.players) }

// Queue returns the players still to play this round, current player first.
func (g *Game) Queue() []player.Player { return slices.Clone(g.queue) }

func (g *Game) Dice() [dice.HandSize]dice.Die { return g.dice }

// CurrentPlayer returns the player on turn.
func (g *Game) CurrentPlayer() (player.Player, error) {
	if g.IsOver() {
		return player.Player{}, ErrGameOver
	}
	if len(g.queue) == 0 {
		return player.Player{}, ErrNoCurrentPlayer
	}
	return g.queue[0], nil
}

// RoundInProgress reports whether some player has already finished a turn
// in the current round.
func (g *Game) RoundInProgress() bool {
	return !g.IsOver() && len(g.queue) < len(g.players)
}

// Decider returns the decider seated for p, if any.
func (g *Game) Decider(p player.Player) (Decider, bool) {
	d, ok := g.deciders[p.Name]
	return d, ok
}

// IsOver reports whether every category on the card is filled.
func (g *Game) IsOver() bool { return g.card.IsFull() }

func (g *Game) IsDraw() bool { return g.card.IsDraw() }

func (g *Game) Winner() (player.Player, bool) { return g.card.Winner() }

// KeptDice returns the dice locked by earlier rolls this turn.
func (g *Game) KeptDice() []dice.Die {
	return g.diceWhere(dice.Die.Locked)
}

// UnkeptDice returns the dice the last roll produced.
func (g *Game) UnkeptDice() []dice.Die {
	return g.diceWhere(func(d dice.Die) bool { return !d.Locked() })
}

// MarkedDice returns the dice that will lock on the next roll.
func (g *Game) MarkedDice() []dice.Die {
	return g.diceWhere(dice.Die.MarkedForLock)
}

func (g *Game) diceWhere(keep func(dice.Die) bool) []dice.Die {
	var out []dice.Die
	for _, d := range g.dice {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}

// rollFor asks p's decider for n faces, falling back to the game's roller
// when there is no decider or it answers with something unusable.
func (g *Game) rollFor(p player.Player, n int) []int {
	if d, ok := g.deciders[p.Name]; ok {
		if values := d.RollDice(n); len(values) == n && dice.Valid(values) {
			return values
		}
	}
	return g.roller.Roll(n)
}

func joinPlayers(ps []player.Player) string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}
