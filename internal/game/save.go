package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AustinJGreen/goyahtzee/internal/scorecard"
)

const (
	roundPrefix     = "Round:"
	scorecardHeader = "Scorecard:"
)

// Serialize writes the round and the scorecard as they stood when the
// current round began. Turns already played in the round are not saved,
// so a loaded game replays the round from its first turn. Dice and the
// roll count are not saved either; a loaded game starts with a fresh roll.
func (g *Game) Serialize() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", roundPrefix, g.round)
	b.WriteString(scorecardHeader)
	b.WriteByte('\n')
	b.WriteString(g.roundStart.Serialize())
	return b.String()
}

// Load restores a game written by Serialize. Winner names on the card
// must belong to opts.Players (or the default seats).
func Load(text string, opts Options) (*Game, error) {
	g, err := newSession(opts)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	next := func() (string, bool) {
		for len(lines) > 0 {
			line := strings.TrimSpace(lines[0])
			lines = lines[1:]
			if line != "" {
				return line, true
			}
		}
		return "", false
	}

	line, ok := next()
	if !ok || !strings.HasPrefix(line, roundPrefix) {
		return nil, fmt.Errorf("%w: missing %q line", ErrMalformedSave, roundPrefix)
	}
	round, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, roundPrefix)))
	if err != nil || round < 1 {
		return nil, fmt.Errorf("%w: bad round in %q", ErrMalformedSave, line)
	}
	if line, ok = next(); !ok || line != scorecardHeader {
		return nil, fmt.Errorf("%w: missing %q marker", ErrMalformedSave, scorecardHeader)
	}

	card, err := scorecard.Deserialize(strings.Join(lines, "\n"), g.players)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSave, err)
	}

	g.card, g.round = card, round
	g.log.WithField("round", round).Info("game loaded")
	g.journal.addf("Loaded game at round %d", round)
	g.beginRound()
	return g, nil
}
