package game

import (
	"fmt"
	"slices"
)

// journal is the human-readable history of one session, in event order.
type journal struct {
	entries []string
}

func (j *journal) addf(format string, args ...any) {
	j.entries = append(j.entries, fmt.Sprintf(format, args...))
}

func (j *journal) lines() []string {
	return slices.Clone(j.entries)
}

// Journal returns the events of the session so far, oldest first.
func (g *Game) Journal() []string {
	return g.journal.lines()
}
