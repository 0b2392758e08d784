package game

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/AustinJGreen/goyahtzee/internal/dice"
	"github.com/AustinJGreen/goyahtzee/internal/player"
)

// beginRound orders the players for the current round and rolls for the
// first of them. A finished game has no round to begin.
func (g *Game) beginRound() {
	g.roundStart = g.card
	if g.IsOver() {
		g.queue = nil
		return
	}
	g.queue = g.playerOrder()
	g.log.WithField("round", g.round).WithField("order", g.queue).Info("round started")
	g.journal.addf("Round %d: %s", g.round, joinPlayers(g.queue))
	g.startTurn()
}

// playerOrder sorts the players by ascending total, lowest first. Players
// sharing a total are ordered by TieBreak.
func (g *Game) playerOrder() []player.Player {
	sorted := slices.Clone(g.players)
	slices.SortStableFunc(sorted, func(a, b player.Player) int {
		return cmp.Compare(g.card.PlayerScore(a), g.card.PlayerScore(b))
	})

	order := make([]player.Player, 0, len(sorted))
	for i := 0; i < len(sorted); {
		score := g.card.PlayerScore(sorted[i])
		j := i + 1
		for j < len(sorted) && g.card.PlayerScore(sorted[j]) == score {
			j++
		}
		order = append(order, g.TieBreak(sorted[i:j])...)
		i = j
	}
	return order
}

// TieBreak orders players by a single die roll each, highest first.
// Players who roll the same face roll again among themselves until every
// position is decided. It terminates with probability 1 but has no bound
// on the number of re-rolls.
func (g *Game) TieBreak(tied []player.Player) []player.Player {
	if len(tied) < 2 {
		return slices.Clone(tied)
	}

	rolls := make(map[string]int, len(tied))
	desc := make([]string, len(tied))
	for i, p := range tied {
		rolls[p.Name] = g.rollFor(p, 1)[0]
		desc[i] = fmt.Sprintf("%s rolls %d", p.Name, rolls[p.Name])
	}
	g.log.WithField("rolls", rolls).Debug("tie-break")
	g.journal.addf("Tie-break: %s", strings.Join(desc, ", "))

	sorted := slices.Clone(tied)
	slices.SortStableFunc(sorted, func(a, b player.Player) int {
		return cmp.Compare(rolls[b.Name], rolls[a.Name])
	})

	order := make([]player.Player, 0, len(sorted))
	for i := 0; i < len(sorted); {
		j := i + 1
		for j < len(sorted) && rolls[sorted[j].Name] == rolls[sorted[i].Name] {
			j++
		}
		order = append(order, g.TieBreak(sorted[i:j])...)
		i = j
	}
	return order
}

// startTurn gives the player at the head of the queue a fresh roll.
func (g *Game) startTurn() {
	if len(g.queue) == 0 {
		return
	}
	p := g.queue[0]
	for i, v := range g.rollFor(p, dice.HandSize) {
		g.dice[i] = dice.NewDie(v)
	}
	g.rollCount = 1
	g.log.WithField("player", p.Name).WithField("round", g.round).
		WithField("roll", g.rollCount).Debugf("rolled %v", dice.Values(g.dice[:]))
	g.journal.addf("%s rolls %v", p.Name, dice.Values(g.dice[:]))
}

// endTurn retires the current player. When the round is exhausted and the
// card still has room, the next round begins.
func (g *Game) endTurn() {
	if len(g.queue) > 0 {
		g.queue = g.queue[1:]
	}
	if g.IsOver() {
		g.queue = nil
		g.roundStart = g.card
		g.log.WithField("round", g.round).Info("game over")
		g.journal.addf("Game over after round %d", g.round)
		return
	}
	if len(g.queue) == 0 {
		g.round++
		g.beginRound()
		return
	}
	g.startTurn()
}
