package game

import (
	"strings"

	"golang.org/x/text/message"
)

// ScoreText lists every player's current total.
func (g *Game) ScoreText() string {
	p := newPrinter()
	var b strings.Builder
	p.Fprintf(&b, msgScores)
	g.writeScores(p, &b)
	b.WriteString("\n")
	return b.String()
}

// Result announces the winner or the draw with the final scores.
func (g *Game) Result() string {
	p := newPrinter()
	if !g.IsOver() {
		return p.Sprintf(msgNotOver)
	}
	var b strings.Builder
	if w, ok := g.Winner(); ok {
		p.Fprintf(&b, msgWins, w.Name)
	} else {
		p.Fprintf(&b, msgDraw)
	}
	p.Fprintf(&b, msgFinalScores)
	g.writeScores(p, &b)
	return b.String()
}

func (g *Game) writeScores(p *message.Printer, b *strings.Builder) {
	for i, score := range g.card.PlayerScores(g.players) {
		p.Fprintf(b, msgScoreLine, g.players[i].Name, score)
	}
}
