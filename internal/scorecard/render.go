package scorecard

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/AustinJGreen/goyahtzee/internal/category"
	"github.com/AustinJGreen/goyahtzee/internal/player"
)

// Render draws the card as a box table with a totals footer for players.
func (sc ScoreCard) Render(players []player.Player) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Category", "Round", "Winner", "Points"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	for _, c := range category.All {
		e, ok := sc.Entry(c)
		if !ok {
			t.AppendRow(table.Row{c, "-", "-", "-"})
			continue
		}
		t.AppendRow(table.Row{c, e.Round, e.Winner.Name, e.Points})
	}
	for _, p := range players {
		t.AppendFooter(table.Row{"", "", p.Name, sc.PlayerScore(p)})
	}
	return t.Render()
}
