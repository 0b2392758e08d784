package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/AustinJGreen/goyahtzee/internal/category"
	"github.com/AustinJGreen/goyahtzee/internal/dice"
	"github.com/AustinJGreen/goyahtzee/internal/game"
)

var C = struct {
	Locked, Marked, Hint, Info, Warn, Header, Prompt *color.Color
}{
	Locked: color.New(color.FgCyan),
	Marked: color.New(color.FgYellow),
	Hint:   color.New(color.FgGreen),
	Info:   color.New(color.FgHiBlue),
	Warn:   color.New(color.FgHiYellow),
	Header: color.New(color.FgWhite, color.Bold),
	Prompt: color.New(color.FgHiWhite),
}

var errQuit = errors.New("quit")

// console drives the human seat's turns from typed commands.
type console struct {
	g   *game.Game
	out io.Writer
	// seen counts the journal lines already printed.
	seen int
}

// exec runs one command and reports whether it ended the turn. errQuit asks to leave the
// game; other errors are shown to the player and the turn continues.
func (c *console) exec(cmd string) (turnDone bool, err error) {
	fields := strings.Fields(strings.ToLower(cmd))
	if len(fields) == 0 {
		return false, nil
	}
	args := fields[1:]

	switch fields[0] {
	case "roll", "r":
		return false, c.g.Roll()
	case "keep", "k":
		idx, err := parseInts(args)
		if err != nil {
			return false, err
		}
		for i := range idx {
			idx[i]--
		}
		return false, c.g.MarkForLock(idx...)
	case "hold":
		values, err := parseInts(args)
		if err != nil {
			return false, err
		}
		return false, c.g.KeepValues(values)
	case "set":
		values, err := parseInts(args)
		if err != nil {
			return false, err
		}
		return false, c.g.SetDice(values)
	case "help", "h":
		advice, err := c.g.MarkDiceForHelp()
		if err != nil {
			return false, err
		}
		C.Hint.Fprintln(c.out, advice.Message())
		return false, nil
	case "explain":
		text, err := c.g.Explain()
		if err != nil {
			return false, err
		}
		fmt.Fprint(c.out, text)
		return false, nil
	case "options", "o":
		c.printOptions()
		return false, nil
	case "card":
		fmt.Fprintln(c.out, c.g.Card().Render(c.g.Players()))
		return false, nil
	case "score", "s":
		cat, err := category.Parse(strings.Join(args, " "))
		if err != nil {
			return false, err
		}
		res, err := c.g.SelectCategory(cat)
		if err != nil {
			return false, err
		}
		if res.Scored {
			C.Info.Fprintf(c.out, "%s scores %d in %s\n", res.Player, res.Points, res.Category)
		} else {
			C.Warn.Fprintf(c.out, "%s does not fit %v, turn skipped\n", res.Category, res.Dice)
		}
		return true, nil
	case "skip":
		_, err := c.g.Skip()
		return err == nil, err
	case "?", "usage":
		printUsage(c.out)
		return false, nil
	case "quit", "q":
		return false, errQuit
	default:
		return false, fmt.Errorf("unknown command %q, try \"?\"", fields[0])
	}
}

// printDice shows the table: locked dice with *, marked dice with +,
// and dice the last help request recommends in green.
func (c *console) printDice() {
	C.Header.Fprintf(c.out, "Round %d, roll %d of %d (%s)\n", c.g.Round(), c.g.RollCount(), game.MaxRolls, c.g.Phase())
	for i, d := range c.g.Dice() {
		col := color.New(color.Reset)
		switch {
		case d.Locked():
			col = C.Locked
		case d.MarkedForLock():
			col = C.Marked
		case d.MarkedForHelp():
			col = C.Hint
		}
		col.Fprintf(c.out, " %d:[%s]", i+1, d)
	}
	fmt.Fprintln(c.out)
}

func (c *console) printOptions() {
	ds := c.g.Dice()
	values := dice.Values(ds[:])
	t := table.NewWriter()
	t.SetOutputMirror(c.out)
	t.AppendHeader(table.Row{"Category", "Points"})
	for _, cat := range c.g.Card().ApplicableCategories(values) {
		t.AppendRow(table.Row{cat, category.Score(values, cat)})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}

// flushJournal prints the journal lines added since the last call.
func (c *console) flushJournal() {
	lines := c.g.Journal()
	for _, l := range lines[c.seen:] {
		C.Info.Fprintln(c.out, l)
	}
	c.seen = len(lines)
}

func printUsage(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Command", "Alias", "Description"})
	t.AppendRows([]table.Row{
		{"roll", "r", "Lock marked dice and roll the rest"},
		{"keep <pos>...", "k", "Mark dice by position (1-5) to keep"},
		{"hold <face>...", "", "Keep dice by face value instead"},
		{"set <face>...", "", "Enter your own roll for the unlocked dice"},
		{"help", "h", "Ask the computer what to keep"},
		{"explain", "", "Show the reasoning behind the advice"},
		{"options", "o", "List the categories the dice score in"},
		{"score <category>", "s", "Score the dice and end the turn"},
		{"skip", "", "End the turn without scoring"},
		{"card", "", "Show the scorecard"},
		{"quit", "q", "Save and leave the game"},
	})
	t.SetStyle(table.StyleLight)
	t.Render()
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, a := range args {
		for _, part := range strings.Split(a, ",") {
			if part == "" {
				continue
			}
			n, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("not a number: %q", part)
			}
			out = append(out, n)
		}
	}
	return out, nil
}
