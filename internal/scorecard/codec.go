package scorecard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AustinJGreen/goyahtzee/internal/category"
	"github.com/AustinJGreen/goyahtzee/internal/player"
)

// openLine marks an unfilled category in serialized form.
const openLine = "0"

// Serialize writes one line per category in declaration order: "0" for an
// open category, "<points> <winner> <round>" for a filled one.
func (sc ScoreCard) Serialize() string {
	var b strings.Builder
	for _, e := range sc.entries {
		if e == nil {
			b.WriteString(openLine)
		} else {
			fmt.Fprintf(&b, "%d %s %d", e.Points, e.Winner.Name, e.Round)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Deserialize reads text written by Serialize. Winner names are resolved
// against players. Blank lines are ignored; anything other than exactly
// one line per category is rejected with ErrMalformedSave.
func Deserialize(text string, players []player.Player) (ScoreCard, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) != category.Count {
		return ScoreCard{}, fmt.Errorf("%w: want %d category lines, got %d", ErrMalformedSave, category.Count, len(lines))
	}

	var sc ScoreCard
	for i, line := range lines {
		if line == openLine {
			continue
		}
		e, err := parseEntry(line, players)
		if err != nil {
			return ScoreCard{}, fmt.Errorf("%w: %s: %v", ErrMalformedSave, category.All[i], err)
		}
		sc.entries[i] = &e
	}
	return sc, nil
}

func parseEntry(line string, players []player.Player) (Entry, error) {
	parts := strings.Fields(line)
	if len(parts) != 3 {
		return Entry{}, fmt.Errorf("want 3 fields, got %d in %q", len(parts), line)
	}
	points, err := strconv.Atoi(parts[0])
	if err != nil {
		return Entry{}, fmt.Errorf("points: %w", err)
	}
	winner, ok := player.Lookup(players, parts[1])
	if !ok {
		return Entry{}, fmt.Errorf("unknown player %q", parts[1])
	}
	round, err := strconv.Atoi(parts[2])
	if err != nil {
		return Entry{}, fmt.Errorf("round: %w", err)
	}
	if points < 0 || round < 1 {
		return Entry{}, fmt.Errorf("out of range entry %q", line)
	}
	return Entry{Points: points, Winner: winner, Round: round}, nil
}
