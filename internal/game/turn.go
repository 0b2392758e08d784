package game

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/AustinJGreen/goyahtzee/internal/category"
	"github.com/AustinJGreen/goyahtzee/internal/dice"
	"github.com/AustinJGreen/goyahtzee/internal/help"
	"github.com/AustinJGreen/goyahtzee/internal/player"
)

// Phase is where the current turn stands.
type Phase uint8

const (
	// AwaitingRoll: a keep decision is marked and waits for the roll that
	// commits it.
	AwaitingRoll Phase = iota
	// AwaitingKeepDecision: dice are on the table and more rolls remain.
	AwaitingKeepDecision
	// AwaitingCategorySelection: no roll can change the hand.
	AwaitingCategorySelection
	// TurnComplete: the card is full and no player is on turn.
	TurnComplete
)

func (p Phase) String() string {
	switch p {
	case AwaitingRoll:
		return "awaiting roll"
	case AwaitingKeepDecision:
		return "awaiting keep decision"
	case AwaitingCategorySelection:
		return "awaiting category selection"
	case TurnComplete:
		return "turn complete"
	default:
		return fmt.Sprintf("Phase(%d)", p)
	}
}

// Phase derives the turn phase from the dice and roll counter.
func (g *Game) Phase() Phase {
	if g.IsOver() {
		return TurnComplete
	}
	kept, marked := 0, 0
	for _, d := range g.dice {
		if d.Kept() {
			kept++
		}
		if d.MarkedForLock() {
			marked++
		}
	}
	switch {
	case g.rollCount >= MaxRolls || kept == dice.HandSize:
		return AwaitingCategorySelection
	case marked > 0:
		return AwaitingRoll
	default:
		return AwaitingKeepDecision
	}
}

// TurnResult describes how a turn ended.
type TurnResult struct {
	Player player.Player
	Round  int
	Dice   []int
	// Chosen is false when the player skipped without naming a category.
	Chosen   bool
	Category category.Category
	// Scored is false when the turn ended without an entry.
	Scored bool
	Points int
}

// Roll locks the dice marked for lock and re-rolls the rest.
func (g *Game) Roll() error {
	p, err := g.CurrentPlayer()
	if err != nil {
		return err
	}
	if g.rollCount >= MaxRolls {
		return ErrNoRollsLeft
	}
	free := len(dice.ValuesWhere(g.dice[:], func(d dice.Die) bool { return !d.Kept() }))
	if free == 0 {
		return ErrAllKept
	}

	values := g.rollFor(p, free)
	for i, d := range g.dice {
		if d.Kept() {
			g.dice[i] = d.Lock()
			continue
		}
		g.dice[i] = d.WithValue(values[0])
		values = values[1:]
	}
	g.rollCount++

	g.turnLog(p).Debugf("rolled %v", dice.Values(g.dice[:]))
	g.journal.addf("%s rolls %v", p.Name, dice.Values(g.dice[:]))
	return nil
}

// MarkForLock marks the dice at the given positions to be kept on the
// next roll. Locked dice stay locked.
func (g *Game) MarkForLock(idx ...int) error {
	if _, err := g.CurrentPlayer(); err != nil {
		return err
	}
	for _, i := range idx {
		if i < 0 || i >= len(g.dice) {
			return fmt.Errorf("die %d: %w", i, ErrInvalidKeep)
		}
	}
	for _, i := range idx {
		g.dice[i] = g.dice[i].MarkForLock()
	}
	return nil
}

// KeepValues replaces the current keep decision with the given faces,
// which must be drawn from the unlocked dice.
func (g *Game) KeepValues(values []int) error {
	if _, err := g.CurrentPlayer(); err != nil {
		return err
	}
	rolled := dice.Values(g.UnkeptDice())
	if !dice.Subset(rolled, values) {
		return fmt.Errorf("keep %v from %v: %w", values, rolled, ErrInvalidKeep)
	}

	want := dice.Counts(values)
	for i, d := range g.dice {
		if d.Locked() {
			continue
		}
		mark := want[d.Value()] > 0
		if mark {
			want[d.Value()]--
		}
		g.dice[i] = d.WithMarkedForLock(mark)
	}
	return nil
}

// SetDice overrides the faces of the unlocked dice, in table order. It
// serves players who roll physical dice and enter the result.
func (g *Game) SetDice(values []int) error {
	p, err := g.CurrentPlayer()
	if err != nil {
		return err
	}
	if n := len(g.UnkeptDice()); len(values) != n || !dice.Valid(values) {
		return fmt.Errorf("set %v on %d dice: %w", values, n, ErrInvalidDice)
	}
	for i, d := range g.dice {
		if d.Locked() {
			continue
		}
		g.dice[i] = d.WithValue(values[0])
		values = values[1:]
	}
	g.journal.addf("%s sets the dice to %v", p.Name, dice.Values(g.dice[:]))
	return nil
}

// SelectCategory ends the turn by scoring the dice in c. A category that
// is filled or does not apply to the dice ends the turn without a score.
func (g *Game) SelectCategory(c category.Category) (TurnResult, error) {
	p, err := g.CurrentPlayer()
	if err != nil {
		return TurnResult{}, err
	}
	values := dice.Values(g.dice[:])
	res := TurnResult{Player: p, Round: g.round, Dice: values, Chosen: true, Category: c}

	if g.card.IsOpen(c) && category.Applicable(values, c) {
		points := category.Score(values, c)
		card, err := g.card.AddEntry(c, g.round, p, points)
		if err != nil {
			return TurnResult{}, err
		}
		g.card = card
		res.Scored, res.Points = true, points
		g.turnLog(p).WithField("category", c.String()).Infof("scored %d", points)
		g.journal.addf("%s scores %d in %s with %v", p.Name, points, c, values)
	} else {
		g.turnLog(p).WithField("category", c.String()).Info("category unavailable, turn skipped")
		g.journal.addf("%s cannot score %v in %s and skips", p.Name, values, c)
	}

	g.endTurn()
	return res, nil
}

// Skip ends the turn without scoring.
func (g *Game) Skip() (TurnResult, error) {
	p, err := g.CurrentPlayer()
	if err != nil {
		return TurnResult{}, err
	}
	res := TurnResult{Player: p, Round: g.round, Dice: dice.Values(g.dice[:])}
	g.turnLog(p).Info("turn skipped")
	g.journal.addf("%s skips with %v", p.Name, res.Dice)
	g.endTurn()
	return res, nil
}

// helpDice splits the table into what is already kept and what was just
// rolled. After the last roll every die counts as kept.
func (g *Game) helpDice() (kept, rolled []int) {
	if g.rollCount >= MaxRolls {
		return dice.Values(g.dice[:]), nil
	}
	return dice.Values(g.KeptDice()), dice.Values(g.UnkeptDice())
}

// Help returns the computer's advice for the current position.
func (g *Game) Help() (help.Advice, error) {
	if _, err := g.CurrentPlayer(); err != nil {
		return help.Advice{}, err
	}
	kept, rolled := g.helpDice()
	return help.Advise(g.card, kept, rolled), nil
}

// Explain returns the long-form help text for the current position.
func (g *Game) Explain() (string, error) {
	if _, err := g.CurrentPlayer(); err != nil {
		return "", err
	}
	kept, rolled := g.helpDice()
	return help.Explain(g.card, kept, rolled), nil
}

// MarkDiceForHelp highlights the unlocked dice the advice would keep.
func (g *Game) MarkDiceForHelp() (help.Advice, error) {
	advice, err := g.Help()
	if err != nil {
		return advice, err
	}
	want := dice.Counts(advice.Keep)
	for i, d := range g.dice {
		d = d.UnmarkForHelp()
		if !d.Locked() && want[d.Value()] > 0 {
			want[d.Value()]--
			d = d.MarkForHelp()
		}
		g.dice[i] = d
	}
	return advice, nil
}

// PlayTurn plays the current player's turn through their decider: it
// rolls until the decider stands or the rolls run out, then scores the
// category the decider selects.
func (g *Game) PlayTurn() (TurnResult, error) {
	p, err := g.CurrentPlayer()
	if err != nil {
		return TurnResult{}, err
	}
	d, ok := g.deciders[p.Name]
	if !ok {
		return TurnResult{}, fmt.Errorf("%s: %w", p.Name, ErrNoDecider)
	}

	for {
		kept := dice.Values(g.KeptDice())
		rolled := dice.Values(g.UnkeptDice())
		if d.WantsHelp() {
			hk, hr := g.helpDice()
			g.journal.addf("Help for %s: %s", p.Name, help.Advise(g.card, hk, hr).Message())
		}
		if g.rollCount >= MaxRolls || len(rolled) == 0 || d.WantsToStand(g.card, kept, rolled) {
			g.journal.addf("%s stands on %v", p.Name, dice.Values(g.dice[:]))
			break
		}

		keep := d.ChooseDiceToKeep(g.card, rolled, kept)
		if err := g.KeepValues(keep); err != nil {
			return TurnResult{}, err
		}
		if g.Phase() == AwaitingCategorySelection {
			g.journal.addf("%s keeps every die and stands on %v", p.Name, dice.Values(g.dice[:]))
			break
		}
		g.journal.addf("%s keeps %v and re-rolls %v", p.Name, keep, dice.Difference(rolled, keep))
		if target, needed, ok := help.Target(g.card, dice.Concat(kept, keep)); ok && p.IsComputer() {
			g.turnLog(p).WithField("category", target.String()).Debugf("pursuing, needs %v", needed)
			g.journal.addf("%s is pursuing %s", p.Name, target)
		}
		if err := g.Roll(); err != nil {
			return TurnResult{}, err
		}
	}

	c, ok := d.SelectCategory(g.card, dice.Values(g.dice[:]))
	if !ok {
		return g.Skip()
	}
	return g.SelectCategory(c)
}

func (g *Game) turnLog(p player.Player) logrus.FieldLogger {
	return g.log.WithFields(logrus.Fields{
		"player": p.Name,
		"round":  g.round,
		"roll":   g.rollCount,
	})
}
