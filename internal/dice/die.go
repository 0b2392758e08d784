package dice

import "fmt"

const (
	// Sides is the number of faces on a die.
	Sides = 6
	// HandSize is the number of dice in a full hand.
	HandSize = 5
)

// Die is a single die. Dice are values: every mutator returns a new Die
// and leaves the receiver untouched.
//
// A locked die is excluded from further rolls this turn. A die marked for
// lock is a pending keep decision that becomes a lock on the next roll.
// Locking always clears the mark. The help mark is a display hint only.
type Die struct {
	value         int
	locked        bool
	markedForLock bool
	markedForHelp bool
}

// NewDie returns an unlocked, unmarked die showing value.
func NewDie(value int) Die {
	return Die{value: value}
}

func newDie(value int, locked, markedForLock, markedForHelp bool) Die {
	return Die{
		value:         value,
		locked:        locked,
		markedForLock: !locked && markedForLock,
		markedForHelp: markedForHelp,
	}
}

func (d Die) Value() int          { return d.value }
func (d Die) Locked() bool        { return d.locked }
func (d Die) MarkedForLock() bool { return d.markedForLock }
func (d Die) MarkedForHelp() bool { return d.markedForHelp }

// Kept reports whether the die is locked or about to be.
func (d Die) Kept() bool { return d.locked || d.markedForLock }

// Roll returns a fresh unmarked die with a value drawn from r. Locked dice
// are returned unchanged.
func (d Die) Roll(r *Roller) Die {
	if d.locked {
		return d
	}
	return NewDie(r.Die())
}

// WithValue sets the face value. Locked dice ignore the change and any
// marks are dropped, matching a manual re-roll of that die.
func (d Die) WithValue(value int) Die {
	if d.locked {
		return d
	}
	return NewDie(value)
}

// Increment moves the face up by one, wrapping six to one.
func (d Die) Increment() Die {
	if d.value >= Sides {
		return d.WithValue(1)
	}
	return d.WithValue(d.value + 1)
}

// Decrement moves the face down by one, wrapping one to six.
func (d Die) Decrement() Die {
	if d.value <= 1 {
		return d.WithValue(Sides)
	}
	return d.WithValue(d.value - 1)
}

func (d Die) Lock() Die {
	return newDie(d.value, true, false, false)
}

func (d Die) MarkForLock() Die {
	return newDie(d.value, d.locked, true, d.markedForHelp)
}

func (d Die) UnmarkForLock() Die {
	return newDie(d.value, d.locked, false, d.markedForHelp)
}

func (d Die) ToggleMarkForLock() Die {
	return newDie(d.value, d.locked, !d.markedForLock, d.markedForHelp)
}

func (d Die) WithMarkedForLock(marked bool) Die {
	return newDie(d.value, d.locked, marked, d.markedForHelp)
}

func (d Die) MarkForHelp() Die {
	return newDie(d.value, d.locked, d.markedForLock, true)
}

func (d Die) UnmarkForHelp() Die {
	return newDie(d.value, d.locked, d.markedForLock, false)
}

func (d Die) String() string {
	switch {
	case d.locked:
		return fmt.Sprintf("%d*", d.value)
	case d.markedForLock:
		return fmt.Sprintf("%d+", d.value)
	default:
		return fmt.Sprintf("%d", d.value)
	}
}

// Values returns the face values of ds in order.
func Values(ds []Die) []int {
	out := make([]int, len(ds))
	for i, d := range ds {
		out[i] = d.value
	}
	return out
}

// ValuesWhere returns the face values of the dice matching keep.
func ValuesWhere(ds []Die, keep func(Die) bool) []int {
	var out []int
	for _, d := range ds {
		if keep(d) {
			out = append(out, d.value)
		}
	}
	return out
}

// Valid reports whether every value is a legal die face.
func Valid(values []int) bool {
	for _, v := range values {
		if v < 1 || v > Sides {
			return false
		}
	}
	return true
}
