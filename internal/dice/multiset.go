package dice

import "slices"

// The helpers below treat a []int of face values as a multiset. None of
// them modify their arguments.

// Counts returns the number of times each face appears, indexed by face.
func Counts(values []int) [Sides + 1]int {
	var freqs [Sides + 1]int
	for _, v := range values {
		if v >= 1 && v <= Sides {
			freqs[v]++
		}
	}
	return freqs
}

// CountOf returns how many times n appears.
func CountOf(values []int, n int) int {
	var c int
	for _, v := range values {
		if v == n {
			c++
		}
	}
	return c
}

func Contains(values []int, n int) bool {
	return slices.Contains(values, n)
}

func Sum(values []int) int {
	var total int
	for _, v := range values {
		total += v
	}
	return total
}

// MaxCount returns the highest multiplicity of any face, or 0 when empty.
func MaxCount(values []int) int {
	var best int
	for _, f := range Counts(values) {
		best = max(best, f)
	}
	return best
}

// NumRepeats returns how many dice are duplicates of an earlier die, i.e.
// the sum over faces of (count - 1) for faces seen more than once.
func NumRepeats(values []int) int {
	var n int
	for _, f := range Counts(values) {
		if f > 1 {
			n += f - 1
		}
	}
	return n
}

// Distinct returns the values with duplicates removed, keeping first
// occurrences in order.
func Distinct(values []int) []int {
	seen := make(map[int]struct{}, len(values))
	out := make([]int, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func CountUnique(values []int) int {
	return len(Distinct(values))
}

// AllSame reports whether every value equals the first. Empty input is
// trivially uniform.
func AllSame(values []int) bool {
	for _, v := range values {
		if v != values[0] {
			return false
		}
	}
	return true
}

// LongestRun returns the length of the longest run of consecutive faces
// present, ignoring duplicates. 1 and 6 are not adjacent.
func LongestRun(values []int) int {
	freqs := Counts(values)
	var best, cur int
	for face := 1; face <= Sides; face++ {
		if freqs[face] > 0 {
			cur++
			best = max(best, cur)
		} else {
			cur = 0
		}
	}
	return best
}

// Sorted returns a sorted copy.
func Sorted(values []int) []int {
	out := slices.Clone(values)
	slices.Sort(out)
	return out
}

// Concat returns a followed by b in a new slice.
func Concat(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// Intersection returns the elements of b that are also in a, respecting
// multiplicity, in b's order.
func Intersection(a, b []int) []int {
	freqs := Counts(a)
	out := make([]int, 0, min(len(a), len(b)))
	for _, v := range b {
		if v >= 1 && v <= Sides && freqs[v] > 0 {
			out = append(out, v)
			freqs[v]--
		}
	}
	return out
}

// Difference returns the multiset a minus b, sorted ascending.
func Difference(a, b []int) []int {
	freqs := Counts(b)
	out := make([]int, 0, len(a))
	for _, v := range Sorted(a) {
		if v >= 1 && v <= Sides && freqs[v] > 0 {
			freqs[v]--
			continue
		}
		out = append(out, v)
	}
	return out
}

// UnorderedEqual reports whether a and b hold the same multiset.
func UnorderedEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	return Counts(a) == Counts(b)
}

// Subset reports whether sub is contained in super, respecting
// multiplicity.
func Subset(super, sub []int) bool {
	have := Counts(super)
	for face, n := range Counts(sub) {
		if n > have[face] {
			return false
		}
	}
	return Valid(sub)
}

// Combinations returns every multiset of n dice as a non-decreasing
// sequence, in lexicographic order. There are C(n+5, 5) of them; n == 0
// yields a single empty combination.
func Combinations(n int) [][]int {
	var out [][]int
	cur := make([]int, 0, n)
	var gen func(left, start int)
	gen = func(left, start int) {
		if left == 0 {
			out = append(out, slices.Clone(cur))
			return
		}
		for face := start; face <= Sides; face++ {
			cur = append(cur, face)
			gen(left-1, face)
			cur = cur[:len(cur)-1]
		}
	}
	gen(n, 1)
	return out
}

// Permutations returns all 6^n ordered rolls of n dice.
func Permutations(n int) [][]int {
	if n <= 0 {
		return nil
	} else if n == 1 {
		return [][]int{{1}, {2}, {3}, {4}, {5}, {6}}
	}

	var next [][]int
	left := Permutations(n - 1)
	for face := 1; face <= Sides; face++ {
		for _, l := range left {
			next = append(next, append([]int{face}, l...))
		}
	}
	return next
}
