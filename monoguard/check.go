package monoguard

import "slices"

// MaxStep is the largest accepted distance between two adjacent levels.
const MaxStep = 3

// Direction is the trend committed to by the first accepted step.
type Direction int

const (
	Undetermined Direction = iota
	Increasing
	Decreasing
)

func (d Direction) String() string {
	switch d {
	case Increasing:
		return "increasing"
	case Decreasing:
		return "decreasing"
	default:
		return "undetermined"
	}
}

// stepDirection classifies the step from prev to next. A zero step or one
// larger than MaxStep has no valid direction.
func stepDirection(prev, next int) Direction {
	diff := next - prev
	switch {
	case diff >= 1 && diff <= MaxStep:
		return Increasing
	case diff <= -1 && diff >= -MaxStep:
		return Decreasing
	default:
		return Undetermined
	}
}

// IsSafe reports whether the record is strictly monotonic with every step
// between 1 and MaxStep.
func IsSafe(record Record) bool {
	return firstViolation(record, -1) < 0
}

// firstViolation scans record left to right, ignoring index skip, and
// returns the index of the level that broke the rule, or -1 when the
// remaining levels are safe.
func firstViolation(record Record, skip int) int {
	dir := Undetermined
	prev := -1
	for i := range record {
		if i == skip {
			continue
		}
		if prev < 0 {
			prev = i
			continue
		}
		step := stepDirection(record[prev], record[i])
		if step == Undetermined || (dir != Undetermined && step != dir) {
			return i
		}
		dir = step
		prev = i
	}
	return -1
}

// Delete returns a copy of record without the level at index i.
func Delete(record Record, i int) Record {
	return slices.Delete(slices.Clone(record), i, i+1)
}

// IsLooseSafe reports whether the record is safe as is, or becomes safe
// after removing exactly one level. Every single deletion is tried.
func IsLooseSafe(record Record) bool {
	if IsSafe(record) {
		return true
	}
	for i := range record {
		if IsSafe(Delete(record, i)) {
			return true
		}
	}
	return false
}

// IsLooseSafeScan answers the same question as IsLooseSafe without trying
// every deletion. The strict scan runs until the first bad pair (k-1, k);
// deleting anything after k leaves that pair intact, and deleting anything
// between 2 and k-2 leaves both the pair and the committed direction intact.
// That leaves k-1, k and the two levels that fixed the direction.
func IsLooseSafeScan(record Record) bool {
	k := firstViolation(record, -1)
	if k < 0 {
		return true
	}
	for _, blame := range []int{k - 1, k, 0, 1} {
		if firstViolation(record, blame) < 0 {
			return true
		}
	}
	return false
}
