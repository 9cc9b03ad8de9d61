package widget

import (
	"cmp"
	"slices"
)

// Linearly distributes available cells along one axis among demands, in order
// A separator of the given extent sits between consecutive placed elements
//
// Minimums are served first, front to back. Elements past the point where the
// remaining space cannot pay for the next separator get 0. Surplus is then
// shared max-min fairly: the smallest non-saturated elements are raised to a
// common level before any of them grows past another, each capped at its own
// maximum. Space is left unused only if every placed element is at its maximum.
func Linearly[A Axis](available, separator int, demands []Demand[A]) []int {
	assigned, _ := allocate(available, separator, demands)
	return assigned
}

// allocate implements Linearly and also reports how many elements took part,
// the number of separators used is placed-1
func allocate[A Axis](available, separator int, demands []Demand[A]) (assigned []int, placed int) {
	assigned = make([]int, len(demands))
	available = max(available, 0)
	separator = max(separator, 0)

	// Indices that can still grow: unbounded, or max above min
	var unfinished []int

	for i, d := range demands {
		placed = i + 1
		take := min(available, d.min)
		assigned[i] = take
		available -= take

		if !d.bounded || d.max > d.min {
			unfinished = append(unfinished, i)
		}

		if i == len(demands)-1 {
			break
		}
		if available <= separator {
			// Leftover is handed to the placed elements below
			break
		}
		available -= separator
	}

	for len(unfinished) > 0 {
		slices.SortStableFunc(unfinished, func(a, b int) int {
			return cmp.Compare(assigned[a], assigned[b])
		})

		// Climb the ladder: raising the k lowest to the next level costs k*step
		spent, level, equalized := 0, 0, 0
		for k, idx := range unfinished {
			cost := (assigned[idx] - level) * k
			if spent+cost > available {
				break
			}
			equalized = k + 1
			spent += cost
			level = assigned[idx]
		}
		target := level + (available-spent)/equalized

		if assigned[unfinished[0]] == target {
			// Less than one cell per equalized element left
			break
		}

		still := unfinished[:0]
		for _, idx := range unfinished {
			d := demands[idx]
			var grow int
			if d.bounded && d.max <= target {
				grow = max(d.max-assigned[idx], 0)
			} else {
				still = append(still, idx)
				grow = max(target-assigned[idx], 0)
			}
			assigned[idx] += grow
			available -= grow
		}
		unfinished = still
	}

	// Truncation residue, at most one cell each, lowest first
	for _, idx := range unfinished {
		if available == 0 {
			break
		}
		assigned[idx]++
		available--
	}

	return assigned, placed
}
