package bsym

import (
	"cmp"
	"slices"
)

// NextPermutation rearranges s in place into the lexicographically next permutation of its elements.
// It returns false when s was already the last permutation, in which case s wraps around to ascending order.
//
// Repeated values are not collapsed beyond what lexicographic order already implies,
// so this is not a substitute for UniquePermutations.
func NextPermutation[L cmp.Ordered](s []L) bool {
	n := len(s)

	// tail is s[last:], the longest non-increasing suffix
	last := n - 1
	for last > 0 && s[last-1] >= s[last] {
		last--
	}

	if last > 0 {
		pivot := s[last-1]
		succ := n - 1
		for s[succ] <= pivot {
			succ--
		}
		s[last-1], s[succ] = s[succ], s[last-1]
	}

	if last >= 0 {
		slices.Reverse(s[last:])
	}
	return last > 0
}
