package bsym

import (
	"cmp"
	"iter"
	"maps"
	"math/big"
	"slices"

	"github.com/cockroachdb/errors"
)

// LabelCounts maps a label to the number of sites that label occupies.
type LabelCounts map[int]int

// Sites returns the total number of sites described by the counts.
func (lc LabelCounts) Sites() int {
	n := 0
	for _, c := range lc {
		n += c
	}
	return n
}

// Occupation flattens the counts into a list of labels in ascending order, each label repeated once per occurrence.
func (lc LabelCounts) Occupation() ([]int, error) {
	labels := slices.Sorted(maps.Keys(lc))
	for _, label := range labels {
		if count := lc[label]; count < 0 {
			return nil, errors.Wrapf(ErrNegativeCount, "label %d has count %d", label, count)
		}
	}
	out := make([]int, 0, lc.Sites())
	for _, label := range labels {
		for j := 0; j < lc[label]; j++ {
			out = append(out, label)
		}
	}
	return out, nil
}

// Permutor creates an IdenticalPermutor over the labels.
// If sites is positive, the total count of labels must equal it.
func (lc LabelCounts) Permutor(sites int) (*IdenticalPermutor, error) {
	occupation, err := lc.Occupation()
	if err != nil {
		return nil, err
	}
	if sites > 0 && len(occupation) != sites {
		return nil, errors.Wrapf(ErrCountMismatch, "%d labels for %d sites", len(occupation), sites)
	}
	labels := slices.Sorted(maps.Keys(lc))
	sets := make([]int, len(labels))
	for i, label := range labels {
		sets[i] = lc[label]
	}
	return &IdenticalPermutor{indices: occupation, labels: labels, sets: sets}, nil
}

// IdenticalPermutor permutes a set of potentially repeated labels, with sets[i] copies of labels[i].
type IdenticalPermutor struct {
	indices []int
	labels  []int
	sets    []int
}

// NewIdenticalPermutor creates an IdenticalPermutor for potentially duplicated integers in the range [0, len(setSizes)).
// Each passed ith value in the variadic argument represents the number of identical copies of integer i that is in the set to be permuted.
// For example:
//
//	NewIdenticalPermutor(2, 0, 3, 1)
//
// This will create a permutor over the set [0, 0, 2, 2, 2, 3] (2 copies of 0, 0 copies of 1, 3 copies of 2, and 1 copy of 3).
func NewIdenticalPermutor(setSizes ...int) *IdenticalPermutor {
	out := make([]int, 0)
	labels := make([]int, len(setSizes))
	sets := make([]int, len(setSizes))
	for set, setSize := range setSizes {
		labels[set] = set
		sets[set] = setSize
		for j := 0; j < setSize; j++ {
			out = append(out, set)
		}
	}
	return &IdenticalPermutor{indices: out, labels: labels, sets: sets}
}

// Len returns the length of the set being permuted.
func (ip IdenticalPermutor) Len() int {
	return len(ip.indices)
}

// Labels returns the distinct labels in the set, in ascending order.
func (ip IdenticalPermutor) Labels() []int {
	return slices.Clone(ip.labels)
}

// Sets returns the number of copies of each label, aligned with Labels.
func (ip IdenticalPermutor) Sets() []int {
	return slices.Clone(ip.sets)
}

// Occupation returns the labels in ascending order, each repeated once per copy.
func (ip IdenticalPermutor) Occupation() []int {
	return slices.Clone(ip.indices)
}

// NumberOfPermutations returns the number of distinct permutations possible for the set.
func (ip IdenticalPermutor) NumberOfPermutations() *big.Int {
	return Multinomial(ip.sets...)
}

// Permutations returns every distinct ordering of the set exactly once.
func (ip *IdenticalPermutor) Permutations() iter.Seq[[]int] {
	return UniquePermutations(ip.indices)
}

func factorial(n int) *big.Int {
	z := new(big.Int)
	return z.MulRange(1, int64(n))
}

// Multinomial returns (sum k_i)! / prod(k_i!), the number of distinct orderings of a multiset with multiplicities k_i.
func Multinomial(counts ...int) *big.Int {
	n := 0
	for _, k := range counts {
		n += k
	}
	fact := factorial(n)
	for _, k := range counts {
		fact.Div(fact, factorial(k))
	}
	return fact
}

// tally returns the distinct values of elements in ascending order along with the number of times each occurs.
func tally[L cmp.Ordered](elements []L) ([]L, []int) {
	values := slices.Clone(elements)
	slices.Sort(values)
	values = slices.Compact(values)
	counts := make([]int, len(values))
	for _, e := range elements {
		i, _ := slices.BinarySearch(values, e)
		counts[i]++
	}
	return values, counts
}

// UniquePermutations returns a sequence over every distinct ordering of elements.
// Duplicate values are never placed into the same ordering twice, so exactly N!/prod(m_i!) orderings are produced
// without filtering.
//
// Orderings are built by backtracking from the last position to the first, trying each distinct value with
// occurrences left. Every yielded slice is freshly allocated. The occurrence counters belong to a single
// range over the sequence: ranging again starts a new, independent enumeration.
func UniquePermutations[L cmp.Ordered](elements []L) iter.Seq[[]L] {
	return func(yield func([]L) bool) {
		values, remaining := tally(elements)
		result := make([]L, len(elements))

		var fill func(d int) bool
		fill = func(d int) bool {
			if d < 0 {
				return yield(slices.Clone(result))
			}
			for i, v := range values {
				if remaining[i] == 0 {
					continue
				}
				result[d] = v
				remaining[i]--
				more := fill(d - 1)
				remaining[i]++
				if !more {
					return false
				}
			}
			return true
		}

		fill(len(result) - 1)
	}
}

// AllPermutations returns every distinct arrangement of the labels described by labels.
// If numberOfSites is positive, the total count of labels must equal it.
// The full result is held in memory: range over UniquePermutations for large spaces.
func AllPermutations(labels LabelCounts, numberOfSites int) ([][]int, error) {
	ip, err := labels.Permutor(numberOfSites)
	if err != nil {
		return nil, err
	}
	return slices.Collect(ip.Permutations()), nil
}
