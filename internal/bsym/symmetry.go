package bsym

import (
	"fmt"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/segmentio/fasthash/jody"
)

// SymmetryOperation maps a configuration onto an equivalent one.
// The result must have the same length and the same labels as the input, possibly reordered.
// The identity operation returns a configuration that matches its input.
type SymmetryOperation interface {
	OperateOn(c *Configuration) *Configuration
}

// Permutation is a SymmetryOperation that moves the label on site i to site p[i].
// Sites are numbered from 0.
type Permutation struct {
	vector []int
}

// NewPermutation creates a Permutation from a vector of destination sites.
// The vector must contain each of 0..len(vector)-1 exactly once.
func NewPermutation(vector []int) (Permutation, error) {
	seen := make([]bool, len(vector))
	for i, v := range vector {
		if v < 0 || v >= len(vector) {
			return Permutation{}, errors.Wrapf(ErrNotPermutation, "site %d mapped to %d, outside [0,%d)", i, v, len(vector))
		}
		if seen[v] {
			return Permutation{}, errors.Wrapf(ErrNotPermutation, "site %d is the image of more than one site", v)
		}
		seen[v] = true
	}
	return Permutation{vector: slices.Clone(vector)}, nil
}

// PermutationFromOneBased creates a Permutation from a vector of destination sites numbered from 1.
func PermutationFromOneBased(vector []int) (Permutation, error) {
	zero := make([]int, len(vector))
	for i, v := range vector {
		zero[i] = v - 1
	}
	return NewPermutation(zero)
}

// Identity returns the permutation on n sites that leaves every label in place.
func Identity(n int) Permutation {
	v := make([]int, n)
	for i := range v {
		v[i] = i
	}
	return Permutation{vector: v}
}

// Len returns the number of sites the permutation acts on.
func (p Permutation) Len() int {
	return len(p.vector)
}

// Vector returns a copy of the destination sites.
func (p Permutation) Vector() []int {
	return slices.Clone(p.vector)
}

// OperateOn returns a new configuration with the label of site i of c moved to site p[i].
// It panics if c and p have different lengths.
func (p Permutation) OperateOn(c *Configuration) *Configuration {
	if c.Len() != p.Len() {
		panic(fmt.Errorf("permutation on %d sites applied to configuration on %d sites", p.Len(), c.Len()))
	}
	out := make([]int, len(p.vector))
	for i, dest := range p.vector {
		out[dest] = c.labels[i]
	}
	return &Configuration{labels: out}
}

// Compose returns the permutation equivalent to applying q and then p.
func (p Permutation) Compose(q Permutation) Permutation {
	if p.Len() != q.Len() {
		panic(fmt.Errorf("cannot compose permutations on %d and %d sites", p.Len(), q.Len()))
	}
	v := make([]int, len(q.vector))
	for i, dest := range q.vector {
		v[i] = p.vector[dest]
	}
	return Permutation{vector: v}
}

// Invert returns the permutation that undoes p.
func (p Permutation) Invert() Permutation {
	v := make([]int, len(p.vector))
	for i, dest := range p.vector {
		v[dest] = i
	}
	return Permutation{vector: v}
}

// IsIdentity reports whether p leaves every site in place.
func (p Permutation) IsIdentity() bool {
	for i, dest := range p.vector {
		if i != dest {
			return false
		}
	}
	return true
}

// Equal reports whether p and q move every site to the same place.
func (p Permutation) Equal(q Permutation) bool {
	return slices.Equal(p.vector, q.vector)
}

func (p Permutation) hash() uint64 {
	h := jody.HashString64("")
	for _, x := range p.vector {
		h = jody.AddUint64(h, uint64(x))
	}
	return h
}

func (p Permutation) String() string {
	return fmt.Sprint(p.vector)
}

// permutationSet buckets permutations by hash.
type permutationSet map[uint64][]Permutation

// add inserts p unless an equal permutation is present. It reports whether p was inserted.
func (s permutationSet) add(p Permutation) bool {
	if s.contains(p) {
		return false
	}
	h := p.hash()
	s[h] = append(s[h], p)
	return true
}

func (s permutationSet) contains(p Permutation) bool {
	return slices.ContainsFunc(s[p.hash()], p.Equal)
}

// IsClosed reports whether every product of two of perms is also in perms.
// A finite set of permutations that is closed is a group.
// Permutations on different numbers of sites are never closed.
func IsClosed(perms []Permutation) bool {
	seen := make(permutationSet)
	for _, p := range perms {
		if p.Len() != perms[0].Len() {
			return false
		}
		seen.add(p)
	}
	for _, a := range perms {
		for _, b := range perms {
			if !seen.contains(a.Compose(b)) {
				return false
			}
		}
	}
	return true
}

// Closure returns the group generated by generators: the identity, the generators, and every product of them.
// Elements appear in the order they are discovered, identity first.
// All generators must act on the same number of sites.
func Closure(generators []Permutation) ([]Permutation, error) {
	if len(generators) == 0 {
		return nil, ErrNoOperations
	}
	n := generators[0].Len()
	for i, g := range generators {
		if g.Len() != n {
			return nil, errors.Wrapf(ErrLengthMismatch, "generator %d acts on %d sites, expected %d", i, g.Len(), n)
		}
	}

	seen := make(permutationSet)
	group := []Permutation{Identity(n)}
	seen.add(group[0])
	// every element is multiplied by every generator once; new products join the queue
	for next := 0; next < len(group); next++ {
		for _, g := range generators {
			product := g.Compose(group[next])
			if seen.add(product) {
				group = append(group, product)
			}
		}
	}
	return group, nil
}

// Operations converts permutations to a slice of SymmetryOperation.
func Operations(perms []Permutation) []SymmetryOperation {
	out := make([]SymmetryOperation, len(perms))
	for i, p := range perms {
		out[i] = p
	}
	return out
}
