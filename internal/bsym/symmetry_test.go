package bsym

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// symmetry of a ring of four sites: rotation by one site and a mirror reflection.
var (
	rotate4  = Permutation{vector: []int{1, 2, 3, 0}}
	reflect4 = Permutation{vector: []int{3, 2, 1, 0}}
)

func TestNewPermutation(t *testing.T) {
	tests := []struct {
		name    string
		vector  []int
		wantErr bool
	}{
		{"identity", []int{0, 1, 2}, false},
		{"swap", []int{1, 0}, false},
		{"empty", []int{}, false},
		{"repeated site", []int{0, 0}, true},
		{"out of range", []int{0, 2}, true},
		{"negative", []int{-1, 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPermutation(tt.vector)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotPermutation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.vector), p.Len())
		})
	}
}

func TestPermutationFromOneBased(t *testing.T) {
	p, err := PermutationFromOneBased([]int{2, 3, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0}, p.Vector())

	_, err = PermutationFromOneBased([]int{0, 1})
	assert.ErrorIs(t, err, ErrNotPermutation)
}

func TestPermutation_OperateOn(t *testing.T) {
	c := FromTuple(1, 2, 3, 4)
	assert.Equal(t, []int{4, 1, 2, 3}, rotate4.OperateOn(c).Labels())
	assert.Equal(t, []int{4, 3, 2, 1}, reflect4.OperateOn(c).Labels())
	assert.True(t, Identity(4).OperateOn(c).Matches(c))

	// the input is untouched
	assert.Equal(t, []int{1, 2, 3, 4}, c.Labels())

	assert.Panics(t, func() { rotate4.OperateOn(FromTuple(1, 2)) })
}

func TestPermutation_Compose(t *testing.T) {
	c := FromTuple(1, 2, 3, 4)
	want := rotate4.OperateOn(reflect4.OperateOn(c))
	assert.True(t, rotate4.Compose(reflect4).OperateOn(c).Matches(want))
	assert.True(t, rotate4.Compose(Identity(4)).Equal(rotate4))
	assert.Panics(t, func() { rotate4.Compose(Identity(3)) })
}

func TestPermutation_Invert(t *testing.T) {
	inv := rotate4.Invert()
	assert.Equal(t, []int{3, 0, 1, 2}, inv.Vector())
	assert.True(t, rotate4.Compose(inv).IsIdentity())
	assert.True(t, inv.Compose(rotate4).IsIdentity())
	assert.False(t, rotate4.IsIdentity())
}

func TestClosure(t *testing.T) {
	tests := []struct {
		name       string
		generators []Permutation
		want       int
	}{
		{"cyclic", []Permutation{rotate4}, 4},
		{"dihedral", []Permutation{rotate4, reflect4}, 8},
		{"reflection", []Permutation{reflect4}, 2},
		{"identity", []Permutation{Identity(4)}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group, err := Closure(tt.generators)
			require.NoError(t, err)
			require.Len(t, group, tt.want)
			assert.True(t, group[0].IsIdentity())

			// closed under composition
			for _, a := range group {
				for _, b := range group {
					ab := a.Compose(b)
					found := false
					for _, g := range group {
						if g.Equal(ab) {
							found = true
							break
						}
					}
					assert.True(t, found, "%v * %v = %v not in group", a, b, ab)
				}
			}
		})
	}
}

func TestIsClosed(t *testing.T) {
	dihedral, err := Closure([]Permutation{rotate4, reflect4})
	require.NoError(t, err)

	tests := []struct {
		name  string
		perms []Permutation
		want  bool
	}{
		{"dihedral group", dihedral, true},
		{"identity", []Permutation{Identity(4)}, true},
		{"reflection and identity", []Permutation{Identity(4), reflect4}, true},
		{"rotation and identity", []Permutation{Identity(4), rotate4}, false},
		{"reflection alone", []Permutation{reflect4}, false},
		{"mixed lengths", []Permutation{Identity(4), Identity(3)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsClosed(tt.perms))
		})
	}
}

func TestClosure_Errors(t *testing.T) {
	_, err := Closure(nil)
	assert.ErrorIs(t, err, ErrNoOperations)

	_, err = Closure([]Permutation{rotate4, Identity(3)})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}
