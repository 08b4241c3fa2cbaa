package bsym

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigurationSet(t *testing.T) {
	s := NewConfigurationSet()
	assert.True(t, s.Add(FromTuple(1, 1, 0)))
	assert.True(t, s.Add(FromTuple(0, 1, 1)))
	assert.False(t, s.Add(FromTuple(1, 1, 0)))
	assert.True(t, s.Add(FromTuple(1, 1)))

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(FromTuple(0, 1, 1)))
	assert.False(t, s.Contains(FromTuple(1, 0, 1)))

	stored, ok := s.Get(FromTuple(1, 1, 0))
	assert.True(t, ok)
	assert.Equal(t, "1 1 0", stored.String())

	configs := s.Configurations()
	assert.Equal(t, []string{"1 1 0", "0 1 1", "1 1"}, []string{configs[0].String(), configs[1].String(), configs[2].String()})
}

func TestConfigurationSet_Permutations(t *testing.T) {
	s := NewConfigurationSet()
	for perm := range UniquePermutations([]int{0, 0, 1, 1, 2, 2}) {
		assert.True(t, s.Add(FromVector(perm)))
	}
	assert.Equal(t, 90, s.Len())
}
