package bsym

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ringGroup(t *testing.T, n int) []SymmetryOperation {
	t.Helper()
	rotate := make([]int, n)
	reflect := make([]int, n)
	for i := range rotate {
		rotate[i] = (i + 1) % n
		reflect[i] = n - 1 - i
	}
	rp, err := NewPermutation(rotate)
	require.NoError(t, err)
	fp, err := NewPermutation(reflect)
	require.NoError(t, err)
	group, err := Closure([]Permutation{rp, fp})
	require.NoError(t, err)
	require.Len(t, group, 2*n)
	return Operations(group)
}

func TestConfigurationSpace_UniqueConfigurations(t *testing.T) {
	cs := NewConfigurationSpace(ringGroup(t, 4))
	unique, err := cs.UniqueConfigurations(LabelCounts{0: 2, 1: 2})
	require.NoError(t, err)
	require.Len(t, unique, 2)

	// neighbours first, as [1 1 0 0] is the first arrangement generated
	assert.Equal(t, []int{0, 0, 1, 1}, unique[0].Labels())
	assert.Equal(t, 4, unique[0].Count())
	assert.Equal(t, []int{0, 1, 0, 1}, unique[1].Labels())
	assert.Equal(t, 2, unique[1].Count())

	lowest, ok := unique[0].LowestNumericRepresentation()
	require.True(t, ok)
	assert.Equal(t, int64(11), lowest.Int64())
	lowest, ok = unique[1].LowestNumericRepresentation()
	require.True(t, ok)
	assert.Equal(t, int64(101), lowest.Int64())
}

func TestConfigurationSpace_Degeneracy(t *testing.T) {
	tests := []struct {
		name   string
		ops    []SymmetryOperation
		labels LabelCounts
		want   int
	}{
		{"identity only", []SymmetryOperation{Identity(4)}, LabelCounts{0: 2, 1: 2}, 6},
		{"hexagon three and three", ringGroup(t, 6), LabelCounts{0: 3, 1: 3}, 3},
		{"hexagon three kinds", ringGroup(t, 6), LabelCounts{0: 2, 1: 2, 2: 2}, 11},
		{"single label", ringGroup(t, 5), LabelCounts{3: 5}, 1},
		{"one defect", ringGroup(t, 5), LabelCounts{0: 4, 1: 1}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := NewConfigurationSpace(tt.ops)
			unique, err := cs.UniqueConfigurations(tt.labels)
			require.NoError(t, err)
			assert.Len(t, unique, tt.want)

			occupation, err := tt.labels.Occupation()
			require.NoError(t, err)
			all, err := AllPermutations(tt.labels, len(occupation))
			require.NoError(t, err)
			assert.Equal(t, int64(len(all)), Degeneracy(unique).Int64())

			for i, a := range unique {
				for _, b := range unique[i+1:] {
					assert.False(t, a.IsEquivalentTo(b, tt.ops), "%v and %v are equivalent", a, b)
				}
			}
			for _, perm := range all {
				assert.True(t, FromVector(perm).HasEquivalentInList(unique, tt.ops), "%v has no representative", perm)
			}
		})
	}
}

func TestConfigurationSpace_WideLabels(t *testing.T) {
	swap, err := NewPermutation([]int{1, 0})
	require.NoError(t, err)
	cs := NewConfigurationSpace([]SymmetryOperation{Identity(2), swap})
	unique, err := cs.UniqueConfigurations(LabelCounts{10: 1, 11: 1})
	require.NoError(t, err)
	require.Len(t, unique, 1)
	assert.Equal(t, []int{10, 11}, unique[0].Labels())
	assert.Equal(t, 2, unique[0].Count())
	_, ok := unique[0].LowestNumericRepresentation()
	assert.False(t, ok)
}

func TestConfigurationSpace_Errors(t *testing.T) {
	_, err := NewConfigurationSpace(nil).UniqueConfigurations(LabelCounts{0: 1})
	assert.ErrorIs(t, err, ErrNoOperations)

	_, err = NewConfigurationSpace([]SymmetryOperation{Identity(3)}).UniqueConfigurations(LabelCounts{0: 2, 1: 2})
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = NewConfigurationSpace([]SymmetryOperation{Identity(1)}).UniqueConfigurations(LabelCounts{0: -1})
	assert.ErrorIs(t, err, ErrNegativeCount)
}

func TestConfigurationSpace_Logger(t *testing.T) {
	var buf bytes.Buffer
	cs := NewConfigurationSpace(ringGroup(t, 4))
	cs.Logger = log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	_, err := cs.UniqueConfigurations(LabelCounts{0: 2, 1: 2})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "reduced 6 arrangements to 2 unique configurations")
}

func TestConfigurationSpace_NotClosed(t *testing.T) {
	var buf bytes.Buffer
	cs := NewConfigurationSpace([]SymmetryOperation{Identity(4), rotate4})
	cs.Logger = log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})
	_, err := cs.UniqueConfigurations(LabelCounts{0: 2, 1: 2})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "not closed under composition")

	buf.Reset()
	cs = NewConfigurationSpace(ringGroup(t, 4))
	cs.Logger = log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})
	_, err = cs.UniqueConfigurations(LabelCounts{0: 2, 1: 2})
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "not closed")
}

func BenchmarkUniqueConfigurations(b *testing.B) {
	rotate := make([]int, 12)
	for i := range rotate {
		rotate[i] = (i + 1) % 12
	}
	rp, _ := NewPermutation(rotate)
	group, _ := Closure([]Permutation{rp})
	cs := NewConfigurationSpace(Operations(group))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cs.UniqueConfigurations(LabelCounts{0: 6, 1: 6})
	}
}
