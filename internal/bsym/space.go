package bsym

import (
	"math/big"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
)

// progressInterval is how many configurations are generated between debug progress messages.
const progressInterval = 100000

// ConfigurationSpace is the set of all arrangements of a multiset of labels over a fixed set of sites,
// together with the symmetry operations that relate them.
type ConfigurationSpace struct {
	// Operations are the symmetry operations of the sites. They should form a group; see Closure.
	Operations []SymmetryOperation
	// Logger, if set, receives progress messages.
	Logger *log.Logger
}

// NewConfigurationSpace creates a ConfigurationSpace for the given symmetry operations.
func NewConfigurationSpace(ops []SymmetryOperation) *ConfigurationSpace {
	return &ConfigurationSpace{Operations: ops}
}

// canonical returns the image of c under the space's operations with the lexicographically smallest labels.
// For single-digit labels this is also the image with the lowest numeric representation.
func (cs *ConfigurationSpace) canonical(c *Configuration) *Configuration {
	var best *Configuration
	for _, op := range cs.Operations {
		image := op.OperateOn(c)
		if best == nil || slices.Compare(image.labels, best.labels) < 0 {
			best = image
		}
	}
	return best
}

func (cs *ConfigurationSpace) checkLengths(n int) error {
	for i, op := range cs.Operations {
		sized, ok := op.(interface{ Len() int })
		if !ok {
			continue
		}
		if sized.Len() != n {
			return errors.Wrapf(ErrLengthMismatch, "symmetry operation %d acts on %d sites, configurations have %d", i, sized.Len(), n)
		}
	}
	return nil
}

// UniqueConfigurations returns one representative of each class of configurations that the space's operations
// relate to one another. The representative is the smallest member of its class, and its Count is the size of
// the class, so the counts sum to the number of distinct arrangements of labels.
//
// Representatives are returned in the order their classes are first met during enumeration.
// If every label is a single digit, each representative also has its lowest numeric representation set.
func (cs *ConfigurationSpace) UniqueConfigurations(labels LabelCounts) ([]*Configuration, error) {
	if len(cs.Operations) == 0 {
		return nil, ErrNoOperations
	}
	ip, err := labels.Permutor(0)
	if err != nil {
		return nil, err
	}
	occupation := ip.Occupation()
	if err := cs.checkLengths(len(occupation)); err != nil {
		return nil, err
	}
	if !cs.closed() {
		cs.warnf("symmetry operations are not closed under composition: equivalence classes may be split")
	}

	start := time.Now()
	total := ip.NumberOfPermutations()
	cs.debugf("enumerating %s arrangements of %d sites under %d operations", total, len(occupation), len(cs.Operations))

	unique := NewConfigurationSet()
	n := 0
	for perm := range ip.Permutations() {
		rep := cs.canonical(&Configuration{labels: perm})
		if stored, ok := unique.Get(rep); ok {
			stored.count++
		} else {
			rep.count = 1
			unique.Add(rep)
		}
		n++
		if n%progressInterval == 0 {
			cs.debugf("%d of %s arrangements, %d unique so far", n, total, unique.Len())
		}
	}

	out := unique.Configurations()
	if digitsOnly(occupation) {
		for _, c := range out {
			if err := c.SetLowestNumericRepresentation(cs.Operations); err != nil {
				return nil, err
			}
		}
	}
	cs.debugf("reduced %d arrangements to %d unique configurations (%s)", n, len(out), time.Since(start).Round(time.Millisecond))
	return out, nil
}

// Degeneracy returns the total count of a list of representatives produced by UniqueConfigurations.
func Degeneracy(configs []*Configuration) *big.Int {
	total := new(big.Int)
	for _, c := range configs {
		total.Add(total, big.NewInt(int64(c.count)))
	}
	return total
}

// closed reports whether the operations are known to form a closed set.
// Operations other than Permutations cannot be composed, so they are assumed closed.
func (cs *ConfigurationSpace) closed() bool {
	perms := make([]Permutation, 0, len(cs.Operations))
	for _, op := range cs.Operations {
		p, ok := op.(Permutation)
		if !ok {
			return true
		}
		perms = append(perms, p)
	}
	return IsClosed(perms)
}

func (cs *ConfigurationSpace) warnf(format string, args ...interface{}) {
	if cs.Logger == nil {
		return
	}
	cs.Logger.Warnf(format, args...)
}

func (cs *ConfigurationSpace) debugf(format string, args ...interface{}) {
	if cs.Logger == nil {
		return
	}
	cs.Logger.Debugf(format, args...)
}

func digitsOnly(labels []int) bool {
	for _, l := range labels {
		if l < 0 || l > 9 {
			return false
		}
	}
	return true
}
