package bsym

import (
	"fmt"
	"math/big"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/segmentio/fasthash/jody"
)

var bigTen = big.NewInt(10)

// Configuration is one arrangement of labeled objects over a fixed set of sites.
// Indistinguishable objects share a label.
//
// The labels never change after construction. The lowest numeric representation and the
// count are filled in on request and are not invalidated: do not reuse a Configuration
// with a different set of symmetry operations if you rely on them.
type Configuration struct {
	labels []int
	lowest *big.Int
	count  int
}

// FromTuple constructs a Configuration from its labels, e.g.
//
//	FromTuple(1, 1, 0)
func FromTuple(labels ...int) *Configuration {
	return FromVector(labels)
}

// FromVector constructs a Configuration from a slice of labels. The slice is copied.
// A configuration describes at least one site; an empty one matches only other empty
// configurations and has no numeric representation.
func FromVector(labels []int) *Configuration {
	return &Configuration{labels: slices.Clone(labels)}
}

// Len returns the number of sites.
func (c *Configuration) Len() int {
	return len(c.labels)
}

// Labels returns a copy of the labels, in site order.
func (c *Configuration) Labels() []int {
	return slices.Clone(c.labels)
}

// Label returns the label at site i.
func (c *Configuration) Label(i int) int {
	return c.labels[i]
}

// Matches reports whether c and other hold the same label at every site.
func (c *Configuration) Matches(other *Configuration) bool {
	return slices.Equal(c.labels, other.labels)
}

// IsEquivalentTo reports whether any of ops maps c onto other.
func (c *Configuration) IsEquivalentTo(other *Configuration, ops []SymmetryOperation) bool {
	for _, op := range ops {
		if op.OperateOn(c).Matches(other) {
			return true
		}
	}
	return false
}

// IsInList reports whether c matches any configuration in list.
func (c *Configuration) IsInList(list []*Configuration) bool {
	return slices.ContainsFunc(list, c.Matches)
}

// HasEquivalentInList reports whether c is equivalent under ops to any configuration in list.
func (c *Configuration) HasEquivalentInList(list []*Configuration, ops []SymmetryOperation) bool {
	return slices.ContainsFunc(list, func(other *Configuration) bool {
		return c.IsEquivalentTo(other, ops)
	})
}

// AsNumber returns the integer formed by reading the labels, in order, as decimal digits.
// Every label must be in [0, 9]; otherwise the encoding would be ambiguous and ErrLabelNotDigit is returned.
// An empty configuration returns ErrEmptyConfiguration.
func (c *Configuration) AsNumber() (*big.Int, error) {
	if len(c.labels) == 0 {
		return nil, ErrEmptyConfiguration
	}
	n := new(big.Int)
	for i, label := range c.labels {
		if label < 0 || label > 9 {
			return nil, errors.Wrapf(ErrLabelNotDigit, "label %d at site %d", label, i)
		}
		n.Mul(n, bigTen)
		n.Add(n, big.NewInt(int64(label)))
	}
	return n, nil
}

// NumericEquivalents returns the numeric representation of the image of c under each of ops, in the order of ops.
func (c *Configuration) NumericEquivalents(ops []SymmetryOperation) ([]*big.Int, error) {
	out := make([]*big.Int, len(ops))
	for i, op := range ops {
		n, err := op.OperateOn(c).AsNumber()
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// SetLowestNumericRepresentation stores the smallest numeric representation of c under ops.
// The set of operations usually includes the identity.
func (c *Configuration) SetLowestNumericRepresentation(ops []SymmetryOperation) error {
	if len(ops) == 0 {
		return ErrNoOperations
	}
	equivalents, err := c.NumericEquivalents(ops)
	if err != nil {
		return err
	}
	c.lowest = slices.MinFunc(equivalents, (*big.Int).Cmp)
	return nil
}

// LowestNumericRepresentation returns the value stored by SetLowestNumericRepresentation.
// The boolean is false if it has not been set.
func (c *Configuration) LowestNumericRepresentation() (*big.Int, bool) {
	if c.lowest == nil {
		return nil, false
	}
	return new(big.Int).Set(c.lowest), true
}

// Count returns the number of configurations equivalent to this one, or 0 if that has not been computed.
func (c *Configuration) Count() int {
	return c.count
}

// Position returns the sites holding label, in ascending order.
func (c *Configuration) Position(label int) []int {
	out := make([]int, 0)
	for i, l := range c.labels {
		if l == label {
			out = append(out, i)
		}
	}
	return out
}

// Hash returns a hash of the labels. Configurations that match have equal hashes.
func (c *Configuration) Hash() uint64 {
	h := jody.HashString64("")
	for _, x := range c.labels {
		h = jody.AddUint64(h, uint64(x))
	}
	return h
}

func (c *Configuration) String() string {
	var b strings.Builder
	for i, l := range c.labels {
		if i > 0 {
			b.WriteRune(' ')
		}
		fmt.Fprintf(&b, "%d", l)
	}
	return b.String()
}

// MapObjects sorts objects, which are aligned site by site with c, by the label at their site.
// Objects keep their relative order within each label.
func MapObjects[T any](c *Configuration, objects []T) (map[int][]T, error) {
	if len(objects) != c.Len() {
		return nil, errors.Wrapf(ErrLengthMismatch, "%d objects for %d sites", len(objects), c.Len())
	}
	out := make(map[int][]T)
	for i, label := range c.labels {
		out[label] = append(out[label], objects[i])
	}
	return out, nil
}
