package bsym

import (
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	yaml "gopkg.in/yaml.v2"
)

// Problem describes a set of sites, the labels to place on them, and the symmetry of the sites.
type Problem struct {
	// Sites is the number of sites. If zero, it is taken from Labels.
	Sites int `yaml:"sites"`
	// Labels is the number of sites occupied by each label.
	Labels LabelCounts `yaml:"labels"`
	// Operations are permutations of the sites, given as destination sites numbered from 1.
	Operations [][]int `yaml:"operations"`
	// Generators marks Operations as generators of the symmetry group rather than the whole group.
	Generators bool `yaml:"generators"`
}

// tomlProblem is the TOML form of a Problem. TOML keys are always strings.
type tomlProblem struct {
	Sites      int            `toml:"sites"`
	Labels     map[string]int `toml:"labels"`
	Operations [][]int        `toml:"operations"`
	Generators bool           `toml:"generators"`
}

// MakeProblem parses a YAML or TOML problem file, chosen by file extension, and validates it.
func MakeProblem(fileName string) (*Problem, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	var p *Problem
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".toml":
		p, err = ParseTOMLProblem(data)
	default:
		p, err = ParseYAMLProblem(data)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading problem %q", fileName)
	}
	return p, nil
}

// ParseYAMLProblem parses and validates a problem in YAML form.
func ParseYAMLProblem(data []byte) (*Problem, error) {
	var p Problem
	if err := yaml.UnmarshalStrict(data, &p); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// ParseTOMLProblem parses and validates a problem in TOML form.
func ParseTOMLProblem(data []byte) (*Problem, error) {
	var tp tomlProblem
	if _, err := toml.Decode(string(data), &tp); err != nil {
		return nil, err
	}
	p := Problem{
		Sites:      tp.Sites,
		Labels:     make(LabelCounts, len(tp.Labels)),
		Operations: tp.Operations,
		Generators: tp.Generators,
	}
	for key, count := range tp.Labels {
		label, err := strconv.Atoi(key)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidProblem, "label %q is not an integer", key)
		}
		p.Labels[label] = count
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks that the labels fill the sites and that every operation acts on every site.
// A zero Sites is filled in from the labels.
func (p *Problem) Validate() error {
	if len(p.Labels) == 0 {
		return errors.Wrap(ErrInvalidProblem, "no labels")
	}
	occupation, err := p.Labels.Occupation()
	if err != nil {
		return errors.Mark(err, ErrInvalidProblem)
	}
	if p.Sites == 0 {
		p.Sites = len(occupation)
	}
	if len(occupation) != p.Sites {
		return errors.Mark(errors.Wrapf(ErrCountMismatch, "%d labels for %d sites", len(occupation), p.Sites), ErrInvalidProblem)
	}
	for i, op := range p.Operations {
		if len(op) != p.Sites {
			return errors.Wrapf(ErrInvalidProblem, "operation %d has %d sites, expected %d", i+1, len(op), p.Sites)
		}
	}
	return nil
}

// Permutations converts the problem's operations into Permutations.
// Generators are expanded into the full group. Otherwise the identity is added first if it is missing.
func (p *Problem) Permutations() ([]Permutation, error) {
	perms := make([]Permutation, 0, len(p.Operations)+1)
	for i, v := range p.Operations {
		perm, err := PermutationFromOneBased(v)
		if err != nil {
			return nil, errors.Wrapf(err, "operation %d", i+1)
		}
		perms = append(perms, perm)
	}
	if p.Generators && len(perms) > 0 {
		return Closure(perms)
	}
	if !slices.ContainsFunc(perms, Permutation.IsIdentity) {
		perms = append([]Permutation{Identity(p.Sites)}, perms...)
	}
	return perms, nil
}

// SymmetryOperations returns the problem's operations as SymmetryOperations.
func (p *Problem) SymmetryOperations() ([]SymmetryOperation, error) {
	perms, err := p.Permutations()
	if err != nil {
		return nil, err
	}
	return Operations(perms), nil
}
