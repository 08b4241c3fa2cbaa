package bsym

import "github.com/cockroachdb/errors"

var (
	// ErrCountMismatch is returned when the number of labels in an occupation does not equal the expected number of sites.
	ErrCountMismatch = errors.New("label count does not match number of sites")

	// ErrLengthMismatch is returned when two sequences that must be aligned position by position differ in length.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrNegativeCount is returned when a label is given a negative number of occurrences.
	ErrNegativeCount = errors.New("negative label count")

	// ErrLabelNotDigit is returned when a configuration with a label outside [0, 9] is asked for its numeric representation.
	ErrLabelNotDigit = errors.New("label is not a single decimal digit")

	// ErrEmptyConfiguration is returned when a configuration with no sites is asked for its numeric representation.
	ErrEmptyConfiguration = errors.New("configuration has no sites")

	// ErrNoOperations is returned when at least one symmetry operation is required but none were given.
	ErrNoOperations = errors.New("no symmetry operations")

	// ErrNotPermutation is returned when a vector does not describe a permutation of site indices.
	ErrNotPermutation = errors.New("not a permutation")

	// ErrInvalidProblem is returned when a problem description is internally inconsistent.
	ErrInvalidProblem = errors.New("invalid problem")
)
