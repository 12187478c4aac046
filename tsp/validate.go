// Package tsp: validation of tours against maps and of algorithm output.
//
// Functions are side-effect free, never log and never panic; failures are
// the ErrTourMismatch / ErrContractViolation sentinels with context attached.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/tspbench/citymap"
)

// ValidateTour checks that t is a permutation of m's city IDs:
// same length, no foreign IDs, no duplicates (hence no omissions).
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(m *citymap.Map, t Tour) error {
	if m == nil {
		return fmt.Errorf("%w: nil map", ErrTourMismatch)
	}
	var n = m.Len()
	if len(t) != n {
		return fmt.Errorf("%w: tour has %d cities, map has %d", ErrTourMismatch, len(t), n)
	}
	seen := make([]bool, n)

	var (
		p, i int
		ok   bool
	)
	for p = 0; p < n; p++ {
		i, ok = m.IndexOf(t[p])
		if !ok {
			return fmt.Errorf("%w: foreign city %d at position %d", ErrTourMismatch, t[p], p)
		}
		if seen[i] {
			return fmt.Errorf("%w: duplicate city %d at position %d", ErrTourMismatch, t[p], p)
		}
		seen[i] = true
	}

	return nil
}

// validatePermutation checks that perm is a permutation of {0..n-1}.
//
// Complexity: O(n) time, O(n) space.
func validatePermutation(perm []int, n int) error {
	if len(perm) != n {
		return fmt.Errorf("%w: permutation length %d, want %d", ErrContractViolation, len(perm), n)
	}
	seen := make([]bool, n)

	var p, v int
	for p = 0; p < n; p++ {
		v = perm[p]
		if v < 0 || v >= n {
			return fmt.Errorf("%w: index %d out of range at position %d", ErrContractViolation, v, p)
		}
		if seen[v] {
			return fmt.Errorf("%w: index %d repeated at position %d", ErrContractViolation, v, p)
		}
		seen[v] = true
	}

	return nil
}

// checkContract is the post-condition every builder applies to its own
// output before returning it.
func checkContract(name string, m *citymap.Map, t Tour) error {
	if err := ValidateTour(m, t); err != nil {
		return fmt.Errorf("%s: %w: %w", name, ErrContractViolation, err)
	}

	return nil
}
