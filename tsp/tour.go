// Package tsp: tour utilities shared by builders and the optimizer.
//
// Helpers here operate on tour structure only:
//   - Clone / String: copying and compact printing.
//   - RotateToStart: cyclic shift so a given city comes first.
//   - Canonical: unique representative of a cycle under rotation and reflection.
//   - EqualCycles: cycle equality under rotation and reflection.
//   - reverseSegment: in-place segment reversal (2-opt primitive).
//   - toIndices / fromIndices: conversion between IDs and canonical indices.
package tsp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/tspbench/citymap"
)

// Clone returns an independent copy of t.
func (t Tour) Clone() Tour {
	if t == nil {
		return nil
	}
	out := make(Tour, len(t))
	copy(out, t)

	return out
}

// String renders the tour with the closing city after a bar, e.g. "[0 3 1 2 | 0]".
func (t Tour) String() string {
	if len(t) == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, id := range t {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(id))
	}
	b.WriteString(" | ")
	b.WriteString(strconv.Itoa(t[0]))
	b.WriteByte(']')

	return b.String()
}

// RotateToStart returns a copy of t shifted so that id comes first.
//
// Errors: ErrTourMismatch if id is absent.
//
// Complexity: O(n).
func RotateToStart(t Tour, id int) (Tour, error) {
	var (
		n     = len(t)
		pivot = -1
		i     int
	)
	for i = 0; i < n; i++ {
		if t[i] == id {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, fmt.Errorf("%w: city %d not in tour", ErrTourMismatch, id)
	}

	out := make(Tour, n)
	for i = 0; i < n; i++ {
		out[i] = t[(pivot+i)%n]
	}

	return out, nil
}

// Canonical returns the representative of t's cycle that starts at the
// smallest ID and whose second element is smaller than its last.
// Two tours describe the same closed route iff their canonical forms are equal.
//
// Complexity: O(n).
func Canonical(t Tour) Tour {
	if len(t) == 0 {
		return Tour{}
	}
	minID := t[0]
	for _, id := range t[1:] {
		if id < minID {
			minID = id
		}
	}
	out, _ := RotateToStart(t, minID) // minID is present by construction
	if n := len(out); n > 2 && out[1] > out[n-1] {
		reverseSegment(out, 1, n-1)
	}

	return out
}

// EqualCycles reports whether a and b describe the same closed route,
// ignoring rotation and direction.
func EqualCycles(a, b Tour) bool {
	if len(a) != len(b) {
		return false
	}
	ca, cb := Canonical(a), Canonical(b)
	for i := range ca {
		if ca[i] != cb[i] {
			return false
		}
	}

	return true
}

// reverseSegment reverses t[i..j] in place. Requires 0 ≤ i ≤ j < len(t).
//
// Complexity: O(j−i).
func reverseSegment[T ~[]int](t T, i, j int) {
	for i < j {
		t[i], t[j] = t[j], t[i]
		i++
		j--
	}
}

// toIndices maps a tour of IDs onto canonical indices of m, validating it.
func toIndices(m *citymap.Map, t Tour) ([]int, error) {
	if err := ValidateTour(m, t); err != nil {
		return nil, err
	}
	idx := make([]int, len(t))
	for p, id := range t {
		idx[p], _ = m.IndexOf(id)
	}

	return idx, nil
}

// fromIndices maps canonical indices back to city IDs.
func fromIndices(m *citymap.Map, idx []int) Tour {
	t := make(Tour, len(idx))
	for p, i := range idx {
		t[p] = m.ID(i)
	}

	return t
}
