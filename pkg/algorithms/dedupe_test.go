package algorithms

import (
	"testing"
)

// TestCanonicalSignature_RotationInvariant verifies rotations of the same
// cycle share a signature
func TestCanonicalSignature_RotationInvariant(t *testing.T) {
	a := Cycle{0, 1, 2, 3, 0}
	b := Cycle{2, 3, 0, 1, 2}

	if CanonicalSignature(a) != CanonicalSignature(b) {
		t.Errorf("Expected equal signatures for rotations, got %q and %q",
			CanonicalSignature(a), CanonicalSignature(b))
	}
}

// TestCanonicalSignature_ReversalInvariant verifies a cycle and its reverse
// share a signature
func TestCanonicalSignature_ReversalInvariant(t *testing.T) {
	forward := Cycle{0, 1, 2, 3, 0}
	backward := Cycle{0, 3, 2, 1, 0}

	if CanonicalSignature(forward) != CanonicalSignature(backward) {
		t.Errorf("Expected equal signatures for reversed traversals, got %q and %q",
			CanonicalSignature(forward), CanonicalSignature(backward))
	}
}

// TestCanonicalSignature_DistinctCycles verifies different node sets produce
// different signatures
func TestCanonicalSignature_DistinctCycles(t *testing.T) {
	a := Cycle{0, 1, 2, 0}
	b := Cycle{0, 1, 3, 0}

	if CanonicalSignature(a) == CanonicalSignature(b) {
		t.Error("Expected distinct signatures for distinct cycles")
	}
}

// TestCanonicalSignature_NoDecimalCollision verifies multi-digit node indices
// do not collide with concatenations of smaller ones
func TestCanonicalSignature_NoDecimalCollision(t *testing.T) {
	a := Cycle{1, 2, 12, 1}
	b := Cycle{12, 1, 2, 12}
	c := Cycle{1, 21, 2, 1}

	if CanonicalSignature(a) != CanonicalSignature(b) {
		t.Error("Expected rotations with multi-digit indices to match")
	}
	if CanonicalSignature(a) == CanonicalSignature(c) {
		t.Error("Expected {1,2,12} and {1,21,2} to have distinct signatures")
	}
}

// TestDeduplicate_KeepsFirstOccurrence verifies dedup preserves discovery
// order and keeps the first representative of each class
func TestDeduplicate_KeepsFirstOccurrence(t *testing.T) {
	cycles := []Cycle{
		{0, 1, 2, 3, 0},
		{1, 2, 3, 0, 1}, // rotation of the first
		{0, 3, 2, 1, 0}, // reversal of the first
		{4, 5, 6, 4},
	}

	unique := Deduplicate(cycles)

	if len(unique) != 2 {
		t.Fatalf("Expected 2 unique cycles, got %d", len(unique))
	}
	if unique[0][0] != 0 || unique[1][0] != 4 {
		t.Errorf("Expected first representatives in discovery order, got %v", unique)
	}
}

// TestDeduplicate_Empty verifies dedup of no cycles yields no cycles
func TestDeduplicate_Empty(t *testing.T) {
	if unique := Deduplicate(nil); len(unique) != 0 {
		t.Errorf("Expected empty result, got %d", len(unique))
	}
}
