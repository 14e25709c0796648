// Package alloctest provides test helpers that assert allocation
// budgets: each helper measures work with alloctrack and fails the
// test if the observed number of allocations violates the stated
// bound.
package alloctest

import (
	"testing"

	"github.com/mvarle/alloctrack"
)

// NoAllocations fails t if work performs any allocation.
func NoAllocations(t testing.TB, work func()) {
	t.Helper()
	n := alloctrack.Count(work)
	if n != 0 {
		t.Errorf("Expected no allocations, got %v", n)
	}
}

// MaxAllocations fails t if work performs more than max allocations.
func MaxAllocations(t testing.TB, max uint64, work func()) {
	t.Helper()
	n := alloctrack.Count(work)
	if n > max {
		t.Errorf("Expected at most %v allocations, got %v", max, n)
	}
}

// NumAllocations fails t unless the number of allocations performed
// by work lies within [lo, hi).
func NumAllocations(t testing.TB, lo, hi uint64, work func()) {
	t.Helper()
	n := alloctrack.Count(work)
	if n < lo || n >= hi {
		t.Errorf("Expected between %v and %v allocations, got %v",
			lo, hi, n)
	}
}
