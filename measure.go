// Package alloctrack measures the allocation activity of a piece of
// code: how many allocations it performed, how many bytes it
// allocated and released, and the peak amount outstanding.
//
// Go does not let a program replace its heap allocator, so
// measurement covers memory obtained through the alloc package (or
// any other allocator that reports to Allocated and Freed), not
// native Go heap traffic.  Measurements are per-goroutine:
// allocations made by goroutines spawned inside a measured region
// are not attributed to it.
package alloctrack

import "github.com/petermattis/goid"

// Measure runs work and returns the allocation activity it performed
// on the calling goroutine.  Measure nests: an inner Measure's
// result is returned to its caller and also folded into the
// enclosing scope's totals.  The accounting state is restored even
// if work panics.
func Measure(work func()) (info AllocationInfo) {
	id := goid.Get()
	s := acquire(id)
	s.push()
	defer func() {
		info = s.pop()
		release(id, s)
	}()
	work()
	return
}

// MeasureValue is like Measure for workloads that return a value.
func MeasureValue[T any](work func() T) (AllocationInfo, T) {
	var v T
	info := Measure(func() {
		v = work()
	})
	return info, v
}

// Count returns the number of allocations work performed.
func Count(work func()) uint64 {
	return Measure(work).CountTotal
}

// OptOut runs work with accounting suppressed: allocations and
// deallocations it performs are invisible to enclosing Measure
// calls.  OptOut nests; accounting resumes only once every enclosing
// OptOut has exited.  Suppression is lifted even if work panics.
func OptOut(work func()) {
	id := goid.Get()
	s := acquire(id)
	s.suppress++
	defer func() {
		s.suppress--
		release(id, s)
	}()
	work()
}

// OptOutValue is like OptOut for workloads that return a value.
func OptOutValue[T any](work func() T) T {
	var v T
	OptOut(func() {
		v = work()
	})
	return v
}
