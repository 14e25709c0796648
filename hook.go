//go:build !alloctrack_off

package alloctrack

import "github.com/petermattis/goid"

// Allocated records an allocation of size bytes against the calling
// goroutine's innermost measurement scope.  The alloc package calls
// it on every allocation; custom allocators should do the same.
// Allocated does nothing if the goroutine has no measurement in
// progress or is inside an OptOut region.  It never allocates and
// never fails.
func Allocated(size int) {
	s := stackFor(goid.Get())
	if s == nil || s.suppress > 0 {
		return
	}
	info := &s.frames[s.depth]
	info.CountTotal++
	info.CountCurrent++
	if info.CountCurrent > 0 && uint64(info.CountCurrent) > info.CountMax {
		info.CountMax = uint64(info.CountCurrent)
	}
	info.BytesTotal += uint64(size)
	info.BytesCurrent += int64(size)
	if info.BytesCurrent > 0 && uint64(info.BytesCurrent) > info.BytesMax {
		info.BytesMax = uint64(info.BytesCurrent)
	}
}

// Freed records a deallocation of size bytes against the calling
// goroutine's innermost measurement scope, under the same rules as
// Allocated.
func Freed(size int) {
	s := stackFor(goid.Get())
	if s == nil || s.suppress > 0 {
		return
	}
	info := &s.frames[s.depth]
	info.CountCurrent--
	info.BytesCurrent -= int64(size)
}
