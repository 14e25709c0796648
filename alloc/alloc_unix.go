//go:build unix || linux

package alloc

import (
	"sync/atomic"

	"golang.org/x/sys/unix"

	"github.com/mvarle/alloctrack"
)

// Allocations of at least cutoff bytes are mmapped so that Free
// returns them to the kernel immediately.
const cutoff = 128 * 1024

var allocated int64

// Alloc returns a zeroed buffer of the given size.
func Alloc(size int) ([]byte, error) {
	if size < cutoff {
		alloctrack.Allocated(size)
		atomic.AddInt64(&allocated, int64(size))
		return make([]byte, size), nil
	}
	p, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, err
	}
	alloctrack.Allocated(size)
	atomic.AddInt64(&allocated, int64(size))
	return p[:size], nil
}

// Free releases a buffer obtained from Alloc.  Accounting uses the
// buffer's length, which for a buffer returned by Alloc is the size
// that was requested.
func Free(p []byte) error {
	alloctrack.Freed(len(p))
	atomic.AddInt64(&allocated, -int64(len(p)))
	if len(p) < cutoff {
		return nil
	}
	return unix.Munmap(p)
}

// Bytes returns the number of bytes currently allocated through this
// package, across all goroutines.
func Bytes() int64 {
	return atomic.LoadInt64(&allocated)
}
