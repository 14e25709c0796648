//go:build !unix && !linux

package alloc

import (
	"log"
	"sync/atomic"

	"github.com/mvarle/alloctrack"
)

func init() {
	log.Printf("Using generic memory allocator")
}

var allocated int64

// Alloc returns a zeroed buffer of the given size.
func Alloc(size int) ([]byte, error) {
	alloctrack.Allocated(size)
	atomic.AddInt64(&allocated, int64(size))
	return make([]byte, size), nil
}

// Free releases a buffer obtained from Alloc.
func Free(p []byte) error {
	alloctrack.Freed(len(p))
	atomic.AddInt64(&allocated, -int64(len(p)))
	return nil
}

// Bytes returns the number of bytes currently allocated through this
// package, across all goroutines.
func Bytes() int64 {
	return atomic.LoadInt64(&allocated)
}
