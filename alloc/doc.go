// Package alloc allocates memory on behalf of the rest of the
// program and reports every allocation and deallocation to the
// alloctrack package.  It is the allocation entry point that makes
// code measurable: memory obtained elsewhere is invisible to
// measurement.
//
// On unix, large allocations are mmapped directly so that freeing
// them returns the memory to the kernel immediately.
package alloc
