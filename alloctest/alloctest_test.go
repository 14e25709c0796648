package alloctest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/mvarle/alloctrack/alloc"
)

// recorder captures failures reported by the helpers under test.
type recorder struct {
	testing.TB
	failures []string
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(format string, args ...interface{}) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func allocate(t testing.TB, n int, size int) func() {
	return func() {
		for i := 0; i < n; i++ {
			p, err := alloc.Alloc(size)
			if err != nil {
				t.Error(err)
				return
			}
			err = alloc.Free(p)
			if err != nil {
				t.Error(err)
				return
			}
		}
	}
}

func TestNoAllocations(t *testing.T) {
	NoAllocations(t, func() {})

	r := &recorder{TB: t}
	NoAllocations(r, allocate(t, 1, 16))
	if len(r.failures) != 1 {
		t.Fatalf("Got %v failures, expected 1", len(r.failures))
	}
	if !strings.Contains(r.failures[0], "got 1") {
		t.Errorf("Bad failure message: %v", r.failures[0])
	}
}

func TestMaxAllocations(t *testing.T) {
	MaxAllocations(t, 3, allocate(t, 3, 16))

	r := &recorder{TB: t}
	MaxAllocations(r, 3, allocate(t, 4, 16))
	if len(r.failures) != 1 {
		t.Fatalf("Got %v failures, expected 1", len(r.failures))
	}
	if !strings.Contains(r.failures[0], "at most 3") ||
		!strings.Contains(r.failures[0], "got 4") {
		t.Errorf("Bad failure message: %v", r.failures[0])
	}
}

func TestNumAllocations(t *testing.T) {
	NumAllocations(t, 2, 4, allocate(t, 2, 16))
	NumAllocations(t, 2, 4, allocate(t, 3, 16))

	r := &recorder{TB: t}
	NumAllocations(r, 2, 4, allocate(t, 4, 16))
	NumAllocations(r, 2, 4, allocate(t, 1, 16))
	if len(r.failures) != 2 {
		t.Fatalf("Got %v failures, expected 2", len(r.failures))
	}
	for _, f := range r.failures {
		if !strings.Contains(f, "between 2 and 4") {
			t.Errorf("Bad failure message: %v", f)
		}
	}
}
