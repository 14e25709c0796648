package alloctrack

import "sync"

// MaxDepth is the maximum number of simultaneously open Measure calls
// on one goroutine.  Exceeding it is a programming error.
const MaxDepth = 64

// A frameStack holds the accounting state of a single goroutine:
// one frame per open measurement scope, a depth cursor, and the
// suppression counter.  Frame 0 is the implicit root.  Only the
// owning goroutine ever reads or writes a frameStack, so no
// synchronization is needed beyond the registry that hands it out.
type frameStack struct {
	depth    uint32
	suppress uint32
	frames   [MaxDepth]AllocationInfo
}

const numShards = 64

type shard struct {
	mu     sync.RWMutex
	stacks map[int64]*frameStack
}

var shards [numShards]shard

func init() {
	for i := range shards {
		shards[i].stacks = make(map[int64]*frameStack)
	}
}

func shardFor(id int64) *shard {
	return &shards[uint64(id)%numShards]
}

// stackFor returns the goroutine's stack, or nil if it has no
// measurement in progress.  This runs on every allocation, so it
// must not allocate.
func stackFor(id int64) *frameStack {
	sh := shardFor(id)
	sh.mu.RLock()
	s := sh.stacks[id]
	sh.mu.RUnlock()
	return s
}

// acquire returns the goroutine's stack, registering a fresh one if
// needed.  Only called from the scope API, never from the hooks.
func acquire(id int64) *frameStack {
	sh := shardFor(id)
	sh.mu.RLock()
	s := sh.stacks[id]
	sh.mu.RUnlock()
	if s != nil {
		return s
	}
	s = &frameStack{}
	sh.mu.Lock()
	sh.stacks[id] = s
	sh.mu.Unlock()
	return s
}

// release drops the goroutine's registration once no scope remains
// open on it.
func release(id int64, s *frameStack) {
	if s.depth != 0 || s.suppress != 0 {
		return
	}
	sh := shardFor(id)
	sh.mu.Lock()
	delete(sh.stacks, id)
	sh.mu.Unlock()
}

// push opens a new scope with a zeroed frame.
func (s *frameStack) push() {
	if s.depth+1 >= MaxDepth {
		panic("alloctrack: Measure nested too deeply")
	}
	s.depth++
	s.frames[s.depth] = AllocationInfo{}
}

// pop closes the innermost scope, folds it into its parent, and
// returns the captured record.
func (s *frameStack) pop() AllocationInfo {
	info := s.frames[s.depth]
	s.depth--
	s.frames[s.depth].add(info)
	return info
}
