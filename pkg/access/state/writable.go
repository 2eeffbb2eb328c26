package state

import "sync/atomic"

// WriteMode is the write-urgency of a mutated state object. The
// persistence scheduler consumes it: async states are flushed on the
// scheduler's own cadence, sync states before control returns to the
// mutating operation.
type WriteMode int32

const (
	WriteModeNone WriteMode = iota
	WriteModeAsync
	WriteModeSync
)

func (m WriteMode) String() string {
	switch m {
	case WriteModeNone:
		return "none"
	case WriteModeAsync:
		return "async"
	case WriteModeSync:
		return "sync"
	default:
		return "invalid"
	}
}

// WritableState is embedded by every state object that can be dirtied.
// RequestWrite only ever escalates: a sync request is never downgraded
// by a later async one. A fresh copy starts clean; pending urgency is
// tracked by whoever consumed it, not by the snapshot.
type WritableState struct {
	writeMode atomic.Int32
}

func (s *WritableState) WriteMode() WriteMode {
	return WriteMode(s.writeMode.Load())
}

func (s *WritableState) RequestWrite(mode WriteMode) {
	for {
		current := s.writeMode.Load()
		if int32(mode) <= current {
			return
		}
		if s.writeMode.CompareAndSwap(current, int32(mode)) {
			return
		}
	}
}

// TakeWriteMode returns the current urgency and resets it to none.
func (s *WritableState) TakeWriteMode() WriteMode {
	return WriteMode(s.writeMode.Swap(int32(WriteModeNone)))
}
