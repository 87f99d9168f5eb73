package events

import "sync/atomic"

// Stats tracks per-adapter delivery counters. It is grounded on the
// teacher's handler/policy.go Stats block (DroppedDebug/.../
// ProcessedTotal as separate atomic counters); this repo collapses the
// per-level breakdown into per-outcome counters, since the spec's
// overflow policy is not itself level-specific the way the teacher's
// OverflowPolicy map is.
type Stats struct {
	delivered      atomic.Uint64
	skippedNewest  atomic.Uint64
	discardedOlder atomic.Uint64
	lostOnDrain    atomic.Uint64
}

// IncrementDelivered records a record successfully enqueued to an
// adapter's queue.
func (s *Stats) IncrementDelivered() { s.delivered.Add(1) }

// IncrementSkippedNewest records a record dropped under SkipNewest.
func (s *Stats) IncrementSkippedNewest() { s.skippedNewest.Add(1) }

// IncrementDiscardedOlder records a record dropped from the head of an
// adapter's queue under DiscardOlder (the new record is also lost —
// see Action.DiscardOlder's doc comment).
func (s *Stats) IncrementDiscardedOlder() { s.discardedOlder.Add(1) }

// IncrementLostOnDrain records a record dropped because the worker
// gave up draining during WaitAfterFail at shutdown.
func (s *Stats) IncrementLostOnDrain() { s.lostOnDrain.Add(1) }

// Snapshot is a point-in-time copy of Stats' counters.
type Snapshot struct {
	Delivered      uint64
	SkippedNewest  uint64
	DiscardedOlder uint64
	LostOnDrain    uint64
}

// GetSnapshot returns the current counter values.
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Delivered:      s.delivered.Load(),
		SkippedNewest:  s.skippedNewest.Load(),
		DiscardedOlder: s.discardedOlder.Load(),
		LostOnDrain:    s.lostOnDrain.Load(),
	}
}
