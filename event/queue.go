package event

import "container/heap"

// Handle identifies a scheduled event for cancellation; zero is never issued
type Handle uint64

type scheduled struct {
	at     float64
	seq    uint64
	handle Handle
	kind   Kind
	fn     func()
}

type timerHeap []*scheduled

func (h timerHeap) Len() int { return len(h) }
func (h timerHeap) Less(i, j int) bool {
	if h[i].at != h[j].at {
		return h[i].at < h[j].at
	}
	return h[i].seq < h[j].seq
}
func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *timerHeap) Push(x any)   { *h = append(*h, x.(*scheduled)) }
func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// Scheduler is a single-consumer queue of callbacks keyed by absolute simulation time
// Replaces wall-clock timers: nothing fires unless Advance moves the clock past it
// Not safe for concurrent use; owned by the stage loop
type Scheduler struct {
	now     float64
	seq     uint64
	pending timerHeap
	live    map[Handle]*scheduled
}

// NewScheduler creates an empty scheduler at time zero
func NewScheduler() *Scheduler {
	return &Scheduler{
		live: make(map[Handle]*scheduled),
	}
}

// Now returns the scheduler clock
func (s *Scheduler) Now() float64 {
	return s.now
}

// Schedule registers fn to run delay seconds from now
func (s *Scheduler) Schedule(delay float64, kind Kind, fn func()) Handle {
	if delay < 0 {
		delay = 0
	}
	return s.ScheduleAt(s.now+delay, kind, fn)
}

// ScheduleAt registers fn to run once the clock reaches at
func (s *Scheduler) ScheduleAt(at float64, kind Kind, fn func()) Handle {
	s.seq++
	ev := &scheduled{at: at, seq: s.seq, handle: Handle(s.seq), kind: kind, fn: fn}
	heap.Push(&s.pending, ev)
	s.live[ev.handle] = ev
	return ev.handle
}

// Cancel drops a pending event; returns false if it already ran or was cancelled
func (s *Scheduler) Cancel(h Handle) bool {
	ev, ok := s.live[h]
	if !ok {
		return false
	}
	delete(s.live, h)
	ev.fn = nil
	return true
}

// CancelKind drops every pending event of a kind and returns the count
func (s *Scheduler) CancelKind(kind Kind) int {
	n := 0
	for h, ev := range s.live {
		if ev.kind == kind {
			delete(s.live, h)
			ev.fn = nil
			n++
		}
	}
	return n
}

// Has reports whether any event of kind is pending
func (s *Scheduler) Has(kind Kind) bool {
	for _, ev := range s.live {
		if ev.kind == kind {
			return true
		}
	}
	return false
}

// Pending returns the number of live events
func (s *Scheduler) Pending() int {
	return len(s.live)
}

// Advance moves the clock forward and runs everything now due, earliest first
// Callbacks may schedule further events; those due at or before the new time run in the same call
func (s *Scheduler) Advance(dt float64) int {
	if dt > 0 {
		s.now += dt
	}
	ran := 0
	for s.pending.Len() > 0 {
		next := s.pending[0]
		if next.at > s.now {
			break
		}
		heap.Pop(&s.pending)
		if next.fn == nil {
			continue // cancelled
		}
		delete(s.live, next.handle)
		fn := next.fn
		next.fn = nil
		fn()
		ran++
	}
	return ran
}

// Clear cancels everything, used on stage teardown
func (s *Scheduler) Clear() {
	for _, ev := range s.pending {
		ev.fn = nil
	}
	s.pending = s.pending[:0]
	clear(s.live)
}
