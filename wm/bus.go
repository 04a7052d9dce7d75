package wm

import "time"

// EventKind names a window notification.
type EventKind int

const (
	Opened EventKind = iota
	Closed
)

func (k EventKind) String() string {
	if k == Opened {
		return "window-opened"
	}
	return "window-closed"
}

// Event is published on the Bus when a window opens or closes.
type Event struct {
	Kind EventKind
	ID   string
}

// Bus delivers window events to subscribers, synchronously and in
// subscription order.
type Bus struct {
	subs []func(Event)
}

// Subscribe registers fn and returns a function that removes it again.
func (b *Bus) Subscribe(fn func(Event)) (unsubscribe func()) {
	b.subs = append(b.subs, fn)
	idx := len(b.subs) - 1
	return func() {
		b.subs[idx] = nil
	}
}

// Publish calls every subscriber with e.
func (b *Bus) Publish(e Event) {
	for _, fn := range b.subs {
		if fn != nil {
			fn(e)
		}
	}
}

// Transition asks for Advance(ID, Seq) to be called once After has elapsed.
type Transition struct {
	ID    string
	Seq   uint64
	After time.Duration
}

// Scheduler arranges for transitions to fire later.
type Scheduler interface {
	Schedule(t Transition)
}

// SchedulerFunc adapts a function to a Scheduler.
type SchedulerFunc func(t Transition)

func (f SchedulerFunc) Schedule(t Transition) { f(t) }

// Queue is a Scheduler that collects transitions until they are drained.
// An event loop drains it after each update and turns the transitions into
// timers of its own.
type Queue struct {
	pending []Transition
}

func (q *Queue) Schedule(t Transition) {
	q.pending = append(q.pending, t)
}

// Drain returns the pending transitions and empties the queue.
func (q *Queue) Drain() []Transition {
	out := q.pending
	q.pending = nil
	return out
}
