package scrivener

import (
	"sync"

	"github.com/trviph/collection"
)

// An envelope is what actually travels through the queue. Regular entries
// carry a message; a flush barrier carries only a done channel, closed by the
// worker once everything queued ahead of it is on disk.
type envelope struct {
	msg     *Message
	barrier chan struct{}
}

// A queue is an unbounded FIFO shared by many producers and the single
// worker, plus a capacity-one wake channel used purely as a signal. Multiple
// pushes before the worker wakes collapse into one wake-up; the worker drains
// the whole queue per wake, so nothing is lost by coalescing.
type queue struct {
	mu    sync.Mutex
	items *collection.List[envelope]
	wake  chan struct{}
}

func newQueue() *queue {
	return &queue{
		items: collection.NewList[envelope](),
		wake:  make(chan struct{}, 1),
	}
}

// push appends the envelope and wakes the worker. It never blocks and is safe
// for arbitrary concurrent callers.
func (q *queue) push(env envelope) {
	q.mu.Lock()
	q.items.Append(env)
	q.mu.Unlock()
	q.signal()
}

// signal wakes the worker without enqueueing anything. A pending wake token
// absorbs the send.
func (q *queue) signal() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// pop removes and returns the oldest envelope, or ok=false when the queue is
// empty.
func (q *queue) pop() (envelope, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.items.Length() == 0 {
		return envelope{}, false
	}
	env, err := q.items.Dequeue()
	if err != nil {
		return envelope{}, false
	}
	return env, true
}

func (q *queue) length() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Length()
}
