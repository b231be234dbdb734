package event

import (
	"sync/atomic"

	"github.com/lixenwraith/nazarene/parameter"
)

// Publisher accepts events; combatants depend on this rather than the queue
type Publisher interface {
	Push(ev GameEvent)
}

// Queue is a lock-free MPSC ring buffer for combat events
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK
//   - Consume/Drain: Single consumer (world tick)
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest events overwritten when full
type Queue struct {
	events    [parameter.EventQueueSize]GameEvent
	published [parameter.EventQueueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64                         // Read index
	tail      atomic.Uint64                         // Write index
	frame     atomic.Int64                          // Stamped onto events pushed without a frame
}

func NewQueue() *Queue {
	return &Queue{}
}

// SetFrame sets the tick number stamped onto subsequent events
func (q *Queue) SetFrame(frame int64) {
	q.frame.Store(frame)
}

// Frame returns the current tick number
func (q *Queue) Frame() int64 {
	return q.frame.Load()
}

// Push adds event using lock-free CAS with published flags pattern
// Safe for concurrent producers. O(1) amortized
func (q *Queue) Push(ev GameEvent) {
	if ev.Frame == 0 {
		ev.Frame = q.frame.Load()
	}
	for {
		currentTail := q.tail.Load()
		nextTail := currentTail + 1

		if q.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & parameter.EventBufferMask

			q.events[idx] = ev
			q.published[idx].Store(true) // MUST be after write

			// Advance head if overwriting unread events
			currentHead := q.head.Load()
			if nextTail-currentHead > parameter.EventQueueSize {
				q.head.CompareAndSwap(currentHead, nextTail-parameter.EventQueueSize)
			}
			return
		}
	}
}

// Consume returns all pending events in FIFO order and advances head
func (q *Queue) Consume() []GameEvent {
	for {
		currentHead := q.head.Load()
		currentTail := q.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		available := currentTail - currentHead
		if available > parameter.EventQueueSize {
			available = parameter.EventQueueSize
			currentHead = currentTail - parameter.EventQueueSize
		}

		result := make([]GameEvent, 0, available)
		for i := uint64(0); i < available; i++ {
			idx := (currentHead + i) & parameter.EventBufferMask

			if !q.published[idx].Load() {
				break // Writer incomplete
			}

			result = append(result, q.events[idx])
			q.published[idx].Store(false)
		}

		newHead := currentHead + uint64(len(result))
		if q.head.CompareAndSwap(currentHead, newHead) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}

// Drain consumes until empty, invoking fn per event
// Events pushed by fn are drained in the same call
func (q *Queue) Drain(fn func(GameEvent)) int {
	n := 0
	for {
		batch := q.Consume()
		if len(batch) == 0 {
			return n
		}
		for _, ev := range batch {
			fn(ev)
		}
		n += len(batch)
	}
}

// Len returns approximate pending event count
func (q *Queue) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail <= head {
		return 0
	}
	diff := int(tail - head)
	if diff > parameter.EventQueueSize {
		return parameter.EventQueueSize
	}
	return diff
}

// Discard is a Publisher that drops everything
type Discard struct{}

func (Discard) Push(GameEvent) {}
