package imu

import (
	"context"
	"sync"
)

// DefaultQueueCapacity bounds the samples buffered between the reader and
// the consumers.
const DefaultQueueCapacity = 5000

// Queue is a bounded FIFO of samples. Push never blocks: when the queue is
// full the oldest sample is dropped. Pop blocks until a sample is available.
type Queue struct {
	lock   sync.Mutex
	cond   sync.Cond
	buf    []Sample
	head   int
	size   int
	closed bool
}

// NewQueue creates a Queue holding at most capacity samples.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	q := &Queue{buf: make([]Sample, capacity)}
	q.cond.L = &q.lock
	return q
}

// Cap returns the capacity.
func (q *Queue) Cap() int {
	return len(q.buf)
}

// Len returns the number of buffered samples.
func (q *Queue) Len() int {
	q.lock.Lock()
	defer q.lock.Unlock()
	return q.size
}

// Push appends a sample, evicting the oldest one if the queue is full.
// It returns true if a sample was evicted. Push on a closed queue is a no-op.
func (q *Queue) Push(s Sample) (evicted bool) {
	q.lock.Lock()
	if q.closed {
		q.lock.Unlock()
		return false
	}
	if q.size == len(q.buf) {
		q.buf[q.head] = Sample{}
		q.head = (q.head + 1) % len(q.buf)
		q.size--
		evicted = true
	}
	q.buf[(q.head+q.size)%len(q.buf)] = s
	q.size++
	q.lock.Unlock()
	q.cond.Signal()
	return
}

// Pop removes and returns the oldest sample, waiting until one is pushed,
// ctx is done or the queue is closed.
func (q *Queue) Pop(ctx context.Context) (Sample, error) {
	q.lock.Lock()
	defer q.lock.Unlock()
	if q.size == 0 && ctx.Done() != nil {
		stop := context.AfterFunc(ctx, func() {
			q.lock.Lock()
			q.cond.Broadcast()
			q.lock.Unlock()
		})
		defer stop()
	}
	for {
		if q.closed {
			return Sample{}, ErrQueueClosed
		}
		if q.size > 0 {
			return q.take(), nil
		}
		if err := ctx.Err(); err != nil {
			return Sample{}, err
		}
		q.cond.Wait()
	}
}

// TryPop removes and returns the oldest sample without waiting.
func (q *Queue) TryPop() (Sample, bool) {
	q.lock.Lock()
	defer q.lock.Unlock()
	if q.closed || q.size == 0 {
		return Sample{}, false
	}
	return q.take(), true
}

// Clear drops all buffered samples.
func (q *Queue) Clear() {
	q.lock.Lock()
	for i := range q.buf {
		q.buf[i] = Sample{}
	}
	q.head, q.size = 0, 0
	q.lock.Unlock()
}

// Close wakes all waiters; subsequent Pop calls return ErrQueueClosed.
func (q *Queue) Close() {
	q.lock.Lock()
	q.closed = true
	q.lock.Unlock()
	q.cond.Broadcast()
}

func (q *Queue) take() Sample {
	s := q.buf[q.head]
	q.buf[q.head] = Sample{}
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return s
}
