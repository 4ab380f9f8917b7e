package store

import (
	"context"
	"sync"

	"greencart/internal/domain/entity"
)

// pushQueue sends cart snapshots one at a time. Snapshots queued while a push is in flight
// collapse into the latest one.
type pushQueue struct {
	mu      sync.Mutex
	pending entity.Cart
	queued  bool
	closed  bool

	wake chan struct{}
	done chan struct{}

	push    func(ctx context.Context, cart entity.Cart) error
	onError func(err error)
}

func newPushQueue(push func(ctx context.Context, cart entity.Cart) error, onError func(err error)) *pushQueue {
	q := &pushQueue{
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
		push:    push,
		onError: onError,
	}
	go q.run()

	return q
}

// enqueue replaces any pending snapshot. It is a no-op once the queue is closed.
func (q *pushQueue) enqueue(cart entity.Cart) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.pending = cart
	q.queued = true

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// close stops accepting snapshots and waits for the pending one to be sent.
func (q *pushQueue) close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		<-q.done

		return
	}
	q.closed = true
	close(q.wake)
	q.mu.Unlock()

	<-q.done
}

func (q *pushQueue) run() {
	defer close(q.done)

	for range q.wake {
		q.mu.Lock()
		cart, queued := q.pending, q.queued
		q.pending, q.queued = nil, false
		q.mu.Unlock()

		if !queued {
			continue
		}
		if err := q.push(context.Background(), cart); err != nil {
			q.onError(err)
		}
	}
}
