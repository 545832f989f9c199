// internal/services/subscription.go
package services

import "sync"

// Unsubscribe detaches a subscriber registered with Subscribe.
type Unsubscribe func()

// publisher fans full-state snapshots out to an observer list with
// synchronous notify. New subscribers immediately receive the latest
// published snapshot, so late consumers never start from nothing.
type publisher[T any] struct {
	mu     sync.Mutex
	subs   map[int]func(T)
	nextID int
	last   T
	seeded bool
}

func newPublisher[T any]() *publisher[T] {
	return &publisher[T]{subs: make(map[int]func(T))}
}

func (p *publisher[T]) Subscribe(fn func(T)) Unsubscribe {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.subs[id] = fn
	last, seeded := p.last, p.seeded
	p.mu.Unlock()

	if seeded {
		fn(last)
	}
	return func() {
		p.mu.Lock()
		delete(p.subs, id)
		p.mu.Unlock()
	}
}

func (p *publisher[T]) Publish(snapshot T) {
	p.mu.Lock()
	p.last = snapshot
	p.seeded = true
	fns := make([]func(T), 0, len(p.subs))
	for _, fn := range p.subs {
		fns = append(fns, fn)
	}
	p.mu.Unlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}
