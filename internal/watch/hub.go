// Package watch implements the live case subscription as a cancellable
// in-process broadcast: each subscriber owns a signal channel, the hub
// pokes every subscriber after a case changes, and the SSE handler re-reads
// the collection and pushes a fresh snapshot on each poke. Signals coalesce
// (a slow subscriber sees one poke for many changes), which is fine because
// every poke triggers a full re-read: consumers get the latest state, not
// a change log, and must not assume row-order stability across snapshots.
package watch

import (
	"context"
	"sync"
)

// Hub fans change notifications out to active subscribers. The zero value
// is not usable; call NewHub.
type Hub struct {
	mu   sync.Mutex
	subs map[uint64]chan struct{}
	next uint64
}

func NewHub() *Hub {
	return &Hub{subs: make(map[uint64]chan struct{})}
}

// Subscribe registers a subscriber and returns its signal channel. The
// channel fires once immediately so the consumer renders the current state
// without waiting for the first change. The subscription is removed when
// ctx is cancelled.
func (h *Hub) Subscribe(ctx context.Context) <-chan struct{} {
	ch := make(chan struct{}, 1)
	ch <- struct{}{} // initial snapshot

	h.mu.Lock()
	id := h.next
	h.next++
	h.subs[id] = ch
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.mu.Lock()
		delete(h.subs, id)
		h.mu.Unlock()
	}()
	return ch
}

// Notify pokes every subscriber. Non-blocking: a subscriber with a pending
// signal keeps exactly one, which still guarantees it re-reads after the
// latest change.
func (h *Hub) Notify() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Len reports the number of active subscribers.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
