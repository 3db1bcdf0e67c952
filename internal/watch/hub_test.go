package watch

import (
	"context"
	"testing"
	"time"
)

// TestSubscribeFiresImmediately: a fresh subscriber gets one signal before
// any change happens, so consumers render the current state right away.
func TestSubscribeFiresImmediately(t *testing.T) {
	h := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := h.Subscribe(ctx)
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("expected an immediate signal on subscribe")
	}
}

// TestNotifyReachesAllSubscribers verifies fan-out.
func TestNotifyReachesAllSubscribers(t *testing.T) {
	h := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := h.Subscribe(ctx)
	b := h.Subscribe(ctx)
	<-a // drain initial signals
	<-b

	h.Notify()
	for name, ch := range map[string]<-chan struct{}{"a": a, "b": b} {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatalf("subscriber %s did not receive notification", name)
		}
	}
}

// TestNotifyCoalesces: signals collapse while a subscriber is slow, and a
// drained subscriber still observes the latest change.
func TestNotifyCoalesces(t *testing.T) {
	h := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := h.Subscribe(ctx)
	// Do not drain the initial signal; pile more on top.
	h.Notify()
	h.Notify()
	h.Notify()

	<-ch // exactly one pending signal
	select {
	case <-ch:
		t.Fatal("expected coalesced signals, got a second pending one")
	default:
	}
}

// TestCancelRemovesSubscriber verifies the subscription is cleaned up when
// its context ends.
func TestCancelRemovesSubscriber(t *testing.T) {
	h := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	h.Subscribe(ctx)
	if h.Len() != 1 {
		t.Fatalf("expected 1 subscriber, got %d", h.Len())
	}
	cancel()

	deadline := time.Now().Add(time.Second)
	for h.Len() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("subscriber was not removed after cancel")
		}
		time.Sleep(5 * time.Millisecond)
	}
	// Notifying an empty hub must not panic or block.
	h.Notify()
}
