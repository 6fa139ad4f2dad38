package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rtesession/internal/document"
	"rtesession/internal/tui/state"
)

// countingSource wraps a Hub and counts subscribe/unsubscribe calls.
type countingSource struct {
	hub          *Hub
	subscribes   int
	unsubscribes int
}

func (c *countingSource) Subscribe(fn func(Size)) func() {
	c.subscribes++
	unsub := c.hub.Subscribe(fn)
	return func() {
		c.unsubscribes++
		unsub()
	}
}

func TestTrackerRepublishesWidth(t *testing.T) {
	hub := NewHub()
	store := state.NewStore(document.Empty())
	tr := NewTracker(hub, store)

	tr.Activate()
	hub.Publish(Size{Width: 120, Height: 40})
	assert.Equal(t, 120, store.State().ViewportWidth)
	assert.Equal(t, 40, store.State().ViewportHeight)

	hub.Publish(Size{Width: 90, Height: 30})
	assert.Equal(t, 90, store.State().ViewportWidth)
}

func TestTrackerNoLeakAfterDeactivate(t *testing.T) {
	hub := NewHub()
	store := state.NewStore(document.Empty())
	tr := NewTracker(hub, store)

	tr.Activate()
	hub.Publish(Size{Width: 100, Height: 20})
	tr.Deactivate()
	hub.Publish(Size{Width: 33, Height: 11})

	assert.Equal(t, 100, store.State().ViewportWidth)
	assert.Equal(t, 0, hub.Subscribers())
	assert.False(t, tr.Active())
}

func TestTrackerSubscribesAndUnsubscribesOnce(t *testing.T) {
	src := &countingSource{hub: NewHub()}
	tr := NewTracker(src, state.NewStore(document.Empty()))

	tr.Activate()
	tr.Activate()
	tr.Deactivate()
	tr.Deactivate()

	assert.Equal(t, 1, src.subscribes)
	assert.Equal(t, 1, src.unsubscribes)

	// A fresh activation cycle is allowed after teardown.
	tr.Activate()
	tr.Deactivate()
	assert.Equal(t, 2, src.subscribes)
	assert.Equal(t, 2, src.unsubscribes)
}

func TestTrackerWithoutSourceDegrades(t *testing.T) {
	store := state.NewStore(document.Empty())
	tr := NewTracker(nil, store)

	assert.NotPanics(t, func() {
		tr.Activate()
		tr.Deactivate()
	})
	assert.False(t, tr.Active())
	assert.Equal(t, 0, store.State().ViewportWidth)
}

func TestHubUnsubscribeIdempotent(t *testing.T) {
	hub := NewHub()
	calls := 0
	unsub := hub.Subscribe(func(Size) { calls++ })
	other := hub.Subscribe(func(Size) {})

	unsub()
	unsub()
	hub.Publish(Size{Width: 1})

	assert.Equal(t, 0, calls)
	assert.Equal(t, 1, hub.Subscribers())
	assert.Equal(t, Size{Width: 1}, hub.Last())
	other()
}
