package viewport

import (
	"sync"

	"rtesession/pkg/logging"
)

// Size is a host viewport dimension in cells.
type Size struct {
	Width  int
	Height int
}

// Source delivers size-change notifications. The returned func removes the
// subscription.
type Source interface {
	Subscribe(fn func(Size)) (unsubscribe func())
}

// Sink receives republished sizes.
type Sink interface {
	SetViewport(width, height int)
}

// Hub is an in-process Source. The controller publishes every
// tea.WindowSizeMsg into it.
type Hub struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(Size)
	last   Size
}

func NewHub() *Hub {
	return &Hub{subs: map[int]func(Size){}}
}

// Subscribe registers fn. The unsubscribe func is safe to call repeatedly.
func (h *Hub) Subscribe(fn func(Size)) func() {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = fn
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
		})
	}
}

// Publish fans sz out to the current subscribers.
func (h *Hub) Publish(sz Size) {
	h.mu.Lock()
	h.last = sz
	fns := make([]func(Size), 0, len(h.subs))
	for _, fn := range h.subs {
		fns = append(fns, fn)
	}
	h.mu.Unlock()
	for _, fn := range fns {
		fn(sz)
	}
}

// Last returns the most recently published size.
func (h *Hub) Last() Size {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.last
}

// Subscribers returns the number of live subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Tracker republishes viewport sizes from a Source into a Sink while it is
// active.
type Tracker struct {
	src         Source
	sink        Sink
	unsubscribe func()
}

func NewTracker(src Source, sink Sink) *Tracker {
	return &Tracker{src: src, sink: sink}
}

// Activate subscribes to the source. Calling it while active is a no-op.
// Without a source the tracker stays inactive and the sink simply stops
// receiving sizes.
func (t *Tracker) Activate() {
	if t.unsubscribe != nil {
		return
	}
	if t.src == nil {
		logging.Warn("Viewport", "no size source available; viewport width will not update")
		return
	}
	t.unsubscribe = t.src.Subscribe(func(sz Size) {
		if t.sink != nil {
			t.sink.SetViewport(sz.Width, sz.Height)
		}
	})
}

// Deactivate removes the subscription exactly once.
func (t *Tracker) Deactivate() {
	if t.unsubscribe == nil {
		return
	}
	unsub := t.unsubscribe
	t.unsubscribe = nil
	unsub()
}

// Active reports whether the tracker holds a subscription.
func (t *Tracker) Active() bool { return t.unsubscribe != nil }
