package focus

import (
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"rtesession/pkg/logging"
)

// DefaultSettle is the delay between a screen becoming active and the
// editing surface receiving focus.
const DefaultSettle = 100 * time.Millisecond

// Surface is the editing surface whose focus is coordinated.
type Surface interface {
	Focus() tea.Cmd
	Blur()
}

var tokenSeq atomic.Uint64

// Token ties a deferred focus request to one activation.
type Token struct {
	id   uint64
	once sync.Once
	done chan struct{}
}

func newToken() *Token {
	return &Token{id: tokenSeq.Add(1), done: make(chan struct{})}
}

func (t *Token) ID() uint64 { return t.id }

// Cancel revokes the token. Safe to call more than once.
func (t *Token) Cancel() {
	t.once.Do(func() { close(t.done) })
}

func (t *Token) Canceled() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// FocusMsg is delivered when a settle delay elapses with its token still live.
type FocusMsg struct {
	Token uint64
}

// Coordinator focuses the surface shortly after its screen activates and
// blurs it as soon as the screen deactivates.
type Coordinator struct {
	surface Surface
	settle  time.Duration
	active  bool
	current *Token
}

func New(surface Surface, settle time.Duration) *Coordinator {
	if settle < 0 {
		settle = 0
	}
	return &Coordinator{surface: surface, settle: settle}
}

// Active reports whether the coordinated screen is currently active.
func (c *Coordinator) Active() bool { return c.active }

// Pending returns the live token of the outstanding focus request, if any.
func (c *Coordinator) Pending() *Token {
	if c.current == nil || c.current.Canceled() {
		return nil
	}
	return c.current
}

// Activate handles an inactive→active transition and returns the deferred
// focus request. It returns nil when already active or unmounted.
func (c *Coordinator) Activate() tea.Cmd {
	if c.active || c.surface == nil {
		return nil
	}
	c.active = true
	if c.current != nil {
		c.current.Cancel()
	}
	tok := newToken()
	c.current = tok
	logging.Debug("Focus", "activate; focus in %s (token %d)", c.settle, tok.id)
	return tea.Tick(c.settle, func(time.Time) tea.Msg {
		if tok.Canceled() {
			return nil
		}
		return FocusMsg{Token: tok.id}
	})
}

// Deactivate handles an active→inactive transition: the pending request is
// revoked and input is dismissed immediately.
func (c *Coordinator) Deactivate() {
	if !c.active {
		return
	}
	c.active = false
	if c.current != nil {
		c.current.Cancel()
	}
	if c.surface != nil {
		c.surface.Blur()
	}
	logging.Debug("Focus", "deactivate; input dismissed")
}

// Handle applies a FocusMsg if it belongs to the current activation.
func (c *Coordinator) Handle(msg FocusMsg) tea.Cmd {
	tok := c.current
	if !c.active || c.surface == nil || tok == nil || tok.Canceled() || tok.id != msg.Token {
		logging.Debug("Focus", "dropping stale focus request (token %d)", msg.Token)
		return nil
	}
	tok.Cancel()
	return c.surface.Focus()
}

// Unmount detaches the surface. Every later request is a no-op.
func (c *Coordinator) Unmount() {
	if c.current != nil {
		c.current.Cancel()
	}
	c.active = false
	c.surface = nil
}
