package focus

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSurface struct {
	focused int
	blurred int
}

func (s *fakeSurface) Focus() tea.Cmd { s.focused++; return nil }
func (s *fakeSurface) Blur()          { s.blurred++ }

const settle = time.Millisecond

// deliver runs a tick command and routes its result the way the program would.
func deliver(c *Coordinator, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	if msg, ok := cmd().(FocusMsg); ok {
		c.Handle(msg)
	}
}

func TestActivateFocusesAfterSettle(t *testing.T) {
	s := &fakeSurface{}
	c := New(s, settle)

	cmd := c.Activate()
	require.NotNil(t, cmd)
	assert.Equal(t, 0, s.focused, "focus must wait for the settle delay")
	assert.NotNil(t, c.Pending())

	msg := cmd()
	require.IsType(t, FocusMsg{}, msg)
	c.Handle(msg.(FocusMsg))

	assert.Equal(t, 1, s.focused)
	assert.Nil(t, c.Pending())
}

func TestDeactivateBeforeSettleNeverFocuses(t *testing.T) {
	s := &fakeSurface{}
	c := New(s, settle)

	cmd := c.Activate()
	c.Deactivate()

	assert.Nil(t, cmd(), "a canceled token yields no message")
	assert.Equal(t, 0, s.focused)
	assert.Equal(t, 1, s.blurred)
}

func TestStaleMessageIgnoredAfterReactivation(t *testing.T) {
	s := &fakeSurface{}
	c := New(s, settle)

	first := c.Activate()
	firstTok := c.Pending().ID()
	c.Deactivate()
	second := c.Activate()

	// The first activation's message arrives late; it must not focus.
	assert.Nil(t, c.Handle(FocusMsg{Token: firstTok}))
	assert.Nil(t, first())
	assert.Equal(t, 0, s.focused)

	deliver(c, second)
	assert.Equal(t, 1, s.focused)
}

func TestRapidSwitchingFocusesOnlyCurrent(t *testing.T) {
	s := &fakeSurface{}
	c := New(s, settle)

	var cmds []tea.Cmd
	for i := 0; i < 5; i++ {
		cmds = append(cmds, c.Activate())
		c.Deactivate()
	}
	cmds = append(cmds, c.Activate())

	for _, cmd := range cmds {
		deliver(c, cmd)
	}
	assert.Equal(t, 1, s.focused)
	assert.Equal(t, 5, s.blurred)
}

func TestActivateIsIdempotentWhileActive(t *testing.T) {
	s := &fakeSurface{}
	c := New(s, settle)

	require.NotNil(t, c.Activate())
	assert.Nil(t, c.Activate())
	assert.True(t, c.Active())
}

func TestDeactivateWhileInactiveDoesNotBlur(t *testing.T) {
	s := &fakeSurface{}
	c := New(s, settle)
	c.Deactivate()
	assert.Equal(t, 0, s.blurred)
}

func TestUnmountMakesFocusNoop(t *testing.T) {
	s := &fakeSurface{}
	c := New(s, settle)

	cmd := c.Activate()
	tok := c.Pending().ID()
	c.Unmount()

	assert.Nil(t, cmd())
	assert.NotPanics(t, func() { c.Handle(FocusMsg{Token: tok}) })
	assert.Nil(t, c.Activate())
	assert.Equal(t, 0, s.focused)
}

func TestTokenCancelIdempotent(t *testing.T) {
	tok := newToken()
	assert.False(t, tok.Canceled())
	tok.Cancel()
	tok.Cancel()
	assert.True(t, tok.Canceled())
	assert.NotEqual(t, tok.ID(), newToken().ID())
}
