package state

import (
	"sync"

	"rtesession/internal/document"
)

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithDocumentObserver registers a callback that receives every document
// snapshot the store adopts.
func WithDocumentObserver(fn func(document.Document)) StoreOption {
	return func(s *Store) { s.onDocument = fn }
}

// WithInitialFlags overrides the default edit-mode and overlay flags.
func WithInitialFlags(editMode, highlightFocus bool) StoreOption {
	return func(s *Store) {
		s.state.EditMode = editMode
		s.state.HighlightFocus = highlightFocus
	}
}

// Store is the single owner of a SessionState. Every mutation replaces
// whole fields through a reducer, so State always returns a complete,
// self-consistent copy.
type Store struct {
	mu         sync.RWMutex
	state      SessionState
	onDocument func(document.Document)
}

// NewStore creates the state for a new session.
func NewStore(initial document.Document, opts ...StoreOption) *Store {
	if initial.Blocks == nil {
		initial = document.Empty()
	}
	s := &Store{state: Default(initial)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a read-only snapshot.
func (s *Store) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Document returns the current document snapshot.
func (s *Store) Document() document.Document {
	return s.State().Document
}

func (s *Store) apply(fn func(SessionState) SessionState) SessionState {
	s.mu.Lock()
	s.state = fn(s.state)
	next := s.state
	s.mu.Unlock()
	return next
}

// ApplyDocumentUpdate adopts a snapshot produced by the editor engine and
// notifies the observer. The value is not validated.
func (s *Store) ApplyDocumentUpdate(doc document.Document) {
	s.apply(func(st SessionState) SessionState { return WithDocument(st, doc) })
	s.notify(doc)
}

// EraseDocument replaces the document with a new empty one. Any history the
// editor engine kept for the old buffer is gone.
func (s *Store) EraseDocument() {
	next := s.apply(Erase)
	s.notify(next.Document)
}

func (s *Store) notify(doc document.Document) {
	if s.onDocument != nil {
		s.onDocument(doc)
	}
}

func (s *Store) SetEditMode(on bool) {
	s.apply(func(st SessionState) SessionState { return WithEditMode(st, on) })
}

func (s *Store) SetHighlightFocus(on bool) {
	s.apply(func(st SessionState) SessionState { return WithHighlightFocus(st, on) })
}

// SetActiveView is the only way the presented screen changes.
func (s *Store) SetActiveView(v View) {
	s.apply(func(st SessionState) SessionState { return WithView(st, v) })
}

// SetViewport records the host size. Called by the viewport tracker.
func (s *Store) SetViewport(width, height int) {
	s.apply(func(st SessionState) SessionState { return Resize(st, width, height) })
}
