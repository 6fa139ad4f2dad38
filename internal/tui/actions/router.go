package actions

import (
	"rtesession/internal/document"
	"rtesession/internal/tui/state"
	"rtesession/pkg/logging"
)

// ID identifies an action emitted by the toolbar or a key binding.
type ID string

const (
	OpenConfig         ID = "OPEN_CONFIG"
	ViewSource         ID = "VIEW_SOURCE"
	CopyDocumentSource ID = "COPY_DOCUMENT_SOURCE"
	EraseDocument      ID = "ERASE_DOCUMENT"
)

// Builtin reports whether id is one of the session-level actions handled
// by the router itself.
func Builtin(id ID) bool {
	switch id {
	case OpenConfig, ViewSource, CopyDocumentSource, EraseDocument:
		return true
	}
	return false
}

// Style is the visual weight of a notification.
type Style int

const (
	Info Style = iota
	Success
	Error
)

// Store is the slice of the session store the router mutates.
type Store interface {
	Document() document.Document
	SetActiveView(state.View)
	EraseDocument()
}

// Clipboard receives serialized document source.
type Clipboard interface {
	SetText(text string) error
}

// Notifier shows a transient message to the user.
type Notifier interface {
	Show(message string, style Style)
}

// Messages are the notification texts used by the copy action.
type Messages struct {
	Copied     string
	CopyFailed string
}

// DefaultMessages returns the stock notification texts.
func DefaultMessages() Messages {
	return Messages{
		Copied:     "Document source copied to clipboard",
		CopyFailed: "Copy failed",
	}
}

// Option configures a Router.
type Option func(*Router)

func WithClipboard(c Clipboard) Option { return func(r *Router) { r.clipboard = c } }

func WithNotifier(n Notifier) Option { return func(r *Router) { r.notifier = n } }

// WithCustomAction installs the callback that receives every action the
// router does not recognize.
func WithCustomAction(fn func(ID)) Option { return func(r *Router) { r.custom = fn } }

func WithMessages(m Messages) Option { return func(r *Router) { r.messages = m } }

// Router classifies actions into store mutations, navigation or custom
// callbacks.
type Router struct {
	store     Store
	clipboard Clipboard
	notifier  Notifier
	custom    func(ID)
	messages  Messages
}

// New creates a router bound to store.
func New(store Store, opts ...Option) *Router {
	r := &Router{store: store, messages: DefaultMessages()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Dispatch routes a single action.
func (r *Router) Dispatch(id ID) {
	logging.Debug("Actions", "dispatch %s", id)
	switch id {
	case OpenConfig:
		r.store.SetActiveView(state.Config)
	case ViewSource:
		r.store.SetActiveView(state.Source)
	case CopyDocumentSource:
		r.copySource()
	case EraseDocument:
		r.store.EraseDocument()
	default:
		if r.custom == nil {
			logging.Debug("Actions", "ignoring unrecognized action %q", id)
			return
		}
		r.custom(id)
	}
}

func (r *Router) copySource() {
	src, err := r.store.Document().Source()
	if err == nil && r.clipboard != nil {
		err = r.clipboard.SetText(src)
	}
	if err != nil {
		logging.Error("Actions", err, "copy document source")
		r.notify(r.messages.CopyFailed+": "+err.Error(), Error)
		return
	}
	r.notify(r.messages.Copied, Success)
}

func (r *Router) notify(msg string, style Style) {
	if r.notifier != nil {
		r.notifier.Show(msg, style)
	}
}
