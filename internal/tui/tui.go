package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"rtesession/internal/config"
	"rtesession/internal/document"
	"rtesession/internal/tui/actions"
	"rtesession/internal/tui/focus"
	"rtesession/internal/tui/state"
	"rtesession/internal/tui/util"
	"rtesession/internal/tui/viewport"
	"rtesession/internal/tui/widgets/editor"
	"rtesession/internal/tui/widgets/helpoverlay"
	"rtesession/internal/tui/widgets/source"
	"rtesession/internal/tui/widgets/statusbar"
	"rtesession/internal/tui/widgets/toast"
	"rtesession/internal/tui/widgets/toolbar"
	"rtesession/pkg/logging"
)

// Options configure a session. Everything except Config may be left zero.
type Options struct {
	Config   config.Config
	Document document.Document

	// Clipboard receives copied source. Defaults to the system clipboard.
	Clipboard actions.Clipboard

	// ViewportSource reports host size changes. Defaults to the sizes the
	// terminal sends the program.
	ViewportSource viewport.Source

	// OnDocument receives every document snapshot the session adopts.
	OnDocument func(document.Document)

	// OnCustomAction receives toolbar actions the session does not handle
	// itself, after any configured insert text has been applied.
	OnCustomAction func(actions.ID)
}

// Run mounts a session and blocks until the user quits or ctx is done.
// Cancelling ctx is a normal way to end the session.
func Run(ctx context.Context, opts Options) error {
	return run(ctx, opts, tea.WithAltScreen())
}

func run(ctx context.Context, opts Options, progOpts ...tea.ProgramOption) error {
	m := New(opts)
	p := tea.NewProgram(m, append([]tea.ProgramOption{tea.WithContext(ctx)}, progOpts...)...)
	_, err := p.Run()
	m.unmount()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		logging.Info("Session", "%s stopped: %v", m.id, context.Cause(ctx))
		return nil
	}
	if err != nil {
		return fmt.Errorf("run session: %w", err)
	}
	return nil
}

// ===== Model =====

// Model is the session controller: it owns the store and wires the router,
// viewport tracker and focus coordinator to the three screens.
type Model struct {
	id     string // session id, for logs
	cfg    config.Config
	styles util.Styles
	keys   KeyMap

	store   *state.Store
	router  *actions.Router
	hub     *viewport.Hub
	tracker *viewport.Tracker
	focus   *focus.Coordinator

	editor  *editor.Editor
	source  *source.View
	toolbar toolbar.Toolbar
	toast   *toast.Toast
	status  statusbar.StatusBar
	help    helpoverlay.HelpOverlay

	inserts  map[actions.ID]string
	onCustom func(actions.ID)

	showHelp bool
	quitting bool
}

// New builds a session controller. The session is mounted by Init.
func New(opts Options) *Model {
	cfg := opts.Config
	doc := opts.Document
	if doc.Blocks == nil {
		doc = document.Empty()
	}

	styles := util.NewStyles(util.PaletteFrom(cfg.Theme), util.NoColor(cfg.NoColor))
	m := &Model{
		id:       uuid.NewString(),
		cfg:      cfg,
		styles:   styles,
		keys:     DefaultKeyMap(),
		hub:      viewport.NewHub(),
		toast:    toast.New(styles, cfg.ToastDuration),
		status:   statusbar.NewStatusBar(styles, cfg.DebugLabel),
		inserts:  map[actions.ID]string{},
		onCustom: opts.OnCustomAction,
	}

	m.store = state.NewStore(doc,
		state.WithDocumentObserver(opts.OnDocument),
		state.WithInitialFlags(flag(cfg.EditMode, true), flag(cfg.HighlightFocus, false)),
	)

	clip := opts.Clipboard
	if clip == nil {
		clip = systemClipboard{}
	}
	m.router = actions.New(m.store,
		actions.WithClipboard(clip),
		actions.WithNotifier(m.toast),
		actions.WithMessages(cfg.Messages()),
		actions.WithCustomAction(m.customAction),
	)

	src := opts.ViewportSource
	if src == nil {
		src = m.hub
	}
	m.tracker = viewport.NewTracker(src, m.store)

	m.editor = editor.New(styles, cfg.DebugLabel, m.store.ApplyDocumentUpdate)
	m.editor.SetProps(editorProps(m.store.State()))
	m.focus = focus.New(m.editor, cfg.SettleDelay())
	m.source = source.New(styles, cfg.SourceStyle, doc)
	m.toolbar = toolbar.New(styles, m.toolbarItems()...)
	m.help = helpoverlay.NewHelpOverlay(m.helpSections()...)
	return m
}

func flag(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func (m *Model) toolbarItems() []toolbar.Item {
	items := []toolbar.Item{
		toolbar.NewItem(actions.OpenConfig, "Config", "ctrl+o"),
		toolbar.NewItem(actions.ViewSource, "Source", "ctrl+u"),
		toolbar.NewItem(actions.CopyDocumentSource, "Copy", "ctrl+y"),
	}
	if m.cfg.EraseControl != config.EraseOnConfigPage {
		items = append(items, toolbar.NewItem(actions.EraseDocument, "Erase", "ctrl+x"))
	}
	for _, a := range m.cfg.CustomActions {
		id := actions.ID(a.ID)
		if a.Insert != "" {
			m.inserts[id] = a.Insert
		}
		items = append(items, toolbar.NewItem(id, a.Label, a.Key))
	}
	return items
}

func (m *Model) helpSections() []helpoverlay.Section {
	hint := func(bs ...key.Binding) []string {
		out := make([]string, 0, len(bs))
		for _, b := range bs {
			out = append(out, b.Help().Key+"  "+b.Help().Desc)
		}
		return out
	}
	var bar []key.Binding
	for _, it := range m.toolbar.Items() {
		bar = append(bar, it.Binding)
	}
	sections := []helpoverlay.Section{
		{Title: "Editor", Keys: hint(bar...)},
		{Title: "Source", Keys: hint(m.keys.Copy, m.keys.ToggleDiff)},
		{Title: "Config", Keys: hint(m.keys.ToggleEdit, m.keys.ToggleOverlay)},
		{Title: "Global", Keys: hint(m.keys.Back, m.keys.Help, m.keys.Quit)},
	}
	if m.cfg.EraseControl == config.EraseOnConfigPage {
		sections[2].Keys = append(sections[2].Keys, hint(m.keys.Erase)...)
	}
	if m.cfg.Presentation == config.Tabs {
		sections[3].Keys = append(sections[3].Keys, hint(m.keys.NextView, m.keys.PrevView)...)
		// tab never reaches the text area under tabs
		sections[0].Keys = append(sections[0].Keys, "4 spaces  code block (tab switches screens)")
	}
	return sections
}

// customAction applies configured insert text and forwards the action.
func (m *Model) customAction(id actions.ID) {
	if text, ok := m.inserts[id]; ok {
		m.editor.InsertString(text)
	}
	if m.onCustom != nil {
		m.onCustom(id)
	}
}

// State returns the current session state.
func (m *Model) State() state.SessionState { return m.store.State() }

// Init mounts the session: the viewport subscription starts and, when the
// editor is the first screen, focus is requested.
func (m *Model) Init() tea.Cmd {
	logging.Info("Session", "mount %s (presentation=%s)", m.id, m.cfg.Presentation)
	m.tracker.Activate()
	if m.store.State().ActiveView == state.Editor {
		return m.focus.Activate()
	}
	return nil
}

// Update handles all session messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	prev := m.store.State().ActiveView

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.hub.Publish(viewport.Size{Width: msg.Width, Height: msg.Height})
	case focus.FocusMsg:
		cmd = m.focus.Handle(msg)
	case toast.ClearMsg:
		m.toast.Clear(msg)
	case tea.KeyMsg:
		var quit bool
		cmd, quit = m.handleKey(msg)
		if quit {
			m.unmount()
			return m, tea.Quit
		}
	default:
		if m.store.State().ActiveView == state.Source {
			cmd = m.source.Update(msg)
		}
	}
	return m, tea.Batch(cmd, m.sync(prev))
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if key.Matches(msg, m.keys.Quit) {
		return nil, true
	}
	s := m.store.State()
	// "?" is text while the editor has the keyboard.
	if key.Matches(msg, m.keys.Help) && (s.ActiveView != state.Editor || m.showHelp || msg.String() != "?") {
		m.showHelp = !m.showHelp
		return nil, false
	}
	if m.showHelp {
		if key.Matches(msg, m.keys.Back) {
			m.showHelp = false
		}
		return nil, false
	}

	if m.cfg.Presentation == config.Tabs {
		switch {
		case key.Matches(msg, m.keys.NextView):
			m.store.SetActiveView(state.NextView(s.ActiveView))
			return nil, false
		case key.Matches(msg, m.keys.PrevView):
			m.store.SetActiveView(state.PrevView(s.ActiveView))
			return nil, false
		}
	}
	if s.ActiveView != state.Editor && key.Matches(msg, m.keys.Back) {
		m.store.SetActiveView(state.Editor)
		return nil, false
	}

	switch s.ActiveView {
	case state.Source:
		return m.sourceKey(msg), false
	case state.Config:
		return m.configKey(msg), false
	default:
		return m.editorKey(msg), false
	}
}

// sync pushes the store's state into the screens after every update and
// drives focus across editor activation changes.
func (m *Model) sync(prev state.View) tea.Cmd {
	s := m.store.State()
	var cmds []tea.Cmd
	if prev != s.ActiveView {
		logging.Debug("Session", "%s: view %s -> %s", m.id, prev, s.ActiveView)
		if prev == state.Editor {
			m.focus.Deactivate()
		}
		if s.ActiveView == state.Editor {
			cmds = append(cmds, m.focus.Activate())
		}
	}
	m.editor.SetProps(editorProps(s))
	if s.ActiveView == state.Source {
		m.source.SetDocument(s.Document)
	}
	m.layout(s)
	cmds = append(cmds, m.toast.Cmd())
	return tea.Batch(cmds...)
}

// unmount releases the viewport subscription and cancels pending focus.
func (m *Model) unmount() {
	if m.quitting {
		return
	}
	m.quitting = true
	m.tracker.Deactivate()
	m.focus.Unmount()
	logging.Info("Session", "unmount %s", m.id)
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return m.render(m.store.State())
}
