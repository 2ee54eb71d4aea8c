// Package tui is the interactive viewer: a timeline of rendered messages,
// formatted search results and the announcements-only banner, each on its
// own tab.
package tui

import (
	"context"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/msgview/internal/core/config"
	"github.com/colonyops/msgview/internal/core/fixture"
	"github.com/colonyops/msgview/internal/core/i18n"
	"github.com/colonyops/msgview/internal/core/logging"
	"github.com/colonyops/msgview/internal/core/search"
	"github.com/colonyops/msgview/internal/tui/keymap"
	"github.com/colonyops/msgview/internal/tui/views/banner"
	searchview "github.com/colonyops/msgview/internal/tui/views/search"
	"github.com/colonyops/msgview/internal/tui/views/timeline"
)

// Options configures the TUI behavior.
type Options struct {
	Doc     *fixture.Document // initial document (required)
	Watcher *fixture.Watcher  // live reloads of the document (optional)
	Now     func() time.Time  // clock for relative timestamps (optional)
}

type reloadMsg fixture.Reload

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	ctx     context.Context
	cfg     *config.Config
	keys    keymap.KeyMap
	watcher *fixture.Watcher
	now     func() time.Time

	active   ViewType
	timeline timeline.View
	search   searchview.View
	banner   banner.View
	toasts   *ToastController

	width    int
	height   int
	quitting bool
}

// New creates the root model.
func New(ctx context.Context, cfg *config.Config, loc i18n.Translator, opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	keys := keymap.New(cfg.TUI.Keys)
	toasts := NewToastController()
	navigator := &statusNavigator{toasts: toasts}

	m := Model{
		ctx:      ctx,
		cfg:      cfg,
		keys:     keys,
		watcher:  opts.Watcher,
		now:      now,
		timeline: timeline.New(loc, cfg.Body, keys, navigator),
		search:   searchview.New(loc, keys, navigator, search.FirstBadge),
		banner:   banner.New(loc, keys, navigator),
		toasts:   toasts,
	}
	m.load(opts.Doc)
	return m
}

// Active returns the active tab.
func (m Model) Active() ViewType {
	return m.active
}

// Toasts returns the status notices currently showing.
func (m Model) Toasts() []string {
	return m.toasts.Messages()
}

func (m *Model) load(doc *fixture.Document) {
	if doc == nil {
		doc = &fixture.Document{}
	}

	results := make([]search.Result, 0, len(doc.Results))
	for _, r := range doc.Results {
		results = append(results, r.Result())
	}

	ctx := logging.WithConversationID(m.ctx, doc.Conversation)
	m.timeline.Load(ctx, doc.Entries)
	m.search.Load(ctx, results, m.now())
	m.banner.Load(doc.Banner)
}

// Init starts listening for fixture reloads.
func (m Model) Init() tea.Cmd {
	return waitForReload(m.watcher)
}

func waitForReload(w *fixture.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-w.Reloads()
		if !ok {
			return nil
		}
		return reloadMsg(r)
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
	case reloadMsg:
		cmd = m.handleReload(fixture.Reload(msg))
	case toastTickMsg:
		m.toasts.Tick(toastTickInterval)
		if !m.toasts.HasToasts() {
			m.toasts.SetTicking(false)
			return m, nil
		}
		return m, scheduleToastTick()
	case tea.KeyPressMsg:
		var done bool
		m, cmd, done = m.handleKey(msg)
		if done {
			return m, cmd
		}
	default:
		cmd = m.updateActive(msg)
	}

	return m, tea.Batch(cmd, m.ensureToastTick())
}

func (m *Model) handleReload(r fixture.Reload) tea.Cmd {
	log := logging.Component("tui")
	if r.Err != nil {
		log.Warn().Err(r.Err).Msg("fixture reload failed")
		m.toasts.Push(ToastError, "Reload failed: "+r.Err.Error())
	} else {
		log.Debug().Msg("fixture reloaded")
		m.load(r.Doc)
		m.resize()
		m.toasts.Push(ToastInfo, "Reloaded")
	}
	return waitForReload(m.watcher)
}

// handleKey routes a key press. done is set when the key was fully handled
// and no toast tick needs scheduling.
func (m Model) handleKey(msg tea.KeyPressMsg) (Model, tea.Cmd, bool) {
	// Editors and modals of the active tab see every key first.
	captured := (m.active == ViewSearch && m.search.HasEditorFocus()) ||
		(m.active == ViewBanner && m.banner.IsModalOpen())

	if !captured {
		switch {
		case msg.String() == "ctrl+c", key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit, true
		case key.Matches(msg, m.keys.NextTab):
			m.active = m.active.Next()
			return m, nil, true
		case key.Matches(msg, m.keys.Close) && m.toasts.HasToasts() && m.active != ViewSearch:
			m.toasts.Dismiss()
			return m, nil, true
		}
	}

	return m, m.updateActive(msg), false
}

func (m *Model) updateActive(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.active {
	case ViewTimeline:
		m.timeline, cmd = m.timeline.Update(msg)
	case ViewSearch:
		m.search, cmd = m.search.Update(msg)
	case ViewBanner:
		m.banner, cmd = m.banner.Update(msg)
	}
	return cmd
}

func (m *Model) ensureToastTick() tea.Cmd {
	if !m.toasts.HasToasts() || m.toasts.Ticking() {
		return nil
	}
	m.toasts.SetTicking(true)
	return scheduleToastTick()
}

func (m *Model) resize() {
	w, h := m.contentSize()
	m.timeline.SetSize(w, h)
	m.search.SetSize(w, h)
	m.banner.SetSize(w, h)
}

// contentSize is the area left for the active tab after the tab bar, the
// divider and the help line.
func (m Model) contentSize() (int, int) {
	width := m.width
	if m.cfg.TUI.Width > 0 && (width == 0 || m.cfg.TUI.Width < width) {
		width = m.cfg.TUI.Width
	}
	return width, max(m.height-3, 1)
}
