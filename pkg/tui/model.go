// Package tui is the interactive calendar: a column of month grids next to
// the agenda of the selected date and of the next date with an agenda.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/config"
	"tableflip.dev/agenda/pkg/date"
	"tableflip.dev/agenda/pkg/nav"
	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/tui/theme"
)

// Options configure a Model.
type Options struct {
	// Reference is the date selected on start.
	Reference date.Date
	Keys      config.Keys
	Months    int
	Refresh   time.Duration
	Theme     theme.Theme
}

// DefaultOptions uses the default configuration around reference.
func DefaultOptions(reference date.Date) Options {
	cfg := config.Default()
	return Options{
		Reference: reference,
		Keys:      cfg.Keys,
		Months:    cfg.UI.Months,
		Refresh:   cfg.UI.Refresh,
		Theme:     theme.New(cfg.Colors),
	}
}

// Model is the Bubble Tea model for the interactive view.
type Model struct {
	ctx  context.Context
	svc  *app.Service
	nav  *nav.Navigator
	opts Options
	keys keyMap
	help help.Model
	log  zerolog.Logger

	snap     app.Snapshot
	loaded   bool
	err      error
	status   string
	width    int
	height   int
	quitting bool

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

// New builds a model reading through svc.
func New(ctx context.Context, svc *app.Service, opts Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Months < 1 {
		opts.Months = 1
	}
	h := help.New()
	h.Styles.ShortKey = opts.Theme.Help
	h.Styles.ShortDesc = opts.Theme.Help
	h.Styles.ShortSeparator = opts.Theme.Help

	return Model{
		ctx:  ctx,
		svc:  svc,
		nav:  nav.New(opts.Reference),
		opts: opts,
		keys: newKeyMap(opts.Keys),
		help: h,
		log:  log.With().Str("component", "tui").Logger(),
	}
}

// Selected is the date the view currently shows.
func (m Model) Selected() date.Date {
	return m.nav.Current()
}

type snapshotMsg struct {
	snap app.Snapshot
	err  error
}

type tickMsg time.Time

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.load(), m.tick(), startWatchCmd(m.ctx, m.svc))
}

// load rescans the directory for the selected date.
func (m Model) load() tea.Cmd {
	if m.svc == nil {
		return nil
	}
	ctx, svc, selected := m.ctx, m.svc, m.nav.Current()
	return func() tea.Msg {
		snap, err := svc.Snapshot(ctx, selected)
		if err != nil {
			snap.Selected = selected
		}
		return snapshotMsg{snap: snap, err: err}
	}
}

func (m Model) tick() tea.Cmd {
	if m.opts.Refresh <= 0 {
		return nil
	}
	return tea.Tick(m.opts.Refresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func startWatchCmd(parent context.Context, svc *app.Service) tea.Cmd {
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		ev := m.keys.event(msg)
		if !m.nav.Apply(ev) {
			m.quitting = true
			m.stopWatch()
			return m, tea.Quit
		}
		if ev != nav.None {
			m.log.Debug().Str("event", ev.String()).Str("date", m.nav.Current().ISO()).Msg("navigate")
			cmds = append(cmds, m.load())
		}

	case snapshotMsg:
		// Drop answers for a date the user already moved away from.
		if msg.snap.Selected != m.nav.Current() {
			break
		}
		m.err = msg.err
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Msg("snapshot")
			break
		}
		m.snap = msg.snap
		m.loaded = true

	case tickMsg:
		cmds = append(cmds, m.load(), m.tick())

	case watchStartedMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Msg("watch")
			m.status = "not watching for changes: " + msg.err.Error()
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case watchEventMsg:
		m.log.Debug().Str("date", msg.event.Date.ISO()).Int("type", int(msg.event.Type)).Msg("change")
		cmds = append(cmds, m.load())
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case watchStoppedMsg:
		m.stopWatch()
		if m.ctx.Err() == nil {
			cmds = append(cmds, startWatchCmd(m.ctx, m.svc))
		}
	}

	return m, tea.Batch(cmds...)
}

// Run starts the interactive view on the alternate screen and blocks until
// the user quits or ctx is done.
func Run(ctx context.Context, svc *app.Service, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(New(ctx, svc, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
