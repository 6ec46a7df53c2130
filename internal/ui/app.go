package ui

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/searchly/internal/catalog"
	"github.com/five82/searchly/internal/logging"
	"github.com/five82/searchly/internal/prefs"
	"github.com/five82/searchly/internal/state"
)

// Options configures the UI.
type Options struct {
	Records   []catalog.Record
	PageSize  int
	Prefs     *prefs.Store // nil disables theme persistence
	ThemeName string
	Rand      *rand.Rand         // nil uses the global source
	Clipboard func(string) error // nil uses the system clipboard
}

// itemSpan is the row range one result occupies in the viewport content.
type itemSpan struct {
	start, end int
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	keys      keyMap
	prefs     *prefs.Store
	rng       *rand.Rand
	clipboard func(string) error

	// Search state
	session state.Session
	view    state.PageView

	// UI state
	theme     Theme
	input     textinput.Model
	results   viewport.Model
	width     int
	height    int
	ready     bool
	cursor    int
	itemSpans []itemSpan
	showHelp  bool

	// Footer status
	status    string
	statusErr bool
	statusSeq int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = "Search results..."
	ti.CharLimit = 200
	ti.Focus()

	copyFn := opts.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	session := state.New(opts.Records, opts.PageSize)
	return Model{
		keys:      DefaultKeyMap(),
		prefs:     opts.Prefs,
		rng:       opts.Rand,
		clipboard: copyFn,
		session:   session,
		view:      session.View(),
		theme:     GetTheme(opts.ThemeName),
		input:     ti,
	}
}

// Session returns the current search session.
func (m Model) Session() state.Session {
	return m.session
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		height := max(m.height-chromeHeight, 1)
		if !m.ready {
			m.results = viewport.New(m.width, height)
			m.ready = true
		} else {
			m.results.Width = m.width
			m.results.Height = height
		}
		m.input.Width = max(m.width-len("searchly")-8, 10)
		m.refreshResults()
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return m, nil
	}

	if m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.input.Focused() {
		return m.handleInputKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		return m, m.cycleTheme()

	case key.Matches(msg, m.keys.Focus):
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Clear):
		m.input.SetValue("")
		m.dispatch(state.Clear())
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		m.dispatch(state.NextPage())
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		m.dispatch(state.PrevPage())
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.ToggleInfo):
		if item, ok := m.selected(); ok {
			m.dispatch(state.ToggleInfo(item.ID))
			m.ensureCursorVisible()
		}
		return m, nil

	case key.Matches(msg, m.keys.CopyURL):
		return m, m.copySelectedURL()

	case key.Matches(msg, m.keys.RandomPick):
		m.randomPick()
		return m, nil

	case key.Matches(msg, m.keys.HalfPageDown):
		m.results.HalfPageDown()
		return m, nil

	case key.Matches(msg, m.keys.HalfPageUp):
		m.results.HalfPageUp()
		return m, nil
	}
	return m, nil
}

// handleInputKey routes keys while the query box has focus.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		m.input.Blur()
		m.dispatch(state.Submit(m.input.Value()))
		logging.Info("query submitted", "query", m.session.Query, "hits", m.view.TotalHits)
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.input.SetValue("")
		m.input.Blur()
		m.dispatch(state.Clear())
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// dispatch runs one transition and redraws the results.
func (m *Model) dispatch(a state.Action) {
	before := m.session
	m.session = state.Reduce(m.session, a)

	if m.session.Page != before.Page || a.Kind == state.ActionSubmit || a.Kind == state.ActionClear {
		m.cursor = 0
	}
	m.view = m.session.View()
	if m.session.Focus != 0 {
		for i, item := range m.view.Items {
			if item.ID == m.session.Focus {
				m.cursor = i
				break
			}
		}
	}
	m.refreshResults()
	if m.session.ScrollTop {
		m.results.GotoTop()
	}
	logging.Debug("transition", "action", a.Kind, "query", m.session.Query, "page", m.session.Page, "hits", m.view.TotalHits)
}

func (m *Model) randomPick() {
	records := m.session.Records()
	if len(records) == 0 {
		return
	}
	idx := state.PickRandom(m.rng, len(records))
	m.dispatch(state.RandomPick(idx))
	m.input.SetValue(m.session.Query)
	logging.Info("random pick", "id", m.session.Focus, "tag", m.session.Query, "page", m.session.Page)
}

// selected returns the result under the cursor.
func (m Model) selected() (state.ResultView, bool) {
	if m.cursor < 0 || m.cursor >= len(m.view.Items) {
		return state.ResultView{}, false
	}
	return m.view.Items[m.cursor], true
}

func (m *Model) moveCursor(delta int) {
	if len(m.view.Items) == 0 {
		return
	}
	m.cursor = max(0, min(m.cursor+delta, len(m.view.Items)-1))
	m.refreshResults()
	m.ensureCursorVisible()
}

// ensureCursorVisible scrolls the viewport just enough to show the selected result.
func (m *Model) ensureCursorVisible() {
	if m.cursor < 0 || m.cursor >= len(m.itemSpans) || m.results.Height <= 0 {
		return
	}
	span := m.itemSpans[m.cursor]
	top := m.results.YOffset
	bottom := top + m.results.Height - 1
	switch {
	case span.start < top:
		m.results.SetYOffset(span.start)
	case span.end > bottom:
		m.results.SetYOffset(max(span.start, span.end-m.results.Height+1))
	}
}

func (m *Model) cycleTheme() tea.Cmd {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.refreshResults()
	if m.prefs == nil {
		return nil
	}
	if err := m.prefs.SetTheme(m.theme.Name); err != nil {
		logging.Warn("save prefs failed", "path", m.prefs.Path(), "error", err)
		return m.setStatus("Could not save theme: "+err.Error(), true)
	}
	return nil
}

func (m *Model) copySelectedURL() tea.Cmd {
	item, ok := m.selected()
	if !ok {
		return nil
	}
	if err := m.clipboard(item.URL); err != nil {
		logging.Warn("clipboard write failed", "id", item.ID, "error", err)
		return m.setStatus("Clipboard unavailable", true)
	}
	return m.setStatus("Copied "+truncate(item.URL, 60), false)
}

// setStatus shows a footer message and schedules its removal.
func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusErr = isErr
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// Messages

type clearStatusMsg struct {
	seq int
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
