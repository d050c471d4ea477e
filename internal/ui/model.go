package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"chanpick/internal/config"
	"chanpick/internal/domain"
	"chanpick/internal/eventbus"
	"chanpick/internal/roster"
	"chanpick/internal/ui/logic"
	"chanpick/internal/ui/state"
	"chanpick/internal/ui/views"
)

// Model represents the picker UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState
	source roster.Service

	width  int
	height int
	help   help.Model
	keys   keyMap
	input  textinput.Model
	spin   spinner.Model

	// derived view data, recomputed whenever teams or query change
	filter  logic.FilterResult
	entries []logic.Entry

	navigator *logic.Navigator
	renderer  *views.Renderer

	// search debounce: only the tick carrying the current version applies
	searchVersion int

	loadStarted   bool
	pendingSelect []string
}

// NewModel creates a new picker model
func NewModel(bus eventbus.EventBus, cfg *config.Config, source roster.Service) *Model {
	ti := textinput.New()
	ti.Placeholder = "type to filter channels"
	ti.Prompt = ""
	ti.CharLimit = 64
	ti.Width = 30
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Styles.CursorColor))

	return &Model{
		bus:       bus,
		config:    cfg,
		state:     state.NewAppState(),
		source:    source,
		help:      help.New(),
		keys:      defaultKeyMap(),
		input:     ti,
		spin:      sp,
		navigator: logic.NewNavigator(),
		renderer:  views.NewRenderer(cfg.Styles),
	}
}

// SetPendingSelection records channel ids to commit programmatically once
// the roster has loaded.
func (m *Model) SetPendingSelection(ids []string) {
	m.pendingSelect = ids
}

// Selection returns the committed pair
func (m *Model) Selection() domain.Selection {
	return m.state.Selection
}

// Init starts the picker focused with the dropdown open and the roster
// loading.
func (m *Model) Init() tea.Cmd {
	m.state.Focused = true
	m.state.DropdownOpen = true
	return tea.Batch(textinput.Blink, m.spin.Tick, m.startLoad())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()
		return m, nil

	case spinner.TickMsg:
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case teamsLoadedMsg:
		return m.handleTeamsLoaded(msg)

	case rosterChangedMsg:
		// The roster file changed on disk: replace teams wholesale
		return m, m.startLoad()

	case debounceMsg:
		if msg.version != m.searchVersion {
			return m, nil
		}
		m.applyQuery(m.input.Value())
		return m, nil

	case selectByIDMsg:
		m.SelectChannelsByID(msg.ids)
		return m, nil

	case tea.FocusMsg:
		m.state.Focused = true
		m.state.DropdownOpen = true
		if !m.loadStarted {
			return m, m.startLoad()
		}
		return m, nil

	case tea.BlurMsg:
		m.blur()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	return m.renderer.Render(m.viewState())
}

func (m *Model) viewState() views.ViewState {
	return views.ViewState{
		Width:          m.width,
		Height:         m.height,
		TextInput:      m.input.View(),
		Spinner:        m.spin.View(),
		HelpView:       m.help.View(m.keys),
		Entries:        m.entries,
		Cursor:         m.navigator.Cursor(),
		ViewportOffset: m.navigator.ViewportOffset(),
		ViewportHeight: m.state.ViewportHeight,
		DropdownOpen:   m.state.DropdownOpen,
		Loading:        m.state.Loading,
		Loaded:         m.state.Loaded,
		LoadErr:        m.state.LoadErr,
		NoResults:      m.state.NoResults,
		Authenticated:  m.source.Authenticated(),
		Selection:      m.state.Selection,
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Close):
		if m.state.DropdownOpen || m.input.Value() != "" {
			m.closeDropdown()
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Reload):
		return m, m.startLoad()

	case key.Matches(msg, m.keys.Down):
		if m.navReady() {
			m.navigator.Next(m.entries)
			m.navigator.EnsureVisible(len(m.entries), m.state.ViewportHeight)
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.navReady() {
			m.navigator.Prev(m.entries)
			m.navigator.EnsureVisible(len(m.entries), m.state.ViewportHeight)
		}
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.confirm()
		return m, nil
	}

	// Backspace on an empty query clears a committed selection
	if msg.Type == tea.KeyBackspace && m.input.Value() == "" && !m.state.Selection.IsEmpty() {
		m.clearSelection()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.state.DropdownOpen = true
		m.searchVersion++
		return m, tea.Batch(cmd, m.debounceCmd())
	}
	return m, cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	vs := m.viewState()

	if msg.Action == tea.MouseActionMotion {
		inside := m.renderer.InComponent(vs, msg.X, msg.Y)
		m.state.Hovered = inside
		// A first hover over the picker triggers the initial load
		if inside && !m.loadStarted {
			m.state.DropdownOpen = true
			return m, m.startLoad()
		}
		return m, nil
	}

	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.navigator.Scroll(-1, len(m.entries), m.state.ViewportHeight)
		return m, nil

	case tea.MouseButtonWheelDown:
		m.navigator.Scroll(1, len(m.entries), m.state.ViewportHeight)
		return m, nil

	case tea.MouseButtonLeft:
		if !m.renderer.InComponent(vs, msg.X, msg.Y) {
			// Click outside the rendered subtree closes and resets
			m.closeDropdown()
			return m, nil
		}
		if !m.state.DropdownOpen {
			m.state.DropdownOpen = true
			if !m.loadStarted {
				return m, m.startLoad()
			}
			return m, nil
		}
		index := m.renderer.EntryIndexAt(vs, msg.X, msg.Y)
		if index == logic.NoCursor {
			return m, nil
		}
		m.navigator.SetCursor(index, m.entries)
		m.confirm()
		return m, nil
	}

	return m, nil
}

func (m *Model) handleTeamsLoaded(msg teamsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.state.Loading = false
		m.state.LoadErr = msg.err
		m.recompute()
		return m, nil
	}
	if !msg.authed {
		// No session: stay silent, keep whatever roster we had
		m.state.Loading = false
		m.recompute()
		return m, nil
	}

	m.state.SetTeams(msg.teams)
	// Re-evaluate the in-flight query and cursor against the new roster
	m.recompute()
	m.navigator.EnsureVisible(len(m.entries), m.state.ViewportHeight)

	if len(m.pendingSelect) > 0 {
		ids := m.pendingSelect
		m.pendingSelect = nil
		m.SelectChannelsByID(ids)
	}
	return m, nil
}

// confirm acts on the highlighted entry: a header toggles its team's
// expansion, a channel row commits the selection. With nothing
// highlighted it is a no-op.
func (m *Model) confirm() {
	entry, ok := m.navigator.Current(m.entries)
	if !ok {
		return
	}
	switch entry.Kind {
	case logic.EntryTeamHeader:
		m.state.ToggleTeam(entry.Team.ID)
		m.recompute()
		m.navigator.EnsureVisible(len(m.entries), m.state.ViewportHeight)
	case logic.EntryChannelRow:
		m.commit(entry.Team, entry.Channel)
	}
}

// commit publishes the selection and resets the search state
func (m *Model) commit(team domain.Team, channel domain.Channel) {
	if !m.state.Commit(team, channel) {
		return
	}
	m.navigator.Reset()
	m.input.SetValue("")
	m.searchVersion++ // supersede any pending debounce tick
	m.recompute()
	m.bus.Publish(eventbus.SelectionChangedEvent{Team: team, Channel: channel})
}

// clearSelection empties the selection and notifies listeners
func (m *Model) clearSelection() {
	m.state.ClearSelection()
	m.navigator.Reset()
	m.input.SetValue("")
	m.searchVersion++
	m.recompute()
	m.bus.Publish(eventbus.SelectionChangedEvent{})
}

// SelectChannelsByID commits the first id in the sequence directly,
// bypassing keyboard navigation. Ids beyond the first are ignored, and an
// unresolvable first id is a no-op. Without a session it is a no-op.
func (m *Model) SelectChannelsByID(ids []string) {
	if !m.source.Authenticated() || len(ids) == 0 {
		return
	}
	team, channel, ok := m.state.FindChannel(ids[0])
	if !ok {
		return
	}
	m.commit(team, channel)
}

// closeDropdown closes the list and restores the unfiltered browse state
func (m *Model) closeDropdown() {
	m.state.DropdownOpen = false
	m.resetQuery()
}

// blur mirrors focus loss: close, reset the query, keep the selection
func (m *Model) blur() {
	m.state.Focused = false
	m.state.DropdownOpen = false
	m.resetQuery()
}

func (m *Model) resetQuery() {
	m.input.SetValue("")
	m.searchVersion++
	m.navigator.Reset()
	m.applyQuery("")
}

// applyQuery runs the filter engine for the given query and revalidates
// the cursor against the reshaped list.
func (m *Model) applyQuery(query string) {
	m.state.Query = query
	m.recompute()
	m.navigator.EnsureVisible(len(m.entries), m.state.ViewportHeight)
}

// recompute derives the filter result and visible list from current state.
// While a load is pending the visible list is empty and navigation is
// inert.
func (m *Model) recompute() {
	if m.state.Loading {
		m.filter = logic.FilterResult{}
		m.entries = nil
		m.state.NoResults = false
		m.navigator.Sync(nil)
		return
	}
	m.filter = logic.ApplyFilter(m.state.Teams, m.state.Query)
	m.entries = logic.Flatten(m.state.Teams, m.state.ManualExpanded, m.filter)
	m.state.NoResults = m.filter.NoResults
	m.navigator.Sync(m.entries)
}

func (m *Model) navReady() bool {
	return m.state.DropdownOpen && !m.state.Loading
}

// startLoad kicks off an asynchronous roster load
func (m *Model) startLoad() tea.Cmd {
	m.bus.Publish(eventbus.LoadRequestedEvent{})
	m.loadStarted = true
	m.state.Loading = true
	m.state.LoadErr = nil
	m.recompute()
	source := m.source
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		if !source.Authenticated() {
			return teamsLoadedMsg{}
		}
		teams, err := source.Load(context.Background())
		if err != nil {
			return teamsLoadedMsg{authed: true, err: err}
		}
		return teamsLoadedMsg{teams: teams, authed: true}
	})
}

// debounceCmd schedules the search re-evaluation after the quiescence
// window; each keystroke replaces the previous schedule via the version.
func (m *Model) debounceCmd() tea.Cmd {
	version := m.searchVersion
	delay := m.config.Debounce()
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return debounceMsg{version: version}
	})
}

func (m *Model) updateViewportHeight() {
	h := m.height - 7
	if h < 3 {
		h = 3
	}
	if h > 12 {
		h = 12
	}
	m.state.ViewportHeight = h
}

