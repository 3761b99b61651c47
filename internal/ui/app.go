package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/five82/folio/internal/logtail"
	"github.com/five82/folio/internal/pagination"
	"github.com/five82/folio/internal/prefs"
	"github.com/five82/folio/internal/state"
)

// Options configures the UI.
type Options struct {
	Context      context.Context
	Store        *state.Store
	Logger       zerolog.Logger
	PollTick     time.Duration
	ThemeName    string
	PrefsPath    string
	Prefs        prefs.Prefs
	MaxButtons   int
	ItemsPerPage int
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	logger    zerolog.Logger
	prefsPath string
	prefs     prefs.Prefs
	pollTick  time.Duration
	keys      keyMap
	printer   *message.Printer

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool

	// Data state
	snapshot state.Snapshot
	version  uint64
	entries  []logtail.Entry // after the level filter
	minLevel logtail.Level

	// Paging
	pager  *pagination.Controller
	source *pageSource
	cursor int // row within the current page
	offset int // first visible row within the current page

	// Detail pane
	showDetail bool
	detail     viewport.Model

	// Jump prompt
	jumping bool
	jump    textinput.Model

	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = DefaultUIInterval
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = defaultThemeName
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	var ctlOpts []pagination.Option
	if opts.MaxButtons > 0 {
		ctlOpts = append(ctlOpts, pagination.WithMaxButtons(opts.MaxButtons))
	}
	if opts.ItemsPerPage > 0 {
		ctlOpts = append(ctlOpts, pagination.WithItemsPerPage(opts.ItemsPerPage))
	}
	pager := pagination.NewController(ctlOpts...)

	jump := textinput.New()
	jump.Prompt = "Go to page: "
	jump.Placeholder = "number"
	jump.CharLimit = 9

	return Model{
		ctx:       ctx,
		store:     opts.Store,
		logger:    opts.Logger,
		prefsPath: prefsPath,
		prefs:     opts.Prefs,
		pollTick:  pollTick,
		keys:      DefaultKeyMap(),
		printer:   message.NewPrinter(language.English),
		theme:     GetTheme(themeName),
		pager:     pager,
		source:    newPageSource(pager, opts.Logger),
		jump:      jump,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.ensureVisible()
		if m.showDetail {
			m.detail.Width = m.width
			m.detail.Height = m.contentHeight()
		}
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = msg.snapshot
		if msg.version != m.version {
			m.version = msg.version
			m.reindex(false)
		}
		return m, nil
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
	if m.jumping {
		return m.handleJumpKey(msg)
	}
	if m.showDetail {
		return m.handleDetailKey(msg)
	}

	st := m.pager.State()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Detail):
		m.openDetail()
	case key.Matches(msg, m.keys.NextPage):
		m.pager.Next()
	case key.Matches(msg, m.keys.PrevPage):
		m.pager.Prev()
	case key.Matches(msg, m.keys.FirstPage):
		m.pager.First()
	case key.Matches(msg, m.keys.LastPage):
		m.pager.Last()
	case key.Matches(msg, m.keys.Jump):
		m.jumping = true
		m.jump.Reset()
		return m, m.jump.Focus()
	case key.Matches(msg, m.keys.MorePerPage):
		m.pager.SetItemsPerPage(pagination.NextItemsPerPage(st.ItemsPerPage))
	case key.Matches(msg, m.keys.FewerPerPage):
		m.pager.SetItemsPerPage(pagination.PrevItemsPerPage(st.ItemsPerPage))
	case key.Matches(msg, m.keys.MoreButtons):
		m.pager.SetMaxButtons(st.MaxButtons + 1)
	case key.Matches(msg, m.keys.FewerButtons):
		m.pager.SetMaxButtons(st.MaxButtons - 1)
	case key.Matches(msg, m.keys.CycleLevel):
		m.minLevel = nextLevel(m.minLevel)
		m.reindex(true)
	}

	m.applyPageEvents()
	return m, nil
}

func (m Model) handleJumpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.pager.JumpTo(m.jump.Value())
		m.closeJump()
		m.applyPageEvents()
		return m, nil
	case key.Matches(msg, m.keys.Escape):
		m.closeJump()
		return m, nil
	}

	var cmd tea.Cmd
	m.jump, cmd = m.jump.Update(msg)
	return m, cmd
}

func (m *Model) closeJump() {
	m.jumping = false
	m.jump.Blur()
	m.jump.Reset()
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Detail):
		m.showDetail = false
		return m, nil
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

// handleMouse maps clicks on the navigation bar to page moves and the wheel
// to row moves.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp || m.jumping {
		return m, nil
	}
	if m.showDetail {
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.moveCursor(-1)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.moveCursor(1)
		return m, nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y != m.navRow() {
		return m, nil
	}
	slot, ok := m.source.bar.SlotAt(msg.X)
	if !ok || !slot.enabled || slot.target < 1 {
		return m, nil
	}
	m.pager.GoTo(slot.target)
	m.applyPageEvents()
	return m, nil
}

// handleTick processes the polling tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.ctx.Err() != nil {
		return m, tea.Quit
	}

	var cmds []tea.Cmd
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	cmds = append(cmds, tickCmd(m.pollTick))
	return m, tea.Batch(cmds...)
}

// reindex reapplies the level filter to the snapshot and hands the new count
// to the page source. A filter change starts over on the first page; a reload
// keeps the current page when it still exists.
func (m *Model) reindex(filterChanged bool) {
	m.entries = m.snapshot.Filter(m.minLevel)
	if filterChanged {
		m.source.Reset(len(m.entries))
	} else {
		m.source.SetCount(len(m.entries))
	}
	m.applyPageEvents()
	m.clampCursor()
}

// applyPageEvents reacts to controller notifications raised since the last
// call.
func (m *Model) applyPageEvents() {
	moved, resized := m.source.takeEvents()
	if moved || resized {
		m.cursor = 0
		m.offset = 0
	}
	if resized {
		m.savePrefs()
	}
}

func (m *Model) savePrefs() {
	m.prefs.Theme = m.theme.Name
	m.prefs.ItemsPerPage = m.pager.State().ItemsPerPage
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.logger.Warn().Err(err).Str("path", m.prefsPath).Msg("save prefs failed")
	}
}

// pageEntries returns the entries on the current page.
func (m Model) pageEntries() []logtail.Entry {
	start, end := m.source.Bounds()
	if end > len(m.entries) {
		end = len(m.entries)
	}
	if start > end {
		return nil
	}
	return m.entries[start:end]
}

func (m *Model) moveCursor(delta int) {
	n := len(m.pageEntries())
	if n == 0 {
		m.cursor, m.offset = 0, 0
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), n-1)
	m.ensureVisible()
}

func (m *Model) clampCursor() {
	n := len(m.pageEntries())
	m.cursor = min(m.cursor, max(n-1, 0))
	m.ensureVisible()
}

// ensureVisible scrolls the table so the cursor row is on screen.
func (m *Model) ensureVisible() {
	rows := m.tableRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	m.offset = max(m.offset, 0)
}

func (m Model) selectedEntry() (logtail.Entry, bool) {
	page := m.pageEntries()
	if m.cursor < 0 || m.cursor >= len(page) {
		return logtail.Entry{}, false
	}
	return page[m.cursor], true
}

func (m *Model) openDetail() {
	entry, ok := m.selectedEntry()
	if !ok {
		return
	}
	m.detail = viewport.New(m.width, m.contentHeight())
	m.detail.Style = m.theme.Styles().SurfaceAlt
	m.detail.SetContent(m.renderDetail(entry))
	m.showDetail = true
}

// levelCycle is the order the level filter steps through; LevelUnknown
// shows everything.
var levelCycle = []logtail.Level{
	logtail.LevelUnknown,
	logtail.LevelDebug,
	logtail.LevelInfo,
	logtail.LevelWarn,
	logtail.LevelError,
}

func nextLevel(current logtail.Level) logtail.Level {
	for i, lvl := range levelCycle {
		if lvl == current {
			return levelCycle[(i+1)%len(levelCycle)]
		}
	}
	return levelCycle[0]
}

func levelLabel(lvl logtail.Level) string {
	if lvl == logtail.LevelUnknown {
		return "ALL"
	}
	return lvl.String() + "+"
}

// Messages

type tickMsg time.Time

type snapshotMsg struct {
	snapshot state.Snapshot
	version  uint64
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		version := store.Version()
		return snapshotMsg{snapshot: store.Snapshot(), version: version}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(m.ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
