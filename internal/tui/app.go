package tui

import (
	"context"
	"errors"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/kickoff/internal/domain"
	"github.com/mmcdole/kickoff/internal/search"
	"github.com/mmcdole/kickoff/internal/tui/components"
	"github.com/mmcdole/kickoff/internal/tui/styles"
)

// Focus is the area receiving key presses
type Focus int

const (
	FocusInput Focus = iota
	FocusResults
	FocusDetail
)

// alertKind identifies which alert is showing
type alertKind int

const (
	alertNone alertKind = iota
	alertTooShort
	alertLoadFailed
)

// User-facing messages
const (
	tooShortMessage   = "Please enter at least 2 characters."
	loadFailedMessage = "There was an error loading the results."
	idleMessage       = "Search results will be displayed here."
	loadingMessage    = "Loading results..."
	emptyMessage      = "No result found."
)

// Alert buttons for a failed search
const (
	buttonOK    = "OK"
	buttonRetry = "Try again"
)

// Vertical chrome: title, search bar (bordered input, picker, suggestions), gap, footer
const ChromeHeight = 8

// ImageResolver turns a relative image path into a displayable URL
type ImageResolver interface {
	ImageURL(path string) string
}

// Options configures a Model
type Options struct {
	Client   *search.Client
	States   <-chan domain.SearchState // Fed by a ChannelObserver subscribed to Client
	History  domain.HistoryStore       // nil disables suggestions
	Images   ImageResolver             // nil shows no image URL
	Category domain.Category           // Initially selected category
	Context  context.Context           // Parent of every search; defaults to Background
	Logger   *slog.Logger
}

// Model is the main Bubble Tea model for the application
type Model struct {
	Ready bool
	Focus Focus

	// Dependencies
	client  *search.Client
	states  <-chan domain.SearchState
	history domain.HistoryStore
	images  ImageResolver
	ctx     context.Context
	logger  *slog.Logger

	// UI Components
	SearchBar components.SearchBar
	Results   components.ResultsList
	Inspector components.Inspector
	Alert     components.AlertModal
	Spinner   spinner.Model

	// Data
	state  domain.SearchState    // Latest state seen from the client
	recent []domain.HistoryEntry // Recent queries, newest first
	alert  alertKind

	// Dimensions
	Width  int
	Height int

	StatusMsg string
}

// NewModel creates a new application model
func NewModel(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	return Model{
		Focus:     FocusInput,
		client:    opts.Client,
		states:    opts.States,
		history:   opts.History,
		images:    opts.Images,
		ctx:       ctx,
		logger:    logger,
		SearchBar: components.NewSearchBar(opts.Category),
		Results:   components.NewResultsList(),
		Inspector: components.NewInspector(),
		Alert:     components.NewAlertModal(),
		Spinner:   sp,
		state:     opts.Client.State(),
	}
}

// State returns the latest search state shown by the model
func (m Model) State() domain.SearchState {
	return m.state
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.Spinner.Tick,
		WaitForStateCmd(m.states),
		LoadHistoryCmd(m.history),
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case StateChangedMsg:
		m.applyState(msg.State)
		return m, WaitForStateCmd(m.states)

	case StatesClosedMsg:
		return m, nil

	case SearchDoneMsg:
		return m.handleSearchDone(msg)

	case HistoryLoadedMsg:
		m.recent = msg.Entries
		m.refreshSuggestions()
		return m, nil

	case ErrMsg:
		m.logger.Warn("tui command failed", "context", msg.Context, "error", msg.Err)
		m.StatusMsg = msg.Error()
		return m, nil
	}

	// Cursor blink and similar go to whichever input is focused
	var cmd tea.Cmd
	switch m.Focus {
	case FocusInput:
		m.SearchBar, cmd, _ = m.SearchBar.Update(msg)
	case FocusResults:
		m.Results, cmd, _ = m.Results.Update(msg)
	}
	return m, cmd
}

// applyState adopts s if it is newer than the current state. States
// arrive both through the observer channel and SearchDoneMsg, in either
// order; the sequence number decides.
func (m *Model) applyState(s domain.SearchState) bool {
	switch {
	case s.Seq > m.state.Seq:
	case s.Seq == m.state.Seq && m.state.IsLoading() && !s.IsLoading():
	default:
		return false
	}

	m.state = s
	if s.IsLoaded() {
		m.Results.SetResults(s.Results)
		return true
	}

	m.Results.SetResults(nil)
	if m.Focus != FocusInput {
		m.focusInput()
	}
	return true
}

func (m Model) handleSearchDone(msg SearchDoneMsg) (tea.Model, tea.Cmd) {
	switch {
	case errors.Is(msg.Err, domain.ErrQueryTooShort):
		m.showAlert(alertTooShort, "Search", tooShortMessage, buttonOK)
		return m, nil
	case errors.Is(msg.Err, domain.ErrSuperseded):
		return m, nil
	case msg.Err != nil:
		m.logger.Warn("search not started", "error", msg.Err)
		m.StatusMsg = msg.Err.Error()
		return m, nil
	}

	m.StatusMsg = ""
	m.applyState(msg.State)

	// Only alert for the search the screen is showing
	if m.state.Seq != msg.State.Seq {
		return m, nil
	}
	if m.state.IsFailed() {
		m.showAlert(alertLoadFailed, "Error", loadFailedMessage, buttonOK, buttonRetry)
		return m, nil
	}
	if m.state.IsLoaded() {
		return m, LoadHistoryCmd(m.history)
	}
	return m, nil
}

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, Keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.Alert.IsVisible() {
		return m.handleAlertKey(msg)
	}

	switch m.Focus {
	case FocusResults:
		return m.handleResultsKey(msg)
	case FocusDetail:
		return m.handleDetailKey(msg)
	default:
		return m.handleInputKey(msg)
	}
}

func (m Model) handleAlertKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var choice int
	m.Alert, _, choice = m.Alert.Update(msg)
	if choice < 0 {
		return m, nil
	}

	kind := m.alert
	m.alert = alertNone
	if kind == alertLoadFailed && choice == 1 {
		return m, RetryCmd(m.ctx, m.client)
	}
	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, Keys.Results) && m.Results.VisibleCount() > 0 {
		m.Focus = FocusResults
		m.SearchBar.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	var action components.SearchBarAction
	m.SearchBar, cmd, action = m.SearchBar.Update(msg)

	switch action {
	case components.SearchBarSubmit, components.SearchBarCategoryChanged:
		// A category change always re-runs the search, even on short input
		return m, m.searchCmd()

	case components.SearchBarCleared:
		m.client.Reset()
		m.applyState(m.client.State())
		m.refreshSuggestions()

	case components.SearchBarEdited:
		m.refreshSuggestions()
	}

	return m, cmd
}

func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.Results.IsFiltering() {
		switch {
		case key.Matches(msg, Keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, Keys.Search):
			return m, m.focusInput()
		}
	}

	var cmd tea.Cmd
	var action components.ResultsListAction
	m.Results, cmd, action = m.Results.Update(msg)

	switch action {
	case components.ResultsListOpen:
		m.openDetail()
	case components.ResultsListBack:
		cmd = m.focusInput()
	}

	return m, cmd
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, Keys.Back):
		m.Focus = FocusResults
	}
	return m, nil
}

func (m Model) searchCmd() tea.Cmd {
	return SearchCmd(m.ctx, m.client, m.SearchBar.Value(), m.SearchBar.Category())
}

func (m *Model) focusInput() tea.Cmd {
	m.Focus = FocusInput
	return m.SearchBar.Focus()
}

func (m *Model) openDetail() {
	result, ok := m.Results.Selected()
	if !ok {
		return
	}

	imageURL := ""
	if path, ok := result.PrimaryImagePath(); ok && m.images != nil {
		imageURL = m.images.ImageURL(path)
	}

	m.Inspector.SetResult(result, imageURL)
	m.Focus = FocusDetail
}

func (m *Model) showAlert(kind alertKind, title, message string, buttons ...string) {
	m.alert = kind
	m.Alert.Show(title, message, buttons...)
}

func (m *Model) refreshSuggestions() {
	m.SearchBar.SetSuggestions(search.Suggest(m.SearchBar.Value(), m.recent, 3))
}

// updateLayout recalculates component sizes
func (m *Model) updateLayout() {
	m.SearchBar.SetWidth(m.Width)
	bodyHeight := max(m.Height-ChromeHeight, 1)
	m.Results.SetSize(m.Width, bodyHeight)
	m.Inspector.SetSize(m.Width, bodyHeight)
}
