// Package ui renders the movie catalog in the terminal with Bubble Tea
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alvarorichard/cineflux/internal/catalog"
	"github.com/alvarorichard/cineflux/internal/models"
)

// focusArea is where typed keys go when no overlay is open
type focusArea int

const (
	focusSearch focusArea = iota
	focusList
)

// linesPerCard is the height of one rendered card including its spacing
const linesPerCard = 4

// Model is the Bubble Tea model of the catalog screen
type Model struct {
	ctx     context.Context
	ctrl    *catalog.Controller
	notices *NoticeQueue
	changes changeSignal

	input   textinput.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap

	focus  focusArea
	cursor int
	notice *catalog.Notice
	status string
	width  int
	height int

	copyToClipboard func(string) error
}

// New creates the catalog screen. notices must be the notifier the
// controller was built with.
func New(ctx context.Context, ctrl *catalog.Controller, notices *NoticeQueue) *Model {
	ti := textinput.New()
	ti.Placeholder = "Search movies..."
	ti.Prompt = "🔍 "
	ti.CharLimit = 100
	ti.Width = 40
	ti.SetValue(ctrl.Snapshot().SearchTerm)
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(primaryColor)

	changes := newChangeSignal()
	ctrl.Subscribe(changes.notify)

	return &Model{
		ctx:             ctx,
		ctrl:            ctrl,
		notices:         notices,
		changes:         changes,
		input:           ti,
		spinner:         sp,
		help:            help.New(),
		keys:            defaultKeyMap(),
		focus:           focusSearch,
		width:           80,
		height:          24,
		copyToClipboard: clipboard.WriteAll,
	}
}

// Init loads the first list and starts listening for catalog events
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		m.startCmd(),
		m.notices.wait(),
		m.changes.wait(),
	)
}

// Update handles messages and user input
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case noticeMsg:
		n := catalog.Notice(msg)
		m.notice = &n
		return m, m.notices.wait()

	case stateChangedMsg:
		m.clampCursor()
		return m, m.changes.wait()

	case listLoadedMsg, trailerDoneMsg:
		m.clampCursor()
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = "Could not copy link: " + msg.err.Error()
		} else {
			m.status = "Trailer link copied to clipboard"
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.quit) {
		return m, tea.Quit
	}

	// a notice blocks everything until acknowledged
	if m.notice != nil {
		if key.Matches(msg, m.keys.dismiss) {
			m.notice = nil
		}
		return m, nil
	}

	state := m.ctrl.Snapshot()
	m.status = ""

	switch {
	case state.Trailer != nil:
		return m.handleTrailerKey(msg, state)
	case state.Details != nil:
		return m.handleDetailsKey(msg, state)
	default:
		return m.handleListKey(msg, state)
	}
}

func (m *Model) handleTrailerKey(msg tea.KeyMsg, state catalog.State) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.close):
		m.ctrl.CloseTrailer()
	case key.Matches(msg, m.keys.copyLink):
		return m, m.copyCmd(state.Trailer.GetWatchURL())
	}
	return m, nil
}

func (m *Model) handleDetailsKey(msg tea.KeyMsg, state catalog.State) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.close):
		m.ctrl.CloseDetails()
	case key.Matches(msg, m.keys.trailer):
		if !state.Loading {
			return m, m.watchFromDetailsCmd()
		}
	}
	return m, nil
}

func (m *Model) handleListKey(msg tea.KeyMsg, state catalog.State) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.down):
		if m.cursor < len(state.Movies)-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(msg, m.keys.focus):
		return m, m.toggleFocus()
	case msg.Type == tea.KeyEnter:
		return m, m.trailerForSelection(state)
	}

	if m.focus == focusList {
		switch {
		case key.Matches(msg, m.keys.trailer):
			return m, m.trailerForSelection(state)
		case key.Matches(msg, m.keys.details):
			if movie, ok := m.selected(state); ok {
				m.ctrl.OpenDetails(movie)
			}
			return m, nil
		case key.Matches(msg, m.keys.search):
			return m, m.toggleFocus()
		}
		return m, nil
	}

	if msg.Type == tea.KeyEsc {
		if m.input.Value() == "" {
			return m, nil
		}
		m.input.SetValue("")
		return m, m.searchCmd("")
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.cursor = 0
		return m, tea.Batch(cmd, m.searchCmd(after))
	}
	return m, cmd
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == focusSearch {
		m.focus = focusList
		m.input.Blur()
		return nil
	}
	m.focus = focusSearch
	return m.input.Focus()
}

func (m *Model) trailerForSelection(state catalog.State) tea.Cmd {
	if state.Loading {
		return nil
	}
	movie, ok := m.selected(state)
	if !ok {
		return nil
	}
	return m.trailerCmd(movie.ID)
}

func (m *Model) selected(state catalog.State) (models.Movie, bool) {
	if m.cursor < 0 || m.cursor >= len(state.Movies) {
		return models.Movie{}, false
	}
	return state.Movies[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.ctrl.Snapshot().Movies)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) startCmd() tea.Cmd {
	return func() tea.Msg {
		return listLoadedMsg{err: m.ctrl.Start(m.ctx)}
	}
}

func (m *Model) searchCmd(term string) tea.Cmd {
	return func() tea.Msg {
		return listLoadedMsg{err: m.ctrl.SetSearchTerm(m.ctx, term)}
	}
}

func (m *Model) trailerCmd(movieID int) tea.Cmd {
	return func() tea.Msg {
		return trailerDoneMsg{err: m.ctrl.FetchTrailer(m.ctx, movieID)}
	}
}

func (m *Model) watchFromDetailsCmd() tea.Cmd {
	return func() tea.Msg {
		return trailerDoneMsg{err: m.ctrl.WatchTrailerFromDetails(m.ctx)}
	}
}

func (m *Model) copyCmd(link string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: m.copyToClipboard(link)}
	}
}

// View renders the catalog screen
func (m *Model) View() string {
	state := m.ctrl.Snapshot()

	switch {
	case m.notice != nil:
		return m.place(m.noticeView(*m.notice))
	case state.Trailer != nil:
		return m.place(m.trailerView(*state.Trailer))
	case state.Details != nil:
		return m.place(m.detailsView(*state.Details, state.Loading))
	}

	var b strings.Builder
	b.WriteString(headerTitleStyle.Render("Cine") + headerAccentStyle.Render("Flux"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Discover the best movies and their trailers"))
	b.WriteString("\n")

	box := searchStyle
	if m.focus == focusSearch {
		box = searchFocusedStyle
	}
	b.WriteString(box.Render(m.input.View()))
	b.WriteString("\n\n")

	b.WriteString(m.listView(state.Movies))

	if state.Loading {
		b.WriteString("\n")
		b.WriteString(m.spinner.View() + " " + loadingStyle.Render("Loading trailer..."))
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.listHelp()))
	return b.String()
}

func (m *Model) listView(movies []models.Movie) string {
	if len(movies) == 0 {
		return emptyStyle.Render("No movies to show")
	}

	visible := (m.height - 10) / linesPerCard
	if visible < 1 {
		visible = 1
	}
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := start + visible
	if end > len(movies) {
		end = len(movies)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(m.cardView(movies[i], i == m.cursor))
		b.WriteString("\n")
	}
	if end < len(movies) {
		b.WriteString(metaStyle.Render(fmt.Sprintf("  … %d more", len(movies)-end)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) cardView(movie models.Movie, selected bool) string {
	meta := "⭐ " + movie.GetRating()
	if year := movie.GetReleaseYear(); year != "" {
		meta += "  📅 " + year
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render(movie.Title),
		metaStyle.Render(meta),
		overviewStyle.Render(truncate(movie.GetShortOverview(), m.width-6)),
	)

	if selected {
		return selectedCardStyle.Render(body)
	}
	return cardStyle.Render(body)
}

func (m *Model) trailerView(video models.Video) string {
	lines := []string{
		overlayTitleStyle.Render("▶ " + video.Name),
		"Embed: " + linkStyle.Render(video.GetEmbedURL()),
		"Watch: " + linkStyle.Render(video.GetWatchURL()),
	}
	if m.status != "" {
		lines = append(lines, "", statusStyle.Render(m.status))
	}
	lines = append(lines, "", m.help.View(helpKeys{m.keys.copyLink, m.keys.close, m.keys.quit}))
	return overlayStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Model) detailsView(movie models.Movie, loading bool) string {
	width := m.width - 10
	if width < 30 {
		width = 30
	}

	lines := []string{
		overlayTitleStyle.Render(movie.Title),
		metaStyle.Render(fmt.Sprintf("⭐ %s  📅 %s  🔥 %.0f", movie.GetRating(), movie.ReleaseDate, movie.Popularity)),
		"",
		lipgloss.NewStyle().Width(width).Render(movie.Overview),
	}
	if poster := movie.GetPosterURL(); poster != "" {
		lines = append(lines, "", "Poster: "+linkStyle.Render(poster))
	}
	lines = append(lines, "TMDB:   "+linkStyle.Render(movie.GetTMDBURL()))
	if loading {
		lines = append(lines, "", m.spinner.View()+" "+loadingStyle.Render("Loading trailer..."))
	}
	lines = append(lines, "", m.help.View(helpKeys{m.keys.trailer, m.keys.close, m.keys.quit}))
	return overlayStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Model) noticeView(n catalog.Notice) string {
	return lipgloss.JoinVertical(lipgloss.Center,
		noticeStyle.Render("⚠ "+n.Message()),
		"",
		m.help.View(helpKeys{m.keys.dismiss}),
	)
}

func (m *Model) listHelp() helpKeys {
	if m.focus == focusList {
		return helpKeys{m.keys.up, m.keys.down, m.keys.trailer, m.keys.details, m.keys.search, m.keys.quit}
	}
	return helpKeys{m.keys.up, m.keys.down, m.keys.trailer, m.keys.focus, m.keys.quit}
}

func (m *Model) place(content string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// truncate shortens s to at most width runes
func truncate(s string, width int) string {
	if width <= 3 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}
