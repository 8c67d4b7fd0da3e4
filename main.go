package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	_ "github.com/joho/godotenv/autoload"
)

const (
	defaultUsername     = "P_lakshmi_tarun"
	defaultPollInterval = 10 * time.Minute

	// Problem totals shown next to the solve counts. Upstream display
	// literals, not fetched.
	totalProblems = 3817
	totalEasy     = 922
	totalMedium   = 1993
	totalHard     = 902
)

// Model represents the application state following Elm architecture.
// All mutation happens in Update on bubbletea's single goroutine; the cache
// is never touched from anywhere else.
type Model struct {
	username string
	client   *LeetCodeClient
	cache    *StatsCache

	// fetching guards the fetch path: at most one request is in flight,
	// and both the poll timer and the manual refresh key go through it.
	fetching bool
	// sessionData is true once this mount has data worth painting: either
	// a snapshot restored from disk or a completed fetch. Until then a
	// fetch in flight shows the loading screen instead of stale literals.
	sessionData bool
	fetchErr    *FetchError

	pollInterval time.Duration

	// ctx gates in-flight requests; cancel fires at teardown so no request
	// outlives the program.
	ctx    context.Context
	cancel context.CancelFunc

	spinner  spinner.Model
	progress progress.Model
	width    int
	height   int
	ready    bool
}

// Messages for async fetching and scheduling
type statsMsg struct {
	stats ProfileStats
	at    time.Time
}
type fetchFailedMsg struct {
	err *FetchError
}
type pollTickMsg time.Time

// Init kicks off the immediate fetch and arms the recurring poll
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		fetchStats(m.ctx, m.client, m.username, m.cache.Get()),
		pollTick(m.pollInterval),
	)
}

// fetchStats performs one fetch off the update loop and reports the outcome
// as a message. The prior snapshot rides along for field-by-field fallback.
func fetchStats(ctx context.Context, client *LeetCodeClient, username string, prior ProfileStats) tea.Cmd {
	return func() tea.Msg {
		stats, err := client.FetchProfileStats(ctx, username, prior)
		if err != nil {
			var fe *FetchError
			if errors.As(err, &fe) {
				return fetchFailedMsg{err: fe}
			}
			return fetchFailedMsg{err: &FetchError{Kind: Unreachable, err: err}}
		}
		return statsMsg{stats: stats, at: time.Now()}
	}
}

// pollTick schedules the next poll cycle
func pollTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return pollTickMsg(t)
	})
}

// startFetch begins a fetch unless one is already outstanding.
// A trigger while a fetch is in flight is a no-op; the in-progress fetch's
// result applies when it completes.
func (m *Model) startFetch() tea.Cmd {
	if m.fetching {
		return nil
	}
	m.fetching = true
	return fetchStats(m.ctx, m.client, m.username, m.cache.Get())
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.cancel()
			return m, tea.Quit
		case "r":
			return m, m.startFetch()
		case "d":
			ToggleVariant()
			InitStyles()
			return m, nil
		case "t":
			NextTheme()
			InitStyles()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case pollTickMsg:
		// Rearm the timer either way; skip the fetch if one is in flight.
		return m, tea.Batch(m.startFetch(), pollTick(m.pollInterval))

	case statsMsg:
		m.cache.Set(msg.stats, msg.at)
		m.fetching = false
		m.sessionData = true
		m.fetchErr = nil
		return m, nil

	case fetchFailedMsg:
		// The cache keeps its last good snapshot; only the notice changes.
		m.fetching = false
		m.sessionData = true
		m.fetchErr = msg.err
		return m, nil

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the widget
func (m Model) View() string {
	if !m.ready {
		return ""
	}

	if m.fetching && !m.sessionData {
		return m.renderLoading()
	}

	stats := m.cache.Get()
	weeks, monthOrder := BuildCalendarGrid(time.Now(), stats.SubmissionCalendar)

	var sections []string

	sections = append(sections, m.renderHeader())
	sections = append(sections, m.renderSolved(stats))
	sections = append(sections, m.renderCalendar(stats, weeks, monthOrder))

	if m.fetchErr != nil {
		sections = append(sections, m.renderErrorNotice())
	}

	sections = append(sections, m.renderStatusBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderLoading shows the first-paint loading state
func (m Model) renderLoading() string {
	msg := fmt.Sprintf("%s Loading LeetCode profile for %s...", m.spinner.View(), m.username)

	loadingBox := lipgloss.NewStyle().
		Width(60).
		Align(lipgloss.Center).
		Padding(2).
		Render(msg)

	return loadingStyle.Render(loadingBox)
}

// renderHeader renders the profile line and the last successful update time
func (m Model) renderHeader() string {
	title := titleStyle.Render(fmt.Sprintf("LeetCode — @%s", m.username))

	updated := "never"
	if t, ok := m.cache.LastUpdate(); ok {
		updated = formatTimeAgo(t)
	}
	stamp := labelStyle.Render("Last updated: ") + baseStyle.Render(updated)

	content := lipgloss.JoinVertical(lipgloss.Left, title, stamp)
	return lipgloss.NewStyle().Padding(0, 1, 1, 1).Render(content)
}

// renderSolved renders the solve totals: overall progress bar plus the three
// difficulty columns
func (m Model) renderSolved(stats ProfileStats) string {
	ratio := float64(stats.TotalSolved) / float64(totalProblems)
	if ratio > 1 {
		ratio = 1
	}

	solvedLine := fmt.Sprintf("%s %s",
		accentStyle.Render(fmt.Sprintf("%d", stats.TotalSolved)),
		labelStyle.Render(fmt.Sprintf("/ %d solved", totalProblems)),
	)
	bar := m.progress.ViewAs(ratio)

	diffCols := lipgloss.JoinHorizontal(lipgloss.Top,
		renderDifficulty("Easy", stats.EasySolved, totalEasy, CurrentTheme.Green),
		renderDifficulty("Medium", stats.MediumSolved, totalMedium, CurrentTheme.Yellow),
		renderDifficulty("Hard", stats.HardSolved, totalHard, CurrentTheme.Red),
	)

	content := lipgloss.JoinVertical(lipgloss.Left, solvedLine, bar, "", diffCols)
	return lipgloss.NewStyle().Padding(0, 1, 1, 1).Render(content)
}

// renderDifficulty renders one difficulty column
func renderDifficulty(name string, solved, total int, color string) string {
	value := lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true).
		Render(fmt.Sprintf("%d", solved))

	lines := []string{
		labelStyle.Render(name),
		value + subtleStyle.Render(fmt.Sprintf(" / %d", total)),
	}

	return lipgloss.NewStyle().
		PaddingRight(4).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderCalendar renders the heatmap with its activity summary line
func (m Model) renderCalendar(stats ProfileStats, weeks [][]CalendarDay, monthOrder []string) string {
	summary := strings.Join([]string{
		baseStyle.Render(fmt.Sprintf("%d submissions in the past one year", stats.TotalSubmissions)),
		labelStyle.Render(fmt.Sprintf("Total active days: %d", ActiveDays(stats.SubmissionCalendar))),
		labelStyle.Render(fmt.Sprintf("Max streak: %d", MaxStreak(stats.SubmissionCalendar))),
		labelStyle.Render(fmt.Sprintf("Current streak: %d", CurrentStreak(stats.SubmissionCalendar, time.Now()))),
	}, labelStyle.Render("  |  "))

	heatmap := NewHeatmap(weeks, monthOrder).RenderResponsive(m.width)

	content := lipgloss.JoinVertical(lipgloss.Left, summary, "", heatmap)
	return lipgloss.NewStyle().Padding(0, 1, 1, 1).Render(content)
}

// renderErrorNotice renders the inline failure notice over stale data.
// Rate limiting is expected and soft; everything else is styled as an error.
func (m Model) renderErrorNotice() string {
	style := errorStyle
	if m.fetchErr.Kind == RateLimited {
		style = warningStyle
	}

	notice := style.Render(fmt.Sprintf("%s, showing cached data.", m.fetchErr.Kind)) +
		labelStyle.Render("  Press r to retry.")
	return lipgloss.NewStyle().Padding(0, 1, 1, 1).Render(notice)
}

// renderStatusBar renders the bottom status bar with keybindings
func (m Model) renderStatusBar() string {
	help := "q: quit | r: refresh | d: dark/light | t: theme"

	if m.fetching {
		help += " | refreshing..."
	}
	if err := m.cache.PersistWarning(); err != nil {
		help += " | cache not saved"
	}
	help += fmt.Sprintf(" | %s", GetCurrentThemeName())

	return statusBarStyle.Width(m.width).Render(help)
}

// formatTimeAgo formats a timestamp as "X ago"
func formatTimeAgo(t time.Time) string {
	duration := time.Since(t)

	switch {
	case duration < time.Minute:
		return "just now"
	case duration < time.Hour:
		mins := int(duration.Minutes())
		return fmt.Sprintf("%dm ago", mins)
	case duration < 24*time.Hour:
		hours := int(duration.Hours())
		return fmt.Sprintf("%dh ago", hours)
	case duration < 7*24*time.Hour:
		days := int(duration.Hours() / 24)
		return fmt.Sprintf("%dd ago", days)
	default:
		return t.Format("Jan 2")
	}
}

func main() {
	InitTheme()
	InitStyles()

	username := os.Getenv("LEETTUI_USERNAME")
	if len(os.Args) > 1 {
		username = os.Args[1]
	}
	if username == "" {
		username = defaultUsername
	}

	pollInterval := defaultPollInterval
	if v := os.Getenv("LEETTUI_POLL_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			pollInterval = d
		}
	}

	// A broken config dir degrades to a memory-only cache; the widget still
	// runs, it just forgets between sessions.
	var store Store
	if fs, err := NewFileStore(); err == nil {
		store = fs
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = loadingStyle

	cache := NewStatsCache(store)
	_, restored := cache.LastUpdate()

	m := Model{
		username:     username,
		client:       NewLeetCodeClient(os.Getenv("LEETTUI_API_URL")),
		cache:        cache,
		fetching:     true,
		sessionData:  restored,
		pollInterval: pollInterval,
		ctx:          ctx,
		cancel:       cancel,
		spinner:      s,
		progress:     progress.New(progress.WithDefaultGradient()),
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
