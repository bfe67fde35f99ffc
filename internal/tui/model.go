// Package tui is the interactive day view: one day's trackings with live
// durations, a description prompt to start tracking, and day navigation.
package tui

import (
	"context"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vault-tracker/internal/api"
	"vault-tracker/internal/domain"
	"vault-tracker/internal/errors"
	"vault-tracker/internal/events"
	"vault-tracker/internal/validation"
)

const tickInterval = time.Second

// Model is the bubbletea model of the day view.
type Model struct {
	ctx         context.Context
	cancel      context.CancelFunc
	api         api.API
	changes     chan events.Event
	unsubscribe func()

	day       time.Time
	trackings []domain.Tracking
	input     []rune
	status    string
	err       string

	width  int
	height int
}

// New creates a day view showing today. Call Close when done to drop the
// bus subscription and release pending commands.
func New(ctx context.Context, a api.API) Model {
	ctx, cancel := context.WithCancel(ctx)
	changes := make(chan events.Event, 16)
	unsubscribe := a.Subscribe(func(ev events.Event) {
		select {
		case changes <- ev:
		default:
		}
	})
	return Model{
		ctx:         ctx,
		cancel:      cancel,
		api:         a,
		changes:     changes,
		unsubscribe: unsubscribe,
		day:         a.Today(),
	}
}

// Run shows the day view until the user quits or ctx is done.
func Run(ctx context.Context, a api.API, in io.Reader, out io.Writer) error {
	m := New(ctx, a)
	defer m.Close()

	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// Close drops the bus subscription and ends the change listener.
func (m Model) Close() {
	m.unsubscribe()
	m.cancel()
}

// Init loads the day and starts the clock and the change listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadCmd(m.ctx, m.api, m.day),
		tickCmd(),
		listenCmd(m.ctx, m.changes),
	)
}

func loadCmd(ctx context.Context, a api.API, day time.Time) tea.Cmd {
	return func() tea.Msg {
		return TrackingsMsg{Day: day, Trackings: a.DayTrackings(ctx, day)}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// listenCmd waits for the next bus event.
func listenCmd(ctx context.Context, changes <-chan events.Event) tea.Cmd {
	return func() tea.Msg {
		select {
		case ev := <-changes:
			return ChangedMsg{Event: ev}
		case <-ctx.Done():
			return nil
		}
	}
}

func startCmd(ctx context.Context, a api.API, description string) tea.Cmd {
	return func() tea.Msg {
		started, err := a.StartTracking(ctx, description)
		if err != nil {
			return ActionDoneMsg{Err: err}
		}
		return ActionDoneMsg{Status: "Started: " + started.Description}
	}
}

func stopCmd(ctx context.Context, a api.API) tea.Cmd {
	return func() tea.Msg {
		stopped, err := a.StopTracking(ctx)
		if err != nil {
			return ActionDoneMsg{Err: err}
		}
		if stopped == nil {
			return ActionDoneMsg{Status: "No tracking is running"}
		}
		return ActionDoneMsg{Status: "Stopped: " + stopped.Description}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		return m, tickCmd()

	case TrackingsMsg:
		// A reply for a day no longer shown is dropped.
		if msg.Day.Equal(m.day) {
			m.trackings = msg.Trackings
		}
		return m, nil

	case ChangedMsg:
		return m, tea.Batch(loadCmd(m.ctx, m.api, m.day), listenCmd(m.ctx, m.changes))

	case ActionDoneMsg:
		if msg.Err != nil {
			m.err = userMessage(msg.Err)
			m.status = ""
		} else {
			m.err = ""
			m.status = msg.Status
		}
		return m, loadCmd(m.ctx, m.api, m.day)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyQuit, KeyEscape:
		return m, tea.Quit

	case KeyPrevDay:
		return m.shiftDay(-1)

	case KeyNextDay:
		return m.shiftDay(1)

	case KeyToday:
		m.day = m.api.Today()
		m.trackings = nil
		return m, loadCmd(m.ctx, m.api, m.day)

	case KeyStart:
		description := strings.TrimSpace(string(m.input))
		if description == "" {
			m.err = "Type a description first"
			return m, nil
		}
		m.input = nil
		m.err = ""
		if !m.api.IsToday(m.day) {
			m.day = m.api.Today()
			m.trackings = nil
		}
		return m, startCmd(m.ctx, m.api, description)

	case KeyStop:
		return m, stopCmd(m.ctx, m.api)

	case KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyRunes:
		m.input = append(m.input, msg.Runes...)
	case tea.KeySpace:
		m.input = append(m.input, ' ')
	}
	return m, nil
}

func (m Model) shiftDay(delta int) (tea.Model, tea.Cmd) {
	day, ok := m.api.ShiftDay(m.day, delta)
	if !ok {
		m.status = "Already showing today"
		return m, nil
	}
	m.status = ""
	m.day = day
	m.trackings = nil
	return m, loadCmd(m.ctx, m.api, m.day)
}

func (m Model) View() string {
	var b strings.Builder

	title := "Trackings on " + domain.FormatDate(m.day, time.UTC)
	if m.api.IsToday(m.day) {
		title += " (today)"
	}
	b.WriteString(TitleStyle.Render(title))
	b.WriteString("\n\n")

	if len(m.trackings) == 0 {
		b.WriteString(MutedStyle.Render("No trackings"))
		b.WriteByte('\n')
	} else {
		b.WriteString(m.renderRows())
	}

	b.WriteByte('\n')
	b.WriteString(PromptStyle.Render("> "))
	b.WriteString(string(m.input))
	b.WriteString("_\n")

	switch {
	case m.err != "":
		b.WriteString(ErrorStyle.Render(m.err))
	case m.status != "":
		b.WriteString(MutedStyle.Render(m.status))
	}
	b.WriteByte('\n')

	b.WriteString(MutedStyle.Render("left/right: day  ctrl+t: today  enter: start  ctrl+s: stop  esc: quit"))
	b.WriteByte('\n')
	return b.String()
}

// renderRows lays out "HH:MM  description  duration" with descriptions
// padded to a common width, then the day's total.
func (m Model) renderRows() string {
	loc := m.api.Location()
	now := m.api.Now()

	descWidth := 0
	for _, tracking := range m.trackings {
		descWidth = max(descWidth, lipgloss.Width(tracking.Description))
	}

	var b strings.Builder
	var total time.Duration
	for _, tracking := range m.trackings {
		line := domain.FormatClock(tracking.StartTime, loc) + "  " +
			padRight(tracking.Description, descWidth) + "  " +
			m.api.FormatDuration(tracking)
		if tracking.IsOpen() {
			line = RunningStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
		total += tracking.Duration(now)
	}
	b.WriteString("Total: " + domain.FormatDuration(total))
	b.WriteByte('\n')
	return b.String()
}

func padRight(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

func userMessage(err error) string {
	if validationErr, ok := validation.AsValidationError(err); ok {
		return validationErr.GetUserFriendlyMessage()
	}
	return errors.GetUserMessage(err)
}
