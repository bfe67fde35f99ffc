package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"vault-tracker/internal/api"
	"vault-tracker/internal/blob"
	"vault-tracker/internal/events"
	"vault-tracker/internal/logging"
	"vault-tracker/internal/repository/sqlite"
	"vault-tracker/internal/services"
	"vault-tracker/internal/validation"
)

var testZone = time.FixedZone("UTC+1", 3600)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestAPI(t *testing.T) (api.API, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 1, 5, 9, 30, 0, 0, time.UTC)}
	store, err := sqlite.Open(context.Background(), blob.NewMemStore(), "time-tracker.db",
		sqlite.WithLocation(testZone),
		sqlite.WithClock(clock.Now),
		sqlite.WithLogger(logging.Discard()),
	)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	a := api.New(store, services.NewServiceContainer(testZone, clock.Now),
		validation.NewTrackingValidator(), events.NewBus(), logging.Discard())
	return a, clock
}

func newTestModel(t *testing.T) (Model, api.API, *fakeClock) {
	t.Helper()
	a, clock := newTestAPI(t)
	m := New(context.Background(), a)
	t.Cleanup(m.Close)
	return m, a, clock
}

// load runs the load command for the model's day and applies its reply.
func load(t *testing.T, m Model) Model {
	t.Helper()
	updated, _ := m.Update(loadCmd(m.ctx, m.api, m.day)())
	return updated.(Model)
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		var msg tea.KeyMsg
		if r == ' ' {
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		}
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func press(m Model, keyType tea.KeyType) (Model, tea.Cmd) {
	updated, cmd := m.Update(tea.KeyMsg{Type: keyType})
	return updated.(Model), cmd
}

func TestNewModel(t *testing.T) {
	m, a, _ := newTestModel(t)

	if !m.day.Equal(a.Today()) {
		t.Errorf("day = %v, want today %v", m.day, a.Today())
	}
	if len(m.trackings) != 0 {
		t.Error("new model should have no trackings loaded")
	}
	if m.Init() == nil {
		t.Error("Init should return a command")
	}

	view := m.View()
	if !strings.Contains(view, "Trackings on 05/01/2024 (today)") {
		t.Errorf("view missing title:\n%s", view)
	}
	if !strings.Contains(view, "No trackings") {
		t.Errorf("view missing empty state:\n%s", view)
	}
}

func TestTypeAndStart(t *testing.T) {
	m, a, _ := newTestModel(t)

	m = typeText(m, "Write specs")
	m, _ = press(m, tea.KeyBackspace)
	if got := string(m.input); got != "Write spec" {
		t.Fatalf("input = %q, want %q", got, "Write spec")
	}
	if !strings.Contains(m.View(), "> Write spec_") {
		t.Errorf("view should echo the input:\n%s", m.View())
	}

	m, cmd := press(m, tea.KeyEnter)
	if cmd == nil {
		t.Fatal("enter should return a start command")
	}
	if len(m.input) != 0 {
		t.Error("input should be cleared after enter")
	}

	done, ok := cmd().(ActionDoneMsg)
	if !ok {
		t.Fatalf("start command returned %T", cmd())
	}
	if done.Err != nil || done.Status != "Started: Write spec" {
		t.Fatalf("unexpected result: %+v", done)
	}

	updated, reload := m.Update(done)
	m = updated.(Model)
	if reload == nil {
		t.Fatal("finished action should reload the day")
	}
	updated, _ = m.Update(reload())
	m = updated.(Model)

	if len(m.trackings) != 1 || m.trackings[0].Description != "Write spec" {
		t.Fatalf("trackings = %+v", m.trackings)
	}
	view := m.View()
	if !strings.Contains(view, "10:30  Write spec  0s") {
		t.Errorf("view missing row:\n%s", view)
	}

	current, err := a.CurrentTracking(context.Background())
	if err != nil || current == nil {
		t.Fatalf("expected running tracking, got %v, %v", current, err)
	}
}

func TestStartWithoutDescription(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = typeText(m, "   ")
	m, cmd := press(m, tea.KeyEnter)
	if cmd != nil {
		t.Error("enter with blank input should not start anything")
	}
	if m.err == "" {
		t.Error("expected an error message")
	}
}

func TestStartValidationErrorShown(t *testing.T) {
	m, _, _ := newTestModel(t)

	updated, _ := m.Update(ActionDoneMsg{Err: validationError(t)})
	m = updated.(Model)
	if !strings.Contains(m.View(), "description is required") {
		t.Errorf("view should show the validation message:\n%s", m.View())
	}
}

func validationError(t *testing.T) error {
	t.Helper()
	_, err := validation.NewTrackingValidator().ValidateDescription("")
	if err == nil {
		t.Fatal("expected validation error")
	}
	return err
}

func TestStop(t *testing.T) {
	m, a, clock := newTestModel(t)
	ctx := context.Background()

	if _, err := a.StartTracking(ctx, "Review"); err != nil {
		t.Fatal(err)
	}
	clock.now = clock.now.Add(90 * time.Second)

	m, cmd := press(m, tea.KeyCtrlS)
	if cmd == nil {
		t.Fatal("ctrl+s should return a stop command")
	}
	done := cmd().(ActionDoneMsg)
	if done.Status != "Stopped: Review" {
		t.Errorf("status = %q", done.Status)
	}

	_, cmd = press(m, tea.KeyCtrlS)
	done = cmd().(ActionDoneMsg)
	if done.Status != "No tracking is running" {
		t.Errorf("status = %q", done.Status)
	}
}

func TestRunningRowFollowsClock(t *testing.T) {
	m, a, clock := newTestModel(t)

	if _, err := a.StartTracking(context.Background(), "Coding"); err != nil {
		t.Fatal(err)
	}
	m = load(t, m)

	clock.now = clock.now.Add(time.Hour + 2*time.Minute + 3*time.Second)
	updated, cmd := m.Update(TickMsg(clock.now))
	m = updated.(Model)
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	view := m.View()
	if !strings.Contains(view, "10:30  Coding  1h 2m 3s") {
		t.Errorf("view missing updated duration:\n%s", view)
	}
	if !strings.Contains(view, "Total: 1h 2m 3s") {
		t.Errorf("view missing total:\n%s", view)
	}
}

func TestDayNavigation(t *testing.T) {
	m, a, _ := newTestModel(t)
	today := a.Today()

	m, cmd := press(m, tea.KeyRight)
	if cmd != nil {
		t.Error("moving past today should not load anything")
	}
	if !m.day.Equal(today) || m.status != "Already showing today" {
		t.Errorf("day = %v, status = %q", m.day, m.status)
	}

	m, cmd = press(m, tea.KeyLeft)
	if cmd == nil {
		t.Fatal("moving back should load the day")
	}
	if !m.day.Equal(today.AddDate(0, 0, -1)) {
		t.Errorf("day = %v, want yesterday", m.day)
	}
	view := m.View()
	if !strings.Contains(view, "Trackings on 04/01/2024") || strings.Contains(view, "(today)") {
		t.Errorf("view should show yesterday without the today marker:\n%s", view)
	}

	m, _ = press(m, tea.KeyRight)
	if !m.day.Equal(today) {
		t.Errorf("day = %v, want today", m.day)
	}

	m, _ = press(m, tea.KeyLeft)
	m, _ = press(m, tea.KeyLeft)
	m, cmd = press(m, tea.KeyCtrlT)
	if cmd == nil || !m.day.Equal(today) {
		t.Errorf("ctrl+t should jump to today, day = %v", m.day)
	}
}

func TestStaleDayIgnored(t *testing.T) {
	m, a, _ := newTestModel(t)

	if _, err := a.StartTracking(context.Background(), "Today only"); err != nil {
		t.Fatal(err)
	}
	stale := loadCmd(m.ctx, m.api, m.day)()

	m, _ = press(m, tea.KeyLeft)
	updated, _ := m.Update(stale)
	m = updated.(Model)
	if len(m.trackings) != 0 {
		t.Error("reply for another day should be dropped")
	}
}

func TestStartFromPastDayJumpsToToday(t *testing.T) {
	m, a, _ := newTestModel(t)

	m, _ = press(m, tea.KeyLeft)
	m = typeText(m, "Back to work")
	m, cmd := press(m, tea.KeyEnter)
	if cmd == nil {
		t.Fatal("expected start command")
	}
	if !m.day.Equal(a.Today()) {
		t.Errorf("day = %v, want today", m.day)
	}
}

func TestBusEventsReload(t *testing.T) {
	m, a, _ := newTestModel(t)

	if _, err := a.StartTracking(context.Background(), "From elsewhere"); err != nil {
		t.Fatal(err)
	}

	msg := listenCmd(m.ctx, m.changes)()
	changed, ok := msg.(ChangedMsg)
	if !ok {
		t.Fatalf("listen returned %T", msg)
	}
	if changed.Event.Kind != events.Started {
		t.Errorf("event kind = %v", changed.Event.Kind)
	}

	_, cmd := m.Update(changed)
	if cmd == nil {
		t.Error("bus event should reload and keep listening")
	}
}

func TestListenStopsWithContext(t *testing.T) {
	a, _ := newTestAPI(t)
	ctx, cancel := context.WithCancel(context.Background())
	m := New(ctx, a)
	defer m.Close()

	cancel()
	if msg := listenCmd(m.ctx, m.changes)(); msg != nil {
		t.Errorf("expected nil after cancel, got %T", msg)
	}
}

func TestListenStopsOnClose(t *testing.T) {
	a, _ := newTestAPI(t)
	m := New(context.Background(), a)

	done := make(chan tea.Msg, 1)
	go func() { done <- listenCmd(m.ctx, m.changes)() }()

	m.Close()
	select {
	case msg := <-done:
		if msg != nil {
			t.Errorf("expected nil after Close, got %T", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("listener still waiting after Close")
	}

	if _, err := a.StartTracking(context.Background(), "After close"); err != nil {
		t.Fatal(err)
	}
	select {
	case ev := <-m.changes:
		t.Errorf("closed model received %v", ev.Kind)
	default:
	}
}

func TestQuit(t *testing.T) {
	m, _, _ := newTestModel(t)

	for _, keyType := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		_, cmd := press(m, keyType)
		if cmd == nil {
			t.Fatalf("%v should quit", keyType)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%v returned %T, want tea.QuitMsg", keyType, cmd())
		}
	}
}

func TestWindowSize(t *testing.T) {
	m, _, _ := newTestModel(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)
	if m.width != 100 || m.height != 30 {
		t.Errorf("size = %dx%d", m.width, m.height)
	}
}
