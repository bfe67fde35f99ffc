package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"vault-tracker/internal/api"
	"vault-tracker/internal/blob"
	"vault-tracker/internal/config"
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

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type testEnv struct {
	app   *App
	api   api.API
	out   *bytes.Buffer
	clock *fakeClock
}

// newTestAPI wires an API over an in-memory vault with a fixed clock at
// 2024-01-05 09:30:00 UTC, shown in UTC+1.
func newTestAPI(t *testing.T) (api.API, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 1, 5, 9, 30, 0, 0, time.UTC)}
	store, err := sqlite.Open(context.Background(), blob.NewMemStore(), "time-tracker.db",
		sqlite.WithLocation(testZone),
		sqlite.WithClock(clock.Now),
		sqlite.WithLogger(logging.Discard()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return api.New(store, services.NewServiceContainer(testZone, clock.Now),
		validation.NewTrackingValidator(), events.NewBus(), logging.Discard()), clock
}

func setupTestApp(t *testing.T, input string) *testEnv {
	t.Helper()
	apiInstance, clock := newTestAPI(t)
	out := &bytes.Buffer{}

	app := NewAppWithIO(apiInstance, config.NewConfig(), strings.NewReader(input), out)
	app.renderer.SetColorProfile(termenv.Ascii)

	return &testEnv{app: app, api: apiInstance, out: out, clock: clock}
}

func (e *testEnv) start(t *testing.T, description string) {
	t.Helper()
	_, err := e.api.StartTracking(context.Background(), description)
	require.NoError(t, err)
}

func (e *testEnv) stop(t *testing.T) {
	t.Helper()
	_, err := e.api.StopTracking(context.Background())
	require.NoError(t, err)
}

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t, goldie.WithFixtureDir("testdata/golden"))
}
