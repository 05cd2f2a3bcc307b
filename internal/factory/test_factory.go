package factory

import (
	"time"

	"github.com/arturyumaev/casinodesk/internal/dependencies/mocks"
	"github.com/arturyumaev/casinodesk/internal/dependencies/random"
	"github.com/arturyumaev/casinodesk/internal/gameapi"
	"github.com/arturyumaev/casinodesk/internal/model"
	"github.com/arturyumaev/casinodesk/internal/storage/memory"
	"github.com/arturyumaev/casinodesk/internal/testutil"
)

// TestApp wraps App with direct access to the test doubles behind it.
type TestApp struct {
	*App
	MockClock *mocks.MockClock
	Memory    *memory.Storage
}

// NewTestApp wires an app for tests: in-memory storage, a fixed clock, and
// the given game service client.
func NewTestApp(api gameapi.API, sessionID model.SessionID) *TestApp {
	store := memory.New()
	clk := mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	app := newWithDependencies(sessionID, api, store, clk, random.New(), testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: clk,
		Memory:    store,
	}
}
