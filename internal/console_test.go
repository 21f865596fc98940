package internal

import (
	"bytes"
	"context"
	"errors"
	"streamsched/internal/models"
	"streamsched/internal/services"
	"streamsched/internal/structures"
	"streamsched/internal/testutil"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConsole(t *testing.T) (*Console, *testutil.MockStore) {
	t.Helper()
	color.NoColor = true
	conf := &structures.Config{Store: structures.StoreConfig{Key: "stream-schedule"}}
	store := testutil.NewMockStore()
	logger := &testutil.MockLogger{}
	svc := services.NewScheduleService(conf, store, logger, testutil.NewMockMetrics(), testutil.NewMockCache())
	return NewConsole(conf, logger, svc, store), store
}

func TestConsole_ShowUnreachablePrintsBanner(t *testing.T) {
	c, store := newTestConsole(t)
	store.Fail(errors.New("no route to host"))

	out := &bytes.Buffer{}
	require.NoError(t, c.Show(context.Background(), out))

	assert.Contains(t, out.String(), services.MessageLoadFailed)
	assert.Contains(t, out.String(), "RP Night")
	assert.Contains(t, out.String(), models.PlaceholderTitle)
}

func TestConsole_ShowStored(t *testing.T) {
	c, store := newTestConsole(t)
	store.Data["stream-schedule"] = []byte(`[{"weekday":"Friday","shortCode":"FRI","streams":[{"title":"Late Show","startTime":"11:00 PM","platforms":["Twitch"]}]}]`)

	out := &bytes.Buffer{}
	require.NoError(t, c.Show(context.Background(), out))

	s := out.String()
	assert.NotContains(t, s, services.MessageLoadFailed)
	assert.Contains(t, s, "FRI")
	assert.Contains(t, s, "Late Show")
	assert.Contains(t, s, "11:00 PM")
	assert.NotContains(t, s, "RP Night")
}

func TestConsole_Reset(t *testing.T) {
	c, store := newTestConsole(t)

	assert.ErrorIs(t, c.Reset(context.Background(), &bytes.Buffer{}, false), ErrNotConfirmed)
	assert.Zero(t, store.SaveCalls)

	out := &bytes.Buffer{}
	require.NoError(t, c.Reset(context.Background(), out, true))
	assert.Contains(t, out.String(), "stream-schedule")

	raw, ok := store.Value("stream-schedule")
	require.True(t, ok)
	stored, _, err := models.DecodeSchedule(raw)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSchedule(), stored)
}

func TestConsole_ResetStoreFailure(t *testing.T) {
	c, store := newTestConsole(t)
	store.SaveErr = errors.New("read-only")

	err := c.Reset(context.Background(), &bytes.Buffer{}, true)
	assert.ErrorIs(t, err, services.ErrStoreUnavailable)
}

func TestRenderSchedule_OneRowPerStream(t *testing.T) {
	color.NoColor = true
	s := models.NewSchedule(models.NewDayEntry(models.Monday,
		models.StreamEntry{Title: "A", Category: "X"},
		models.StreamEntry{Title: "B", Category: "Y", Featured: true},
	))

	tbl := RenderSchedule(s)
	assert.Len(t, tbl.Rows, 3)
	assert.Contains(t, tbl.String(), "★ B")
}
