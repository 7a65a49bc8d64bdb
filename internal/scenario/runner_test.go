// Package scenario_test tests replaying scenarios against a graph, concurrency limits, cancellation, and progress callbacks.
// Related: internal/scenario/runner.go
// Tags: scenario, runner, replay, concurrency, progress
package scenario

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ariel-frischer/notifybehaviour/internal/behaviour"
	"github.com/ariel-frischer/notifybehaviour/internal/eventbus"
	"github.com/ariel-frischer/notifybehaviour/internal/notify"
	"github.com/ariel-frischer/notifybehaviour/internal/notify/notifytest"
	"github.com/ariel-frischer/notifybehaviour/internal/reactive"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner(t *testing.T, bus eventbus.Bus) (*Runner, *reactive.Graph, *notifytest.MockSender) {
	t.Helper()
	mock := notifytest.NewMockSender()
	cfg := notify.DefaultConfig()
	cfg.SuppressInCI = false

	provider := behaviour.NewProvider(behaviour.WithSender(mock), behaviour.WithBackendConfig(cfg))
	t.Cleanup(provider.Close)

	graph := reactive.NewGraph(bus)
	graph.RegisterProvider(provider)
	return NewRunner(graph, provider, zerolog.Nop()), graph, mock
}

func TestRunner_Run(t *testing.T) {
	t.Parallel()

	s, err := Parse([]byte(buildScenario))
	require.NoError(t, err)

	runner, graph, mock := newTestRunner(t, nil)
	report, err := runner.Run(context.Background(), s)
	require.NoError(t, err)
	require.Len(t, report.Entities, 2)

	build := report.Entities[0]
	assert.Equal(t, "build", build.Name)
	assert.True(t, build.Attached)
	assert.True(t, build.Deleted)
	assert.Equal(t, 3, build.Steps)
	assert.Equal(t, "Build", build.Notification.Summary)
	assert.Equal(t, "compiling", build.Notification.Body)
	assert.Equal(t, notify.TimeoutMillis(3000), build.Notification.Timeout)

	plain := report.Entities[1]
	assert.False(t, plain.Attached)
	assert.False(t, plain.Deleted)
	assert.Equal(t, notify.Notification{}, plain.Notification)

	assert.Equal(t, 1, report.Attached())
	assert.Equal(t, 1, graph.Len(), "only the non-detached entity remains")

	require.Equal(t, 1, mock.VisualCount())
	last, ok := mock.Last()
	require.True(t, ok)
	assert.Equal(t, "compiling", last.Body)
}

func TestRunner_PublishesLifecycleEvents(t *testing.T) {
	t.Parallel()

	bus := eventbus.New()
	events, unsubscribe := bus.Subscribe(16)
	defer unsubscribe()

	s, err := Parse([]byte(buildScenario))
	require.NoError(t, err)

	runner, _, _ := newTestRunner(t, bus)
	_, err = runner.Run(context.Background(), s)
	require.NoError(t, err)

	var types []string
	for len(events) > 0 {
		types = append(types, (<-events).Type)
	}
	assert.ElementsMatch(t,
		[]string{eventbus.EntityCreated, eventbus.EntityCreated, eventbus.EntityDeleted},
		types)
}

func TestRunner_ConcurrentEntities(t *testing.T) {
	t.Parallel()

	doc := `
entities:
  - {name: a, type: desktop_notification, properties: {show: false, summary: a}, steps: [{wait: 20ms}, {set: {show: true}}], detach: true}
  - {name: b, type: desktop_notification, properties: {show: false, summary: b}, steps: [{wait: 20ms}, {set: {show: true}}], detach: true}
  - {name: c, type: desktop_notification, properties: {show: false, summary: c}, steps: [{wait: 20ms}, {set: {show: true}}], detach: true}
`
	s, err := Parse([]byte(doc))
	require.NoError(t, err)

	runner, graph, mock := newTestRunner(t, nil)
	report, err := runner.Run(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Attached())
	assert.Equal(t, 3, mock.VisualCount())
	assert.Zero(t, graph.Len())

	summaries := make([]string, 0, 3)
	for _, n := range mock.Shown() {
		summaries = append(summaries, n.Summary)
	}
	assert.ElementsMatch(t, []string{"a", "b", "c"}, summaries)
}

func TestRunner_MaxParallel(t *testing.T) {
	t.Parallel()

	doc := `
entities:
  - {name: a, type: desktop_notification, properties: {show: false}, steps: [{set: {show: true}}]}
  - {name: b, type: desktop_notification, properties: {show: false}, steps: [{set: {show: true}}]}
`
	s, err := Parse([]byte(doc))
	require.NoError(t, err)

	runner, _, mock := newTestRunner(t, nil)
	runner.MaxParallel = 1
	_, err = runner.Run(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, 2, mock.VisualCount())
}

func TestRunner_CancelStopsWaits(t *testing.T) {
	t.Parallel()

	doc := `
entities:
  - name: slow
    type: desktop_notification
    properties: {show: false}
    steps:
      - wait: 1m
      - set: {show: true}
    detach: true
`
	s, err := Parse([]byte(doc))
	require.NoError(t, err)

	runner, graph, mock := newTestRunner(t, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	report, err := runner.Run(ctx, s)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Less(t, report.Elapsed, 30*time.Second)

	assert.Zero(t, mock.VisualCount())
	assert.Zero(t, report.Entities[0].Steps)
	assert.False(t, report.Entities[0].Deleted)
	assert.Equal(t, 1, graph.Len())
}

type recordedProgress struct {
	mu       sync.Mutex
	started  []string
	finished map[string]error
}

func (p *recordedProgress) EntityStarted(index, total int, name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.started = append(p.started, fmt.Sprintf("%d/%d %s", index, total, name))
}

func (p *recordedProgress) EntityFinished(index, total int, name string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.finished == nil {
		p.finished = make(map[string]error)
	}
	p.finished[fmt.Sprintf("%d/%d %s", index, total, name)] = err
}

func TestRunner_ReportsProgress(t *testing.T) {
	t.Parallel()

	s, err := Parse([]byte(buildScenario))
	require.NoError(t, err)

	runner, _, _ := newTestRunner(t, nil)
	rec := &recordedProgress{}
	runner.Progress = rec

	_, err = runner.Run(context.Background(), s)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"0/2 build", "1/2 plain"}, rec.started)
	assert.Equal(t, map[string]error{"0/2 build": nil, "1/2 plain": nil}, rec.finished)
}

func TestRunner_ReportsFailedEntity(t *testing.T) {
	t.Parallel()

	doc := `
entities:
  - {name: slow, type: desktop_notification, properties: {show: false}, steps: [{wait: 1m}]}
`
	s, err := Parse([]byte(doc))
	require.NoError(t, err)

	runner, _, _ := newTestRunner(t, nil)
	rec := &recordedProgress{}
	runner.Progress = rec

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = runner.Run(ctx, s)
	require.Error(t, err)

	require.Contains(t, rec.finished, "0/1 slow")
	assert.ErrorIs(t, rec.finished["0/1 slow"], context.DeadlineExceeded)
}
