package cmd

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/civicmap/internal/bank"
	"github.com/harrison/civicmap/internal/config"
	"github.com/harrison/civicmap/internal/logger"
	"github.com/harrison/civicmap/internal/scoring"
	"github.com/harrison/civicmap/internal/watch"
)

type fakeEvents struct {
	events chan watch.Event
	errors chan error
}

func (f *fakeEvents) Events() <-chan watch.Event { return f.events }
func (f *fakeEvents) Errors() <-chan error        { return f.errors }

// syncBuffer guards a bytes.Buffer written from the watch goroutine
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func TestWatchSheetsRescoresOnChange(t *testing.T) {
	dir := t.TempDir()
	good := writeSheet(t, dir, "good.yaml", 2, nil)
	partial := writeSheet(t, dir, "partial.yaml", 2, map[int]int{5: -1})

	b := bank.Default()
	out := &syncBuffer{}
	logs := &syncBuffer{}
	log := logger.NewMultiLogger(logger.NewConsoleLoggerWithColor(logs, "info", false))
	engine := scoring.NewEngine(b, log)

	fake := &fakeEvents{events: make(chan watch.Event, 4), errors: make(chan error, 1)}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- watchSheets(ctx, fake, b, engine, config.DefaultConfig(), out, log)
	}()

	now := time.Now()
	fake.events <- watch.Event{Path: partial, Op: watch.SheetChanged, Timestamp: now}
	fake.events <- watch.Event{Path: good, Op: watch.SheetRemoved, Timestamp: now}
	fake.events <- watch.Event{Path: good, Op: watch.SheetChanged, Timestamp: now}

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Archetype: Moderate Centrist")
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watchSheets did not stop after cancel")
	}

	assert.Contains(t, out.String(), "== "+good+" (updated ")
	assert.NotContains(t, out.String(), partial)
	assert.Contains(t, logs.String(), "[WARN] "+partial+": incomplete answer set")
	assert.Contains(t, logs.String(), good+" removed, waiting for it to reappear")
}

func TestScoreWatchRejectsOutput(t *testing.T) {
	sheet := writeSheet(t, t.TempDir(), "answers.yaml", 2, nil)

	_, _, err := execute(t, "", "score", sheet, "--watch", "-o", "result.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--watch cannot be combined with --output")
}
