package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamal-hamza/icecofin/internal/core/domain"
)

func TestWatchService_RefreezesOnChange(t *testing.T) {
	src := writeSource(t, "watched.txt", []byte("first"))
	freeze, _ := newTestFreezeService()
	svc := NewWatchService(freeze, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan WatchEvent, 16)
	errCh := make(chan error, 1)
	go func() {
		errCh <- svc.Watch(ctx, WatchRequest{Sources: []string{src}, Debounce: 20 * time.Millisecond}, func(ev WatchEvent) {
			events <- ev
		})
	}()

	initial := waitForEvent(t, events)
	require.NoError(t, initial.Err)
	assert.Equal(t, int64(len("first")), initial.Response.Descriptor.OriginalSizeBytes)

	require.NoError(t, os.WriteFile(src, []byte("second version"), 0644))

	// A truncate and a write may be delivered as separate bursts
	var updated WatchEvent
	for updated.Response == nil || updated.Response.Descriptor.OriginalSizeBytes != int64(len("second version")) {
		updated = waitForEvent(t, events)
		require.NoError(t, updated.Err)
	}
	assert.NotEqual(t, initial.Response.Descriptor.DigestHex, updated.Response.Descriptor.DigestHex)

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestWatchService_IgnoresOtherFiles(t *testing.T) {
	src := writeSource(t, "watched.txt", []byte("content"))
	freeze, _ := newTestFreezeService()
	svc := NewWatchService(freeze, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan WatchEvent, 16)
	go func() {
		_ = svc.Watch(ctx, WatchRequest{Sources: []string{src}, Debounce: 10 * time.Millisecond}, func(ev WatchEvent) {
			events <- ev
		})
	}()

	waitForEvent(t, events)

	other := filepath.Join(filepath.Dir(src), "unrelated.txt")
	require.NoError(t, os.WriteFile(other, []byte("noise"), 0644))

	select {
	case ev := <-events:
		t.Fatalf("unexpected freeze of %s", ev.Source)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatchService_MissingSource(t *testing.T) {
	freeze, _ := newTestFreezeService()
	svc := NewWatchService(freeze, nil)

	err := svc.Watch(context.Background(), WatchRequest{
		Sources: []string{filepath.Join(t.TempDir(), "missing")},
	}, nil)
	assert.ErrorIs(t, err, domain.ErrSourceNotFound)
}

func TestWatchService_NoSources(t *testing.T) {
	freeze, _ := newTestFreezeService()
	svc := NewWatchService(freeze, nil)

	err := svc.Watch(context.Background(), WatchRequest{}, nil)
	assert.Error(t, err)
}

func waitForEvent(t *testing.T, events <-chan WatchEvent) WatchEvent {
	t.Helper()
	select {
	case ev := <-events:
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for freeze")
		return WatchEvent{}
	}
}
