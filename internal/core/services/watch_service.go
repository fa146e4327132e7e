package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/kamal-hamza/icecofin/internal/core/domain"
)

const defaultDebounce = 500 * time.Millisecond

// WatchService re-freezes files whenever they change on disk
type WatchService struct {
	freeze *FreezeService
	logger *slog.Logger
}

func NewWatchService(freeze *FreezeService, logger *slog.Logger) *WatchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &WatchService{freeze: freeze, logger: logger}
}

// WatchRequest represents a request to watch files
type WatchRequest struct {
	Sources  []string
	Debounce time.Duration
}

// WatchEvent reports the outcome of one freeze triggered by the watcher
type WatchEvent struct {
	Source   string
	Response *FreezeResponse
	Err      error
}

// Watch freezes every source once, then again after each change, until ctx is done.
// Freezes run one at a time on the calling goroutine; handler is called after each.
func (s *WatchService) Watch(ctx context.Context, req WatchRequest, handler func(WatchEvent)) error {
	if len(req.Sources) == 0 {
		return fmt.Errorf("no files to watch")
	}

	debounce := req.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	// 1. Resolve sources
	sources := make(map[string]bool, len(req.Sources))
	dirs := make(map[string]bool)
	ordered := make([]string, 0, len(req.Sources))
	for _, src := range req.Sources {
		abs, err := filepath.Abs(src)
		if err != nil {
			return err
		}
		info, err := os.Stat(abs)
		if err != nil || !info.Mode().IsRegular() {
			return fmt.Errorf("%w: %s", domain.ErrSourceNotFound, src)
		}
		if !sources[abs] {
			ordered = append(ordered, abs)
		}
		sources[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	// 2. Watch parent directories so atomic saves (write + rename) are seen
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	// 3. Initial freeze
	for _, src := range ordered {
		s.run(ctx, src, handler)
	}

	// 4. Event loop
	pending := make(chan string)
	done := make(chan struct{})
	timers := make(map[string]*time.Timer)
	defer func() {
		close(done)
		for _, t := range timers {
			t.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			name := filepath.Clean(event.Name)
			if !sources[name] {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}

			s.logger.Debug("change detected", "path", name, "op", event.Op.String())

			if t, ok := timers[name]; ok {
				t.Stop()
			}
			timers[name] = time.AfterFunc(debounce, func() {
				select {
				case pending <- name:
				case <-done:
				}
			})

		case src := <-pending:
			s.run(ctx, src, handler)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("watcher error", "error", err)

		case <-ctx.Done():
			return nil
		}
	}
}

func (s *WatchService) run(ctx context.Context, src string, handler func(WatchEvent)) {
	resp, err := s.freeze.Execute(ctx, FreezeRequest{Source: src})
	if err != nil {
		s.logger.Debug("freeze failed", "path", src, "error", err)
	}
	if handler != nil {
		handler(WatchEvent{Source: src, Response: resp, Err: err})
	}
}
