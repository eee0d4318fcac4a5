//file: internal/watch/watch.go

// Package watch drives watch mode: a debounced fsnotify watcher that
// turns raw filesystem events into add/change/unlink notifications for
// files matching the effective patterns.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"testweave/internal/logger"
	"testweave/internal/pathmatch"
)

// EventType classifies a filesystem change.
type EventType int

const (
	Add EventType = iota
	Change
	Unlink
)

// String returns the event name used in logs.
func (t EventType) String() string {
	switch t {
	case Add:
		return "add"
	case Change:
		return "change"
	case Unlink:
		return "unlink"
	default:
		return "unknown"
	}
}

// Event is one debounced, pattern-filtered file change.
type Event struct {
	Type EventType
	Path string
}

// DefaultDebounce coalesces editor save storms for one path into a
// single callback invocation.
const DefaultDebounce = 250 * time.Millisecond

// Service watches the directory trees under the configured patterns.
// Callbacks run serially on a single dispatch goroutine, so two
// near-simultaneous events can never trigger overlapping writes to the
// same output file.
type Service struct {
	patterns []string
	ignore   []string
	callback func(Event)
	log      *logger.Logger

	watcher  *fsnotify.Watcher
	debounce time.Duration

	mu      sync.Mutex
	pending map[string]pendingChange

	ctx    context.Context
	cancel context.CancelFunc
	done   sync.WaitGroup
}

type pendingChange struct {
	eventType EventType
	at        time.Time
}

// New creates a watch service. callback is invoked once per settled
// change to a file that matches patterns and survives the ignore list.
func New(patterns, ignore []string, debounce time.Duration, callback func(Event), log *logger.Logger) (*Service, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		patterns: patterns,
		ignore:   ignore,
		callback: callback,
		log:      log,
		watcher:  watcher,
		debounce: debounce,
		pending:  make(map[string]pendingChange),
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Start registers the watch roots and begins dispatching events. It
// returns immediately; the service runs until Close.
func (s *Service) Start() error {
	for _, dir := range pathmatch.BaseDirs(s.patterns) {
		if err := s.addRecursive(dir); err != nil {
			return err
		}
	}

	s.done.Add(2)
	go s.collectEvents()
	go s.flushPending()
	return nil
}

// Close stops watching and waits for the dispatch goroutines to exit.
func (s *Service) Close() error {
	s.cancel()
	err := s.watcher.Close()
	s.done.Wait()
	return err
}

// addRecursive registers dir and every subdirectory with the watcher.
// Unreadable subtrees are skipped rather than failing the whole watch.
func (s *Service) addRecursive(dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() {
			return nil
		}
		if pathmatch.Ignored(path, s.ignore) {
			return filepath.SkipDir
		}
		if err := s.watcher.Add(path); err != nil {
			s.log.Warn("could not watch directory", "dir", path, "error", err.Error())
		}
		return nil
	})
}

// collectEvents records raw fsnotify events into the pending map,
// coalescing repeats per path. Later events override earlier ones
// except that a create followed by a write stays an add.
func (s *Service) collectEvents() {
	defer s.done.Done()
	for {
		select {
		case <-s.ctx.Done():
			return
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			s.handleRaw(event)
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.log.Warn("watch error", "error", err.Error())
		}
	}
}

func (s *Service) handleRaw(event fsnotify.Event) {
	// New directories join the watch so future files under them are
	// seen.
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := s.addRecursive(event.Name); err != nil {
				s.log.Warn("could not watch new directory", "dir", event.Name, "error", err.Error())
			}
			return
		}
	}

	var eventType EventType
	switch {
	case event.Op&fsnotify.Create != 0:
		eventType = Add
	case event.Op&fsnotify.Write != 0:
		eventType = Change
	case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		eventType = Unlink
	default:
		return
	}

	if !pathmatch.MatchesAny(event.Name, s.patterns, s.ignore) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	prev, exists := s.pending[event.Name]
	if exists && prev.eventType == Add && eventType == Change {
		eventType = Add
	}
	s.pending[event.Name] = pendingChange{eventType: eventType, at: time.Now()}
}

// flushPending dispatches changes whose debounce window has expired.
// Running every dispatch on this one goroutine is what serializes the
// processing callback.
func (s *Service) flushPending() {
	defer s.done.Done()
	ticker := time.NewTicker(s.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			for _, event := range s.takeSettled() {
				s.dispatch(event)
			}
		}
	}
}

// takeSettled removes and returns every pending change older than the
// debounce window.
func (s *Service) takeSettled() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.debounce)
	var settled []Event
	for path, change := range s.pending {
		if change.at.After(cutoff) {
			continue
		}
		settled = append(settled, Event{Type: change.eventType, Path: path})
		delete(s.pending, path)
	}
	return settled
}

func (s *Service) dispatch(event Event) {
	correlationID := uuid.New().String()
	s.log.Debug("dispatching file event",
		"type", event.Type.String(),
		"path", event.Path,
		"correlation_id", correlationID)
	s.callback(event)
}
