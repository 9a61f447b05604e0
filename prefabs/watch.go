package prefabs

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

type ChangeKind int

const (
	SpecChanged ChangeKind = iota
	ScriptChanged
)

// Change names a prefab file that was edited on disk. Name is relative to
// the watched directory so it can be handed straight back to Load.
type Change struct {
	Name string
	Kind ChangeKind
}

// Watcher reports prefab and script edits. Bursts of writes to the same file
// inside the debounce window collapse into one Change.
type Watcher struct {
	watcher  *fsnotify.Watcher
	changes  chan Change
	errors   chan error
	closeCh  chan struct{}
	once     sync.Once
	debounce time.Duration
	logger   *slog.Logger
}

func NewWatcher(logger *slog.Logger, dirs ...string) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("prefabs: watcher: %w", err)
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, fmt.Errorf("prefabs: watch %s: %w", dir, err)
		}
	}

	watcher := &Watcher{
		watcher:  w,
		changes:  make(chan Change, 16),
		errors:   make(chan error, 1),
		closeCh:  make(chan struct{}),
		debounce: 100 * time.Millisecond,
		logger:   logger,
	}
	go watcher.run()
	return watcher, nil
}

// Drain hands every pending change to fn without blocking. It is meant to be
// called once per frame from the game loop.
func (w *Watcher) Drain(fn func(Change)) int {
	if w == nil {
		return 0
	}
	n := 0
	for {
		select {
		case c, ok := <-w.changes:
			if !ok {
				return n
			}
			fn(c)
			n++
		case err, ok := <-w.errors:
			if ok {
				w.logger.Warn("prefab watcher error", "err", err)
			}
		default:
			return n
		}
	}
}

func (w *Watcher) Close() error {
	if w == nil {
		return nil
	}
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.changes)
	defer close(w.errors)

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			kind, ok := classify(event.Name)
			if !ok {
				continue
			}
			now := time.Now()
			if t, seen := last[event.Name]; seen && now.Sub(t) < w.debounce {
				continue
			}
			last[event.Name] = now

			name := filepath.Base(event.Name)
			w.logger.Debug("prefab changed", "file", name)
			select {
			case w.changes <- Change{Name: name, Kind: kind}:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func classify(path string) (ChangeKind, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return SpecChanged, true
	case ".tengo":
		return ScriptChanged, true
	}
	return 0, false
}
