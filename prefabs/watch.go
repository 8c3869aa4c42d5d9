package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// ChangeKind says what sort of prefab file changed.
type ChangeKind int

const (
	SpecChange ChangeKind = iota
	ScriptChange
)

// Change is one debounced file change.
type Change struct {
	Path string
	Kind ChangeKind
}

// Name is the prefab name without directory or extension.
func (c Change) Name() string { return Name(c.Path) }

// Watcher reports edits to spec and script files. Consumers drain Events
// from their own loop.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan Change
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan Change, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// Poll returns the next pending change without blocking.
func (w *Watcher) Poll() (Change, bool) {
	select {
	case c := <-w.Events:
		return c, true
	default:
		return Change{}, false
	}
}

func (w *Watcher) run() {
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
			if t, ok := last[event.Name]; ok && now.Sub(t) < debounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- Change{Path: event.Name, Kind: kind}:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
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
		return SpecChange, true
	case ".tengo":
		return ScriptChange, true
	default:
		return 0, false
	}
}
