package watch

import (
	"path/filepath"
	"sync"
	"time"

	"wristlist/internal/errors"
	"wristlist/internal/log"

	"github.com/fsnotify/fsnotify"
)

// Change represents a modification of a watched file
type Change struct {
	Path      string
	Timestamp time.Time
	Op        fsnotify.Op
}

// Watcher monitors a set of files for changes using fsnotify. The parent
// directories are watched rather than the files themselves, so files that
// are replaced or created later are still seen.
type Watcher struct {
	// Files being watched, by cleaned absolute path
	files map[string]struct{}

	// Channel to receive changes
	changes chan Change

	// Channel to signal stop
	stopChan chan struct{}

	// fsnotify watcher instance
	fsWatcher *fsnotify.Watcher

	// Closed when the event loop exits
	done chan struct{}

	mutex   sync.RWMutex
	running bool
}

// New creates a new file watcher using fsnotify
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	return &Watcher{
		files:     make(map[string]struct{}),
		changes:   make(chan Change, 10),
		stopChan:  make(chan struct{}),
		fsWatcher: fsWatcher,
	}, nil
}

// AddFile adds a file to watch. The file itself need not exist yet but its
// directory must.
func (w *Watcher) AddFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(err, "error resolving %s", path)
	}
	dir := filepath.Dir(abs)

	// fsnotify ignores duplicate directories itself
	if err := w.fsWatcher.Add(dir); err != nil {
		return errors.Wrapf(err, "failed to add directory %s to watcher", dir)
	}

	w.mutex.Lock()
	w.files[abs] = struct{}{}
	w.mutex.Unlock()
	log.LogWithFields(log.F("file", abs)).Debug("Watching file")
	return nil
}

// Changes returns the channel that delivers file changes
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

func (w *Watcher) watched(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	_, ok := w.files[abs]
	return ok
}

// Start begins the file watching process
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return errors.New("watcher already running")
	}
	w.running = true
	w.stopChan = make(chan struct{})
	w.done = make(chan struct{})
	stop, done := w.stopChan, w.done
	w.mutex.Unlock()

	go func() {
		defer close(done)
		log.Debugf("Watcher event loop started")

		for {
			select {
			case event, ok := <-w.fsWatcher.Events:
				if !ok {
					return
				}
				if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Remove) {
					continue
				}
				if !w.watched(event.Name) {
					continue
				}

				change := Change{
					Path:      event.Name,
					Timestamp: time.Now(),
					Op:        event.Op,
				}

				// Send non-blockingly; a full channel already holds a
				// pending change
				select {
				case w.changes <- change:
				default:
					log.LogWithFields(log.F("file", event.Name)).Debug("Change channel is full, dropped event")
				}

			case err, ok := <-w.fsWatcher.Errors:
				if !ok {
					return
				}
				log.LogWithFields(log.F("error", err)).Error("fsnotify watcher error")

			case <-stop:
				return
			}
		}
	}()

	log.Debugf("Watcher started")
	return nil
}

// Stop halts the watcher and closes the change channel once the event
// loop has exited.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	if !w.running {
		w.mutex.Unlock()
		return
	}
	w.running = false
	close(w.stopChan)
	done := w.done
	w.mutex.Unlock()

	<-done

	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err)).Error("Error closing fsnotify watcher")
	}
	close(w.changes)

	log.Debugf("Watcher stopped")
}

// IsRunning returns whether the watcher is currently active
func (w *Watcher) IsRunning() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}

// Files returns the watched file paths
func (w *Watcher) Files() []string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	files := make([]string, 0, len(w.files))
	for f := range w.files {
		files = append(files, f)
	}
	return files
}
