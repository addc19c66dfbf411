package shader

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/gekko3d/learngl/logging"
)

// Watcher reports shader files under a directory that were written,
// created or renamed. Changed paths are slash-separated and relative to the
// watched directory so they compare equal to Source paths read via os.DirFS.
type Watcher struct {
	dir     string
	fsw     *fsnotify.Watcher
	changes chan string
	done    chan struct{}
	wg      sync.WaitGroup
	log     logging.Logger
}

func NewWatcher(dir string, log logging.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		dir:     dir,
		fsw:     fsw,
		changes: make(chan string, 16),
		done:    make(chan struct{}),
		log:     logging.OrNop(log),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Changes delivers changed paths. Events are dropped while the buffer is full.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			rel, err := filepath.Rel(w.dir, event.Name)
			if err != nil {
				continue
			}
			select {
			case w.changes <- filepath.ToSlash(rel):
			default:
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warnf("shader watcher: %v", err)
		}
	}
}

func (w *Watcher) Close() error {
	close(w.done)
	err := w.fsw.Close()
	w.wg.Wait()
	return err
}
