package catalog

import (
	"fmt"

	"github.com/andareed/siftly-heatmap/heatmap"
	"github.com/andareed/siftly-heatmap/logging"
	"github.com/fsnotify/fsnotify"
)

// Watcher reports when frame files appear in, vanish from or get rewritten
// in a directory.
type Watcher struct {
	dir     string
	watcher *fsnotify.Watcher
	changes chan string
	done    chan struct{}
}

// Watch starts watching dir. Close must be called to release it.
func Watch(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("new watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %q: %w", dir, err)
	}
	w := &Watcher{
		dir:     dir,
		watcher: fw,
		changes: make(chan string, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Changes delivers the path of a changed frame file. Bursts are coalesced:
// if a change is already pending, further ones are dropped until it's read.
// The channel is closed when the watcher stops.
func (w *Watcher) Changes() <-chan string { return w.changes }

func (w *Watcher) Dir() string { return w.dir }

func (w *Watcher) loop() {
	defer close(w.changes)
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !heatmap.IsFrameFile(ev.Name) {
				continue
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) &&
				!ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Write) {
				continue
			}
			logging.Debugf("catalog: %s %s", ev.Op, ev.Name)
			select {
			case w.changes <- ev.Name:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Warnf("catalog: watch error on %s: %v", w.dir, err)
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	return w.watcher.Close()
}
