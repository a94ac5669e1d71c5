// Package watch wraps fsnotify behind a small event/error channel pair, used
// by `zast build --watch` to rebuild when watched source files change.
package watch

import (
	"github.com/fsnotify/fsnotify"
)

// Op describes what happened to a watched path.
type Op uint8

const (
	OpCreate Op = 1 << iota
	OpWrite
	OpRemove
	OpRename
)

// Event is one change to a watched path.
type Event struct {
	Path string
	Op   Op
}

// Relevant reports whether the event should trigger a rebuild. Permission
// changes are ignored.
func (e Event) Relevant() bool {
	return e.Op&(OpCreate|OpWrite|OpRemove|OpRename) != 0
}

// Watcher delivers change events for explicitly added paths.
type Watcher struct {
	w   *fsnotify.Watcher
	evC chan Event
	erC chan error
}

// New creates a watcher and starts its delivery loop.
func New() (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	fw := &Watcher{w: w, evC: make(chan Event, 128), erC: make(chan error, 1)}
	go fw.loop()
	return fw, nil
}

func (fw *Watcher) loop() {
	for {
		select {
		case ev, ok := <-fw.w.Events:
			if !ok {
				return
			}
			var op Op
			if ev.Op&fsnotify.Create != 0 {
				op |= OpCreate
			}
			if ev.Op&fsnotify.Write != 0 {
				op |= OpWrite
			}
			if ev.Op&fsnotify.Remove != 0 {
				op |= OpRemove
			}
			if ev.Op&fsnotify.Rename != 0 {
				op |= OpRename
			}
			fw.evC <- Event{Path: ev.Name, Op: op}
		case err, ok := <-fw.w.Errors:
			if !ok {
				return
			}
			fw.erC <- err
		}
	}
}

// Events returns the change event channel.
func (fw *Watcher) Events() <-chan Event { return fw.evC }

// Errors returns the watcher error channel.
func (fw *Watcher) Errors() <-chan error { return fw.erC }

// Add starts watching a file or directory.
func (fw *Watcher) Add(name string) error { return fw.w.Add(name) }

// Remove stops watching a path.
func (fw *Watcher) Remove(name string) error { return fw.w.Remove(name) }

// Close shuts the watcher down.
func (fw *Watcher) Close() error { return fw.w.Close() }
