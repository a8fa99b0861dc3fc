package profile

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher keeps a profile loaded from disk and reloads it when the file
// changes. Invalid revisions are reported on Errors and the last good
// profile is kept.
type Watcher struct {
	path string

	mu       sync.RWMutex
	profile  *Profile
	onChange []func(*Profile)

	watcher *fsnotify.Watcher
	errCh   chan error
	ctx     context.Context
	cancel  context.CancelFunc
}

// Watch loads path and starts watching it for changes.
func Watch(path string) (*Watcher, error) {
	p, err := Load(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	// watch the directory so editors replacing the file are seen
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch directory: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:    path,
		profile: p,
		watcher: fw,
		errCh:   make(chan error, 10),
		ctx:     ctx,
		cancel:  cancel,
	}
	go w.loop()

	return w, nil
}

// Profile returns the current profile.
func (w *Watcher) Profile() *Profile {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.profile
}

// OnChange registers cb to be called after every successful reload.
func (w *Watcher) OnChange(cb func(*Profile)) {
	w.mu.Lock()
	w.onChange = append(w.onChange, cb)
	w.mu.Unlock()
}

// Errors returns reload and watch errors. Errors are dropped if nobody reads.
func (w *Watcher) Errors() <-chan error { return w.errCh }

// Close stops watching.
func (w *Watcher) Close() error {
	w.cancel()
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	var t *time.Timer
	const delay = 100 * time.Millisecond

	for {
		select {
		case <-w.ctx.Done():
			if t != nil {
				t.Stop()
			}
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != filepath.Base(w.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if t != nil {
				t.Stop()
			}
			t = time.AfterFunc(delay, w.reload)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendErr(err)
		}
	}
}

func (w *Watcher) sendErr(err error) {
	select {
	case w.errCh <- err:
	default:
	}
}

func (w *Watcher) reload() {
	if w.ctx.Err() != nil {
		return
	}
	p, err := Load(w.path)
	if err != nil {
		w.sendErr(fmt.Errorf("reload profile: %w", err))
		return
	}

	w.mu.Lock()
	w.profile = p
	cbs := append([]func(*Profile){}, w.onChange...)
	w.mu.Unlock()

	for _, cb := range cbs {
		cb(p)
	}
}
