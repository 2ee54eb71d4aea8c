package fixture

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/colonyops/msgview/internal/core/logging"
)

const debounceDelay = 50 * time.Millisecond

// Reload is sent after the watched fixture changes. Err is set when the new
// contents could not be loaded; the previous document stays valid.
type Reload struct {
	Doc *Document
	Err error
}

// Watcher reloads a fixture file whenever it changes on disk.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	out     chan Reload

	mu       sync.Mutex
	debounce *time.Timer

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Watch starts watching path. The parent directory is watched so that
// editors replacing the file through a rename are still seen.
func Watch(ctx context.Context, path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	w := &Watcher{
		path:    filepath.Clean(path),
		watcher: fw,
		out:     make(chan Reload, 1),
		ctx:     ctx,
		cancel:  cancel,
	}

	w.wg.Add(1)
	go w.run()

	return w, nil
}

// Reloads returns the channel of reload results. It is closed by Close.
func (w *Watcher) Reloads() <-chan Reload {
	return w.out
}

// Close stops watching and closes the reload channel.
func (w *Watcher) Close() error {
	w.cancel()

	w.mu.Lock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.mu.Unlock()

	err := w.watcher.Close()
	w.wg.Wait()

	w.mu.Lock()
	close(w.out)
	w.out = nil
	w.mu.Unlock()
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()
	log := logging.Component("fixture")

	for {
		select {
		case <-w.ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Str("path", w.path).Msg("watch error")
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}
	if filepath.Clean(event.Name) != w.path {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(debounceDelay, w.reload)
}

func (w *Watcher) reload() {
	doc, err := Load(w.path)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.out == nil || w.ctx.Err() != nil {
		return
	}

	// Keep only the latest result when the reader is behind.
	select {
	case <-w.out:
	default:
	}
	select {
	case w.out <- Reload{Doc: doc, Err: err}:
	default:
	}
}
