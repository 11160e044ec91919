// Package watch reruns a job whenever a single file changes.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/srlehn/mipmapgen/internal/errors"
	"github.com/srlehn/mipmapgen/internal/logx"
)

// DefaultDebounce is the quiet period after the last event before the job runs.
const DefaultDebounce = 500 * time.Millisecond

// Watcher watches the parent directory of a file, editors often replace
// files instead of writing them in place.
type Watcher struct {
	file     string
	debounce time.Duration
	logger   *slog.Logger
	fsw      *fsnotify.Watcher
}

var _ logx.LoggerProvider = (*Watcher)(nil)

// New starts watching file. debounce <= 0 uses DefaultDebounce.
func New(file string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	if len(file) == 0 {
		return nil, errors.New(`no file to watch`)
	}
	abs, err := filepath.Abs(file)
	if err != nil {
		return nil, errors.New(err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.WrapPrefix(err, `failed to create fsnotify watcher`, 0)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, errors.WrapPrefix(err, `failed to watch `+filepath.Dir(abs), 0)
	}
	return &Watcher{file: abs, debounce: debounce, logger: logger, fsw: fsw}, nil
}

func (w *Watcher) Logger() *slog.Logger {
	if w == nil {
		return nil
	}
	return w.logger
}

// File returns the absolute path of the watched file.
func (w *Watcher) File() string { return w.file }

// Close stops watching.
func (w *Watcher) Close() error {
	if w == nil || w.fsw == nil {
		return nil
	}
	return w.fsw.Close()
}

// Run calls job after every debounced change of the file until ctx is done.
// Job errors are passed to onErr (nil: logged) and don't stop the watcher.
func (w *Watcher) Run(ctx context.Context, job func(context.Context) error, onErr func(error)) error {
	if w == nil || w.fsw == nil {
		return errors.NilReceiver(nil)
	}
	if job == nil {
		return errors.NilParam(nil)
	}
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			logx.Debug(`file event`, w, `file`, ev.Name, `op`, ev.Op.String())
			timer.Reset(w.debounce)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logx.IsErr(err, w, slog.LevelWarn)
		case <-timer.C:
			if err := job(ctx); err != nil {
				if onErr != nil {
					onErr(err)
				} else {
					logx.IsErr(err, w, slog.LevelError, `file`, w.file)
				}
			}
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.file {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}
