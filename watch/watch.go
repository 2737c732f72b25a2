// This file is part of Animplayer.
//
// Animplayer is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Animplayer is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Animplayer.  If not, see <https://www.gnu.org/licenses/>.

// Package watch notices when the file being played has changed on disk. The
// directory containing the file is watched rather than the file itself
// because many editors and tools replace a file instead of writing to it.
//
// Changes are identified by a checksum of the file contents so that
// touching a file, or writing the same data, is not reported as a change.
package watch

import (
	"context"
	"crypto/sha1"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jetsetilly/animplayer/curated"
	"github.com/jetsetilly/animplayer/logger"
)

// FileDebounce is the default duration to wait after a file event before
// reading the file. Some programs write a file in more than one step.
const FileDebounce = 50 * time.Millisecond

// WatchFailure is returned by NewWatcher() if the file cannot be watched.
const WatchFailure = "watch: %v"

// Watcher reports changes to a single file.
type Watcher struct {
	filename string
	debounce time.Duration
	watcher  *fsnotify.Watcher

	sum     [sha1.Size]byte
	changed atomic.Bool

	// a value is sent on Changes whenever a change is detected. the channel
	// is buffered and sending never blocks so a slow reader will see only one
	// value for many changes
	Changes chan bool

	done chan struct{}
}

// NewWatcher starts watching the named file. The watcher stops when the
// context is cancelled or when Close() is called. If debounce is less than
// zero FileDebounce is used.
func NewWatcher(ctx context.Context, filename string, debounce time.Duration) (*Watcher, error) {
	if debounce < 0 {
		debounce = FileDebounce
	}

	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, curated.Errorf(WatchFailure, err)
	}

	w := &Watcher{
		filename: abs,
		debounce: debounce,
		Changes:  make(chan bool, 1),
		done:     make(chan struct{}),
	}

	b, err := os.ReadFile(abs)
	if err != nil {
		return nil, curated.Errorf(WatchFailure, err)
	}
	w.sum = sha1.Sum(b)

	w.watcher, err = fsnotify.NewWatcher()
	if err != nil {
		return nil, curated.Errorf(WatchFailure, err)
	}

	err = w.watcher.Add(filepath.Dir(abs))
	if err != nil {
		w.watcher.Close()
		return nil, curated.Errorf(WatchFailure, err)
	}

	go w.process(ctx)

	logger.Logf(logger.Allow, "watch", "watching %s", abs)

	return w, nil
}

func (w *Watcher) process(ctx context.Context) {
	defer close(w.done)

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Name != w.filename || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}

			time.Sleep(w.debounce)

			b, err := os.ReadFile(w.filename)
			if err != nil {
				logger.Log(logger.Allow, "watch", err)
				continue
			}

			sum := sha1.Sum(b)
			if sum == w.sum {
				continue
			}
			w.sum = sum

			logger.Logf(logger.Allow, "watch", "%s has changed", filepath.Base(w.filename))
			w.changed.Store(true)

			select {
			case w.Changes <- true:
			default:
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Log(logger.Allow, "watch", err)
		}
	}
}

// Changed returns true if the file has changed since the last call to
// Changed().
func (w *Watcher) Changed() bool {
	return w.changed.Swap(false)
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	if err != nil {
		return curated.Errorf(WatchFailure, err)
	}
	return nil
}
