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

package watch

import (
	"github.com/jetsetilly/animplayer/compositor"
	"github.com/jetsetilly/animplayer/playback"
)

// Reloader wraps a playback.Presenter and terminates the playback session
// when the watched file changes. The Reload field records that the session
// ended because of a change.
type Reloader struct {
	playback.Presenter
	Watcher *Watcher
	Reload  bool
}

// Present implements the playback.Presenter interface.
func (rl *Reloader) Present(cnv *compositor.Canvas) (playback.Signal, error) {
	if rl.Watcher.Changed() {
		rl.Reload = true
		return playback.Terminate, nil
	}
	return rl.Presenter.Present(cnv)
}
