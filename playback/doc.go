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

// Package playback ties together the sequencer, the frame timer and the
// compositor. A Loop owns the canvas for the lifetime of a playback session
// and hands it to a Presenter once per tick.
//
// The loop runs on the goroutine that calls Run(). Presenters that must do
// their work on another goroutine (the SDL presenter for example) should
// copy the canvas during the call to Present() and not keep a reference to
// it.
package playback
