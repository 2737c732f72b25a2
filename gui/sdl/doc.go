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

// Package sdl implements a presenter that shows the canvas in an SDL window.
//
// SDL requires that window creation and event handling happen on the main
// thread of the process. The Present() function can be called from any
// goroutine and only copies the canvas. The copy is uploaded to the window
// the next time Service() is called, which must be from the main thread.
//
// The window closes, and playback terminates, with the window close button,
// the escape key or the Q key.
package sdl
