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

// Package terminal implements a presenter that draws the canvas to a text
// terminal using 24-bit colour escape sequences. Each character cell shows
// two pixels stacked vertically with the upper half block character.
//
// The canvas is scaled to fit the terminal. The keyboard is put into cbreak
// mode so that playback can be stopped with a single key press.
package terminal
