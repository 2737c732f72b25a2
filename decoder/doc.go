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

// Package decoder reads GIF data and returns an animation.Animation. It is the
// only part of the player that knows anything about the GIF format.
//
// Frame disposal methods are not honoured. Frames are merged onto the canvas
// in order by the compositor package regardless of the disposal declared in
// the file.
package decoder
