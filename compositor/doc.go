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

// Package compositor merges animation frames onto a persistent canvas.
//
// A frame is a rectangle of palette indexes placed at an offset within the
// canvas. Merging a frame resolves each index against the frame's palette and
// writes the colour to the canvas. On every frame but the first, pixels using
// the transparent index are not written and whatever was already on the
// canvas shows through. By default the transparent index is zero for every
// frame. The FrameTransparency policy uses the index declared by the frame
// instead.
//
// Merges are all or nothing. A frame that does not fit on the canvas, or that
// refers to a palette entry that the palette does not have, is rejected
// before any pixel is written.
package compositor
