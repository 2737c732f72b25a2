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

package gui

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/jetsetilly/animplayer/compositor"
)

// Fit returns the largest size with the same aspect ratio as width and height
// that fits inside maxWidth and maxHeight. Neither dimension of the result is
// ever less than one.
func Fit(width, height, maxWidth, maxHeight int) (int, int) {
	if width <= 0 || height <= 0 || maxWidth <= 0 || maxHeight <= 0 {
		return 1, 1
	}

	w, h := maxWidth, height*maxWidth/width
	if h > maxHeight {
		w, h = width*maxHeight/height, maxHeight
	}

	return max(w, 1), max(h, 1)
}

// Scale returns a copy of the canvas resized to width and height. Pixels are
// not smoothed.
func Scale(cnv *compositor.Canvas, width, height int) *image.RGBA {
	src := cnv.RGBA()
	if width == cnv.Width && height == cnv.Height {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// ScaleBy resizes the canvas by the scaling factor.
func ScaleBy(cnv *compositor.Canvas, scale float64) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	w := max(int(float64(cnv.Width)*scale), 1)
	h := max(int(float64(cnv.Height)*scale), 1)
	return Scale(cnv, w, h)
}
