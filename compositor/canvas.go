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

package compositor

import (
	"image"

	"github.com/jetsetilly/animplayer/colour"
	"github.com/jetsetilly/animplayer/curated"
)

// InvalidCanvas is returned by NewCanvas() if the canvas dimensions are not
// usable.
const InvalidCanvas = "compositor: invalid canvas size (%dx%d)"

// Canvas is the persistent image that frames are merged onto. Pixels are
// packed colours in row-major order.
type Canvas struct {
	Width  int
	Height int
	Pixels []uint32
}

// NewCanvas is the preferred method of initialisation for the Canvas type.
// Every pixel is set to the background colour.
func NewCanvas(width int, height int, background colour.RGB) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, curated.Errorf(InvalidCanvas, width, height)
	}

	cnv := &Canvas{
		Width:  width,
		Height: height,
		Pixels: make([]uint32, width*height),
	}
	cnv.Fill(background)

	return cnv, nil
}

// Bounds returns the canvas as a rectangle.
func (cnv *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, cnv.Width, cnv.Height)
}

// Fill every pixel with the specified colour.
func (cnv *Canvas) Fill(c colour.RGB) {
	p := c.Packed()
	for i := range cnv.Pixels {
		cnv.Pixels[i] = p
	}
}

// At returns the colour at the coordinates. Returns false if the coordinates
// are outside the canvas.
func (cnv *Canvas) At(x int, y int) (colour.RGB, bool) {
	if x < 0 || y < 0 || x >= cnv.Width || y >= cnv.Height {
		return colour.RGB{}, false
	}
	return colour.Unpack(cnv.Pixels[y*cnv.Width+x]), true
}

// RGBA returns a copy of the canvas as an image.RGBA. Alpha is always opaque.
func (cnv *Canvas) RGBA() *image.RGBA {
	img := image.NewRGBA(cnv.Bounds())
	cnv.CopyRGBA(img.Pix)
	return img
}

// CopyRGBA copies the canvas into a byte slice with four bytes per pixel, in
// the order red, green, blue, alpha. The destination must be large enough for
// the entire canvas.
func (cnv *Canvas) CopyRGBA(dest []byte) {
	for i, p := range cnv.Pixels {
		o := i * 4
		dest[o] = uint8(p >> 16)
		dest[o+1] = uint8(p >> 8)
		dest[o+2] = uint8(p)
		dest[o+3] = 0xff
	}
}
