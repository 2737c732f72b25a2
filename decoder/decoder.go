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

package decoder

import (
	"bufio"
	"image"
	"image/color"
	"image/gif"
	"io"
	"os"
	"path/filepath"

	"github.com/jetsetilly/animplayer/animation"
	"github.com/jetsetilly/animplayer/curated"
	"github.com/jetsetilly/animplayer/logger"
)

// Sentinal error patterns.
const (
	DecodeFailure = "decoder: %v"
	NotGIF        = "decoder: %s is not a GIF file"
	NoImages      = "decoder: %s contains no images"
)

// ReadPeeker is an io.Reader that can also peek ahead.
type ReadPeeker interface {
	io.Reader
	Peek(n int) ([]byte, error)
}

// AsReadPeeker converts an io.Reader to a ReadPeeker.
func AsReadPeeker(r io.Reader) ReadPeeker {
	if r, ok := r.(ReadPeeker); ok {
		return r
	}
	return bufio.NewReader(r)
}

// IsGIF returns whether the data in r begins with the GIF magic bytes. No
// data is consumed.
func IsGIF(r ReadPeeker) bool {
	const magic = "GIF8?a"

	b, err := r.Peek(len(magic))
	if err != nil || len(b) != len(magic) {
		return false
	}
	for i, c := range b {
		if magic[i] != c && magic[i] != '?' {
			return false
		}
	}
	return true
}

// DecodeFile opens and decodes the named file.
func DecodeFile(filename string) (*animation.Animation, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(DecodeFailure, err)
	}
	defer f.Close()

	return Decode(f, filepath.Base(filename))
}

// Decode the GIF data in r. The name is used in error messages and to
// identify the animation.
func Decode(r io.Reader, name string) (*animation.Animation, error) {
	rp := AsReadPeeker(r)
	if !IsGIF(rp) {
		return nil, curated.Errorf(DecodeFailure, curated.Errorf(NotGIF, name))
	}

	g, err := gif.DecodeAll(rp)
	if err != nil {
		return nil, curated.Errorf(DecodeFailure, err)
	}

	if len(g.Image) == 0 {
		return nil, curated.Errorf(DecodeFailure, curated.Errorf(NoImages, name))
	}

	anim := &animation.Animation{
		Source:    name,
		Frames:    make([]animation.Frame, 0, len(g.Image)),
		LoopCount: g.LoopCount,
	}

	if pal, ok := g.Config.ColorModel.(color.Palette); ok && len(pal) > 0 {
		anim.GlobalPalette, _ = flatten(pal)
	}

	for i, img := range g.Image {
		var delay int
		if i < len(g.Delay) {
			delay = g.Delay[i]
		}
		anim.Frames = append(anim.Frames, frame(img, delay))
	}

	logger.Logf(logger.Allow, "decoder", "%s: %d frames", name, len(anim.Frames))

	return anim, nil
}

// frame converts a paletted image to an animation frame. The pixel data is
// copied so that the frame does not share memory with the image.
func frame(img *image.Paletted, delay int) animation.Frame {
	r := img.Rect
	frm := animation.Frame{
		Left:   r.Min.X,
		Top:    r.Min.Y,
		Width:  r.Dx(),
		Height: r.Dy(),
		Delay:  delay,
		Pixels: make([]uint8, r.Dx()*r.Dy()),
	}

	for y := range frm.Height {
		o := img.PixOffset(r.Min.X, r.Min.Y+y)
		copy(frm.Pixels[y*frm.Width:(y+1)*frm.Width], img.Pix[o:o+frm.Width])
	}

	frm.Palette, frm.TransparentIndex = flatten(img.Palette)

	return frm
}

// flatten converts a colour palette to a list of interleaved red, green and
// blue bytes. The index of the first fully transparent entry is also returned,
// or animation.NoTransparency if there is no such entry.
func flatten(pal color.Palette) ([]byte, int) {
	flat := make([]byte, 0, len(pal)*3)
	transparent := animation.NoTransparency

	for i, c := range pal {
		r, g, b, a := c.RGBA()
		if a == 0 && transparent == animation.NoTransparency {
			transparent = i
		}
		flat = append(flat, uint8(r>>8), uint8(g>>8), uint8(b>>8))
	}

	return flat, transparent
}
