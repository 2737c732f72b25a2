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
	"fmt"
	"image"
	"strings"

	"github.com/jetsetilly/animplayer/animation"
	"github.com/jetsetilly/animplayer/colour"
	"github.com/jetsetilly/animplayer/curated"
)

// Transparency selects how the transparent index of a frame is chosen.
type Transparency int

// List of valid Transparency values.
const (
	// palette index zero is transparent in every frame except the first
	SentinelTransparency Transparency = iota

	// the index declared by the frame is transparent in every frame except the
	// first. frames that declare no index are opaque
	FrameTransparency
)

func (tr Transparency) String() string {
	switch tr {
	case SentinelTransparency:
		return "SENTINEL"
	case FrameTransparency:
		return "FRAME"
	}
	return fmt.Sprintf("transparency (%d)", int(tr))
}

// UnknownTransparency is returned by ParseTransparency() for strings that do
// not name a Transparency value.
const UnknownTransparency = "compositor: unknown transparency policy (%s)"

// ParseTransparency returns the Transparency value named by s.
func ParseTransparency(s string) (Transparency, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SENTINEL":
		return SentinelTransparency, nil
	case "FRAME":
		return FrameTransparency, nil
	}
	return SentinelTransparency, curated.Errorf(UnknownTransparency, s)
}

// Policy controls the behaviour of Merge().
type Policy struct {
	Transparency Transparency

	// reject frames that use palette indexes beyond the resolved length of the
	// palette. when false, such pixels are written with the background colour
	// that was used to fill the palette
	Strict bool

	// when KeyBackground is true, palette colours equal to Background are not
	// written as they are but are blended with the existing canvas pixel by
	// the amount in KeyAlpha
	KeyBackground bool
	Background    colour.RGB
	KeyAlpha      uint8
}

// DefaultPolicy is a strict policy with sentinel transparency.
var DefaultPolicy = Policy{
	Transparency: SentinelTransparency,
	Strict:       true,
}

// Error patterns returned by Merge().
const (
	CompositeBoundsViolation = "compositor: frame %v does not fit on canvas %v"
	PixelCountMismatch       = "compositor: frame has %d pixels but dimensions require %d"
	PaletteIndexOutOfRange   = "compositor: palette index %d at (%d,%d) is beyond palette length %d"
)

// Merge frame onto the canvas using the specified palette. If first is true
// then every pixel in the frame is written, regardless of transparency.
//
// The canvas is not changed if an error is returned.
func Merge(cnv *Canvas, frm *animation.Frame, pal *Palette, first bool, pol Policy) error {
	// edges are checked individually because an empty rectangle is inside
	// every other rectangle
	if frm.Left < 0 || frm.Top < 0 || frm.Width < 0 || frm.Height < 0 ||
		frm.Left+frm.Width > cnv.Width || frm.Top+frm.Height > cnv.Height {
		r := image.Rect(frm.Left, frm.Top, frm.Left+frm.Width, frm.Top+frm.Height)
		return curated.Errorf(CompositeBoundsViolation, r, cnv.Bounds())
	}

	if len(frm.Pixels) != frm.Width*frm.Height {
		return curated.Errorf(PixelCountMismatch, len(frm.Pixels), frm.Width*frm.Height)
	}

	if pol.Strict {
		for i, idx := range frm.Pixels {
			if int(idx) >= pal.Resolved {
				return curated.Errorf(PaletteIndexOutOfRange, idx, i%frm.Width, i/frm.Width, pal.Resolved)
			}
		}
	}

	transparent := -1
	if !first {
		switch pol.Transparency {
		case SentinelTransparency:
			transparent = 0
		case FrameTransparency:
			transparent = frm.TransparentIndex
		}
	}

	key := pol.Background.Packed()

	for y := 0; y < frm.Height; y++ {
		src := frm.Pixels[y*frm.Width : (y+1)*frm.Width]
		dst := cnv.Pixels[(frm.Top+y)*cnv.Width+frm.Left:]

		for x, idx := range src {
			if int(idx) == transparent {
				continue
			}

			c := pal.Entries[idx]
			if pol.KeyBackground && c == key {
				c = colour.AlphaBlend(colour.Unpack(dst[x]), pol.KeyAlpha, colour.Unpack(c))
			}

			dst[x] = c
		}
	}

	return nil
}
