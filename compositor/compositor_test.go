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

package compositor_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jetsetilly/animplayer/animation"
	"github.com/jetsetilly/animplayer/colour"
	"github.com/jetsetilly/animplayer/compositor"
	"github.com/jetsetilly/animplayer/curated"
	"github.com/jetsetilly/animplayer/test"
)

var white = colour.RGB{Red: 0xff, Green: 0xff, Blue: 0xff}
var red = colour.RGB{Red: 0xff}
var blue = colour.RGB{Blue: 0xff}

// rawPalette is black, red, blue
var rawPalette = []byte{0, 0, 0, 255, 0, 0, 0, 0, 255}

func TestFillPalette(t *testing.T) {
	pal := compositor.FillPalette(rawPalette, white)
	test.ExpectEquality(t, pal.Resolved, 3)
	test.ExpectEquality(t, pal.Entries[0], uint32(0x000000))
	test.ExpectEquality(t, pal.Entries[1], red.Packed())
	test.ExpectEquality(t, pal.Entries[2], blue.Packed())
	for i := 3; i < compositor.PaletteSize; i++ {
		test.ExpectEquality(t, pal.Entries[i], white.Packed(), i)
	}
}

func TestFillPaletteLimits(t *testing.T) {
	// incomplete triple at the end is ignored
	pal := compositor.FillPalette([]byte{1, 2, 3, 4, 5}, white)
	test.ExpectEquality(t, pal.Resolved, 1)
	test.ExpectEquality(t, pal.Entries[1], white.Packed())

	// no more than 256 entries
	raw := make([]byte, 300*3)
	for i := range raw {
		raw[i] = uint8(i / 3)
	}
	pal = compositor.FillPalette(raw, white)
	test.ExpectEquality(t, pal.Resolved, compositor.PaletteSize)
	test.ExpectEquality(t, pal.Entries[255], colour.Grey(255))

	// empty palette
	pal = compositor.FillPalette(nil, red)
	test.ExpectEquality(t, pal.Resolved, 0)
	test.ExpectEquality(t, pal.Entries[0], red.Packed())
}

func TestCanvas(t *testing.T) {
	_, err := compositor.NewCanvas(0, 10, white)
	test.ExpectSuccess(t, curated.Is(err, compositor.InvalidCanvas))

	cnv, err := compositor.NewCanvas(3, 2, blue)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(cnv.Pixels), 6)

	c, ok := cnv.At(2, 1)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, blue)

	_, ok = cnv.At(3, 0)
	test.ExpectFailure(t, ok)

	img := cnv.RGBA()
	test.ExpectEquality(t, img.Bounds(), cnv.Bounds())
	test.ExpectEquality(t, img.Pix[0], uint8(0))
	test.ExpectEquality(t, img.Pix[2], uint8(0xff))
	test.ExpectEquality(t, img.Pix[3], uint8(0xff))
}

// frame of the specified size with every pixel set to idx
func solidFrame(w, h, left, top int, idx uint8) *animation.Frame {
	frm := &animation.Frame{
		Width:            w,
		Height:           h,
		Left:             left,
		Top:              top,
		Pixels:           make([]uint8, w*h),
		Palette:          rawPalette,
		TransparentIndex: animation.NoTransparency,
	}
	for i := range frm.Pixels {
		frm.Pixels[i] = idx
	}
	return frm
}

func TestFirstFrameWritesEverything(t *testing.T) {
	cnv, err := compositor.NewCanvas(4, 4, white)
	test.DemandSuccess(t, err)

	// index zero on the first frame is written like any other index
	frm := solidFrame(4, 4, 0, 0, 0)
	pal := compositor.FillPalette(frm.Palette, white)
	err = compositor.Merge(cnv, frm, &pal, true, compositor.DefaultPolicy)
	test.DemandSuccess(t, err)

	for i, p := range cnv.Pixels {
		test.ExpectEquality(t, p, uint32(0), i)
	}
}

func TestSentinelTransparency(t *testing.T) {
	cnv, err := compositor.NewCanvas(3, 1, white)
	test.DemandSuccess(t, err)

	frm := &animation.Frame{Width: 3, Height: 1, Pixels: []uint8{0, 1, 2}, Palette: rawPalette, TransparentIndex: 2}
	pal := compositor.FillPalette(frm.Palette, white)
	err = compositor.Merge(cnv, frm, &pal, false, compositor.DefaultPolicy)
	test.DemandSuccess(t, err)

	// index zero is skipped. the declared transparent index is ignored by the
	// sentinel policy
	want := []uint32{white.Packed(), red.Packed(), blue.Packed()}
	if diff := cmp.Diff(want, cnv.Pixels); diff != "" {
		t.Errorf("canvas mismatch (-want +got):\n%s", diff)
	}
}

func TestFrameTransparency(t *testing.T) {
	cnv, err := compositor.NewCanvas(3, 1, white)
	test.DemandSuccess(t, err)

	pol := compositor.DefaultPolicy
	pol.Transparency = compositor.FrameTransparency

	frm := &animation.Frame{Width: 3, Height: 1, Pixels: []uint8{0, 1, 2}, Palette: rawPalette, TransparentIndex: 2}
	pal := compositor.FillPalette(frm.Palette, white)
	err = compositor.Merge(cnv, frm, &pal, false, pol)
	test.DemandSuccess(t, err)

	want := []uint32{0, red.Packed(), white.Packed()}
	if diff := cmp.Diff(want, cnv.Pixels); diff != "" {
		t.Errorf("canvas mismatch (-want +got):\n%s", diff)
	}

	// a frame with no declared index is fully opaque
	frm.TransparentIndex = animation.NoTransparency
	frm.Pixels = []uint8{2, 2, 2}
	err = compositor.Merge(cnv, frm, &pal, false, pol)
	test.DemandSuccess(t, err)
	for i, p := range cnv.Pixels {
		test.ExpectEquality(t, p, blue.Packed(), i)
	}
}

func TestOffsetPlacement(t *testing.T) {
	cnv, err := compositor.NewCanvas(4, 3, white)
	test.DemandSuccess(t, err)

	frm := solidFrame(2, 1, 1, 2, 1)
	pal := compositor.FillPalette(frm.Palette, white)
	err = compositor.Merge(cnv, frm, &pal, false, compositor.DefaultPolicy)
	test.DemandSuccess(t, err)

	for y := range 3 {
		for x := range 4 {
			c, _ := cnv.At(x, y)
			if y == 2 && (x == 1 || x == 2) {
				test.ExpectEquality(t, c, red, x, y)
			} else {
				test.ExpectEquality(t, c, white, x, y)
			}
		}
	}
}

func TestBoundsViolation(t *testing.T) {
	cnv, err := compositor.NewCanvas(4, 4, white)
	test.DemandSuccess(t, err)
	before := append([]uint32(nil), cnv.Pixels...)

	for _, frm := range []*animation.Frame{
		solidFrame(4, 4, 1, 0, 1),
		solidFrame(4, 4, 0, 1, 1),
		solidFrame(5, 1, 0, 0, 1),
		solidFrame(1, 1, -1, 0, 1),

		// zero width frames still have a position that must be on the canvas
		{Width: 0, Height: 1, Left: 10, Palette: rawPalette},
		{Width: 0, Height: 5, Palette: rawPalette},
	} {
		pal := compositor.FillPalette(frm.Palette, white)
		err = compositor.Merge(cnv, frm, &pal, true, compositor.DefaultPolicy)
		test.ExpectSuccess(t, curated.Is(err, compositor.CompositeBoundsViolation), frm)
	}

	// pixel buffer does not match dimensions
	frm := solidFrame(2, 2, 0, 0, 1)
	frm.Pixels = frm.Pixels[:3]
	pal := compositor.FillPalette(frm.Palette, white)
	err = compositor.Merge(cnv, frm, &pal, true, compositor.DefaultPolicy)
	test.ExpectSuccess(t, curated.Is(err, compositor.PixelCountMismatch))

	// an empty frame on the canvas is not an error
	frm = &animation.Frame{Width: 0, Height: 4, Left: 4, Palette: rawPalette}
	pal = compositor.FillPalette(frm.Palette, white)
	err = compositor.Merge(cnv, frm, &pal, true, compositor.DefaultPolicy)
	test.ExpectSuccess(t, err)

	// nothing was written
	if diff := cmp.Diff(before, cnv.Pixels); diff != "" {
		t.Errorf("canvas changed by rejected merge (-want +got):\n%s", diff)
	}
}

func TestPaletteIndexOutOfRange(t *testing.T) {
	cnv, err := compositor.NewCanvas(2, 1, white)
	test.DemandSuccess(t, err)

	// index 5 is beyond the three entries in the palette. the first pixel is
	// valid but must not be written because the merge is rejected as a whole
	frm := &animation.Frame{Width: 2, Height: 1, Pixels: []uint8{1, 5}, Palette: rawPalette}
	pal := compositor.FillPalette(frm.Palette, white)
	err = compositor.Merge(cnv, frm, &pal, true, compositor.DefaultPolicy)
	test.ExpectSuccess(t, curated.Is(err, compositor.PaletteIndexOutOfRange))
	test.ExpectEquality(t, err.Error(), "compositor: palette index 5 at (1,0) is beyond palette length 3")
	test.ExpectEquality(t, cnv.Pixels[0], white.Packed())

	// relaxed policy writes the background fill colour for unresolved entries
	pol := compositor.DefaultPolicy
	pol.Strict = false
	cnv.Fill(blue)
	err = compositor.Merge(cnv, frm, &pal, true, pol)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cnv.Pixels[0], red.Packed())
	test.ExpectEquality(t, cnv.Pixels[1], white.Packed())
}

func TestKeyBackground(t *testing.T) {
	cnv, err := compositor.NewCanvas(2, 1, blue)
	test.DemandSuccess(t, err)

	pol := compositor.DefaultPolicy
	pol.KeyBackground = true
	pol.Background = red
	pol.KeyAlpha = 0

	// with an alpha of zero the keyed colour leaves the canvas unchanged. the
	// black pixel is not keyed and is written
	frm := &animation.Frame{Width: 2, Height: 1, Pixels: []uint8{1, 0}, Palette: rawPalette}
	pal := compositor.FillPalette(frm.Palette, white)
	err = compositor.Merge(cnv, frm, &pal, true, pol)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cnv.Pixels[0], blue.Packed())
	test.ExpectEquality(t, cnv.Pixels[1], uint32(0))

	// full alpha writes the keyed colour
	pol.KeyAlpha = 255
	err = compositor.Merge(cnv, frm, &pal, true, pol)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cnv.Pixels[0], red.Packed())
}

func TestParseTransparency(t *testing.T) {
	tr, err := compositor.ParseTransparency("frame")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tr, compositor.FrameTransparency)

	tr, err = compositor.ParseTransparency("SENTINEL")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tr, compositor.SentinelTransparency)
	test.ExpectEquality(t, tr.String(), "SENTINEL")

	_, err = compositor.ParseTransparency("alpha")
	test.ExpectSuccess(t, curated.Is(err, compositor.UnknownTransparency))
}
