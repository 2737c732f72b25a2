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

package gui_test

import (
	"image/color"
	"testing"

	"github.com/jetsetilly/animplayer/colour"
	"github.com/jetsetilly/animplayer/compositor"
	"github.com/jetsetilly/animplayer/gui"
	"github.com/jetsetilly/animplayer/test"
)

func TestFit(t *testing.T) {
	w, h := gui.Fit(100, 50, 80, 80)
	test.ExpectEquality(t, w, 80)
	test.ExpectEquality(t, h, 40)

	w, h = gui.Fit(50, 100, 80, 80)
	test.ExpectEquality(t, w, 40)
	test.ExpectEquality(t, h, 80)

	// upscaling is allowed
	w, h = gui.Fit(10, 10, 30, 40)
	test.ExpectEquality(t, w, 30)
	test.ExpectEquality(t, h, 30)

	w, h = gui.Fit(1000, 1, 10, 10)
	test.ExpectEquality(t, w, 10)
	test.ExpectEquality(t, h, 1)

	w, h = gui.Fit(0, 10, 10, 10)
	test.ExpectEquality(t, w, 1)
	test.ExpectEquality(t, h, 1)
}

func TestScale(t *testing.T) {
	cnv, err := compositor.NewCanvas(2, 1, colour.RGB{Red: 0xff})
	test.DemandSuccess(t, err)
	cnv.Pixels[1] = colour.Pack(0, 0, 0xff)

	img := gui.Scale(cnv, 2, 1)
	test.ExpectEquality(t, img.Bounds().Dx(), 2)

	img = gui.ScaleBy(cnv, 2)
	test.ExpectEquality(t, img.Bounds().Dx(), 4)
	test.ExpectEquality(t, img.Bounds().Dy(), 2)

	red := color.RGBA{R: 0xff, A: 0xff}
	blue := color.RGBA{B: 0xff, A: 0xff}
	test.ExpectEquality(t, img.RGBAAt(0, 0), red)
	test.ExpectEquality(t, img.RGBAAt(1, 1), red)
	test.ExpectEquality(t, img.RGBAAt(2, 0), blue)
	test.ExpectEquality(t, img.RGBAAt(3, 1), blue)
}
