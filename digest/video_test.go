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


package digest_test

import (
	"testing"

	"github.com/jetsetilly/animplayer/animation"
	"github.com/jetsetilly/animplayer/colour"
	"github.com/jetsetilly/animplayer/compositor"
	"github.com/jetsetilly/animplayer/digest"
	"github.com/jetsetilly/animplayer/gui/headless"
	"github.com/jetsetilly/animplayer/limiter"
	"github.com/jetsetilly/animplayer/playback"
	"github.com/jetsetilly/animplayer/test"
)

func twoFrames() *animation.Animation {
	pal := []byte{0, 0, 0, 0xff, 0, 0, 0, 0, 0xff}
	return &animation.Animation{
		Source: "test",
		Frames: []animation.Frame{
			{Width: 2, Height: 2, Delay: 1, Pixels: []byte{1, 1, 1, 1}, Palette: pal, TransparentIndex: animation.NoTransparency},
			{Width: 1, Height: 1, Left: 1, Top: 1, Delay: 1, Pixels: []byte{2}, Palette: pal, TransparentIndex: animation.NoTransparency},
		},
	}
}

func run(t *testing.T, bg colour.RGB, budget int) string {
	t.Helper()

	cfg := playback.DefaultConfig
	cfg.Background = bg
	cfg.Clock = limiter.NewSimulatedClock(limiter.RealClock.Now())

	lp, err := playback.NewLoop(twoFrames(), cfg)
	test.DemandSuccess(t, err)

	dig := digest.NewVideo(headless.NewHeadless(budget))
	err = lp.Run(dig)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dig.Frames(), budget)

	return dig.Hash()
}

func TestVideoRepeatable(t *testing.T) {
	a := run(t, colour.RGB{}, 5)
	b := run(t, colour.RGB{}, 5)
	test.ExpectEquality(t, a, b)
	test.ExpectEquality(t, len(a), 40)

	// more frames changes the chained hash even though the canvas is the same
	c := run(t, colour.RGB{}, 6)
	test.ExpectInequality(t, a, c)
}

func TestVideoContent(t *testing.T) {
	cnv, err := compositor.NewCanvas(2, 2, colour.RGB{})
	test.DemandSuccess(t, err)

	a := digest.NewVideo(nil)
	sig, err := a.Present(cnv)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, sig, playback.Continue)

	cnv.Fill(colour.RGB{Red: 1})
	b := digest.NewVideo(nil)
	_, err = b.Present(cnv)
	test.ExpectSuccess(t, err)
	test.ExpectInequality(t, a.Hash(), b.Hash())

	// same pixel count but different dimensions
	wide, err := compositor.NewCanvas(4, 1, colour.RGB{})
	test.DemandSuccess(t, err)
	c := digest.NewVideo(nil)
	_, err = c.Present(wide)
	test.ExpectSuccess(t, err)
	test.ExpectInequality(t, a.Hash(), c.Hash())
}

func TestVideoReset(t *testing.T) {
	cnv, err := compositor.NewCanvas(1, 1, colour.RGB{})
	test.DemandSuccess(t, err)

	dig := digest.NewVideo(nil)
	_, _ = dig.Present(cnv)
	first := dig.Hash()
	_, _ = dig.Present(cnv)
	test.ExpectInequality(t, dig.Hash(), first)

	dig.ResetDigest()
	test.ExpectEquality(t, dig.Frames(), 0)
	_, _ = dig.Present(cnv)
	test.ExpectEquality(t, dig.Hash(), first)
}
