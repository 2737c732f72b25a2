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

package decoder_test

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jetsetilly/animplayer/animation"
	"github.com/jetsetilly/animplayer/curated"
	"github.com/jetsetilly/animplayer/decoder"
	"github.com/jetsetilly/animplayer/test"
)

// two frames. the second frame is placed in the bottom right corner of the
// first and uses a palette with a transparent entry
func encodeTestGIF(t *testing.T) []byte {
	t.Helper()

	opaque := color.Palette{
		color.RGBA{R: 0xff, A: 0xff},
		color.RGBA{G: 0xff, A: 0xff},
	}
	withTransparent := color.Palette{
		color.RGBA{},
		color.RGBA{B: 0xff, A: 0xff},
	}

	first := image.NewPaletted(image.Rect(0, 0, 3, 2), opaque)
	first.Pix = []uint8{0, 1, 0, 1, 0, 1}

	second := image.NewPaletted(image.Rect(1, 1, 3, 2), withTransparent)
	second.Pix = []uint8{0, 1}

	var buf bytes.Buffer
	err := gif.EncodeAll(&buf, &gif.GIF{
		Image:     []*image.Paletted{first, second},
		Delay:     []int{10, 25},
		LoopCount: 0,
	})
	test.DemandSuccess(t, err)

	return buf.Bytes()
}

func TestIsGIF(t *testing.T) {
	data := encodeTestGIF(t)

	rp := decoder.AsReadPeeker(bytes.NewReader(data))
	test.ExpectSuccess(t, decoder.IsGIF(rp))

	// peeking must not consume the magic bytes
	_, err := gif.DecodeAll(rp)
	test.ExpectSuccess(t, err)

	test.ExpectFailure(t, decoder.IsGIF(decoder.AsReadPeeker(strings.NewReader("GIF8"))))
	test.ExpectFailure(t, decoder.IsGIF(decoder.AsReadPeeker(strings.NewReader("\x89PNG\r\n\x1a\n"))))
	test.ExpectSuccess(t, decoder.IsGIF(decoder.AsReadPeeker(strings.NewReader("GIF87a"))))
}

func TestDecode(t *testing.T) {
	anim, err := decoder.Decode(bytes.NewReader(encodeTestGIF(t)), "test.gif")
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, anim.Source, "test.gif")
	test.ExpectEquality(t, anim.LoopCount, 0)
	test.DemandEquality(t, len(anim.Frames), 2)

	// no global palette was encoded
	test.ExpectEquality(t, len(anim.GlobalPalette), 0)

	w, h, err := anim.CanvasSize()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, 3)
	test.ExpectEquality(t, h, 2)

	frm := anim.Frames[0]
	test.ExpectEquality(t, frm.Width, 3)
	test.ExpectEquality(t, frm.Height, 2)
	test.ExpectEquality(t, frm.Delay, 10)
	test.ExpectEquality(t, frm.TransparentIndex, animation.NoTransparency)
	if diff := cmp.Diff([]uint8{0, 1, 0, 1, 0, 1}, frm.Pixels); diff != "" {
		t.Errorf("pixel mismatch (-want +got):\n%s", diff)
	}

	// palettes are stored with a power of two number of entries
	if diff := cmp.Diff([]byte{0xff, 0, 0, 0, 0xff, 0}, frm.Palette[:6]); diff != "" {
		t.Errorf("palette mismatch (-want +got):\n%s", diff)
	}

	frm = anim.Frames[1]
	test.ExpectEquality(t, frm.Left, 1)
	test.ExpectEquality(t, frm.Top, 1)
	test.ExpectEquality(t, frm.Width, 2)
	test.ExpectEquality(t, frm.Height, 1)
	test.ExpectEquality(t, frm.Delay, 25)
	test.ExpectEquality(t, frm.TransparentIndex, 0)
	if diff := cmp.Diff([]uint8{0, 1}, frm.Pixels); diff != "" {
		t.Errorf("pixel mismatch (-want +got):\n%s", diff)
	}
	test.ExpectEquality(t, frm.Palette[5], uint8(0xff))

	test.ExpectEquality(t, anim.Duration().Milliseconds(), int64(350))
}

func TestDecodeFailures(t *testing.T) {
	_, err := decoder.Decode(strings.NewReader("not a gif"), "bad.gif")
	test.ExpectSuccess(t, curated.Is(err, decoder.DecodeFailure))
	test.ExpectSuccess(t, curated.Has(err, decoder.NotGIF))
	test.ExpectEquality(t, err.Error(), "decoder: bad.gif is not a GIF file")

	// truncated data
	data := encodeTestGIF(t)
	_, err = decoder.Decode(bytes.NewReader(data[:len(data)/2]), "short.gif")
	test.ExpectSuccess(t, curated.Is(err, decoder.DecodeFailure))

	_, err = decoder.DecodeFile(filepath.Join(t.TempDir(), "missing.gif"))
	test.ExpectSuccess(t, curated.Is(err, decoder.DecodeFailure))
}

func TestDecodeFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "anim.gif")
	err := os.WriteFile(fn, encodeTestGIF(t), 0o644)
	test.DemandSuccess(t, err)

	anim, err := decoder.DecodeFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, anim.Source, "anim.gif")
	test.ExpectEquality(t, len(anim.Frames), 2)
}
