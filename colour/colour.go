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

package colour

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/animplayer/curated"
)

// RGB is a single 24-bit colour.
type RGB struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

// Pack red, green and blue components into a single word.
func Pack(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Unpack a packed colour. Bits above the blue/green/red channels are ignored.
func Unpack(c uint32) RGB {
	return RGB{
		Red:   uint8((c & 0x00ff0000) >> 16),
		Green: uint8((c & 0x0000ff00) >> 8),
		Blue:  uint8(c & 0x000000ff),
	}
}

// Grey returns the packed colour where each channel is equal to c.
func Grey(c uint8) uint32 {
	return Pack(c, c, c)
}

// Packed returns the colour as a packed word.
func (c RGB) Packed() uint32 {
	return Pack(c.Red, c.Green, c.Blue)
}

// BGR returns the colour packed with the red and blue channels swapped. Some
// surfaces expect pixels in this order.
func (c RGB) BGR() uint32 {
	return Pack(c.Blue, c.Green, c.Red)
}

// String implements the fmt.Stringer interface. The colour is shown as a
// swatch using 24-bit ANSI escape codes, followed by the channel values.
func (c RGB) String() string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m #%02x%02x%02x", c.Red, c.Green, c.Blue, c.Red, c.Green, c.Blue)
}

// AlphaBlend mixes overlay into background by the amount given by alpha. An
// alpha of zero returns background unchanged and an alpha of 255 returns the
// overlay. Each channel is truncated after blending.
func AlphaBlend(background RGB, alpha uint8, overlay RGB) uint32 {
	a := float64(alpha) / 255.0

	blend := func(bg, ov uint8) uint8 {
		return uint8(float64(bg) + (float64(ov)-float64(bg))*a)
	}

	return Pack(
		blend(background.Red, overlay.Red),
		blend(background.Green, overlay.Green),
		blend(background.Blue, overlay.Blue),
	)
}

// InvalidColour is returned by Parse() when the string cannot be interpreted.
const InvalidColour = "colour: invalid colour string (%s)"

// Parse a colour string. Accepted forms are RRGGBB, #RRGGBB and 0xRRGGBB.
func Parse(s string) (RGB, error) {
	v := strings.TrimSpace(s)
	v = strings.TrimPrefix(v, "#")
	if strings.HasPrefix(v, "0x") || strings.HasPrefix(v, "0X") {
		v = v[2:]
	}

	if len(v) != 6 {
		return RGB{}, curated.Errorf(InvalidColour, s)
	}

	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return RGB{}, curated.Errorf(InvalidColour, s)
	}

	return Unpack(uint32(n)), nil
}
