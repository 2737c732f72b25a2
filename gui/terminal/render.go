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

package terminal

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"
)

const upperHalfBlock = "▀"

// Render writes the image to the output as rows of half block characters. Two
// rows of pixels are written for every line of text. If the image has an odd
// number of rows the final line shows the terminal background in the lower
// half.
func Render(output io.Writer, img *image.RGBA) error {
	b := img.Bounds()

	s := strings.Builder{}
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		var fg, bg color.RGBA
		var fgOk, bgOk bool

		for x := b.Min.X; x < b.Max.X; x++ {
			top := img.RGBAAt(x, y)
			if !fgOk || top != fg {
				fmt.Fprintf(&s, "\x1b[38;2;%d;%d;%dm", top.R, top.G, top.B)
				fg, fgOk = top, true
			}

			if y+1 < b.Max.Y {
				bot := img.RGBAAt(x, y+1)
				if !bgOk || bot != bg {
					fmt.Fprintf(&s, "\x1b[48;2;%d;%d;%dm", bot.R, bot.G, bot.B)
					bg, bgOk = bot, true
				}
			} else if x == b.Min.X {
				s.WriteString("\x1b[49m")
			}

			s.WriteString(upperHalfBlock)
		}
		s.WriteString("\x1b[0m\n")
	}

	_, err := io.WriteString(output, s.String())
	return err
}
