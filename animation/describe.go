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

package animation

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/animplayer/colour"
)

// Describe writes a summary of the animation to io.Writer. The summary is
// one line per frame. If swatches is true then the palette of each frame is
// also written, sixteen entries to a line.
func (anim *Animation) Describe(output io.Writer, swatches bool) error {
	w, h, err := anim.CanvasSize()
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s: %d frames, canvas %dx%d, loop duration %s\n", anim.Source, len(anim.Frames), w, h, anim.Duration())
	if anim.GlobalPalette != nil {
		fmt.Fprintf(output, "global palette: %d entries\n", len(anim.GlobalPalette)/3)
	}

	for i := range anim.Frames {
		frm := &anim.Frames[i]
		fmt.Fprintf(output, "%4d: %s, palette %d", i, frm, frm.PaletteLen())
		if frm.TransparentIndex != NoTransparency {
			fmt.Fprintf(output, ", transparent %d", frm.TransparentIndex)
		}
		fmt.Fprintln(output)

		if swatches {
			writeSwatches(output, frm.Palette)
		}
	}

	return nil
}

func writeSwatches(output io.Writer, palette []byte) {
	const perLine = 16

	s := strings.Builder{}
	for i := 0; i+2 < len(palette); i += 3 {
		c := colour.RGB{Red: palette[i], Green: palette[i+1], Blue: palette[i+2]}
		s.WriteString(c.String())
		if (i/3)%perLine == perLine-1 {
			s.WriteString("\n")
		} else {
			s.WriteString(" ")
		}
	}

	out := strings.TrimRight(s.String(), " \n")
	if out != "" {
		fmt.Fprintln(output, out)
	}
}
