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

import "github.com/jetsetilly/animplayer/colour"

// PaletteSize is the number of entries in every Palette.
const PaletteSize = 256

// Palette is a lookup table of packed colours. Entries that were not resolved
// from the source palette contain the background colour that was given to
// FillPalette().
type Palette struct {
	Entries [PaletteSize]uint32

	// the number of entries resolved from the source palette
	Resolved int
}

// FillPalette unpacks a flat list of red, green and blue values. At most 256
// entries are unpacked and an incomplete triple at the end of the list is
// ignored.
func FillPalette(raw []byte, background colour.RGB) Palette {
	var pal Palette

	bg := background.Packed()
	for i := range pal.Entries {
		pal.Entries[i] = bg
	}

	for i := 0; i+2 < len(raw) && pal.Resolved < PaletteSize; i += 3 {
		pal.Entries[pal.Resolved] = colour.Pack(raw[i], raw[i+1], raw[i+2])
		pal.Resolved++
	}

	return pal
}
