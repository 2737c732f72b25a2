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

// Package colour contains the numeric primitives for 24-bit RGB colour. Colours
// are passed around either as the RGB type or packed into a uint32 with the
// red channel in bits 16-23, green in bits 8-15 and blue in bits 0-7.
//
// The functions in this package are stateless and cannot fail, with the
// exception of Parse() which deals with user supplied strings.
package colour
