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


// Package digest produces a cryptographic hash of everything presented
// during playback. The hash can be used to compare the output of one playback
// session with another. If a new hash differs from a previously recorded
// value then something has changed in the decoding or compositing of the
// animation.
package digest

// Digest implementations return a cryptographic hash of the output seen so
// far.
type Digest interface {
	Hash() string
	ResetDigest()
}
