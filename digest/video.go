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


package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/animplayer/compositor"
	"github.com/jetsetilly/animplayer/playback"
)

// Video implements the playback.Presenter interface. Every canvas presented
// is added to a chained hash. The order of the frames therefore affects the
// hash as well as the content.
//
// If a Presenter is embedded then the canvas is passed to it after the hash
// has been updated and its Signal is returned. Otherwise Present() always
// returns Continue.
type Video struct {
	playback.Presenter

	digest [sha1.Size]byte

	// the previous digest followed by the canvas dimensions and pixels
	pixels []byte

	frames int
}

// the canvas width and height are included in the hash
const dimensionsLen = 8

// NewVideo is the preferred method of initialisation for the Video type. The
// presenter argument can be nil.
func NewVideo(p playback.Presenter) *Video {
	return &Video{Presenter: p}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	dig.frames = 0
}

// Frames returns the number of frames added to the digest since the last
// reset.
func (dig *Video) Frames() int {
	return dig.frames
}

// Present implements the playback.Presenter interface.
func (dig *Video) Present(cnv *compositor.Canvas) (playback.Signal, error) {
	l := len(dig.digest) + dimensionsLen + len(cnv.Pixels)*3
	if len(dig.pixels) != l {
		dig.pixels = make([]byte, l)
	}

	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the data
	i := copy(dig.pixels, dig.digest[:])

	binary.BigEndian.PutUint32(dig.pixels[i:], uint32(cnv.Width))
	binary.BigEndian.PutUint32(dig.pixels[i+4:], uint32(cnv.Height))
	i += dimensionsLen

	for _, p := range cnv.Pixels {
		dig.pixels[i] = byte(p >> 16)
		dig.pixels[i+1] = byte(p >> 8)
		dig.pixels[i+2] = byte(p)
		i += 3
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frames++

	if dig.Presenter == nil {
		return playback.Continue, nil
	}
	return dig.Presenter.Present(cnv)
}
