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
	"time"

	"github.com/jetsetilly/animplayer/curated"
)

// NoTransparency is the value of Frame.TransparentIndex when the source image
// does not declare a transparent palette entry for the frame.
const NoTransparency = -1

// Frame is a single still image in the animation.
type Frame struct {
	Width  int
	Height int

	// placement of the frame on the canvas
	Top  int
	Left int

	// display time in hundredths of a second
	Delay int

	// one palette index per pixel in row-major order. length is always
	// Width * Height
	Pixels []uint8

	// flat list of interleaved red, green and blue values. three bytes per
	// palette entry
	Palette []byte

	// the palette index declared by the source as being transparent or
	// NoTransparency
	TransparentIndex int
}

// DelayDuration returns the frame delay as a time.Duration.
func (frm *Frame) DelayDuration() time.Duration {
	return time.Duration(frm.Delay) * 10 * time.Millisecond
}

// PaletteLen returns the number of complete entries in the frame palette.
func (frm *Frame) PaletteLen() int {
	return len(frm.Palette) / 3
}

func (frm *Frame) String() string {
	return fmt.Sprintf("%dx%d at (%d,%d) delay %s", frm.Width, frm.Height, frm.Left, frm.Top, frm.DelayDuration())
}

// NoFrames is returned by Animation.CanvasSize() when there are no frames to
// measure.
const NoFrames = "animation: no frames in %s"

// Animation is the ordered sequence of frames.
type Animation struct {
	// name of the source. usually a filename
	Source string

	Frames []Frame

	// the global palette is nil if the source does not have one. frames always
	// have a palette of their own, even if it is a copy of the global palette
	GlobalPalette []byte

	// the number of times the source says the animation should loop. zero
	// means loop forever. informational only
	LoopCount int
}

// CanvasSize returns the size of the smallest canvas that contains every
// frame in the animation.
func (anim *Animation) CanvasSize() (width int, height int, err error) {
	if len(anim.Frames) == 0 {
		return 0, 0, curated.Errorf(NoFrames, anim.Source)
	}

	for i := range anim.Frames {
		frm := &anim.Frames[i]
		width = max(width, frm.Left+frm.Width)
		height = max(height, frm.Top+frm.Height)
	}

	return width, height, nil
}

// Duration returns the total display time of one loop of the animation.
func (anim *Animation) Duration() time.Duration {
	var d time.Duration
	for i := range anim.Frames {
		d += anim.Frames[i].DelayDuration()
	}
	return d
}
