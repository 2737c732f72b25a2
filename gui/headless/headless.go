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

// Package headless implements a presenter with no display. It is used for
// testing and for the PERFORMANCE mode, and can write the final canvas to a
// PNG file.
package headless

import (
	"image/png"
	"os"

	"github.com/jetsetilly/animplayer/compositor"
	"github.com/jetsetilly/animplayer/curated"
	"github.com/jetsetilly/animplayer/gui"
	"github.com/jetsetilly/animplayer/logger"
	"github.com/jetsetilly/animplayer/playback"
)

// ScreenshotFailure is returned by Present() if the PNG file could not be
// written.
const ScreenshotFailure = "headless: screenshot: %v"

// Headless implements the playback.Presenter interface.
type Headless struct {
	// the number of frames to present before terminating. zero means never
	// terminate
	Budget int

	// if Filename is not empty then the canvas is written as a PNG when the
	// budget is reached
	Filename string
	Scale    float64

	frames int
}

// NewHeadless is the preferred method of initialisation for the Headless type.
func NewHeadless(budget int) *Headless {
	return &Headless{
		Budget: budget,
		Scale:  1,
	}
}

// Frames returns the number of frames that have been presented.
func (hl *Headless) Frames() int {
	return hl.frames
}

// Present implements the playback.Presenter interface.
func (hl *Headless) Present(cnv *compositor.Canvas) (playback.Signal, error) {
	hl.frames++
	if hl.Budget > 0 && hl.frames >= hl.Budget {
		if hl.Filename != "" {
			if err := hl.Screenshot(cnv); err != nil {
				return playback.Terminate, err
			}
		}
		return playback.Terminate, nil
	}
	return playback.Continue, nil
}

// Screenshot writes the canvas to the PNG file named in the Filename field.
func (hl *Headless) Screenshot(cnv *compositor.Canvas) error {
	f, err := os.Create(hl.Filename)
	if err != nil {
		return curated.Errorf(ScreenshotFailure, err)
	}

	err = png.Encode(f, gui.ScaleBy(cnv, hl.Scale))
	if err != nil {
		f.Close()
		return curated.Errorf(ScreenshotFailure, err)
	}

	if err := f.Close(); err != nil {
		return curated.Errorf(ScreenshotFailure, err)
	}

	logger.Logf(logger.Allow, "headless", "screenshot saved to %s", hl.Filename)

	return nil
}
