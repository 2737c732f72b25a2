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

package playback

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jetsetilly/animplayer/animation"
	"github.com/jetsetilly/animplayer/colour"
	"github.com/jetsetilly/animplayer/compositor"
	"github.com/jetsetilly/animplayer/curated"
	"github.com/jetsetilly/animplayer/limiter"
	"github.com/jetsetilly/animplayer/logger"
	"github.com/jetsetilly/animplayer/sequencer"
)

// FrameIndexOutOfRange is returned by Step() when the sequencer produces an
// index for which there is no frame.
const FrameIndexOutOfRange = "playback: frame index %d out of range (%d frames)"

// Config for a playback session.
type Config struct {
	// colour used for the initial canvas and for palette entries that the
	// source palette does not define
	Background colour.RGB

	Policy compositor.Policy

	// the number of ticks in each rate measurement window. zero uses the
	// limiter default
	Rate int

	// frames with a delay (in hundredths of a second) below MinDelay are
	// shown for MinDelay instead
	MinDelay int

	// play as quickly as possible. frame delays are ignored
	Uncapped bool

	// source of time for the frame timer. nil uses the real clock
	Clock limiter.Clock
}

// DefaultConfig is a black background with the default compositor policy.
var DefaultConfig = Config{
	Policy: compositor.DefaultPolicy,
}

// Loop is a single playback session. It is not safe for concurrent use.
type Loop struct {
	anim *animation.Animation
	cfg  Config

	// unique identifier for the session. used to distinguish log entries
	// when more than one session runs in the lifetime of the process
	Session string

	canvas *compositor.Canvas
	seq    *sequencer.Sequencer
	timer  *limiter.Timer

	// one palette per frame, filled when the loop is created
	palettes []compositor.Palette

	// number of frames presented
	ticks int
}

// NewLoop is the preferred method of initialisation for the Loop type.
func NewLoop(anim *animation.Animation, cfg Config) (*Loop, error) {
	w, h, err := anim.CanvasSize()
	if err != nil {
		return nil, err
	}

	lp := &Loop{
		anim:     anim,
		cfg:      cfg,
		Session:  uuid.New().String(),
		palettes: make([]compositor.Palette, len(anim.Frames)),
	}

	lp.canvas, err = compositor.NewCanvas(w, h, cfg.Background)
	if err != nil {
		return nil, err
	}

	lp.seq, err = sequencer.NewSequencer(len(anim.Frames))
	if err != nil {
		return nil, err
	}

	clk := cfg.Clock
	if clk == nil {
		clk = limiter.RealClock
	}
	lp.timer = limiter.NewTimer(clk, cfg.Rate)
	lp.timer.Active = !cfg.Uncapped

	for i := range anim.Frames {
		raw := anim.Frames[i].Palette
		if len(raw) == 0 {
			raw = anim.GlobalPalette
		}
		lp.palettes[i] = compositor.FillPalette(raw, cfg.Background)
	}

	lp.logf("new session for %s: canvas %dx%d, %d frames", anim.Source, w, h, len(anim.Frames))

	return lp, nil
}

func (lp *Loop) logf(format string, args ...any) {
	logger.Logf(logger.Allow, "playback", fmt.Sprintf("[%.8s] %s", lp.Session, format), args...)
}

// Canvas returns the canvas owned by the loop. The canvas should not be
// modified.
func (lp *Loop) Canvas() *compositor.Canvas {
	return lp.canvas
}

// Timer returns the frame timer used by the loop. Presenters can read the
// Measured field from any goroutine.
func (lp *Loop) Timer() *limiter.Timer {
	return lp.timer
}

// Ticks returns the number of frames that have been presented.
func (lp *Loop) Ticks() int {
	return lp.ticks
}

// Step merges the next frame onto the canvas. It does not present the canvas
// and it does not wait.
func (lp *Loop) Step() (*animation.Frame, error) {
	idx := lp.seq.Next()
	if idx < 0 || idx >= len(lp.anim.Frames) || idx >= len(lp.palettes) {
		return nil, curated.Errorf(FrameIndexOutOfRange, idx, len(lp.anim.Frames))
	}

	frm := &lp.anim.Frames[idx]
	err := compositor.Merge(lp.canvas, frm, &lp.palettes[idx], idx == 0, lp.cfg.Policy)
	if err != nil {
		return nil, curated.Errorf("playback: frame %d: %v", idx, err)
	}

	return frm, nil
}

// delay returns the display time of the frame after MinDelay has been
// applied.
func (lp *Loop) delay(frm *animation.Frame) time.Duration {
	d := frm.Delay
	if d < lp.cfg.MinDelay {
		d = lp.cfg.MinDelay
	}
	return time.Duration(d) * 10 * time.Millisecond
}

// Run the playback loop until the presenter returns Terminate or until an
// error occurs. Terminate is not an error and Run() returns nil in that case.
func (lp *Loop) Run(p Presenter) error {
	for {
		frm, err := lp.Step()
		if err != nil {
			lp.logf("%v", err)
			return err
		}

		sig, err := p.Present(lp.canvas)
		if err != nil {
			lp.logf("%v", err)
			return curated.Errorf("playback: %v", err)
		}
		lp.ticks++

		if sig == Terminate {
			lp.logf("terminated after %d frames (%s)", lp.ticks, lp.timer.OperatingTime().Round(time.Millisecond))
			return nil
		}

		lp.timer.SetInterval(lp.delay(frm))
		lp.timer.Wait()

		if rate, ok := lp.timer.Measure(); ok {
			lp.logf("%.2f frames per second", rate)
		}
	}
}
