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


package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/animplayer/animation"
	"github.com/jetsetilly/animplayer/compositor"
	"github.com/jetsetilly/animplayer/curated"
	"github.com/jetsetilly/animplayer/limiter"
	"github.com/jetsetilly/animplayer/playback"
)

// Leadtime is the amount of time the animation plays for before measurement
// begins.
const Leadtime = 2 * time.Second

// Options for the Check() function.
type Options struct {
	// measurement period, not including the leadtime
	Duration time.Duration
	Leadtime time.Duration

	Profile Profile
}

// measurement implements the playback.Presenter interface. it does nothing
// with the canvas except count the number of times it has been presented
type measurement struct {
	clk      limiter.Clock
	opts     Options
	begin    time.Time
	start    time.Time
	end      time.Time
	started  bool
	frames   int
	presents int
}

func (m *measurement) Present(_ *compositor.Canvas) (playback.Signal, error) {
	now := m.clk.Now()

	if m.presents == 0 {
		m.begin = now
	}
	m.presents++

	if !m.started {
		if now.Sub(m.begin) < m.opts.Leadtime {
			return playback.Continue, nil
		}
		m.started = true
		m.start = now
		return playback.Continue, nil
	}

	m.frames++
	if now.Sub(m.start) >= m.opts.Duration {
		m.end = now
		return playback.Terminate, nil
	}

	return playback.Continue, nil
}

// Check the playback performance of the animation. Playback runs for the
// duration specified in the options, the result is written to output.
//
// Unless the Uncapped field of the configuration is set, the result will be
// limited by the frame delays in the animation.
func Check(output io.Writer, anim *animation.Animation, cfg playback.Config, opts Options) error {
	if cfg.Clock == nil {
		cfg.Clock = limiter.RealClock
	}

	lp, err := playback.NewLoop(anim, cfg)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	m := &measurement{
		clk:  cfg.Clock,
		opts: opts,
	}

	err = RunProfiler(opts.Profile, anim.Source, func() error {
		return lp.Run(m)
	})
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	elapsed := m.end.Sub(m.start).Seconds()
	fps, speedup := CalcFPS(anim, m.frames, elapsed)
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1fx\n", fps, m.frames, elapsed, speedup)

	return nil
}
