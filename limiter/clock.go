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

package limiter

import "time"

// Clock is the source of time for the Timer type.
type Clock interface {
	Now() time.Time
	Sleep(time.Duration)
}

type realClock struct{}

func (_ realClock) Now() time.Time {
	return time.Now()
}

func (_ realClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// RealClock uses the time package of the standard library. Time readings are
// monotonic.
var RealClock Clock = realClock{}

// SimulatedClock is a Clock that only advances when Sleep() or Advance() are
// called. Sleeps can be made to overshoot with the Overshoot field.
type SimulatedClock struct {
	now time.Time

	// called on every Sleep(). the returned duration is added to the
	// requested duration
	Overshoot func(requested time.Duration) time.Duration
}

// NewSimulatedClock is the preferred method of initialisation for the
// SimulatedClock type.
func NewSimulatedClock(start time.Time) *SimulatedClock {
	return &SimulatedClock{now: start}
}

func (clk *SimulatedClock) Now() time.Time {
	return clk.now
}

func (clk *SimulatedClock) Sleep(d time.Duration) {
	if clk.Overshoot != nil {
		d += clk.Overshoot(d)
	}
	clk.now = clk.now.Add(d)
}

// Advance the clock without sleeping. Simulates work done between ticks.
func (clk *SimulatedClock) Advance(d time.Duration) {
	clk.now = clk.now.Add(d)
}
