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

import (
	"sync/atomic"
	"time"
)

// DefaultRate is used when NewTimer() is given a rate of zero or less.
const DefaultRate = 30

// Timer waits for the next tick of a schedule. It is not safe for concurrent
// use except for the Measured field.
type Timer struct {
	// whether to wait in calls to Wait(). ticks are recorded and measured
	// regardless
	Active bool

	// the measured number of ticks per second. updated every time the
	// measurement window closes
	Measured atomic.Value // float32

	clk Clock

	// the target wait between ticks
	interval time.Duration

	// the time the timer was created
	initialised time.Time

	// the predicted time of the most recent tick
	lastTick time.Time

	// the measurement window is rate ticks long
	rate        int
	measureCt   int
	measureTime time.Time
}

// NewTimer is the preferred method of initialisation for the Timer type. The
// rate is the number of ticks per second to aim for until SetInterval() is
// called. It is also the length of the measurement window.
func NewTimer(clk Clock, rate int) *Timer {
	if rate <= 0 {
		rate = DefaultRate
	}

	now := clk.Now()

	tmr := &Timer{
		Active:      true,
		clk:         clk,
		interval:    time.Second / time.Duration(rate),
		initialised: now,
		lastTick:    now,
		rate:        rate,
		measureTime: now,
	}
	tmr.Measured.Store(float32(0))

	return tmr
}

// SetInterval sets the wait time used by the next call to Wait().
func (tmr *Timer) SetInterval(interval time.Duration) {
	tmr.interval = interval
}

// Interval returns the current wait time.
func (tmr *Timer) Interval() time.Duration {
	return tmr.interval
}

// Wait blocks until the next tick is due and returns the duration that was
// slept for.
func (tmr *Timer) Wait() time.Duration {
	now := tmr.clk.Now()

	if !tmr.Active || tmr.interval <= 0 {
		tmr.lastTick = now
		return 0
	}

	elapsed := now.Sub(tmr.lastTick)
	if elapsed < 0 {
		elapsed = 0
	}

	// discard whole intervals and wait for the remainder of the current one
	count := elapsed / tmr.interval
	residual := elapsed - count*tmr.interval

	wait := tmr.interval - residual
	if wait < 0 {
		wait = 0
	}

	tmr.clk.Sleep(wait)

	// the reference for the next tick is when we intended to wake and not
	// when we actually woke
	tmr.lastTick = now.Add(wait)

	return wait
}

// Measure should be called once per tick. It returns true and the measured
// rate when the measurement window closes. Returns false otherwise.
func (tmr *Timer) Measure() (float32, bool) {
	tmr.measureCt++
	if tmr.measureCt < tmr.rate {
		return 0, false
	}

	elapsed := tmr.lastTick.Sub(tmr.measureTime)
	ms := float32(elapsed) / float32(time.Millisecond)
	if ms <= 0 {
		return 0, false
	}

	rate := float32(tmr.measureCt) * 1000 / ms
	tmr.Measured.Store(rate)

	// reset window
	tmr.measureTime = tmr.lastTick
	tmr.measureCt = 0

	return rate, true
}

// OperatingTime returns the amount of time since the timer was created.
func (tmr *Timer) OperatingTime() time.Duration {
	return tmr.clk.Now().Sub(tmr.initialised)
}

// OperatingSeconds is the same as OperatingTime() but truncated to whole
// seconds.
func (tmr *Timer) OperatingSeconds() uint64 {
	return uint64(tmr.OperatingTime() / time.Second)
}
