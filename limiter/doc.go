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

// Package limiter paces the display of frames. The Timer type converts a
// requested interval into a wait that is measured from the previous
// *scheduled* tick rather than the previous actual tick. Any error from over
// or under sleeping on one tick is therefore not carried forward to the next.
//
// For example, with an interval of 100ms, if a Wait() wakes 3ms late then the
// following Wait() is measured against the intended schedule and sleeps for
// 97ms (less the time spent working between ticks).
//
// If the elapsed time since the previous scheduled tick is larger than the
// interval then whole intervals are discarded and the wait is aligned with
// the next point on the schedule.
//
// Timer also measures the actual rate at which ticks happen. The measurement
// window is a fixed number of ticks, given when the Timer is created.
package limiter
