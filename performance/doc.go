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


// Package performance measures how quickly an animation can be composited
// when the frame timer is not limiting the rate.
//
// Check() plays the animation for a fixed duration, after a short leadtime
// that allows the rate to settle, and reports the number of frames
// composited per second. It will optionally generate profiling information
// with RunProfiler().
//
// CalcFPS() calculates frames-per-second in aggregate along with the speedup
// compared to the rate the animation was authored for. Not suitable for live
// rate monitoring. The limiter.Timer type does that.
package performance
