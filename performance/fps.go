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
	"github.com/jetsetilly/animplayer/animation"
)

// CalcFPS takes the number of frames and duration (in seconds) and returns
// the frames-per-second and the speedup of that value compared to the natural
// rate of the animation. The speedup is zero if the animation has no duration.
func CalcFPS(anim *animation.Animation, numFrames int, duration float64) (fps float64, speedup float64) {
	if duration <= 0 {
		return 0, 0
	}
	fps = float64(numFrames) / duration

	natural := anim.Duration().Seconds()
	if natural <= 0 {
		return fps, 0
	}
	speedup = fps / (float64(len(anim.Frames)) / natural)

	return fps, speedup
}
