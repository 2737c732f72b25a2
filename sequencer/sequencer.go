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

// Package sequencer produces frame indexes for a looping animation. The
// sequence for an animation of N frames is 0, 1, ..., N-1, 0, 1, ... and so
// on for as long as the sequencer is used.
package sequencer

import "github.com/jetsetilly/animplayer/curated"

// InvalidCount is returned by NewSequencer() if the number of frames is not
// usable.
const InvalidCount = "sequencer: invalid frame count (%d)"

// Sequencer is a cyclic counter. It is not safe for concurrent use.
type Sequencer struct {
	max   int
	value int
}

// NewSequencer is the preferred method of initialisation for the Sequencer
// type. The count must be greater than zero.
func NewSequencer(count int) (*Sequencer, error) {
	if count <= 0 {
		return nil, curated.Errorf(InvalidCount, count)
	}
	return &Sequencer{max: count}, nil
}

// Next returns the current index and then advances it. When the end of the
// sequence has been reached zero is returned and the following call will
// return one.
func (seq *Sequencer) Next() int {
	if seq.value < seq.max {
		v := seq.value
		seq.value++
		return v
	}
	seq.value = 1
	return 0
}

// Reset the sequencer so that the next call to Next() returns zero.
func (seq *Sequencer) Reset() {
	seq.value = 0
}

// Len returns the number of indexes in the sequence.
func (seq *Sequencer) Len() int {
	return seq.max
}
