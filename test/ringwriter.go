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


package test

import (
	"github.com/jetsetilly/animplayer/curated"
)

// InvalidRingSize is returned by NewRingWriter() for a size less than one.
const InvalidRingSize = "test: invalid size for RingWriter (%d)"

// RingWriter is an implementation of io.Writer that keeps only the most
// recent bytes written to it. Useful for checking the tail of a long running
// output stream.
type RingWriter struct {
	buffer []byte
	size   int

	// position of the next write and whether the buffer has been filled at
	// least once
	cursor int
	full   bool
}

// NewRingWriter is the preferred method of initialisation for the RingWriter
// type.
func NewRingWriter(size int) (*RingWriter, error) {
	if size <= 0 {
		return nil, curated.Errorf(InvalidRingSize, size)
	}
	return &RingWriter{
		buffer: make([]byte, size),
		size:   size,
	}, nil
}

// Write implements the io.Writer interface.
func (r *RingWriter) Write(p []byte) (int, error) {
	n := len(p)

	// only the tail of an oversized write can survive
	if n >= r.size {
		copy(r.buffer, p[n-r.size:])
		r.cursor = 0
		r.full = true
		return n, nil
	}

	c := copy(r.buffer[r.cursor:], p)
	if c < n {
		copy(r.buffer, p[c:])
		r.full = true
	}
	r.cursor += n
	if r.cursor >= r.size {
		r.cursor -= r.size
		r.full = true
	}

	return n, nil
}

// Reset empties the ring.
func (r *RingWriter) Reset() {
	r.cursor = 0
	r.full = false
}

func (r *RingWriter) String() string {
	if !r.full {
		return string(r.buffer[:r.cursor])
	}
	return string(r.buffer[r.cursor:]) + string(r.buffer[:r.cursor])
}
