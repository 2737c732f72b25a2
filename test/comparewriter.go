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

import "strings"

// CompareWriter is an implementation of io.Writer that collects everything
// written to it so that it can be compared to an expected string.
type CompareWriter struct {
	buffer strings.Builder
}

func (tw *CompareWriter) Write(p []byte) (n int, err error) {
	return tw.buffer.Write(p)
}

// Clear the collected output.
func (tw *CompareWriter) Clear() {
	tw.buffer.Reset()
}

// Compare the collected output with the string s.
func (tw *CompareWriter) Compare(s string) bool {
	return s == tw.buffer.String()
}

func (tw *CompareWriter) String() string {
	return tw.buffer.String()
}
