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

package curated_test

import (
	"errors"
	"io"
	"testing"

	"github.com/jetsetilly/animplayer/curated"
	"github.com/jetsetilly/animplayer/test"
)

const testPattern = "test: %v"
const wrapPattern = "wrap: %v"

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf("playback: %v", curated.Errorf("playback: frame %d", 10))
	test.ExpectEquality(t, e.Error(), "playback: frame 10")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, wrapPattern))

	f := curated.Errorf(wrapPattern, e)
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, wrapPattern))

	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectFailure(t, curated.Is(nil, testPattern))
	test.ExpectFailure(t, curated.Has(nil, testPattern))
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf(wrapPattern, curated.Errorf(testPattern, io.EOF))
	test.ExpectSuccess(t, errors.Is(e, io.EOF))
	test.ExpectEquality(t, e.Error(), "wrap: test: EOF")
}
