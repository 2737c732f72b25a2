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

import "testing"

// the Demand*() functions report failure through the Expect*() functions and
// then stop the test with t.FailNow()

// DemandEquality is like ExpectEquality but ends the test on failure.
func DemandEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) {
	t.Helper()
	if !ExpectEquality(t, v, expectedValue, tags...) {
		t.FailNow()
	}
}

// DemandInequality is like ExpectInequality but ends the test on failure.
func DemandInequality[T comparable](t *testing.T, v T, notExpectedValue T, tags ...any) {
	t.Helper()
	if !ExpectInequality(t, v, notExpectedValue, tags...) {
		t.FailNow()
	}
}

// DemandSuccess is like ExpectSuccess but ends the test on failure. Use it
// when the remainder of the test depends on the value, for example the error
// returned alongside a value that the test goes on to use.
func DemandSuccess(t *testing.T, v any, tags ...any) {
	t.Helper()
	if !ExpectSuccess(t, v, tags...) {
		t.FailNow()
	}
}

// DemandFailure is like ExpectFailure but ends the test on failure.
func DemandFailure(t *testing.T, v any, tags ...any) {
	t.Helper()
	if !ExpectFailure(t, v, tags...) {
		t.FailNow()
	}
}
