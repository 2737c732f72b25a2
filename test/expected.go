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
	"fmt"
	"math"
	"testing"
)

// id returns a string suitable for prefixing a failure message. the tags are
// whatever the caller thinks best describes the test.
func id(tags ...any) string {
	if len(tags) == 0 {
		return ""
	}
	return fmt.Sprintf("%v: ", tags)
}

// expect returns true if v indicates success. a nil error, a nil value or a
// true bool are successes.
func expect(t *testing.T, v any, tags ...any) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		return v
	case error:
		return v == nil
	case nil:
		return true
	default:
		t.Fatalf("%sunsupported type (%T) for expectation testing", id(tags...), v)
	}
	return false
}

// ExpectSuccess tests argument v for a success condition suitable for its
// type. Types bool and error are supported. A nil value is a success.
func ExpectSuccess(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	if !expect(t, v, tags...) {
		t.Errorf("%sa success value is expected for type %T (%v)", id(tags...), v, v)
		return false
	}
	return true
}

// ExpectFailure tests argument v for a failure condition suitable for its
// type. Types bool and error are supported. A nil value is not a failure.
func ExpectFailure(t *testing.T, v any, tags ...any) bool {
	t.Helper()

	// a nil value of type error is not a failure. we need to test for this
	// explicitly because the type switch in expect() will see it as nil
	if v == nil {
		t.Errorf("%sa failure value is expected but got nil", id(tags...))
		return false
	}

	if expect(t, v, tags...) {
		t.Errorf("%sa failure value is expected for type %T", id(tags...), v)
		return false
	}
	return true
}

// ExpectEquality compares a value with an expected value of the same type.
func ExpectEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) bool {
	t.Helper()
	if v != expectedValue {
		t.Errorf("%sequality test of type %T failed: '%v' does not equal '%v'", id(tags...), v, v, expectedValue)
		return false
	}
	return true
}

// ExpectInequality is the inverse of ExpectEquality.
func ExpectInequality[T comparable](t *testing.T, v T, notExpectedValue T, tags ...any) bool {
	t.Helper()
	if v == notExpectedValue {
		t.Errorf("%sinequality test of type %T failed: '%v' does equal '%v'", id(tags...), v, v, notExpectedValue)
		return false
	}
	return true
}

// Approximate describes the numeric types that can be used with
// ExpectApproximate.
type Approximate interface {
	~int | ~int32 | ~int64 | ~uint32 | ~float32 | ~float64
}

// ExpectApproximate compares a value with an expected value and allows for a
// tolerance. The tolerance is a fraction of the expected value, so a
// tolerance of 0.1 allows the value to be within 10% of the expected value.
func ExpectApproximate[T Approximate](t *testing.T, v T, expectedValue T, tolerance float64, tags ...any) bool {
	t.Helper()
	ev := float64(expectedValue)
	d := math.Abs(ev * tolerance)
	if math.Abs(float64(v)-ev) > d {
		t.Errorf("%sapproximation test of type %T failed: '%v' is not within %.2f of '%v'", id(tags...), v, v, tolerance, expectedValue)
		return false
	}
	return true
}
