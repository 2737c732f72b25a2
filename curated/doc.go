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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function, which takes a
// formatting pattern and placeholder values in the same way as fmt.Errorf().
//
// The pattern is what identifies the error. Packages export their patterns
// as constants so that callers can test for them:
//
//	const BoundsViolation = "compositor: frame outside canvas (%v)"
//
//	err := curated.Errorf(BoundsViolation, r)
//	if curated.Is(err, BoundsViolation) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs anywhere in
// the chain of curated errors.
//
// The Error() function normalises the message so that adjacent duplicate
// parts are removed. For example, "playback: playback: frame" is printed as
// "playback: frame". This means that wrapping an error with the name of the
// package it passes through never results in stuttering messages.
package curated
