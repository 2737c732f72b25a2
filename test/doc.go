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

// Package test contains helper functions for the animplayer test files.
//
// The Expect*() functions report failures with t.Errorf() and allow the test
// to continue. The Demand*() functions report failures with t.Fatalf() and
// end the test immediately. Use the Demand*() variety when the remainder of
// the test makes no sense if the condition is not met; for example, when an
// error prevents a value from being created.
package test
