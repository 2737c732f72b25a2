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


// Package modalflag wraps the flag package so that a command line can select
// a program mode before the flags for that mode are parsed.
//
// Arguments are given with NewArgs() and parsed with Parse(). Sub-modes are
// declared with AddSubModes() and compared case insensitively. After a
// successful Parse() the selected mode is available from Mode() and the
// arguments that follow it from RemainingArgs(). Calling NewMode() prepares
// the remaining arguments for the next round of parsing:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "INFO")
//	if p, err := md.Parse(); p != modalflag.ParseContinue {
//		return err
//	}
//	switch md.Mode() {
//	case "INFO":
//		md.NewMode()
//		swatches := md.AddBool("swatches", false, "print palette swatches")
//		...
//	}
//
// Flags specific to the animation player, colours for example, have their
// own Add function so that values are validated during Parse().
package modalflag
