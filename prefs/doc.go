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

// Package prefs facilitates the storage of preferences. Preference values are
// created with the Bool, Int, Float and String types. Values are registered
// with an instance of Disk with a key, and the Disk instance saves and loads
// the registered values to and from a TOML file.
//
// Keys are made up of dot separated parts. The parts are used as the table
// names in the TOML file, so the key "playback.background" is stored as
// the background value in the playback table.
//
// Values can be overridden for a single call to Disk.Load() with the command
// line stack. See PushCommandLineStack() for details.
//
// All types are safe to use from more than one goroutine.
package prefs
