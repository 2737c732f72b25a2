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

// Package paths contains functions to prepare paths for animplayer resources.
//
// The ResourcePath() function returns the path to a resource in the
// animplayer configuration directory. If a directory called ".animplayer"
// exists in the current working directory then that is used. Otherwise the
// directory is placed in the user's configuration directory, as returned by
// os.UserConfigDir(), and is created if it does not exist.
package paths
