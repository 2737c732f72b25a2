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

package paths_test

import (
	"os"
	"regexp"
	"testing"

	"github.com/jetsetilly/animplayer/paths"
	"github.com/jetsetilly/animplayer/test"
)

func TestLocalPaths(t *testing.T) {
	t.Chdir(t.TempDir())
	err := os.Mkdir(".animplayer", 0o700)
	test.DemandSuccess(t, err)

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".animplayer/foo/bar/baz")

	pth, err = paths.ResourcePath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".animplayer/foo/bar")

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".animplayer/baz")

	pth, err = paths.ResourcePath()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".animplayer")
}

func TestUserPaths(t *testing.T) {
	t.Chdir(t.TempDir())
	cnf := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", cnf)
	t.Setenv("HOME", cnf)

	pth, err := paths.ResourcePath("prefs.toml")
	test.DemandSuccess(t, err)

	base, err := os.UserConfigDir()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pth, base+"/animplayer/prefs.toml")

	// base directory is created
	fi, err := os.Stat(base + "/animplayer")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, fi.IsDir())
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("screenshot", "/tmp/anim/spinner.gif", "png")
	test.ExpectSuccess(t, regexp.MustCompile(`^screenshot_spinner_\d{8}_\d{6}\.png$`).MatchString(fn), fn)

	fn = paths.UniqueFilename("screenshot", "", ".png")
	test.ExpectSuccess(t, regexp.MustCompile(`^screenshot_\d{8}_\d{6}\.png$`).MatchString(fn), fn)

	fn = paths.UniqueFilename("profile", "spinner.gif", "")
	test.ExpectSuccess(t, regexp.MustCompile(`^profile_spinner_\d{8}_\d{6}$`).MatchString(fn), fn)
}
