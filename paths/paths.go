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

package paths

import (
	"os"
	"path/filepath"

	"github.com/jetsetilly/animplayer/curated"
)

// the name of the local configuration directory
const localResourcePath = ".animplayer"

// the name of the directory in the user configuration directory
const userResourcePath = "animplayer"

// ResourcePath returns the path to the named resource. The elements of the
// resource argument are joined in the same way as filepath.Join(). Empty
// elements are ignored.
func ResourcePath(resource ...string) (string, error) {
	base, err := basePath()
	if err != nil {
		return "", curated.Errorf("paths: %v", err)
	}

	p := make([]string, 0, len(resource)+1)
	p = append(p, base)
	p = append(p, resource...)

	return filepath.Join(p...), nil
}

func basePath() (string, error) {
	if fi, err := os.Stat(localResourcePath); err == nil && fi.IsDir() {
		return localResourcePath, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	pth := filepath.Join(cnf, userResourcePath)
	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", err
	}

	return pth, nil
}
