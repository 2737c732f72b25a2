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
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// UniqueFilename creates a filename that is very likely to be unique. The
// filename is made from the prepend string, the base name of the source
// (without extension) and a timestamp. The extension is added to the end.
func UniqueFilename(prepend string, source string, ext string) string {
	n := time.Now()
	timestamp := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d", n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())

	s := strings.TrimSpace(filepath.Base(source))
	s = strings.TrimSuffix(s, filepath.Ext(s))

	var fn string
	if len(s) > 0 && s != "." {
		fn = fmt.Sprintf("%s_%s_%s", prepend, s, timestamp)
	} else {
		fn = fmt.Sprintf("%s_%s", prepend, timestamp)
	}

	if ext != "" {
		fn = fmt.Sprintf("%s.%s", fn, strings.TrimPrefix(ext, "."))
	}

	return fn
}
