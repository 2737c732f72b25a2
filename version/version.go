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


// Package version reports the version of the program. The version number is
// set at link time:
//
//	go build -ldflags "-X github.com/jetsetilly/animplayer/version.number=v1.0.0"
//
// Without a version number the revision information recorded by the Go
// toolchain is used instead.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the program.
const ApplicationName = "Animplayer"

// set at link time. an empty string means the program was not built for
// release
var number string

// Info is the version information of the running program.
type Info struct {
	// the version number. "unreleased" if the program was built from a
	// repository and "local" if there is no repository information, which
	// can happen with "go run ."
	Version string

	// the vcs revision, suffixed with "+dirty" if the source had been
	// modified but not committed
	Revision string

	// true if Version is a release number
	Release bool
}

func (inf Info) String() string {
	if inf.Release {
		return fmt.Sprintf("%s %s", ApplicationName, inf.Version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, inf.Version, inf.Revision)
}

// Version returns the version information of the running program.
func Version() Info {
	info, _ := debug.ReadBuildInfo()
	return fromBuildInfo(number, info)
}

func fromBuildInfo(number string, info *debug.BuildInfo) Info {
	var vcs, modified bool
	var revision string

	if info != nil {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	inf := Info{
		Version:  number,
		Revision: revision,
		Release:  number != "",
	}

	if inf.Revision == "" {
		inf.Revision = "no revision information"
	} else if modified {
		inf.Revision = fmt.Sprintf("%s+dirty", inf.Revision)
	}

	if !inf.Release {
		if vcs {
			inf.Version = "unreleased"
		} else {
			inf.Version = "local"
		}
	}

	return inf
}
