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


package performance

import (
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/jetsetilly/animplayer/curated"
	"github.com/jetsetilly/animplayer/logger"
	"github.com/jetsetilly/animplayer/paths"
)

// Profile specifies which profiles are to be generated by RunProfiler().
type Profile int

// List of valid Profile values. Values can be combined.
const (
	ProfileCPU Profile = 1 << iota
	ProfileMem
	ProfileTrace

	ProfileNone Profile = 0
	ProfileAll          = ProfileCPU | ProfileMem | ProfileTrace
)

func (p Profile) String() string {
	if p == ProfileNone {
		return "NONE"
	}
	var s []string
	if p&ProfileCPU == ProfileCPU {
		s = append(s, "CPU")
	}
	if p&ProfileMem == ProfileMem {
		s = append(s, "MEM")
	}
	if p&ProfileTrace == ProfileTrace {
		s = append(s, "TRACE")
	}
	return strings.Join(s, ",")
}

// Sentinal error patterns.
const (
	UnknownProfile = "performance: unknown profile type (%s)"
	ProfileFailure = "performance: profile: %v"
)

// ParseProfile converts a comma separated list of profile types to a Profile
// value. Recognised types are CPU, MEM, TRACE, ALL and NONE. Case insensitive.
func ParseProfile(s string) (Profile, error) {
	var p Profile
	for _, t := range strings.Split(s, ",") {
		switch strings.ToUpper(strings.TrimSpace(t)) {
		case "", "NONE":
		case "CPU":
			p |= ProfileCPU
		case "MEM":
			p |= ProfileMem
		case "TRACE":
			p |= ProfileTrace
		case "ALL":
			p |= ProfileAll
		default:
			return ProfileNone, curated.Errorf(UnknownProfile, t)
		}
	}
	return p, nil
}

// RunProfiler runs the supplied function while generating the requested
// profiles. Profile files are created in the working directory and are named
// with the profile type and the tag.
func RunProfiler(profile Profile, tag string, run func() error) (rerr error) {
	if profile&ProfileCPU == ProfileCPU {
		f, err := create("cpu", tag)
		if err != nil {
			return err
		}
		defer f.Close()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf(ProfileFailure, err)
		}
		defer pprof.StopCPUProfile()
	}

	if profile&ProfileTrace == ProfileTrace {
		f, err := create("trace", tag)
		if err != nil {
			return err
		}
		defer f.Close()

		err = trace.Start(f)
		if err != nil {
			return curated.Errorf(ProfileFailure, err)
		}
		defer trace.Stop()
	}

	if profile&ProfileMem == ProfileMem {
		defer func() {
			if rerr != nil {
				return
			}
			f, err := create("mem", tag)
			if err != nil {
				rerr = err
				return
			}
			defer f.Close()

			runtime.GC()
			if err := pprof.WriteHeapProfile(f); err != nil {
				rerr = curated.Errorf(ProfileFailure, err)
			}
		}()
	}

	return run()
}

func create(kind string, tag string) (*os.File, error) {
	fn := paths.UniqueFilename(kind, tag, "profile")
	f, err := os.Create(fn)
	if err != nil {
		return nil, curated.Errorf(ProfileFailure, err)
	}
	logger.Logf(logger.Allow, "performance", "writing %s profile to %s", kind, fn)
	return f, nil
}
