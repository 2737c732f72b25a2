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


package main

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/animplayer/colour"
	"github.com/jetsetilly/animplayer/compositor"
	"github.com/jetsetilly/animplayer/modalflag"
	"github.com/jetsetilly/animplayer/paths"
	"github.com/jetsetilly/animplayer/playback"
	"github.com/jetsetilly/animplayer/prefs"
)

// name of the preferences file in the resource directory
const prefsFile = "prefs.toml"

// preferences used by the playback modes.
type preferences struct {
	dsk *prefs.Disk

	background   prefs.String
	transparency prefs.String
	strict       prefs.Bool
	minDelay     prefs.Int
	rate         prefs.Int
	sdlScale     prefs.Float
	termWidth    prefs.Int
}

// newPreferences registers the preferences with a Disk instance for the named
// file and loads them. The file does not need to exist.
func newPreferences(path string) (*preferences, error) {
	prf := &preferences{}

	var err error
	prf.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	prf.background.SetHookPre(func(v prefs.Value) error {
		_, err := colour.Parse(v.(string))
		return err
	})
	prf.transparency.SetHookPre(func(v prefs.Value) error {
		_, err := compositor.ParseTransparency(v.(string))
		return err
	})

	// defaults
	_ = prf.background.Set("000000")
	_ = prf.transparency.Set(compositor.SentinelTransparency.String())
	_ = prf.strict.Set(true)
	_ = prf.minDelay.Set(0)
	_ = prf.rate.Set(0)
	_ = prf.sdlScale.Set(2.0)
	_ = prf.termWidth.Set(0)

	if err := prf.dsk.Add("playback.background", &prf.background); err != nil {
		return nil, err
	}
	if err := prf.dsk.Add("playback.transparency", &prf.transparency); err != nil {
		return nil, err
	}
	if err := prf.dsk.Add("playback.strict", &prf.strict); err != nil {
		return nil, err
	}
	if err := prf.dsk.Add("playback.mindelay", &prf.minDelay); err != nil {
		return nil, err
	}
	if err := prf.dsk.Add("playback.rate", &prf.rate); err != nil {
		return nil, err
	}
	if err := prf.dsk.Add("sdl.scale", &prf.sdlScale); err != nil {
		return nil, err
	}
	if err := prf.dsk.Add("terminal.width", &prf.termWidth); err != nil {
		return nil, err
	}

	if err := prf.dsk.Load(); err != nil {
		return nil, err
	}

	return prf, nil
}

// loadPreferences from the preferences file in the resource directory.
func loadPreferences() (*preferences, error) {
	pth, err := paths.ResourcePath(prefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

// config returns the playback configuration described by the preferences.
func (prf *preferences) config() (playback.Config, error) {
	cfg := playback.DefaultConfig

	bg, err := colour.Parse(prf.background.String())
	if err != nil {
		return cfg, err
	}
	cfg.Background = bg

	cfg.Policy.Transparency, err = compositor.ParseTransparency(prf.transparency.String())
	if err != nil {
		return cfg, err
	}

	cfg.Policy.Strict = prf.strict.Get().(bool)
	cfg.MinDelay = prf.minDelay.Get().(int)
	cfg.Rate = prf.rate.Get().(int)

	return cfg, nil
}

// flags that override a preference for the duration of the program. the
// preference key for each flag name
var prefsFlags = map[string]string{
	"bg":           "playback.background",
	"transparency": "playback.transparency",
	"strict":       "playback.strict",
	"mindelay":     "playback.mindelay",
	"scale":        "sdl.scale",
	"width":        "terminal.width",
}

// addPrefsFlags adds the flags that override preferences. Only flags named in
// the prefsFlags map that have been added to the mode are considered.
func addPrefsFlags(md *modalflag.Modes, display bool) {
	md.AddColour("bg", colour.RGB{}, "background colour (RRGGBB)")
	md.AddString("transparency", compositor.SentinelTransparency.String(), "transparency policy: SENTINEL, FRAME")
	md.AddBool("strict", true, "palette indexes beyond the palette end playback")
	md.AddInt("mindelay", 0, "minimum frame delay in hundredths of a second")
	if display {
		md.AddFloat64("scale", 2.0, "window or screenshot scaling")
		md.AddInt("width", 0, "terminal width in columns (0 fits the terminal)")
	}
	md.AddString("prefs", "", "preferences for this session (key::value; key::value)")
}

// pushPrefsFlags pushes the explicitly set preference flags and the contents
// of the prefs flag to the command line preferences stack. The stack must be
// popped by the caller.
func pushPrefsFlags(md *modalflag.Modes) {
	var s []string

	md.Visit(func(flg string) {
		if key, ok := prefsFlags[flg]; ok {
			v, _ := md.Lookup(flg)
			s = append(s, fmt.Sprintf("%s::%s", key, v))
		}
	})

	// preferences in the prefs flag take priority because they come last
	if v, ok := md.Lookup("prefs"); ok && v != "" {
		s = append(s, v)
	}

	prefs.PushCommandLineStack(strings.Join(s, "; "))
}
