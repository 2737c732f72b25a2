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
	"io"

	"github.com/jetsetilly/animplayer/decoder"
	"github.com/jetsetilly/animplayer/modalflag"
	"github.com/jetsetilly/animplayer/performance"
	"github.com/jetsetilly/animplayer/prefs"
)

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	duration := md.AddDuration("duration", performance.Leadtime*2, "run duration, not including the leadtime")
	leadtime := md.AddDuration("leadtime", performance.Leadtime, "playback time before measurement begins")
	uncapped := md.AddBool("uncapped", true, "ignore frame delays")
	profile := md.AddString("profile", "NONE", "create profile reports: CPU, MEM, TRACE, ALL (comma separated)")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	addPrefsFlags(md, false)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	echoLog(*log)

	filename, err := animationArg(md)
	if err != nil {
		return err
	}

	prof, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	pushPrefsFlags(md)
	defer prefs.PopCommandLineStack()

	prf, err := loadPreferences()
	if err != nil {
		return err
	}

	cfg, err := prf.config()
	if err != nil {
		return err
	}
	cfg.Uncapped = *uncapped

	anim, err := decoder.DecodeFile(filename)
	if err != nil {
		return err
	}

	return performance.Check(output, anim, cfg, performance.Options{
		Duration: *duration,
		Leadtime: *leadtime,
		Profile:  prof,
	})
}
