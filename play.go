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
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jetsetilly/animplayer/animation"
	"github.com/jetsetilly/animplayer/decoder"
	"github.com/jetsetilly/animplayer/digest"
	"github.com/jetsetilly/animplayer/gui/headless"
	"github.com/jetsetilly/animplayer/gui/sdl"
	"github.com/jetsetilly/animplayer/gui/terminal"
	"github.com/jetsetilly/animplayer/limiter"
	"github.com/jetsetilly/animplayer/logger"
	"github.com/jetsetilly/animplayer/modalflag"
	"github.com/jetsetilly/animplayer/playback"
	"github.com/jetsetilly/animplayer/prefs"
	"github.com/jetsetilly/animplayer/statsview"
	"github.com/jetsetilly/animplayer/watch"
)

// the keyboard device used by the terminal display
const keyboardDevice = "/dev/tty"

// a presenter that can show the measured frame rate
type timedPresenter interface {
	playback.Presenter
	AttachTimer(*limiter.Timer)
}

func play(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	display := md.AddString("display", "SDL", "display type: SDL, TERMINAL, HEADLESS")
	frames := md.AddInt("frames", 0, "number of frames to show (HEADLESS display only)")
	pngFile := md.AddString("png", "", "save final frame to PNG file (HEADLESS display only)")
	watchFile := md.AddBool("watch", false, "restart playback when the file changes")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	savePrefs := md.AddBool("saveprefs", false, "save preferences after applying flags")
	dig := md.AddBool("digest", false, "print a hash of every frame shown when playback ends")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	addPrefsFlags(md, true)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	echoLog(*log)

	filename, err := animationArg(md)
	if err != nil {
		return err
	}

	pushPrefsFlags(md)
	defer prefs.PopCommandLineStack()

	prf, err := loadPreferences()
	if err != nil {
		return err
	}

	if *savePrefs {
		if err := prf.dsk.Save(); err != nil {
			return err
		}
	}

	cfg, err := prf.config()
	if err != nil {
		return err
	}

	anim, err := decoder.DecodeFile(filename)
	if err != nil {
		return err
	}

	if *stats {
		srv := statsview.Launch(os.Stdout)
		defer srv.Stop()
	}

	var presenter timedPresenter

	switch strings.ToUpper(*display) {
	case "SDL":
		scale := float32(prf.sdlScale.Get().(float64))
		sync.creator <- func() (GuiCreator, error) {
			return sdl.NewSdlPlay(fmt.Sprintf("animplayer - %s", anim.Source), scale)
		}

		select {
		case g := <-sync.creation:
			presenter = g.(*sdl.SdlPlay)
		case err := <-sync.creationError:
			return err
		}

	case "TERMINAL":
		trm := terminal.NewTerminal(os.Stdout)
		trm.Width = prf.termWidth.Get().(int)
		trm.Title = anim.Source
		if err := trm.AttachKeyboard(keyboardDevice); err != nil {
			logger.Log(logger.Allow, "animplayer", err)
		}

		// the terminal has nothing that needs servicing by the main thread so
		// it is not sent to the creator
		defer trm.Destroy(os.Stderr)
		presenter = trm

	case "HEADLESS":
		hl := headless.NewHeadless(*frames)
		hl.Filename = *pngFile
		hl.Scale = prf.sdlScale.Get().(float64)
		presenter = headlessPresenter{hl}

	default:
		return fmt.Errorf("unknown display type (%s)", *display)
	}

	// playback sessions handle ctrl-c with the Interruptible presenter
	sync.state <- stateRequest{req: reqNoIntSig}

	var chain playback.Presenter = presenter
	if *dig {
		dv := digest.NewVideo(chain)
		defer func() {
			fmt.Printf("digest: %s (%d frames)\n", dv.Hash(), dv.Frames())
		}()
		chain = dv
	}

	if !*watchFile {
		return run(anim, cfg, presenter, playback.Interruptible(chain))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := watch.NewWatcher(ctx, filename, watch.FileDebounce)
	if err != nil {
		return err
	}
	defer w.Close()

	rl := &watch.Reloader{Presenter: chain, Watcher: w}
	intr := playback.Interruptible(rl)

	for {
		rl.Reload = false

		err = run(anim, cfg, presenter, intr)
		if err != nil {
			return err
		}
		if !rl.Reload {
			return nil
		}

		// a file that does not decode is probably still being written. the
		// previous animation is played until the next change
		reloaded, err := decoder.DecodeFile(filename)
		if err != nil {
			logger.Log(logger.Allow, "animplayer", err)
			continue
		}
		anim = reloaded
	}
}

// run a single playback session. the session ends when p returns Terminate.
func run(anim *animation.Animation, cfg playback.Config, tp timedPresenter, p playback.Presenter) error {
	lp, err := playback.NewLoop(anim, cfg)
	if err != nil {
		return err
	}
	tp.AttachTimer(lp.Timer())
	return lp.Run(p)
}

// the headless display has no use for the frame timer
type headlessPresenter struct {
	*headless.Headless
}

func (headlessPresenter) AttachTimer(*limiter.Timer) {}
