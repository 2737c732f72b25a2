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
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/jetsetilly/animplayer/logger"
	"github.com/jetsetilly/animplayer/modalflag"
	"github.com/jetsetilly/animplayer/version"
)

// how long the main thread sleeps when there is no presenter to service
const serviceIdle = 10 * time.Millisecond

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when the playback session
	// provides its own handler.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// GuiCreator facilitates the creation, servicing and destruction of
// presenters that need to be run in the main thread.
//
// There is no Create() function because the launch goroutine needs the
// freedom to create the presenter how it wants. Instead the creator is a
// channel which accepts a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the presenter
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all). It
	// MUST ONLY be called as part of a larger loop from the main thread. It
	// should service all events that are not safe to do in other goroutines.
	Service()
}

// communication between the main() function and the launch() function. SDL
// requires window creation and event handling to happen on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created
	//     presenter
	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

		case creator := <-sync.creator:
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			g, err := creator()
			if err != nil {
				// g is not assigned to gui because a nil pointer in an
				// interface is not a nil interface
				gui = nil
				sync.creationError <- err
			} else {
				gui = g
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if gui != nil {
				gui.Service()
			} else {
				// nothing to service
				time.Sleep(serviceIdle)
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate presenter creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("PLAY", "INFO", "PERFORMANCE")
	md.AdditionalHelp("animplayer [MODE] [flags] <file>")
	showVersion := md.AddBool("version", false, "print version information and quit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	if *showVersion {
		fmt.Println(version.Version())
		sync.state <- stateRequest{req: reqQuit}
		return
	}

	logger.Logf(logger.Allow, "animplayer", "%s", version.Version())

	switch md.Mode() {
	case "PLAY":
		err = play(md, sync)

	case "INFO":
		err = info(md, os.Stdout)

	case "PERFORMANCE":
		err = perform(md, os.Stdout)
	}

	if err != nil {
		logger.Log(logger.Allow, "animplayer", err)
		fmt.Printf("* error in %s mode: %s\n", md, err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// the animation file is the single argument remaining after the mode flags
// have been parsed.
func animationArg(md *modalflag.Modes) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return "", fmt.Errorf("animation file required for %s mode", md)
	case 1:
		return md.GetArg(0), nil
	}
	return "", fmt.Errorf("too many arguments for %s mode", md)
}

// echo the log to stdout if requested.
func echoLog(echo bool) {
	if echo {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}
}
