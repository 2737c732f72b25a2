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

package playback

import (
	"os"
	"os/signal"

	"github.com/jetsetilly/animplayer/compositor"
)

// Signal is returned by a Presenter to indicate whether playback should
// continue.
type Signal int

// List of valid Signal values.
const (
	Continue Signal = iota
	Terminate
)

func (sig Signal) String() string {
	switch sig {
	case Continue:
		return "continue"
	case Terminate:
		return "terminate"
	}
	return "unknown signal"
}

// Presenter displays the canvas. It is called once per tick after the frame
// for that tick has been merged.
type Presenter interface {
	Present(cnv *compositor.Canvas) (Signal, error)
}

// PresenterFunc allows a function to be used as a Presenter.
type PresenterFunc func(cnv *compositor.Canvas) (Signal, error)

// Present implements the Presenter interface.
func (fn PresenterFunc) Present(cnv *compositor.Canvas) (Signal, error) {
	return fn(cnv)
}

// interrupted wraps a Presenter and terminates playback when the process
// receives an interrupt signal.
type interrupted struct {
	Presenter
	intChan chan os.Signal
}

// Interruptible returns a Presenter that terminates playback on ctrl-c. The
// wrapped presenter is not called once the interrupt has been received.
func Interruptible(p Presenter) Presenter {
	intr := &interrupted{
		Presenter: p,
		intChan:   make(chan os.Signal, 1),
	}
	signal.Notify(intr.intChan, os.Interrupt)
	return intr
}

// Present implements the Presenter interface.
func (intr *interrupted) Present(cnv *compositor.Canvas) (Signal, error) {
	select {
	case <-intr.intChan:
		signal.Stop(intr.intChan)
		return Terminate, nil
	default:
	}
	return intr.Presenter.Present(cnv)
}
