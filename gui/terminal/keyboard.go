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

package terminal

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/pkg/term"

	"github.com/jetsetilly/animplayer/curated"
	"github.com/jetsetilly/animplayer/logger"
)

// KeyboardUnavailable is returned by Terminal.AttachKeyboard() if the device
// cannot be opened in cbreak mode.
const KeyboardUnavailable = "terminal: keyboard: %v"

// keyboard reads single key presses from the terminal device in a goroutine.
// reads time out regularly so that the goroutine can notice the stop flag.
type keyboard struct {
	tty *term.Term

	quit     atomic.Bool
	stopping atomic.Bool
	finished chan bool
}

func openKeyboard(device string) (*keyboard, error) {
	tty, err := term.Open(device, term.CBreakMode, term.ReadTimeout(100*time.Millisecond))
	if err != nil {
		return nil, curated.Errorf(KeyboardUnavailable, err)
	}

	kbd := &keyboard{
		tty:      tty,
		finished: make(chan bool),
	}

	go kbd.read()

	return kbd, nil
}

func (kbd *keyboard) read() {
	defer close(kbd.finished)

	b := make([]byte, 1)
	for !kbd.stopping.Load() {
		n, err := kbd.tty.Read(b)
		if err != nil {
			if err == io.EOF {
				continue
			}
			logger.Log(logger.Allow, "terminal", err)
			return
		}

		if n == 1 {
			switch b[0] {
			case 'q', 'Q', 0x1b:
				kbd.quit.Store(true)
			}
		}
	}
}

// close stops the read goroutine and restores the terminal to the mode it was
// in before the keyboard was opened.
func (kbd *keyboard) close() error {
	kbd.stopping.Store(true)
	<-kbd.finished

	err := kbd.tty.Restore()
	if err != nil {
		kbd.tty.Close()
		return curated.Errorf(KeyboardUnavailable, err)
	}

	return kbd.tty.Close()
}
