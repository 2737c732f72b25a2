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
	"fmt"
	"io"
	"os"
	"strings"

	xterm "golang.org/x/term"

	"github.com/jetsetilly/animplayer/compositor"
	"github.com/jetsetilly/animplayer/curated"
	"github.com/jetsetilly/animplayer/gui"
	"github.com/jetsetilly/animplayer/limiter"
	"github.com/jetsetilly/animplayer/playback"
)

// the width used when the output is not a terminal and no width has been
// specified
const defaultWidth = 80

// Terminal implements the playback.Presenter interface.
type Terminal struct {
	output io.Writer

	// file descriptor of the output. only valid if isTerminal is true
	fd         int
	isTerminal bool

	// Width is the number of columns to use. if zero the width of the
	// terminal is used
	Width int

	// Title is shown on the status line
	Title string

	kbd   *keyboard
	timer *limiter.Timer

	started bool
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type.
func NewTerminal(output io.Writer) *Terminal {
	trm := &Terminal{output: output}
	if f, ok := output.(*os.File); ok {
		trm.fd = int(f.Fd())
		trm.isTerminal = xterm.IsTerminal(trm.fd)
	}
	return trm
}

// AttachKeyboard opens the device (usually /dev/tty) in cbreak mode. Pressing
// Q or the escape key causes the next call to Present() to return Terminate.
func (trm *Terminal) AttachKeyboard(device string) error {
	if trm.kbd != nil {
		return nil
	}

	var err error
	trm.kbd, err = openKeyboard(device)
	return err
}

// AttachTimer allows the status line to show the measured frame rate.
func (trm *Terminal) AttachTimer(tmr *limiter.Timer) {
	trm.timer = tmr
}

// geometry returns the maximum size of the image in pixels. a height of zero
// means there is no limit.
func (trm *Terminal) geometry() (int, int) {
	width := trm.Width
	height := 0

	if trm.isTerminal {
		cols, rows, err := xterm.GetSize(trm.fd)
		if err == nil {
			if width == 0 {
				width = cols
			}

			// one line is reserved for the status line
			height = (rows - 1) * 2
		}
	}

	if width <= 0 {
		width = defaultWidth
	}

	return width, height
}

// Present implements the playback.Presenter interface.
func (trm *Terminal) Present(cnv *compositor.Canvas) (playback.Signal, error) {
	if trm.kbd != nil && trm.kbd.quit.Load() {
		return playback.Terminate, nil
	}

	maxW, maxH := trm.geometry()

	// without a height limit the canvas is fitted to the width only
	if maxH <= 0 {
		maxH = cnv.Height * maxW
	}
	w, h := gui.Fit(cnv.Width, cnv.Height, maxW, maxH)

	s := strings.Builder{}
	if !trm.started {
		// clear screen and hide cursor
		s.WriteString("\x1b[2J\x1b[?25l")
		trm.started = true
	}
	s.WriteString("\x1b[H")

	err := Render(&s, gui.Scale(cnv, w, h))
	if err != nil {
		return playback.Terminate, curated.Errorf("terminal: %v", err)
	}

	s.WriteString("\x1b[2K")
	s.WriteString(trm.status())

	_, err = io.WriteString(trm.output, s.String())
	if err != nil {
		return playback.Terminate, curated.Errorf("terminal: %v", err)
	}

	return playback.Continue, nil
}

func (trm *Terminal) status() string {
	s := strings.Builder{}
	s.WriteString(trm.Title)
	if trm.timer != nil {
		if fps, ok := trm.timer.Measured.Load().(float32); ok && fps > 0 {
			fmt.Fprintf(&s, "  %.1f fps", fps)
		}
	}
	if trm.kbd != nil {
		s.WriteString("  [q to quit]")
	}
	return s.String()
}

// Destroy restores the terminal. The cursor is made visible again and the
// keyboard is returned to its previous mode.
func (trm *Terminal) Destroy(output io.Writer) {
	if trm.started {
		io.WriteString(trm.output, "\x1b[0m\x1b[?25h\n")
	}

	if trm.kbd != nil {
		if err := trm.kbd.close(); err != nil {
			fmt.Fprintln(output, err)
		}
		trm.kbd = nil
	}
}

// Service implements the GuiCreator interface. There is nothing in the
// terminal that needs to run on the main thread.
func (trm *Terminal) Service() {
}
