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

package sdl

import (
	"fmt"
	"io"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/animplayer/compositor"
	"github.com/jetsetilly/animplayer/curated"
	"github.com/jetsetilly/animplayer/limiter"
	"github.com/jetsetilly/animplayer/logger"
	"github.com/jetsetilly/animplayer/playback"
)

// the number of bytes required for each pixel in the texture
const pixelDepth = 4

// how long Service() waits for an SDL event before returning
const serviceTimeout = 10

// how often the window title is updated with the measured rate
const titlePeriod = time.Second

// SDLFailure is returned by NewSdlPlay() if any part of SDL could not be
// initialised.
const SDLFailure = "sdl: %v"

// SdlPlay implements the playback.Presenter interface.
type SdlPlay struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	title string
	scale float32

	// texture dimensions. only accessed from the main thread
	texWidth  int32
	texHeight int32

	// pixels shared between Present() and Service()
	crit   sync.Mutex
	pixels []byte
	width  int32
	height int32
	dirty  bool

	// set by Service() when the user has asked to close the window
	closed atomic.Bool

	timer     atomic.Pointer[limiter.Timer]
	lastTitle time.Time
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay type.
// It must be called from the main thread.
func NewSdlPlay(title string, scale float32) (*SdlPlay, error) {
	runtime.LockOSThread()

	if scale <= 0 {
		scale = 1
	}

	scr := &SdlPlay{
		title: title,
		scale: scale,
	}

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(SDLFailure, err)
	}

	// window size is set when the first canvas is seen
	scr.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		1, 1,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(SDLFailure, err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		scr.Destroy(nil)
		return nil, curated.Errorf(SDLFailure, err)
	}

	logger.Logf(logger.Allow, "sdl", "window created (scale %.1f)", scale)

	return scr, nil
}

// AttachTimer allows the window title to show the measured frame rate. Can
// be called from any goroutine.
func (scr *SdlPlay) AttachTimer(tmr *limiter.Timer) {
	scr.timer.Store(tmr)
}

// Present implements the playback.Presenter interface. Safe to call from any
// goroutine.
func (scr *SdlPlay) Present(cnv *compositor.Canvas) (playback.Signal, error) {
	if scr.closed.Load() {
		return playback.Terminate, nil
	}

	scr.crit.Lock()
	defer scr.crit.Unlock()

	sz := cnv.Width * cnv.Height * pixelDepth
	if len(scr.pixels) != sz {
		scr.pixels = make([]byte, sz)
	}
	scr.width = int32(cnv.Width)
	scr.height = int32(cnv.Height)

	// the byte order of the canvas copy matches PIXELFORMAT_ABGR8888 on
	// little-endian machines
	cnv.CopyRGBA(scr.pixels)
	scr.dirty = true

	return playback.Continue, nil
}

// resize the window and recreate the texture. must be called from the main
// thread with the critical section locked.
func (scr *SdlPlay) resize() error {
	if scr.texture != nil {
		_ = scr.texture.Destroy()
		scr.texture = nil
	}

	var err error
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		scr.width, scr.height)
	if err != nil {
		return err
	}
	scr.texWidth = scr.width
	scr.texHeight = scr.height

	w := int32(float32(scr.width) * scr.scale)
	h := int32(float32(scr.height) * scr.scale)
	scr.window.SetSize(w, h)
	scr.window.Show()

	logger.Logf(logger.Allow, "sdl", "texture %dx%d, window %dx%d", scr.width, scr.height, w, h)

	return nil
}

// upload copies the pixels into the texture. must be called from the main
// thread.
func (scr *SdlPlay) upload() error {
	scr.crit.Lock()
	defer scr.crit.Unlock()

	if !scr.dirty {
		return nil
	}
	scr.dirty = false

	if scr.texture == nil || scr.width != scr.texWidth || scr.height != scr.texHeight {
		if err := scr.resize(); err != nil {
			return err
		}
	}

	dest, pitch, err := scr.texture.Lock(nil)
	if err != nil {
		return err
	}
	defer scr.texture.Unlock()

	row := int(scr.width) * pixelDepth
	for y := 0; y < int(scr.height); y++ {
		copy(dest[y*pitch:y*pitch+row], scr.pixels[y*row:(y+1)*row])
	}

	return nil
}

// Service implements the GuiCreator interface. Must be called from the main
// thread.
func (scr *SdlPlay) Service() {
	for ev := sdl.WaitEventTimeout(serviceTimeout); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.closed.Store(true)

		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN && ev.Repeat == 0 {
				switch ev.Keysym.Sym {
				case sdl.K_ESCAPE, sdl.K_q:
					scr.closed.Store(true)
				}
			}
		}
	}

	if scr.closed.Load() {
		scr.window.Hide()
		return
	}

	if err := scr.upload(); err != nil {
		logger.Log(logger.Allow, "sdl", err)
		scr.closed.Store(true)
		return
	}

	if scr.texture != nil {
		_ = scr.renderer.Clear()
		_ = scr.renderer.Copy(scr.texture, nil, nil)
		scr.renderer.Present()
	}

	if time.Since(scr.lastTitle) >= titlePeriod {
		scr.lastTitle = time.Now()
		if tmr := scr.timer.Load(); tmr != nil {
			if fps, ok := tmr.Measured.Load().(float32); ok && fps > 0 {
				scr.window.SetTitle(fmt.Sprintf("%s (%.1f fps)", scr.title, fps))
			}
		}
	}
}

// Destroy implements the GuiCreator interface. Must be called from the main
// thread.
func (scr *SdlPlay) Destroy(output io.Writer) {
	if scr.texture != nil {
		if err := scr.texture.Destroy(); err != nil && output != nil {
			fmt.Fprintln(output, err)
		}
		scr.texture = nil
	}
	if scr.renderer != nil {
		if err := scr.renderer.Destroy(); err != nil && output != nil {
			fmt.Fprintln(output, err)
		}
		scr.renderer = nil
	}
	if scr.window != nil {
		if err := scr.window.Destroy(); err != nil && output != nil {
			fmt.Fprintln(output, err)
		}
		scr.window = nil
	}
	sdl.Quit()
}
