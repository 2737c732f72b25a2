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
	"bufio"
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/animplayer/animation"
	"github.com/jetsetilly/animplayer/curated"
	"github.com/jetsetilly/animplayer/decoder"
	"github.com/jetsetilly/animplayer/logger"
	"github.com/jetsetilly/animplayer/modalflag"
)

// frameHeader is the frame information in the memviz graph. the pixels and
// palette are left out because they would make the graph unreadable
type frameHeader struct {
	Index            int
	Width            int
	Height           int
	Top              int
	Left             int
	Delay            int
	PaletteEntries   int
	TransparentIndex int
}

type animationHeader struct {
	Source    string
	LoopCount int
	Frames    []frameHeader
}

func headers(anim *animation.Animation) *animationHeader {
	hdr := &animationHeader{
		Source:    anim.Source,
		LoopCount: anim.LoopCount,
		Frames:    make([]frameHeader, len(anim.Frames)),
	}
	for i := range anim.Frames {
		frm := &anim.Frames[i]
		hdr.Frames[i] = frameHeader{
			Index:            i,
			Width:            frm.Width,
			Height:           frm.Height,
			Top:              frm.Top,
			Left:             frm.Left,
			Delay:            frm.Delay,
			PaletteEntries:   frm.PaletteLen(),
			TransparentIndex: frm.TransparentIndex,
		}
	}
	return hdr
}

// writeMemviz writes a graphviz dot file showing the structure of the
// animation.
func writeMemviz(filename string, anim *animation.Animation) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}

	w := bufio.NewWriter(f)
	memviz.Map(w, headers(anim))

	if err := w.Flush(); err != nil {
		f.Close()
		return curated.Errorf("memviz: %v", err)
	}
	if err := f.Close(); err != nil {
		return curated.Errorf("memviz: %v", err)
	}

	logger.Logf(logger.Allow, "animplayer", "memviz graph written to %s", filename)

	return nil
}

func info(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	swatches := md.AddBool("swatches", false, "show the palette of every frame")
	mv := md.AddString("memviz", "", "write graphviz dot file of the frame headers")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	echoLog(*log)

	filename, err := animationArg(md)
	if err != nil {
		return err
	}

	anim, err := decoder.DecodeFile(filename)
	if err != nil {
		return err
	}

	err = anim.Describe(output, *swatches)
	if err != nil {
		return err
	}

	if *mv != "" {
		return writeMemviz(*mv, anim)
	}

	return nil
}
