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


package modalflag_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/animplayer/colour"
	"github.com/jetsetilly/animplayer/modalflag"
	"github.com/jetsetilly/animplayer/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
	test.ExpectEquality(t, len(md.RemainingArgs()), 0)
}

func TestFlagsAndArgs(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-loop", "-scale", "2.5", "a.gif", "b.gif"})
	loop := md.AddBool("loop", false, "loop")
	scale := md.AddFloat64("scale", 1.0, "scale")
	delay := md.AddDuration("delay", time.Second, "delay")

	test.ExpectEquality(t, *loop, false)

	p, err := md.Parse()
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *loop, true)
	test.ExpectEquality(t, *scale, 2.5)
	test.ExpectEquality(t, *delay, time.Second)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "a.gif")
	test.ExpectEquality(t, md.GetArg(1), "b.gif")
	test.ExpectEquality(t, md.GetArg(2), "")

	var visited []string
	md.Visit(func(f string) {
		visited = append(visited, f)
	})
	test.ExpectEquality(t, len(visited), 2)

	v, ok := md.Lookup("scale")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, "2.5")
	_, ok = md.Lookup("missing")
	test.ExpectFailure(t, ok)
}

func TestBadFlag(t *testing.T) {
	tw := &test.CompareWriter{}
	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-nonsense"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, tw.String(), "flag provided but not defined: -nonsense\n")
}

func TestColourFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-bg", "#ff8000"})
	bg := md.AddColour("bg", colour.RGB{}, "background")

	p, err := md.Parse()
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *bg, colour.RGB{Red: 0xff, Green: 0x80, Blue: 0x00})

	md.NewArgs([]string{"-bg", "orange"})
	_ = md.AddColour("bg", colour.RGB{}, "background")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-log", "info", "-swatches", "a.gif"})
	md.AddBool("log", false, "log")
	md.AddSubModes("PLAY", "INFO", "PERFORMANCE")

	p, err := md.Parse()
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "INFO")
	test.ExpectEquality(t, md.Path(), "INFO")

	md.NewMode()
	swatches := md.AddBool("swatches", false, "swatches")
	p, err = md.Parse()
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *swatches, true)
	test.ExpectEquality(t, md.GetArg(0), "a.gif")
	test.ExpectEquality(t, md.Path(), "INFO")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"a.gif"})
	md.AddSubModes("INFO", "PERFORMANCE")
	md.AddDefaultSubMode("play")

	p, err := md.Parse()
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "PLAY")
	test.ExpectEquality(t, md.GetArg(0), "a.gif")
}

func TestNestedModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"perf", "cpu"})
	md.AddSubModes("play", "perf")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "PERF")

	md.NewMode()
	md.AddSubModes("mem", "cpu")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "CPU")
	test.ExpectEquality(t, md.Path(), "PERF/CPU")
	test.ExpectEquality(t, len(md.RemainingArgs()), 0)
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}
	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tw.String(), "No help available\n")
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.CompareWriter{}
	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")
	md.AddSubModes("A", "B")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expected := "Usage:\n" +
		"  -test\n" +
		"    \ttest flag (default true)\n" +
		"\n" +
		"  available sub-modes: A, B\n" +
		"    default: A\n"
	test.ExpectEquality(t, tw.String(), expected)
}

func TestHelpForMode(t *testing.T) {
	tw := &test.CompareWriter{}
	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"info", "-help"})
	md.AddSubModes("play", "info")
	_, _ = md.Parse()

	md.NewMode()
	md.AddSubModes("X")
	md.AdditionalHelp("more")
	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expected := "Usage for INFO mode:\n" +
		"  available sub-modes: X\n" +
		"    default: X\n" +
		"\n" +
		"more\n"
	test.ExpectEquality(t, tw.String(), expected)
}
