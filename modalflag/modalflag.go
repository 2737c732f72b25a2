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


package modalflag

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/jetsetilly/animplayer/colour"
)

// ParseResult is returned by Parse().
type ParseResult int

// List of valid ParseResult values.
const (
	// continue with program execution. the selected mode can be retrieved with
	// Mode()
	ParseContinue ParseResult = iota

	// help was requested and has been printed to the Output writer
	ParseHelp

	// an error occurred. the error value will also have been returned
	ParseError
)

func (p ParseResult) String() string {
	switch p {
	case ParseContinue:
		return "continue"
	case ParseHelp:
		return "help"
	case ParseError:
		return "error"
	}
	return "unknown"
}

// separates modes in the string returned by Path()
const modeSeparator = "/"

// Modes provides an easy way of handling command line arguments that select
// a program mode followed by flags for that mode.
type Modes struct {
	// help and flag errors are written here. nil output discards the messages
	Output io.Writer

	flags *flag.FlagSet
	args  []string
	idx   int

	subModes []string
	path     []string

	// text printed after the flag list when help is requested
	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// NewArgs sets the arguments to parse and resets the mode path. Flags and
// sub-modes are forgotten.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.idx = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode indicates that further arguments should be considered part of a
// new mode. Flags and sub-modes from the previous mode are forgotten.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.additionalHelp = ""
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.flags.SetOutput(io.Discard)
}

// Mode returns the most recently selected mode. The empty string if no mode
// has been selected.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode selected so far, separated with a forward slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// AddSubModes declares the modes that can be selected by the next call to
// Parse(). The first sub-mode is the default sub-mode.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, s := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(s))
	}
}

// AddDefaultSubMode declares a sub-mode and moves it to the front of the list
// so that it is selected when no other mode is specified.
func (md *Modes) AddDefaultSubMode(defMode string) {
	defMode = strings.ToUpper(defMode)
	md.subModes = slices.DeleteFunc(md.subModes, func(s string) bool {
		return s == defMode
	})
	md.subModes = slices.Insert(md.subModes, 0, defMode)
}

// AdditionalHelp adds text to the help message printed when help is
// requested.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// Parse the current arguments. Flags are processed first and then, if
// sub-modes have been declared, the first argument after the flags is checked
// against the sub-modes.
//
// When a sub-mode has been declared and the argument does not match it, the
// default sub-mode is selected and the argument is left in RemainingArgs().
func (md *Modes) Parse() (ParseResult, error) {
	err := md.flags.Parse(md.args[md.idx:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			md.help()
			return ParseHelp, nil
		}
		if md.Output != nil {
			fmt.Fprintln(md.Output, err)
		}
		return ParseError, err
	}

	// flag parsing consumes the flags. the index is moved past them so that
	// RemainingArgs() begins with the first non-flag argument
	md.idx = len(md.args) - md.flags.NArg()

	if len(md.subModes) == 0 {
		return ParseContinue, nil
	}

	mode := md.subModes[0]
	if md.flags.NArg() > 0 {
		arg := strings.ToUpper(md.flags.Arg(0))
		if slices.Contains(md.subModes, arg) {
			mode = arg
			md.idx++
		}
	}
	md.path = append(md.path, mode)

	return ParseContinue, nil
}

// RemainingArgs after the most recent call to Parse().
func (md *Modes) RemainingArgs() []string {
	return md.args[md.idx:]
}

// GetArg returns the numbered argument from RemainingArgs(). The empty string
// is returned if the argument does not exist.
func (md *Modes) GetArg(i int) string {
	r := md.RemainingArgs()
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// Visit calls fn for every flag that was set explicitly during Parse().
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}

// Lookup returns the string value of a flag. The second return value is false
// if the flag has not been added.
func (md *Modes) Lookup(name string) (string, bool) {
	f := md.flags.Lookup(name)
	if f == nil {
		return "", false
	}
	return f.Value.String(), true
}

// AddBool flag for the next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for the next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddFloat64 flag for the next call to Parse().
func (md *Modes) AddFloat64(name string, value float64, usage string) *float64 {
	return md.flags.Float64(name, value, usage)
}

// AddString flag for the next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddDuration flag for the next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// AddColour flag for the next call to Parse(). The flag value is interpreted
// by colour.Parse() and an invalid colour causes Parse() to fail.
func (md *Modes) AddColour(name string, value colour.RGB, usage string) *colour.RGB {
	v := &colourValue{c: value}
	md.flags.Var(v, name, usage)
	return &v.c
}

type colourValue struct {
	c colour.RGB
}

func (v *colourValue) String() string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", v.c.Red, v.c.Green, v.c.Blue)
}

func (v *colourValue) Set(s string) error {
	c, err := colour.Parse(s)
	if err != nil {
		return err
	}
	v.c = c
	return nil
}
