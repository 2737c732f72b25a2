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

// Package logger is the central log repository for animplayer. Log entries
// are tagged with a short string, normally the name of the package making the
// entry. Consecutive entries that are identical are collapsed and a repeat
// count is kept instead.
//
// The central logger is accessed with the package level functions. Isolated
// loggers can be created with NewLogger(), which is useful for testing.
//
// Logging is conditional on a Permission. The Allow value always permits
// logging. Other implementations can decide at the moment of logging.
package logger

import (
	"io"
)

// Permission implementations decide whether logging should happen.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (_ allow) AllowLogging() bool {
	return true
}

// Allow always permits logging.
var Allow Permission = allow{}

// the maximum number of entries in the central logger.
const maxCentral = 256

var central *Logger

func init() {
	central = NewLogger(maxCentral)
}

// Log adds an entry to the central logger. The detail argument can be a
// string, an error, a fmt.Stringer or any value that can be printed with %v.
func Log(perm Permission, tag string, detail any) {
	central.Log(perm, tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(perm Permission, tag string, detail string, args ...any) {
	central.Logf(perm, tag, detail, args...)
}

// Clear all entries from the central logger.
func Clear() {
	central.Clear()
}

// Write the contents of the central logger to io.Writer.
func Write(output io.Writer) {
	central.Write(output)
}

// Tail writes the last N entries to io.Writer.
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}

// SetEcho causes new entries to be written to output as they are logged. A
// nil value stops the echo.
func SetEcho(output io.Writer) {
	central.SetEcho(output)
}
