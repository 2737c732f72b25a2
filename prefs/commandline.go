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

package prefs

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// the command line stack is a stack of key/value groups. only the group on
// the top of the stack is consulted by Disk.Load()
var commandLine struct {
	crit  sync.Mutex
	stack []map[string]Value
}

// SizeCommandLineStack returns the number of groups on the command line
// stack.
func SizeCommandLineStack() int {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	return len(commandLine.stack)
}

// PopCommandLineStack removes the top group from the stack. The entries in
// the group that have not been consumed by GetCommandLinePref() are returned
// as a prefs string, with the keys sorted alphabetically.
func PopCommandLineStack() string {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	if len(commandLine.stack) == 0 {
		return ""
	}

	popped := commandLine.stack[len(commandLine.stack)-1]
	commandLine.stack = commandLine.stack[:len(commandLine.stack)-1]

	keys := make([]string, 0, len(popped))
	for key := range popped {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, key := range keys {
		fmt.Fprintf(&s, "%s::%v; ", key, popped[key])
	}

	return strings.TrimSuffix(s.String(), "; ")
}

// PushCommandLineStack parses a prefs string and pushes the entries onto the
// stack as a single group. A prefs string is a list of key/value pairs
// separated by semicolons. Keys and values are separated by a double colon:
//
//	playback.background::202020; sdl.scale::3
//
// Malformed entries are ignored.
func PushCommandLineStack(prefs string) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	cl := make(map[string]Value)
	commandLine.stack = append(commandLine.stack, cl)

	for _, p := range strings.Split(prefs, ";") {
		kv := strings.Split(p, "::")
		if len(kv) == 2 {
			k := strings.TrimSpace(kv[0])
			if k != "" {
				cl[k] = strings.TrimSpace(kv[1])
			}
		}
	}
}

// GetCommandLinePref returns the value for the key from the top of the
// stack. The entry is removed from the group so that it is only used once.
func GetCommandLinePref(key string) (bool, Value) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	if len(commandLine.stack) == 0 {
		return false, nil
	}

	cl := commandLine.stack[len(commandLine.stack)-1]
	if v, ok := cl[key]; ok {
		delete(cl, key)
		return true, v
	}

	return false, nil
}
