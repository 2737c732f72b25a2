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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/jetsetilly/animplayer/curated"
	"github.com/jetsetilly/animplayer/logger"
)

// WarningBoilerPlate is written to the start of every preferences file.
const WarningBoilerPlate = "# animplayer preferences file. entries not recognised by the program are preserved"

// Sentinal error patterns.
const (
	InvalidKey   = "prefs: invalid key (%s)"
	DuplicateKey = "prefs: key %s already registered"
	DiskFailure  = "prefs: %v"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path string

	crit    sync.Mutex
	entries map[string]pref

	// values in the file that have not been registered. they are written
	// back to the file when it is saved
	unrecognised map[string]any
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file does not need to exist.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf(DiskFailure, "no path for preferences file")
	}

	return &Disk{
		path:         path,
		entries:      make(map[string]pref),
		unrecognised: make(map[string]any),
	}, nil
}

func (dsk *Disk) String() string {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	keys := dsk.keys()
	s := strings.Builder{}
	for _, k := range keys {
		fmt.Fprintf(&s, "%s :: %s\n", k, dsk.entries[k])
	}
	return s.String()
}

// sorted list of registered keys. must be called with the critical section
// locked.
func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func validKey(key string) bool {
	if key == "" {
		return false
	}
	for _, p := range strings.Split(key, ".") {
		if p == "" || strings.ContainsAny(p, " \t\"'[]=#") {
			return false
		}
	}
	return true
}

// Add a preference value to the disk instance.
func (dsk *Disk) Add(key string, p pref) error {
	if !validKey(key) {
		return curated.Errorf(InvalidKey, key)
	}

	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p

	return nil
}

// Reset all registered values to their zero value.
func (dsk *Disk) Reset() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf(DiskFailure, err)
		}
	}
	return nil
}

// Load the preferences file and set registered values. Values on the top of
// the command line stack are applied after the file has been read, whether
// or not the file exists.
func (dsk *Disk) Load() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	var tree map[string]any
	_, err := toml.DecodeFile(dsk.path, &tree)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return curated.Errorf(DiskFailure, err)
	}

	flat := make(map[string]any)
	flatten("", tree, flat)

	clear(dsk.unrecognised)
	for k, v := range flat {
		p, ok := dsk.entries[k]
		if !ok {
			dsk.unrecognised[k] = v
			continue
		}
		if err := p.Set(v); err != nil {
			return curated.Errorf(DiskFailure, fmt.Errorf("%s: %w", k, err))
		}
	}

	for _, k := range dsk.keys() {
		if ok, v := GetCommandLinePref(k); ok {
			if err := dsk.entries[k].Set(v); err != nil {
				return curated.Errorf(DiskFailure, fmt.Errorf("%s: %w", k, err))
			}
			logger.Logf(logger.Allow, "prefs", "%s set from command line (%v)", k, v)
		}
	}

	return nil
}

// Save current values to disk. Unrecognised values found by the most recent
// call to Load() are saved too.
func (dsk *Disk) Save() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	tree := make(map[string]any)
	for k, v := range dsk.unrecognised {
		insert(tree, k, v)
	}
	for k, p := range dsk.entries {
		insert(tree, k, p.Get())
	}

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(DiskFailure, err)
	}

	fmt.Fprintf(f, "%s\n\n", WarningBoilerPlate)

	err = toml.NewEncoder(f).Encode(tree)
	if err != nil {
		f.Close()
		return curated.Errorf(DiskFailure, err)
	}

	if err := f.Close(); err != nil {
		return curated.Errorf(DiskFailure, err)
	}

	return nil
}

// flatten a decoded TOML tree into dotted keys.
func flatten(prefix string, tree map[string]any, flat map[string]any) {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := v.(map[string]any); ok {
			flatten(key, sub, flat)
			continue
		}
		flat[key] = v
	}
}

// insert a value into a tree using a dotted key.
func insert(tree map[string]any, key string, v any) {
	parts := strings.Split(key, ".")
	for _, p := range parts[:len(parts)-1] {
		sub, ok := tree[p].(map[string]any)
		if !ok {
			sub = make(map[string]any)
			tree[p] = sub
		}
		tree = sub
	}
	tree[parts[len(parts)-1]] = v
}
