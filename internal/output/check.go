// Copyright 2026 Redpanda Data, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package output

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/sergi/go-diff/diffmatchpatch"
)

type diff struct {
	path  string
	diffs []diffmatchpatch.Diff
}

func (d *diff) string(differ *diffmatchpatch.DiffMatchPatch) string {
	diff := differ.DiffPrettyText(d.diffs)
	return fmt.Sprintf("%s:\n%s", d.path, diff)
}

// Differ collects line diffs of files. It is safe for concurrent use.
type Differ struct {
	differ *diffmatchpatch.DiffMatchPatch
	diffs  []diff
	mutex  sync.RWMutex
}

func NewDiffer() *Differ {
	return &Differ{
		differ: diffmatchpatch.New(),
	}
}

// Diff records the difference between original and updated, if any.
func (c *Differ) Diff(path string, original, updated []byte) {
	if bytes.Equal(original, updated) {
		return
	}

	a, b, lines := c.differ.DiffLinesToChars(string(original), string(updated))
	diffs := c.differ.DiffCharsToLines(c.differ.DiffMain(a, b, false), lines)

	c.mutex.Lock()
	c.diffs = append(c.diffs, diff{path, diffs})
	c.mutex.Unlock()
}

// Paths returns the sorted paths that have a diff.
func (c *Differ) Paths() []string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	paths := make([]string, 0, len(c.diffs))
	for _, d := range c.diffs {
		paths = append(paths, d.path)
	}
	sort.Strings(paths)
	return paths
}

// Error renders all diffs sorted by path, or returns nil if there are none.
func (c *Differ) Error() error {
	c.mutex.RLock()

	if len(c.diffs) == 0 {
		c.mutex.RUnlock()
		return nil
	}

	diffs := make([]diff, len(c.diffs))
	copy(diffs, c.diffs)
	c.mutex.RUnlock()

	sort.SliceStable(diffs, func(i, j int) bool {
		a, b := diffs[i], diffs[j]
		return a.path < b.path
	})

	errs := []string{}
	for _, diff := range diffs {
		errs = append(errs, diff.string(c.differ))
	}

	return errors.New(strings.Join(errs, "\n"))
}
