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

// Package output persists reconciled files, or in check mode records how
// they would change.
package output

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// Writer writes files in place, or only diffs them when created with
// NewChecker.
type Writer struct {
	write  bool
	differ *Differ
}

// NewWriter returns a Writer that atomically rewrites files.
func NewWriter() *Writer {
	return &Writer{write: true}
}

// NewChecker returns a Writer that never touches the filesystem and records a
// diff for every file that would change.
func NewChecker() *Writer {
	return &Writer{differ: NewDiffer()}
}

// DryRun reports whether the writer leaves files untouched.
func (w *Writer) DryRun() bool {
	return !w.write
}

// Write replaces the content of name, whose current content is original.
func (w *Writer) Write(name string, original, data []byte, perm fs.FileMode) error {
	if w.write {
		return WriteFileAtomic(name, data, perm)
	}

	if w.differ != nil {
		w.differ.Diff(name, original, data)
	}

	return nil
}

// Error returns the collected diffs as an error, or nil when no file would
// change.
func (w *Writer) Error() error {
	if w.differ == nil {
		return nil
	}
	return w.differ.Error()
}

// WriteFileAtomic writes data to a temporary file next to name and renames it
// over name, so readers see either the old or the new content.
func WriteFileAtomic(name string, data []byte, perm fs.FileMode) (err error) {
	dir, base := filepath.Split(name)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".headerfmt-*")
	if err != nil {
		return errors.Wrapf(err, "creating temporary file for %q", name)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return errors.Wrapf(err, "writing %q", tmp.Name())
	}
	if err = tmp.Sync(); err != nil {
		return errors.Wrapf(err, "syncing %q", tmp.Name())
	}
	if err = tmp.Chmod(perm); err != nil {
		return errors.Wrapf(err, "setting mode of %q", tmp.Name())
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrapf(err, "closing %q", tmp.Name())
	}
	if err = os.Rename(tmp.Name(), name); err != nil {
		return errors.Wrapf(err, "replacing %q", name)
	}

	return nil
}
