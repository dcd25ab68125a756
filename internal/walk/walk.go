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

// Package walk discovers the files of a tree that should carry a header.
package walk

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"github.com/redpanda-data/common-go/headerfmt/dialect"
)

// File is a file selected for processing.
type File struct {
	// Path is the path used to open the file.
	Path string
	// Rel is the slash separated path relative to the walk root.
	Rel     string
	Dialect dialect.Dialect
	Mode    fs.FileMode
}

// Ignorer filters paths with doublestar patterns. A path is ignored when a
// pattern matches the whole relative path or any single component of it.
type Ignorer struct {
	patterns []string
}

func NewIgnorer(patterns ...string) *Ignorer {
	return &Ignorer{patterns: append([]string(nil), patterns...)}
}

// Ignored reports whether the relative path rel is filtered out.
func (i *Ignorer) Ignored(rel string) bool {
	rel = filepath.ToSlash(rel)
	if rel == "." || rel == "" {
		return false
	}

	parts := strings.Split(rel, "/")
	for _, pattern := range i.patterns {
		if match(pattern, rel) {
			return true
		}
		for _, part := range parts {
			if match(pattern, part) {
				return true
			}
		}
	}
	return false
}

func match(pattern, name string) bool {
	ok, err := doublestar.Match(pattern, name)
	return err == nil && ok
}

// Walker streams the matching files below Root.
type Walker struct {
	Root     string
	Registry *dialect.Registry
	Ignorer  *Ignorer
	Logger   *zap.Logger
}

// Walk sends every regular file that is not ignored and has a dialect to ch,
// closing ch when done.
func (w *Walker) Walk(ctx context.Context, ch chan<- File) error {
	defer close(ch)

	logger := w.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ignorer := w.Ignorer
	if ignorer == nil {
		ignorer = NewIgnorer()
	}

	return filepath.WalkDir(w.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(w.Root, path)
		if err != nil {
			return err
		}

		if ignorer.Ignored(rel) {
			logger.Debug("ignoring path", zap.String("path", rel))
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		rel = filepath.ToSlash(rel)
		matched, ok := w.Registry.Classify(rel)
		if !ok {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		select {
		case ch <- File{Path: path, Rel: rel, Dialect: matched, Mode: info.Mode().Perm()}:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
}
