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

// Package goldenfile implements snapshot assertions for tests. Run tests with
// -update-golden to rewrite snapshots instead of asserting against them.
package goldenfile

import (
	"bytes"
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

var update = flag.Bool("update-golden", false, "if true, golden assertions will update the expected file instead of performing an assertion")

// Update returns value of the -update-golden CLI flag.
func Update() bool {
	return *update
}

type GoldenAssertion int

const (
	Text GoldenAssertion = iota
	Bytes
	YAML
)

const divergence = "Divergence from snapshot at %q. If this change is expected re-run this test with -update-golden."

func assertGolden(t *testing.T, assertionType GoldenAssertion, path string, expected, actual []byte, update func([]byte) error) {
	t.Helper()

	if Update() {
		require.NoError(t, update(actual))
		return
	}

	switch assertionType {
	case Text:
		assert.Equal(t, string(expected), string(actual), divergence, path)
	case Bytes:
		assert.Equal(t, expected, actual, divergence, path)
	case YAML:
		assertYAML(t, path, expected, actual)
	default:
		require.Fail(t, "unknown assertion type", "%#v", assertionType)
	}
}

func assertYAML(t *testing.T, path string, expected, actual []byte) {
	t.Helper()

	actualDocuments, err := ytbx.LoadDocuments(actual)
	require.NoError(t, err)

	expectedDocuments, err := ytbx.LoadDocuments(expected)
	require.NoError(t, err)

	report, err := dyff.CompareInputFiles(
		ytbx.InputFile{Location: path, Documents: expectedDocuments},
		ytbx.InputFile{Location: "actual", Documents: actualDocuments},
	)
	require.NoError(t, err)

	if len(report.Diffs) > 0 {
		hr := dyff.HumanReport{Report: report, OmitHeader: true}

		var buf bytes.Buffer
		require.NoError(t, hr.WriteReport(&buf))

		require.Fail(t, buf.String(), divergence, path)
	}
}

// AssertGolden asserts that actual equals the file at path.
func AssertGolden(t *testing.T, assertionType GoldenAssertion, path string, actual []byte) {
	t.Helper()

	expected, err := os.ReadFile(path)
	if !os.IsNotExist(err) {
		require.NoError(t, err)
	}

	assertGolden(t, assertionType, path, expected, actual, func(b []byte) error {
		return os.WriteFile(path, b, 0o644)
	})
}

// TxTarGolden keeps many snapshots in a single txtar archive.
type TxTarGolden struct {
	mu      sync.Mutex
	archive *txtar.Archive
}

// NewTxTar loads the archive at path. With -update-golden the archive is
// rewritten once the test finishes.
func NewTxTar(t *testing.T, path string) *TxTarGolden {
	archive, err := txtar.ParseFile(path)
	if os.IsNotExist(err) {
		archive = &txtar.Archive{}
	} else if err != nil {
		require.NoError(t, err)
	}

	g := &TxTarGolden{archive: archive}

	if Update() {
		t.Cleanup(func() {
			require.NoError(t, g.update(path))
		})
	}

	return g
}

func (g *TxTarGolden) update(path string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	slices.SortFunc(g.archive.Files, func(a, b txtar.File) int {
		return strings.Compare(a.Name, b.Name)
	})

	return os.WriteFile(path, txtar.Format(g.archive), 0o644)
}

func (g *TxTarGolden) getFile(name string) *txtar.File {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i, file := range g.archive.Files {
		if file.Name == name {
			return &g.archive.Files[i]
		}
	}
	g.archive.Files = append(g.archive.Files, txtar.File{
		Name: name,
		Data: []byte{},
	})
	return &g.archive.Files[len(g.archive.Files)-1]
}

// Names returns the snapshot names held in the archive.
func (g *TxTarGolden) Names() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	names := make([]string, 0, len(g.archive.Files))
	for _, file := range g.archive.Files {
		names = append(names, file.Name)
	}
	return names
}

// AssertGolden asserts that actual equals the snapshot called name.
func (g *TxTarGolden) AssertGolden(t *testing.T, assertionType GoldenAssertion, name string, actual []byte) {
	t.Helper()

	file := g.getFile(name)

	assertGolden(t, assertionType, name, file.Data, actual, func(b []byte) error {
		g.mu.Lock()
		defer g.mu.Unlock()
		file.Data = b
		return nil
	})
}

// AssertTree asserts every regular file below root against the snapshot
// named by its slash separated path relative to root.
func (g *TxTarGolden) AssertTree(t *testing.T, root string) {
	t.Helper()

	var seen []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		name := filepath.ToSlash(rel)
		seen = append(seen, name)
		g.AssertGolden(t, Bytes, name, data)
		return nil
	})
	require.NoError(t, err)

	if !Update() {
		assert.ElementsMatch(t, g.Names(), seen, "snapshot files differ from tree %q", root)
	}
}
