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

package walk

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redpanda-data/common-go/headerfmt/dialect"
)

func TestIgnorer(t *testing.T) {
	ignorer := NewIgnorer("vendor", "node_modules", "third_party/**", "*.pb.go")

	for path, ignored := range map[string]bool{
		".":                        false,
		"main.go":                  false,
		"vendor":                   true,
		"vendor/x/y.go":            true,
		"pkg/vendor/y.go":          true,
		"web/node_modules/a/b.yml": true,
		"third_party/lib/a.sh":     true,
		"api/v1/types.pb.go":       true,
		"api/v1/types.go":          false,
		"vendored/a.go":            false,
	} {
		assert.Equal(t, ignored, ignorer.Ignored(path), path)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestWalk(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{
		"main.go",
		"scripts/run.sh",
		"scripts/README.md",
		"deploy/Dockerfile",
		"deploy/values.yaml",
		"vendor/dep/dep.go",
		"chart/templates/a.yaml",
		"gen/api.pb.go",
	} {
		writeFile(t, filepath.Join(root, filepath.FromSlash(name)), "x\n")
	}

	walker := &Walker{
		Root:     root,
		Registry: dialect.Default(),
		Ignorer:  NewIgnorer("vendor", "chart", "*.pb.go"),
	}

	ch := make(chan File)
	errCh := make(chan error, 1)
	go func() { errCh <- walker.Walk(context.Background(), ch) }()

	found := map[string]dialect.Dialect{}
	for f := range ch {
		assert.Equal(t, filepath.Join(root, filepath.FromSlash(f.Rel)), f.Path)
		assert.Equal(t, os.FileMode(0o644), f.Mode)
		found[f.Rel] = f.Dialect
	}
	require.NoError(t, <-errCh)

	assert.Equal(t, map[string]dialect.Dialect{
		"main.go":            dialect.CBlock,
		"scripts/run.sh":     dialect.Script,
		"deploy/Dockerfile":  dialect.Dockerfile,
		"deploy/values.yaml": dialect.Hash,
	}, found)
}

func TestWalkCancelled(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.go"), "x\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ch := make(chan File, 1)
	err := (&Walker{Root: root, Registry: dialect.Default()}).Walk(ctx, ch)
	require.ErrorIs(t, err, context.Canceled)

	_, open := <-ch
	assert.False(t, open)
}

func TestWalkMissingRoot(t *testing.T) {
	ch := make(chan File)
	err := (&Walker{Root: filepath.Join(t.TempDir(), "missing"), Registry: dialect.Default()}).Walk(context.Background(), ch)
	require.ErrorIs(t, err, os.ErrNotExist)
}
