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

package config

import (
	"io/fs"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redpanda-data/common-go/headerfmt/dialect"
)

func TestLoad(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "valid.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "src", cfg.GetPath())
	assert.Equal(t, "LICENSE.txt", cfg.GetLicenseFile())
	assert.Equal(t, 2025, cfg.GetYear())
	assert.Equal(t, 3, cfg.GetConcurrency())
	assert.Equal(t, append(append([]string{}, BuiltinIgnore...), "third_party/**"), cfg.IgnorePatterns())

	registry := cfg.Registry()
	for path, expected := range map[string]dialect.Dialect{
		"install.bash":         dialect.Script,
		"Makefile":             dialect.Hash,
		"deploy/chart/app.tpl": {Name: "custom", Block: true, BlockOpen: "{{/*", BlockClose: "*/}}"},
		"hack/tools.go":        dialect.Hash,
		"cmd/main.go":          dialect.CBlock,
		"run.sh":               dialect.Script,
	} {
		d, ok := registry.Classify(path)
		require.True(t, ok, path)
		assert.Equal(t, expected, d, path)
	}

	_, ok := registry.Classify("hack/README.md")
	assert.False(t, ok)
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "invalid.yaml"))
	require.Error(t, err)

	for _, msg := range []string{
		"year must have four digits: 25",
		"concurrency must not be negative: -1",
		`invalid ignore pattern: "[bad"`,
		"must either specify a delimiter or builtin dialect type",
		"must only specify one of name, match, directory, or pattern",
		`invalid builtin dialect type: "nope"`,
		`invalid match "("`,
		`invalid pattern: "[x"`,
		"block delimiters must specify open and close",
		"must only specify one of delimiter or builtin dialect type",
		"line delimiters must specify a prefix",
	} {
		assert.Contains(t, err.Error(), msg)
	}
}

func TestLoadUnknownField(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "unknown.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), DefaultFile))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.InitializeAndValidate())

	assert.Equal(t, ".", cfg.GetPath())
	assert.Equal(t, DefaultLicenseFile, cfg.GetLicenseFile())
	assert.Equal(t, time.Now().Year(), cfg.GetYear())
	assert.Equal(t, runtime.GOMAXPROCS(0), cfg.GetConcurrency())
	assert.Equal(t, BuiltinIgnore, cfg.IgnorePatterns())

	d, ok := cfg.Registry().Classify("main.go")
	require.True(t, ok)
	assert.Equal(t, dialect.CBlock, d)

	resolved := cfg.Resolved()
	assert.Equal(t, ".", resolved.Path)
	assert.Empty(t, cfg.Path, "Resolved must not modify the receiver")
}

func TestMarshal(t *testing.T) {
	cfg := &Config{Year: 2025, Matches: []*Match{{Name: "Makefile", Type: "hash"}}}
	data, err := cfg.Marshal()
	require.NoError(t, err)
	assert.Equal(t, "matches:\n- name: Makefile\n  type: hash\nyear: 2025\n", string(data))
}
