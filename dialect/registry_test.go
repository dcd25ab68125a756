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

package dialect

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultClassify(t *testing.T) {
	registry := Default()

	for _, test := range []struct {
		path    string
		dialect Dialect
		matched bool
	}{
		{path: "foo.py", dialect: Script, matched: true},
		{path: "scripts/run.sh", dialect: Script, matched: true},
		{path: "pkg/main.go", dialect: CBlock, matched: true},
		{path: "chart/values.yaml", dialect: Hash, matched: true},
		{path: ".github/workflows/ci.yml", dialect: Hash, matched: true},
		{path: "Dockerfile", dialect: Dockerfile, matched: true},
		{path: "build/Dockerfile", dialect: Dockerfile, matched: true},
		{path: "build/agent.Dockerfile", dialect: Dockerfile, matched: true},
		{path: "Dockerfile.bak"},
		{path: "README.md"},
		{path: "go.mod"},
		{path: "foo.gopher"},
	} {
		t.Run(test.path, func(t *testing.T) {
			d, ok := registry.Classify(test.path)
			require.Equal(t, test.matched, ok)
			assert.Equal(t, test.dialect, d)
		})
	}
}

func TestFirstMatchWins(t *testing.T) {
	custom := Dialect{Name: "helm", Block: true, BlockOpen: "{{/*", BlockClose: "*/}}"}
	registry := NewRegistry(append([]Rule{
		{Pattern("charts/**/templates/*.yaml"), custom},
	}, DefaultRules()...)...)

	d, ok := registry.Classify("charts/operator/templates/deployment.yaml")
	require.True(t, ok)
	assert.Equal(t, custom, d)

	d, ok = registry.Classify("charts/operator/values.yaml")
	require.True(t, ok)
	assert.Equal(t, Hash, d)
}

func TestMatchers(t *testing.T) {
	assert.True(t, Directory("build/").Match("build/x.sh"))
	assert.False(t, Directory("build").Match("buildx/x.sh"))
	assert.True(t, Regexp(regexp.MustCompile(`^deploy/.*\.tpl$`)).Match("deploy/a/b.tpl"))
	assert.True(t, All(Directory("deploy"), Extension(".tpl")).Match("deploy/a.tpl"))
	assert.False(t, All(Directory("deploy"), Extension(".tpl")).Match("deploy/a.go"))
	assert.False(t, Pattern("[").Match("anything"))
}

func TestDialectLines(t *testing.T) {
	assert.Equal(t, "#", Hash.BlankLine())
	assert.Equal(t, " *", CBlock.BlankLine())
	assert.Equal(t, "# hello", Hash.Line("   hello  "))
	assert.Equal(t, " * hello", CBlock.Line("hello"))
	assert.Equal(t, " *", CBlock.Line("   "))
}

func TestRegistryDialects(t *testing.T) {
	assert.Equal(t, []Dialect{Script, CBlock, Hash, Dockerfile}, Default().Dialects())
}

func TestBuiltin(t *testing.T) {
	for _, name := range BuiltinNames() {
		d, ok := Builtin(name)
		require.True(t, ok, name)
		assert.Equal(t, name, d.Name)
	}
	_, ok := Builtin("nope")
	assert.False(t, ok)
}
