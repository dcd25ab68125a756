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
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Matcher reports whether a slash separated path belongs to a rule.
type Matcher interface {
	Match(path string) bool
}

// MatcherFunc adapts a function to a Matcher.
type MatcherFunc func(path string) bool

func (f MatcherFunc) Match(path string) bool { return f(path) }

// Extension matches files whose extension is exactly ext, e.g. ".go".
func Extension(ext string) Matcher {
	return MatcherFunc(func(path string) bool {
		return filepath.Ext(baseName(path)) == ext
	})
}

// Basename matches files named exactly name, e.g. "Dockerfile".
func Basename(name string) Matcher {
	return MatcherFunc(func(path string) bool {
		return baseName(path) == name
	})
}

// Suffix matches files whose name ends with suffix, e.g. ".Dockerfile".
func Suffix(suffix string) Matcher {
	return MatcherFunc(func(path string) bool {
		return strings.HasSuffix(baseName(path), suffix)
	})
}

// Directory matches files below dir.
func Directory(dir string) Matcher {
	dir = strings.TrimSuffix(filepath.ToSlash(dir), "/") + "/"
	return MatcherFunc(func(path string) bool {
		return strings.HasPrefix(filepath.ToSlash(path), dir)
	})
}

// Pattern matches paths against a doublestar glob. The pattern must be valid,
// see doublestar.ValidatePattern.
func Pattern(pattern string) Matcher {
	return MatcherFunc(func(path string) bool {
		ok, err := doublestar.Match(pattern, filepath.ToSlash(path))
		return err == nil && ok
	})
}

// Regexp matches paths against re.
func Regexp(re *regexp.Regexp) Matcher {
	return MatcherFunc(func(path string) bool {
		return re.MatchString(filepath.ToSlash(path))
	})
}

// All matches when every matcher matches.
func All(matchers ...Matcher) Matcher {
	return MatcherFunc(func(path string) bool {
		for _, m := range matchers {
			if !m.Match(path) {
				return false
			}
		}
		return true
	})
}

func baseName(path string) string {
	return filepath.Base(filepath.FromSlash(path))
}

// Rule binds a Matcher to the Dialect of the files it matches.
type Rule struct {
	Matcher Matcher
	Dialect Dialect
}

// Registry is an ordered rule table. The first matching rule wins.
type Registry struct {
	rules []Rule
}

// NewRegistry returns a registry evaluating rules in order.
func NewRegistry(rules ...Rule) *Registry {
	return &Registry{rules: append([]Rule(nil), rules...)}
}

// DefaultRules returns the builtin file rules.
func DefaultRules() []Rule {
	return []Rule{
		{Extension(".py"), Script},
		{Extension(".sh"), Script},
		{Extension(".go"), CBlock},
		{Extension(".yml"), Hash},
		{Extension(".yaml"), Hash},
		{Basename("Dockerfile"), Dockerfile},
		{Suffix(".Dockerfile"), Dockerfile},
	}
}

// Default returns a registry holding only DefaultRules.
func Default() *Registry {
	return NewRegistry(DefaultRules()...)
}

// Classify returns the dialect of the first rule matching path. ok is false
// when no rule matches and the file must not be touched.
func (r *Registry) Classify(path string) (d Dialect, ok bool) {
	for _, rule := range r.rules {
		if rule.Matcher.Match(path) {
			return rule.Dialect, true
		}
	}
	return Dialect{}, false
}

// Dialects returns the distinct dialects referenced by the registry, in rule
// order.
func (r *Registry) Dialects() []Dialect {
	seen := map[Dialect]struct{}{}
	var out []Dialect
	for _, rule := range r.rules {
		if _, ok := seen[rule.Dialect]; ok {
			continue
		}
		seen[rule.Dialect] = struct{}{}
		out = append(out, rule.Dialect)
	}
	return out
}
