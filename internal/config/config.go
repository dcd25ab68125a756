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

// Package config loads the .headerfmt.yaml configuration file.
package config

import (
	"fmt"
	"os"
	"regexp"
	"runtime"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"
	"sigs.k8s.io/yaml"

	"github.com/redpanda-data/common-go/headerfmt/dialect"
)

const (
	DefaultFile        = ".headerfmt.yaml"
	DefaultLicenseFile = "LICENSE"
)

// BuiltinIgnore holds directory names that are never processed. Each pattern
// is matched against every component of a path.
var BuiltinIgnore = []string{
	".git",
	"vendor",
	"Godeps",
	"node_modules",
	"venv",
	".env",
	"env",
	"chart",
}

// Match assigns a dialect to the files it selects. At most one of Name,
// Match, Directory and Pattern may be set; Extension narrows any of them or
// stands alone.
type Match struct {
	Name      string           `json:"name,omitempty"`
	Match     string           `json:"match,omitempty"`
	Directory string           `json:"directory,omitempty"`
	Pattern   string           `json:"pattern,omitempty"`
	Extension string           `json:"extension,omitempty"`
	Type      string           `json:"type,omitempty"`
	Delimiter *dialect.Dialect `json:"delimiter,omitempty"`

	matchRegex *regexp.Regexp
}

//nolint:cyclop // complexity is ok for initialization and validation
func (m *Match) initializeAndValidate() error {
	errs := []error{}

	if m.Match != "" {
		matchRegex, err := regexp.Compile(strings.TrimSpace(m.Match))
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "invalid match %q", m.Match))
		}
		m.matchRegex = matchRegex
	}

	if m.Pattern != "" && !doublestar.ValidatePattern(m.Pattern) {
		errs = append(errs, fmt.Errorf("invalid pattern: %q", m.Pattern))
	}

	if m.Type != "" {
		if _, ok := dialect.Builtin(m.Type); !ok {
			errs = append(errs, fmt.Errorf("invalid builtin dialect type: %q", m.Type))
		}
	}

	switch {
	case m.Type == "" && m.Delimiter == nil:
		errs = append(errs, errors.New("must either specify a delimiter or builtin dialect type"))
	case m.Type != "" && m.Delimiter != nil:
		errs = append(errs, errors.New("must only specify one of delimiter or builtin dialect type"))
	case m.Delimiter != nil:
		if m.Delimiter.Block && (m.Delimiter.BlockOpen == "" || m.Delimiter.BlockClose == "") {
			errs = append(errs, errors.New("block delimiters must specify open and close"))
		}
		if !m.Delimiter.Block && m.Delimiter.LinePrefix == "" {
			errs = append(errs, errors.New("line delimiters must specify a prefix"))
		}
	}

	if m.hasMultipleMatchers() {
		errs = append(errs, errors.New("must only specify one of name, match, directory, or pattern"))
	}

	if !m.hasBaseMatcher() && m.Extension == "" {
		errs = append(errs, errors.New("must specify some match rule"))
	}

	return errors.Join(errs...)
}

func (m *Match) baseMatchers() []string {
	var set []string
	for _, v := range []string{m.Name, m.Match, m.Directory, m.Pattern} {
		if v != "" {
			set = append(set, v)
		}
	}
	return set
}

func (m *Match) hasBaseMatcher() bool {
	return len(m.baseMatchers()) > 0
}

func (m *Match) hasMultipleMatchers() bool {
	return len(m.baseMatchers()) > 1
}

func (m *Match) matcher() dialect.Matcher {
	var matchers []dialect.Matcher
	switch {
	case m.Name != "":
		matchers = append(matchers, dialect.Basename(m.Name))
	case m.Match != "":
		matchers = append(matchers, dialect.Regexp(m.matchRegex))
	case m.Directory != "":
		matchers = append(matchers, dialect.Directory(m.Directory))
	case m.Pattern != "":
		matchers = append(matchers, dialect.Pattern(m.Pattern))
	}
	if m.Extension != "" {
		matchers = append(matchers, dialect.Extension(m.Extension))
	}
	return dialect.All(matchers...)
}

func (m *Match) getDialect() dialect.Dialect {
	if m.Type != "" {
		d, _ := dialect.Builtin(m.Type)
		return d
	}
	d := *m.Delimiter
	if d.Name == "" {
		d.Name = "custom"
	}
	return d
}

// Config is the on-disk configuration. Zero values fall back to defaults.
type Config struct {
	Path        string   `json:"path,omitempty"`
	LicenseFile string   `json:"license_file,omitempty"`
	Year        int      `json:"year,omitempty"`
	Concurrency int      `json:"concurrency,omitempty"`
	Ignore      []string `json:"ignore,omitempty"`
	Matches     []*Match `json:"matches,omitempty"`
}

// Load reads and validates the configuration at path. A missing file yields
// an error satisfying errors.Is(err, fs.ErrNotExist).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user's responsibility for security of passed file here
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %q", path)
	}

	c := &Config{}
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return nil, errors.Wrapf(err, "parsing config %q", path)
	}

	if err := c.InitializeAndValidate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %q", path)
	}

	return c, nil
}

// InitializeAndValidate compiles match rules and reports every invalid
// setting at once.
func (c *Config) InitializeAndValidate() error {
	errs := []error{}

	if c.Year != 0 && (c.Year < 1000 || c.Year > 9999) {
		errs = append(errs, fmt.Errorf("year must have four digits: %d", c.Year))
	}

	if c.Concurrency < 0 {
		errs = append(errs, fmt.Errorf("concurrency must not be negative: %d", c.Concurrency))
	}

	for _, pattern := range c.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			errs = append(errs, fmt.Errorf("invalid ignore pattern: %q", pattern))
		}
	}

	for i, match := range c.Matches {
		if match == nil {
			errs = append(errs, fmt.Errorf("match %d is empty", i))
			continue
		}
		if err := match.initializeAndValidate(); err != nil {
			errs = append(errs, errors.Wrapf(err, "match %d", i))
		}
	}

	return errors.Join(errs...)
}

func (c *Config) GetPath() string {
	if c.Path == "" {
		return "."
	}
	return c.Path
}

func (c *Config) GetLicenseFile() string {
	if c.LicenseFile == "" {
		return DefaultLicenseFile
	}
	return c.LicenseFile
}

// GetYear returns the configured year or the current one.
func (c *Config) GetYear() int {
	if c.Year == 0 {
		return time.Now().Year()
	}
	return c.Year
}

func (c *Config) GetConcurrency() int {
	if c.Concurrency == 0 {
		return runtime.GOMAXPROCS(0)
	}
	return c.Concurrency
}

// IgnorePatterns returns the builtin ignore patterns followed by the
// configured ones.
func (c *Config) IgnorePatterns() []string {
	return append(append([]string(nil), BuiltinIgnore...), c.Ignore...)
}

// Registry returns the configured match rules followed by the default rules.
// InitializeAndValidate must have succeeded.
func (c *Config) Registry() *dialect.Registry {
	rules := make([]dialect.Rule, 0, len(c.Matches))
	for _, m := range c.Matches {
		rules = append(rules, dialect.Rule{Matcher: m.matcher(), Dialect: m.getDialect()})
	}
	return dialect.NewRegistry(append(rules, dialect.DefaultRules()...)...)
}

// Resolved returns a copy with every default filled in.
func (c *Config) Resolved() *Config {
	resolved := *c
	resolved.Path = c.GetPath()
	resolved.LicenseFile = c.GetLicenseFile()
	resolved.Year = c.GetYear()
	resolved.Concurrency = c.GetConcurrency()
	resolved.Ignore = c.IgnorePatterns()
	return &resolved
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
