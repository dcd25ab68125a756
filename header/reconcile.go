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

package header

import (
	"regexp"
	"slices"
	"strings"

	"github.com/redpanda-data/common-go/headerfmt/dialect"
)

// Action is the edit Reconcile applied to a file.
type Action int

const (
	Skipped Action = iota
	Inserted
	Replaced
)

func (a Action) String() string {
	switch a {
	case Skipped:
		return "unchanged"
	case Inserted:
		return "added"
	case Replaced:
		return "replaced"
	default:
		return "unknown"
	}
}

// Reconcile makes rendered the header of content. When content already
// carries an equivalent header it is returned untouched with Skipped.
// Otherwise any existing header is removed, rendered is placed at the top
// (after the shebang line or parser directives for dialects that preserve
// them) and the result ends with exactly one newline.
func Reconcile(content, rendered string, d dialect.Dialect) (string, Action) {
	syn := newSyntax(d)
	lines := splitLines(content)
	action := Inserted

	if span := locate(lines, 0, syn); span.Found() {
		existing := strings.Join(lines[span.Start:span.End], "\n")
		if syn.equivalent(existing, rendered) {
			return content, Skipped
		}

		lines = append(lines[:span.Start:span.Start], lines[span.End:]...)
		content = strings.Join(lines, "\n")
		action = Replaced
	}

	lines = splitLines(strings.TrimSpace(content))
	n := preambleLen(lines, d)

	var out strings.Builder
	if n > 0 {
		out.WriteString(strings.Join(lines[:n], "\n"))
		out.WriteString("\n\n")
	}
	out.WriteString(rendered)
	out.WriteString("\n\n")
	out.WriteString(strings.TrimSpace(strings.Join(lines[n:], "\n")))

	return strings.TrimRight(out.String(), "\n") + "\n", action
}

// directive matches a Dockerfile parser directive line.
var directive = regexp.MustCompile(`^#\s*(?i:syntax|escape|check)\s*=\s*\S`)

// preambleLen returns how many leading lines must stay above the header.
func preambleLen(lines []string, d dialect.Dialect) int {
	if d.PreserveShebang && len(lines) > 0 && isShebang(lines[0]) {
		return 1
	}
	if !d.PreserveDirectives {
		return 0
	}
	n := 0
	for n < len(lines) && directive.MatchString(lines[n]) {
		n++
	}
	return n
}

// equivalent reports whether two headers only differ in trailing whitespace
// or surrounding blank lines.
func (s syntax) equivalent(a, b string) bool {
	return s.normalize(a) == s.normalize(b)
}

func (s syntax) normalize(header string) string {
	lines := splitLines(header)
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}

	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && slices.Contains(s.fillers, strings.TrimSpace(lines[len(lines)-1])) {
		lines = lines[:len(lines)-1]
	}

	return strings.Join(lines, "\n")
}
