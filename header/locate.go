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
	"slices"
	"strings"

	"github.com/redpanda-data/common-go/headerfmt/dialect"
)

// legacyStart and legacyEnd wrap headers written by the first generation of
// the formatter, before SPDX identifiers were used.
const (
	legacyStart = "LICENSE START"
	legacyEnd   = "LICENSE END"
)

var startMarkers = []string{CopyrightMarker, LicenseMarker, LegacyCopyright, legacyStart}

// Span is the half-open line range [Start, End) of a header. NoSpan means no
// header was found.
type Span struct {
	Start int
	End   int
}

// NoSpan is returned when content carries no managed header.
var NoSpan = Span{Start: -1, End: -1}

// Found reports whether the span denotes a header.
func (s Span) Found() bool {
	return s.Start >= 0
}

type scanState int

const (
	searching scanState = iota
	inHeader
)

// Locate returns the span of the first managed header in content.
//
// A header starts at a line carrying an SPDX or legacy copyright marker, or at
// a "/*" line directly followed by one. It ends after the first line
// containing TerminalMarker and swallows any blank or bare comment lines that
// follow. A leading shebang line is never part of a header. Content with a
// start marker but no terminal marker yields NoSpan.
func Locate(content string) Span {
	return LocateFrom(content, 0)
}

// LocateFrom is Locate starting the scan at line from.
func LocateFrom(content string, from int) Span {
	return locate(splitLines(content), from, newSyntax(dialect.Dialect{}))
}

// LocateDialect is LocateFrom that also recognizes the block delimiters and
// bare line prefix of d, so headers written in custom dialects are matched
// whole.
func LocateDialect(content string, d dialect.Dialect, from int) Span {
	return locate(splitLines(content), from, newSyntax(d))
}

// HasMarker reports whether content contains any header start marker, even
// one that Locate cannot match to a complete header.
func HasMarker(content string) bool {
	return containsAny(content, startMarkers)
}

// syntax holds the comment lines a dialect adds around header text.
type syntax struct {
	blockOpeners []string
	blockClosers []string
	// fillers are blank or bare prefix lines.
	fillers []string
}

func newSyntax(d dialect.Dialect) syntax {
	s := syntax{
		blockOpeners: []string{"/*"},
		blockClosers: []string{"*/"},
		fillers:      []string{"", "#", "//", "*"},
	}
	if d.Block {
		s.blockOpeners = appendTrimmed(s.blockOpeners, d.BlockOpen)
		s.blockClosers = appendTrimmed(s.blockClosers, d.BlockClose)
	}
	s.fillers = appendTrimmed(s.fillers, d.LinePrefix)
	return s
}

func appendTrimmed(list []string, token string) []string {
	if token = strings.TrimSpace(token); token == "" {
		return list
	}
	if slices.Contains(list, token) {
		return list
	}
	return append(list, token)
}

func (s syntax) isBlockOpener(line string) bool {
	return slices.Contains(s.blockOpeners, strings.TrimSpace(line))
}

// isOpener reports bare comment lines that open a legacy header.
func (s syntax) isOpener(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "#" || trimmed == "//" || s.isBlockOpener(trimmed)
}

// isFiller reports lines that may trail a header without being content.
func (s syntax) isFiller(line string) bool {
	trimmed := strings.TrimSpace(line)
	if slices.Contains(s.fillers, trimmed) || slices.Contains(s.blockClosers, trimmed) {
		return true
	}
	return strings.Trim(trimmed, "#*/ \t") == legacyEnd
}

func locate(lines []string, from int, syn syntax) Span {
	state := searching
	start := -1

	for i := max(from, 0); i < len(lines); i++ {
		line := lines[i]

		switch state {
		case searching:
			if i == 0 && isShebang(line) {
				continue
			}
			if s, ok := headerStart(lines, i, from, syn); ok {
				start = s
				state = inHeader
			}
		case inHeader:
			if !strings.Contains(line, TerminalMarker) {
				continue
			}
			end := i + 1
			for end < len(lines) && syn.isFiller(lines[end]) {
				end++
			}
			return Span{Start: start, End: end}
		}
	}

	return NoSpan
}

func headerStart(lines []string, i, from int, syn syntax) (int, bool) {
	line := lines[i]

	if syn.isBlockOpener(line) {
		if i+1 < len(lines) && containsAny(lines[i+1], startMarkers) {
			return i, true
		}
		return 0, false
	}

	if !containsAny(line, startMarkers) {
		return 0, false
	}

	if strings.Contains(line, legacyStart) && i > from {
		// legacy headers open with a bare comment line
		prev := lines[i-1]
		if !(i-1 == 0 && isShebang(prev)) && syn.isOpener(prev) {
			return i - 1, true
		}
	}

	return i, true
}

func isShebang(line string) bool {
	return strings.HasPrefix(line, "#!")
}

func containsAny(s string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}

func splitLines(content string) []string {
	return strings.Split(content, "\n")
}
