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

// Package boilerplate extracts the "how to apply" notice from an Apache
// License document.
package boilerplate

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	// AppendixMarker introduces the boilerplate section of the license.
	AppendixMarker = "APPENDIX: How to apply the Apache License to your work."
	// EndMarker is the last line of the boilerplate notice.
	EndMarker = "limitations under the License."

	copyrightPrefix = "Copyright"
)

// Text is the boilerplate as raw lines, exactly as they appear in the
// license document.
type Text []string

// String joins the lines back together.
func (t Text) String() string {
	return strings.Join(t, "\n")
}

// Extract returns the boilerplate notice found in doc: the lines from the
// first "Copyright" line following the appendix marker through the line
// holding EndMarker. If the notice cannot be located the whole trimmed
// document is returned and found is false.
func Extract(doc string) (text Text, found bool) {
	lines := strings.Split(strings.ReplaceAll(doc, "\r\n", "\n"), "\n")

	appendix := indexLine(lines, 0, func(line string) bool {
		return strings.Contains(line, AppendixMarker)
	})
	if appendix < 0 {
		return fallback(doc), false
	}

	start := indexLine(lines, appendix+1, func(line string) bool {
		return strings.HasPrefix(strings.TrimSpace(line), copyrightPrefix)
	})
	if start < 0 {
		return fallback(doc), false
	}

	end := indexLine(lines, start, func(line string) bool {
		return strings.Contains(line, EndMarker)
	})
	if end < 0 {
		return fallback(doc), false
	}

	return append(Text(nil), lines[start:end+1]...), true
}

// Load reads the license document at path and extracts its boilerplate.
func Load(path string) (Text, bool, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user's responsibility for security of passed file here
	if err != nil {
		return nil, false, errors.Wrapf(err, "reading license file %q", path)
	}

	text, found := Extract(string(data))
	return text, found, nil
}

func fallback(doc string) Text {
	return strings.Split(strings.TrimSpace(strings.ReplaceAll(doc, "\r\n", "\n")), "\n")
}

func indexLine(lines []string, from int, fn func(string) bool) int {
	for i := from; i < len(lines); i++ {
		if fn(lines[i]) {
			return i
		}
	}
	return -1
}
