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

// Package dialect classifies files by the comment syntax their license
// header is written in.
package dialect

import "strings"

// Dialect describes how a header is commented out in a given kind of file.
//
// Line dialects prefix every header line with LinePrefix. Block dialects wrap
// the header in BlockOpen and BlockClose lines and prefix every interior line
// with LinePrefix.
//
// PreserveShebang keeps a leading "#!" line above the header.
// PreserveDirectives keeps leading "# key=value" parser directives, as read by
// Docker, above the header.
type Dialect struct {
	Name               string `json:"name,omitempty"`
	Block              bool   `json:"block,omitempty"`
	LinePrefix         string `json:"prefix,omitempty"`
	BlockOpen          string `json:"open,omitempty"`
	BlockClose         string `json:"close,omitempty"`
	PreserveShebang    bool   `json:"shebang,omitempty"`
	PreserveDirectives bool   `json:"directives,omitempty"`
}

// BlankLine is the line emitted for an empty header line: the prefix with
// its trailing whitespace removed.
func (d Dialect) BlankLine() string {
	return strings.TrimRight(d.LinePrefix, " \t")
}

// Line prefixes text with the dialect's line prefix. Blank text yields
// BlankLine.
func (d Dialect) Line(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return d.BlankLine()
	}
	return d.LinePrefix + text
}

var (
	// Hash comments every line with "# ".
	Hash = Dialect{Name: "hash", LinePrefix: "# "}
	// Script is Hash for interpreter scripts whose shebang line must stay
	// first.
	Script = Dialect{Name: "script", LinePrefix: "# ", PreserveShebang: true}
	// CBlock wraps the header in a C style /* */ comment.
	CBlock = Dialect{Name: "block", Block: true, BlockOpen: "/*", LinePrefix: " * ", BlockClose: " */"}
	// Dockerfile is Hash for Dockerfiles. Parser directives such as
	// "# syntax=docker/dockerfile:1" are only honored on the first lines.
	Dockerfile = Dialect{Name: "dockerfile", LinePrefix: "# ", PreserveDirectives: true}

	builtins = map[string]Dialect{
		Hash.Name:       Hash,
		Script.Name:     Script,
		CBlock.Name:     CBlock,
		Dockerfile.Name: Dockerfile,
	}
)

// Builtin returns the builtin dialect registered under name.
func Builtin(name string) (Dialect, bool) {
	d, ok := builtins[name]
	return d, ok
}

// BuiltinNames returns the names accepted by Builtin.
func BuiltinNames() []string {
	return []string{Hash.Name, Script.Name, CBlock.Name, Dockerfile.Name}
}
