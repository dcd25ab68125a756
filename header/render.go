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

// Package header renders, locates and reconciles the SPDX license header at
// the top of a source file.
package header

import (
	"fmt"
	"strings"

	"github.com/redpanda-data/common-go/headerfmt/boilerplate"
	"github.com/redpanda-data/common-go/headerfmt/dialect"
)

const (
	// CopyrightMarker starts the SPDX copyright line.
	CopyrightMarker = "SPDX-FileCopyrightText"
	// LicenseMarker starts the SPDX license identifier line.
	LicenseMarker = "SPDX-License-Identifier"
	// LegacyCopyright is the static copyright notice used before SPDX headers.
	LegacyCopyright = "Copyright (c) NVIDIA CORPORATION"
	// TerminalMarker is contained in the last line of every managed header.
	TerminalMarker = "limitations under the License"

	copyrightFormat = CopyrightMarker + ": Copyright (c) %d NVIDIA CORPORATION & AFFILIATES. All rights reserved."
	licenseLine     = LicenseMarker + ": Apache-2.0"
)

// CopyrightLine returns the SPDX copyright text for year.
func CopyrightLine(year int) string {
	return fmt.Sprintf(copyrightFormat, year)
}

// Render returns the header for d and year. The result has no trailing
// newline.
func Render(text boilerplate.Text, d dialect.Dialect, year int) string {
	lines := make([]string, 0, len(text)+6)
	if d.Block {
		lines = append(lines, d.BlockOpen)
	}

	lines = append(lines,
		d.Line(CopyrightLine(year)),
		d.Line(licenseLine),
		d.BlankLine(),
	)

	for _, line := range text {
		// the SPDX line already carries the copyright
		if strings.HasPrefix(strings.TrimSpace(line), LegacyCopyright) {
			continue
		}
		lines = append(lines, d.Line(line))
	}

	if d.Block {
		lines = append(lines, d.BlockClose)
	}

	return strings.Join(lines, "\n")
}
