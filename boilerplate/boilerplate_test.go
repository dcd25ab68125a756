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

package boilerplate

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	text, found, err := Load(filepath.Join("testdata", "LICENSE"))
	require.NoError(t, err)
	require.True(t, found)

	require.Len(t, text, 13)
	assert.Equal(t, "   Copyright (c) NVIDIA CORPORATION.  All rights reserved.", text[0])
	assert.Equal(t, "", text[1])
	assert.Equal(t, "       http://www.apache.org/licenses/LICENSE-2.0", text[6])
	assert.Equal(t, "   limitations under the License.", text[len(text)-1])

	again, _, err := Load(filepath.Join("testdata", "LICENSE"))
	require.NoError(t, err)
	assert.Equal(t, text, again)
}

func TestLoadMissing(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "LICENSE"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading license file")
}

func TestExtract(t *testing.T) {
	for _, test := range []struct {
		name     string
		doc      string
		expected Text
		found    bool
	}{
		{
			name: "boilerplate",
			doc: strings.Join([]string{
				"terms",
				"APPENDIX: How to apply the Apache License to your work.",
				"  attach the following notice.",
				"  Copyright [yyyy] [name of copyright owner]",
				"",
				"  limitations under the License.",
				"trailer",
			}, "\n"),
			expected: Text{"  Copyright [yyyy] [name of copyright owner]", "", "  limitations under the License."},
			found:    true,
		},
		{
			name: "copyright before the appendix is ignored",
			doc: strings.Join([]string{
				"Copyright 2004 somebody",
				"APPENDIX: How to apply the Apache License to your work.",
				"Copyright mine",
				"limitations under the License.",
			}, "\n"),
			expected: Text{"Copyright mine", "limitations under the License."},
			found:    true,
		},
		{
			name:     "no appendix",
			doc:      "\n\n  just some text\nlimitations under the License.\n\n",
			expected: Text{"just some text", "limitations under the License."},
		},
		{
			name:     "no copyright line",
			doc:      "APPENDIX: How to apply the Apache License to your work.\nlimitations under the License.",
			expected: Text{"APPENDIX: How to apply the Apache License to your work.", "limitations under the License."},
		},
		{
			name:     "no end marker",
			doc:      "APPENDIX: How to apply the Apache License to your work.\nCopyright me\nno end",
			expected: Text{"APPENDIX: How to apply the Apache License to your work.", "Copyright me", "no end"},
		},
		{
			name:     "crlf",
			doc:      "APPENDIX: How to apply the Apache License to your work.\r\nCopyright me\r\nlimitations under the License.\r\n",
			expected: Text{"Copyright me", "limitations under the License."},
			found:    true,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			text, found := Extract(test.doc)
			assert.Equal(t, test.found, found)
			assert.Equal(t, test.expected, text)
		})
	}
}

func TestTextString(t *testing.T) {
	assert.Equal(t, "a\n\nb", Text{"a", "", "b"}.String())
}
