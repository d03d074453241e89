// Copyright 2017-2018 DigitalOcean.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitalocean/go-dmidecode/smbios"
)

func testRecords() []smbios.Record {
	return []smbios.Record{{
		ObjectType: "oem_strings",
		Fields: smbios.Fields{
			{Key: "object_type", Value: "oem_strings"},
			{Key: "oem_strings", Value: []string{"one", "two"}},
			{Key: "type", Value: 11},
			{Key: "handle", Value: 32},
		},
	}}
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderJSON(&buf, testRecords()))

	want := `{
    "object_type": "oem_strings",
    "oem_strings": [
        "one",
        "two"
    ],
    "type": 11,
    "handle": 32
}
`
	assert.Equal(t, want, buf.String())
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderYAML(&buf, testRecords()))

	want := `- object_type: oem_strings
  oem_strings:
    - one
    - two
  type: 11
  handle: 32
`
	assert.Equal(t, want, buf.String())
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderTable(&buf, testRecords()))

	out := buf.String()
	for _, s := range []string{"oem_strings", "FIELD", "VALUE", "one", "two", "handle", "32"} {
		assert.Contains(t, out, s)
	}
	assert.NotContains(t, out, "object_type")
}

func TestCell(t *testing.T) {
	assert.Equal(t, "42", cell(42))
	assert.Equal(t, "a\nb", cell([]string{"a", "b"}))
	assert.Equal(t, "device_type=Video description=VGA\ndevice_type=Ethernet description=NIC", cell([]smbios.Fields{
		{{Key: "device_type", Value: "Video"}, {Key: "description", Value: "VGA"}},
		{{Key: "device_type", Value: "Ethernet"}, {Key: "description", Value: "NIC"}},
	}))
}

func TestRunTableFile(t *testing.T) {
	table := []byte{
		0x0b, 0x05, 0x20, 0x00,
		0x01,
		'v', 'e', 'n', 'd', 'o', 'r', 0x00,
		0x00,

		127, 0x04, 0x21, 0x00,
		0x00,
		0x00,
	}

	p := filepath.Join(t.TempDir(), "DMI")
	require.NoError(t, os.WriteFile(p, table, 0o644))

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"--table", p, "--format", "yaml"})
	require.NoError(t, rootCmd.Execute())

	assert.True(t, strings.HasPrefix(buf.String(), "- object_type: oem_strings\n"), buf.String())
	assert.Contains(t, buf.String(), "- vendor")

	rootCmd.SetArgs([]string{"--table", p, "--format", "xml"})
	assert.Error(t, rootCmd.Execute())
}
