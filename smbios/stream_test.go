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

package smbios

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeRawSMBIOSData creates a buffer with a valid RawSMBIOSData struct with the
// given version and table.
func makeRawSMBIOSData(major, minor, revision byte, table []byte) []byte {
	buffer := make([]byte, rawSMBIOSDataHeaderSize+len(table))
	buffer[0] = 0
	buffer[1] = major
	buffer[2] = minor
	buffer[3] = revision
	binary.NativeEndian.PutUint32(buffer[4:8], uint32(len(table)))
	copy(buffer[8:], table)
	return buffer
}

func Test_parseRawSMBIOSData(t *testing.T) {
	// Note: buffer will be automatically created from the table if it is not
	// explicitly set to a non-nil value.
	tests := []struct {
		name   string
		buffer []byte
		table  []byte
		ok     bool
	}{
		{
			name:   "empty buffer",
			buffer: []byte{}, // purposefully not nil
		},
		{
			name:   "short buffer",
			buffer: []byte{0, 1, 2, 3, 4, 5, 6}, // only 7 bytes
		},
		{
			name:  "valid header, empty table",
			table: nil,
			ok:    true,
		},
		{
			name: "length too large",
			buffer: func() []byte {
				buf := []byte{
					0, 2, 4, 1, // version
					0, 0, 0, 0, // length placeholder
					1, 2, 3, 4, // table
				}
				binary.NativeEndian.PutUint32(buf[4:8], 5)
				return buf
			}(),
		},
		{
			name: "valid header and table",
			table: []byte{
				0x00, 0x05, 0x01, 0x00,
				0xff,
				0x00,
				0x00,

				127, 0x06, 0x03, 0x00,
				0x01, 0x02,
				'a', 'b', 'c', 'd', 0x00,
				'1', '2', '3', '4', 0x00,
				0x00,
			},
			ok: true,
		},
		{
			name: "buffer larger than needed",
			buffer: func() []byte {
				buf := makeRawSMBIOSData(2, 4, 1, []byte{1, 2, 3, 4})
				buf = append(buf, 5, 6, 7, 8)
				return buf
			}(),
			table: []byte{1, 2, 3, 4},
			ok:    true,
		},
	}

	for _, tt := range tests {
		// Make buffer if not set explicitly
		if tt.buffer == nil {
			tt.buffer = makeRawSMBIOSData(2, 4, 1, tt.table)
		}

		t.Run(tt.name, func(t *testing.T) {
			snap, err := parseRawSMBIOSData(tt.buffer)

			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && err == nil {
				t.Fatalf("expected an error, but none occurred: %v", err)
			}

			if !tt.ok {
				t.Logf("OK error: %v", err)
				return
			}

			assert.Nil(t, snap.EntryPoint)
			if diff := cmp.Diff(len(tt.table), len(snap.Table)); diff != "" {
				t.Fatalf("unexpected table length (-want +got):\n%s", diff)
			}
			if len(tt.table) > 0 {
				if diff := cmp.Diff(tt.table, snap.Table); diff != "" {
					t.Fatalf("unexpected table (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func Test_splitEntryPoint(t *testing.T) {
	ep := []byte{
		'_', 'S', 'M', '3', '_',
		0x86,
		0x18,
		0x3,
		0x0,
		0x0,
		0x1,
		0x0,
		0x53, 0x9, 0x0, 0x0,
		0xb0, 0xb3, 0xe, 0x0, 0x0, 0x0, 0x0, 0x0,
	}
	table := []byte{127, 0x04, 0x01, 0x00, 0x00, 0x00}

	snap, err := splitEntryPoint(append(append([]byte(nil), ep...), table...))
	require.NoError(t, err)

	assert.Equal(t, ep, snap.EntryPoint)
	assert.Equal(t, table, snap.Table)

	_, err = splitEntryPoint([]byte("not an entry point"))
	assert.ErrorIs(t, err, ErrAnchorNotFound)
}

func TestReadSnapshot(t *testing.T) {
	dir := t.TempDir()
	write := func(name string, b []byte) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, b, 0o644))
		return p
	}

	ep := []byte{'_', 'S', 'M', '_', 0x01, 0x06}
	table := []byte{127, 0x04, 0x01, 0x00, 0x00, 0x00}

	entryPath := write("smbios_entry_point", ep)
	tablePath := write("DMI", table)
	dumpPath := write("dump", append(append([]byte(nil), ep...), table...))

	tests := []struct {
		name      string
		entry     string
		table     string
		snap      *Snapshot
		wantError bool
	}{
		{
			name:      "no paths",
			wantError: true,
		},
		{
			name:  "entry point and table",
			entry: entryPath,
			table: tablePath,
			snap:  &Snapshot{EntryPoint: ep, Table: table},
		},
		{
			name:  "table only",
			table: tablePath,
			snap:  &Snapshot{Table: table},
		},
		{
			name:  "combined dump",
			entry: dumpPath,
			snap:  &Snapshot{EntryPoint: ep, Table: table},
		},
		{
			name:      "missing table",
			entry:     entryPath,
			table:     filepath.Join(dir, "missing"),
			wantError: true,
		},
		{
			name:      "dump without entry point",
			entry:     tablePath,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, err := ReadSnapshot(tt.entry, tt.table)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			if diff := cmp.Diff(tt.snap, snap); diff != "" {
				t.Fatalf("unexpected snapshot (-want +got):\n%s", diff)
			}
		})
	}
}
