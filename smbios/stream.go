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
	"errors"
	"fmt"
	"os"
)

// A Snapshot holds the raw SMBIOS data of a system.
type Snapshot struct {
	// EntryPoint is the raw entry point. It is nil on platforms which do
	// not expose one, such as Windows.
	EntryPoint []byte

	// Table is the raw structure table.
	Table []byte
}

// Stream reads the SMBIOS entry point and structure table of the running
// system. Reading them usually requires elevated privileges.
func Stream() (*Snapshot, error) {
	return stream()
}

// ReadSnapshot reads a Snapshot from files, such as the sysfs files or dumps
// of them. An empty entryPath leaves the entry point out of the Snapshot.
// An empty tablePath reads the structure table from the same file as the
// entry point, directly following it.
func ReadSnapshot(entryPath, tablePath string) (*Snapshot, error) {
	if entryPath == "" && tablePath == "" {
		return nil, errors.New("smbios: no entry point or table path given")
	}

	if tablePath == "" {
		b, err := os.ReadFile(entryPath)
		if err != nil {
			return nil, err
		}
		return splitEntryPoint(b)
	}

	var snap Snapshot
	if entryPath != "" {
		b, err := os.ReadFile(entryPath)
		if err != nil {
			return nil, err
		}
		snap.EntryPoint = b
	}

	b, err := os.ReadFile(tablePath)
	if err != nil {
		return nil, err
	}
	snap.Table = b

	return &snap, nil
}

// splitEntryPoint splits a buffer holding an entry point directly followed
// by its structure table, as read from /dev/smbios.
func splitEntryPoint(b []byte) (*Snapshot, error) {
	ep, err := ParseEntryPoint(b)
	if err != nil {
		return nil, err
	}

	n := int(ep.Length)
	return &Snapshot{
		EntryPoint: b[:n:n],
		Table:      b[n:],
	}, nil
}

// rawSMBIOSDataHeaderSize is the size of the RawSMBIOSData header written
// by GetSystemFirmwareTable ahead of the structure table.
const rawSMBIOSDataHeaderSize = 8

// parseRawSMBIOSData extracts the structure table from the RawSMBIOSData
// buffer returned by GetSystemFirmwareTable for the 'RSMB' provider:
//
//	struct RawSMBIOSData {
//		BYTE  Used20CallingMethod;
//		BYTE  SMBIOSMajorVersion;
//		BYTE  SMBIOSMinorVersion;
//		BYTE  DmiRevision;
//		DWORD Length;
//		BYTE  SMBIOSTableData[];
//	}
func parseRawSMBIOSData(buffer []byte) (*Snapshot, error) {
	if len(buffer) < rawSMBIOSDataHeaderSize {
		return nil, fmt.Errorf("smbios: RawSMBIOSData buffer too short: %d bytes", len(buffer))
	}

	size := binary.NativeEndian.Uint32(buffer[4:8])
	if avail := uint32(len(buffer) - rawSMBIOSDataHeaderSize); size > avail {
		return nil, fmt.Errorf("smbios: RawSMBIOSData reports %d table bytes, only %d present", size, avail)
	}

	table := buffer[rawSMBIOSDataHeaderSize : rawSMBIOSDataHeaderSize+int(size)]

	return &Snapshot{Table: table}, nil
}
