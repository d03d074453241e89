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
	"encoding/hex"
	"fmt"
	"strings"
)

// ioreg property names of the AppleSMBIOS registry entry.
const (
	ioregEntryPoint = `"SMBIOS-EPS"`
	ioregTable      = `"SMBIOS"`
)

// parseIORegistry decodes the entry point and structure table from the
// output of `ioreg -rd1 -c AppleSMBIOS`, where both appear as hex encoded
// data properties:
//
//	"SMBIOS-EPS" = <5f534d5f...>
//	"SMBIOS" = <00180000...>
func parseIORegistry(out string) (*Snapshot, error) {
	var eps, table string
	for _, line := range strings.Split(out, "\n") {
		k, v, ok := strings.Cut(line, "=")
		if !ok || strings.Contains(v, "=") {
			continue
		}

		switch strings.TrimSpace(k) {
		case ioregEntryPoint:
			eps = unwrap(v)
		case ioregTable:
			table = unwrap(v)
		}
	}
	if table == "" || eps == "" {
		return nil, fmt.Errorf("failed to extract 'SMBIOS' value from `ioreg` output.\n%s", out)
	}

	var snap Snapshot
	var err error
	if snap.EntryPoint, err = hex.DecodeString(eps); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", ioregEntryPoint, err)
	}
	if snap.Table, err = hex.DecodeString(table); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", ioregTable, err)
	}

	return &snap, nil
}

// unwrap strips the angle brackets ioreg prints around data values.
func unwrap(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "<")
	return strings.TrimSuffix(s, ">")
}
