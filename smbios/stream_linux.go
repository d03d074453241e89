// Copyright 2017 DigitalOcean.
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

//go:build linux

package smbios

import (
	"errors"
	"os"
)

// sysfs locations for SMBIOS information.
const (
	sysfsDMI        = "/sys/firmware/dmi/tables/DMI"
	sysfsEntryPoint = "/sys/firmware/dmi/tables/smbios_entry_point"
)

// stream reads the SMBIOS entry point and structure table from sysfs.
func stream() (*Snapshot, error) {
	// First, check for the sysfs location present in modern kernels.
	_, err := os.Stat(sysfsDMI)
	switch {
	case err == nil:
	case os.IsNotExist(err):
		// TODO(mdlayher): try reading /dev/mem and fail if no data present.
		return nil, errors.New("reading from /dev/mem not yet supported on Linux")
	default:
		return nil, err
	}

	// Some kernels expose the table without the entry point; the table
	// alone is still decodable.
	entryPath := sysfsEntryPoint
	if _, err := os.Stat(sysfsEntryPoint); os.IsNotExist(err) {
		entryPath = ""
	}

	return ReadSnapshot(entryPath, sysfsDMI)
}
