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

// Command lsdimms lists memory DIMM information from SMBIOS.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/digitalocean/go-dmidecode/smbios"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Find SMBIOS data in operating system-specific location.
	snap, err := smbios.Stream()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read SMBIOS data")
	}

	s := smbios.NewSession(snap.EntryPoint, snap.Table, smbios.WithLogger(log.Logger))
	records := s.Decode()
	if err := s.Err(); err != nil {
		log.Fatal().Err(err).Msg("failed to decode structures")
	}

	if ep := s.EntryPoint(); ep != nil {
		major, minor, rev := ep.Version()
		fmt.Printf("SMBIOS %d.%d.%d\n", major, minor, rev)
	}

	for _, r := range records {
		// Only look at memory devices.
		if r.ObjectType != "memory_device" {
			continue
		}
		fmt.Println(dimm(r.Fields))
	}
}

// dimm formats a memory device record as a single line.
func dimm(fs smbios.Fields) string {
	locator, _ := fs.Get("device")
	size, _ := fs.Get("size")

	n, _ := size.(int64)
	if n == 0 {
		return fmt.Sprintf("[% 3s] empty", locator)
	}

	unit, v := "MB", n>>20
	if n%(1<<20) != 0 {
		unit, v = "KB", n>>10
	}

	line := fmt.Sprintf("[% 3s] DIMM: %d %s", locator, v, unit)
	if typ, _ := fs.Get("memory_type"); typ != "" {
		line += fmt.Sprintf(" %s", typ)
	}
	if speed, _ := fs.Get("speed"); speed != 0 {
		line += fmt.Sprintf(" @ %d MT/s", speed)
	}

	return line
}
