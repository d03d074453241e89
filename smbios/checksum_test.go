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

package smbios_test

import (
	"testing"

	"github.com/digitalocean/go-dmidecode/smbios"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name string
		b    []byte
		ok   bool
	}{
		{
			name: "empty",
		},
		{
			name: "all zero",
			b:    make([]byte, 16),
		},
		{
			name: "wraps to zero",
			b:    []byte{0x80, 0x80},
			ok:   true,
		},
		{
			name: "non-zero sum",
			b:    []byte{0x01, 0x02, 0x03},
			ok:   true,
		},
		{
			name: "32-bit entry point",
			b:    entryPoint32,
			ok:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if want, got := tt.ok, smbios.Checksum(tt.b); want != got {
				t.Fatalf("unexpected checksum result: want %v, got %v", want, got)
			}
		})
	}
}
