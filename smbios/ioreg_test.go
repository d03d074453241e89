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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseIORegistry(t *testing.T) {
	tests := []struct {
		name      string
		out       string
		snap      *Snapshot
		wantError bool
	}{
		{
			name:      "empty",
			wantError: true,
		},
		{
			name: "no entry point",
			out: `+-o AppleSMBIOS  <class AppleSMBIOS, id 0x100000123>
    {
      "SMBIOS" = <7f0401000000>
    }`,
			wantError: true,
		},
		{
			name: "bad hex",
			out: `    {
      "SMBIOS-EPS" = <5f534d5f>
      "SMBIOS" = <zz>
    }`,
			wantError: true,
		},
		{
			name: "OK",
			out: `+-o AppleSMBIOS  <class AppleSMBIOS, id 0x100000123>
    {
      "IOClass" = "AppleSMBIOS"
      "SMBIOS-EPS" = <5f534d5f0105>
      "IOPropertyMatch" = {"compatible"="smbios"}
      "SMBIOS" = <7f0401000000>
    }`,
			snap: &Snapshot{
				EntryPoint: []byte{'_', 'S', 'M', '_', 0x01, 0x05},
				Table:      []byte{127, 0x04, 0x01, 0x00, 0x00, 0x00},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, err := parseIORegistry(tt.out)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.snap, snap)
		})
	}
}
