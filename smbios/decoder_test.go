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
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/digitalocean/go-dmidecode/smbios"
)

// acmeTable is a table holding a single system information structure whose
// manufacturer and product name reference the strings "Acme" and "ModelX".
func acmeTable() []byte {
	b := []byte{0x01, 0x1b, 0x01, 0x00}
	data := make([]byte, 0x1b-4)
	data[0] = 1 // manufacturer
	data[1] = 2 // product name
	b = append(b, data...)
	return append(b, "Acme\x00ModelX\x00\x00"...)
}

func TestDecoder(t *testing.T) {
	tests := []struct {
		name string
		b    []byte
		ss   []*smbios.Structure
	}{
		{
			name: "short header",
			b:    []byte{0x00},
		},
		{
			name: "length too short",
			b:    []byte{0x00, 0x00, 0x00, 0x00},
		},
		{
			name: "length too long",
			b:    []byte{0x00, 0xff, 0x00, 0x00},
		},
		{
			name: "string not terminated",
			b: []byte{
				0x01, 0x04, 0x01, 0x00,
				'a', 'b', 'c', 'd',
			},
			ss: []*smbios.Structure{{
				Header: smbios.Header{
					Type:   1,
					Length: 4,
					Handle: 1,
				},
				Data:    []byte{0x01, 0x04, 0x01, 0x00},
				Strings: []string{"abcd"},
			}},
		},
		{
			name: "no end of table",
			b: []byte{
				0x01, 0x04, 0x01, 0x00,
				0x00,
				0x00,
			},
			ss: []*smbios.Structure{{
				Header: smbios.Header{
					Type:   1,
					Length: 4,
					Handle: 1,
				},
				Data: []byte{0x01, 0x04, 0x01, 0x00},
			}},
		},
		{
			name: "bad second message",
			b: []byte{
				0x01, 0x0c, 0x02, 0x00,
				0xde, 0xad, 0xbe, 0xef, 0xde, 0xad, 0xbe, 0xef,
				'd', 'e', 'a', 'd', 'b', 'e', 'e', 'f', 0x00,
				0x00,

				0xff,
			},
			ss: []*smbios.Structure{{
				Header: smbios.Header{
					Type:   1,
					Length: 12,
					Handle: 2,
				},
				Data: []byte{
					0x01, 0x0c, 0x02, 0x00,
					0xde, 0xad, 0xbe, 0xef, 0xde, 0xad, 0xbe, 0xef,
				},
				Strings: []string{"deadbeef"},
			}},
		},
		{
			name: "truncated last structure",
			b: []byte{
				127, 0x04, 0x01, 0x00,
				0x00,
				0x00,

				0x01, 50, 0x02, 0x00,
				0x01, 0x02, 0x03, 0x04, 0x05, 0x06,
			},
			ss: []*smbios.Structure{{
				Header: smbios.Header{
					Type:   127,
					Length: 4,
					Handle: 1,
				},
				Data: []byte{127, 0x04, 0x01, 0x00},
			}},
		},
		{
			name: "OK, one, no format, no strings",
			b: []byte{
				127, 0x04, 0x01, 0x00,
				0x00,
				0x00,
			},
			ss: []*smbios.Structure{{
				Header: smbios.Header{
					Type:   127,
					Length: 4,
					Handle: 1,
				},
				Data: []byte{127, 0x04, 0x01, 0x00},
			}},
		},
		{
			name: "OK, one, format, no strings",
			b: []byte{
				127, 0x06, 0x01, 0x00,
				0x01, 0x02,
				0x00,
				0x00,
			},
			ss: []*smbios.Structure{{
				Header: smbios.Header{
					Type:   127,
					Length: 6,
					Handle: 1,
				},
				Data: []byte{127, 0x06, 0x01, 0x00, 0x01, 0x02},
			}},
		},
		{
			name: "OK, one, format, strings",
			b: []byte{
				127, 0x06, 0x01, 0x00,
				0x01, 0x02,
				'a', 'b', 'c', 'd', 0x00,
				'1', '2', '3', '4', 0x00,
				0x00,
			},
			ss: []*smbios.Structure{{
				Header: smbios.Header{
					Type:   127,
					Length: 6,
					Handle: 1,
				},
				Data:    []byte{127, 0x06, 0x01, 0x00, 0x01, 0x02},
				Strings: []string{"abcd", "1234"},
			}},
		},
		{
			name: "OK, latin-1 string",
			b: []byte{
				0x0b, 0x05, 0x01, 0x00,
				0x01,
				'c', 'a', 'f', 0xe9, 0x00,
				0x00,
			},
			ss: []*smbios.Structure{{
				Header: smbios.Header{
					Type:   11,
					Length: 5,
					Handle: 1,
				},
				Data:    []byte{0x0b, 0x05, 0x01, 0x00, 0x01},
				Strings: []string{"café"},
			}},
		},
		{
			name: "OK, acme",
			b:    acmeTable(),
			ss: []*smbios.Structure{{
				Header: smbios.Header{
					Type:   1,
					Length: 0x1b,
					Handle: 1,
				},
				Data:    acmeTable()[:0x1b],
				Strings: []string{"Acme", "ModelX"},
			}},
		},
		{
			name: "OK, multiple",
			b: []byte{
				0x00, 0x05, 0x01, 0x00,
				0xff,
				0x00,
				0x00,

				0x01, 0x0c, 0x02, 0x00,
				0xde, 0xad, 0xbe, 0xef, 0xde, 0xad, 0xbe, 0xef,
				'd', 'e', 'a', 'd', 'b', 'e', 'e', 'f', 0x00,
				0x00,

				127, 0x06, 0x03, 0x00,
				0x01, 0x02,
				'a', 'b', 'c', 'd', 0x00,
				'1', '2', '3', '4', 0x00,
				0x00,
			},
			ss: []*smbios.Structure{
				{
					Header: smbios.Header{
						Type:   0,
						Length: 5,
						Handle: 1,
					},
					Data: []byte{0x00, 0x05, 0x01, 0x00, 0xff},
				},
				{
					Header: smbios.Header{
						Type:   1,
						Length: 12,
						Handle: 2,
					},
					Data: []byte{
						0x01, 0x0c, 0x02, 0x00,
						0xde, 0xad, 0xbe, 0xef, 0xde, 0xad, 0xbe, 0xef,
					},
					Strings: []string{"deadbeef"},
				},
				{
					Header: smbios.Header{
						Type:   127,
						Length: 6,
						Handle: 3,
					},
					Data:    []byte{127, 0x06, 0x03, 0x00, 0x01, 0x02},
					Strings: []string{"abcd", "1234"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := smbios.NewDecoder(bytes.NewReader(tt.b))
			ss, err := d.Decode()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if diff := cmp.Diff(tt.ss, ss); diff != "" {
				t.Fatalf("unexpected structures (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(ss, smbios.Walk(tt.b)); diff != "" {
				t.Fatalf("Walk and Decode disagree (-decode +walk):\n%s", diff)
			}
		})
	}
}

func TestWalkDataAliasesTable(t *testing.T) {
	b := acmeTable()
	ss := smbios.Walk(b)
	if len(ss) != 1 {
		t.Fatalf("unexpected number of structures: %d", len(ss))
	}

	data := ss[0].Data
	if want, got := 0x1b, cap(data); want != got {
		t.Fatalf("unexpected data capacity: want %d, got %d", want, got)
	}

	b[4] = 0x7f
	if data[4] != 0x7f {
		t.Fatal("expected structure data to alias the table buffer")
	}
}

func FuzzWalk(f *testing.F) {
	f.Add(acmeTable())
	f.Add([]byte{127, 0x04, 0x01, 0x00, 0x00, 0x00})
	f.Add([]byte{0x01, 0xff, 0x00, 0x00})

	f.Fuzz(func(t *testing.T, b []byte) {
		for i := 0; i <= len(b); i++ {
			for _, s := range smbios.Walk(b[:i]) {
				if int(s.Header.Length) != len(s.Data) {
					t.Fatalf("header length %d, data length %d", s.Header.Length, len(s.Data))
				}
				if len(s.Data) < 4 {
					t.Fatalf("data shorter than header: %d", len(s.Data))
				}
			}
		}
	})
}
