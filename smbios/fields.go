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
	"strings"
)

// probeUnknown is the value reported by probe and cooling structures for a
// reading which is not known.
const probeUnknown = 0x8000

// A fields reads the formatted area of a Structure at DSP0134 offsets.
//
// Every read is bounds checked: a field which lies past the end of the
// formatted area, as happens with structures from older SMBIOS revisions,
// reads as its zero value.
type fields struct {
	s *Structure
}

func fieldsOf(s *Structure) fields { return fields{s: s} }

// has reports whether width bytes at off are present.
func (f fields) has(off, width int) bool {
	return off >= 0 && off+width <= len(f.s.Data)
}

func (f fields) u8(off int) uint8 {
	if !f.has(off, 1) {
		return 0
	}
	return f.s.Data[off]
}

func (f fields) u16(off int) uint16 {
	if !f.has(off, 2) {
		return 0
	}
	return binary.LittleEndian.Uint16(f.s.Data[off : off+2])
}

func (f fields) u32(off int) uint32 {
	if !f.has(off, 4) {
		return 0
	}
	return binary.LittleEndian.Uint32(f.s.Data[off : off+4])
}

func (f fields) u64(off int) uint64 {
	if !f.has(off, 8) {
		return 0
	}
	return binary.LittleEndian.Uint64(f.s.Data[off : off+8])
}

// bytes returns n bytes at off, or nil if they are not all present.
func (f fields) bytes(off, n int) []byte {
	if !f.has(off, n) {
		return nil
	}
	return f.s.Data[off : off+n]
}

// str resolves the string reference stored in the byte at off.
func (f fields) str(off int) string {
	return f.s.StringAt(int(f.u8(off)))
}

// enum looks up the byte at off in ls. A missing byte yields "".
func (f fields) enum(off int, ls labels) string {
	if !f.has(off, 1) {
		return ""
	}
	return ls.lookup(uint64(f.s.Data[off]))
}

// probe converts a 16-bit probe reading at off, in thousandths of a unit,
// to a float. The unknown sentinel and missing fields read as 0.
func (f fields) probe(off int) float64 {
	v := f.u16(off)
	if v == probeUnknown {
		return 0
	}
	return float64(v) / 1000
}

// join renders a flag list for display.
func join(ss []string) string {
	return strings.Join(ss, ", ")
}
