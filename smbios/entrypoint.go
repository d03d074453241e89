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
	"bytes"
	"errors"
	"io"

	"github.com/kaitai-io/kaitai_struct_go_runtime/kaitai"
)

// Anchor strings used to detect entry points.
var (
	magic32 = []byte("_SM_")
	magic64 = []byte("_SM3_")
)

// Errors returned while locating and parsing an entry point.
var (
	ErrAnchorNotFound     = errors.New("smbios: entry point anchor not found")
	ErrInvalidEntryLength = errors.New("smbios: invalid entry point length")
)

// An EntryPoint is an SMBIOS entry point. EntryPoints contain various
// properties about SMBIOS, including its major, minor, and revision version
// numbers.
//
// The 32-bit form (anchor "_SM_") also reports the structure table length and
// the number of structures. The 64-bit form (anchor "_SM3_") only reports a
// maximum table size, so the table extent must be discovered by walking it.
// Decoding never relies on either value.
type EntryPoint struct {
	Anchor   string
	Length   uint8
	Major    uint8
	Minor    uint8
	Revision uint8

	// 32-bit entry point only.
	MaxStructureSize uint16
	TableLength      uint16
	NumberStructures uint16

	// 64-bit entry point only.
	DocRevision  uint8
	TableMaxSize uint32

	TableAddress uint64
}

// Version returns the SMBIOS version reported by the entry point.
func (ep *EntryPoint) Version() (major, minor, revision int) {
	return int(ep.Major), int(ep.Minor), int(ep.Revision)
}

// Table returns the structure table address and its reported size.
func (ep *EntryPoint) Table() (address, size int) {
	if ep.Anchor == string(magic64) {
		return int(ep.TableAddress), int(ep.TableMaxSize)
	}

	return int(ep.TableAddress), int(ep.TableLength)
}

// Is64Bit reports whether ep is an SMBIOS 3.0 (64-bit) entry point.
func (ep *EntryPoint) Is64Bit() bool { return ep.Anchor == string(magic64) }

// ParseEntryPoint parses an EntryPoint from b. It does not verify the
// checksum of b; see Checksum.
func ParseEntryPoint(b []byte) (*EntryPoint, error) {
	var anchor []byte
	switch {
	case bytes.HasPrefix(b, magic32):
		anchor = magic32
	case bytes.HasPrefix(b, magic64):
		anchor = magic64
	default:
		return nil, ErrAnchorNotFound
	}

	r := newEntryReader(b)

	// The length byte shifts by one between the two forms, as do the
	// version bytes that follow it.
	lenOffset := int64(0x05)
	if len(anchor) == len(magic64) {
		lenOffset = 0x06
	}

	length, ok := r.u8(lenOffset)
	if !ok || length == 0 || int(length) > len(b) {
		return nil, ErrInvalidEntryLength
	}

	ep := &EntryPoint{
		Anchor: string(anchor),
		Length: length,
	}

	if len(anchor) == len(magic32) {
		ep.Major, _ = r.u8(0x06)
		ep.Minor, _ = r.u8(0x07)
		ep.MaxStructureSize = r.u16(0x08)
		ep.Revision, _ = r.u8(0x0a)
		ep.TableLength = r.u16(0x16)
		ep.TableAddress = uint64(r.u32(0x18))
		ep.NumberStructures = r.u16(0x1c)
		return ep, nil
	}

	ep.Major, _ = r.u8(0x07)
	ep.Minor, _ = r.u8(0x08)
	ep.DocRevision, _ = r.u8(0x09)
	ep.Revision, _ = r.u8(0x0a)
	ep.TableMaxSize = r.u32(0x0c)
	ep.TableAddress = r.u64(0x10)

	return ep, nil
}

// An entryReader reads little-endian fields at fixed offsets of an entry
// point buffer. Reads past the end of the buffer yield zero.
type entryReader struct {
	ks *kaitai.Stream
}

func newEntryReader(b []byte) *entryReader {
	return &entryReader{ks: kaitai.NewStream(bytes.NewReader(b))}
}

func (r *entryReader) seek(off int64) bool {
	_, err := r.ks.Seek(off, io.SeekStart)
	return err == nil
}

func (r *entryReader) u8(off int64) (uint8, bool) {
	if !r.seek(off) {
		return 0, false
	}
	v, err := r.ks.ReadU1()
	if err != nil {
		return 0, false
	}
	return v, true
}

func (r *entryReader) u16(off int64) uint16 {
	if !r.seek(off) {
		return 0
	}
	v, err := r.ks.ReadU2le()
	if err != nil {
		return 0
	}
	return v
}

func (r *entryReader) u32(off int64) uint32 {
	if !r.seek(off) {
		return 0
	}
	v, err := r.ks.ReadU4le()
	if err != nil {
		return 0
	}
	return v
}

func (r *entryReader) u64(off int64) uint64 {
	if !r.seek(off) {
		return 0
	}
	v, err := r.ks.ReadU8le()
	if err != nil {
		return 0
	}
	return v
}
