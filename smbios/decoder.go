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
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

const (
	// headerLen is the length of the Header structure.
	headerLen = 4

	// typeEndOfTable indicates the end of a stream of Structures.
	typeEndOfTable = 127
)

// A Decoder decodes Structures from a stream.
type Decoder struct {
	r io.Reader
}

// NewDecoder creates a Decoder which decodes Structures from the input stream.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Decode reads the whole stream and walks it into Structures. Only errors
// from the underlying reader are returned: malformed or truncated tables
// yield the Structures decoded before the damage.
func (d *Decoder) Decode() ([]*Structure, error) {
	b, err := io.ReadAll(d.r)
	if err != nil {
		return nil, err
	}

	return Walk(b), nil
}

// Walk splits the structure table b into Structures.
//
// Walking ends when b is exhausted, when fewer than a header's worth of bytes
// remain, or when a header declares a length which is too short or runs past
// the end of b. The entry point's table length and structure count are never
// consulted.
func Walk(b []byte) []*Structure {
	ss, _ := walk(b)
	return ss
}

// walk is Walk, additionally returning the offset at which walking stopped.
func walk(b []byte) ([]*Structure, int) {
	var ss []*Structure

	i := 0
	for i < len(b) {
		if len(b)-i < headerLen {
			break
		}

		h := Header{
			Type:   b[i],
			Length: b[i+1],
			Handle: binary.LittleEndian.Uint16(b[i+2 : i+4]),
		}

		l := int(h.Length)
		if l < headerLen || len(b)-i < l {
			break
		}

		data := b[i : i+l : i+l]

		strs, next := parseStrings(b, i+l)

		ss = append(ss, &Structure{
			Header:  h,
			Data:    data,
			Strings: strs,
		})

		i = next
	}

	return ss, i
}

// parseStrings parses the string-set starting at offset i of b, returning
// the strings and the offset of the byte following the string-set.
func parseStrings(b []byte, i int) ([]string, int) {
	n := len(b)
	if i >= n {
		return nil, n
	}

	// If no string-set present, only the double null delimiter follows the
	// formatted area.
	if b[i] == 0x00 && (i+1 >= n || b[i+1] == 0x00) {
		return nil, min(i+2, n)
	}

	var ss []string
	start := i
	for i < n {
		if b[i] != 0x00 {
			i++
			continue
		}

		ss = append(ss, decodeString(b[start:i]))
		i++

		// If two null bytes appear in a row, end of string-set.
		if i >= n || b[i] == 0x00 {
			return ss, min(i+1, n)
		}
		start = i
	}

	// The buffer ended inside a string; keep what was read.
	return append(ss, decodeString(b[start:n])), n
}

// decodeString converts raw string bytes to a string. Firmware strings are
// usually ASCII; anything which is not valid UTF-8 is treated as ISO-8859-1.
func decodeString(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}

	s, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}

	return string(s)
}
