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

import "strings"

// A Header is a Structure's header.
type Header struct {
	Type   uint8
	Length uint8
	Handle uint16
}

// A Structure is an SMBIOS structure.
type Structure struct {
	Header Header

	// Data is the formatted area of the structure, including its 4 byte
	// header, so that offsets match the layouts in DSP0134. It aliases the
	// table buffer the structure was walked from and must not be modified.
	Data []byte

	// Strings is the structure's string-set. String references stored in
	// Data are 1-based indices into it.
	Strings []string
}

// StringAt resolves the 1-based string reference i. Zero and out of range
// references resolve to the empty string.
func (s *Structure) StringAt(i int) string {
	if i <= 0 || i > len(s.Strings) {
		return ""
	}

	return strings.TrimSpace(s.Strings[i-1])
}
