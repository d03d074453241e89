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

import "errors"

// ErrChecksum is returned when a buffer fails Checksum.
var ErrChecksum = errors.New("smbios: checksum error")

// Checksum sums every byte of b as an unsigned value and reports whether the
// sum is non-zero.
//
// This is a sanity probe against empty or zeroed buffers, not the DSP0134
// checksum rule (sum of the entry point modulo 256 equals zero): a correctly
// checksummed entry point passes because its unreduced sum is non-zero.
func Checksum(b []byte) bool {
	sum := 0
	for _, c := range b {
		sum += int(c)
	}

	return sum != 0
}
