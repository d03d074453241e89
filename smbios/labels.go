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

// A label maps a code, or a bit mask, to its display name.
type label struct {
	code uint64
	name string
}

// labels is an ordered table of labels. Tables are static data transcribed
// from DSP0134; duplicate codes are kept as transcribed and the first entry
// wins on lookup.
type labels []label

// lookup returns the name of the first label whose code equals v.
func (ls labels) lookup(v uint64) string {
	for _, l := range ls {
		if l.code == v {
			return l.name
		}
	}
	return ""
}

// flags returns, in table order, the name of every label whose mask shares a
// bit with v.
func (ls labels) flags(v uint64) []string {
	var out []string
	for _, l := range ls {
		if l.code&v != 0 {
			out = append(out, l.name)
		}
	}
	return out
}
