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

import "github.com/rs/zerolog"

const (
	// typeGroupAssociations is the structure type holding association
	// groups.
	typeGroupAssociations = 14

	// associationLen is the length of one group entry: a group name string
	// reference, an item type and an item handle byte.
	associationLen = 3
)

// resolveAssociations decodes the items referenced by every group
// associations structure in ss, in table order. Referenced structures are
// decoded again even though the main pass has already produced them.
func resolveAssociations(ss []*Structure, r *Registry, log zerolog.Logger) []Record {
	var out []Record
	for _, g := range ss {
		if g.Header.Type != typeGroupAssociations {
			continue
		}
		out = append(out, associate(g, ss, r, log)...)
	}

	return out
}

// associate walks the group entries of g. For each entry, every structure
// in ss of the entry's item type is decoded through the decoder selected by
// the entry's item handle byte, not the structure's own type. Firmware
// which follows DSP0134 puts a handle there, so most matches select an
// unrelated decoder or none at all; existing consumers depend on the
// records this produces.
func associate(g *Structure, ss []*Structure, r *Registry, log zerolog.Logger) []Record {
	f := fieldsOf(g)
	if !f.has(headerLen, associationLen) {
		return nil
	}

	var out []Record
	for off := headerLen; f.has(off, associationLen); off += associationLen {
		name := "Unknown"
		if i := int(f.u8(off)); i > 0 && i <= len(g.Strings) {
			name = g.StringAt(i)
		}

		itemType := f.u8(off + 1)
		code := f.u8(off + 2)

		for _, s := range ss {
			if s.Header.Type != itemType {
				continue
			}

			rec, ok := r.DecodeAs(s, code)
			if !ok || rec.ObjectType == "" {
				continue
			}

			log.Debug().
				Str("group", name).
				Uint16("group_handle", g.Header.Handle).
				Uint16("handle", s.Header.Handle).
				Str("object_type", rec.ObjectType).
				Msg("resolved group association")

			out = append(out, rec)
		}
	}

	return out
}
