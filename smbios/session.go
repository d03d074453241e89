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
	"fmt"

	"github.com/rs/zerolog"
)

// An Option configures a Session.
type Option func(*Session)

// WithRegistry sets the Registry a Session decodes structures with. The
// default is DefaultRegistry.
func WithRegistry(r *Registry) Option {
	return func(s *Session) {
		s.registry = r
	}
}

// WithLogger sets the logger a Session reports non-fatal conditions to.
// The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// A Session decodes one SMBIOS snapshot: an entry point and the structure
// table it describes.
//
// A Session holds no state shared with other Sessions, and each call to
// Decode starts over from the raw buffers. A Session must not be used from
// multiple goroutines at once.
type Session struct {
	entryPoint []byte
	table      []byte

	registry *Registry
	log      zerolog.Logger

	ep         *EntryPoint
	structures []*Structure
	records    []Record
	reduced    bool
	err        error
}

// NewSession creates a Session over the raw entry point and structure table
// buffers. entryPoint may be nil on platforms which expose no entry point,
// in which case only the table is decoded.
func NewSession(entryPoint, table []byte, opts ...Option) *Session {
	s := &Session{
		entryPoint: entryPoint,
		table:      table,
		log:        zerolog.Nop(),
	}
	for _, o := range opts {
		o(s)
	}
	if s.registry == nil {
		s.registry = DefaultRegistry()
	}

	return s
}

// Decode decodes the snapshot and returns its records in table order,
// followed by the records produced by group associations.
//
// A damaged entry point does not stop decoding: the failure is kept and the
// table is decoded anyway, see Reduced. A structure table which fails
// Checksum produces no records.
func (s *Session) Decode() []Record {
	s.ep, s.structures, s.records, s.reduced, s.err = nil, nil, nil, false, nil

	if s.entryPoint != nil {
		s.decodeEntryPoint()
	}

	if !Checksum(s.table) {
		s.fail(fmt.Errorf("structure table: %w", ErrChecksum))
		s.log.Error().Err(s.err).Int("length", len(s.table)).Msg("structure table rejected")
		return nil
	}

	ss, stop := walk(s.table)
	if stop < len(s.table) {
		s.log.Debug().
			Int("offset", stop).
			Int("remaining", len(s.table)-stop).
			Msg("structure table walk stopped before end of buffer")
	}
	s.structures = ss

	for _, st := range ss {
		rec, ok := s.registry.Decode(st)
		if !ok || rec.ObjectType == "" {
			if st.Header.Type != typeEndOfTable && st.Header.Type != typeGroupAssociations {
				s.log.Debug().
					Uint8("type", st.Header.Type).
					Uint16("handle", st.Header.Handle).
					Msg("no decoder for structure")
			}
			continue
		}
		s.records = append(s.records, rec)
	}

	s.records = append(s.records, resolveAssociations(ss, s.registry, s.log)...)

	return s.records
}

func (s *Session) decodeEntryPoint() {
	if !Checksum(s.entryPoint) {
		s.degrade(fmt.Errorf("entry point: %w", ErrChecksum))
		return
	}

	ep, err := ParseEntryPoint(s.entryPoint)
	if err != nil {
		s.degrade(fmt.Errorf("entry point: %w", err))
		return
	}
	s.ep = ep

	major, minor, rev := ep.Version()
	s.log.Debug().
		Str("anchor", ep.Anchor).
		Str("version", fmt.Sprintf("%d.%d.%d", major, minor, rev)).
		Msg("decoded entry point")
}

// degrade records an entry point failure and switches the session to
// reduced confidence.
func (s *Session) degrade(err error) {
	s.reduced = true
	s.fail(err)
	s.log.Warn().Err(err).Msg("decoding structure table without a valid entry point")
}

func (s *Session) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

// EntryPoint returns the entry point decoded by the last call to Decode, or
// nil if none was supplied or it could not be decoded.
func (s *Session) EntryPoint() *EntryPoint { return s.ep }

// Structures returns the raw structures walked by the last call to Decode.
func (s *Session) Structures() []*Structure { return s.structures }

// Records returns the records produced by the last call to Decode.
func (s *Session) Records() []Record { return s.records }

// Reduced reports whether the last call to Decode decoded the structure
// table without a valid entry point, although one was supplied.
func (s *Session) Reduced() bool { return s.reduced }

// Err returns the first failure encountered by the last call to Decode,
// provided it left the session without any records. Failures which did not
// prevent decoding are reported through Reduced.
func (s *Session) Err() error {
	if len(s.records) > 0 {
		return nil
	}

	return s.err
}
