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

import "sync"

// A StructureFunc decodes a Structure into Fields. The returned Fields must
// include an "object_type" entry naming the kind of information decoded.
// A StructureFunc returning no Fields yields no Record.
type StructureFunc func(s *Structure) Fields

// A Registry maps SMBIOS structure type codes to StructureFuncs.
//
// Codes may be reserved: a reserved code is known but deliberately decodes
// to nothing, just like an unknown code.
type Registry struct {
	mu    sync.RWMutex
	funcs map[uint8]StructureFunc
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[uint8]StructureFunc)}
}

// Register installs fn as the decoder for type code t, replacing any
// decoder or reservation already present.
func (r *Registry) Register(t uint8, fn StructureFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs[t] = fn
}

// Reserve marks type code t as known but not decoded.
func (r *Registry) Reserve(t uint8) {
	r.Register(t, nil)
}

// Lookup returns the decoder for type code t. ok is false for unknown and
// reserved codes.
func (r *Registry) Lookup(t uint8) (fn StructureFunc, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn = r.funcs[t]
	return fn, fn != nil
}

// Decode decodes s with the decoder registered for its own type.
func (r *Registry) Decode(s *Structure) (Record, bool) {
	return r.DecodeAs(s, s.Header.Type)
}

// DecodeAs decodes s with the decoder registered for type code t, which
// need not match s's own type.
//
// The resulting Record carries s's "type" and "handle" unless the decoder
// already produced fields with those names. ok is false when t has no
// decoder or the decoder produced nothing.
func (r *Registry) DecodeAs(s *Structure, t uint8) (Record, bool) {
	fn, ok := r.Lookup(t)
	if !ok {
		return Record{}, false
	}

	fs := fn(s)
	if len(fs) == 0 {
		return Record{}, false
	}

	ot, _ := fs.Get("object_type")
	name, _ := ot.(string)

	fs.Add("type", int(s.Header.Type))
	fs.Add("handle", int(s.Header.Handle))

	return Record{ObjectType: name, Fields: fs}, true
}

// DefaultRegistry returns a new Registry holding every structure type this
// package knows how to decode. Each call returns a fresh copy which the
// caller may modify.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for t, fn := range builtins {
		r.Register(t, fn)
	}
	for _, t := range []uint8{37, 38, 40, 42} {
		r.Reserve(t)
	}

	return r
}

// builtins maps type codes to their decoders.
var builtins = map[uint8]StructureFunc{
	0:  biosInformation,
	1:  systemInformation,
	2:  baseboardInformation,
	3:  chassisInformation,
	4:  processorInformation,
	5:  memoryControllerInformation,
	6:  memoryModuleInformation,
	7:  cacheInformation,
	8:  portConnectorInformation,
	9:  systemSlotInformation,
	10: onboardDeviceInformation,
	11: oemStrings,
	12: systemConfigurationOptions,
	13: biosLanguageInformation,
	16: physicalMemoryArray,
	17: memoryDevice,
	18: memoryErrorInformation,
	21: builtinPointingDevice,
	22: portableBattery,
	26: voltageProbe,
	27: coolingDevice,
	28: temperatureProbe,
	29: electricalCurrentProbe,
	34: managementDeviceInformation,
	41: onboardDeviceExtendedInformation,
	44: processorAdditionalInformation,
}
