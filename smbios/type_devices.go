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

var voltageProbeStatuses = labels{
	{0x20, "Other"},
	{0x40, "Unknown"},
	{0x60, "Ok"},
	{0x80, "Non-critical"},
	{0xA0, "Critical"},
	{0xC0, "Non-recoverable"},
}

var voltageProbeLocations = labels{
	{0x01, "Other"},
	{0x02, "Unknown"},
	{0x03, "Processor"},
	{0x04, "Disk"},
	{0x05, "Peripheral Bay"},
	{0x06, "System Management Module"},
	{0x07, "Motherboard"},
	{0x08, "Memory Module"},
	{0x09, "Processor Module"},
	{0x0A, "Power Unit"},
	{0x0B, "Add-in Card"},
}

// probeFields decodes the layout shared by voltage, temperature and
// electrical current probes. Status and location share the byte at 0x05:
// status in bits 7-5, location in bits 4-0.
func probeFields(s *Structure, objectType string, statuses, locations labels) Fields {
	f := fieldsOf(s)

	var status, location string
	if f.has(0x05, 1) {
		b := f.u8(0x05)
		status = statuses.lookup(uint64(b & 0xE0))
		location = locations.lookup(uint64(b & 0x1F))
	}

	return Fields{
		{"object_type", objectType},
		{"description", f.str(0x04)},
		{"location", location},
		{"status", status},
		{"maximum_value", f.probe(0x06)},
		{"minimum_value", f.probe(0x08)},
		{"resolution", f.probe(0x0A)},
		{"tolerance", f.probe(0x0C)},
		{"accuracy", f.probe(0x0E)},
		{"nominal_value", f.probe(0x14)},
	}
}

// voltageProbe decodes type 26.
func voltageProbe(s *Structure) Fields {
	return probeFields(s, "voltage_probe", voltageProbeStatuses, voltageProbeLocations)
}

var temperatureProbeStatuses = labels{
	{0x20, "Other"},
	{0x40, "Unknown"},
	{0x60, "Ok"},
	{0x80, "Non-critical"},
	{0xA0, "Critical"},
	{0xC0, "Non-recoverable"},
}

var temperatureProbeLocations = labels{
	{0x01, "Other"},
	{0x02, "Unknown"},
	{0x03, "Processor"},
	{0x04, "Disk"},
	{0x05, "Peripheral Bay"},
	{0x06, "System Management Module"},
	{0x07, "Motherboard"},
	{0x08, "Memory Module"},
	{0x09, "Processor Module"},
	{0x0A, "Power Unit"},
	{0x0B, "Add-in Card"},
	{0x0C, "Front Panel Board"},
	{0x0D, "Back Panel Board"},
	{0x0E, "Power System Board"},
	{0x0F, "Drive Back Plane"},
}

// temperatureProbe decodes type 28.
func temperatureProbe(s *Structure) Fields {
	return probeFields(s, "temperature_probe", temperatureProbeStatuses, temperatureProbeLocations)
}

// electricalCurrentProbe decodes type 29, which shares the voltage probe
// layout and location codes.
func electricalCurrentProbe(s *Structure) Fields {
	return probeFields(s, "electrical_current_probe", voltageProbeStatuses, voltageProbeLocations)
}

var coolingDeviceTypes = labels{
	{0x01, "Other"},
	{0x02, "Unknown"},
	{0x03, "Fan"},
	{0x04, "Centrifugal Blower"},
	{0x05, "Chip Fan"},
	{0x06, "Cabinet Fan"},
	{0x07, "Power Supply Fan"},
	{0x08, "Heat Pipe"},
	{0x09, "Integrated Refrigeration"},
	{0x10, "Active Cooling"},
	{0x11, "Passive Cooling"},
}

var coolingDeviceStatuses = labels{
	{0x20, "Other"},
	{0x40, "Unknown"},
	{0x60, "OK"},
	{0x80, "Non-critical"},
	{0xA0, "Critical"},
	{0xC0, "Non-recoverable"},
}

// coolingDevice decodes type 27.
func coolingDevice(s *Structure) Fields {
	f := fieldsOf(s)

	var deviceType, status string
	if f.has(0x06, 1) {
		b := f.u8(0x06)
		deviceType = coolingDeviceTypes.lookup(uint64(b & 0x1F))
		status = coolingDeviceStatuses.lookup(uint64(b & 0xE0))
	}

	speed := int(f.u16(0x0C))
	if speed == probeUnknown {
		speed = 0
	}

	return Fields{
		{"object_type", "cooling_device"},
		{"temperature_probe_handle", int(f.u16(0x04))},
		{"device_type", deviceType},
		{"device_status", status},
		{"cooling_unit_group", int(f.u8(0x07))},
		{"nominal_speed", speed},
		{"description", f.str(0x0E)},
	}
}

var managementDeviceTypes = labels{
	{0x01, "Other"},
	{0x02, "Unknown"},
	{0x03, "National Semiconductor LM75"},
	{0x04, "National Semiconductor LM78"},
	{0x05, "National Semiconductor LM79"},
	{0x06, "National Semiconductor LM80"},
	{0x07, "National Semiconductor LM81"},
	{0x08, "Analog Devices ADM9240"},
	{0x09, "Dallas Semiconductor DS1780"},
	{0x0A, "Maxim 1617"},
	{0x0B, "Genesys GL518SM"},
	{0x0C, "Winbond W83781D"},
	{0x0D, "Holtek HT82H791"},
}

var managementAddressTypes = labels{
	{0x01, "Other"},
	{0x02, "Unknown"},
	{0x03, "I/O Port"},
	{0x04, "Memory"},
	{0x05, "SM Bus"},
}

// managementDeviceInformation decodes type 34. Its "type" field names
// the device type and is kept in place of the structure type.
func managementDeviceInformation(s *Structure) Fields {
	f := fieldsOf(s)

	return Fields{
		{"object_type", "management_device_information"},
		{"description", f.str(0x04)},
		{"type", f.enum(0x05, managementDeviceTypes)},
		{"address", int64(f.u32(0x06))},
		{"address_type", f.enum(0x0A, managementAddressTypes)},
	}
}

var pointingDeviceTypes = labels{
	{0x01, "Other"},
	{0x02, "Unknown"},
	{0x03, "Mouse"},
	{0x04, "Track Ball"},
	{0x05, "Track Point"},
	{0x06, "Glide Point"},
	{0x07, "Touch Pad"},
	{0x08, "Touch Screen"},
	{0x09, "Optical Sensor"},
}

var pointingDeviceInterfaces = labels{
	{0x01, "Other"},
	{0x02, "Unknown"},
	{0x03, "Serial"},
	{0x04, "PS/2"},
	{0x05, "Infrared"},
	{0x06, "HP-HIL"},
	{0x07, "Bus mouse"},
	{0x08, "ADB (Apple Desktop Bus)"},
	{0xA0, "Bus mouse DB-9"},
	{0xA1, "Bus mouse micro-DIN"},
	{0xA2, "USB"},
	{0xA3, "I2C"},
	{0xA4, "SPI"},
}

// builtinPointingDevice decodes type 21.
func builtinPointingDevice(s *Structure) Fields {
	f := fieldsOf(s)

	return Fields{
		{"object_type", "builtin_pointing_device"},
		{"device_type", f.enum(0x04, pointingDeviceTypes)},
		{"interface", f.enum(0x05, pointingDeviceInterfaces)},
		{"number_of_buttons", int(f.u8(0x06))},
	}
}

var batteryChemistries = labels{
	{0x01, "Other"},
	{0x02, "Unknown"},
	{0x03, "Lead Acid"},
	{0x04, "Nickel Cadmium"},
	{0x05, "Nickel metal hydride"},
	{0x06, "Lithium-ion"},
	{0x07, "Zinc air"},
	{0x08, "Lithium Polymer"},
}

// portableBattery decodes type 22.
func portableBattery(s *Structure) Fields {
	f := fieldsOf(s)

	// Design capacity is in mWh, scaled by the multiplier at 0x15 where
	// present.
	capacity := int(f.u16(0x0A))
	if m := f.u8(0x15); m > 0 {
		capacity *= int(m)
	}

	return Fields{
		{"object_type", "portable_battery"},
		{"location", f.str(0x04)},
		{"manufacturer", f.str(0x05)},
		{"manufacture_date", f.str(0x06)},
		{"serial_number", f.str(0x07)},
		{"device_name", f.str(0x08)},
		{"device_chemistry", f.enum(0x09, batteryChemistries)},
		{"design_capacity", capacity},
		{"design_voltage", int(f.u16(0x0C))},
		{"sbds_version_number", f.str(0x0E)},
		{"sdbs_device_chemistry", f.str(0x14)},
	}
}
