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

import "fmt"

var biosCharacteristics = labels{
	{0x1, "Reserved"},
	{0x2, "Reserved"},
	{0x4, "Unknown"},
	{0x8, "BIOS Characteristics are not supported"},
	{0x10, "ISA is supported"},
	{0x20, "MCA is supported"},
	{0x40, "EISA is supported"},
	{0x80, "PCI is supported"},
	{0x100, "PC card (PCMCIA) is supported"},
	{0x200, "Plug and Play is supported"},
	{0x400, "APM is supported"},
	{0x800, "BIOS is upgradeable (Flash)"},
	{0x1000, "BIOS shadowing is allowed"},
	{0x2000, "VL-VESA is supported"},
	{0x4000, "ESCD support is available"},
	{0x8000, "Boot from CD is supported"},
	{0x10000, "Selectable boot is supported"},
	{0x20000, "BIOS ROM is socketed (e.g. PLCC or SOP socket)"},
	{0x40000, "Boot from PC card (PCMCIA) is supported"},
	{0x80000, "EDD specification is supported"},
	{0x100000, "Int 13h-Japanese floppy for NEC 9800 1.2 MB (3.5”, 1K bytes/sector, 360 RPM) is supported"},
	{0x200000, "Int 13h-Japanese floppy for Toshiba 1.2 MB (3.5”, 360 RPM) is supported"},
	{0x400000, "Int 13h-5.25” / 360 KB floppy services are supported"},
	{0x800000, "Int 13h-5.25” /1.2 MB floppy services are supported"},
	{0x1000000, "Int 13h-3.5” / 720 KB floppy services are supported"},
	{0x2000000, "Int 13h-3.5” / 2.88 MB floppy services are supported"},
	{0x4000000, "Int 5h print screen Service is supported"},
	{0x8000000, "Int 9h 8042 keyboard services are supported"},
	{0x10000000, "Int 14h serial services are supported"},
	{0x20000000, "Int 17h printer services are supported"},
	{0x40000000, "Int 10h CGA/Mono Video Services are supported"},
	{0x80000000, "NEC PC-98"},
}

var biosExtCharacteristics = labels{
	{0x01, "ACPI is supported"},
	{0x02, "USB Legacy is supported"},
	{0x04, "AGP is supported"},
	{0x08, "I2O boot is supported"},
	{0x10, "LS-120 SuperDisk boot is supported"},
	{0x20, "ATAPI ZIP drive boot is supported"},
	{0x40, "1394 boot is supported"},
	{0x80, "Smart battery is supported"},
}

// biosInformation decodes type 0.
func biosInformation(s *Structure) Fields {
	f := fieldsOf(s)

	var release string
	if f.has(0x15, 1) {
		release = fmt.Sprintf("%d.%d", f.u8(0x14), f.u8(0x15))
	}

	romSize := 0
	if f.has(0x09, 1) {
		romSize = (int(f.u8(0x09)) + 1) * 64 * 1024
	}

	return Fields{
		{"object_type", "bios_information"},
		{"vendor", f.str(0x04)},
		{"version", f.str(0x05)},
		{"release_date", f.str(0x08)},
		{"rom_size", romSize},
		{"characteristics", join(biosCharacteristics.flags(uint64(f.u32(0x0A))))},
		{"ext_characteristics", join(biosExtCharacteristics.flags(uint64(f.u8(0x12))))},
		{"bios_release", release},
	}
}

var wakeupTypes = labels{
	{0x00, "Reserved"},
	{0x01, "Other"},
	{0x02, "Unknown"},
	{0x03, "APM Timer"},
	{0x04, "Modem Ring"},
	{0x05, "LAN Remote"},
	{0x06, "Power Switch"},
	{0x07, "PCI PME#"},
	{0x08, "AC Power Restored"},
}

// systemInformation decodes type 1.
func systemInformation(s *Structure) Fields {
	f := fieldsOf(s)

	return Fields{
		{"object_type", "system_information"},
		{"manufacturer", f.str(0x04)},
		{"product_name", f.str(0x05)},
		{"version", f.str(0x06)},
		{"serial_number", f.str(0x07)},
		{"uuid", formatUUID(f.bytes(0x08, 16))},
		{"wakeup_type", f.enum(0x18, wakeupTypes)},
		{"sku_number", f.str(0x19)},
		{"family", f.str(0x1A)},
	}
}

// formatUUID renders a system UUID. The first three fields are stored
// little-endian since SMBIOS 2.6. A missing UUID, or one with every byte
// 0x00 or every byte 0xFF (not present or not set), renders as "".
func formatUUID(b []byte) string {
	if len(b) != 16 {
		return ""
	}

	zero, ones := true, true
	for _, c := range b {
		if c != 0x00 {
			zero = false
		}
		if c != 0xFF {
			ones = false
		}
	}
	if zero || ones {
		return ""
	}

	return fmt.Sprintf("%02X%02X%02X%02X-%02X%02X-%02X%02X-%02X%02X-%02X%02X%02X%02X%02X%02X",
		b[3], b[2], b[1], b[0], b[5], b[4], b[7], b[6],
		b[8], b[9], b[10], b[11], b[12], b[13], b[14], b[15])
}

var baseboardFeatures = labels{
	{0x01, "Hosting board"},
	{0x02, "Daughter required"},
	{0x04, "Removable"},
	{0x08, "Replaceable"},
	{0x10, "Hot swappable"},
}

var boardTypes = labels{
	{0x01, "Unknown"},
	{0x02, "Other"},
	{0x03, "Server Blade"},
	{0x04, "Connectivity Switch"},
	{0x05, "System Management Module"},
	{0x06, "Processor Module"},
	{0x07, "I/O Module"},
	{0x08, "Memory Module"},
	{0x09, "Daughter board"},
	{0x0A, "Motherboard"},
	{0x0B, "Processor/Memory Module"},
	{0x0C, "Processor/IO Module"},
	{0x0D, "Interconnect board"},
}

// baseboardInformation decodes type 2.
func baseboardInformation(s *Structure) Fields {
	f := fieldsOf(s)

	return Fields{
		{"object_type", "baseboard_information"},
		{"manufacturer", f.str(0x04)},
		{"product", f.str(0x05)},
		{"version", f.str(0x06)},
		{"serial_number", f.str(0x07)},
		{"feature", join(baseboardFeatures.flags(uint64(f.u8(0x09))))},
		{"asset_tag", f.str(0x08)},
		{"chassis_location", f.str(0x0A)},
		{"board_type", f.enum(0x0D, boardTypes)},
	}
}

var chassisTypes = labels{
	{0x01, "Other"},
	{0x02, "Unknown"},
	{0x03, "Desktop"},
	{0x04, "Low Profile Desktop"},
	{0x05, "Pizza Box"},
	{0x06, "Mini Tower"},
	{0x07, "Tower"},
	{0x08, "Portable"},
	{0x09, "Laptop"},
	{0x0A, "Notebook"},
	{0x0B, "Hand Held"},
	{0x0C, "Docking Station"},
	{0x0D, "All in One"},
	{0x0E, "Sub Notebook"},
	{0x0F, "Space-saving"},
	{0x10, "Lunch Box"},
	{0x11, "Main Server Chassis"},
	{0x12, "Expansion Chassis"},
	{0x13, " SubChassis"},
	{0x14, "Bus Expansion Chassis"},
	{0x15, "Peripheral Chassis"},
	{0x16, "RAID Chassis"},
	{0x17, "Rack Mount Chassis"},
	{0x18, "Sealed-case PC"},
	{0x19, "Multi-system chassis"},
	{0x1A, "Compact PCI"},
	{0x1B, "Advanced TCA"},
	{0x1C, "Blade"},
	{0x1D, "Blade Enclosure"},
	{0x1E, "Tablet"},
	{0x1F, "Convertible"},
	{0x20, "Detachable"},
	{0x21, "IoT Gateway"},
	{0x22, "Embedded PC"},
	{0x23, "Mini PC"},
	{0x24, "Stick PC"},
}

var chassisStates = labels{
	{0x01, "Other"},
	{0x02, "Unknown"},
	{0x03, "Safe"},
	{0x04, "Warning"},
	{0x05, "Critical"},
	{0x06, "Non-recoverable"},
}

var chassisSecurityStatuses = labels{
	{0x01, "Other"},
	{0x02, "Unknown"},
	{0x03, "None"},
	{0x04, "External interface locked out"},
	{0x05, "External interface enabled"},
}

// chassisInformation decodes type 3.
func chassisInformation(s *Structure) Fields {
	f := fieldsOf(s)

	return Fields{
		{"object_type", "chassis_information"},
		{"manufacturer", f.str(0x04)},
		{"chassis_type", f.enum(0x05, chassisTypes)},
		{"version", f.str(0x06)},
		{"serial_number", f.str(0x07)},
		{"asset_tag", f.str(0x08)},
		{"bootup_state", f.enum(0x09, chassisStates)},
		{"power_supply_state", f.enum(0x0A, chassisStates)},
		{"thermal_state", f.enum(0x0B, chassisStates)},
		{"security_status", f.enum(0x0C, chassisSecurityStatuses)},
		{"sku_number", f.str(0x15)},
		{"height", int(f.u8(0x11))},
	}
}

// stringSet copies the string-set of s. An empty string-set yields an
// empty, non-nil slice so that it serializes as an empty list.
func stringSet(s *Structure) []string {
	return append(make([]string, 0, len(s.Strings)), s.Strings...)
}

// oemStrings decodes type 11.
func oemStrings(s *Structure) Fields {
	return Fields{
		{"object_type", "oem_strings"},
		{"oem_strings", stringSet(s)},
	}
}

// systemConfigurationOptions decodes type 12.
func systemConfigurationOptions(s *Structure) Fields {
	return Fields{
		{"object_type", "system_configuration_options"},
		{"system_configuration_options", stringSet(s)},
	}
}

// biosLanguageInformation decodes type 13.
func biosLanguageInformation(s *Structure) Fields {
	return Fields{
		{"object_type", "bios_language_information"},
		{"installable_languages", stringSet(s)},
	}
}
