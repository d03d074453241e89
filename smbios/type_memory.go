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

var memoryErrorDetectingMethods = labels{
	{0x01, "Other"},
	{0x02, "Unknown"},
	{0x03, "None"},
	{0x04, "8-bit Parity"},
	{0x05, "32-bit ECC"},
	{0x06, "64-bit ECC"},
	{0x07, "128-bit ECC"},
	{0x08, "CRC"},
}

var memoryErrorCorrectingCapabilities = labels{
	{0x01, "Unknown"},
	{0x02, "None"},
	{0x03, "Single-Bit Error Correcting"},
	{0x04, "Double-Bit Error Correcting"},
	{0x05, "Error Scrubbing"},
	{0x00, "Other"},
}

var memoryInterleaves = labels{
	{0x01, "Other"},
	{0x02, "Unknown"},
	{0x03, "One-Way Interleave"},
	{0x04, "Two-Way Interleave"},
	{0x05, "Four-Way Interleave"},
	{0x06, "Eight-Way Interleave"},
	{0x07, "Sixteen-Way Interleave"},
}

// memoryControllerInformation decodes type 5, obsolete since SMBIOS 2.1.
func memoryControllerInformation(s *Structure) Fields {
	f := fieldsOf(s)

	return Fields{
		{"object_type", "memory_controller_information"},
		{"error_detecting_method", f.enum(0x04, memoryErrorDetectingMethods)},
		{"error_correcting_capability", join(memoryErrorCorrectingCapabilities.flags(uint64(f.u8(0x05))))},
		{"supported_interleave", f.enum(0x06, memoryInterleaves)},
		{"current_interleave", f.enum(0x07, memoryInterleaves)},
		{"maximum_memory_module_size", moduleSize(f.u8(0x08))},
		{"associated_memory_slots", int(f.u8(0x0E))},
	}
}

var memoryModuleTypes = labels{
	{0x01, "Other"},
	{0x02, "Unknown"},
	{0x04, "Standard"},
	{0x08, "Fast Page Mode"},
	{0x10, "EDO"},
	{0x20, "Parity"},
	{0x40, "ECC"},
	{0x80, "SIMM"},
	{0x100, "DIMM"},
	{0x200, "Burst EDO"},
	{0x400, "SDRAM"},
}

// memoryModuleInformation decodes type 6, obsolete since SMBIOS 2.1.
func memoryModuleInformation(s *Structure) Fields {
	f := fieldsOf(s)

	return Fields{
		{"object_type", "memory_module_information"},
		{"socket_designation", f.str(0x04)},
		{"bank_connections", int(f.u8(0x05))},
		{"current_speed", fmt.Sprintf("%d ns", f.u8(0x06))},
		{"current_memory_type", join(memoryModuleTypes.flags(uint64(f.u16(0x07))))},
		{"installed_size", moduleSize(f.u8(0x09))},
		{"enabled_size", moduleSize(f.u8(0x0A))},
	}
}

// moduleSize converts a module size byte to bytes. Bits 0-6 hold n for a
// size of 2^n MB; 0x7D, 0x7E and 0x7F mean not determinable, not enabled
// and not installed. Bit 7 flags a double-bank connection.
func moduleSize(b uint8) int64 {
	n := b & 0x7F
	if n >= 0x7D {
		return 0
	}

	return int64(1) << n << 20
}

var memoryArrayLocations = labels{
	{0x01, "Other"},
	{0x02, "Unknown"},
	{0x03, "System board or motherboard"},
	{0x04, "ISA add-on card"},
	{0x05, "EISA add-on card"},
	{0x06, "PCI add-on card"},
	{0x07, "MCA add-on card"},
	{0x08, "PCMCIA add-on card"},
	{0x09, "Proprietary add-on card"},
	{0x0A, "NuBus"},
	{0xA0, "PC-98/C20 add-on card"},
	{0xA1, "PC-98/C24 add-on card"},
	{0xA2, "PC-98/E add-on card"},
	{0xA3, "PC-98/Local bus add-on card"},
	{0xA4, "CXL add-on card"},
}

var memoryArrayUses = labels{
	{0x01, "Other"},
	{0x02, "Unknown"},
	{0x03, "System memory"},
	{0x04, "Video memory"},
	{0x05, "Flash memory"},
	{0x06, "Non-volatile RAM"},
	{0x07, "Cache memory"},
}

var memoryArrayErrorCorrections = labels{
	{0x01, "Other"},
	{0x02, "Unknown"},
	{0x03, "None"},
	{0x04, "Parity"},
	{0x05, "Single-bit ECC"},
	{0x06, "Multi-bit ECC"},
	{0x07, "CRC"},
}

// physicalMemoryArray decodes type 16.
func physicalMemoryArray(s *Structure) Fields {
	f := fieldsOf(s)

	return Fields{
		{"object_type", "physical_memory_array"},
		{"location", f.enum(0x04, memoryArrayLocations)},
		{"use", f.enum(0x05, memoryArrayUses)},
		{"memory_error_correction", f.enum(0x06, memoryArrayErrorCorrections)},
		{"maximum_capacity", int64(f.u32(0x07))},
		{"memory_error_information_handle", int(f.u16(0x0B))},
		{"number_of_memory_devices", int(f.u16(0x0D))},
		{"extended_maximum_capacity", f.u64(0x0F)},
	}
}

var memoryFormFactors = labels{
	{0x01, "Other"},
	{0x02, "Unknown"},
	{0x03, "SIMM"},
	{0x04, "SIP"},
	{0x05, "Chip"},
	{0x06, "DIP"},
	{0x07, "ZIP"},
	{0x08, "Property Card"},
	{0x09, "DIMM"},
	{0x0A, "TSOP"},
	{0x0B, "Row of chips"},
	{0x0C, "RIMM"},
	{0x0D, "SODIMM"},
	{0x0E, "SRIMM"},
	{0x0F, "FB-DIMM"},
	{0x10, "Die"},
}

var memoryDeviceTypes = labels{
	{0x01, "Other"},
	{0x02, "Unknown"},
	{0x03, "DRAM"},
	{0x04, "EDRAM"},
	{0x05, "VRAM"},
	{0x06, "SRAM"},
	{0x07, "RAM"},
	{0x08, "ROM"},
	{0x09, "FLASH"},
	{0x0A, "EEPROM"},
	{0x0B, "FEPROM"},
	{0x0C, "EPROM"},
	{0x0D, "CDRAM"},
	{0x0E, "3DRAM"},
	{0x0F, "SDRAM"},
	{0x10, "SGRAM"},
	{0x11, "RDRAM"},
	{0x12, "DDR"},
	{0x13, "DDR2"},
	{0x14, "DDR2 FB-DIMM"},
	{0x18, "DDR3"},
	{0x19, "FBD2"},
	{0x1A, "DDR4"},
	{0x1B, "LPDDR"},
	{0x1C, "LPDDR2"},
	{0x1D, "LPDDR3"},
	{0x1E, "LPDDR4"},
	{0x1F, "Logical non-volatile device"},
	{0x20, "HBM"},
	{0x21, "HBM2"},
	{0x22, "DDR5"},
	{0x23, "LPDDR5"},
	{0x24, "HBM3"},
}

var memoryTypeDetails = labels{
	{0x00, "Reserved"},
	{0x01, "Other"},
	{0x02, "Unknown"},
	{0x04, "Fast-paged"},
	{0x08, "Static colunm"},
	{0x10, "Pseudo static"},
	{0x20, "RAMBUS"},
	{0x40, "Synchronous"},
	{0x80, "CMOS"},
	{0x100, "EDO"},
	{0x200, "Window DRAM"},
	{0x400, "Cache DRAM"},
	{0x800, "Non-volatile"},
	{0x1000, "Buffered"},
	{0x2000, "Unbuffered"},
	{0x4000, "LRDIMM"},
}

var memoryTechnologies = labels{
	{0x01, "Other"},
	{0x02, "Unknown"},
	{0x03, "DRAM"},
	{0x04, "NVDIMM-N"},
	{0x05, "NVDIMM-F"},
	{0x06, "NVDIMM-P"},
	{0x07, "Intel Optane"},
}

var memoryOperatingModes = labels{
	{0x01, "Reserved"},
	{0x02, "Other"},
	{0x04, "Unknown"},
	{0x08, "Volatile memory"},
	{0x10, "Byte-accessible persistent memory"},
	{0x20, "Block-accessible persistent memory"},
}

// memoryDevice decodes type 17.
func memoryDevice(s *Structure) Fields {
	f := fieldsOf(s)

	return Fields{
		{"object_type", "memory_device"},
		{"total_width", int(f.u16(0x08))},
		{"data_width", int(f.u16(0x0A))},
		{"size", memoryDeviceSize(f)},
		{"form_factor", f.enum(0x0E, memoryFormFactors)},
		{"device_set", int(f.u8(0x0F))},
		{"device", f.str(0x10)},
		{"bank", f.str(0x11)},
		{"memory_type", f.enum(0x12, memoryDeviceTypes)},
		{"type_detail", join(memoryTypeDetails.flags(uint64(f.u16(0x13))))},
		{"speed", int(f.u16(0x15))},
		{"manufacturer", f.str(0x17)},
		{"serial_number", f.str(0x18)},
		{"asset_tag", f.str(0x19)},
		{"part_number", f.str(0x1A)},
		{"extended_size", int64(f.u32(0x1C) & 0x7FFFFFFF)},
		{"configured_speed", int(f.u16(0x20))},
		{"minimum_voltage", float64(f.u16(0x22)) / 1000},
		{"maximum_voltage", float64(f.u16(0x24)) / 1000},
		{"configured_voltage", float64(f.u16(0x26)) / 1000},
		{"memory_technology", f.enum(0x28, memoryTechnologies)},
		{"memory_operating_mode_capability", join(memoryOperatingModes.flags(uint64(f.u16(0x29))))},
		{"firmware_version", f.str(0x2B)},
		{"module_manufacturer_id", int(f.u16(0x2C))},
		{"module_product_id", int(f.u16(0x2E))},
	}
}

// memoryDeviceSize returns the size of a memory device in bytes.
//
// The size word holds the size in MB, or in KB when bit 15 is set. 0xFFFF
// means unknown and 0x7FFF means the size is held in the extended size
// field, in MB.
func memoryDeviceSize(f fields) int64 {
	const (
		kb = 1 << 10
		mb = 1 << 20
	)

	size := f.u16(0x0C)
	switch {
	case size == 0xFFFF:
		return 0
	case size == 0x7FFF:
		return int64(f.u32(0x1C)&0x7FFFFFFF) * mb
	case size&0x8000 != 0:
		return int64(size&0x7FFF) * kb
	default:
		return int64(size) * mb
	}
}

var memoryErrorTypes = labels{
	{0x01, "Other"},
	{0x02, "Unknown"},
	{0x03, "OK"},
	{0x04, "Bad read"},
	{0x05, "Parity error"},
	{0x06, "Single-bit error"},
	{0x07, "Double-bit error"},
	{0x08, "Multi-bit error"},
	{0x09, "Nibble error"},
	{0x0A, "Checksum error"},
	{0x0B, "CRC error"},
	{0x0C, "Corrected single-bit error"},
	{0x0D, "Corrected error"},
	{0x0D, "Uncorrectable error"},
}

var memoryErrorGranularities = labels{
	{0x01, "Other"},
	{0x02, "Unknown"},
	{0x03, "Device level"},
	{0x04, "Memory partition level"},
}

var memoryErrorOperations = labels{
	{0x01, "Other"},
	{0x02, "Unknown"},
	{0x03, "Read"},
	{0x04, "Write"},
	{0x05, "Partial write"},
}

// memoryErrorInformation decodes type 18.
func memoryErrorInformation(s *Structure) Fields {
	f := fieldsOf(s)

	return Fields{
		{"object_type", "memory_error_information"},
		{"error_type", f.enum(0x04, memoryErrorTypes)},
		{"error_granularity", f.enum(0x05, memoryErrorGranularities)},
		{"error_operation", f.enum(0x06, memoryErrorOperations)},
		{"vendor_syndrome", int64(f.u32(0x07))},
		{"memory_array_error_address", int64(f.u32(0x0B))},
		{"device_error_address", int64(f.u32(0x0F))},
		{"error_resolution", int64(f.u32(0x13))},
	}
}
