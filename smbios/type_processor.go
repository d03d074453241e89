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
	"strings"
)

var processorTypes = labels{
	{0x01, "Other"},
	{0x02, "Unknown"},
	{0x03, "Central Processor"},
	{0x04, "Math Processor"},
	{0x05, "DSP Processor"},
	{0x06, "Video Processor"},
}

var processorVoltages = labels{
	{0x01, "5v"},
	{0x02, "3.3v"},
	{0x04, "2.9v"},
}

var processorUpgrades = labels{
	{0x01, "Other"},
	{0x02, "Unknown"},
	{0x03, "Daughter Board"},
	{0x04, "ZIF Socket"},
	{0x05, "Replaceable Piggy Back"},
	{0x06, "None"},
	{0x07, "LIF Socket"},
	{0x08, "Slot 1"},
	{0x09, "Slot 2"},
	{0x0A, "370-pin socket"},
	{0x0B, "Slot A"},
	{0x0C, "Slot M"},
	{0x0D, "Socket 423"},
	{0x0E, "Socket A (Socket 462)"},
	{0x0F, "Socket 478"},
	{0x010, "Socket 754"},
	{0x11, "Socket 940"},
	{0x12, "Socket 939"},
	{0x13, "Socket mPGA604"},
	{0x14, "Socket LGA771"},
	{0x15, "Socket LGA775"},
	{0x16, "Socket S1"},
	{0x17, "Socket AM2"},
	{0x18, "Socket F (1207)"},
	{0x19, "Socket LGA1366"},
	{0x1A, "Socket G34"},
	{0x1B, "Socket AM3"},
	{0x1C, "Socket C32"},
	{0x1D, "Socket LGA1156"},
	{0x1E, "Socket LGA1556"},
	{0x1F, "Socket PGA988A"},
	{0x20, "Socket BGA1288"},
	{0x21, "Socket rPGA988B"},
	{0x22, "Socket BGA1023"},
	{0x23, "Socket BGA1224"},
	{0x24, "Socket LGA1155"},
	{0x25, "Socket LGA1356"},
	{0x26, "Socket LGA2011"},
	{0x27, "Socket FS1"},
	{0x28, "Socket FS2"},
	{0x29, "Socket FM1"},
	{0x2A, "Socket FM2"},
	{0x2B, "Socket LGA2011-3"},
	{0x2C, "Socket LGA1356-3"},
	{0x2D, "Socket LGA1150"},
	{0x2E, "Socket BGA1168"},
	{0x2F, "Socket BGA1234"},
	{0x30, "Socket BGA1234"},
	{0x31, "Socket AM4"},
	{0x32, "Socket LGA1151"},
	{0x33, "Socket LGA1151"},
	{0x34, "Socket BGA1440"},
	{0x35, "Socket BGA1515"},
	{0x36, "Socket LGA3647-1"},
	{0x37, "Socket SP3"},
	{0x38, "Socket SP3r2"},
	{0x39, "Socket LGA2066"},
	{0x3A, "Socket BGA1392"},
	{0x3B, "Socket BGA1510"},
	{0x3C, "Socket BGA1528"},
	{0x3D, "Socket LGA4189"},
	{0x3E, "Socket LGA1200"},
	{0x3F, "Socket LGA4677"},
	{0x40, "Socket LGA1700"},
	{0x41, "Socket BGA1744"},
	{0x42, "Socket BGA1781"},
	{0x43, "Socket BGA1211"},
	{0x44, "Socket BGA2422"},
	{0x45, "Socket LGA1211"},
	{0x46, "Socket LGA2422"},
	{0x47, "Socket LGA5773"},
	{0x48, "Socket BGA5773"},
}

var processorFamilies = labels{
	{0x01, "Other"},
	{0x02, "Unknown"},
	{0x03, "8086"},
	{0x04, "80286"},
	{0x05, "Intel386™ processor"},
	{0x06, "ntel486™ processor"},
	{0x07, "8087"},
	{0x08, "80287"},
	{0x09, "80387"},
	{0x0A, "8487"},
	{0x0B, "Intel® Pentium® processor"},
	{0x0C, "Pentium® Pro processor"},
	{0x0D, "Pentium® II processor"},
	{0x0E, "Pentium® processor with MMX™ technology"},
	{0x0F, "Intel® Celeron® processor"},
	{0x10, "Pentium® II Xeon™ processor"},
	{0x11, "Pentium® III processor"},
	{0x12, "M1 Family"},
	{0x13, "M2 Family"},
	{0x14, "Intel® Celeron® M processor"},
	{0x15, "Intel® Pentium® 4 HT processor"},
	{0x16, "Not assignment"},
	{0x17, "Not assignment"},
	{0x18, "AMD Duron™ Processor Family "},
	{0x19, "K5 Family"},
	{0x1A, "K6 Family"},
	{0x1B, "K6-2"},
	{0x1C, "K6-3"},
	{0x1D, "AMD Athlon™ Processor Family "},
	{0x1E, "AMD29000 Family"},
	{0x1F, "K6-2+"},
	{0x20, "Power PC Family"},
	{0x21, "Power PC 601"},
	{0x22, "Power PC 603"},
	{0x23, "Power PC 603+"},
	{0x24, "Power PC 604"},
	{0x25, "Power PC 620"},
	{0x26, "Power PC x704"},
	{0x27, "Power PC 750"},
	{0x28, "Intel® Core™ Duo processor"},
	{0x29, "Intel® Core™ Duo mobile processor"},
	{0x2A, "Intel® Core™ Solo mobile processor"},
	{0x2B, "Intel® Atom™ processor"},
	{0x2C, "Intel® Core™ M processor"},
	{0x2D, "Intel(R) Core(TM) m3 processor"},
	{0x2E, "Intel(R) Core(TM) m5 processor"},
	{0x2F, "Intel(R) Core(TM) m7 processor"},
	{0x30, "Alpha Family "},
	{0x31, "Alpha 21064"},
	{0x32, "Alpha 21066"},
	{0x33, "Alpha 21164"},
	{0x34, "Alpha 21164PC"},
	{0x35, "Alpha 21164a"},
	{0x36, "Alpha 21264"},
	{0x37, "Alpha 21364"},
	{0x38, "AMD Turion™ II Ultra Dual-Core Mobile M Processor Family"},
	{0x39, "AMD Turion™ II Dual-Core Mobile M Processor Family"},
	{0x3A, "AMD Athlon™ II Dual-Core M Processor Family"},
	{0x3B, "AMD Opteron™ 6100 Series Processor"},
	{0x3C, "AMD Opteron™ 4100 Series Processor"},
	{0x3D, "AMD Opteron™ 6200 Series Processor"},
	{0x3E, "AMD Opteron™ 4200 Series Processor"},
	{0x3F, "AMD FX™ Series Processor"},
	{0x40, "MIPS Family"},
	{0x41, "MIPS R4000"},
	{0x42, "MIPS R4200"},
	{0x43, "MIPS R4400"},
	{0x44, "MIPS R4600"},
	{0x45, "MIPS R10000"},
	{0x46, "AMD C-Series Processor"},
	{0x47, "AMD E-Series Processor"},
	{0x48, "AMD A-Series Processor"},
	{0x49, "AMD G-Series Processor"},
	{0x4A, "AMD Z-Series Processor"},
	{0x4B, "AMD R-Series Processor"},
	{0x4C, "AMD Opteron™ 4300 Series Processor"},
	{0x4D, "AMD Opteron™ 6300 Series Processor"},
	{0x4E, "AMD Opteron™ 3300 Series Processor"},
	{0x4F, "AMD FirePro™ Series Processor"},
	{0x50, "SPARC Family"},
	{0x51, "SuperSPARC"},
	{0x52, "microSPARC II"},
	{0x53, "microSPARC IIep"},
	{0x54, "UltraSPARC"},
	{0x55, "UltraSPARC II"},
	{0x56, "UltraSPARC Iii"},
	{0x57, "UltraSPARC III"},
	{0x58, "UltraSPARC IIIi"},
	{0x60, "68040 Family"},
	{0x61, "68xxx"},
	{0x62, "68000"},
	{0x63, "68010"},
	{0x64, "68020"},
	{0x65, "68030"},
	{0x66, "AMD Athlon(TM) X4 Quad-Core Processor Family"},
	{0x67, "AMD Opteron(TM) X1000 Series Processor"},
	{0x68, "AMD Opteron(TM) X2000 Series APU"},
	{0x69, "AMD Opteron(TM) A-Series Processor"},
	{0x6A, "AMD Opteron(TM) X3000 Series APU"},
	{0x6B, "AMD Zen Processor Family"},
	{0x70, "Hobbit Family"},
	{0x78, "Crusoe™ TM5000 Family"},
	{0x79, "Crusoe™ TM3000 Family"},
	{0x7A, "Efficeon™ TM8000 Family"},
	{0x80, "Weitek"},
	{0x81, "Unknown"},
	{0x82, "Itanium™ processor"},
	{0x83, "AMD Athlon™ 64 Processor Family"},
	{0x84, "AMD Opteron™ Processor Family"},
	{0x85, "AMD Sempron™ Processor Family"},
	{0x86, "AMD Turion™ 64 Mobile Technology"},
	{0x87, "Dual-Core AMD Opteron™ Processor Family"},
	{0x88, "AMD Athlon™ 64 X2 Dual-Core Processor Family"},
	{0x89, "AMD Turion™ 64 X2 Mobile Technology"},
	{0x8A, "Quad-Core AMD Opteron™ Processor Family"},
	{0x8B, "Third-Generation AMD Opteron™ Processor Family"},
	{0x8C, "AMD Phenom™ FX Quad-Core Processor Family"},
	{0x8D, "AMD Phenom™ X4 Quad-Core Processor Family"},
	{0x8E, "AMD Phenom™ X2 Dual-Core Processor Family"},
	{0x8F, "AMD Athlon™ X2 Dual-Core Processor Family"},
	{0x90, "PA-RISC Family"},
	{0x91, "PA-RISC 8500"},
	{0x92, "PA-RISC 8000"},
	{0x93, "PA-RISC 7300LC"},
	{0x94, "PA-RISC 7200"},
	{0x95, "PA-RISC 7100LC"},
	{0x96, "PA-RISC 7100"},
	{0xA0, "V30 Family"},
	{0xA1, "Quad-Core Intel® Xeon® processor 3200 Series"},
	{0xA2, "Dual-Core Intel® Xeon® processor 3000 Series"},
	{0xA3, "Quad-Core Intel® Xeon® processor 5300 Series"},
	{0xA4, "Dual-Core Intel® Xeon® processor 5100 Series"},
	{0xA5, "Dual-Core Intel® Xeon® processor 5000 Series"},
	{0xA6, "Dual-Core Intel® Xeon® processor LV"},
	{0xA7, "Dual-Core Intel® Xeon® processor ULV"},
	{0xA8, "Dual-Core Intel® Xeon® processor 7100 Series"},
	{0xA9, "Quad-Core Intel® Xeon® processor 5400 Series"},
	{0xAA, "Quad-Core Intel® Xeon® processor"},
	{0xAB, "Dual-Core Intel® Xeon® processor 5200 Series"},
	{0xAC, "Dual-Core Intel® Xeon® processor 7200 Series"},
	{0xAD, "Quad-Core Intel® Xeon® processor 7300 Series"},
	{0xAE, "Quad-Core Intel® Xeon® processor 7400 Series"},
	{0xAF, "Multi-Core Intel® Xeon® processor 7400 Series"},
	{0xB0, "Pentium® III Xeon™ processor"},
	{0xB1, "Pentium® III Processor with Intel® SpeedStep™ Technology"},
	{0xB2, "Pentium® 4 Processor"},
	{0xB3, "Intel® Xeon® processor"},
	{0xB4, "AS400 Family"},
	{0xB5, "ntel® Xeon™ processor MP"},
	{0xB6, "AMD Athlon™ XP Processor Family"},
	{0xB7, "AMD Athlon™ MP Processor Family"},
	{0xB8, "Intel® Itanium® 2 processor"},
	{0xB9, "Intel® Pentium® M processor"},
	{0xBA, "Intel® Celeron® D processor"},
	{0xBB, "Intel® Pentium® D processor"},
	{0xBC, "Intel® Pentium® Processor Extreme Edition"},
	{0xBD, "Intel® Core™ Solo Processor"},
	{0xBF, "Intel® Core™ 2 Duo Processor"},
	{0xC0, "Intel® Core™ 2 Solo processor"},
	{0xC1, "Intel® Core™ 2 Extreme processor"},
	{0xC2, "Intel® Core™ 2 Quad processor"},
	{0xC3, "Intel® Core™ 2 Extreme mobile processor"},
	{0xC4, "Intel® Core™ 2 Duo mobile processor"},
	{0xC5, "Intel® Core™ 2 Solo mobile processor"},
	{0xC6, "Intel® Core™ i7 processor"},
	{0xC7, "Dual-Core Intel® Celeron® processor"},
	{0xC8, "IBM390 Family"},
	{0xC9, "G4"},
	{0xCA, "G5"},
	{0xCB, "ESA/390 G6"},
	{0xCC, "z/Architecture base"},
	{0xCD, "Intel® Core™ i5 processor"},
	{0xCE, "Intel® Core™ i3 processor"},
	{0xCF, "Intel® Core™ i9 processor"},
	{0xD2, "VIA C7™-M Processor Family"},
	{0xD3, "VIA C7™-D Processor Family"},
	{0xD4, "VIA C7™ Processor Family"},
	{0xD5, "VIA Eden™ Processor Family"},
	{0xD6, "Multi-Core Intel® Xeon® processor"},
	{0xD7, "Dual-Core Intel® Xeon® processor 3xxx Series"},
	{0xD8, "Quad-Core Intel® Xeon® processor 3xxx Series"},
	{0xD9, "VIA Nano™ Processor Family"},
	{0xDA, "Dual-Core Intel® Xeon® processor 5xxx Serie"},
	{0xDB, "Quad-Core Intel® Xeon® processor 5xxx Series"},
	{0xDD, "Dual-Core Intel® Xeon® processor 7xxx Series"},
	{0xDE, "Quad-Core Intel® Xeon® processor 7xxx Serie"},
	{0xDF, "Multi-Core Intel® Xeon® processor 7xxx Serie"},
	{0xE0, "Multi-Core Intel® Xeon® processor 3400 Series"},
	{0xE4, "AMD Opteron™ 3000 Series Processor"},
	{0xE5, "AMD Sempron™ II Processor"},
	{0xE6, "Embedded AMD Opteron™ Quad-Core Processor Family"},
	{0xE7, "AMD Phenom™ Triple-Core Processor Family"},
	{0xE8, "AMD Turion™ Ultra Dual-Core Mobile Processor Famil"},
	{0xE9, "AMD Turion™ Dual-Core Mobile Processor Family"},
	{0xEA, "AMD Athlon™ Dual-Core Processor Family"},
	{0xEB, "AMD Sempron™ SI Processor Family"},
	{0xEC, "AMD Phenom™ II Processor Family"},
	{0xED, "AMD Athlon™ II Processor Family"},
	{0xEE, "Six-Core AMD Opteron™ Processor Family"},
	{0xEF, "AMD Sempron™ M Processor Family"},
	{0xFA, "i860"},
	{0xFB, ""},
	{0xFE, "i960"},
}

var processorFamilies2 = labels{
	{0x100, "ARMv7"},
	{0x101, "ARMv8"},
	{0x102, "ARMv9"},
	{0x103, "Reserved for future use by ARM"},
	{0x104, "SH-3"},
	{0x105, "SH-4"},
	{0x118, "ARM"},
	{0x119, "StrongARM"},
	{0x12C, "6x86"},
	{0x12D, "MediaGX"},
	{0x12E, "MII"},
	{0x140, "WinChip"},
	{0x15E, "DSP"},
	{0x1F4, "Video Processor"},
	{0x200, "RISC-V RV32"},
	{0x201, "RISC-V RV64"},
	{0x202, "RISC-V RV128"},
	{0x258, "LoongArch"},
	{0x259, "Loongson™ 1 Processor Family"},
	{0x25A, "Loongson™ 2 Processor Family"},
	{0x25B, "Loongson™ 3 Processor Family"},
	{0x25C, "Loongson™ 2K Processor Family"},
	{0x25D, "Loongson™ 3A Processor Family"},
	{0x25E, "Loongson™ 3B Processor Family"},
	{0x25F, "Loongson™ 3C Processor Family"},
	{0x260, "Loongson™ 3D Processor Family"},
	{0x261, "Loongson™ 3E Processor Family"},
	{0x262, "Dual-Core Loongson™ 2K Processor 2xxx Series"},
	{0x26C, "Quad-Core Loongson™ 3A Processor 5xxx Series"},
	{0x26D, "Multi-Core Loongson™ 3A Processor 5xxx Series"},
	{0x26E, "Quad-Core Loongson™ 3B Processor 5xxx Series"},
	{0x26F, "Multi-Core Loongson™ 3B Processor 5xxx Series"},
	{0x270, "Multi-Core Loongson™ 3C Processor 5xxx Series"},
	{0x271, "Multi-Core Loongson™ 3D Processor 5xxx Series"},
}

var processorCharacteristics = labels{
	{0x00, "Reserved"},
	{0x02, "Unknown"},
	{0x04, "64-bit Capable"},
	{0x08, "Multi-Core"},
	{0x10, "Hardware Thread"},
	{0x20, "Execute Protection"},
	{0x40, "Enhanced Virtualization"},
	{0x80, "Power/Performance Control"},
	{0x100, "128-bit Capable"},
	{0x200, "Arm64 SoC ID"},
}

var processorStatuses = labels{
	{0x00, "Unknown"},
	{0x01, "CPU Enabled"},
	{0x02, "CPU Disabled by User"},
	{0x03, "CPU Disabled by BIOS (POST Error)"},
	{0x04, "CPU is Idle"},
	{0x05, "Reserved"},
	{0x06, "Reserved"},
	{0x07, "Other"},
}

// processorInformation decodes type 4.
func processorInformation(s *Structure) Fields {
	f := fieldsOf(s)

	var id string
	if b := f.bytes(0x08, 8); b != nil {
		id = fmt.Sprintf("%X", b)
	}

	status := f.u8(0x18)
	populated := "CPU Socket Unpopulated"
	if status&0x40 != 0 {
		populated = "CPU Socket Populated"
	}

	return Fields{
		{"object_type", "processor_information"},
		{"socket_designation", f.str(0x04)},
		{"processor_type", f.enum(0x05, processorTypes)},
		{"processor_manufacturer", f.str(0x07)},
		{"processor_id", id},
		{"processor_version", f.str(0x10)},
		{"voltage", join(processorVoltage(f))},
		{"external_clock", int(f.u16(0x12))},
		{"max_speed", int(f.u16(0x14))},
		{"current_speed", int(f.u16(0x16))},
		{"status", processorStatuses.lookup(uint64(status & 0x07))},
		{"populated_status", populated},
		{"processor_upgrade", f.enum(0x19, processorUpgrades)},
		{"l1_cache_handle", int(f.u16(0x1A))},
		{"l2_cache_handle", int(f.u16(0x1C))},
		{"l3_cache_handle", int(f.u16(0x1E))},
		{"serial_number", f.str(0x20)},
		{"asset_tag", f.str(0x21)},
		{"part_number", f.str(0x22)},
		{"core_count", processorCount(f, 0x23, 0x2A)},
		{"core_enabled", processorCount(f, 0x24, 0x2C)},
		{"thread_count", processorCount(f, 0x25, 0x2E)},
		{"processor_characteristics", strings.Join(processorCharacteristics.flags(uint64(f.u16(0x26))), ",")},
		{"processor_family", f.enum(0x06, processorFamilies)},
		{"processor_family_2", processorFamilies2.lookup(uint64(f.u16(0x28)))},
	}
}

// processorVoltage decodes the voltage byte. With bit 7 clear the low bits
// flag the supported legacy voltages; with it set the remaining bits hold
// the current voltage in tenths of a volt.
func processorVoltage(f fields) []string {
	if !f.has(0x11, 1) {
		return nil
	}

	v := f.u8(0x11)
	if v&0x80 == 0 {
		return processorVoltages.flags(uint64(v))
	}

	return []string{fmt.Sprintf("%.1fv", float64(v&0x7F)/10)}
}

// processorCount reads a core or thread count byte. 0xFF means the count
// does not fit in a byte and is held in the 16-bit field at wide instead.
func processorCount(f fields, narrow, wide int) int {
	n := f.u8(narrow)
	if n == 0xFF && f.has(wide, 2) {
		return int(f.u16(wide))
	}

	return int(n)
}

var cacheLocations = labels{
	{0x00, "Internal"},
	{0x20, "External"},
	{0x40, "Reserved"},
	{0x60, "Unknown"},
}

var cacheModes = labels{
	{0x000, "Write Through"},
	{0x100, "Write Back"},
	{0x200, "Varies with Memory Address"},
	{0x300, "Unknown"},
}

var sramTypes = labels{
	{0x01, "Other"},
	{0x02, "Unknown"},
	{0x04, "Non-Burst"},
	{0x08, "Burst"},
	{0x10, "Pipeline Burst"},
	{0x20, "Synchronous"},
	{0x40, "Asynchronous"},
}

var cacheErrorCorrectionTypes = labels{
	{0x01, "Other"},
	{0x02, "Unknown"},
	{0x03, "None"},
	{0x04, "Parity"},
	{0x05, "Single-bit ECC"},
	{0x06, "Multi-bit ECC"},
}

var systemCacheTypes = labels{
	{0x01, "Other"},
	{0x02, "Unknown"},
	{0x03, "Instruction"},
	{0x04, "Data"},
	{0x05, "Unified"},
}

var cacheAssociativities = labels{
	{0x01, "Other"},
	{0x02, "Unknown"},
	{0x03, "Direct Mapped"},
	{0x04, "2-way Set-Associative"},
	{0x05, "4-way Set-Associative"},
	{0x06, "Fully Associative"},
	{0x07, "8-way Set-Associative"},
	{0x08, "16-way Set-Associative"},
	{0x09, "12-way Set-Associative"},
	{0x0A, "24-way Set-Associative"},
	{0x0B, "32-way Set-Associative"},
	{0x0C, "48-way Set-Associative"},
	{0x0D, "64-way Set-Associative"},
	{0x0E, "20-way Set-Associative"},
}

// cacheInformation decodes type 7.
func cacheInformation(s *Structure) Fields {
	f := fieldsOf(s)

	return Fields{
		{"object_type", "cache_information"},
		{"socket_designation", f.str(0x04)},
		{"configuration", join(cacheConfiguration(f.u16(0x05)))},
		{"maximum_cache_size", cacheSize(f.u16(0x07))},
		{"installed_cache_size", cacheSize(f.u16(0x09))},
		{"supported_sram_type", first(sramTypes.flags(uint64(f.u16(0x0B))))},
		{"current_sram_type", first(sramTypes.flags(uint64(f.u16(0x0D))))},
		{"cache_speed", fmt.Sprintf("%d ns", f.u8(0x0F))},
		{"error_correction_type", f.enum(0x10, cacheErrorCorrectionTypes)},
		{"system_cache_type", f.enum(0x11, systemCacheTypes)},
		{"associativity", f.enum(0x12, cacheAssociativities)},
	}
}

// cacheConfiguration renders the cache configuration word as its level,
// socketed state, location, enabled state and operational mode.
func cacheConfiguration(cfg uint16) []string {
	if cfg == 0 {
		return nil
	}

	socketed := "Not Socketed"
	if cfg&0x08 != 0 {
		socketed = "Socketed"
	}

	enabled := "Disabled"
	if cfg&0x80 != 0 {
		enabled = "Enabled"
	}

	return []string{
		fmt.Sprintf("Level: %d", (cfg&0x07)+1),
		socketed,
		cacheLocations.lookup(uint64(cfg & 0x60)),
		enabled,
		cacheModes.lookup(uint64(cfg & 0x300)),
	}
}

// cacheSize converts a cache size word to kilobytes. Bit 15 selects 64K
// granularity.
func cacheSize(v uint16) int {
	if v&0x8000 != 0 {
		return int(v&0x7FFF) * 64
	}

	return int(v)
}

// first returns the first of ss, or "".
func first(ss []string) string {
	if len(ss) == 0 {
		return ""
	}

	return ss[0]
}

var processorArchitectures = labels{
	{0x00, "Reserved"},
	{0x01, "IA32 (x86)"},
	{0x02, "x64 (x86-64, Intel64, AMD64, EM64T)"},
	{0x03, "Intel® Itanium® architecture"},
	{0x04, "32-bit ARM (Aarch32)"},
	{0x05, "64-bit ARM (Aarch64)"},
	{0x06, "32-bit RISC-V (RV32)"},
	{0x07, "64-bit RISC-V (RV64)"},
	{0x08, "128-bit RISC-V (RV128)"},
	{0x09, "32-bit LoongArch (LoongArch32)"},
	{0x0A, "64-bit LoongArch (LoongArch64)"},
}

// processorAdditionalInformation decodes type 44. Only the first processor
// specific block is described.
func processorAdditionalInformation(s *Structure) Fields {
	f := fieldsOf(s)

	return Fields{
		{"object_type", "processor_additional_information"},
		{"referenced_handle", int(f.u16(0x04))},
		{"block_length", int(f.u8(0x06))},
		{"processor_type", f.enum(0x07, processorArchitectures)},
	}
}
