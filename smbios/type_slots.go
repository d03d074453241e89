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

var connectorTypes = labels{
	{0x00, "None"},
	{0x01, "Centronics"},
	{0x02, "Mini Centronics"},
	{0x03, "Proprietary"},
	{0x04, "DB-25 pin male"},
	{0x05, "DB-25 pin female"},
	{0x06, "DB-15 pin male"},
	{0x07, "DB-15 pin female"},
	{0x08, "DB-9 pin male"},
	{0x09, "DB-9 pin female"},
	{0x0A, "RJ-11"},
	{0x0B, "RJ-45"},
	{0x0C, "50-pin MiniSCSI"},
	{0x0D, "Mini-DIN"},
	{0x0E, "Micro-DIN"},
	{0x0F, "PS/2"},
	{0x10, "Infrared"},
	{0x11, "HP-HIL"},
	{0x12, "Access Bus (USB)"},
	{0x13, "SSA SCSI"},
	{0x14, "Circular DIN-8 male"},
	{0x15, "Circular DIN-8 female"},
	{0x16, "On Board IDE"},
	{0x17, "On Board Floppy"},
	{0x18, "9-pin Dual Inline (pin 10 cut)"},
	{0x19, "25-pin Dual Inline (pin 26 cut)"},
	{0x1A, "50-pin Dual Inline"},
	{0x1B, "68-pin Dual Inline"},
	{0x1C, "On Board Sound Input from CD-ROM"},
	{0x1D, "Mini-Centronics Type-14"},
	{0x1E, "Mini-Centronics Type-26"},
	{0x1F, "Mini-jack (headphones)"},
	{0x20, "BNC"},
	{0x21, "1394"},
	{0x22, "SAS/SATA Plug Receptacle"},
	{0x23, "USB Type-C Receptacle"},
	{0xA0, "PC-98"},
	{0xA1, "PC-98Hireso"},
	{0xA2, "PC-H98"},
	{0xA3, "PC-98Note"},
	{0xA4, "PC-98Full"},
	{0xFF, "Other"},
}

var portTypes = labels{
	{0x00, "None"},
	{0x01, "Parallel Port XT/AT Compatible"},
	{0x02, "Parallel Port PS/2"},
	{0x03, "Parallel Port ECP"},
	{0x04, "Parallel Port EPP"},
	{0x05, "Parallel Port ECP/EPP"},
	{0x06, "Serial Port XT/AT Compatible"},
	{0x07, "Serial Port 16450 Compatible"},
	{0x08, "Serial Port 16550 Compatible"},
	{0x09, "Serial Port 16550A Compatible"},
	{0x0A, "SCSI Port"},
	{0x0B, "MIDI Port"},
	{0x0C, "Joy Stick Port"},
	{0x0D, "Keyboard Port"},
	{0x0E, "Mouse Port"},
	{0x0F, "SSA SCSI"},
	{0x10, "USB"},
	{0x11, "FireWire (IEEE P1394)"},
	{0x12, "PCMCIA Type I2"},
	{0x13, "PCMCIA Type II"},
	{0x14, "PCMCIA Type III"},
	{0x15, "Card bus"},
	{0x16, "Access Bus Port"},
	{0x17, "SCSI II"},
	{0x18, "SCSI Wide"},
	{0x19, "PC-98"},
	{0x1A, "PC-98-Hireso"},
	{0x1B, "PC-H98"},
	{0x1C, "Video Port"},
	{0x1D, "Audio Port"},
	{0x1E, "Modem Port"},
	{0x1F, "Network Port"},
	{0x20, "SATA"},
	{0x21, "SAS"},
	{0x22, "MFDP (Multi-Function Display Port)"},
	{0x23, "Thunderbolt"},
	{0xA0, "8251 Compatible"},
	{0xA1, "8251 FIFO Compatible"},
	{0xFF, "Other"},
}

// portConnectorInformation decodes type 8.
func portConnectorInformation(s *Structure) Fields {
	f := fieldsOf(s)

	return Fields{
		{"object_type", "port_connector_information"},
		{"internal_reference_designator", f.str(0x04)},
		{"internal_connector_type", f.enum(0x05, connectorTypes)},
		{"external_reference_designator", f.str(0x06)},
		{"external_connector_type", f.enum(0x07, connectorTypes)},
		{"port_type", f.enum(0x08, portTypes)},
	}
}

var slotTypes = labels{
	{0x01, "Other"},
	{0x02, "Unknown"},
	{0x03, "ISA"},
	{0x04, "MCA"},
	{0x05, "EISA"},
	{0x06, "PCI"},
	{0x07, "PC Card (PCMCIA)"},
	{0x08, " VL-VESA"},
	{0x09, "Proprietary"},
	{0x0A, "Processor Card Slot"},
	{0x0B, "Proprietary Memory Card Slot"},
	{0x0C, "I/O Riser Card Slo"},
	{0x0D, "NuBus"},
	{0x0E, "PCI – 66MHz Capable"},
	{0x0F, "AGP"},
	{0x10, "AGP 2X"},
	{0x11, "AGP 4X"},
	{0x12, "PCI-X"},
	{0x13, "AGP 8X"},
	{0x14, "M.2 Socket 1-DP (Mechanical Key A)"},
	{0x15, "M.2 Socket 1-SD (Mechanical Key E)"},
	{0x16, "M.2 Socket 2 (Mechanical Key B)"},
	{0x17, "M.2 Socket 3 (Mechanical Key M)"},
	{0x18, "MXM Type I"},
	{0x19, "MXM Type II"},
	{0x1A, "MXM Type III (standard connector)"},
	{0x1B, "MXM Type III (HE connector)"},
	{0x1C, "MXM Type IV"},
	{0x1D, "MXM 3.0 Type A"},
	{0x1E, "MXM 3.0 Type B"},
	{0x1F, "PCI Express Gen 2 SFF-8639 (U.2)"},
	{0x20, "PCI Express Gen 3 SFF-8639 (U.2)"},
	{0x21, "PCI Express Mini 52-pin (CEM spec. 2.0)"},
	{0x22, "PCI Express Mini 52-pin (CEM spec. 2.0)"},
	{0x23, "PCI Express Mini 76-pin (CEM spec. 2.0)"},
	{0x24, "PCI Express Gen 4 SFF-8639 (U.2)"},
	{0x25, "PCI Express Gen 5 SFF-8639 (U.2)"},
	{0x26, "OCP NIC 3.0 Small Form Factor (SFF)"},
	{0x27, "OCP NIC 3.0 Large Form Factor (LFF)"},
	{0x28, "OCP NIC Prior to 3.0"},
	{0x30, "CXL Flexbus 1.0"},
	{0xA0, "PC-98/C20"},
	{0xA1, "PC-98/C24"},
	{0xA2, "PC-98/E"},
	{0xA3, "PC-98/Local Bus"},
	{0xA4, "PC-98/Card"},
	{0xA5, "PCI Express (see note below)"},
	{0xA6, "PCI Express x1"},
	{0xA7, "PCI Express x2"},
	{0xA8, "PCI Express x4"},
	{0xA9, "PCI Express x8"},
	{0xAA, "PCI Express x16"},
	{0xAB, "PCI Express Gen 2"},
	{0xAC, "PCI Express Gen 2 x1"},
	{0xAD, "PCI Express Gen 2 x2"},
	{0xAE, "PCI Express Gen 2 x4"},
	{0xAF, "PCI Express Gen 2 x8"},
	{0xB0, "PCI Express Gen 2 x16"},
	{0xB1, "PCI Express Gen 3"},
	{0xB2, "PCI Express Gen 3 x1"},
	{0xB3, "PCI Express Gen 3 x2"},
	{0xB4, "PCI Express Gen 3 x4"},
	{0xB5, "PCI Express Gen 3 x8"},
	{0xB6, "PCI Express Gen 3 x16"},
	{0xB7, "PCI Express Gen 4"},
	{0xB8, "PCI Express Gen 4 x1"},
	{0xB9, "PCI Express Gen 4 x2"},
	{0xBA, "PCI Express Gen 4 x4"},
	{0xBB, "PCI Express Gen 4 x4"},
	{0xBC, "PCI Express Gen 4 x8"},
	{0xBD, "PCI Express Gen 4 x16"},
	{0xBE, "PCI Express Gen 5"},
	{0xBF, "PCI Express Gen 5 x2"},
	{0xC0, "PCI Express Gen 5 x2"},
	{0xC1, "PCI Express Gen 5 x4"},
	{0xC2, "PCI Express Gen 5 x8"},
	{0xC3, "PCI Express Gen 5 x16"},
	{0xC4, "PCI Express Gen 6 and Beyond"},
	{0xC5, "Enterprise and Datacenter 1U E1 Form Factor Slot (EDSFF E1.S, E1.L)"},
	{0xC6, "Enterprise and Datacenter 3' E3 Form Factor Slot (EDSFF E3.S, E3.L)"},
}

var slotDataBusWidths = labels{
	{0x01, "Other"},
	{0x02, "Unknown"},
	{0x03, "8 bit"},
	{0x04, "16 bit"},
	{0x05, "32 bit"},
	{0x06, "64 bit"},
	{0x07, "128 bit"},
	{0x08, "1x or x1"},
	{0x09, "2x or x2"},
	{0x0A, "4x or x4"},
	{0x0B, "8x or x8"},
	{0x0C, "12x or x12"},
	{0x0D, "16x or x16"},
	{0x0E, "32x or x32"},
}

var slotUsages = labels{
	{0x01, "Other"},
	{0x02, "Unknown"},
	{0x03, "Available"},
	{0x04, "In use"},
	{0x05, "Unavailable"},
}

var slotLengths = labels{
	{0x01, "Other"},
	{0x02, "Unknown"},
	{0x03, "Short Length"},
	{0x04, "Long Length"},
	{0x05, "2.5' drive form factor"},
	{0x06, "3.5' drive form factor"},
}

var slotCharacteristics1 = labels{
	{0x01, "Unknown"},
	{0x02, "Provides 5.0 volts"},
	{0x04, "Provides 3.3 volts"},
	{0x08, "Slot’s opening is shared with another slot (for example, PCI/EISA shared slot)"},
	{0x10, "PC Card slot supports PC Card-16."},
	{0x20, "PC Card slot supports CardBus"},
	{0x40, "PC Card slot supports Zoom Video"},
	{0x80, "PC Card slot supports Modem Ring Resume"},
}

var slotCharacteristics2 = labels{
	{0x01, "PCI slot supports Power Management Event (PME#) signal"},
	{0x02, "Slot supports hot-plug devices"},
	{0x04, "PCI slot supports SMBus signal"},
	{0x08, "PCIe slot supports bifurcation"},
	{0x10, "Slot supports async/surprise removal"},
	{0x20, "Flexbus slot, CXL 1.0 capable"},
	{0x40, "Flexbus slot, CXL 2.0 capable"},
	{0x80, "Reserved"},
}

var slotPhysicalWidths = labels{
	{0x01, "Other"},
	{0x02, "Unknown"},
	{0x03, "8 bit"},
	{0x04, "16 bit"},
	{0x05, "32 bit"},
	{0x06, "64 bit"},
	{0x07, "128 bit"},
	{0x08, "1x or x1"},
	{0x09, "2x or x2"},
	{0x0A, "4x or x4"},
	{0x0B, " 8x or x8"},
	{0x0C, "12x or x12"},
	{0x0D, "16x or x16"},
	{0x0E, "32x or x32"},
}

// systemSlotInformation decodes type 9.
func systemSlotInformation(s *Structure) Fields {
	f := fieldsOf(s)

	// Peer group entries are 5 bytes each and precede the slot
	// information and physical width bytes.
	n := int(f.u8(0x12))
	width := 0x14 + 5*n

	return Fields{
		{"object_type", "system_slot_information"},
		{"slot_type", f.enum(0x05, slotTypes)},
		{"slot_designation", f.str(0x04)},
		{"slot_data_bus_width", f.enum(0x06, slotDataBusWidths)},
		{"current_usage", f.enum(0x07, slotUsages)},
		{"slot_length", f.enum(0x08, slotLengths)},
		{"slot_id", int(f.u16(0x09))},
		{"slot_characteristics_1", join(slotCharacteristics1.flags(uint64(f.u8(0x0B))))},
		{"slot_characteristics_2", join(slotCharacteristics2.flags(uint64(f.u8(0x0C))))},
		{"segment_group_number", int(f.u16(0x0D))},
		{"bus_number", int(f.u8(0x0F))},
		{"device_function_number", int(f.u8(0x10))},
		{"data_bus_width", int(f.u8(0x11))},
		{"peer_groups_count", n},
		{"peer_groups", int(f.u8(0x13))},
		{"slot_physical_width", f.enum(width, slotPhysicalWidths)},
	}
}

var onboardDeviceTypes = labels{
	{0x01, "Other"},
	{0x02, "Unknown"},
	{0x03, "Video"},
	{0x04, "SCSI Controller"},
	{0x05, "Ethernet"},
	{0x06, "Token Ring"},
	{0x07, "Sound"},
	{0x08, "PATA Controller"},
	{0x09, "SATA Controller"},
	{0x0A, "SAS Controller"},
}

// deviceStatus renders the enabled bit shared by onboard device types.
func deviceStatus(b uint8) string {
	if b&0x80 != 0 {
		return "Enabled"
	}
	return "Disabled"
}

// onboardDeviceInformation decodes type 10. The structure lists one
// (type, description) pair per device.
func onboardDeviceInformation(s *Structure) Fields {
	f := fieldsOf(s)

	devices := []Fields{}
	for off := headerLen; f.has(off, 2); off += 2 {
		b := f.u8(off)
		devices = append(devices, Fields{
			{"device_type", onboardDeviceTypes.lookup(uint64(b & 0x7F))},
			{"device_status", deviceStatus(b)},
			{"description", f.str(off + 1)},
		})
	}

	return Fields{
		{"object_type", "onboard_device_information"},
		{"devices", devices},
	}
}

var onboardDeviceExtendedTypes = labels{
	{0x01, "Other"},
	{0x02, "Unknown"},
	{0x03, "Video"},
	{0x04, "SCSI Controller"},
	{0x05, "Ethernet"},
	{0x06, "Token Ring"},
	{0x07, "Sound"},
	{0x08, "PATA Controller"},
	{0x09, "SATA Controller"},
	{0x0A, "SAS Controller"},
	{0x0B, "Wireless LAN"},
	{0x0C, "Bluetooth"},
	{0x0D, "WWAN"},
	{0x0E, " eMMC (embedded Multi-Media Controller)"},
	{0x0F, "NVMe Controller"},
	{0x10, "UFS Controller"},
}

// onboardDeviceExtendedInformation decodes type 41.
func onboardDeviceExtendedInformation(s *Structure) Fields {
	f := fieldsOf(s)

	fs := Fields{
		{"object_type", "onboard_device_extended_information"},
		{"reference_designation", f.str(0x04)},
		{"device_type", ""},
		{"device_status", ""},
		{"device_type_instance", int(f.u8(0x06))},
		{"segment_group_number", int(f.u16(0x07))},
		{"bus_number", int(f.u8(0x09))},
		{"device_function_number", int(f.u8(0x0A))},
	}
	if f.has(0x05, 1) {
		b := f.u8(0x05)
		fs.Set("device_type", onboardDeviceExtendedTypes.lookup(uint64(b&0x7F)))
		fs.Set("device_status", deviceStatus(b))
	}

	return fs
}
