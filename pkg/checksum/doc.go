// Package checksum implements the frame trailers used by the board firmware.
package checksum

// Both algorithms are table driven and must stay bit compatible with the
// firmware: the tables are the reflected forms of polynomial 0x31 (CRC8)
// and 0x1021 (CRC16), seeded with all ones and without a final xor.
// The CRC16 trailer is stored little endian, low byte first.
