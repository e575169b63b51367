// Package frame encodes and decodes the fixed-size binary frames exchanged
// with the board.
package frame

// Every frame starts with a header byte and ends with a checksum trailer.
// The byte stream carries no other framing, so a reader synchronizes by
// reading one byte at a time until it sees the header, then reads the rest
// of the frame unconditionally. A corrupted header therefore costs at most
// one frame.
//
// Quaternion components travel as big endian int16 in thousandths. Floats
// and the CRC16 trailer are little endian, matching the packed structs of
// the firmware.
