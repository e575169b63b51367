package checksum

const (
	crc16Init uint16 = 0xffff
	crc16Poly uint16 = 0x8408 // 0x1021 reflected
)

var crc16Table = makeCRC16Table()

func makeCRC16Table() (t [256]uint16) {
	for i := range t {
		crc := uint16(i)
		for bit := 0; bit < 8; bit++ {
			if crc&1 != 0 {
				crc = (crc >> 1) ^ crc16Poly
			} else {
				crc >>= 1
			}
		}
		t[i] = crc
	}
	return
}

// UpdateCRC16 continues a CRC16 computation.
func UpdateCRC16(crc uint16, data []byte) uint16 {
	for _, b := range data {
		crc = (crc >> 8) ^ crc16Table[byte(crc)^b]
	}
	return crc
}

// CRC16 computes the 16-bit checksum of data.
func CRC16(data []byte) uint16 {
	return UpdateCRC16(crc16Init, data)
}

// Verify16 checks a frame whose last two bytes are the little endian CRC16
// of the preceding bytes.
func Verify16(frame []byte) bool {
	if len(frame) < 3 {
		return false
	}
	n := len(frame) - 2
	crc := CRC16(frame[:n])
	return frame[n] == byte(crc) && frame[n+1] == byte(crc>>8)
}

// Append16 appends the little endian CRC16 of data to data.
func Append16(data []byte) []byte {
	crc := CRC16(data)
	return append(data, byte(crc), byte(crc>>8))
}
