package checksum

const (
	crc8Init byte = 0xff
	crc8Poly byte = 0x8c // 0x31 reflected
)

var crc8Table = makeCRC8Table()

func makeCRC8Table() (t [256]byte) {
	for i := range t {
		crc := byte(i)
		for bit := 0; bit < 8; bit++ {
			if crc&1 != 0 {
				crc = (crc >> 1) ^ crc8Poly
			} else {
				crc >>= 1
			}
		}
		t[i] = crc
	}
	return
}

// UpdateCRC8 continues a CRC8 computation.
func UpdateCRC8(crc byte, data []byte) byte {
	for _, b := range data {
		crc = crc8Table[crc^b]
	}
	return crc
}

// CRC8 computes the 8-bit checksum of data.
func CRC8(data []byte) byte {
	return UpdateCRC8(crc8Init, data)
}

// Verify8 checks a frame whose last byte is the CRC8 of the preceding bytes.
func Verify8(frame []byte) bool {
	if len(frame) < 2 {
		return false
	}
	n := len(frame) - 1
	return CRC8(frame[:n]) == frame[n]
}

// Append8 appends the CRC8 of data to data.
func Append8(data []byte) []byte {
	return append(data, CRC8(data))
}
