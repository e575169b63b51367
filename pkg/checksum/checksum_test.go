package checksum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTables(t *testing.T) {
	require.Equal(t, byte(0x5e), crc8Table[1])
	require.Equal(t, byte(0xbc), crc8Table[2])
	require.Equal(t, uint16(0x1189), crc16Table[1])
	require.Equal(t, uint16(0x2312), crc16Table[2])
}

func TestCRC8(t *testing.T) {
	// init 0xff ^ 0xfe selects table[1].
	require.Equal(t, byte(0x5e), CRC8([]byte{0xfe}))
	require.Equal(t, crc8Init, CRC8(nil))
	require.Equal(t, CRC8([]byte{1, 2, 3, 4}), UpdateCRC8(CRC8([]byte{1, 2}), []byte{3, 4}))
}

func TestCRC16(t *testing.T) {
	require.Equal(t, uint16(0x6f91), CRC16([]byte("123456789")))
	require.Equal(t, uint16(0x00ff^0x1189), CRC16([]byte{0xfe}))
	require.Equal(t, crc16Init, CRC16(nil))
}

func TestAppendVerify(t *testing.T) {
	payloads := [][]byte{
		{0x21},
		{0xff, 0x01, 0x03, 0xe8, 0, 0, 0, 0, 0, 0},
		[]byte("123456789"),
	}
	for _, w := range []Width{Width8, Width16} {
		for _, p := range payloads {
			frame := w.Append(append([]byte(nil), p...))
			require.Len(t, frame, len(p)+w.Size())
			require.Truef(t, w.Verify(frame), "%s %x", w, frame)
			for i := range frame {
				for bit := uint(0); bit < 8; bit++ {
					corrupted := append([]byte(nil), frame...)
					corrupted[i] ^= 1 << bit
					require.Falsef(t, w.Verify(corrupted), "%s byte %d bit %d", w, i, bit)
				}
			}
		}
	}
}

func TestCRC16TrailerOrder(t *testing.T) {
	frame := Append16([]byte("123456789"))
	require.Equal(t, []byte{0x91, 0x6f}, frame[9:])
}

func TestVerifyTooShort(t *testing.T) {
	require.False(t, Verify8(nil))
	require.False(t, Verify8([]byte{0xff}))
	require.False(t, Verify16([]byte{0xff, 0xff}))
	require.False(t, Width(3).Verify([]byte{1, 2, 3}))
}
