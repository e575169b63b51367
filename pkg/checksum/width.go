package checksum

import "fmt"

// Width selects one of the supported checksum trailers.
type Width int

// Supported widths.
const (
	Width8  Width = 8
	Width16 Width = 16
)

// Size returns the trailer length in bytes.
func (w Width) Size() int {
	return int(w) / 8
}

// Verify checks the trailer at the end of frame.
func (w Width) Verify(frame []byte) bool {
	switch w {
	case Width8:
		return Verify8(frame)
	case Width16:
		return Verify16(frame)
	}
	return false
}

// Append appends the trailer computed over data.
func (w Width) Append(data []byte) []byte {
	switch w {
	case Width8:
		return Append8(data)
	case Width16:
		return Append16(data)
	}
	panic(fmt.Sprintf("checksum: unsupported width %d", int(w)))
}

// String implements fmt.Stringer.
func (w Width) String() string {
	return fmt.Sprintf("crc%d", int(w))
}
