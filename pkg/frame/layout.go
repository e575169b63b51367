package frame

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/robotalks/telelink/pkg/checksum"
	"github.com/robotalks/telelink/pkg/imu"
)

// Layout describes an inbound telemetry frame of one board variant.
// Offsets are byte positions from the header; negative means absent.
type Layout struct {
	Name       string
	Header     byte
	Size       int
	Checksum   checksum.Width
	ModeOffset int
	QuatOffset int
	AuxOffset  int
	// Bidirectional is set for boards that also accept command frames.
	Bidirectional bool
}

// Board variants.
var (
	// FullTelemetry carries mode, orientation and bullet speed.
	FullTelemetry = &Layout{
		Name:          "full",
		Header:        0xff,
		Size:          16,
		Checksum:      checksum.Width16,
		ModeOffset:    1,
		QuatOffset:    2,
		AuxOffset:     10,
		Bidirectional: true,
	}
	// OrientationOnly carries orientation only.
	OrientationOnly = &Layout{
		Name:       "orientation",
		Header:     0x21,
		Size:       10,
		Checksum:   checksum.Width8,
		ModeOffset: -1,
		QuatOffset: 1,
		AuxOffset:  -1,
	}
)

var layoutAliases = map[string]*Layout{
	"full":        FullTelemetry,
	"hseven":      FullTelemetry,
	"orientation": OrientationOnly,
	"cboard":      OrientationOnly,
}

// LayoutByName finds a layout by name or board alias.
func LayoutByName(name string) (*Layout, error) {
	if l := layoutAliases[strings.ToLower(name)]; l != nil {
		return l, nil
	}
	return nil, fmt.Errorf("unknown frame layout %q", name)
}

// UnitTolerance bounds |w²+x²+y²+z²-1| for an accepted quaternion.
const UnitTolerance = 1e-2

const quatScale = 1e3

// Telemetry is the decoded payload of an inbound frame.
type Telemetry struct {
	Mode    byte
	HasMode bool
	Q       imu.Quaternion
	Aux     float32
	HasAux  bool
}

// String implements fmt.Stringer.
func (l *Layout) String() string {
	return fmt.Sprintf("%s(0x%02x/%d/%s)", l.Name, l.Header, l.Size, l.Checksum)
}

// Decode validates and decodes a complete frame. On ErrInvalidOrientation
// the decoded fields are returned along with the error.
func (l *Layout) Decode(frame []byte) (t Telemetry, err error) {
	if len(frame) != l.Size {
		return t, ErrFrameSize
	}
	if frame[0] != l.Header {
		return t, ErrNoHeader
	}
	if !l.Checksum.Verify(frame) {
		return t, ErrChecksum
	}
	if l.ModeOffset >= 0 {
		t.Mode, t.HasMode = frame[l.ModeOffset], true
	}
	if l.AuxOffset >= 0 {
		t.Aux = math.Float32frombits(binary.LittleEndian.Uint32(frame[l.AuxOffset:]))
		t.HasAux = true
	}
	t.Q = DecodeQuaternion(frame[l.QuatOffset:])
	if !imu.IsUnit(t.Q, UnitTolerance) {
		err = ErrInvalidOrientation
	}
	return
}

// Encode builds a frame from telemetry, as the board would send it.
func (l *Layout) Encode(t Telemetry) []byte {
	b := make([]byte, l.Size-l.Checksum.Size(), l.Size)
	b[0] = l.Header
	if l.ModeOffset >= 0 {
		b[l.ModeOffset] = t.Mode
	}
	if l.AuxOffset >= 0 {
		binary.LittleEndian.PutUint32(b[l.AuxOffset:], math.Float32bits(t.Aux))
	}
	EncodeQuaternion(b[l.QuatOffset:], t.Q)
	return l.Checksum.Append(b)
}

// DecodeQuaternion reads w, x, y, z from 8 bytes of big endian thousandths.
func DecodeQuaternion(b []byte) imu.Quaternion {
	_ = b[7]
	component := func(off int) float64 {
		return float64(int16(binary.BigEndian.Uint16(b[off:]))) / quatScale
	}
	return imu.Quat(component(0), component(2), component(4), component(6))
}

// EncodeQuaternion writes q into 8 bytes of big endian thousandths.
func EncodeQuaternion(b []byte, q imu.Quaternion) {
	_ = b[7]
	for i, v := range []float64{q.Real, q.Imag, q.Jmag, q.Kmag} {
		binary.BigEndian.PutUint16(b[i*2:], uint16(int16(math.Round(v*quatScale))))
	}
}
