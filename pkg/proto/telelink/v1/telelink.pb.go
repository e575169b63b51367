// source: telelink/v1/telelink.proto

package v1

import (
	proto "github.com/golang/protobuf/proto"
)

// Orientation is one orientation sample of the board.
type Orientation struct {
	// Host receive time, nanoseconds since Unix epoch.
	TimestampNs          int64    `protobuf:"varint,1,opt,name=timestamp_ns,json=timestampNs,proto3" json:"timestamp_ns,omitempty"`
	W                    float64  `protobuf:"fixed64,2,opt,name=w,proto3" json:"w,omitempty"`
	X                    float64  `protobuf:"fixed64,3,opt,name=x,proto3" json:"x,omitempty"`
	Y                    float64  `protobuf:"fixed64,4,opt,name=y,proto3" json:"y,omitempty"`
	Z                    float64  `protobuf:"fixed64,5,opt,name=z,proto3" json:"z,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *Orientation) Reset()         { *m = Orientation{} }
func (m *Orientation) String() string { return proto.CompactTextString(m) }
func (*Orientation) ProtoMessage()    {}

func (m *Orientation) GetTimestampNs() int64 {
	if m != nil {
		return m.TimestampNs
	}
	return 0
}

func (m *Orientation) GetW() float64 {
	if m != nil {
		return m.W
	}
	return 0
}

func (m *Orientation) GetX() float64 {
	if m != nil {
		return m.X
	}
	return 0
}

func (m *Orientation) GetY() float64 {
	if m != nil {
		return m.Y
	}
	return 0
}

func (m *Orientation) GetZ() float64 {
	if m != nil {
		return m.Z
	}
	return 0
}

// LinkStatus is a snapshot of the serial link.
type LinkStatus struct {
	Device               string   `protobuf:"bytes,1,opt,name=device,proto3" json:"device,omitempty"`
	Port                 string   `protobuf:"bytes,2,opt,name=port,proto3" json:"port,omitempty"`
	Layout               string   `protobuf:"bytes,3,opt,name=layout,proto3" json:"layout,omitempty"`
	Mode                 string   `protobuf:"bytes,4,opt,name=mode,proto3" json:"mode,omitempty"`
	BulletSpeed          float32  `protobuf:"fixed32,5,opt,name=bullet_speed,json=bulletSpeed,proto3" json:"bullet_speed,omitempty"`
	Connected            bool     `protobuf:"varint,6,opt,name=connected,proto3" json:"connected,omitempty"`
	Frames               uint64   `protobuf:"varint,7,opt,name=frames,proto3" json:"frames,omitempty"`
	ReadErrors           uint64   `protobuf:"varint,8,opt,name=read_errors,json=readErrors,proto3" json:"read_errors,omitempty"`
	ChecksumErrors       uint64   `protobuf:"varint,9,opt,name=checksum_errors,json=checksumErrors,proto3" json:"checksum_errors,omitempty"`
	InvalidOrientation   uint64   `protobuf:"varint,10,opt,name=invalid_orientation,json=invalidOrientation,proto3" json:"invalid_orientation,omitempty"`
	Overflows            uint64   `protobuf:"varint,11,opt,name=overflows,proto3" json:"overflows,omitempty"`
	Reconnects           uint64   `protobuf:"varint,12,opt,name=reconnects,proto3" json:"reconnects,omitempty"`
	Commands             uint64   `protobuf:"varint,13,opt,name=commands,proto3" json:"commands,omitempty"`
	WriteErrors          uint64   `protobuf:"varint,14,opt,name=write_errors,json=writeErrors,proto3" json:"write_errors,omitempty"`
	Queued               uint32   `protobuf:"varint,15,opt,name=queued,proto3" json:"queued,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *LinkStatus) Reset()         { *m = LinkStatus{} }
func (m *LinkStatus) String() string { return proto.CompactTextString(m) }
func (*LinkStatus) ProtoMessage()    {}

func (m *LinkStatus) GetDevice() string {
	if m != nil {
		return m.Device
	}
	return ""
}

func (m *LinkStatus) GetMode() string {
	if m != nil {
		return m.Mode
	}
	return ""
}

func (m *LinkStatus) GetBulletSpeed() float32 {
	if m != nil {
		return m.BulletSpeed
	}
	return 0
}

func (m *LinkStatus) GetConnected() bool {
	if m != nil {
		return m.Connected
	}
	return false
}

// GimbalCommand is sent to bidirectional boards.
type GimbalCommand struct {
	Engage               bool     `protobuf:"varint,1,opt,name=engage,proto3" json:"engage,omitempty"`
	Fire                 bool     `protobuf:"varint,2,opt,name=fire,proto3" json:"fire,omitempty"`
	Yaw                  float32  `protobuf:"fixed32,3,opt,name=yaw,proto3" json:"yaw,omitempty"`
	Pitch                float32  `protobuf:"fixed32,4,opt,name=pitch,proto3" json:"pitch,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *GimbalCommand) Reset()         { *m = GimbalCommand{} }
func (m *GimbalCommand) String() string { return proto.CompactTextString(m) }
func (*GimbalCommand) ProtoMessage()    {}

func (m *GimbalCommand) GetEngage() bool {
	if m != nil {
		return m.Engage
	}
	return false
}

func (m *GimbalCommand) GetFire() bool {
	if m != nil {
		return m.Fire
	}
	return false
}

func (m *GimbalCommand) GetYaw() float32 {
	if m != nil {
		return m.Yaw
	}
	return 0
}

func (m *GimbalCommand) GetPitch() float32 {
	if m != nil {
		return m.Pitch
	}
	return 0
}

func init() {
	proto.RegisterType((*Orientation)(nil), "telelink.v1.Orientation")
	proto.RegisterType((*LinkStatus)(nil), "telelink.v1.LinkStatus")
	proto.RegisterType((*GimbalCommand)(nil), "telelink.v1.GimbalCommand")
}
