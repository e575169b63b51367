package mqtt

import (
	"fmt"
	"strings"

	"github.com/golang/protobuf/proto"

	"github.com/robotalks/telelink/pkg/frame"
	"github.com/robotalks/telelink/pkg/imu"
	"github.com/robotalks/telelink/pkg/link"
	pb "github.com/robotalks/telelink/pkg/proto/telelink/v1"
)

// OrientationMsg converts a sample.
func OrientationMsg(s imu.Sample) *pb.Orientation {
	return &pb.Orientation{
		TimestampNs: s.Time.UnixNano(),
		W:           s.Q.Real,
		X:           s.Q.Imag,
		Y:           s.Q.Jmag,
		Z:           s.Q.Kmag,
	}
}

// StatusMsg converts a link state.
func StatusMsg(device string, st link.State) *pb.LinkStatus {
	return &pb.LinkStatus{
		Device:             device,
		Port:               st.Port,
		Layout:             st.Layout,
		Mode:               st.Mode.String(),
		BulletSpeed:        st.BulletSpeed,
		Connected:          st.Connected,
		Frames:             st.Frames,
		ReadErrors:         st.ReadErrors,
		ChecksumErrors:     st.ChecksumErrors,
		InvalidOrientation: st.InvalidOrientation,
		Overflows:          st.Overflows,
		Reconnects:         st.Reconnects,
		Commands:           st.Commands,
		WriteErrors:        st.WriteErrors,
		Queued:             uint32(st.Queued),
	}
}

// CommandMsg converts a command.
func CommandMsg(c frame.Command) *pb.GimbalCommand {
	return &pb.GimbalCommand{Engage: c.Engage, Fire: c.Fire, Yaw: c.Yaw, Pitch: c.Pitch}
}

// DecodeCommand parses a GimbalCommand payload.
func DecodeCommand(payload []byte) (frame.Command, error) {
	var msg pb.GimbalCommand
	if err := proto.Unmarshal(payload, &msg); err != nil {
		return frame.Command{}, err
	}
	return frame.Command{
		Engage: msg.GetEngage(),
		Fire:   msg.GetFire(),
		Yaw:    msg.GetYaw(),
		Pitch:  msg.GetPitch(),
	}, nil
}

// DecodeMessage decodes a payload by the suffix of its topic.
func DecodeMessage(topic string, payload []byte) (proto.Message, error) {
	var msg proto.Message
	switch topic[strings.LastIndex(topic, "/")+1:] {
	case TopicStatus:
		msg = &pb.LinkStatus{}
	case TopicImu:
		msg = &pb.Orientation{}
	case TopicCommand:
		msg = &pb.GimbalCommand{}
	default:
		return nil, fmt.Errorf("unknown topic %q", topic)
	}
	if err := proto.Unmarshal(payload, msg); err != nil {
		return nil, err
	}
	return msg, nil
}
