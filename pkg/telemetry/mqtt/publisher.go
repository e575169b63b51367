package mqtt

import (
	"time"

	"github.com/golang/glog"
	"github.com/golang/protobuf/proto"

	fx "github.com/robotalks/telelink/pkg/framework"
	"github.com/robotalks/telelink/pkg/link"
)

// StateSource provides link state snapshots.
type StateSource interface {
	State() link.State
}

// Publisher publishes the link status on every loop iteration, and the
// latest orientation sample when a new one was decoded.
type Publisher struct {
	Bus    PubSub
	Device string
	Source StateSource

	lastSample time.Time
}

// NewPublisher creates a Publisher.
func NewPublisher(bus PubSub, device string, source StateSource) *Publisher {
	return &Publisher{Bus: bus, Device: device, Source: source}
}

// AddToLoop implements framework.LoopAdder.
func (p *Publisher) AddToLoop(loop *fx.Loop) {
	loop.AddController(p)
}

// Control implements framework.Controller.
func (p *Publisher) Control(fx.ControlContext) error {
	st := p.Source.State()
	if err := p.publish(TopicStatus, StatusMsg(p.Device, st)); err != nil {
		return err
	}
	if s := st.LastSample; !s.IsZero() && s.Time.After(p.lastSample) {
		p.lastSample = s.Time
		return p.publish(TopicImu, OrientationMsg(s))
	}
	return nil
}

func (p *Publisher) publish(suffix string, msg proto.Message) error {
	payload, err := proto.Marshal(msg)
	if err != nil {
		return err
	}
	topic := DeviceTopic(p.Device, suffix)
	p.Bus.Pub(topic, payload)
	glog.V(4).Infof("mqtt: PUB %q %s", topic, msg)
	return nil
}
