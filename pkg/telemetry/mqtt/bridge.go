package mqtt

import (
	"context"

	"github.com/golang/glog"

	"github.com/robotalks/telelink/pkg/frame"
)

// Sender accepts gimbal commands.
type Sender interface {
	Send(frame.Command)
}

// CommandBridge forwards GimbalCommand messages from <device>/cmd to a
// Sender.
type CommandBridge struct {
	Bus    PubSub
	Device string
	Sender Sender
}

// NewCommandBridge creates a CommandBridge.
func NewCommandBridge(bus PubSub, device string, sender Sender) *CommandBridge {
	return &CommandBridge{Bus: bus, Device: device, Sender: sender}
}

// Name implements framework.Named.
func (b *CommandBridge) Name() string {
	return "command-bridge"
}

// Run implements framework.Runnable.
func (b *CommandBridge) Run(ctx context.Context) error {
	sub, err := b.Bus.Subscribe(DeviceTopic(b.Device, TopicCommand), b.handle)
	if err != nil {
		return err
	}
	defer sub.Close()
	<-ctx.Done()
	return ctx.Err()
}

func (b *CommandBridge) handle(topic string, payload []byte) {
	cmd, err := DecodeCommand(payload)
	if err != nil {
		glog.Warningf("mqtt: %s: bad command: %v", topic, err)
		return
	}
	glog.V(2).Infof("mqtt: %s: %s", topic, cmd)
	b.Sender.Send(cmd)
}
