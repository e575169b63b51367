package link

import (
	"github.com/golang/glog"

	"github.com/robotalks/telelink/pkg/frame"
)

// Send writes a command frame. It never fails: write errors are logged and
// counted, and receive-only boards drop the command.
func (d *Driver) Send(cmd frame.Command) {
	if err := d.TrySend(cmd); err == ErrReceiveOnly {
		d.txDisabled.Do(func() {
			glog.Warningf("link[%s]: %s is receive only, commands dropped", d.name, d.layout.Name)
		})
	} else if err != nil {
		glog.Warningf("link[%s]: write command failed: %v", d.name, err)
	}
}

// TrySend writes a command frame and reports the failure, if any.
func (d *Driver) TrySend(cmd frame.Command) error {
	if !d.layout.Bidirectional {
		return ErrReceiveOnly
	}
	buf := frame.EncodeCommand(cmd)
	d.portLock.Lock()
	_, err := d.port.Write(buf)
	d.portLock.Unlock()
	d.updateState(func(s *State) {
		if err != nil {
			s.WriteErrors++
		} else {
			s.Commands++
		}
	})
	if err == nil && glog.V(4) {
		glog.Infof("link[%s]: TX %s", d.name, cmd)
	}
	return err
}
