package link

import (
	"context"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/telelink/pkg/frame"
	"github.com/robotalks/telelink/pkg/imu"
	"github.com/robotalks/telelink/pkg/transport/serial"
)

const speedLogInterval = time.Second

func (d *Driver) readLoop(ctx context.Context) {
	glog.Infof("link[%s]: reader started", d.name)
	defer glog.Infof("link[%s]: reader stopped", d.name)
	for ctx.Err() == nil {
		if d.errors() >= d.conf.MaxErrors {
			glog.Warningf("link[%s]: %d consecutive read errors, reconnecting", d.name, d.conf.MaxErrors)
			d.updateState(func(s *State) { s.Errors = 0 })
			d.reconnect(ctx)
			continue
		}
		d.readFrame()
	}
}

// readFrame performs one synchronization step.
func (d *Driver) readFrame() {
	tel, err := d.decoder.Next()
	switch {
	case err == nil:
		d.accept(tel)
	case err == frame.ErrNoHeader:
	case err == frame.ErrChecksum:
		glog.V(2).Infof("link[%s]: %s check failed", d.name, d.layout.Checksum)
		d.updateState(func(s *State) { s.ChecksumErrors++ })
	case err == frame.ErrInvalidOrientation:
		glog.Warningf("link[%s]: invalid quaternion %v", d.name, tel.Q)
		d.updateState(func(s *State) { s.InvalidOrientation++ })
	default:
		var first bool
		disconnected := serial.IsDisconnect(err)
		d.updateState(func(s *State) {
			s.Errors++
			s.ReadErrors++
			first = s.Errors == 1
			if disconnected {
				s.Connected = false
			}
		})
		if disconnected && first {
			glog.Warningf("link[%s]: device disconnected: %v", d.name, err)
		} else if _, ok := err.(*frame.ReadError); ok && first {
			glog.Warningf("link[%s]: %v", d.name, err)
		} else {
			glog.V(4).Infof("link[%s]: %v", d.name, err)
		}
	}
}

func (d *Driver) accept(tel frame.Telemetry) {
	sample := imu.Sample{Q: tel.Q, Time: time.Now()}
	evicted := d.queue.Push(sample)

	mode, known := ModeFromCode(tel.Mode)
	var logSpeed bool
	d.stateLock.Lock()
	s := &d.state
	s.Errors = 0
	s.Frames++
	s.LastSample = sample
	if evicted {
		s.Overflows++
	}
	if tel.HasMode {
		s.Mode = mode
		if !known {
			s.UnknownModes++
		}
	}
	if tel.HasAux {
		s.BulletSpeed = tel.Aux
		if tel.Aux > 0 && sample.Time.Sub(d.lastLog) >= speedLogInterval {
			d.lastLog, logSpeed = sample.Time, true
		}
	}
	d.stateLock.Unlock()

	if tel.HasMode && !known {
		glog.Warningf("link[%s]: invalid mode %d", d.name, tel.Mode)
	}
	if logSpeed {
		glog.Infof("link[%s]: bullet speed %.2f m/s, mode %s", d.name, tel.Aux, mode)
	}
	if glog.V(4) {
		glog.Infof("link[%s]: RX %v", d.name, tel.Q)
	}
}

func (d *Driver) errors() int {
	d.stateLock.RLock()
	defer d.stateLock.RUnlock()
	return d.state.Errors
}
