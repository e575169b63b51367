package link

import (
	"context"
	"time"

	"github.com/golang/glog"
)

// reconnect closes and reopens the transport up to ReconnectAttempts
// times, waiting ReconnectBackoff before each reopen and after each
// failure. On success the queue is cleared so samples from before the gap
// are never bracketed with samples after it.
func (d *Driver) reconnect(ctx context.Context) bool {
	attempts := d.conf.ReconnectAttempts
	d.updateState(func(s *State) { s.Connected = false })
	for i := 1; i <= attempts && ctx.Err() == nil; i++ {
		glog.Warningf("link[%s]: reconnecting, attempt %d/%d", d.name, i, attempts)
		d.portLock.Lock()
		d.port.Close()
		d.portLock.Unlock()
		if !sleep(ctx, d.conf.ReconnectBackoff) {
			break
		}

		d.portLock.Lock()
		err := d.port.Open()
		d.portLock.Unlock()
		if err == nil {
			d.queue.Clear()
			d.updateState(func(s *State) {
				s.Connected = true
				s.Reconnects++
			})
			glog.Infof("link[%s]: reconnected", d.name)
			return true
		}
		glog.Warningf("link[%s]: reconnect failed: %v", d.name, err)
		if !sleep(ctx, d.conf.ReconnectBackoff) {
			break
		}
	}
	if ctx.Err() != nil {
		glog.Infof("link[%s]: reconnect aborted", d.name)
		return false
	}
	d.updateState(func(s *State) { s.ReconnectFailures++ })
	glog.Errorf("link[%s]: reconnect failed after %d attempts", d.name, attempts)
	return false
}

// sleep waits for dur and returns false if ctx is done first.
func sleep(ctx context.Context, dur time.Duration) bool {
	timer := time.NewTimer(dur)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
