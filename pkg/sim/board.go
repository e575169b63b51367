// Package sim simulates a gimbal control board on an in-memory transport.
package sim

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/telelink/pkg/frame"
	"github.com/robotalks/telelink/pkg/link"
	"github.com/robotalks/telelink/pkg/transport"
)

// DefaultRate is the telemetry frame rate.
const DefaultRate = 200

// Board emits telemetry frames into a Pipe and follows command frames
// written to it.
type Board struct {
	Port        *transport.Pipe
	Layout      *frame.Layout
	Rate        int
	Mode        link.Mode
	BulletSpeed float32

	lock   sync.Mutex
	gimbal Gimbal
	rx     []byte
	cmds   uint64
	shots  uint64
	bad    uint64
}

// BoardStats are the board side counters.
type BoardStats struct {
	Commands    uint64
	Shots       uint64
	BadCommands uint64
}

// NewBoard creates a board on port.
func NewBoard(port *transport.Pipe, layout *frame.Layout) *Board {
	return &Board{
		Port:        port,
		Layout:      layout,
		Rate:        DefaultRate,
		Mode:        link.ModeAutoAim,
		BulletSpeed: 15,
	}
}

// Name implements framework.Named.
func (b *Board) Name() string {
	return "sim[" + b.Port.Name() + "]"
}

// Gimbal returns a copy of the gimbal state.
func (b *Board) Gimbal() Gimbal {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.gimbal
}

// SetSlewRate sets the gimbal speed in radians per second.
func (b *Board) SetSlewRate(rate float64) {
	b.lock.Lock()
	b.gimbal.SlewRate = rate
	b.lock.Unlock()
}

// Stats returns the board side counters.
func (b *Board) Stats() BoardStats {
	b.lock.Lock()
	defer b.lock.Unlock()
	return BoardStats{Commands: b.cmds, Shots: b.shots, BadCommands: b.bad}
}

// Run implements framework.Runnable.
func (b *Board) Run(ctx context.Context) error {
	rate := b.Rate
	if rate <= 0 {
		rate = DefaultRate
	}
	period := time.Second / time.Duration(rate)
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	glog.Infof("%s: %s frames at %dHz", b.Name(), b.Layout.Name, rate)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			b.Tick(period)
		}
	}
}

// Tick consumes pending commands, advances the gimbal by dt and emits one
// frame.
func (b *Board) Tick(dt time.Duration) {
	b.lock.Lock()
	b.consume(b.Port.Written())
	b.gimbal.Step(dt)
	tel := frame.Telemetry{
		Mode: b.Mode.Code(),
		Q:    b.gimbal.Orientation(),
		Aux:  b.BulletSpeed,
	}
	b.lock.Unlock()
	b.Port.Feed(b.Layout.Encode(tel))
}

func (b *Board) consume(data []byte) {
	b.rx = append(b.rx, data...)
	for len(b.rx) > 0 {
		start := bytes.IndexByte(b.rx, frame.CommandHeader)
		if start < 0 {
			b.rx = b.rx[:0]
			return
		}
		b.rx = b.rx[start:]
		if len(b.rx) < frame.CommandSize {
			return
		}
		cmd, err := frame.DecodeCommand(b.rx[:frame.CommandSize])
		if err != nil {
			glog.V(2).Infof("%s: drop command byte: %v", b.Name(), err)
			b.bad++
			b.rx = b.rx[1:]
			continue
		}
		b.rx = b.rx[frame.CommandSize:]
		b.apply(cmd)
	}
}

func (b *Board) apply(cmd frame.Command) {
	b.cmds++
	glog.V(3).Infof("%s: %s", b.Name(), cmd)
	if !cmd.Engage {
		b.gimbal.Release()
		return
	}
	b.gimbal.Aim(AngleFromRadians(float64(cmd.Yaw)), AngleFromRadians(float64(cmd.Pitch)))
	if cmd.Fire {
		b.shots++
	}
}
