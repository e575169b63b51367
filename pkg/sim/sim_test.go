package sim

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/telelink/pkg/frame"
	"github.com/robotalks/telelink/pkg/imu"
	"github.com/robotalks/telelink/pkg/link"
	"github.com/robotalks/telelink/pkg/transport"
)

func TestAngle(t *testing.T) {
	require.InDelta(t, -90, AngleFromDegrees(270).Degrees(), 1e-9)
	require.InDelta(t, math.Pi/2, AngleFromDegrees(-630).Radians(), 1e-9)
	require.InDelta(t, -math.Pi/2, AngleFromDegrees(170).DiffTo(AngleFromDegrees(80)), 1e-9)
	require.InDelta(t, math.Pi/9, AngleFromDegrees(170).DiffTo(AngleFromDegrees(-170)), 1e-9)
}

func TestAngleApproach(t *testing.T) {
	a := AngleFromDegrees(170)
	target := AngleFromDegrees(-170)
	step := AngleFromDegrees(15).Radians()
	a = a.Approach(target, step)
	require.InDelta(t, -175, a.Degrees(), 1e-9)
	a = a.Approach(target, step)
	require.Equal(t, target, a)
}

func TestGimbalStep(t *testing.T) {
	g := &Gimbal{SlewRate: math.Pi / 2}
	g.Step(time.Second)
	require.Zero(t, g.Yaw)

	g.Aim(AngleFromDegrees(90), AngleFromDegrees(-10))
	require.True(t, g.Aiming())
	g.Step(500 * time.Millisecond)
	require.InDelta(t, 45, g.Yaw.Degrees(), 1e-9)
	require.InDelta(t, -10, g.Pitch.Degrees(), 1e-9)
	g.Step(time.Second)
	require.InDelta(t, 90, g.Yaw.Degrees(), 1e-9)

	g.Release()
	g.Aim(AngleFromDegrees(0), 0)
	g.Release()
	g.Step(time.Second)
	require.InDelta(t, 90, g.Yaw.Degrees(), 1e-9)
}

func TestGimbalOrientation(t *testing.T) {
	g := &Gimbal{Yaw: AngleFromDegrees(90)}
	expect := imu.FromAxisAngle(0, 0, 1, math.Pi/2)
	require.Less(t, imu.Angle(expect, g.Orientation()), 1e-6)
	require.True(t, imu.IsUnit(g.Orientation(), 1e-9))
}

func TestBoardTickEmitsFrame(t *testing.T) {
	p := transport.NewPipe("sim")
	b := NewBoard(p, frame.FullTelemetry)
	b.Tick(time.Millisecond)

	buf := make([]byte, 64)
	n, err := p.Read(buf)
	require.NoError(t, err)
	require.Equal(t, frame.FullTelemetry.Size, n)
	tel, err := frame.FullTelemetry.Decode(buf[:n])
	require.NoError(t, err)
	require.Equal(t, link.ModeAutoAim.Code(), tel.Mode)
	require.Equal(t, float32(15), tel.Aux)
	require.Equal(t, imu.Identity, tel.Q)
}

func TestBoardFollowsCommands(t *testing.T) {
	p := transport.NewPipe("sim")
	b := NewBoard(p, frame.OrientationOnly)
	b.SetSlewRate(math.Pi)

	data := []byte{0x01, 0xff, 0x00}
	data = append(data, frame.EncodeCommand(frame.Command{Engage: true, Fire: true, Yaw: math.Pi / 2})...)
	_, err := p.Write(data)
	require.NoError(t, err)
	b.Tick(250 * time.Millisecond)
	require.InDelta(t, 45, b.Gimbal().Yaw.Degrees(), 1e-6)

	st := b.Stats()
	require.Equal(t, uint64(1), st.Commands)
	require.Equal(t, uint64(1), st.Shots)
	require.Equal(t, uint64(1), st.BadCommands)

	// split across ticks
	cmd := frame.EncodeCommand(frame.Command{})
	p.Write(cmd[:5])
	b.Tick(250 * time.Millisecond)
	require.InDelta(t, 90, b.Gimbal().Yaw.Degrees(), 1e-4)
	p.Write(cmd[5:])
	b.Tick(0)
	g := b.Gimbal()
	require.False(t, g.Aiming())
	require.Equal(t, uint64(2), b.Stats().Commands)
}

func TestBoardDrivesLink(t *testing.T) {
	p := transport.NewPipe("sim")
	p.ReadTimeout = 2 * time.Millisecond
	b := NewBoard(p, frame.FullTelemetry)
	b.Rate = 500
	b.SetSlewRate(4 * math.Pi)

	conf := link.NewConfig()
	conf.Transport = p
	d, err := link.Open(conf)
	require.NoError(t, err)
	defer d.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go b.Run(ctx)

	first, err := d.AwaitFirstSample(ctx)
	require.NoError(t, err)
	require.Less(t, imu.Angle(imu.Identity, first.Q), 1e-2)

	d.Send(frame.Command{Engage: true, Yaw: math.Pi / 2})
	expect := imu.FromAxisAngle(0, 0, 1, math.Pi/2)
	require.Eventually(t, func() bool {
		return imu.Angle(expect, d.State().LastSample.Q) < 1e-2
	}, 2*time.Second, time.Millisecond)
	require.Equal(t, link.ModeAutoAim, d.Mode())
	require.Equal(t, uint64(1), b.Stats().Commands)
}

func TestConfigAttach(t *testing.T) {
	conf := link.NewConfig()
	conf.Layout = frame.OrientationOnly.Name
	sc := NewConfig()
	sc.Mode = "outpost"
	b, err := sc.Attach(conf)
	require.NoError(t, err)
	require.Same(t, b.Port, conf.Transport)
	require.Equal(t, link.ModeOutpost, b.Mode)
	require.Equal(t, frame.OrientationOnly, b.Layout)
	require.Equal(t, DefaultSlewRate, b.Gimbal().SlewRate)

	sc.Mode = "chase"
	_, err = sc.Attach(conf)
	require.Error(t, err)
}
