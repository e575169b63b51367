package link

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/telelink/pkg/frame"
	"github.com/robotalks/telelink/pkg/imu"
	"github.com/robotalks/telelink/pkg/link"
)

type fakeDevice struct {
	at time.Time
}

func (d *fakeDevice) Name() string      { return "fake" }
func (d *fakeDevice) State() link.State { return link.State{} }
func (d *fakeDevice) ImuAt(ctx context.Context, t time.Time) (imu.Quaternion, error) {
	d.at = t
	return imu.Quat(0, 0, 0, 1), nil
}
func (d *fakeDevice) TrySend(frame.Command) error { return nil }
func (d *fakeDevice) Close() error               { return nil }

func TestStatusText(t *testing.T) {
	st := link.State{
		Port:        "/dev/ttyUSB0",
		Layout:      "full",
		Mode:        link.ModeSmallBuff,
		BulletSpeed: 15.5,
		Connected:   true,
		Counters:    link.Counters{Frames: 7, Reconnects: 1},
	}
	text := StatusText(st)
	require.True(t, strings.HasPrefix(text, "/dev/ttyUSB0 (full) connected mode=small_buff bullet=15.50\n"))
	require.Contains(t, text, "frames=7 ")
	require.Contains(t, text, "reconnects=1 ")

	st.Connected, st.BulletSpeed = false, 0
	require.NotContains(t, StatusText(st), "bullet")
	require.Contains(t, StatusText(st), "disconnected")
}

func TestImuAt(t *testing.T) {
	dev := &fakeDevice{}
	before := time.Now()
	o, err := ImuAt(dev, 100*time.Millisecond)
	require.NoError(t, err)
	require.Equal(t, o.Time, dev.at)
	require.True(t, o.Time.Before(before))
	require.Equal(t, [4]float64{0, 0, 0, 1}, o.Q)
	require.Contains(t, o.String(), "z=1.000")
}
