// Package link adds link commands to the shell.
package link

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/telelink/pkg/cli/sh"
	"github.com/robotalks/telelink/pkg/frame"
	"github.com/robotalks/telelink/pkg/link"
)

// ImuTimeout bounds the imu command.
var ImuTimeout = time.Second

// Orientation is the imu command result.
type Orientation struct {
	Time time.Time  `json:"time"`
	Q    [4]float64 `json:"q"`
}

func (o Orientation) String() string {
	return fmt.Sprintf("%s w=%.3f x=%.3f y=%.3f z=%.3f",
		o.Time.Format("15:04:05.000"), o.Q[0], o.Q[1], o.Q[2], o.Q[3])
}

// StatusText formats a link state for display.
func StatusText(st link.State) string {
	var w bytes.Buffer
	conn := "disconnected"
	if st.Connected {
		conn = "connected"
	}
	fmt.Fprintf(&w, "%s (%s) %s mode=%s", st.Port, st.Layout, conn, st.Mode)
	if st.BulletSpeed > 0 {
		fmt.Fprintf(&w, " bullet=%.2f", st.BulletSpeed)
	}
	fmt.Fprintf(&w, "\nframes=%d queued=%d errors=%d checksum=%d invalid=%d unknown_mode=%d overflows=%d",
		st.Frames, st.Queued, st.Errors, st.ChecksumErrors, st.InvalidOrientation, st.UnknownModes, st.Overflows)
	fmt.Fprintf(&w, "\nreconnects=%d reconnect_failures=%d commands=%d write_errors=%d",
		st.Reconnects, st.ReconnectFailures, st.Commands, st.WriteErrors)
	return w.String()
}

// ImuAt queries the orientation delay before now.
func ImuAt(dev sh.Device, delay time.Duration) (o Orientation, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), ImuTimeout)
	defer cancel()
	o.Time = time.Now().Add(-delay)
	q, err := dev.ImuAt(ctx, o.Time)
	if err != nil {
		return o, err
	}
	o.Q = [4]float64{q.Real, q.Imag, q.Jmag, q.Kmag}
	return o, nil
}

var (
	// StatusCmd prints the link state.
	StatusCmd = ishell.Cmd{
		Name:    "status",
		Aliases: []string{"st"},
		Help:    "",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			s := sh.ShellFrom(c)
			st := s.Link.State()
			if s.OutputJSON {
				sh.Print(c, st)
				return
			}
			c.Println(StatusText(st))
		}),
	}

	// ImuCmd prints the interpolated orientation.
	ImuCmd = ishell.Cmd{
		Name:    "imu",
		Aliases: []string{"q"},
		Help:    "[DELAY_MS]",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			var delay time.Duration
			if len(c.Args) > 0 {
				ms, err := strconv.Atoi(c.Args[0])
				if err != nil {
					c.Err(fmt.Errorf("invalid delay %q", c.Args[0]))
					return
				}
				delay = time.Duration(ms) * time.Millisecond
			}
			o, err := ImuAt(sh.ShellFrom(c).Link, delay)
			if err != nil {
				c.Err(err)
				return
			}
			sh.Print(c, o)
		}),
	}

	// SendCmd sends a gimbal command.
	SendCmd = ishell.Cmd{
		Name:    "send",
		Aliases: []string{"s"},
		Help:    "ENGAGE FIRE YAW PITCH",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			cmd, err := frame.ParseCommand(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			if err := sh.ShellFrom(c).Link.TrySend(cmd); err != nil {
				c.Err(err)
				return
			}
			c.Println("OK")
		}),
	}
)

func init() {
	sh.AddCmds(
		&StatusCmd,
		&ImuCmd,
		&SendCmd,
	)
}
