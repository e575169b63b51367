package link

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/telelink/pkg/config"
	"github.com/robotalks/telelink/pkg/transport/serial"
)

func TestConfigDefaults(t *testing.T) {
	conf := NewConfig()
	require.Equal(t, "com_port", conf.PortKey)
	require.Equal(t, 115200, conf.Baud)
	require.Equal(t, 20*time.Millisecond, conf.ReadTimeout)
	require.Equal(t, 5000, conf.QueueCapacity)
	require.Equal(t, 5000, conf.MaxErrors)
	require.Equal(t, 10, conf.ReconnectAttempts)
	require.Equal(t, time.Second, conf.ReconnectBackoff)
	require.NotSame(t, Default(), conf)
}

func TestConfigApplyFile(t *testing.T) {
	doc, err := config.Parse([]byte(`
com_port: /dev/ttyUSB0
serial_cboard: /dev/ttyACM0
link:
  layout: cboard
  backend: jacobsa
  baud: 921600
  max_errors: 100
  reconnect_backoff: 250ms
`))
	require.NoError(t, err)

	conf := NewConfig()
	conf.Port = ""
	require.NoError(t, conf.ApplyFile(doc))
	require.Equal(t, "/dev/ttyUSB0", conf.Port)
	require.Equal(t, "cboard", conf.Layout)
	require.Equal(t, 921600, conf.Baud)
	require.Equal(t, 100, conf.MaxErrors)
	require.Equal(t, 250*time.Millisecond, conf.ReconnectBackoff)
	require.Equal(t, 10, conf.ReconnectAttempts)
	require.Equal(t, serial.Config{
		Name:        "/dev/ttyUSB0",
		Baud:        921600,
		ReadTimeout: 20 * time.Millisecond,
		Backend:     serial.BackendJacobsa,
	}, conf.SerialConfig())

	conf = NewConfig()
	conf.Port, conf.PortKey = "", "serial_cboard"
	require.NoError(t, conf.ApplyFile(doc))
	require.Equal(t, "/dev/ttyACM0", conf.Port)

	conf = NewConfig()
	conf.Port = "/dev/ttyS3"
	require.NoError(t, conf.ApplyFile(doc))
	require.Equal(t, "/dev/ttyS3", conf.Port)
}

func TestConfigApplyFileErrors(t *testing.T) {
	doc, err := config.Parse([]byte("link:\n  baud: fast\n  read_timeout: soon\n"))
	require.NoError(t, err)
	conf := NewConfig()
	require.Error(t, conf.ApplyFile(doc))
	require.Equal(t, 115200, conf.Baud)
}
