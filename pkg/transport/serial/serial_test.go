package serial

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.bug.st/serial/enumerator"

	"github.com/robotalks/telelink/pkg/transport"
)

func fakePorts(t *testing.T, ports []*enumerator.PortDetails, err error) {
	saved := listDetailed
	listDetailed = func() ([]*enumerator.PortDetails, error) { return ports, err }
	t.Cleanup(func() { listDetailed = saved })
}

func TestListPorts(t *testing.T) {
	fakePorts(t, []*enumerator.PortDetails{
		{Name: "/dev/ttyS0"},
		{Name: "/dev/ttyUSB0", IsUSB: true, VID: "0483", PID: "5740", Product: "STM32 Virtual COM", SerialNumber: "A1"},
	}, nil)
	ports, err := ListPorts()
	require.NoError(t, err)
	require.Len(t, ports, 2)
	require.Equal(t, "/dev/ttyS0", ports[0].String())
	require.Equal(t, "/dev/ttyUSB0 [0483:5740] STM32 Virtual COM SN=A1", ports[1].String())

	name, err := Detect()
	require.NoError(t, err)
	require.Equal(t, "/dev/ttyUSB0", name)
}

func TestDetectNoPort(t *testing.T) {
	fakePorts(t, []*enumerator.PortDetails{{Name: "/dev/ttyS0"}}, nil)
	_, err := Detect()
	require.Equal(t, ErrNoPort, err)

	boom := errors.New("boom")
	fakePorts(t, nil, boom)
	_, err = New(Config{Name: "AUTO"})
	require.Equal(t, boom, err)
}

func TestNewBackends(t *testing.T) {
	conf := DefaultConfig("/dev/ttyACM0")
	tr, err := New(conf)
	require.NoError(t, err)
	require.IsType(t, &Port{}, tr)
	require.Equal(t, "/dev/ttyACM0", tr.Name())

	conf.Backend = "Jacobsa"
	tr, err = New(conf)
	require.NoError(t, err)
	require.IsType(t, &JacobsaPort{}, tr)

	conf.Backend = "tarm"
	_, err = New(conf)
	require.Error(t, err)
}

func TestNewAutoDetect(t *testing.T) {
	fakePorts(t, []*enumerator.PortDetails{{Name: "COM7", IsUSB: true}}, nil)
	tr, err := New(Config{Name: AutoDetect})
	require.NoError(t, err)
	require.Equal(t, "COM7", tr.Name())
}

func TestUnopenedPort(t *testing.T) {
	for _, tr := range []transport.Transport{&Port{}, &JacobsaPort{}} {
		_, err := tr.Read(make([]byte, 1))
		require.Equal(t, transport.ErrClosed, err)
		_, err = tr.Write([]byte{1})
		require.Equal(t, transport.ErrClosed, err)
		require.NoError(t, tr.Close())
		require.False(t, tr.(transport.OpenChecker).IsOpen())
	}
}

func TestJacobsaTimeout(t *testing.T) {
	p := &JacobsaPort{Config: DefaultConfig("/dev/ttyUSB0")}
	opts := p.options()
	require.Equal(t, uint(100), opts.InterCharacterTimeout)
	require.Equal(t, uint(0), opts.MinimumReadSize)
	require.Equal(t, uint(115200), opts.BaudRate)
	p.ReadTimeout = 250_000_000
	require.Equal(t, uint(300), p.options().InterCharacterTimeout)
}

func TestIsDisconnect(t *testing.T) {
	require.True(t, IsDisconnect(transport.ErrClosed))
	require.False(t, IsDisconnect(errors.New("other")))
	require.False(t, IsDisconnect(nil))
}
