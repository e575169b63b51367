package serial

import (
	"errors"
	"fmt"

	bugst "go.bug.st/serial"

	"github.com/robotalks/telelink/pkg/transport"
)

// Port is a Transport backed by go.bug.st/serial.
type Port struct {
	Config

	port bugst.Port
}

// Name implements transport.Transport.
func (p *Port) Name() string {
	return p.Config.Name
}

// Open implements transport.Transport.
func (p *Port) Open() error {
	if p.port != nil {
		p.port.Close()
		p.port = nil
	}
	port, err := bugst.Open(p.Config.Name, &bugst.Mode{
		BaudRate: p.Baud,
		DataBits: 8,
		Parity:   bugst.NoParity,
		StopBits: bugst.OneStopBit,
	})
	if err != nil {
		return fmt.Errorf("open %s: %w", p.Config.Name, err)
	}
	if err = port.SetReadTimeout(p.ReadTimeout); err != nil {
		port.Close()
		return fmt.Errorf("set read timeout on %s: %w", p.Config.Name, err)
	}
	p.port = port
	return nil
}

// IsOpen implements transport.OpenChecker.
func (p *Port) IsOpen() bool {
	return p.port != nil
}

// Close implements transport.Transport.
func (p *Port) Close() error {
	if p.port == nil {
		return nil
	}
	err := p.port.Close()
	p.port = nil
	return err
}

// Read implements transport.Transport.
func (p *Port) Read(b []byte) (int, error) {
	if p.port == nil {
		return 0, transport.ErrClosed
	}
	return p.port.Read(b)
}

// Write implements transport.Transport.
func (p *Port) Write(b []byte) (int, error) {
	if p.port == nil {
		return 0, transport.ErrClosed
	}
	return p.port.Write(b)
}

// IsDisconnect reports whether err means the device went away, as opposed
// to a configuration or permission problem.
func IsDisconnect(err error) bool {
	if errors.Is(err, transport.ErrClosed) {
		return true
	}
	var portErr *bugst.PortError
	if errors.As(err, &portErr) {
		switch portErr.Code() {
		case bugst.PortNotFound, bugst.PortClosed, bugst.InvalidSerialPort:
			return true
		}
	}
	return false
}
