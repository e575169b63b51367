package serial

import (
	"fmt"
	"io"
	"time"

	jserial "github.com/jacobsa/go-serial/serial"

	"github.com/robotalks/telelink/pkg/transport"
)

// JacobsaPort is a Transport backed by github.com/jacobsa/go-serial.
// The read timeout is rounded up to the 100ms termios granularity.
type JacobsaPort struct {
	Config

	port io.ReadWriteCloser
}

// Name implements transport.Transport.
func (p *JacobsaPort) Name() string {
	return p.Config.Name
}

func (p *JacobsaPort) options() jserial.OpenOptions {
	const step = 100 * time.Millisecond
	timeout := (p.ReadTimeout + step - 1) / step * step
	if timeout < step {
		timeout = step
	}
	return jserial.OpenOptions{
		PortName:              p.Config.Name,
		BaudRate:              uint(p.Baud),
		DataBits:              8,
		StopBits:              1,
		ParityMode:            jserial.PARITY_NONE,
		MinimumReadSize:       0,
		InterCharacterTimeout: uint(timeout / time.Millisecond),
	}
}

// Open implements transport.Transport.
func (p *JacobsaPort) Open() error {
	if p.port != nil {
		p.port.Close()
		p.port = nil
	}
	port, err := jserial.Open(p.options())
	if err != nil {
		return fmt.Errorf("open %s: %w", p.Config.Name, err)
	}
	p.port = port
	return nil
}

// IsOpen implements transport.OpenChecker.
func (p *JacobsaPort) IsOpen() bool {
	return p.port != nil
}

// Close implements transport.Transport.
func (p *JacobsaPort) Close() error {
	if p.port == nil {
		return nil
	}
	err := p.port.Close()
	p.port = nil
	return err
}

// Read implements transport.Transport. A tty read that times out with
// VMIN=0 surfaces as io.EOF and is reported as an empty read.
func (p *JacobsaPort) Read(b []byte) (int, error) {
	if p.port == nil {
		return 0, transport.ErrClosed
	}
	n, err := p.port.Read(b)
	if err == io.EOF {
		err = nil
	}
	return n, err
}

// Write implements transport.Transport.
func (p *JacobsaPort) Write(b []byte) (int, error) {
	if p.port == nil {
		return 0, transport.ErrClosed
	}
	return p.port.Write(b)
}
