package transport

import (
	"errors"
	"io"
)

// ErrClosed indicates the transport is not open.
var ErrClosed = errors.New("transport closed")

// Transport is a reopenable byte stream.
//
// Read follows serial port semantics: it returns (0, nil) when the read
// timeout elapses without data. Callers serialize access; implementations
// need not be safe for concurrent use.
type Transport interface {
	io.ReadWriteCloser
	// Open (re)opens the underlying device. It is valid after Close.
	Open() error
	// Name identifies the device for logging.
	Name() string
}

// OpenChecker is implemented by transports which report whether they are
// open.
type OpenChecker interface {
	IsOpen() bool
}

// EnsureOpen opens t unless it reports being open already.
func EnsureOpen(t Transport) error {
	if c, ok := t.(OpenChecker); ok && c.IsOpen() {
		return nil
	}
	return t.Open()
}
