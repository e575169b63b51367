package frame

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeout indicates the transport returned no data.
	ErrTimeout = errors.New("read timeout")
	// ErrNoHeader indicates the byte read is not a frame header.
	ErrNoHeader = errors.New("not a frame header")
	// ErrShortFrame indicates the frame body could not be read completely.
	ErrShortFrame = errors.New("short frame")
	// ErrFrameSize indicates a buffer of the wrong length for the layout.
	ErrFrameSize = errors.New("frame size mismatch")
	// ErrChecksum indicates the checksum trailer does not match.
	ErrChecksum = errors.New("checksum mismatch")
	// ErrInvalidOrientation indicates the decoded quaternion is not unit-norm.
	ErrInvalidOrientation = errors.New("invalid orientation")
)

// ReadError wraps an error returned by the transport.
type ReadError struct {
	Err error
}

// Error implements error.
func (e *ReadError) Error() string {
	return fmt.Sprintf("read error: %v", e.Err)
}

// Unwrap returns the transport error.
func (e *ReadError) Unwrap() error {
	return e.Err
}

// IsTransient reports whether err is a transport level failure that counts
// toward sustained failure detection, as opposed to a bad frame.
func IsTransient(err error) bool {
	if errors.Is(err, ErrTimeout) || errors.Is(err, ErrShortFrame) {
		return true
	}
	var readErr *ReadError
	return errors.As(err, &readErr)
}
