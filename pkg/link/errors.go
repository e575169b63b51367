package link

import "errors"

var (
	// ErrReceiveOnly indicates the board variant does not accept commands.
	ErrReceiveOnly = errors.New("board is receive only")
	// ErrNoPort indicates no serial port is configured.
	ErrNoPort = errors.New("serial port not configured")
)
