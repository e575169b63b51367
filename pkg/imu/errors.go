package imu

import "errors"

var (
	// ErrQueueClosed is returned by Pop once the queue is closed.
	ErrQueueClosed = errors.New("queue closed")
)
