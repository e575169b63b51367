// Package link drives a telemetry board over a serial transport.
//
// A Driver owns one reader goroutine that synchronizes to the board's
// frames, keeps the latest mode and bullet speed, and queues orientation
// samples for ImuAt. Transport failures are absorbed: a run of read errors
// triggers a bounded reconnect, and the reader keeps going whether or not
// it succeeds. Callers of ImuAt and Send never see transport errors.
package link
