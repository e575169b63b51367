package link

import (
	"github.com/robotalks/telelink/pkg/imu"
)

// Counters are cumulative diagnostics of a Driver.
type Counters struct {
	Frames             uint64 `json:"frames"`
	ReadErrors         uint64 `json:"read_errors"`
	ChecksumErrors     uint64 `json:"checksum_errors"`
	InvalidOrientation uint64 `json:"invalid_orientation"`
	UnknownModes       uint64 `json:"unknown_modes"`
	Overflows          uint64 `json:"overflows"`
	Reconnects         uint64 `json:"reconnects"`
	ReconnectFailures  uint64 `json:"reconnect_failures"`
	Commands           uint64 `json:"commands"`
	WriteErrors        uint64 `json:"write_errors"`
}

// State is a snapshot of the link.
type State struct {
	Port        string     `json:"port"`
	Layout      string     `json:"layout"`
	Mode        Mode       `json:"mode"`
	BulletSpeed float32    `json:"bullet_speed"`
	Errors      int        `json:"errors"`
	Connected   bool       `json:"connected"`
	LastSample  imu.Sample `json:"-"`
	Queued      int        `json:"queued"`
	Counters
}
