package frame

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"

	"github.com/robotalks/telelink/pkg/checksum"
)

// Command frame layout.
const (
	CommandHeader byte = 0xff
	CommandSize        = 12
)

// Command mode codes.
const (
	CommandModeNone       byte = 0
	CommandModeAim        byte = 1
	CommandModeAimAndFire byte = 2
)

const (
	commandModeOffset  = 1
	commandYawOffset   = 2
	commandPitchOffset = 6
	commandChecksum    = checksum.Width16
	commandPayloadSize = CommandSize - 2
)

// Command is a gimbal control command.
type Command struct {
	// Engage hands the gimbal to the host.
	Engage bool
	// Fire requests shooting; ignored unless Engage is set.
	Fire  bool
	Yaw   float32
	Pitch float32
}

// ModeCode maps the command to its wire mode.
func (c Command) ModeCode() byte {
	switch {
	case !c.Engage:
		return CommandModeNone
	case c.Fire:
		return CommandModeAimAndFire
	default:
		return CommandModeAim
	}
}

// String implements fmt.Stringer.
func (c Command) String() string {
	return fmt.Sprintf("mode=%d yaw=%.4f pitch=%.4f", c.ModeCode(), c.Yaw, c.Pitch)
}

// EncodeCommand builds the command frame.
func EncodeCommand(c Command) []byte {
	b := make([]byte, commandPayloadSize, CommandSize)
	b[0] = CommandHeader
	b[commandModeOffset] = c.ModeCode()
	binary.LittleEndian.PutUint32(b[commandYawOffset:], math.Float32bits(c.Yaw))
	binary.LittleEndian.PutUint32(b[commandPitchOffset:], math.Float32bits(c.Pitch))
	return commandChecksum.Append(b)
}

// DecodeCommand parses a command frame, as the board would.
func DecodeCommand(frame []byte) (c Command, err error) {
	if len(frame) != CommandSize {
		return c, ErrFrameSize
	}
	if frame[0] != CommandHeader {
		return c, ErrNoHeader
	}
	if !commandChecksum.Verify(frame) {
		return c, ErrChecksum
	}
	switch frame[commandModeOffset] {
	case CommandModeAimAndFire:
		c.Fire = true
		fallthrough
	case CommandModeAim:
		c.Engage = true
	}
	c.Yaw = math.Float32frombits(binary.LittleEndian.Uint32(frame[commandYawOffset:]))
	c.Pitch = math.Float32frombits(binary.LittleEndian.Uint32(frame[commandPitchOffset:]))
	return
}

// ParseCommand parses the fields ENGAGE FIRE YAW PITCH.
func ParseCommand(fields []string) (cmd Command, err error) {
	if len(fields) != 4 {
		return cmd, fmt.Errorf("expect ENGAGE FIRE YAW PITCH")
	}
	if cmd.Engage, err = strconv.ParseBool(fields[0]); err != nil {
		return cmd, fmt.Errorf("engage: %w", err)
	}
	if cmd.Fire, err = strconv.ParseBool(fields[1]); err != nil {
		return cmd, fmt.Errorf("fire: %w", err)
	}
	yaw, err := strconv.ParseFloat(fields[2], 32)
	if err != nil {
		return cmd, fmt.Errorf("yaw: %w", err)
	}
	pitch, err := strconv.ParseFloat(fields[3], 32)
	if err != nil {
		return cmd, fmt.Errorf("pitch: %w", err)
	}
	cmd.Yaw, cmd.Pitch = float32(yaw), float32(pitch)
	return cmd, nil
}
