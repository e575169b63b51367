package link

import (
	"fmt"
	"strings"
)

// Mode is the control mode reported by the board.
type Mode int

// Modes by wire code.
const (
	ModeIdle Mode = iota
	ModeAutoAim
	ModeSmallBuff
	ModeBigBuff
	ModeOutpost
)

var modeNames = [...]string{"idle", "auto_aim", "small_buff", "big_buff", "outpost"}

// ModeFromCode maps a wire code to a Mode. Unknown codes map to ModeIdle
// and ok is false.
func ModeFromCode(code byte) (m Mode, ok bool) {
	if int(code) < len(modeNames) {
		return Mode(code), true
	}
	return ModeIdle, false
}

// ParseMode parses a mode name.
func ParseMode(name string) (Mode, error) {
	for n, s := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(n), nil
		}
	}
	return ModeIdle, fmt.Errorf("unknown mode %q", name)
}

// Code returns the wire code.
func (m Mode) Code() byte {
	return byte(m)
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) (err error) {
	*m, err = ParseMode(string(text))
	return
}
