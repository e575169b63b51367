// Package serial provides serial port transports.
package serial

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/telelink/pkg/transport"
)

// Backend names.
const (
	BackendBugst   = "bugst"
	BackendJacobsa = "jacobsa"
)

// AutoDetect as a port name selects the first USB serial port.
const AutoDetect = "auto"

// Config describes how a serial port is opened.
type Config struct {
	Name        string
	Baud        int
	ReadTimeout time.Duration
	Backend     string
}

// DefaultConfig returns the configuration used by the board firmware.
func DefaultConfig(name string) Config {
	return Config{
		Name:        name,
		Baud:        115200,
		ReadTimeout: 20 * time.Millisecond,
		Backend:     BackendBugst,
	}
}

// New creates an unopened Transport for the configured backend.
// A port named AutoDetect is resolved here.
func New(conf Config) (transport.Transport, error) {
	if strings.EqualFold(conf.Name, AutoDetect) {
		name, err := Detect()
		if err != nil {
			return nil, err
		}
		glog.Infof("serial: detected port %s", name)
		conf.Name = name
	}
	switch strings.ToLower(conf.Backend) {
	case "", BackendBugst:
		return &Port{Config: conf}, nil
	case BackendJacobsa:
		return &JacobsaPort{Config: conf}, nil
	default:
		return nil, fmt.Errorf("unknown serial backend %q", conf.Backend)
	}
}

// Open creates and opens a Transport.
func Open(conf Config) (transport.Transport, error) {
	t, err := New(conf)
	if err != nil {
		return nil, err
	}
	if err = t.Open(); err != nil {
		return nil, err
	}
	return t, nil
}
