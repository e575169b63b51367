package link

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/telelink/pkg/config"
	"github.com/robotalks/telelink/pkg/frame"
	"github.com/robotalks/telelink/pkg/imu"
	"github.com/robotalks/telelink/pkg/transport"
	"github.com/robotalks/telelink/pkg/transport/serial"
)

// Config provides the options to open a Driver.
type Config struct {
	// Port is the serial device, or "auto" to pick the first USB port.
	Port string
	// PortKey is the configuration file key holding the port when Port is
	// empty, e.g. com_port, serial_cboard or hseven_serial.
	PortKey string
	// Layout names the board variant, see frame.LayoutByName.
	Layout  string
	Backend string
	Baud    int

	ReadTimeout       time.Duration
	QueueCapacity     int
	MaxErrors         int
	ReconnectAttempts int
	ReconnectBackoff  time.Duration

	// Transport, when set, is used instead of opening Port. Open reopens
	// it if a previous Driver closed it.
	Transport transport.Transport
}

// Defaults for limits which must be positive.
const (
	DefaultMaxErrors         = 5000
	DefaultReconnectAttempts = 10
)

var defaultConfig = Config{
	PortKey:           "com_port",
	Layout:            frame.FullTelemetry.Name,
	Backend:           serial.BackendBugst,
	Baud:              115200,
	ReadTimeout:       20 * time.Millisecond,
	QueueCapacity:     imu.DefaultQueueCapacity,
	MaxErrors:         DefaultMaxErrors,
	ReconnectAttempts: DefaultReconnectAttempts,
	ReconnectBackoff:  time.Second,
}

func init() {
	if val := os.Getenv("TELELINK_PORT"); val != "" {
		defaultConfig.Port = val
	}
	if val := os.Getenv("TELELINK_LAYOUT"); val != "" {
		defaultConfig.Layout = val
	}
}

// SetupFlags sets up command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Port, "port", defaultConfig.Port, "Serial port, \"auto\" for the first USB port.")
	flag.StringVar(&defaultConfig.PortKey, "port-key", defaultConfig.PortKey, "Config file key of the serial port.")
	flag.StringVar(&defaultConfig.Layout, "layout", defaultConfig.Layout, "Board variant: full (hseven) or orientation (cboard).")
	flag.StringVar(&defaultConfig.Backend, "serial-backend", defaultConfig.Backend, "Serial backend: bugst or jacobsa.")
	flag.IntVar(&defaultConfig.Baud, "baud", defaultConfig.Baud, "Serial baud rate.")
	flag.DurationVar(&defaultConfig.ReadTimeout, "read-timeout", defaultConfig.ReadTimeout, "Serial read timeout.")
	flag.IntVar(&defaultConfig.QueueCapacity, "queue", defaultConfig.QueueCapacity, "Orientation samples buffered.")
	flag.IntVar(&defaultConfig.MaxErrors, "max-errors", defaultConfig.MaxErrors, "Consecutive read errors before reconnecting.")
	flag.IntVar(&defaultConfig.ReconnectAttempts, "reconnect-attempts", defaultConfig.ReconnectAttempts, "Reopen attempts per reconnect.")
	flag.DurationVar(&defaultConfig.ReconnectBackoff, "reconnect-backoff", defaultConfig.ReconnectBackoff, "Wait between reopen attempts.")
}

// Default gets the default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// ApplyFile reads link settings from a configuration document. The port is
// read from PortKey only if not already set. Keys under "link" override the
// remaining settings.
func (c *Config) ApplyFile(doc *config.Document) error {
	if c.Port == "" {
		if port, ok := doc.String(c.PortKey); ok {
			c.Port = port
		}
	}
	sub := doc.Sub("link")
	if val, ok := sub.String("layout"); ok {
		c.Layout = val
	}
	if val, ok := sub.String("backend"); ok {
		c.Backend = val
	}
	var err error
	ints := []struct {
		key string
		val *int
	}{
		{"baud", &c.Baud},
		{"queue", &c.QueueCapacity},
		{"max_errors", &c.MaxErrors},
		{"reconnect_attempts", &c.ReconnectAttempts},
	}
	for _, item := range ints {
		if n, ok, e := sub.Int(item.key); e != nil {
			err = e
		} else if ok {
			*item.val = n
		}
	}
	durations := []struct {
		key string
		val *time.Duration
	}{
		{"read_timeout", &c.ReadTimeout},
		{"reconnect_backoff", &c.ReconnectBackoff},
	}
	for _, item := range durations {
		if d, ok, e := sub.Duration(item.key); e != nil {
			err = e
		} else if ok {
			*item.val = d
		}
	}
	if err != nil {
		return fmt.Errorf("link config: %w", err)
	}
	return nil
}

// SerialConfig returns the serial port settings.
func (c *Config) SerialConfig() serial.Config {
	return serial.Config{
		Name:        c.Port,
		Baud:        c.Baud,
		ReadTimeout: c.ReadTimeout,
		Backend:     c.Backend,
	}
}

// Open opens a Driver using the config.
func (c *Config) Open() (*Driver, error) {
	return Open(c)
}

// MustOpen opens a Driver and fails on error.
func (c *Config) MustOpen() *Driver {
	d, err := Open(c)
	if err != nil {
		glog.Fatalf("open link %q failed: %v", c.Port, err)
	}
	return d
}

// withLimits replaces non-positive MaxErrors and ReconnectAttempts with the
// defaults. A zero MaxErrors would reconnect before every read.
func (c Config) withLimits() Config {
	if c.MaxErrors <= 0 {
		glog.Warningf("link: max errors %d not positive, using %d", c.MaxErrors, DefaultMaxErrors)
		c.MaxErrors = DefaultMaxErrors
	}
	if c.ReconnectAttempts <= 0 {
		glog.Warningf("link: reconnect attempts %d not positive, using %d", c.ReconnectAttempts, DefaultReconnectAttempts)
		c.ReconnectAttempts = DefaultReconnectAttempts
	}
	return c
}
