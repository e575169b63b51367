package mqtt

import (
	"flag"
	"os"
	"time"

	"github.com/denisbrodbeck/machineid"

	"github.com/robotalks/telelink/pkg/config"
)

// Config provides the options of the telemetry bus.
type Config struct {
	// URL of the broker, e.g. mqtt://host:port/topic-prefix/. Empty
	// disables the bus.
	URL string
	// Device identifies this host in topics.
	Device string
	// Interval between status publications.
	Interval time.Duration
}

var defaultConfig = Config{
	Interval: 100 * time.Millisecond,
}

func init() {
	if val := os.Getenv("TELELINK_MQTT_URL"); val != "" {
		defaultConfig.URL = val
	}
	defaultConfig.Device = MachineID()
}

// MachineID returns a stable id of this host, derived from the OS machine
// id, or the host name if unavailable.
func MachineID() string {
	if id, err := machineid.ProtectedID("telelink"); err == nil {
		return id[:12]
	}
	if name, err := os.Hostname(); err == nil {
		return name
	}
	return "telelink"
}

// SetupFlags sets up command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.URL, "mqtt", defaultConfig.URL, "MQTT broker URL, empty to disable.")
	flag.StringVar(&defaultConfig.Device, "device", defaultConfig.Device, "Device ID used in MQTT topics.")
	flag.DurationVar(&defaultConfig.Interval, "publish-interval", defaultConfig.Interval, "Status publish interval.")
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

// ApplyFile reads keys under "mqtt" of a configuration document. The URL
// is read only if not already set.
func (c *Config) ApplyFile(doc *config.Document) error {
	sub := doc.Sub("mqtt")
	if val, ok := sub.String("url"); ok && c.URL == "" {
		c.URL = val
	}
	if val, ok := sub.String("device"); ok {
		c.Device = val
	}
	if d, ok, err := sub.Duration("interval"); err != nil {
		return err
	} else if ok {
		c.Interval = d
	}
	return nil
}

// Enabled reports whether a broker is configured.
func (c *Config) Enabled() bool {
	return c.URL != ""
}

// NewQueue creates the Queue for URL. It connects in Run.
func (c *Config) NewQueue() (*Queue, error) {
	return NewQueueFromURL(c.URL)
}
