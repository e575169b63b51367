package sim

import (
	"flag"

	"github.com/robotalks/telelink/pkg/frame"
	"github.com/robotalks/telelink/pkg/link"
	"github.com/robotalks/telelink/pkg/transport"
)

// Config provides the options of the simulated board.
type Config struct {
	Enabled  bool
	Rate     int
	SlewRate float64
	Mode     string
}

var defaultConfig = Config{
	Rate:     DefaultRate,
	SlewRate: DefaultSlewRate,
	Mode:     link.ModeAutoAim.String(),
}

// SetupFlags sets up command line flags.
func SetupFlags() {
	flag.BoolVar(&defaultConfig.Enabled, "sim", defaultConfig.Enabled, "Use a simulated board instead of a serial port.")
	flag.IntVar(&defaultConfig.Rate, "sim-rate", defaultConfig.Rate, "Simulated frame rate in Hz.")
	flag.Float64Var(&defaultConfig.SlewRate, "sim-slew", defaultConfig.SlewRate, "Simulated gimbal speed in rad/s.")
	flag.StringVar(&defaultConfig.Mode, "sim-mode", defaultConfig.Mode, "Simulated board mode.")
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Attach creates a Board on an in-memory transport and points the link
// configuration at it.
func (c *Config) Attach(conf *link.Config) (*Board, error) {
	layout, err := frame.LayoutByName(conf.Layout)
	if err != nil {
		return nil, err
	}
	mode, err := link.ParseMode(c.Mode)
	if err != nil {
		return nil, err
	}
	p := transport.NewPipe("sim")
	p.ReadTimeout = conf.ReadTimeout
	b := NewBoard(p, layout)
	b.Rate, b.Mode = c.Rate, mode
	b.SetSlewRate(c.SlewRate)
	conf.Transport = p
	return b, nil
}
