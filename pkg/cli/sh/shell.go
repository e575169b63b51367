// Package sh provides the ishell based interactive shell of a link.
package sh

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"time"

	"github.com/abiosoft/ishell"
	"github.com/golang/glog"

	"github.com/robotalks/telelink/pkg/frame"
	"github.com/robotalks/telelink/pkg/imu"
	"github.com/robotalks/telelink/pkg/link"
	"github.com/robotalks/telelink/pkg/transport/serial"
)

// Device is the link surface the shell drives.
type Device interface {
	Name() string
	State() link.State
	ImuAt(ctx context.Context, t time.Time) (imu.Quaternion, error)
	TrySend(cmd frame.Command) error
	Close() error
}

// OpenFunc opens a Device.
type OpenFunc func(conf *link.Config) (Device, error)

// Shell provides ishell backed interactive shell.
type Shell struct {
	Interactive bool
	OutputJSON  bool
	AutoOpen    bool

	Shell  *ishell.Shell
	Config *link.Config
	Opener OpenFunc
	Link   Device
}

const (
	shellKey     = "$shell"
	closedPrompt = "[none] > "
)

var (
	// flags

	evalOnly   bool
	outputJSON bool

	// commands
	commands = []*ishell.Cmd{
		&PortsCmd,
		&OpenCmd,
		&CloseCmd,
	}
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print output in JSON.")
}

// AddCmds is used by other commands providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// OpenLink opens a serial link driver.
func OpenLink(conf *link.Config) (Device, error) {
	return link.Open(conf)
}

// New creates a new shell.
func New(conf *link.Config) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		OutputJSON:  outputJSON,

		Shell:  ishell.New(),
		Config: conf,
		Opener: OpenLink,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(closedPrompt)
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// MustBeOpen wraps command func requires an open link.
func MustBeOpen(fn func(c *ishell.Context)) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		if ShellFrom(c).Link == nil {
			c.Err(fmt.Errorf("link not open"))
			return
		}
		fn(c)
	}
}

// Format renders v as JSON when OutputJSON is set, or with fmt otherwise.
func (s *Shell) Format(v interface{}) (string, error) {
	if s.OutputJSON {
		out, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
	return fmt.Sprint(v), nil
}

// Print writes v to the shell in the selected format.
func Print(c *ishell.Context, v interface{}) {
	out, err := ShellFrom(c).Format(v)
	if err != nil {
		c.Err(err)
		return
	}
	c.Println(out)
}

// WithAutoOpen sets AutoOpen.
func (s *Shell) WithAutoOpen(en bool) *Shell {
	s.AutoOpen = en
	return s
}

// Open opens the link on port, or the configured port when empty. The
// current link is closed first as serial ports are exclusive, so it is not
// restored if opening fails.
func (s *Shell) Open(port string) error {
	conf := *s.Config
	if port != "" {
		conf.Port = port
	}
	opener := s.Opener
	if opener == nil {
		opener = OpenLink
	}
	s.Close()
	dev, err := opener(&conf)
	if err != nil {
		return err
	}
	s.Link = dev
	if s.Shell != nil {
		s.Shell.SetPrompt(fmt.Sprintf("%s > ", dev.Name()))
	}
	return nil
}

// Close closes the current link.
func (s *Shell) Close() {
	if s.Link != nil {
		if err := s.Link.Close(); err != nil {
			glog.Warningf("close %s: %v", s.Link.Name(), err)
		}
		s.Link = nil
		if s.Shell != nil {
			s.Shell.SetPrompt(closedPrompt)
		}
	}
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	defer s.Close()
	if s.AutoOpen && (s.Config.Port != "" || s.Config.Transport != nil) {
		if s.Interactive {
			s.Shell.Printf("Opening %s ...\n", s.Config.Port)
		}
		if err := s.Open(""); err != nil {
			glog.Fatalf("open %q failed: %v", s.Config.Port, err)
		}
	}

	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			glog.Fatalln(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	glog.Fatalln("command expected")
}

// PortList returns the serial ports, never nil.
func PortList() ([]serial.PortInfo, error) {
	ports, err := serial.ListPorts()
	if err != nil {
		return nil, err
	}
	if ports == nil {
		ports = []serial.PortInfo{}
	}
	return ports, nil
}

var (
	// PortsCmd lists serial ports.
	PortsCmd = ishell.Cmd{
		Name:    "ports",
		Aliases: []string{"list", "l"},
		Help:    "list serial ports",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			ports, err := PortList()
			if err != nil {
				c.Err(err)
				return
			}
			if s.OutputJSON {
				Print(c, ports)
				return
			}
			if len(ports) == 0 {
				c.Println("No serial ports found")
				return
			}
			for _, p := range ports {
				c.Println(p.String())
			}
		},
	}

	// OpenCmd opens a link.
	OpenCmd = ishell.Cmd{
		Name:    "open",
		Aliases: []string{"o"},
		Help:    "[PORT]",
		Func: func(c *ishell.Context) {
			var port string
			if len(c.Args) > 0 {
				port = c.Args[0]
			}
			if err := ShellFrom(c).Open(port); err != nil {
				c.Err(err)
			}
		},
	}

	// CloseCmd closes the current link.
	CloseCmd = ishell.Cmd{
		Name:    "close",
		Aliases: []string{"c"},
		Help:    "",
		Func: func(c *ishell.Context) {
			ShellFrom(c).Close()
		},
	}
)

// Main is a helper to provide a single call in main.
func Main(conf *link.Config) {
	New(conf).WithAutoOpen(true).Run(flag.Args()...)
}
