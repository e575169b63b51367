package link

import (
	"context"
	"sync"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/telelink/pkg/frame"
	"github.com/robotalks/telelink/pkg/imu"
	"github.com/robotalks/telelink/pkg/transport"
	"github.com/robotalks/telelink/pkg/transport/serial"
)

// Driver is an open link to a board.
type Driver struct {
	conf   Config
	layout *frame.Layout
	name   string

	portLock sync.Mutex
	port     transport.Transport
	decoder  *frame.Decoder

	stateLock sync.RWMutex
	state     State

	queue  *imu.Queue
	imuSem chan struct{}
	interp *imu.Interpolator

	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	closeOnce  sync.Once
	closeErr   error
	lastLog    time.Time
	txDisabled sync.Once
}

// Open opens the transport and starts the reader.
func Open(conf *Config) (*Driver, error) {
	layout, err := frame.LayoutByName(conf.Layout)
	if err != nil {
		return nil, err
	}
	port := conf.Transport
	if port != nil {
		if err = transport.EnsureOpen(port); err != nil {
			return nil, err
		}
	} else {
		if conf.Port == "" {
			return nil, ErrNoPort
		}
		if port, err = serial.Open(conf.SerialConfig()); err != nil {
			return nil, err
		}
	}
	d := newDriver(conf, layout, port)
	d.start()
	return d, nil
}

func newDriver(conf *Config, layout *frame.Layout, port transport.Transport) *Driver {
	d := &Driver{
		conf:   conf.withLimits(),
		layout: layout,
		name:   port.Name(),
		port:   port,
		queue:  imu.NewQueue(conf.QueueCapacity),
		imuSem: make(chan struct{}, 1),
	}
	d.decoder = frame.NewDecoder(lockedReader{d}, layout)
	d.interp = imu.NewInterpolator(d.queue)
	d.state.Port, d.state.Layout, d.state.Connected = d.name, layout.Name, true
	d.ctx, d.cancel = context.WithCancel(context.Background())
	return d
}

func (d *Driver) start() {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.readLoop(d.ctx)
	}()
	glog.Infof("link[%s]: opened %s", d.name, d.layout)
}

// Name implements framework.Named.
func (d *Driver) Name() string {
	return "link[" + d.name + "]"
}

// Layout returns the frame layout of the board variant.
func (d *Driver) Layout() *frame.Layout {
	return d.layout
}

// ImuAt returns the orientation at t interpolated between the two samples
// bracketing it. It blocks until a sample newer than t arrives. Queries
// must use non-decreasing times. It fails only when ctx is done or the
// driver is closed.
func (d *Driver) ImuAt(ctx context.Context, t time.Time) (imu.Quaternion, error) {
	select {
	case d.imuSem <- struct{}{}:
	case <-ctx.Done():
		return imu.Quaternion{}, ctx.Err()
	}
	defer func() { <-d.imuSem }()
	return d.interp.At(ctx, t)
}

// AwaitFirstSample blocks until the first orientation sample arrives and
// seeds the interpolator with it.
func (d *Driver) AwaitFirstSample(ctx context.Context) (imu.Sample, error) {
	select {
	case d.imuSem <- struct{}{}:
	case <-ctx.Done():
		return imu.Sample{}, ctx.Err()
	}
	defer func() { <-d.imuSem }()
	if _, behind := d.interp.Bracket(); !behind.IsZero() {
		return behind, nil
	}
	s, err := d.queue.Pop(ctx)
	if err != nil {
		return s, err
	}
	d.interp.Prime(s)
	return s, nil
}

// Mode returns the last mode reported by the board.
func (d *Driver) Mode() Mode {
	d.stateLock.RLock()
	defer d.stateLock.RUnlock()
	return d.state.Mode
}

// BulletSpeed returns the last bullet speed reported by the board.
func (d *Driver) BulletSpeed() float32 {
	d.stateLock.RLock()
	defer d.stateLock.RUnlock()
	return d.state.BulletSpeed
}

// State returns a snapshot of the link state.
func (d *Driver) State() State {
	d.stateLock.RLock()
	s := d.state
	d.stateLock.RUnlock()
	s.Queued = d.queue.Len()
	return s
}

// Close stops the reader and closes the transport. Pending ImuAt calls
// return imu.ErrQueueClosed.
func (d *Driver) Close() error {
	d.closeOnce.Do(func() {
		d.cancel()
		d.queue.Close()
		d.wg.Wait()
		d.portLock.Lock()
		d.closeErr = d.port.Close()
		d.portLock.Unlock()
		d.updateState(func(s *State) { s.Connected = false })
		glog.Infof("link[%s]: closed", d.name)
	})
	return d.closeErr
}

// Run implements framework.Runnable. It closes the driver when ctx is done.
func (d *Driver) Run(ctx context.Context) error {
	select {
	case <-ctx.Done():
	case <-d.ctx.Done():
	}
	d.Close()
	return ctx.Err()
}

func (d *Driver) updateState(fn func(*State)) {
	d.stateLock.Lock()
	fn(&d.state)
	d.stateLock.Unlock()
}

// lockedReader serializes reads with writes and reconnects.
type lockedReader struct {
	d *Driver
}

func (r lockedReader) Read(p []byte) (int, error) {
	r.d.portLock.Lock()
	defer r.d.portLock.Unlock()
	return r.d.port.Read(p)
}
