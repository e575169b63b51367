package transport

import (
	"bytes"
	"sync"
	"time"
)

// Pipe is an in-memory Transport. Bytes fed with Feed are returned by Read
// and bytes written are collected for Written. It is used by simulators
// and tests in place of a device.
type Pipe struct {
	// ReadTimeout bounds how long Read waits for data.
	ReadTimeout time.Duration
	// OpenErr, when set, fails Open.
	OpenErr func(attempt int) error

	name    string
	lock    sync.Mutex
	cond    *sync.Cond
	open    bool
	opens   int
	rx      bytes.Buffer
	tx      bytes.Buffer
	readErr error
}

// NewPipe creates an open Pipe.
func NewPipe(name string) *Pipe {
	p := &Pipe{name: name, ReadTimeout: 20 * time.Millisecond, open: true}
	p.cond = sync.NewCond(&p.lock)
	return p
}

// Name implements Transport.
func (p *Pipe) Name() string {
	return p.name
}

// Open implements Transport.
func (p *Pipe) Open() error {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.opens++
	if fn := p.OpenErr; fn != nil {
		if err := fn(p.opens); err != nil {
			return err
		}
	}
	p.open, p.readErr = true, nil
	p.cond.Broadcast()
	return nil
}

// IsOpen implements OpenChecker.
func (p *Pipe) IsOpen() bool {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.open
}

// Opens returns how many times Open was called.
func (p *Pipe) Opens() int {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.opens
}

// Close implements Transport.
func (p *Pipe) Close() error {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.open = false
	p.cond.Broadcast()
	return nil
}

// Feed appends bytes to be read.
func (p *Pipe) Feed(data []byte) {
	p.lock.Lock()
	p.rx.Write(data)
	p.lock.Unlock()
	p.cond.Broadcast()
}

// Fail makes subsequent reads return err until the next Open.
func (p *Pipe) Fail(err error) {
	p.lock.Lock()
	p.readErr = err
	p.lock.Unlock()
	p.cond.Broadcast()
}

// Written returns and clears the bytes written so far.
func (p *Pipe) Written() []byte {
	p.lock.Lock()
	defer p.lock.Unlock()
	out := append([]byte(nil), p.tx.Bytes()...)
	p.tx.Reset()
	return out
}

// Read implements Transport.
func (p *Pipe) Read(b []byte) (int, error) {
	deadline := time.Now().Add(p.ReadTimeout)
	timer := time.AfterFunc(p.ReadTimeout, func() {
		p.lock.Lock()
		p.cond.Broadcast()
		p.lock.Unlock()
	})
	defer timer.Stop()

	p.lock.Lock()
	defer p.lock.Unlock()
	for {
		switch {
		case !p.open:
			return 0, ErrClosed
		case p.readErr != nil:
			return 0, p.readErr
		case p.rx.Len() > 0:
			return p.rx.Read(b)
		case !time.Now().Before(deadline):
			return 0, nil
		}
		p.cond.Wait()
	}
}

// Write implements Transport.
func (p *Pipe) Write(b []byte) (int, error) {
	p.lock.Lock()
	defer p.lock.Unlock()
	if !p.open {
		return 0, ErrClosed
	}
	return p.tx.Write(b)
}
