package framework

import (
	"context"
	"time"

	"github.com/golang/glog"
)

// DefaultLoopInterval is used when Interval is not set.
const DefaultLoopInterval = 100 * time.Millisecond

// Loop ticks controllers at a fixed interval, along with a set of Runnables
// sharing its lifetime. A failing controller is logged once when it starts
// failing and once when it recovers.
type Loop struct {
	Name     string
	Interval time.Duration

	controllers []*loopController
	runners     []Runnable
	iteration   uint64
}

// LoopAdder provides specific logic to add components to loop.
type LoopAdder interface {
	AddToLoop(*Loop)
}

type loopController struct {
	Controller
	failures uint64
}

type tick struct {
	ctx  context.Context
	time time.Time
	seq  uint64
}

// NewLoop creates a Loop.
func NewLoop() *Loop {
	return &Loop{Name: "loop", Interval: DefaultLoopInterval}
}

// Add adds LoopAdders.
func (l *Loop) Add(adders ...LoopAdder) *Loop {
	for _, adder := range adders {
		adder.AddToLoop(l)
	}
	return l
}

// AddController registers controllers, run in the order added. A
// controller which is also a Runnable is started with the loop.
func (l *Loop) AddController(ctls ...Controller) *Loop {
	for _, ctl := range ctls {
		l.controllers = append(l.controllers, &loopController{Controller: ctl})
		if runner, ok := ctl.(Runnable); ok {
			l.runners = append(l.runners, runner)
		}
	}
	return l
}

// AddRunnable adds Runnable implementions.
func (l *Loop) AddRunnable(runnables ...Runnable) *Loop {
	l.runners = append(l.runners, runnables...)
	return l
}

// Run implements Runnable.
func (l *Loop) Run(ctx context.Context) error {
	runner := NewRunnerWith(ctx)
	runner.Go(l.runners...)
	defer runner.Wait()

	interval := l.Interval
	if interval <= 0 {
		interval = DefaultLoopInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			l.tick(ctx, now, interval)
		}
	}
}

// Failures returns the consecutive failures of each controller, in the
// order added.
func (l *Loop) Failures() []uint64 {
	out := make([]uint64, len(l.controllers))
	for n, ctl := range l.controllers {
		out[n] = ctl.failures
	}
	return out
}

func (l *Loop) tick(ctx context.Context, now time.Time, interval time.Duration) {
	l.iteration++
	tickCtx, cancel := context.WithDeadline(ctx, now.Add(interval))
	defer cancel()
	t := &tick{ctx: tickCtx, time: now, seq: l.iteration}
	for n, ctl := range l.controllers {
		err := ctl.Control(t)
		switch {
		case err == nil && ctl.failures > 0:
			glog.Infof("%s: controller %d recovered after %d failures", l.Name, n, ctl.failures)
			ctl.failures = 0
		case err != nil:
			if ctl.failures == 0 {
				glog.Warningf("%s: controller %d: %v", l.Name, n, err)
			} else {
				glog.V(2).Infof("%s: controller %d: %v", l.Name, n, err)
			}
			ctl.failures++
		}
	}
}

func (t *tick) Context() context.Context {
	return t.ctx
}

func (t *tick) Time() time.Time {
	return t.time
}

func (t *tick) Iteration() uint64 {
	return t.seq
}
