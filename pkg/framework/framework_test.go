package framework

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAggregatedError(t *testing.T) {
	var errs AggregatedError
	require.NoError(t, errs.Add(nil, nil).Aggregate())
	errs.Add(errors.New("a"), nil, errors.New("b"))
	err := errs.Aggregate()
	require.Error(t, err)
	require.Equal(t, "Multiple errors:\na\nb", err.Error())
	require.True(t, errors.Is(err, errs.Errors[1]))
}

func TestRunnerStopsOthers(t *testing.T) {
	boom := errors.New("boom")
	r := NewRunner()
	r.Go(
		NamedRun("fail", RunFunc(func(context.Context) error { return boom })),
		RunFunc(func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}),
	)
	err := r.Wait()
	require.ErrorIs(t, err, boom)
	require.Equal(t, "fail: boom", err.Error())
}

func TestRunnerGrace(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	r := NewRunner()
	r.Grace = 10 * time.Millisecond
	r.Go(NamedRun("stuck", RunFunc(func(context.Context) error {
		<-release
		return nil
	})))
	r.Stop()
	require.Equal(t, ErrForcedExit, r.Wait())
}

func TestRunnerStop(t *testing.T) {
	r := NewRunner()
	r.Go(RunFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}))
	r.Stop()
	require.NoError(t, r.Wait())
}

type closer struct {
	closed int32
	ch     chan struct{}
}

func (c *closer) Close() error {
	if atomic.AddInt32(&c.closed, 1) == 1 {
		close(c.ch)
	}
	return nil
}

func TestRunWithContextCloser(t *testing.T) {
	c := &closer{ch: make(chan struct{})}
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()
	err := RunWithContextCloser(ctx, c, func() error {
		<-c.ch
		return errors.New("closed")
	})
	require.Equal(t, context.Canceled, err)
	require.Equal(t, int32(1), atomic.LoadInt32(&c.closed))

	c = &closer{ch: make(chan struct{})}
	err = RunWithContextCloser(context.Background(), c, func() error { return nil })
	require.NoError(t, err)
	require.Equal(t, int32(1), atomic.LoadInt32(&c.closed))
}

func TestLoop(t *testing.T) {
	var count int32
	var started int32
	ctx, cancel := context.WithCancel(context.Background())
	l := NewLoop()
	l.Interval = time.Millisecond
	l.AddRunnable(RunFunc(func(ctx context.Context) error {
		atomic.StoreInt32(&started, 1)
		<-ctx.Done()
		return ctx.Err()
	}))
	l.AddController(ControlFunc(func(cc ControlContext) error {
		require.Equal(t, uint64(atomic.AddInt32(&count, 1)), cc.Iteration())
		require.False(t, cc.Time().IsZero())
		if cc.Iteration() == 3 {
			cancel()
		}
		return nil
	}))
	require.Equal(t, context.Canceled, l.Run(ctx))
	require.GreaterOrEqual(t, atomic.LoadInt32(&count), int32(3))
	require.Equal(t, int32(1), atomic.LoadInt32(&started))
}

func TestLoopControllerFailures(t *testing.T) {
	boom := errors.New("boom")
	var calls int
	l := NewLoop()
	l.AddController(
		ControlFunc(func(cc ControlContext) error {
			calls++
			if calls <= 3 {
				return boom
			}
			return nil
		}),
		ControlFunc(func(cc ControlContext) error {
			_, ok := cc.Context().Deadline()
			require.True(t, ok)
			if calls >= 3 {
				return boom
			}
			return nil
		}),
	)
	for i := 0; i < 5; i++ {
		l.tick(context.Background(), time.Now(), time.Second)
	}
	require.Equal(t, []uint64{0, 3}, l.Failures())
}
