package framework

import (
	"context"
	"time"
)

// Named is an abstraction for things with a name.
type Named interface {
	Name() string
}

// Runnable defines a generic interface for background runners.
type Runnable interface {
	Run(context.Context) error
}

// RunFunc is the func form of Runnable.
type RunFunc func(context.Context) error

// Run implements Runnable.
func (f RunFunc) Run(ctx context.Context) error {
	return f(ctx)
}

// Controller is invoked on every tick of a Loop.
type Controller interface {
	Control(ControlContext) error
}

// ControlContext describes the current tick.
type ControlContext interface {
	// Context is done when the loop stops or the tick overruns the
	// loop interval.
	Context() context.Context
	// Time is when the tick fired.
	Time() time.Time
	// Iteration counts ticks, starting from 1.
	Iteration() uint64
}

// ControlFunc defines the func form of Controller.
type ControlFunc func(ControlContext) error

// Control implements Controller.
func (f ControlFunc) Control(ctx ControlContext) error {
	return f(ctx)
}
