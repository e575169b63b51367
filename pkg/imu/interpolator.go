package imu

import (
	"context"
	"time"
)

// SampleSource supplies samples in timestamp order, blocking when none is
// available. *Queue implements it.
type SampleSource interface {
	Pop(context.Context) (Sample, error)
}

// Interpolator answers "what was the orientation at time t" by keeping a
// bracket of two samples around the last queried time and interpolating
// between them. It is not safe for concurrent use; queries must use
// non-decreasing times.
type Interpolator struct {
	source SampleSource
	ahead  Sample
	behind Sample
}

// NewInterpolator creates an Interpolator consuming from source.
func NewInterpolator(source SampleSource) *Interpolator {
	return &Interpolator{source: source}
}

// Prime seeds the bracket with a sample already taken from the source.
func (it *Interpolator) Prime(s Sample) {
	if !it.behind.IsZero() && s.Time.Before(it.behind.Time) {
		return
	}
	it.ahead, it.behind = it.behind, s
}

// Bracket returns the current (ahead, behind) pair.
func (it *Interpolator) Bracket() (ahead, behind Sample) {
	return it.ahead, it.behind
}

// At returns the orientation at t, waiting on the source until a sample
// newer than t arrives. Only context or source errors are returned.
func (it *Interpolator) At(ctx context.Context, t time.Time) (Quaternion, error) {
	if !it.behind.Time.After(t) {
		it.ahead = it.behind
	}
	for !it.behind.Time.After(t) {
		s, err := it.source.Pop(ctx)
		if err != nil {
			return Quaternion{}, err
		}
		it.behind = s
		if !s.Time.After(t) {
			it.ahead = s
		}
	}

	if it.ahead.IsZero() {
		// nothing older than t has been seen.
		return Normalize(it.behind.Q), nil
	}
	span := it.behind.Time.Sub(it.ahead.Time)
	if span <= 0 {
		return Normalize(it.behind.Q), nil
	}
	k := float64(t.Sub(it.ahead.Time)) / float64(span)
	if k < 0 {
		k = 0
	} else if k > 1 {
		k = 1
	}
	return Slerp(it.ahead.Q, it.behind.Q, k), nil
}
