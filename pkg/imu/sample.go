// Package imu buffers orientation samples and reconstructs orientation at an
// arbitrary point in time.
package imu

import "time"

// Sample is one decoded orientation stamped with the host monotonic clock.
type Sample struct {
	Q    Quaternion
	Time time.Time
}

// IsZero reports whether s is the zero Sample.
func (s Sample) IsZero() bool {
	return s.Time.IsZero()
}
