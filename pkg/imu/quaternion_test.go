package imu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireQuat(t *testing.T, expected, actual Quaternion, msgAndArgs ...interface{}) {
	t.Helper()
	// q and -q are the same rotation.
	if Dot(expected, actual) < 0 {
		actual = Quat(-actual.Real, -actual.Imag, -actual.Jmag, -actual.Kmag)
	}
	require.InDelta(t, expected.Real, actual.Real, 1e-9, msgAndArgs...)
	require.InDelta(t, expected.Imag, actual.Imag, 1e-9, msgAndArgs...)
	require.InDelta(t, expected.Jmag, actual.Jmag, 1e-9, msgAndArgs...)
	require.InDelta(t, expected.Kmag, actual.Kmag, 1e-9, msgAndArgs...)
}

func yaw(deg float64) Quaternion {
	return FromAxisAngle(0, 0, 1, deg*math.Pi/180)
}

func TestSlerp(t *testing.T) {
	testCases := []struct {
		name   string
		a, b   Quaternion
		t      float64
		expect Quaternion
	}{
		{"start", Identity, yaw(90), 0, Identity},
		{"end", Identity, yaw(90), 1, yaw(90)},
		{"half", Identity, yaw(90), 0.5, yaw(45)},
		{"quarter", Identity, yaw(80), 0.25, yaw(20)},
		{"parallel", yaw(10), yaw(10), 0.3, yaw(10)},
		{"shortest arc", Identity, Quat(-yaw(90).Real, 0, 0, -yaw(90).Kmag), 0.5, yaw(45)},
		{"unnormalized input", Quat(2, 0, 0, 0), yaw(90), 0.5, yaw(45)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := Slerp(tc.a, tc.b, tc.t)
			requireQuat(t, tc.expect, q)
			require.InDelta(t, 1, NormSquared(q), 1e-12)
		})
	}
}

func TestIsUnit(t *testing.T) {
	require.True(t, IsUnit(Identity, 0.01))
	require.True(t, IsUnit(Quat(0.5, 0.5, 0.5, 0.5), 0.01))
	require.False(t, IsUnit(Quat(0.8, 0.8, 0, 0), 0.01))
	require.False(t, IsUnit(Quaternion{}, 0.01))
}

func TestAngle(t *testing.T) {
	require.InDelta(t, math.Pi/2, Angle(Identity, yaw(90)), 1e-9)
	require.InDelta(t, 0, Angle(yaw(30), yaw(30)), 1e-6)
}

func TestNormalizeZero(t *testing.T) {
	require.Equal(t, Quaternion{}, Normalize(Quaternion{}))
	require.Equal(t, Identity, FromAxisAngle(0, 0, 0, 1))
}
