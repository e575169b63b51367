package imu

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Quaternion is a rotation in w + xi + yj + zk form.
type Quaternion = quat.Number

// Identity is the no-rotation quaternion.
var Identity = Quaternion{Real: 1}

// Quat builds a quaternion from w, x, y, z.
func Quat(w, x, y, z float64) Quaternion {
	return Quaternion{Real: w, Imag: x, Jmag: y, Kmag: z}
}

// FromAxisAngle builds the unit quaternion rotating by angle radians about
// the axis (x, y, z). The axis does not need to be normalized.
func FromAxisAngle(x, y, z, angle float64) Quaternion {
	n := math.Sqrt(x*x + y*y + z*z)
	if n == 0 {
		return Identity
	}
	s := math.Sin(angle/2) / n
	return Quat(math.Cos(angle/2), x*s, y*s, z*s)
}

// NormSquared returns w²+x²+y²+z².
func NormSquared(q Quaternion) float64 {
	return Dot(q, q)
}

// IsUnit reports whether q is unit-norm within tolerance.
func IsUnit(q Quaternion, tolerance float64) bool {
	return math.Abs(NormSquared(q)-1) <= tolerance
}

// Dot is the 4D dot product.
func Dot(a, b Quaternion) float64 {
	return a.Real*b.Real + a.Imag*b.Imag + a.Jmag*b.Jmag + a.Kmag*b.Kmag
}

// Normalize scales q to unit norm. The zero quaternion is returned as is.
func Normalize(q Quaternion) Quaternion {
	n := quat.Abs(q)
	if n == 0 {
		return q
	}
	return quat.Scale(1/n, q)
}

const slerpParallelEpsilon = 1e-6

// Slerp interpolates between a and b at fraction t along the shortest arc.
// Inputs are normalized first and the result is normalized.
func Slerp(a, b Quaternion, t float64) Quaternion {
	a, b = Normalize(a), Normalize(b)
	d := Dot(a, b)
	absD := math.Abs(d)

	var s0, s1 float64
	if absD >= 1-slerpParallelEpsilon {
		s0, s1 = 1-t, t
	} else {
		theta := math.Acos(absD)
		sinTheta := math.Sin(theta)
		s0 = math.Sin((1-t)*theta) / sinTheta
		s1 = math.Sin(t*theta) / sinTheta
	}
	if d < 0 {
		s1 = -s1
	}
	return Normalize(quat.Add(quat.Scale(s0, a), quat.Scale(s1, b)))
}

// Angle returns the rotation angle in radians between a and b.
func Angle(a, b Quaternion) float64 {
	d := math.Abs(Dot(Normalize(a), Normalize(b)))
	if d > 1 {
		d = 1
	}
	return 2 * math.Acos(d)
}
