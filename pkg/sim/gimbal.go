package sim

import (
	"math"
	"time"

	"gonum.org/v1/gonum/num/quat"

	"github.com/robotalks/telelink/pkg/imu"
)

// DefaultSlewRate is the gimbal rotation speed in radians per second.
const DefaultSlewRate = math.Pi

// Gimbal is a two axis gimbal slewing towards an aim point.
type Gimbal struct {
	Yaw      Angle
	Pitch    Angle
	SlewRate float64

	aiming      bool
	yawTarget   Angle
	pitchTarget Angle
}

// Aim sets the aim point.
func (g *Gimbal) Aim(yaw, pitch Angle) {
	g.aiming, g.yawTarget, g.pitchTarget = true, yaw, pitch
}

// Release stops slewing and holds the current pose.
func (g *Gimbal) Release() {
	g.aiming = false
}

// Aiming reports whether the gimbal is slewing to an aim point.
func (g *Gimbal) Aiming() bool {
	return g.aiming
}

// Step advances the gimbal by dt.
func (g *Gimbal) Step(dt time.Duration) {
	if !g.aiming || dt <= 0 {
		return
	}
	rate := g.SlewRate
	if rate <= 0 {
		rate = DefaultSlewRate
	}
	step := rate * dt.Seconds()
	g.Yaw = g.Yaw.Approach(g.yawTarget, step)
	g.Pitch = g.Pitch.Approach(g.pitchTarget, step)
}

// Orientation returns yaw about Z followed by pitch about Y.
func (g *Gimbal) Orientation() imu.Quaternion {
	yaw := imu.FromAxisAngle(0, 0, 1, g.Yaw.Radians())
	pitch := imu.FromAxisAngle(0, 1, 0, g.Pitch.Radians())
	return imu.Normalize(quat.Mul(yaw, pitch))
}
