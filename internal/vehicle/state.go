package vehicle

import "github.com/gokturkdogan/journey/internal/geom"

// State is a read-only kinematic snapshot taken after Update.
type State struct {
	Position        geom.Vec3
	Orientation     geom.Quat
	Velocity        geom.Vec3
	AngularVelocity geom.Vec3
	ForwardSpeed    float64
	Mode            ControlMode
	NavTarget       geom.Vec3
	NavThreshold    float64
}

// State captures the current kinematic state. With no body attached it
// returns a zero snapshot with the canonical orientation.
func (c *Controller) State() State {
	if c.body == nil {
		return State{Orientation: geom.IdentityQuat(), Mode: c.mode}
	}
	return State{
		Position:        c.body.Position(),
		Orientation:     c.body.Orientation(),
		Velocity:        c.body.Velocity(),
		AngularVelocity: c.body.AngularVelocity(),
		ForwardSpeed:    c.body.ForwardSpeed(),
		Mode:            c.mode,
		NavTarget:       c.navTarget,
		NavThreshold:    c.navThreshold,
	}
}
