package phys

import "github.com/gokturkdogan/journey/internal/geom"

// Body is a rigid body integrated by a World. Dynamic bodies accumulate
// forces/torques between steps; static bodies never move.
type Body struct {
	mass    float64
	invMass float64
	static  bool

	position    geom.Vec3
	orientation geom.Quat
	velocity    geom.Vec3
	angularVel  geom.Vec3

	force  geom.Vec3
	torque geom.Vec3

	// RestingHeight is the minimum Y the body's origin may occupy.
	RestingHeight float64

	linearDamping  float64
	angularDamping float64
}

// NewBody creates a dynamic body. A non-positive mass yields a static body.
func NewBody(mass float64, position geom.Vec3) *Body {
	b := &Body{
		mass:        mass,
		position:    position,
		orientation: geom.IdentityQuat(),
	}
	if mass <= 0 {
		b.static = true
	} else {
		b.invMass = 1 / mass
	}
	return b
}

func (b *Body) Mass() float64              { return b.mass }
func (b *Body) Static() bool               { return b.static }
func (b *Body) Position() geom.Vec3        { return b.position }
func (b *Body) Velocity() geom.Vec3        { return b.velocity }
func (b *Body) AngularVelocity() geom.Vec3 { return b.angularVel }
func (b *Body) Orientation() geom.Quat     { return b.orientation }

func (b *Body) SetPosition(p geom.Vec3)        { b.position = p }
func (b *Body) SetVelocity(v geom.Vec3)        { b.velocity = v }
func (b *Body) SetAngularVelocity(w geom.Vec3) { b.angularVel = w }
func (b *Body) SetOrientation(q geom.Quat)     { b.orientation = q.Normalize() }

// SetDamping configures per-second velocity decay applied every sub-step.
func (b *Body) SetDamping(linear, angular float64) {
	b.linearDamping = linear
	b.angularDamping = angular
}

// ApplyForce accumulates a world-space force for the next step.
func (b *Body) ApplyForce(f geom.Vec3) {
	if b.static {
		return
	}
	b.force = b.force.Add(f)
}

// ApplyLocalForce accumulates a force given in the body's local frame.
func (b *Body) ApplyLocalForce(f geom.Vec3) {
	b.ApplyForce(b.orientation.RotateVec(f))
}

// ApplyTorque accumulates a world-space torque for the next step.
func (b *Body) ApplyTorque(t geom.Vec3) {
	if b.static {
		return
	}
	b.torque = b.torque.Add(t)
}

// Forward is the body's local forward axis in world space.
func (b *Body) Forward() geom.Vec3 { return b.orientation.Forward() }

// ForwardSpeed is the velocity projected onto the forward axis.
func (b *Body) ForwardSpeed() float64 { return b.velocity.Dot(b.Forward()) }

// ClearForces drops any accumulated force and torque before the next
// step integrates them.
func (b *Body) ClearForces() {
	b.force = geom.Vec3{}
	b.torque = geom.Vec3{}
}
