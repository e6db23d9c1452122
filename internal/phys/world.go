package phys

import (
	"math"

	"github.com/gokturkdogan/journey/internal/geom"
)

const (
	DefaultFixedStep   = 1.0 / 60.0
	DefaultMaxSubSteps = 4
	DefaultGravity     = -9.81
)

// World owns rigid bodies and advances them with fixed sub-stepping.
// Frame deltas larger than FixedStep*MaxSubSteps are absorbed rather
// than caught up, so a stalled frame cannot stall the next one too.
type World struct {
	bodies []*Body

	FixedStep   float64
	MaxSubSteps int
	Gravity     geom.Vec3
}

func NewWorld() *World {
	return &World{
		FixedStep:   DefaultFixedStep,
		MaxSubSteps: DefaultMaxSubSteps,
		Gravity:     geom.Vec3{Y: DefaultGravity},
	}
}

// AddBody registers a body with the world and returns it.
func (w *World) AddBody(b *Body) *Body {
	w.bodies = append(w.bodies, b)
	return b
}

func (w *World) Bodies() []*Body { return w.bodies }

// Step advances all bodies by realDelta, split into fixed sub-steps.
// It returns the number of sub-steps taken.
func (w *World) Step(realDelta float64) int {
	if realDelta <= 0 || math.IsNaN(realDelta) {
		return 0
	}
	steps := int(realDelta / w.FixedStep)
	if steps < 1 {
		steps = 1
	}
	if steps > w.MaxSubSteps {
		steps = w.MaxSubSteps
	}
	for i := 0; i < steps; i++ {
		w.subStep(w.FixedStep)
	}
	for _, b := range w.bodies {
		b.ClearForces()
	}
	return steps
}

// subStep is semi-implicit Euler: velocities first, then positions.
func (w *World) subStep(h float64) {
	for _, b := range w.bodies {
		if b.static {
			continue
		}

		accel := b.force.Scale(b.invMass).Add(w.Gravity)
		b.velocity = b.velocity.Add(accel.Scale(h))
		b.angularVel = b.angularVel.Add(b.torque.Scale(b.invMass * h))

		if b.linearDamping > 0 {
			b.velocity = b.velocity.Scale(math.Exp(-b.linearDamping * h))
		}
		if b.angularDamping > 0 {
			b.angularVel = b.angularVel.Scale(math.Exp(-b.angularDamping * h))
		}

		b.position = b.position.Add(b.velocity.Scale(h))
		b.orientation = integrateOrientation(b.orientation, b.angularVel, h)

		// Ground containment stands in for a suspension model.
		if b.position.Y < b.RestingHeight {
			b.position.Y = b.RestingHeight
			if b.velocity.Y < 0 {
				b.velocity.Y = 0
			}
		}
	}
}

// integrateOrientation applies dq/dt = 0.5 * omega * q and renormalizes.
func integrateOrientation(q geom.Quat, omega geom.Vec3, h float64) geom.Quat {
	if omega == (geom.Vec3{}) {
		return q
	}
	wq := geom.Quat{W: 0, X: omega.X, Y: omega.Y, Z: omega.Z}
	dq := wq.Mul(q)
	q.W += 0.5 * dq.W * h
	q.X += 0.5 * dq.X * h
	q.Y += 0.5 * dq.Y * h
	q.Z += 0.5 * dq.Z * h
	return q.Normalize()
}
