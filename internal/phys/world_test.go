package phys

import (
	"math"
	"testing"

	"github.com/gokturkdogan/journey/internal/geom"
)

func TestWorld_StepCount(t *testing.T) {
	tests := []struct {
		name     string
		delta    float64
		expected int
	}{
		{"zero delta", 0, 0},
		{"negative delta", -0.1, 0},
		{"sub-frame delta", 0.001, 1},
		{"one frame", 1.0 / 60.0, 1},
		{"two frames", 2.0 / 60.0, 2},
		{"spike capped", 1.0, DefaultMaxSubSteps},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld()
			if got := w.Step(tt.delta); got != tt.expected {
				t.Errorf("Step(%v) = %d sub-steps, want %d", tt.delta, got, tt.expected)
			}
		})
	}
}

func TestWorld_ForceAccelerates(t *testing.T) {
	w := NewWorld()
	w.Gravity = geom.Vec3{}
	b := w.AddBody(NewBody(10, geom.Vec3{}))

	b.ApplyForce(geom.Vec3{X: 100})
	w.Step(w.FixedStep)

	// a = F/m = 10, v = a*h
	want := 10 * w.FixedStep
	if math.Abs(b.Velocity().X-want) > 1e-9 {
		t.Errorf("vx = %v, want %v", b.Velocity().X, want)
	}

	// Accumulator cleared: a second step must not re-apply the force.
	v := b.Velocity().X
	w.Step(w.FixedStep)
	if b.Velocity().X != v {
		t.Errorf("force not cleared after step: vx %v -> %v", v, b.Velocity().X)
	}
}

func TestBody_ClearForces(t *testing.T) {
	w := NewWorld()
	w.Gravity = geom.Vec3{}
	b := w.AddBody(NewBody(10, geom.Vec3{}))

	b.ApplyForce(geom.Vec3{X: 100})
	b.ApplyTorque(geom.Vec3{Y: 5})
	b.ClearForces()
	w.Step(w.FixedStep)

	if v := b.Velocity(); v != (geom.Vec3{}) {
		t.Errorf("cleared force still accelerated body, v = %v", v)
	}
	if av := b.AngularVelocity(); av != (geom.Vec3{}) {
		t.Errorf("cleared torque still spun body, w = %v", av)
	}
}

func TestWorld_StaticBodyNeverMoves(t *testing.T) {
	w := NewWorld()
	b := w.AddBody(NewBody(0, geom.Vec3{X: 5}))

	b.ApplyForce(geom.Vec3{X: 1000})
	b.ApplyTorque(geom.Vec3{Y: 1000})
	w.Step(0.5)

	if b.Position() != (geom.Vec3{X: 5}) {
		t.Errorf("static body moved to %v", b.Position())
	}
}

func TestWorld_GroundContainment(t *testing.T) {
	w := NewWorld()
	b := w.AddBody(NewBody(1, geom.Vec3{Y: 0.5}))
	b.RestingHeight = 0.5

	// Gravity alone must not push the body under its resting height.
	for i := 0; i < 120; i++ {
		w.Step(w.FixedStep)
	}

	if b.Position().Y < b.RestingHeight {
		t.Errorf("body sank to y=%v, resting height %v", b.Position().Y, b.RestingHeight)
	}
	if b.Velocity().Y < 0 {
		t.Errorf("residual downward velocity %v", b.Velocity().Y)
	}
}

func TestBody_ApplyLocalForce(t *testing.T) {
	w := NewWorld()
	w.Gravity = geom.Vec3{}
	b := w.AddBody(NewBody(1, geom.Vec3{}))
	b.SetOrientation(geom.QuatFromYaw(math.Pi / 2))

	// Local -Z (forward) rotated a quarter turn points along world -X.
	b.ApplyLocalForce(geom.Vec3{Z: -1})
	w.Step(w.FixedStep)

	v := b.Velocity()
	if v.X >= 0 || math.Abs(v.Z) > 1e-9 {
		t.Errorf("local force misrotated, v = %v", v)
	}
}

func TestBody_ForwardSpeed(t *testing.T) {
	b := NewBody(1, geom.Vec3{})
	b.SetVelocity(geom.Vec3{Z: -3})

	if got := b.ForwardSpeed(); math.Abs(got-3) > 1e-12 {
		t.Errorf("forward speed = %v, want 3", got)
	}

	b.SetVelocity(geom.Vec3{Z: 2})
	if got := b.ForwardSpeed(); math.Abs(got+2) > 1e-12 {
		t.Errorf("reverse speed = %v, want -2", got)
	}
}
