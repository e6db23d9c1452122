package vehicle

import (
	"math"

	"github.com/gokturkdogan/journey/internal/geom"
	"github.com/gokturkdogan/journey/internal/phys"
)

// ControlMode is the vehicle's discrete driving state.
type ControlMode int

const (
	// ModeManual drives from the input flags.
	ModeManual ControlMode = iota
	// ModeNavigating drives toward a programmatic target, ignoring input.
	ModeNavigating
	// ModeIdle parks the vehicle; input is ignored and residual motion
	// is damped out.
	ModeIdle
)

func (m ControlMode) String() string {
	switch m {
	case ModeManual:
		return "manual"
	case ModeNavigating:
		return "navigating"
	case ModeIdle:
		return "idle"
	default:
		return "unknown"
	}
}

// SteeringMode selects between the historical controller variants: free
// steering with yaw authority, or the fixed-heading timeline drive
// where the vehicle only ever moves along its spawn axis.
type SteeringMode int

const (
	SteeringFree SteeringMode = iota
	SteeringFixedHeading
)

// Input is the edge-triggered key state. The input surface flips these
// flags asynchronously; the controller only reads them inside Update.
type Input struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// Tuning groups the controller's physical constants.
type Tuning struct {
	Mass          float64 `yaml:"mass"`
	DriveAccel    float64 `yaml:"drive_accel"`    // m/s^2 while a drive key is held
	MaxSpeed      float64 `yaml:"max_speed"`      // forward cap; reverse cap is half
	IdleDampRate  float64 `yaml:"idle_damp_rate"` // per-second decay with no drive key
	StopEpsilon   float64 `yaml:"stop_epsilon"`   // below this, residual velocity clamps to zero
	SteerTorque   float64 `yaml:"steer_torque"`   // yaw torque per unit mass
	SteerDampRate float64 `yaml:"steer_damp_rate"`
	NavAccel      float64 `yaml:"nav_accel"`      // constant accel toward a navigation target
	ArriveRadius  float64 `yaml:"arrive_radius"`  // default arrival threshold
	RestingHeight float64 `yaml:"resting_height"` // body origin height at rest
}

func DefaultTuning() Tuning {
	return Tuning{
		Mass:          1200,
		DriveAccel:    8.0,
		MaxSpeed:      20.0,
		IdleDampRate:  6.0,
		StopEpsilon:   0.05,
		SteerTorque:   2.5,
		SteerDampRate: 8.0,
		NavAccel:      6.0,
		ArriveRadius:  2.0,
		RestingHeight: 0.5,
	}
}

// Controller maps input and navigation targets onto forces applied to
// the vehicle's rigid body, and enforces the vehicle's kinematic
// invariants after every physics step: the vehicle never leaves its
// ground plane, unused rotational axes stay locked, and forward speed
// never exceeds the cap in either direction.
type Controller struct {
	body     *phys.Body
	steering SteeringMode
	tuning   Tuning

	mode  ControlMode
	input Input

	navTarget    geom.Vec3
	navThreshold float64

	teleported bool
}

// New creates a controller for the given body. A nil body is allowed;
// the controller no-ops until AttachBody is called.
func New(body *phys.Body, steering SteeringMode, tuning Tuning) *Controller {
	if body != nil {
		body.RestingHeight = tuning.RestingHeight
	}
	return &Controller{
		body:     body,
		steering: steering,
		tuning:   tuning,
		mode:     ModeManual,
	}
}

// AttachBody binds a (late-created) rigid body to the controller.
func (c *Controller) AttachBody(body *phys.Body) {
	c.body = body
	if body != nil {
		body.RestingHeight = c.tuning.RestingHeight
	}
}

func (c *Controller) Mode() ControlMode      { return c.mode }
func (c *Controller) Steering() SteeringMode { return c.steering }
func (c *Controller) Tuning() Tuning         { return c.tuning }

// SetInput replaces the held-key flags. Safe to call between ticks.
func (c *Controller) SetInput(in Input) { c.input = in }

// SetIdle parks or unparks the vehicle. Unparking returns to Manual.
// Parking while Navigating cancels the navigation.
func (c *Controller) SetIdle(idle bool) {
	if idle {
		c.mode = ModeIdle
		c.navTarget = geom.Vec3{}
		return
	}
	if c.mode == ModeIdle {
		c.mode = ModeManual
	}
}

// NavigateTo switches to Navigating toward target. A new call
// overwrites any navigation in flight. A non-positive threshold falls
// back to the tuned arrival radius.
func (c *Controller) NavigateTo(target geom.Vec3, threshold float64) {
	if threshold <= 0 {
		threshold = c.tuning.ArriveRadius
	}
	c.navTarget = target
	c.navThreshold = threshold
	c.mode = ModeNavigating
}

// Teleport relocates the vehicle instantly: position overwritten,
// velocities and pending forces zeroed, orientation reset to the
// canonical forward facing, any navigation cancelled. Idempotent, and
// the next Update skips all force and damping work so the relocation
// is not smeared. A non-finite target is ignored.
func (c *Controller) Teleport(p geom.Vec3) {
	if c.body == nil || !p.IsValid() {
		return
	}
	if p.Y < c.tuning.RestingHeight {
		p.Y = c.tuning.RestingHeight
	}
	c.body.SetPosition(p)
	c.body.SetVelocity(geom.Vec3{})
	c.body.SetAngularVelocity(geom.Vec3{})
	c.body.SetOrientation(geom.IdentityQuat())
	// Forces accumulated by the previous Update must not re-launch the
	// vehicle on the next step.
	c.body.ClearForces()
	if c.mode == ModeNavigating {
		c.mode = ModeManual
	}
	c.navTarget = geom.Vec3{}
	c.teleported = true
}

// Update runs once per tick, after the physics step. dt is the frame
// delta in seconds.
func (c *Controller) Update(dt float64) {
	if c.body == nil || dt <= 0 {
		return
	}
	if c.teleported {
		c.teleported = false
		c.enforceInvariants()
		return
	}

	switch c.mode {
	case ModeManual:
		c.updateManual(dt)
	case ModeNavigating:
		c.updateNavigating(dt)
	case ModeIdle:
		c.dampPlanarVelocity(dt, true)
	}

	c.enforceInvariants()
}

func (c *Controller) updateManual(dt float64) {
	driving := c.input.Forward || c.input.Backward
	if c.input.Forward {
		c.body.ApplyLocalForce(geom.Vec3{Z: -c.tuning.DriveAccel * c.tuning.Mass})
	}
	if c.input.Backward {
		c.body.ApplyLocalForce(geom.Vec3{Z: c.tuning.DriveAccel * c.tuning.Mass})
	}
	if !driving {
		c.dampPlanarVelocity(dt, c.steering == SteeringFree)
	}

	if c.steering == SteeringFree {
		c.updateSteering(dt)
	}
}

func (c *Controller) updateSteering(dt float64) {
	steer := 0.0
	if c.input.Left {
		steer += 1
	}
	if c.input.Right {
		steer -= 1
	}
	if steer != 0 {
		c.body.ApplyTorque(geom.Vec3{Y: steer * c.tuning.SteerTorque * c.tuning.Mass})
		return
	}
	// No steering key held: recenter yaw authority.
	w := c.body.AngularVelocity()
	w.Y = geom.Damp(w.Y, 0, c.tuning.SteerDampRate, dt)
	if math.Abs(w.Y) < c.tuning.StopEpsilon {
		w.Y = 0
	}
	c.body.SetAngularVelocity(w)
}

func (c *Controller) updateNavigating(dt float64) {
	to := c.navTarget.Sub(c.body.Position()).WithY(0)
	if c.steering == SteeringFixedHeading {
		// Single-axis drive along the spawn heading.
		fwd := c.body.Forward().WithY(0)
		to = fwd.Scale(to.Dot(fwd))
	}

	if to.Length() <= c.navThreshold {
		c.body.SetVelocity(geom.Vec3{})
		c.navTarget = geom.Vec3{}
		c.mode = ModeManual
		return
	}

	dir := to.Normalize()
	if dir == (geom.Vec3{}) {
		return
	}
	c.body.ApplyForce(dir.Scale(c.tuning.NavAccel * c.tuning.Mass))
}

// dampPlanarVelocity decomposes the velocity into the body's local
// longitudinal and lateral axes and decays them toward zero, clamping
// sub-threshold residuals to exactly zero so the vehicle settles
// instead of jittering.
func (c *Controller) dampPlanarVelocity(dt float64, lateral bool) {
	v := c.body.Velocity()
	fwd := c.body.Forward().WithY(0).Normalize()
	if fwd == (geom.Vec3{}) {
		return
	}
	right := c.body.Orientation().Right()

	long := v.Dot(fwd)
	lat := v.Dot(right)

	long = geom.Damp(long, 0, c.tuning.IdleDampRate, dt)
	if math.Abs(long) < c.tuning.StopEpsilon {
		long = 0
	}
	if lateral {
		lat = geom.Damp(lat, 0, c.tuning.IdleDampRate, dt)
		if math.Abs(lat) < c.tuning.StopEpsilon {
			lat = 0
		}
	}

	c.body.SetVelocity(fwd.Scale(long).Add(right.Scale(lat)).WithY(v.Y))
}

// enforceInvariants runs after every update: speed cap via forward-axis
// re-projection, zero vertical velocity, locked rotation axes, and
// ground containment.
func (c *Controller) enforceInvariants() {
	b := c.body

	// Speed cap: trim only the forward component so lateral velocity
	// is never corrupted by a raw vector clamp.
	fwd := b.Forward()
	fs := b.Velocity().Dot(fwd)
	maxFwd := c.tuning.MaxSpeed
	maxRev := -c.tuning.MaxSpeed / 2
	if fs > maxFwd {
		b.SetVelocity(b.Velocity().Add(fwd.Scale(maxFwd - fs)))
	} else if fs < maxRev {
		b.SetVelocity(b.Velocity().Add(fwd.Scale(maxRev - fs)))
	}

	// The vehicle never leaves its ground plane.
	b.SetVelocity(b.Velocity().WithY(0))

	// Only yaw is a steering axis, and under fixed heading not even that.
	w := b.AngularVelocity()
	w.X, w.Z = 0, 0
	if c.steering == SteeringFixedHeading {
		w.Y = 0
	}
	b.SetAngularVelocity(w)

	if p := b.Position(); p.Y < c.tuning.RestingHeight {
		b.SetPosition(p.WithY(c.tuning.RestingHeight))
	}
}
