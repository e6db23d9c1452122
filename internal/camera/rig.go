package camera

import (
	"math"

	"github.com/gokturkdogan/journey/internal/geom"
	"github.com/gokturkdogan/journey/internal/landmark"
)

// ZoneState is the rig's framing state.
type ZoneState int

const (
	// FreeRoam frames the vehicle with the default chase angles.
	FreeRoam ZoneState = iota
	// InZone frames the vehicle with the landmark-viewing angles.
	InZone
)

func (s ZoneState) String() string {
	if s == InZone {
		return "in-zone"
	}
	return "free-roam"
}

// Tuning groups the rig's framing constants. Damp rates are per
// second; the reference per-frame lerp factors at 60 Hz are noted in
// the config defaults.
type Tuning struct {
	Distance     float64 `yaml:"distance"`      // orbit radius around the vehicle
	Height       float64 `yaml:"height"`        // vertical offset added to the anchor
	MinHeight    float64 `yaml:"min_height"`    // world-height floor, prevents ground clipping
	FreeYaw      float64 `yaml:"free_yaw"`      // radians
	FreePitch    float64 `yaml:"free_pitch"`
	ZoneYaw      float64 `yaml:"zone_yaw"`
	ZonePitch    float64 `yaml:"zone_pitch"`
	AngleRate    float64 `yaml:"angle_rate"`
	PositionRate float64 `yaml:"position_rate"`
	SnapDistance float64 `yaml:"snap_distance"` // beyond this, interpolation becomes a hard snap
	ZoneRadius   float64 `yaml:"zone_radius"`

	// LookAhead is added to the vehicle position to form the look
	// target, never smoothed.
	LookAhead geom.Vec3 `yaml:"look_ahead"`

	// OrbitInput switches the build to pointer-driven orbit; the
	// zone-state targets are disabled for the whole session.
	OrbitInput       bool    `yaml:"orbit_input"`
	OrbitSensitivity float64 `yaml:"orbit_sensitivity"`
	PitchMin         float64 `yaml:"pitch_min"`
	PitchMax         float64 `yaml:"pitch_max"`
}

func DefaultTuning() Tuning {
	return Tuning{
		Distance:     12,
		Height:       3,
		MinHeight:    1,
		FreeYaw:      0,
		FreePitch:    0.35,
		ZoneYaw:      0.6,
		ZonePitch:    0.2,
		AngleRate:    4.0,
		PositionRate: 6.0,
		SnapDistance: 30,
		LookAhead:    geom.Vec3{Y: 1.5, Z: -4},
		ZoneRadius:   15,

		OrbitSensitivity: 0.005,
		PitchMin:         0.05,
		PitchMax:         1.3,
	}
}

// Transform is the rig's output for one tick: the presentation layer
// treats Position as the camera's coordinate root and aims it at
// LookAt.
type Transform struct {
	Position geom.Vec3
	LookAt   geom.Vec3
	Yaw      float64
	Pitch    float64
	State    ZoneState
}

// Rig is the camera carrier. It orbits the tracked vehicle at a
// spherical offset, blends its angles toward a target pair selected by
// zone membership, and snaps instead of chasing when the anchor jumps.
type Rig struct {
	registry *landmark.Registry
	tuning   Tuning

	state      ZoneState
	yaw, pitch float64
	position   geom.Vec3
	lookAt     geom.Vec3

	started bool
}

func NewRig(registry *landmark.Registry, tuning Tuning) *Rig {
	return &Rig{
		registry: registry,
		tuning:   tuning,
		yaw:      tuning.FreeYaw,
		pitch:    tuning.FreePitch,
	}
}

func (r *Rig) State() ZoneState { return r.state }
func (r *Rig) Tuning() Tuning   { return r.tuning }

// DragOrbit accumulates pointer deltas into the orbit angles. It only
// applies in orbit-input builds; zone-driven builds ignore it.
func (r *Rig) DragOrbit(dx, dy float64) {
	if !r.tuning.OrbitInput {
		return
	}
	r.yaw += dx * r.tuning.OrbitSensitivity
	r.pitch = geom.Clamp(r.pitch+dy*r.tuning.OrbitSensitivity, r.tuning.PitchMin, r.tuning.PitchMax)
}

// Update advances the rig one tick around the vehicle's current
// position.
func (r *Rig) Update(dt float64, vehiclePos geom.Vec3) {
	inZone := r.registry.NearestWithin(vehiclePos, r.tuning.ZoneRadius) != nil

	if inZone {
		r.state = InZone
	} else {
		r.state = FreeRoam
	}

	if !r.tuning.OrbitInput {
		// The target pair is a function of zone membership, so it only
		// changes on a membership transition; the blend runs every tick.
		targetYaw, targetPitch := r.tuning.FreeYaw, r.tuning.FreePitch
		if r.state == InZone {
			targetYaw, targetPitch = r.tuning.ZoneYaw, r.tuning.ZonePitch
		}
		r.yaw = geom.Damp(r.yaw, targetYaw, r.tuning.AngleRate, dt)
		r.pitch = geom.Damp(r.pitch, targetPitch, r.tuning.AngleRate, dt)
	}

	desired := r.orbitPosition(vehiclePos)

	// A jump beyond the snap threshold means the anchor teleported;
	// chasing it smoothly would take seconds, so don't.
	if !r.started || r.position.DistanceTo(desired) > r.tuning.SnapDistance {
		r.position = desired
		r.started = true
	} else {
		r.position = geom.DampVec(r.position, desired, r.tuning.PositionRate, dt)
	}
	if r.position.Y < r.tuning.MinHeight {
		r.position.Y = r.tuning.MinHeight
	}

	// The look target is an exact function of the vehicle position,
	// recomputed every tick and never smoothed.
	r.lookAt = vehiclePos.Add(r.tuning.LookAhead)
}

// orbitPosition converts the spherical offset into a world position
// around the anchor.
func (r *Rig) orbitPosition(anchor geom.Vec3) geom.Vec3 {
	cp := math.Cos(r.pitch)
	offset := geom.Vec3{
		X: math.Sin(r.yaw) * cp * r.tuning.Distance,
		Y: math.Sin(r.pitch) * r.tuning.Distance,
		Z: math.Cos(r.yaw) * cp * r.tuning.Distance,
	}
	p := anchor.Add(offset)
	p.Y += r.tuning.Height
	if p.Y < r.tuning.MinHeight {
		p.Y = r.tuning.MinHeight
	}
	return p
}

// Transform returns the rig's current output.
func (r *Rig) Transform() Transform {
	return Transform{
		Position: r.position,
		LookAt:   r.lookAt,
		Yaw:      r.yaw,
		Pitch:    r.pitch,
		State:    r.state,
	}
}
