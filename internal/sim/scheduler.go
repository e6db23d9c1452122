package sim

import (
	"context"
	"fmt"

	"github.com/gokturkdogan/journey/internal/activation"
	"github.com/gokturkdogan/journey/internal/camera"
	"github.com/gokturkdogan/journey/internal/landmark"
	"github.com/gokturkdogan/journey/internal/phys"
	"github.com/gokturkdogan/journey/internal/vehicle"
)

// Snapshot is the read-only view published after each tick.
type Snapshot struct {
	Tick  int
	Time  float64
	Delta float64

	Vehicle   vehicle.State
	Camera    camera.Transform
	ActiveID  string
	Intensity map[string]float64
}

// Observer receives the snapshot once per tick, after the fixed update
// order has completed.
type Observer interface {
	OnTick(s Snapshot)
}

// Scheduler advances the simulation components in their fixed order.
// All wiring is explicit construction-time injection; the scheduler
// holds no global state.
type Scheduler struct {
	world    *phys.World
	vehicle  *vehicle.Controller
	engine   *activation.Engine
	rig      *camera.Rig
	registry *landmark.Registry

	observers []Observer

	tick int
	time float64
}

func New(world *phys.World, v *vehicle.Controller, e *activation.Engine, r *camera.Rig, reg *landmark.Registry) *Scheduler {
	return &Scheduler{
		world:    world,
		vehicle:  v,
		engine:   e,
		rig:      r,
		registry: reg,
	}
}

func (s *Scheduler) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Scheduler) Vehicle() *vehicle.Controller { return s.vehicle }
func (s *Scheduler) Rig() *camera.Rig             { return s.rig }
func (s *Scheduler) Registry() *landmark.Registry { return s.registry }
func (s *Scheduler) Engine() *activation.Engine   { return s.engine }

// Tick runs one frame: physics step, then vehicle corrections, then
// activation, then the camera rig, then observer fan-out.
func (s *Scheduler) Tick(delta float64) Snapshot {
	s.world.Step(delta)
	s.vehicle.Update(delta)

	vs := s.vehicle.State()
	s.engine.Update(delta, vs.Position)
	s.rig.Update(delta, vs.Position)

	s.tick++
	s.time += delta

	snap := Snapshot{
		Tick:      s.tick,
		Time:      s.time,
		Delta:     delta,
		Vehicle:   s.vehicle.State(),
		Camera:    s.rig.Transform(),
		Intensity: s.engine.Intensities(),
	}
	if active := s.registry.Active(); active != nil {
		snap.ActiveID = active.ID
	}

	for _, o := range s.observers {
		o.OnTick(snap)
	}
	return snap
}

// Run drives the scheduler headlessly for duration seconds at a fixed
// frame delta, honoring ctx cancellation. The optional driver is
// invoked before each tick with the simulation time, so scripted runs
// can flip input flags deterministically.
func (s *Scheduler) Run(ctx context.Context, duration, frameDelta float64, driver func(t float64, v *vehicle.Controller)) error {
	if frameDelta <= 0 {
		return fmt.Errorf("frame delta must be positive, got %f", frameDelta)
	}
	if duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", duration)
	}

	for t := 0.0; t < duration; t += frameDelta {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if driver != nil {
			driver(t, s.vehicle)
		}
		s.Tick(frameDelta)
	}
	return nil
}
