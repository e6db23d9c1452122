package config

import (
	"github.com/gokturkdogan/journey/internal/activation"
	"github.com/gokturkdogan/journey/internal/camera"
	"github.com/gokturkdogan/journey/internal/phys"
	"github.com/gokturkdogan/journey/internal/sim"
	"github.com/gokturkdogan/journey/internal/vehicle"
)

// Build wires a complete scheduler from the config: world, vehicle
// body, controller, activation engine, and camera rig, connected by
// explicit construction-time injection.
func (c *Config) Build() (*sim.Scheduler, error) {
	registry, err := c.BuildRegistry()
	if err != nil {
		return nil, err
	}
	steering, err := c.SteeringMode()
	if err != nil {
		return nil, err
	}

	world := phys.NewWorld()
	spawn := c.Spawn
	if spawn.Y < c.Vehicle.RestingHeight {
		spawn.Y = c.Vehicle.RestingHeight
	}
	body := world.AddBody(phys.NewBody(c.Vehicle.Mass, spawn))
	ctrl := vehicle.New(body, steering, c.Vehicle)

	engine := activation.NewEngine(registry)
	if c.Activation.ProximityRadius > 0 {
		engine.ProximityRadius = c.Activation.ProximityRadius
	}
	if c.Activation.IntensityRate > 0 {
		engine.IntensityRate = c.Activation.IntensityRate
	}

	rig := camera.NewRig(registry, c.Camera)

	return sim.New(world, ctrl, engine, rig, registry), nil
}
