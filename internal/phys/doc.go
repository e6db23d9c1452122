// Package phys is the narrow rigid-body service the simulation runs on.
//
// It is deliberately not a physics engine: there is no collision
// detection, no constraint solver, no broadphase. A [World] integrates
// [Body] values with semi-implicit Euler at a fixed sub-step, with a
// bounded number of sub-steps per frame so delta spikes are absorbed
// instead of caught up:
//
//	world := phys.NewWorld()
//	body := world.AddBody(phys.NewBody(1200, geom.Vec3{Y: 0.5}))
//	body.ApplyLocalForce(geom.Vec3{Z: -4000})
//	world.Step(frameDelta)
//
// Bodies expose position, orientation, and velocity read-write so the
// vehicle controller can enforce its own invariants after each step.
package phys
