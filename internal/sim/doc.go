// Package sim wires the simulation together and owns the tick order.
//
// A [Scheduler] holds explicit references to the physics world, the
// vehicle controller, the activation engine, and the camera rig, and
// advances them once per tick in a fixed order:
//
//	physics step -> vehicle corrections -> activation -> camera rig
//
// After every tick the scheduler publishes a read-only [Snapshot] to
// its observers; the presentation layer and telemetry consume the
// snapshot and never reach into the components themselves.
//
// Everything is single-threaded and cooperative: input surfaces flip
// flags between ticks, and all force application and state transitions
// happen inside the tick. There are no locks because there is no
// concurrent writer.
package sim
