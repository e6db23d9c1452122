package activation

import (
	"github.com/gokturkdogan/journey/internal/geom"
	"github.com/gokturkdogan/journey/internal/landmark"
)

const (
	DefaultProximityRadius = 15.0

	// DefaultIntensityRate reproduces the reference tuning of a 0.05
	// step per frame at 60 Hz, expressed per second.
	DefaultIntensityRate = 3.0
)

// Engine selects at most one active landmark by proximity and owns the
// per-landmark highlight intensity. The intensity is the only visual
// state the simulation holds; scale, glow, and color effects observe
// it from the outside.
type Engine struct {
	registry *landmark.Registry

	ProximityRadius float64
	IntensityRate   float64

	intensity map[string]float64
}

func NewEngine(registry *landmark.Registry) *Engine {
	e := &Engine{
		registry:        registry,
		ProximityRadius: DefaultProximityRadius,
		IntensityRate:   DefaultIntensityRate,
		intensity:       make(map[string]float64, registry.Len()),
	}
	for _, lm := range registry.Ordered() {
		e.intensity[lm.ID] = 0
	}
	return e
}

// Update runs one tick: a full nearest-within-radius search (no
// per-landmark hysteresis; the single current selection is the
// hysteresis), then eases every intensity toward its target.
func (e *Engine) Update(dt float64, vehiclePos geom.Vec3) {
	nearest := e.registry.NearestWithin(vehiclePos, e.ProximityRadius)
	current := e.registry.Active()

	if nearest != current {
		if nearest == nil {
			e.registry.ClearActive()
		} else {
			e.registry.SetActive(nearest.ID)
		}
		current = nearest
	}

	step := e.IntensityRate * dt
	for _, lm := range e.registry.Ordered() {
		target := 0.0
		if lm == current {
			target = 1.0
		}
		v := geom.MoveToward(e.intensity[lm.ID], target, step)
		e.intensity[lm.ID] = geom.Clamp(v, 0, 1)
	}
}

// Intensity returns the highlight intensity for a landmark key, zero
// for unknown keys.
func (e *Engine) Intensity(id string) float64 { return e.intensity[id] }

// Intensities returns a copy of the full intensity table, keyed by
// landmark ID.
func (e *Engine) Intensities() map[string]float64 {
	out := make(map[string]float64, len(e.intensity))
	for id, v := range e.intensity {
		out[id] = v
	}
	return out
}
