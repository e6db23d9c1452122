package sim

import (
	"sort"

	"github.com/gokturkdogan/journey/internal/geom"
	"github.com/gokturkdogan/journey/internal/vehicle"
)

// ScriptStep is one timed action in a scripted drive.
type ScriptStep struct {
	At       float64        `yaml:"at"` // simulation seconds
	Input    *vehicle.Input `yaml:"input,omitempty"`
	Navigate *geom.Vec3     `yaml:"navigate,omitempty"`
	Teleport *geom.Vec3     `yaml:"teleport,omitempty"`
}

// Script replays timed input and navigation actions into the vehicle
// controller, so headless runs exercise the same entry points the
// interactive surfaces use.
type Script struct {
	steps []ScriptStep
	next  int
}

func NewScript(steps []ScriptStep) *Script {
	sorted := make([]ScriptStep, len(steps))
	copy(sorted, steps)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].At < sorted[j].At })
	return &Script{steps: sorted}
}

// Drive applies every step whose time has arrived. It matches the
// driver signature of [Scheduler.Run].
func (s *Script) Drive(t float64, v *vehicle.Controller) {
	for s.next < len(s.steps) && s.steps[s.next].At <= t {
		step := s.steps[s.next]
		s.next++
		if step.Input != nil {
			v.SetInput(*step.Input)
		}
		if step.Teleport != nil {
			v.Teleport(*step.Teleport)
		}
		if step.Navigate != nil {
			v.NavigateTo(*step.Navigate, 0)
		}
	}
}
