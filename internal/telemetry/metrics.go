package telemetry

import "github.com/gokturkdogan/journey/internal/sim"

// Metric accumulates one scalar over a run.
type Metric interface {
	Name() string
	Observe(s sim.Snapshot)
	Value() float64
	Reset()
}

// TopSpeed records the highest forward speed seen.
type TopSpeed struct {
	top float64
}

func NewTopSpeed() *TopSpeed { return &TopSpeed{} }

func (m *TopSpeed) Name() string { return "top_speed" }

func (m *TopSpeed) Observe(s sim.Snapshot) {
	if v := s.Vehicle.ForwardSpeed; v > m.top {
		m.top = v
	}
}

func (m *TopSpeed) Value() float64 { return m.top }
func (m *TopSpeed) Reset()         { m.top = 0 }

// Distance integrates planar speed over time.
type Distance struct {
	total float64
}

func NewDistance() *Distance { return &Distance{} }

func (m *Distance) Name() string { return "distance" }

func (m *Distance) Observe(s sim.Snapshot) {
	m.total += s.Vehicle.Velocity.WithY(0).Length() * s.Delta
}

func (m *Distance) Value() float64 { return m.total }
func (m *Distance) Reset()         { m.total = 0 }

// Activations counts landmark activation transitions.
type Activations struct {
	count int
	prev  string
}

func NewActivations() *Activations { return &Activations{} }

func (m *Activations) Name() string { return "activations" }

func (m *Activations) Observe(s sim.Snapshot) {
	if s.ActiveID != "" && s.ActiveID != m.prev {
		m.count++
	}
	m.prev = s.ActiveID
}

func (m *Activations) Value() float64 { return float64(m.count) }
func (m *Activations) Reset()         { m.count, m.prev = 0, "" }

// Dwell sums the time spent with any landmark active.
type Dwell struct {
	total float64
}

func NewDwell() *Dwell { return &Dwell{} }

func (m *Dwell) Name() string { return "dwell_time" }

func (m *Dwell) Observe(s sim.Snapshot) {
	if s.ActiveID != "" {
		m.total += s.Delta
	}
}

func (m *Dwell) Value() float64 { return m.total }
func (m *Dwell) Reset()         { m.total = 0 }
