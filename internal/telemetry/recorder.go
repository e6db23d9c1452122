package telemetry

import "github.com/gokturkdogan/journey/internal/sim"

// Sample is one row of the recorded track.
type Sample struct {
	Time      float64
	X, Z      float64
	Speed     float64
	ActiveID  string
	Intensity float64 // intensity of the active landmark, 0 when none
}

// Recorder observes the scheduler, feeding every metric and keeping
// the track history for export.
type Recorder struct {
	metrics []Metric
	track   []Sample
}

// NewRecorder creates a recorder with the standard metric set.
func NewRecorder() *Recorder {
	return &Recorder{
		metrics: []Metric{NewTopSpeed(), NewDistance(), NewActivations(), NewDwell()},
	}
}

// AddMetric appends a caller-supplied metric.
func (r *Recorder) AddMetric(m Metric) { r.metrics = append(r.metrics, m) }

// OnTick implements sim.Observer.
func (r *Recorder) OnTick(s sim.Snapshot) {
	for _, m := range r.metrics {
		m.Observe(s)
	}
	sample := Sample{
		Time:     s.Time,
		X:        s.Vehicle.Position.X,
		Z:        s.Vehicle.Position.Z,
		Speed:    s.Vehicle.ForwardSpeed,
		ActiveID: s.ActiveID,
	}
	if s.ActiveID != "" {
		sample.Intensity = s.Intensity[s.ActiveID]
	}
	r.track = append(r.track, sample)
}

// Track returns the recorded samples.
func (r *Recorder) Track() []Sample { return r.track }

// Metrics returns the final metric values by name.
func (r *Recorder) Metrics() map[string]float64 {
	out := make(map[string]float64, len(r.metrics))
	for _, m := range r.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

// Reset clears metrics and track for a fresh run.
func (r *Recorder) Reset() {
	for _, m := range r.metrics {
		m.Reset()
	}
	r.track = r.track[:0]
}
