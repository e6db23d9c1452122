package telemetry

import (
	"math"
	"testing"

	"github.com/gokturkdogan/journey/internal/geom"
	"github.com/gokturkdogan/journey/internal/sim"
	"github.com/gokturkdogan/journey/internal/vehicle"
)

func snap(t, dt, speed float64, active string) sim.Snapshot {
	return sim.Snapshot{
		Time:  t,
		Delta: dt,
		Vehicle: vehicle.State{
			Velocity:     geom.Vec3{Z: -speed},
			ForwardSpeed: speed,
		},
		ActiveID:  active,
		Intensity: map[string]float64{active: 0.5},
	}
}

func TestTopSpeed(t *testing.T) {
	m := NewTopSpeed()
	for _, v := range []float64{3, 7, 5} {
		m.Observe(snap(0, 0.016, v, ""))
	}
	if m.Value() != 7 {
		t.Errorf("top speed = %v, want 7", m.Value())
	}
	m.Reset()
	if m.Value() != 0 {
		t.Errorf("after reset = %v", m.Value())
	}
}

func TestDistance(t *testing.T) {
	m := NewDistance()
	for i := 0; i < 100; i++ {
		m.Observe(snap(0, 0.01, 10, ""))
	}
	if math.Abs(m.Value()-10) > 1e-9 {
		t.Errorf("distance = %v, want 10", m.Value())
	}
}

func TestActivations(t *testing.T) {
	m := NewActivations()
	sequence := []string{"", "a", "a", "", "b", "b", "a"}
	for _, id := range sequence {
		m.Observe(snap(0, 0.016, 0, id))
	}
	if m.Value() != 3 {
		t.Errorf("activations = %v, want 3", m.Value())
	}
}

func TestDwell(t *testing.T) {
	m := NewDwell()
	for _, id := range []string{"a", "a", "", "b"} {
		m.Observe(snap(0, 0.5, 0, id))
	}
	if math.Abs(m.Value()-1.5) > 1e-9 {
		t.Errorf("dwell = %v, want 1.5", m.Value())
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	r.OnTick(snap(0.016, 0.016, 5, "a"))
	r.OnTick(snap(0.032, 0.016, 6, ""))

	if len(r.Track()) != 2 {
		t.Fatalf("track length = %d", len(r.Track()))
	}
	if r.Track()[0].Intensity != 0.5 {
		t.Errorf("active intensity = %v, want 0.5", r.Track()[0].Intensity)
	}
	if r.Track()[1].Intensity != 0 {
		t.Errorf("inactive intensity = %v, want 0", r.Track()[1].Intensity)
	}

	vals := r.Metrics()
	if vals["top_speed"] != 6 {
		t.Errorf("top_speed = %v", vals["top_speed"])
	}
	if vals["activations"] != 1 {
		t.Errorf("activations = %v", vals["activations"])
	}

	r.Reset()
	if len(r.Track()) != 0 || r.Metrics()["top_speed"] != 0 {
		t.Error("reset did not clear recorder")
	}
}

func TestStore_SaveListLoad(t *testing.T) {
	store := NewStore(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	track := []Sample{
		{Time: 0.016, X: 0, Z: -1, Speed: 4, ActiveID: "a", Intensity: 0.25},
		{Time: 0.032, X: 0, Z: -2, Speed: 5},
	}
	id, err := store.Save(RunMetadata{
		Steering:  "fixed",
		Duration:  30,
		FrameRate: 60,
		Landmarks: 6,
		Metrics:   map[string]float64{"top_speed": 5},
	}, track)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	runs, err := store.List()
	if err != nil || len(runs) != 1 {
		t.Fatalf("list: %v, %d runs", err, len(runs))
	}
	if runs[0].ID != id {
		t.Errorf("listed id = %q, want %q", runs[0].ID, id)
	}

	meta, err := store.Load(id)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if meta.Metrics["top_speed"] != 5 {
		t.Errorf("metrics = %v", meta.Metrics)
	}

	loaded, err := store.LoadTrack(id)
	if err != nil {
		t.Fatalf("load track: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("track rows = %d", len(loaded))
	}
	if loaded[0].ActiveID != "a" || loaded[0].Intensity != 0.25 {
		t.Errorf("row 0 = %+v", loaded[0])
	}
}

func TestStore_ListEmpty(t *testing.T) {
	store := NewStore("/nonexistent/telemetry/dir")
	runs, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("runs = %v", runs)
	}
}
