package sim

import (
	"context"
	"testing"

	"github.com/gokturkdogan/journey/internal/activation"
	"github.com/gokturkdogan/journey/internal/camera"
	"github.com/gokturkdogan/journey/internal/geom"
	"github.com/gokturkdogan/journey/internal/landmark"
	"github.com/gokturkdogan/journey/internal/phys"
	"github.com/gokturkdogan/journey/internal/vehicle"
)

const frame = 1.0 / 60.0

func newScheduler(t *testing.T) *Scheduler {
	t.Helper()
	reg, err := landmark.NewRegistry([]*landmark.Landmark{
		{ID: "a", Title: "First Home", Position: geom.Vec3{Y: 0.5, Z: -20}},
		{ID: "b", Title: "School", Position: geom.Vec3{Y: 0.5, Z: -50}},
	})
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	world := phys.NewWorld()
	tuning := vehicle.DefaultTuning()
	body := world.AddBody(phys.NewBody(tuning.Mass, geom.Vec3{Y: tuning.RestingHeight}))
	ctrl := vehicle.New(body, vehicle.SteeringFixedHeading, tuning)
	engine := activation.NewEngine(reg)
	rig := camera.NewRig(reg, camera.DefaultTuning())

	return New(world, ctrl, engine, rig, reg)
}

type recorder struct {
	snaps []Snapshot
}

func (r *recorder) OnTick(s Snapshot) { r.snaps = append(r.snaps, s) }

func TestScheduler_TickPublishesSnapshot(t *testing.T) {
	s := newScheduler(t)
	rec := &recorder{}
	s.AddObserver(rec)

	snap := s.Tick(frame)
	if snap.Tick != 1 {
		t.Errorf("tick = %d, want 1", snap.Tick)
	}
	if len(rec.snaps) != 1 {
		t.Fatalf("observer saw %d snapshots, want 1", len(rec.snaps))
	}
	if rec.snaps[0].Tick != snap.Tick {
		t.Errorf("observer snapshot diverges from return value")
	}
	if len(snap.Intensity) != 2 {
		t.Errorf("intensity table has %d entries, want 2", len(snap.Intensity))
	}
}

func TestScheduler_DriveActivatesLandmarks(t *testing.T) {
	s := newScheduler(t)

	s.Vehicle().SetInput(vehicle.Input{Forward: true})
	var sawA, sawB bool
	for i := 0; i < 60*30; i++ {
		snap := s.Tick(frame)
		switch snap.ActiveID {
		case "a":
			sawA = true
		case "b":
			sawB = true
		}
		if sawB {
			break
		}
	}

	if !sawA || !sawB {
		t.Errorf("drive past both landmarks: sawA=%v sawB=%v", sawA, sawB)
	}
}

func TestScheduler_TeleportSnapSameTick(t *testing.T) {
	s := newScheduler(t)
	for i := 0; i < 120; i++ {
		s.Tick(frame)
	}

	dest := geom.Vec3{Y: 0.5, Z: -500}
	s.Vehicle().Teleport(dest)
	snap := s.Tick(frame)

	if v := snap.Vehicle.Velocity; v != (geom.Vec3{}) {
		t.Errorf("vehicle velocity on teleport tick = %v, want zero", v)
	}
	maxOrbit := s.Rig().Tuning().Distance + s.Rig().Tuning().Height + 1
	if d := snap.Camera.Position.DistanceTo(dest); d > maxOrbit {
		t.Errorf("camera lagged %v behind the teleport, want snapped", d)
	}
}

func TestScheduler_RunValidation(t *testing.T) {
	s := newScheduler(t)

	tests := []struct {
		name            string
		duration, delta float64
	}{
		{"zero duration", 0, frame},
		{"negative duration", -1, frame},
		{"zero delta", 1, 0},
		{"negative delta", 1, -frame},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := s.Run(context.Background(), tt.duration, tt.delta, nil); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestScheduler_RunHonorsContext(t *testing.T) {
	s := newScheduler(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Run(ctx, 10, frame, nil); err != context.Canceled {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestScheduler_ScriptedNavigation(t *testing.T) {
	s := newScheduler(t)
	script := NewScript([]ScriptStep{
		{At: 0, Navigate: &geom.Vec3{Y: 0.5, Z: -50}},
	})

	if err := s.Run(context.Background(), 60, frame, script.Drive); err != nil {
		t.Fatalf("run: %v", err)
	}

	st := s.Vehicle().State()
	if st.Mode != vehicle.ModeManual {
		t.Errorf("mode = %v, want manual after arrival", st.Mode)
	}
	if d := st.Position.WithY(0).DistanceTo(geom.Vec3{Z: -50}); d > 2 {
		t.Errorf("final distance to target = %v, want <= 2", d)
	}
}

func TestScript_StepsApplyInOrder(t *testing.T) {
	world := phys.NewWorld()
	tuning := vehicle.DefaultTuning()
	body := world.AddBody(phys.NewBody(tuning.Mass, geom.Vec3{Y: tuning.RestingHeight}))
	ctrl := vehicle.New(body, vehicle.SteeringFixedHeading, tuning)

	// Deliberately unsorted input.
	script := NewScript([]ScriptStep{
		{At: 2, Input: &vehicle.Input{}},
		{At: 0, Input: &vehicle.Input{Forward: true}},
	})

	script.Drive(0, ctrl)
	script.Drive(1, ctrl) // nothing due
	script.Drive(2, ctrl)
	script.Drive(3, ctrl) // exhausted, no-op
}
