package geom

import (
	"math"
	"testing"
)

func TestVec3_Length(t *testing.T) {
	tests := []struct {
		v        Vec3
		expected float64
	}{
		{Vec3{3, 4, 0}, 5.0},
		{Vec3{1, 0, 0}, 1.0},
		{Vec3{0, 0, 0}, 0.0},
		{Vec3{1, 1, 1}, math.Sqrt(3)},
	}

	for _, tt := range tests {
		if got := tt.v.Length(); math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("Length(%v) = %v, want %v", tt.v, got, tt.expected)
		}
	}
}

func TestVec3_NormalizeZero(t *testing.T) {
	got := (Vec3{}).Normalize()
	if got != (Vec3{}) {
		t.Errorf("Normalize(zero) = %v, want zero vector", got)
	}
}

func TestVec3_MoveToward(t *testing.T) {
	tests := []struct {
		name     string
		from, to Vec3
		step     float64
		expected Vec3
	}{
		{"partial", Vec3{}, Vec3{10, 0, 0}, 4, Vec3{4, 0, 0}},
		{"arrives exactly", Vec3{9, 0, 0}, Vec3{10, 0, 0}, 4, Vec3{10, 0, 0}},
		{"already there", Vec3{10, 0, 0}, Vec3{10, 0, 0}, 4, Vec3{10, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.MoveToward(tt.to, tt.step); got != tt.expected {
				t.Errorf("MoveToward = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestQuat_ForwardIdentity(t *testing.T) {
	f := IdentityQuat().Forward()
	want := Vec3{0, 0, -1}
	if f.Sub(want).Length() > 1e-12 {
		t.Errorf("identity forward = %v, want %v", f, want)
	}
}

func TestQuat_YawRoundTrip(t *testing.T) {
	for _, yaw := range []float64{0, 0.5, -0.5, math.Pi / 2, -math.Pi + 0.01} {
		q := QuatFromYaw(yaw)
		if got := q.Yaw(); math.Abs(got-yaw) > 1e-9 {
			t.Errorf("Yaw(QuatFromYaw(%v)) = %v", yaw, got)
		}
	}
}

func TestQuat_RotateVecYaw(t *testing.T) {
	// Quarter turn around Y maps -Z forward onto -X.
	q := QuatFromYaw(math.Pi / 2)
	got := q.RotateVec(Vec3{0, 0, -1})
	want := Vec3{-1, 0, 0}
	if got.Sub(want).Length() > 1e-9 {
		t.Errorf("rotate = %v, want %v", got, want)
	}
}

func TestDamp_Converges(t *testing.T) {
	x := 10.0
	for i := 0; i < 600; i++ {
		x = Damp(x, 0, 8.0, 1.0/60.0)
	}
	if math.Abs(x) > 1e-6 {
		t.Errorf("Damp did not converge, x = %v", x)
	}
}

func TestDamp_FrameRateIndependent(t *testing.T) {
	// One 0.1s step and ten 0.01s steps must land in the same place.
	coarse := Damp(1.0, 0, 5.0, 0.1)
	fine := 1.0
	for i := 0; i < 10; i++ {
		fine = Damp(fine, 0, 5.0, 0.01)
	}
	if math.Abs(coarse-fine) > 1e-9 {
		t.Errorf("coarse %v != fine %v", coarse, fine)
	}
}

func TestMoveToward_NoOvershoot(t *testing.T) {
	x := 0.0
	for i := 0; i < 100; i++ {
		x = MoveToward(x, 1.0, 0.03)
		if x > 1.0 {
			t.Fatalf("overshoot: %v", x)
		}
	}
	if x != 1.0 {
		t.Errorf("did not arrive, x = %v", x)
	}
}
