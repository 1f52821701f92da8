package camera

import (
	"math"
	"testing"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestNew(t *testing.T) {
	cam := New(20, 10, 45)

	if cam.AngleDeg != 0 {
		t.Errorf("expected angle 0, got %f", cam.AngleDeg)
	}
	x, y, z := cam.Eye()
	if !approx(x, 0) || !approx(y, 10) || !approx(z, 20) {
		t.Errorf("expected eye (0, 10, 20), got (%f, %f, %f)", x, y, z)
	}
}

func TestEyeAtQuarterTurns(t *testing.T) {
	cam := New(20, 10, 45)

	tests := []struct {
		angle   float32
		x, y, z float32
	}{
		{0, 0, 10, 20},
		{90, 20, 10, 0},
		{180, 0, 10, -20},
		{270, -20, 10, 0},
	}

	for _, tt := range tests {
		cam.SetAngle(tt.angle)
		x, y, z := cam.Eye()
		if !approx(x, tt.x) || !approx(y, tt.y) || !approx(z, tt.z) {
			t.Errorf("angle %v: eye (%f, %f, %f), want (%f, %f, %f)",
				tt.angle, x, y, z, tt.x, tt.y, tt.z)
		}
	}
}

func TestEyePeriodic(t *testing.T) {
	cam := New(20, 10, 45)

	cam.SetAngle(360 + 45)
	x1, y1, z1 := cam.Eye()
	cam.SetAngle(45)
	x2, y2, z2 := cam.Eye()

	if !approx(x1, x2) || !approx(y1, y2) || !approx(z1, z2) {
		t.Errorf("eye at 405 deg (%f, %f, %f) != eye at 45 deg (%f, %f, %f)",
			x1, y1, z1, x2, y2, z2)
	}
}

func TestEyeDistanceConstant(t *testing.T) {
	cam := New(20, 10, 45)

	for deg := float32(0); deg < 360; deg += 15 {
		cam.SetAngle(deg)
		x, _, z := cam.Eye()
		d := math.Sqrt(float64(x*x + z*z))
		if math.Abs(d-20) > 1e-3 {
			t.Errorf("angle %v: horizontal distance %f, want 20", deg, d)
		}
	}
}
