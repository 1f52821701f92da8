package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/astrofield/redshift/components"
	"github.com/astrofield/redshift/starfield"
)

func newTestState(t *testing.T, stars int) *State {
	t.Helper()
	field := starfield.New(starfield.Params{
		Radius:        15,
		MinRadius:     0.1,
		HalfThickness: 0.5,
		MaxVelocity:   0.5,
		FlatVelocity:  0.5,
		ObserverZ:     20,
		RefWavelength: 0.5,
	})
	field.Generate(stars, rand.New(rand.NewSource(4)), components.Velocity{})
	return New(field, Options{
		VelocityStep: 0.01,
		MaxVelocity:  0.9,
		IdleStep:     0.1,
	})
}

func TestVelocitySaturatesHigh(t *testing.T) {
	s := newTestState(t, 0)
	for i := 0; i < 95; i++ {
		s.IncreaseObserverVelocity()
	}
	if s.ObserverVelocity != 0.9 {
		t.Errorf("velocity after 95 increments = %v, want exactly 0.9", s.ObserverVelocity)
	}
}

func TestVelocitySaturatesLow(t *testing.T) {
	s := newTestState(t, 0)
	for i := 0; i < 200; i++ {
		s.DecreaseObserverVelocity()
	}
	if s.ObserverVelocity != -0.9 {
		t.Errorf("velocity after 200 decrements = %v, want exactly -0.9", s.ObserverVelocity)
	}
}

func TestVelocityChangeRefreshesColors(t *testing.T) {
	s := newTestState(t, 20)

	before := map[components.Position]components.RGB{}
	s.field.EachStar(func(p components.Position, _ components.Velocity, c components.StarColor, m components.Model) {
		if m == components.ModelKeplerian {
			before[p] = c.Shifted
		}
	})

	for i := 0; i < 50; i++ {
		s.IncreaseObserverVelocity()
	}

	changed := false
	s.field.EachStar(func(p components.Position, _ components.Velocity, c components.StarColor, m components.Model) {
		if m == components.ModelKeplerian && before[p] != c.Shifted {
			changed = true
		}
	})
	if !changed {
		t.Error("velocity transitions did not refresh any star color")
	}
}

func TestRotateViewDoesNotWrap(t *testing.T) {
	s := newTestState(t, 0)
	for i := 0; i < 80; i++ {
		s.RotateView(5)
	}
	if math.Abs(float64(s.ViewAngle-400)) > 1e-3 {
		t.Errorf("view angle = %v, want 400 (discrete rotation has no wrap)", s.ViewAngle)
	}

	s.RotateView(-500)
	if s.ViewAngle >= 0 {
		t.Errorf("view angle = %v, want negative", s.ViewAngle)
	}
}

func TestIdleRotationWraps(t *testing.T) {
	s := newTestState(t, 0)
	s.ViewAngle = 359.95
	s.TickIdleRotation()
	s.TickIdleRotation()
	if s.ViewAngle < 0 || s.ViewAngle >= 360 {
		t.Errorf("idle rotation left angle at %v, want within [0, 360)", s.ViewAngle)
	}
}

func TestToggles(t *testing.T) {
	s := newTestState(t, 0)
	if !s.ShowKeplerian || !s.ShowFlat {
		t.Fatal("both models should start visible")
	}
	s.ToggleKeplerianVisibility()
	s.ToggleFlatVisibility()
	if s.ShowKeplerian || s.ShowFlat {
		t.Error("toggles did not flip")
	}
	s.ToggleKeplerianVisibility()
	if !s.ShowKeplerian {
		t.Error("second toggle did not restore visibility")
	}
}

func TestReset(t *testing.T) {
	s := newTestState(t, 10)
	s.ObserverVelocity = 0.5
	s.ViewAngle = 123
	s.ShowKeplerian = false
	s.ShowFlat = false

	s.Reset()

	if s.ObserverVelocity != 0 || s.ViewAngle != 0 {
		t.Errorf("reset left velocity=%v angle=%v", s.ObserverVelocity, s.ViewAngle)
	}
	if !s.ShowKeplerian || !s.ShowFlat {
		t.Error("reset should restore both toggles")
	}
}

func TestSetObserverVelocityClamps(t *testing.T) {
	s := newTestState(t, 0)
	s.SetObserverVelocity(2.0)
	if s.ObserverVelocity != 0.9 {
		t.Errorf("velocity = %v, want clamp to 0.9", s.ObserverVelocity)
	}
	s.SetObserverVelocity(-2.0)
	if s.ObserverVelocity != -0.9 {
		t.Errorf("velocity = %v, want clamp to -0.9", s.ObserverVelocity)
	}
}

func TestStatusLineFormat(t *testing.T) {
	s := newTestState(t, 0)
	s.ObserverVelocity = 0.25
	s.ViewAngle = 72.5

	want := "Observer Velocity: 0.25c | View Angle: 72.5 | Use 'W/S' for velocity, 'A/D' for rotation"
	if got := s.StatusLine(); got != want {
		t.Errorf("StatusLine() = %q, want %q", got, want)
	}
}
