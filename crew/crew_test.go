package crew

import "testing"

func TestIgniterKind(t *testing.T) {
	cases := []struct {
		name string
		ig   Igniter
		want Kind
	}{
		{"continuous", NewIgniter(1), Continuous},
		{"dashed", NewIgniter(1).WithDash(10, 10), Dashed},
		{"dashed default gap", NewIgniter(1).WithDash(10, 0), Dashed},
		{"dotted", NewIgniter(1).WithDots(5), Dotted},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.ig.Kind(); got != c.want {
				t.Fatalf("Kind() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestIgniterEffectiveGapDefaultsToDash(t *testing.T) {
	ig := NewIgniter(1).WithDash(10, 0)
	if got := ig.effectiveGap(); got != 10 {
		t.Fatalf("effectiveGap() = %v, want 10", got)
	}
	ig2 := NewIgniter(1).WithDash(10, 4)
	if got := ig2.effectiveGap(); got != 4 {
		t.Fatalf("effectiveGap() = %v, want 4", got)
	}
}

func TestIgniterValidateRejectsNonPositiveVelocity(t *testing.T) {
	if err := NewIgniter(0).Validate(); err == nil {
		t.Fatalf("expected error for zero velocity")
	}
	if err := NewIgniter(-1).Validate(); err == nil {
		t.Fatalf("expected error for negative velocity")
	}
	if err := NewIgniter(1).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCrewValidateRejectsEmptyCrew(t *testing.T) {
	var c IgnitionCrew
	if err := c.Validate(); err != ErrEmptyCrew {
		t.Fatalf("got %v, want ErrEmptyCrew", err)
	}
}

func TestCrewValidateEnforcesSameVelocity(t *testing.T) {
	c := NewCrew(NewIgniter(1), NewIgniter(2))
	c.SameVelocity = true
	if err := c.Validate(); err == nil {
		t.Fatalf("expected mixed-velocity error")
	}

	c2 := NewCrew(NewIgniter(1), NewIgniter(1))
	c2.SameVelocity = true
	if err := c2.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCrewSize(t *testing.T) {
	c := NewCrew(NewIgniter(1), NewIgniter(1), NewIgniter(1))
	if got := c.Size(); got != 3 {
		t.Fatalf("Size() = %d, want 3", got)
	}
}
