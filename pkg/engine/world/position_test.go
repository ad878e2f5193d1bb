package world

import "testing"

func TestDirection_Invalid(t *testing.T) {
	d := Direction(9)
	if d.IsValid() {
		t.Error("Direction(9).IsValid() = true")
	}
	if r, c := d.Delta(); r != 0 || c != 0 {
		t.Errorf("Direction(9).Delta() = (%d, %d), want (0, 0)", r, c)
	}
	if d.String() != "Unknown" {
		t.Errorf("Direction(9).String() = %q, want Unknown", d.String())
	}
}

func TestPosition_Step(t *testing.T) {
	start := Position{X: 3, Y: 3}
	tests := []struct {
		dir  Direction
		want Position
	}{
		{North, Position{X: 3, Y: 2}},
		{South, Position{X: 3, Y: 4}},
		{East, Position{X: 4, Y: 3}},
		{West, Position{X: 2, Y: 3}},
		{Direction(-1), start},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := start.Step(tt.dir); got != tt.want {
				t.Errorf("Step(%v) = %v, want %v", tt.dir, got, tt.want)
			}
		})
	}
}
