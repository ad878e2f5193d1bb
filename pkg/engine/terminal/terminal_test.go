package terminal

import "testing"

func TestLeftPad(t *testing.T) {
	tests := []struct {
		line, content, want int
	}{
		{80, 20, 30},
		{80, 79, 0},
		{80, 80, 0},
		{10, 40, 0},
		{11, 4, 3},
	}
	for _, tt := range tests {
		if got := LeftPad(tt.line, tt.content); got != tt.want {
			t.Errorf("LeftPad(%d, %d) = %d, want %d", tt.line, tt.content, got, tt.want)
		}
	}
}
