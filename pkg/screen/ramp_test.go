package screen

import "testing"

func TestStep(t *testing.T) {
	tests := []struct {
		current, target, want int
	}{
		{0, 0, 0},
		{0, 100, 25},
		{100, 0, 75},
		{0, 3, 1},
		{3, 0, 2},
		{9, 10, 10},
		{10, 9, 9},
		{-5, 5, -3},
	}
	for _, tt := range tests {
		if got := Step(tt.current, tt.target); got != tt.want {
			t.Errorf("Step(%d, %d) = %d, want %d", tt.current, tt.target, got, tt.want)
		}
	}
}

func TestStepConverges(t *testing.T) {
	for _, tc := range [][2]int{{0, 511}, {511, 1}, {200, 203}, {1000, 0}} {
		cur, target := tc[0], tc[1]
		for i := 0; i < 1000 && cur != target; i++ {
			next := Step(cur, target)
			if (target > cur && next > target) || (target < cur && next < target) {
				t.Fatalf("Step(%d, %d) overshot to %d", cur, target, next)
			}
			if next == cur {
				t.Fatalf("Step(%d, %d) stalled", cur, target)
			}
			cur = next
		}
		if cur != target {
			t.Fatalf("ramp from %d did not reach %d", tc[0], target)
		}
	}
}
