package grid

import "testing"

func TestNewLanes(t *testing.T) {
	tests := []struct {
		name   string
		total  int
		n      int
		widths []int
	}{
		{"even", 400, 4, []int{100, 100, 100, 100}},
		{"remainder goes to leading lanes", 1003, 4, []int{251, 251, 251, 250}},
		{"single lane", 77, 1, []int{77}},
		{"more lanes than pixels", 2, 3, []int{1, 1, 0}},
		{"negative total", -5, 2, []int{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLanes(tt.total, tt.n)
			if l.Count() != tt.n {
				t.Fatalf("Count() = %d, want %d", l.Count(), tt.n)
			}
			for i, w := range tt.widths {
				if got := l.Width(i); got != w {
					t.Errorf("Width(%d) = %d, want %d", i, got, w)
				}
			}
		})
	}
}

func TestLanesSumToTotal(t *testing.T) {
	for total := 0; total <= 257; total++ {
		for n := 1; n <= 13; n++ {
			l := NewLanes(total, n)
			sum, lo, hi := 0, total, 0
			for i := 0; i < n; i++ {
				w := l.Width(i)
				sum += w
				lo, hi = min(lo, w), max(hi, w)
			}
			if sum != total || l.Total() != total {
				t.Fatalf("NewLanes(%d, %d) sums to %d", total, n, sum)
			}
			if hi-lo > 1 {
				t.Fatalf("NewLanes(%d, %d) widths differ by %d", total, n, hi-lo)
			}
		}
	}
}

func TestLanesBounds(t *testing.T) {
	l := NewLanes(1003, 4)
	start, end := l.Bounds(1, 2)
	if start != 251 || end != 753 {
		t.Errorf("Bounds(1, 2) = %d, %d, want 251, 753", start, end)
	}

	defer func() {
		if recover() == nil {
			t.Error("Bounds past the last lane should panic")
		}
	}()
	l.Bounds(3, 2)
}
