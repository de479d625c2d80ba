package hilbert

import "testing"

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestBijection(t *testing.T) {
	for _, n := range []int{2, 4, 8, 16, 32} {
		seen := make(map[Point]bool, n*n)
		for i := 0; i < n*n; i++ {
			p := At(n, i)
			if p.X < 0 || p.X >= n || p.Y < 0 || p.Y >= n {
				t.Fatalf("n=%d i=%d: point %v out of range", n, i, p)
			}
			if seen[p] {
				t.Fatalf("n=%d i=%d: point %v already visited", n, i, p)
			}
			seen[p] = true
		}
		if len(seen) != n*n {
			t.Fatalf("n=%d: expected %d distinct points, got %d", n, n*n, len(seen))
		}
	}
}

func TestLocality(t *testing.T) {
	for _, n := range []int{2, 4, 8, 16, 32, 64} {
		prev := At(n, 0)
		for i := 1; i < n*n; i++ {
			cur := At(n, i)
			d := abs(cur.X-prev.X) + abs(cur.Y-prev.Y)
			if d != 1 {
				t.Fatalf("n=%d i=%d: step from %v to %v has distance %d, want 1", n, i, prev, cur, d)
			}
			prev = cur
		}
	}
}
