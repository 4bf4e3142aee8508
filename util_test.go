package countx

import "testing"

func TestNextPowOf2(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{-1, 1},
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{4, 4},
		{5, 8},
		{17, 32},
		{1 << 20, 1 << 20},
		{1<<20 + 1, 1 << 21},
	}
	for _, c := range cases {
		if got := nextPowOf2(c.n); got != c.want {
			t.Errorf("nextPowOf2(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}
