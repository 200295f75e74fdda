package core

import "testing"

func TestByteGridIndexRowMajor(t *testing.T) {
	g := NewByteGrid(4, 3)
	if got := g.Index(0, 0); got != 0 {
		t.Fatalf("Index(0,0) = %d, expected 0", got)
	}
	if got := g.Index(1, 0); got != 3 {
		t.Fatalf("Index(1,0) = %d, expected 3", got)
	}
	if got := g.Index(3, 2); got != 11 {
		t.Fatalf("Index(3,2) = %d, expected 11", got)
	}
}

func TestByteGridInBounds(t *testing.T) {
	g := NewByteGrid(4, 3)
	cases := []struct {
		row, col int
		want     bool
	}{
		{0, 0, true},
		{3, 2, true},
		{-1, 0, false},
		{0, -1, false},
		{4, 0, false},
		{0, 3, false},
	}
	for _, c := range cases {
		if got := g.InBounds(c.row, c.col); got != c.want {
			t.Fatalf("InBounds(%d,%d) = %v, expected %v", c.row, c.col, got, c.want)
		}
	}
}

func TestByteGridSetAtClear(t *testing.T) {
	g := NewByteGrid(4, 3)
	g.Set(2, 1, 7)
	if got := g.At(2, 1); got != 7 {
		t.Fatalf("At(2,1) = %d, expected 7", got)
	}
	if got := g.Cells()[g.Index(2, 1)]; got != 7 {
		t.Fatalf("backing slice value = %d, expected 7", got)
	}

	g.Clear()
	for i, v := range g.Cells() {
		if v != 0 {
			t.Fatalf("cell %d = %d after Clear, expected 0", i, v)
		}
	}
}

func TestByteGridClampsNonPositiveDimensions(t *testing.T) {
	g := NewByteGrid(0, -2)
	if g.Rows != 1 || g.Cols != 1 {
		t.Fatalf("dimensions = %dx%d, expected 1x1", g.Rows, g.Cols)
	}
	if len(g.Cells()) != 1 {
		t.Fatalf("backing slice length = %d, expected 1", len(g.Cells()))
	}
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 100; i++ {
		va, vb := a.IntN(7), b.IntN(7)
		if va != vb {
			t.Fatalf("draw %d diverged: %d vs %d", i, va, vb)
		}
		if va < 0 || va >= 7 {
			t.Fatalf("IntN(7) = %d out of range", va)
		}
	}
	if NewRNG(1).IntN(0) != 0 {
		t.Fatal("IntN(0) must return 0")
	}
}
