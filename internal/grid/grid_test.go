package grid

import (
	"errors"
	"testing"
)

func TestNew_GetRoundTrip(t *testing.T) {
	sizes := []struct{ w, h int }{{0, 0}, {1, 1}, {3, 2}, {5, 5}, {7, 1}, {1, 9}}

	for _, sz := range sizes {
		fill := func(c Coord) int { return c.X*1000 + c.Y }
		g := New(sz.w, sz.h, fill)

		if g.Width() != sz.w || g.Height() != sz.h {
			t.Fatalf("size = %dx%d, want %dx%d", g.Width(), g.Height(), sz.w, sz.h)
		}

		for y := -2; y < sz.h+2; y++ {
			for x := -2; x < sz.w+2; x++ {
				c := Coord{X: x, Y: y}
				v, ok := g.Get(c)
				inside := x >= 0 && y >= 0 && x < sz.w && y < sz.h
				if ok != inside {
					t.Fatalf("%dx%d Get(%v) ok=%v, want %v", sz.w, sz.h, c, ok, inside)
				}
				if inside && v != fill(c) {
					t.Errorf("Get(%v) = %d, want %d", c, v, fill(c))
				}
				if !inside && g.GetMut(c) != nil {
					t.Errorf("GetMut(%v) should be nil out of bounds", c)
				}
			}
		}
	}
}

func TestNew_RowMajorFillOrder(t *testing.T) {
	var order []Coord
	New(3, 2, func(c Coord) struct{} {
		order = append(order, c)
		return struct{}{}
	})

	want := []Coord{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}
	if len(order) != len(want) {
		t.Fatalf("fill called %d times, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("fill #%d at %v, want %v", i, order[i], want[i])
		}
	}
}

func TestMapWithCoord(t *testing.T) {
	src := New(4, 3, func(c Coord) string { return "x" })
	dst := MapWithCoord(src, func(c Coord, s *string) Coord { return c })

	if dst.Width() != 4 || dst.Height() != 3 {
		t.Fatalf("mapped size = %dx%d", dst.Width(), dst.Height())
	}
	for c, v := range dst.All() {
		if *v != c {
			t.Errorf("cell %v holds %v", c, *v)
		}
	}
}

func TestGetChecked_PanicsOutOfBounds(t *testing.T) {
	g := New(2, 2, func(Coord) int { return 1 })

	if got := g.GetChecked(Coord{X: 1, Y: 1}); got != 1 {
		t.Fatalf("GetChecked = %d", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-bounds GetChecked")
		}
	}()
	g.GetChecked(Coord{X: 2, Y: 0})
}

func TestAll_MutationAndRestart(t *testing.T) {
	g := New(3, 3, func(Coord) int { return 0 })

	for _, v := range g.All() {
		*v += 1
	}
	for v := range g.Values() {
		*v *= 10
	}

	count := 0
	for _, v := range g.All() {
		if *v != 10 {
			t.Errorf("cell = %d, want 10", *v)
		}
		count++
	}
	if count != 9 {
		t.Errorf("enumerated %d cells, want 9", count)
	}
}

func TestFromCells(t *testing.T) {
	if _, err := FromCells(2, 2, []int{1, 2, 3}); !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("expected ErrSizeMismatch, got %v", err)
	}

	g, err := FromCells(2, 2, []int{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := g.Get(Coord{X: 0, Y: 1}); v != 3 {
		t.Errorf("Get(0,1) = %d, want 3", v)
	}
}

func TestCoord(t *testing.T) {
	a := Coord{X: 2, Y: -1}
	b := Coord{X: -1, Y: 3}

	if got := a.Add(b); got != (Coord{X: 1, Y: 2}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Distance2(b); got != 25 {
		t.Errorf("Distance2 = %d, want 25", got)
	}
}
