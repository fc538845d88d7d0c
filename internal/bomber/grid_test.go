package bomber

import (
	"errors"
	"testing"
)

func TestNewGridFromCodes(t *testing.T) {
	g, err := NewGridFromCodes([][]int{
		{1, 1, 1},
		{1, 11, 1},
		{1, 1, 1},
	})
	if err != nil {
		t.Fatalf("NewGridFromCodes() error = %v", err)
	}
	if g.Rows() != 3 || g.Cols() != 3 {
		t.Errorf("size = %dx%d, expected 3x3", g.Rows(), g.Cols())
	}
	if got := g.At(P(1, 1)); got != Monster(DirRight, false) {
		t.Errorf("At(1,1) = %v, expected Monster{Right}", got)
	}
	if !g.Enclosed() {
		t.Error("Grid should be enclosed")
	}
}

func TestNewGridFromCodesErrors(t *testing.T) {
	tests := []struct {
		name  string
		codes [][]int
	}{
		{"empty", nil},
		{"empty row", [][]int{{}}},
		{"ragged", [][]int{{1, 1, 1}, {1, 0}}},
		{"unknown code", [][]int{{1, 1, 1}, {1, 9, 1}, {1, 1, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewGridFromCodes(tt.codes); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestGridOutOfBoundsPanics(t *testing.T) {
	g := NewGrid(3, 4)

	for _, p := range []Pos{P(-1, 0), P(0, -1), P(3, 0), P(0, 4)} {
		func() {
			defer func() {
				r := recover()
				if r == nil {
					t.Errorf("At(%v) should panic", p)
					return
				}
				err, ok := r.(error)
				var be *BoundsError
				if !ok || !errors.As(err, &be) {
					t.Errorf("At(%v) panicked with %v, expected *BoundsError", p, r)
				}
			}()
			g.At(p)
		}()
	}
}

func TestGridEnclosed(t *testing.T) {
	g, _ := NewGridFromCodes([][]int{
		{1, 1, 1, 1},
		{1, 0, 0, 1},
		{1, 0, 0, 2},
		{1, 1, 1, 1},
	})
	if g.Enclosed() {
		t.Error("Grid with a stone on the border should not be enclosed")
	}
	if !g.IsBorder(P(2, 3)) || g.IsBorder(P(1, 1)) {
		t.Error("IsBorder misclassified a position")
	}

	g.Set(P(2, 3), Unbreakable())
	if !g.Enclosed() {
		t.Error("Grid should be enclosed after fixing the border")
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid(3, 3)
	c := g.Clone()
	if !g.Equal(c) {
		t.Fatal("Clone should equal the original")
	}

	c.Set(P(1, 1), Stone())
	if g.At(P(1, 1)) != Air() {
		t.Error("Modifying the clone changed the original")
	}
	if g.Equal(c) {
		t.Error("Grids should differ after modification")
	}
	if g.Count(KindAir) != 9 || c.Count(KindStone) != 1 {
		t.Error("Count returned wrong totals")
	}
}

func TestGridString(t *testing.T) {
	g, _ := NewGridFromCodes([][]int{
		{1, 1, 1},
		{1, 14, 1},
		{1, 1, 1},
	})
	expected := " 1  1  1\n 1 14  1\n 1  1  1"
	if got := g.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestCommandQueueLIFO(t *testing.T) {
	var q CommandQueue
	q.Push(CmdMoveUp)
	q.Push(CmdMoveLeft)
	q.Push(CmdPlaceBomb)

	if q.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", q.Len())
	}

	expected := []Command{CmdPlaceBomb, CmdMoveLeft, CmdMoveUp}
	for _, want := range expected {
		got, ok := q.Pop()
		if !ok || got != want {
			t.Errorf("Pop() = %v, %v, expected %v, true", got, ok, want)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Error("Pop() on empty queue should return false")
	}

	q.Push(CmdMoveDown)
	q.Clear()
	if q.Len() != 0 {
		t.Error("Clear() should empty the queue")
	}
}
