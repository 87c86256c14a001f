package datamap

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// newTestGrid builds a grid with unit cell size and cell centres at
// half-integer coordinates, every cell initialised by fill.
func newTestGrid(numX, numY int, fill func(row, col int, cell *Cell)) *Grid {
	g := &Grid{NumX: numX, NumY: numY, Cells: make([]Cell, numX*numY)}
	for r := 0; r < numY; r++ {
		for c := 0; c < numX; c++ {
			cell := g.At(r, c)
			cell.X = float64(c) + 0.5
			cell.Y = float64(r) + 0.5
			if fill != nil {
				fill(r, c, cell)
			}
		}
	}
	return g
}

func TestFromSamplesCanonicalOrder(t *testing.T) {
	// Y varies fastest: one full column per X before X advances.
	var samples []Cell
	for c := 0; c < 4; c++ {
		for r := 0; r < 3; r++ {
			samples = append(samples, Cell{
				X: float64(c) + 0.5,
				Y: float64(r) + 0.5,
				M: float64(10*r + c),
			})
		}
	}

	g, err := FromSamples(samples)
	if err != nil {
		t.Fatalf("FromSamples: %v", err)
	}
	if g.NumX != 4 || g.NumY != 3 {
		t.Fatalf("got %dx%d grid, want 4x3", g.NumX, g.NumY)
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			if got, want := g.At(r, c).M, float64(10*r+c); got != want {
				t.Errorf("cell (%d,%d): M = %v, want %v", r, c, got, want)
			}
		}
	}
}

func TestFromSamplesTransposedOrder(t *testing.T) {
	want := newTestGrid(4, 3, func(r, c int, cell *Cell) {
		cell.M = float64(10*r + c)
	})

	// X varies fastest: whole rows arrive bottom to top. Loading must
	// give the same grid as the canonical order.
	var samples []Cell
	for r := 0; r < 3; r++ {
		samples = append(samples, want.Row(r)...)
	}

	got, err := FromSamples(samples)
	if err != nil {
		t.Fatalf("FromSamples: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("transposed load mismatch (-want +got):\n%s", diff)
	}
}

func TestFromSamplesMalformed(t *testing.T) {
	tests := []struct {
		name    string
		samples []Cell
	}{
		{"empty", nil},
		{"ragged column", []Cell{
			{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0},
		}},
		{"no repeated coordinate", []Cell{
			{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3},
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := FromSamples(tc.samples); !errors.Is(err, ErrMalformedGrid) {
				t.Errorf("FromSamples error = %v, want ErrMalformedGrid", err)
			}
		})
	}
}

func TestFromSamplesSingleCell(t *testing.T) {
	g, err := FromSamples([]Cell{{X: 1, Y: 2, M: 3}})
	if err != nil {
		t.Fatalf("FromSamples: %v", err)
	}
	if g.NumX != 1 || g.NumY != 1 || g.At(0, 0).M != 3 {
		t.Errorf("got %dx%d grid with M=%v, want 1x1 with M=3", g.NumX, g.NumY, g.At(0, 0).M)
	}
}

func TestFlattenRoundTrip(t *testing.T) {
	want := newTestGrid(5, 4, func(r, c int, cell *Cell) {
		cell.N = r*5 + c
		cell.M = float64(r + c)
		cell.U = float64(c)
		cell.Droplet = (r+c)%2 == 0
	})

	got, err := FromSamples(want.Flatten())
	if err != nil {
		t.Fatalf("FromSamples: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestCellSize(t *testing.T) {
	g := newTestGrid(4, 3, nil)
	dx, dy, err := g.CellSize()
	if err != nil {
		t.Fatalf("CellSize: %v", err)
	}
	if dx != 1 || dy != 1 {
		t.Errorf("got cell size (%v, %v), want (1, 1)", dx, dy)
	}
}

func TestCellSizeDegenerate(t *testing.T) {
	g := newTestGrid(4, 1, nil)
	if _, _, err := g.CellSize(); !errors.Is(err, ErrDegenerateGrid) {
		t.Errorf("CellSize error = %v, want ErrDegenerateGrid", err)
	}
}

func TestAccessors(t *testing.T) {
	g := newTestGrid(4, 3, func(r, c int, cell *Cell) {
		cell.N = r*4 + c
	})

	if got := g.X(2); got != 2.5 {
		t.Errorf("X(2) = %v, want 2.5", got)
	}
	if got := g.Y(1); got != 1.5 {
		t.Errorf("Y(1) = %v, want 1.5", got)
	}

	row := g.Row(1)
	if len(row) != 4 || row[0].N != 4 || row[3].N != 7 {
		t.Errorf("Row(1) = %+v, want N running 4..7", row)
	}
	col := g.Column(2)
	if len(col) != 3 || col[0].N != 2 || col[2].N != 10 {
		t.Errorf("Column(2) = %+v, want N 2, 6, 10", col)
	}
}

func TestBoundingBox(t *testing.T) {
	g := newTestGrid(4, 3, nil)
	xMin, xMax, yMin, yMax := g.BoundingBox()
	if xMin != 0.5 || xMax != 3.5 || yMin != 0.5 || yMax != 2.5 {
		t.Errorf("BoundingBox = (%v, %v, %v, %v), want (0.5, 3.5, 0.5, 2.5)",
			xMin, xMax, yMin, yMax)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := newTestGrid(2, 2, func(r, c int, cell *Cell) { cell.M = 1 })
	clone := g.Clone()
	clone.At(0, 0).M = 99
	if g.At(0, 0).M != 1 {
		t.Errorf("mutating the clone changed the source: M = %v", g.At(0, 0).M)
	}
}
