package datamap

import (
	"fmt"
)

// Grid holds the cells of one data map in row-major order: rows are
// constant-Y bands ordered by increasing Y, and cells within a row are
// ordered by increasing X.
type Grid struct {
	NumX int // cells per row
	NumY int // number of rows

	Cells []Cell // len = NumX * NumY
}

// Idx converts (row, col) to an index into Cells.
func (g *Grid) Idx(row, col int) int { return row*g.NumX + col }

// At returns a pointer to the cell at (row, col).
func (g *Grid) At(row, col int) *Cell { return &g.Cells[g.Idx(row, col)] }

// IsEmpty reports whether the grid holds no cells. Cut with an inverted
// range produces an empty grid rather than an error.
func (g *Grid) IsEmpty() bool { return len(g.Cells) == 0 }

// FromSamples arranges a flat sequence of reader samples into a grid.
//
// The canonical raster order has Y varying fastest: the sequence opens
// with a full column of cells sharing one X coordinate. The transposed
// order (X varying fastest) is detected from a leading run of equal Y
// and handled by transposed indexing, so both reader variants load into
// the same row-major layout. Sequences where neither coordinate repeats
// at the start, or whose length is not divisible by the detected run
// length, fail with ErrMalformedGrid.
func FromSamples(samples []Cell) (*Grid, error) {
	total := len(samples)
	switch total {
	case 0:
		return nil, fmt.Errorf("empty sample sequence: %w", ErrMalformedGrid)
	case 1:
		return &Grid{NumX: 1, NumY: 1, Cells: []Cell{samples[0]}}, nil
	}

	switch {
	case samples[1].X == samples[0].X:
		// Y varies fastest: count the leading run of equal X.
		run := 1
		for run < total && samples[run].X == samples[0].X {
			run++
		}
		if total%run != 0 {
			return nil, fmt.Errorf("%d samples with column length %d: %w", total, run, ErrMalformedGrid)
		}
		ny := run
		nx := total / ny
		g := &Grid{NumX: nx, NumY: ny, Cells: make([]Cell, total)}
		for c := 0; c < nx; c++ {
			for r := 0; r < ny; r++ {
				g.Cells[g.Idx(r, c)] = samples[c*ny+r]
			}
		}
		return g, nil

	case samples[1].Y == samples[0].Y:
		// X varies fastest: rows arrive whole, in order.
		run := 1
		for run < total && samples[run].Y == samples[0].Y {
			run++
		}
		if total%run != 0 {
			return nil, fmt.Errorf("%d samples with row length %d: %w", total, run, ErrMalformedGrid)
		}
		nx := run
		g := &Grid{NumX: nx, NumY: total / nx, Cells: make([]Cell, total)}
		copy(g.Cells, samples)
		return g, nil
	}

	return nil, fmt.Errorf("raster order not recognised: %w", ErrMalformedGrid)
}

// Flatten returns the cells in the canonical reader order (Y varying
// fastest). FromSamples(g.Flatten()) reconstructs an identical grid.
func (g *Grid) Flatten() []Cell {
	out := make([]Cell, 0, len(g.Cells))
	for c := 0; c < g.NumX; c++ {
		for r := 0; r < g.NumY; r++ {
			out = append(out, g.Cells[g.Idx(r, c)])
		}
	}
	return out
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{NumX: g.NumX, NumY: g.NumY, Cells: cells}
}

// Row returns the cells of row i in increasing-X order. The slice
// aliases the grid's backing store; treat it as read-only.
func (g *Grid) Row(i int) []Cell {
	return g.Cells[i*g.NumX : (i+1)*g.NumX]
}

// Column returns a copy of the cells of column j in increasing-Y order.
func (g *Grid) Column(j int) []Cell {
	out := make([]Cell, g.NumY)
	for r := 0; r < g.NumY; r++ {
		out[r] = g.Cells[g.Idx(r, j)]
	}
	return out
}

// X returns the representative x position of a column.
func (g *Grid) X(col int) float64 { return g.Cells[col].X }

// Y returns the representative y position of a row.
func (g *Grid) Y(row int) float64 { return g.Cells[g.Idx(row, 0)].Y }

// CellSize returns the uniform cell dimensions, derived from the offset
// between a cell and its immediate grid neighbour along each axis.
// Fails with ErrDegenerateGrid if an axis has fewer than two cells.
func (g *Grid) CellSize() (dx, dy float64, err error) {
	if g.NumX < 2 {
		return 0, 0, fmt.Errorf("x axis has %d cells: %w", g.NumX, ErrDegenerateGrid)
	}
	if g.NumY < 2 {
		return 0, 0, fmt.Errorf("y axis has %d cells: %w", g.NumY, ErrDegenerateGrid)
	}
	dx = g.X(1) - g.X(0)
	dy = g.Y(1) - g.Y(0)
	return dx, dy, nil
}

// BoundingBox returns the extreme cell-centre coordinates of the grid.
func (g *Grid) BoundingBox() (xMin, xMax, yMin, yMax float64) {
	if g.IsEmpty() {
		return 0, 0, 0, 0
	}
	xMin, xMax = g.Cells[0].X, g.Cells[0].X
	yMin, yMax = g.Cells[0].Y, g.Cells[0].Y
	for _, c := range g.Cells[1:] {
		if c.X < xMin {
			xMin = c.X
		}
		if c.X > xMax {
			xMax = c.X
		}
		if c.Y < yMin {
			yMin = c.Y
		}
		if c.Y > yMax {
			yMax = c.Y
		}
	}
	return xMin, xMax, yMin, yMax
}
