package datamap

import (
	"fmt"
	"math"
)

// Range is a closed interval along one axis, in system coordinates.
type Range struct {
	Min, Max float64
}

// Contains reports whether v lies inside the interval.
func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// clamp restricts the interval to [lo, hi].
func (r Range) clamp(lo, hi float64) Range {
	return Range{Min: math.Max(r.Min, lo), Max: math.Min(r.Max, hi)}
}

// cutSpan maps a coordinate interval onto cell indices along one axis.
// Only cells lying entirely inside the interval are kept: the bounds
// are pulled in by half a cell before rounding.
func cutSpan(r Range, origin, delta float64, n int) (lo, hi int) {
	lo = int(math.Ceil((r.Min-origin)/delta + 0.5))
	hi = int(math.Floor((r.Max-origin)/delta - 0.5))
	return max(lo, 0), min(hi, n-1)
}

// Cut returns a new grid restricted to the cells whose full extent lies
// inside both coordinate ranges. With clampToBounds the ranges are
// first restricted to the grid's own bounding box. A selection that
// excludes every cell yields an empty grid, not an error; callers check
// IsEmpty. The receiver is unchanged.
func (g *Grid) Cut(xlim, ylim Range, clampToBounds bool) (*Grid, error) {
	dx, dy, err := g.CellSize()
	if err != nil {
		return nil, fmt.Errorf("cut: %w", err)
	}
	if clampToBounds {
		xMin, xMax, yMin, yMax := g.BoundingBox()
		xlim = xlim.clamp(xMin, xMax)
		ylim = ylim.clamp(yMin, yMax)
	}

	c0, c1 := cutSpan(xlim, g.X(0), dx, g.NumX)
	r0, r1 := cutSpan(ylim, g.Y(0), dy, g.NumY)
	return g.CutIndex(c0, c1, r0, r1), nil
}

// CutIndex returns a new grid covering the inclusive column range
// [minCol, maxCol] and row range [minRow, maxRow]. Indices outside the
// grid are clamped; an inverted range yields an empty grid. The
// receiver is unchanged.
func (g *Grid) CutIndex(minCol, maxCol, minRow, maxRow int) *Grid {
	c0, c1 := max(minCol, 0), min(maxCol, g.NumX-1)
	r0, r1 := max(minRow, 0), min(maxRow, g.NumY-1)
	if c1 < c0 || r1 < r0 {
		return &Grid{}
	}

	out := &Grid{
		NumX:  c1 - c0 + 1,
		NumY:  r1 - r0 + 1,
		Cells: make([]Cell, (c1-c0+1)*(r1-r0+1)),
	}
	for r := r0; r <= r1; r++ {
		copy(out.Cells[(r-r0)*out.NumX:], g.Cells[g.Idx(r, c0):g.Idx(r, c1)+1])
	}
	return out
}
