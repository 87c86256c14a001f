package datamap

import (
	"fmt"
	"math"
)

// InterfacePoint is one vertex of the droplet boundary polyline, in
// system coordinates.
type InterfacePoint struct {
	X, Y float64
}

// InterfaceIndex is one vertex of the droplet boundary polyline, as
// grid indices.
type InterfaceIndex struct {
	Col, Row int
}

// Floor returns the lowest row index containing at least one droplet
// cell. ok is false when the grid holds no droplet cells at all.
func (g *Grid) Floor() (row int, ok bool) {
	for r := 0; r < g.NumY; r++ {
		if _, _, found := g.rowEdges(r); found {
			return r, true
		}
	}
	return 0, false
}

// rowEdges returns the leftmost and rightmost droplet columns of a row.
func (g *Grid) rowEdges(row int) (left, right int, ok bool) {
	left = -1
	for c := 0; c < g.NumX; c++ {
		if g.Cells[g.Idx(row, c)].Droplet {
			if left < 0 {
				left = c
			}
			right = c
		}
	}
	if left < 0 {
		return 0, 0, false
	}
	return left, right, true
}

// boundaries returns the left and right boundary columns per occupied
// row, bottom to top. Rows without droplet cells are skipped. Both
// slices have equal length; a row with a single droplet cell
// contributes the same index to each side.
func (g *Grid) boundaries() (left, right []InterfaceIndex) {
	for r := 0; r < g.NumY; r++ {
		if l, rr, ok := g.rowEdges(r); ok {
			left = append(left, InterfaceIndex{Col: l, Row: r})
			right = append(right, InterfaceIndex{Col: rr, Row: r})
		}
	}
	return left, right
}

// InterfaceIndices returns the droplet boundary as grid indices: the
// left boundary bottom to top, then the right boundary top to bottom,
// tracing from the left contact point up over the cap and down to the
// right contact point. Empty for a grid with no droplet cells.
func (g *Grid) InterfaceIndices() []InterfaceIndex {
	left, right := g.boundaries()
	out := make([]InterfaceIndex, 0, len(left)+len(right))
	out = append(out, left...)
	for i := len(right) - 1; i >= 0; i-- {
		out = append(out, right[i])
	}
	return out
}

// Interface returns the droplet boundary polyline in system
// coordinates, ordered as for InterfaceIndices.
func (g *Grid) Interface() []InterfacePoint {
	idx := g.InterfaceIndices()
	out := make([]InterfacePoint, len(idx))
	for i, p := range idx {
		out[i] = InterfacePoint{X: g.X(p.Col), Y: g.Y(p.Row)}
	}
	return out
}

// InterfaceLength returns the summed Euclidean length of the boundary
// polyline. Zero when fewer than two boundary points exist.
func (g *Grid) InterfaceLength() float64 {
	pts := g.Interface()
	var length float64
	for i := 1; i < len(pts); i++ {
		length += math.Hypot(pts[i].X-pts[i-1].X, pts[i].Y-pts[i-1].Y)
	}
	return length
}

// ContactAngles measures the angle between each side of the droplet and
// the substrate, in degrees. For each side a straight line is fit
// through the boundary point floorOffset rows above the droplet floor
// and the boundary point numLayers rows above that; the horizontal run
// is measured from the shared mid-point anchor (the average of the two
// floor-level contact positions), so an edge leaning inward gives an
// angle below 90 degrees and an overhanging edge one above.
//
// Fails with ErrInsufficientHeight when floorOffset+numLayers reaches
// past one side's boundary points (half the interface polyline).
func (g *Grid) ContactAngles(floorOffset, numLayers int) (left, right float64, err error) {
	lb, rb := g.boundaries()
	n := len(lb)
	if numLayers < 1 || floorOffset < 0 || floorOffset+numLayers >= n {
		return 0, 0, fmt.Errorf("offset %d with %d layers against %d boundary rows: %w",
			floorOffset, numLayers, n, ErrInsufficientHeight)
	}

	base := floorOffset
	top := floorOffset + numLayers
	xl0, xr0 := g.X(lb[base].Col), g.X(rb[base].Col)
	anchor := (xl0 + xr0) / 2

	angle := func(x0, xn, y0, yn float64) float64 {
		dx := math.Abs(x0-anchor) - math.Abs(xn-anchor)
		dy := yn - y0
		return math.Acos(dx/math.Sqrt(dx*dx+dy*dy)) * 180 / math.Pi
	}

	left = angle(xl0, g.X(lb[top].Col), g.Y(lb[base].Row), g.Y(lb[top].Row))
	right = angle(xr0, g.X(rb[top].Col), g.Y(rb[base].Row), g.Y(rb[top].Row))
	return left, right, nil
}

// ContactLine returns the contact-line positions of a row, shifted from
// cell centres to the outer cell edges: the leftmost droplet cell's
// position less half a cell width, and the rightmost plus half. ok is
// false when the row has no droplet cells or the cell width is
// undefined.
func (g *Grid) ContactLine(row int) (left, right float64, ok bool) {
	l, r, ok := g.rowEdges(row)
	if !ok {
		return 0, 0, false
	}
	dx, _, err := g.CellSize()
	if err != nil {
		return 0, 0, false
	}
	return g.X(l) - dx/2, g.X(r) + dx/2, true
}
