package datamap

import (
	"fmt"

	"github.com/flowlab-data/spread.report/units"
)

// CenterOfMass returns the mass-weighted mean position of the droplet
// cells. A grid with no droplet mass reports (0, 0); callers that need
// to distinguish that case check ok on Floor.
func (g *Grid) CenterOfMass() (x, y float64) {
	var sumM float64
	for i := range g.Cells {
		cell := &g.Cells[i]
		if !cell.Droplet {
			continue
		}
		x += cell.M * cell.X
		y += cell.M * cell.Y
		sumM += cell.M
	}
	if sumM == 0 {
		return 0, 0
	}
	return x / sumM, y / sumM
}

// ComputeEnergy fills the Energy field of every cell with the kinetic
// energy implied by its temperature and atom count through the
// equipartition theorem.
func (g *Grid) ComputeEnergy() {
	for i := range g.Cells {
		cell := &g.Cells[i]
		cell.Energy = units.KineticEnergy(cell.N, cell.T)
	}
}

// SlipDissipation returns the kinetic energy lost to slip between the
// wetting layer (the row just above floor) and the floor row itself:
// half the difference of M·U² summed over the wetting layer's droplet
// columns. Zero when the wetting layer falls outside the grid.
func (g *Grid) SlipDissipation(floor int) float64 {
	if floor < 0 || floor+1 >= g.NumY {
		return 0
	}
	var dissipated float64
	for c := 0; c < g.NumX; c++ {
		cell := &g.Cells[g.Idx(floor+1, c)]
		if !cell.Droplet {
			continue
		}
		base := &g.Cells[g.Idx(floor, c)]
		dissipated += 0.5 * (cell.M*cell.U*cell.U - base.M*base.U*base.U)
	}
	return dissipated
}

// ShearProfile estimates the shear rate along the substrate from the
// horizontal velocity difference between the floor row and the row span
// rows above it, per column: |U_top − U_floor| / (span·Δy). Columns
// where either row lies outside the droplet are skipped. Returns the
// column positions and matching shear values; both empty when no column
// qualifies.
func (g *Grid) ShearProfile(floor, span int) (xs, shear []float64, err error) {
	if span < 1 || floor < 0 || floor+span >= g.NumY {
		return nil, nil, fmt.Errorf("rows %d and %d against %d grid rows: %w",
			floor, floor+span, g.NumY, ErrInsufficientHeight)
	}
	_, dy, err := g.CellSize()
	if err != nil {
		return nil, nil, fmt.Errorf("shear profile: %w", err)
	}

	for c := 0; c < g.NumX; c++ {
		lower := &g.Cells[g.Idx(floor, c)]
		upper := &g.Cells[g.Idx(floor+span, c)]
		if !lower.Droplet || !upper.Droplet {
			continue
		}
		du := upper.U - lower.U
		if du < 0 {
			du = -du
		}
		xs = append(xs, g.X(c))
		shear = append(shear, du/(float64(span)*dy))
	}
	return xs, shear, nil
}
