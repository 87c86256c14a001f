package datamap

import (
	"fmt"
	"math"

	"github.com/flowlab-data/spread.report/units"
)

// DefaultDeriveHalfWidth is the central-difference stencil reach in
// cells.
const DefaultDeriveHalfWidth = 1

// DeriveParams controls the velocity-gradient stencils.
type DeriveParams struct {
	// HalfWidth is the reach of the central-difference stencil in
	// cells. Values below 1 fall back to DefaultDeriveHalfWidth.
	HalfWidth int
	// MassFlow weights the differenced velocities by the stencil
	// cell masses, damping gradients against near-empty cells.
	MassFlow bool
}

// DefaultDeriveParams returns the stencil settings used when callers
// have no reason to deviate.
func DefaultDeriveParams() DeriveParams {
	return DeriveParams{HalfWidth: DefaultDeriveHalfWidth}
}

// velocity gradient components at one cell
type gradient struct {
	dudx, dudy, dvdx, dvdy float64
}

// diff takes a central difference of a velocity component across the
// stencil. The result is zero when either end of the stencil falls off
// the grid or outside the droplet, or when the mass weighting has no
// mass to weight by.
func (g *Grid) diff(row, col, dr, dc, halfWidth int, delta float64, comp func(*Cell) float64, massFlow bool) float64 {
	rp, cp := row+dr*halfWidth, col+dc*halfWidth
	rm, cm := row-dr*halfWidth, col-dc*halfWidth
	if rp < 0 || rp >= g.NumY || rm < 0 || rm >= g.NumY ||
		cp < 0 || cp >= g.NumX || cm < 0 || cm >= g.NumX {
		return 0
	}
	plus := &g.Cells[g.Idx(rp, cp)]
	minus := &g.Cells[g.Idx(rm, cm)]
	if !plus.Droplet || !minus.Droplet {
		return 0
	}
	if massFlow {
		if plus.M+minus.M == 0 {
			return 0
		}
		return (plus.M*comp(plus) - minus.M*comp(minus)) /
			((plus.M + minus.M) * float64(halfWidth) * delta)
	}
	return (comp(plus) - comp(minus)) / (2 * float64(halfWidth) * delta)
}

func (g *Grid) gradientAt(row, col int, p DeriveParams, dx, dy float64) gradient {
	u := func(c *Cell) float64 { return c.U }
	v := func(c *Cell) float64 { return c.V }
	return gradient{
		dudx: g.diff(row, col, 0, 1, p.HalfWidth, dx, u, p.MassFlow),
		dudy: g.diff(row, col, 1, 0, p.HalfWidth, dy, u, p.MassFlow),
		dvdx: g.diff(row, col, 0, 1, p.HalfWidth, dx, v, p.MassFlow),
		dvdy: g.diff(row, col, 1, 0, p.HalfWidth, dy, v, p.MassFlow),
	}
}

// shearRate collapses a velocity gradient to the scalar strain rate of
// an incompressible planar flow.
func (grad gradient) shearRate() float64 {
	div := grad.dudx + grad.dvdy
	s := 2*grad.dudx*grad.dudx + 2*grad.dvdy*grad.dvdy -
		(2.0/3.0)*div*div +
		(grad.dudy+grad.dvdx)*(grad.dudy+grad.dvdx)
	if s <= 0 {
		return 0
	}
	return math.Sqrt(s)
}

// ComputeShear fills the Shear field of every droplet cell with the
// local scalar strain rate. Cells outside the droplet, and droplet
// cells whose stencil reaches off the grid or out of the droplet, get
// zero rather than an extrapolated value.
func (g *Grid) ComputeShear(p DeriveParams) error {
	if p.HalfWidth < 1 {
		p.HalfWidth = DefaultDeriveHalfWidth
	}
	dx, dy, err := g.CellSize()
	if err != nil {
		return fmt.Errorf("compute shear: %w", err)
	}

	for r := 0; r < g.NumY; r++ {
		for c := 0; c < g.NumX; c++ {
			cell := &g.Cells[g.Idx(r, c)]
			if !cell.Droplet {
				cell.Shear = 0
				continue
			}
			cell.Shear = g.gradientAt(r, c, p, dx, dy).shearRate()
		}
	}
	return nil
}

// DefaultViscosityPaS is the fallback dynamic viscosity, water near
// room temperature.
const DefaultViscosityPaS = 0.642e-3

// DissipationParams configures the viscous dissipation estimate.
type DissipationParams struct {
	// Stencil settings for the underlying shear computation.
	Stencil DeriveParams

	// Viscosity is the dynamic viscosity in Pa·s. It is converted to
	// MD units internally. Zero falls back to DefaultViscosityPaS.
	Viscosity float64

	// Width is the system depth along the unsampled axis in nm,
	// completing the cell volume. Zero or negative means 1.
	Width float64

	// DeltaT is the time step the dissipated energy accumulates over,
	// in ps. Zero or negative means 1.
	DeltaT float64
}

// DefaultDissipationParams returns the dissipation settings used when
// callers have no measured values of their own.
func DefaultDissipationParams() DissipationParams {
	return DissipationParams{
		Stencil:   DefaultDeriveParams(),
		Viscosity: DefaultViscosityPaS,
		Width:     1,
		DeltaT:    1,
	}
}

// ComputeViscousDissipation fills the ViscDissipation field of every
// cell with the energy dissipated in it over one time step: the squared
// strain rate times the unit-converted viscosity, the cell volume
// (Δx·Δy·width) and Δt. Returns the grid total in kJ/mol. Shear is
// recomputed with the stencil settings first.
func (g *Grid) ComputeViscousDissipation(p DissipationParams) (float64, error) {
	if p.Viscosity == 0 {
		p.Viscosity = DefaultViscosityPaS
	}
	if p.Width <= 0 {
		p.Width = 1
	}
	if p.DeltaT <= 0 {
		p.DeltaT = 1
	}

	if err := g.ComputeShear(p.Stencil); err != nil {
		return 0, err
	}
	dx, dy, err := g.CellSize()
	if err != nil {
		return 0, fmt.Errorf("compute dissipation: %w", err)
	}

	scale := units.ViscosityToMD(p.Viscosity) * dx * dy * p.Width * p.DeltaT
	var total float64
	for i := range g.Cells {
		cell := &g.Cells[i]
		cell.ViscDissipation = scale * cell.Shear * cell.Shear
		total += cell.ViscDissipation
	}
	return total, nil
}
