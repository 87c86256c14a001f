package datamap

import (
	"errors"
	"math"
	"testing"

	"github.com/flowlab-data/spread.report/units"
)

// shearFlowGrid returns an all-droplet grid with a uniform shear flow
// U = rate·y, whose strain rate is rate everywhere the stencil fits.
func shearFlowGrid(n int, rate float64) *Grid {
	return newTestGrid(n, n, func(r, c int, cell *Cell) {
		cell.Droplet = true
		cell.M = 2
		cell.U = rate * cell.Y
	})
}

func TestComputeShearUniformFlow(t *testing.T) {
	g := shearFlowGrid(5, 2)
	if err := g.ComputeShear(DefaultDeriveParams()); err != nil {
		t.Fatalf("ComputeShear: %v", err)
	}

	for r := 0; r < g.NumY; r++ {
		for c := 0; c < g.NumX; c++ {
			want := 2.0
			if r == 0 || r == g.NumY-1 {
				// dU/dy stencil leaves the grid: zero-filled.
				want = 0
			}
			if got := g.At(r, c).Shear; math.Abs(got-want) > 1e-12 {
				t.Errorf("cell (%d,%d): shear = %v, want %v", r, c, got, want)
			}
		}
	}
}

func TestComputeShearSkipsNonDroplet(t *testing.T) {
	g := shearFlowGrid(5, 2)
	g.At(2, 2).Droplet = false
	if err := g.ComputeShear(DefaultDeriveParams()); err != nil {
		t.Fatalf("ComputeShear: %v", err)
	}

	if got := g.At(2, 2).Shear; got != 0 {
		t.Errorf("non-droplet cell shear = %v, want 0", got)
	}
	// Vertical neighbours difference across the hole: their dU/dy
	// stencil touches a non-droplet cell and zero-fills.
	if got := g.At(1, 2).Shear; got != 0 {
		t.Errorf("cell below the hole: shear = %v, want 0", got)
	}
	if got := g.At(3, 2).Shear; got != 0 {
		t.Errorf("cell above the hole: shear = %v, want 0", got)
	}
	// A column over keeps its full stencil.
	if got := g.At(2, 0).Shear; math.Abs(got-2) > 1e-12 {
		t.Errorf("unaffected cell shear = %v, want 2", got)
	}
}

func TestComputeShearMassFlowMatchesUniformMass(t *testing.T) {
	plain := shearFlowGrid(5, 3)
	weighted := shearFlowGrid(5, 3)

	if err := plain.ComputeShear(DeriveParams{HalfWidth: 1}); err != nil {
		t.Fatalf("ComputeShear: %v", err)
	}
	if err := weighted.ComputeShear(DeriveParams{HalfWidth: 1, MassFlow: true}); err != nil {
		t.Fatalf("ComputeShear: %v", err)
	}

	for i := range plain.Cells {
		if plain.Cells[i].Shear != weighted.Cells[i].Shear {
			t.Errorf("cell %d: mass-flow shear %v differs from plain %v on a uniform-mass grid",
				i, weighted.Cells[i].Shear, plain.Cells[i].Shear)
		}
	}
}

func TestComputeShearWiderStencil(t *testing.T) {
	g := shearFlowGrid(7, 2)
	if err := g.ComputeShear(DeriveParams{HalfWidth: 2}); err != nil {
		t.Fatalf("ComputeShear: %v", err)
	}

	// Linear profile: the wider stencil measures the same gradient.
	if got := g.At(3, 3).Shear; math.Abs(got-2) > 1e-12 {
		t.Errorf("centre cell shear = %v, want 2", got)
	}
	// But zero-fill now reaches two rows in.
	if got := g.At(1, 3).Shear; got != 0 {
		t.Errorf("second row shear = %v, want 0 with half-width 2", got)
	}
}

func TestComputeShearDegenerate(t *testing.T) {
	g := newTestGrid(1, 5, nil)
	if err := g.ComputeShear(DefaultDeriveParams()); !errors.Is(err, ErrDegenerateGrid) {
		t.Errorf("ComputeShear error = %v, want ErrDegenerateGrid", err)
	}
}

func TestComputeViscousDissipation(t *testing.T) {
	g := shearFlowGrid(5, 2)
	p := DissipationParams{
		Stencil:   DefaultDeriveParams(),
		Viscosity: 1e-3, // Pa·s, converted internally
		Width:     2.5,
		DeltaT:    4,
	}
	total, err := g.ComputeViscousDissipation(p)
	if err != nil {
		t.Fatalf("ComputeViscousDissipation: %v", err)
	}

	// Rows 1..3 carry shear 2 in all five columns: 15 cells, each
	// dissipating η·S²·Δx·Δy·width·Δt.
	perCell := units.ViscosityToMD(1e-3) * 4 * 1 * 1 * 2.5 * 4
	if math.Abs(total-15*perCell) > 1e-6 {
		t.Errorf("total dissipation = %v, want %v", total, 15*perCell)
	}
	if got := g.At(2, 2).ViscDissipation; math.Abs(got-perCell) > 1e-9 {
		t.Errorf("cell dissipation = %v, want %v", got, perCell)
	}
	if got := g.At(0, 0).ViscDissipation; got != 0 {
		t.Errorf("edge cell dissipation = %v, want 0", got)
	}
}

func TestComputeViscousDissipationDefaults(t *testing.T) {
	// Zero-value params fall back to the default viscosity, unit width
	// and unit time step.
	g := shearFlowGrid(5, 2)
	total, err := g.ComputeViscousDissipation(DissipationParams{})
	if err != nil {
		t.Fatalf("ComputeViscousDissipation: %v", err)
	}

	want := 15 * units.ViscosityToMD(DefaultViscosityPaS) * 4
	if math.Abs(total-want) > 1e-6 {
		t.Errorf("total dissipation = %v, want %v", total, want)
	}
}
