package datamap

// DefaultDropletColumns is the default half-width, in columns, of the
// window searched by the connectivity filter.
const DefaultDropletColumns = 1

// ClassifyParams configures the droplet classification passes.
type ClassifyParams struct {
	// MinMass is the threshold for the mass filter. Cells with M below
	// it are rejected; cells with exactly zero mass are always rejected
	// regardless of the threshold sign, so later weighted averages never
	// divide by zero.
	MinMass float64

	// Columns is the half-width of the connectivity window: how many
	// columns on each side of a cell are searched for support in the
	// adjacent rows. Values below 1 fall back to DefaultDropletColumns.
	// Widening the window keeps more of the precursor film attached;
	// consider how the droplet spreads on the substrate before raising it.
	Columns int

	// RequireFlow enables the activity filter, which rejects cells whose
	// U and V are both exactly zero. Density-only maps carry no flow
	// data and should leave this off.
	RequireFlow bool
}

// DefaultClassifyParams returns the classification settings used for
// full data maps.
func DefaultClassifyParams() ClassifyParams {
	return ClassifyParams{
		Columns:     DefaultDropletColumns,
		RequireFlow: true,
	}
}

// Classify marks every cell as droplet or not by running three
// sequential filter passes: activity (optional), mass threshold, and
// connectivity pruning. Each pass can only downgrade a cell from
// droplet to non-droplet, never promote one back, so the surviving set
// narrows monotonically. Flags are recomputed wholesale on every call;
// classifying twice with the same parameters yields identical flags.
//
// A grid with no surviving cells is a valid outcome, not an error:
// interface extraction reports it as "no droplet present".
func (g *Grid) Classify(p ClassifyParams) {
	for i := range g.Cells {
		g.Cells[i].Droplet = true
	}
	if p.RequireFlow {
		g.filterFlow()
	}
	g.filterMinMass(p.MinMass)
	g.filterConnected(p.Columns)
}

// filterFlow rejects cells with no recorded mass flow at all. A bin the
// sampler never saw an atom cross has exactly zero in both components.
func (g *Grid) filterFlow() {
	for i := range g.Cells {
		c := &g.Cells[i]
		if c.U == 0 && c.V == 0 {
			c.Droplet = false
		}
	}
}

func (g *Grid) filterMinMass(minMass float64) {
	for i := range g.Cells {
		c := &g.Cells[i]
		if c.M == 0 || c.M < minMass {
			c.Droplet = false
		}
	}
}

// filterConnected prunes cells that are not supported by the rows
// around them: stray cells and the thin precursor film running ahead of
// the contact line. A cell is confirmed if some cell within the column
// window of an adjacent row is still droplet, and that candidate in
// turn has droplet support within its own window two rows out. The
// two-hop lookahead rejects fingers that touch only one neighbouring
// row. Directions that leave the grid never disconfirm: a single-row
// strip has no adjacent rows and passes through unchanged.
//
// The pass reads the flags left by the mass filter from a snapshot, so
// the evaluation order across cells does not matter.
func (g *Grid) filterConnected(columns int) {
	if columns < 1 {
		columns = DefaultDropletColumns
	}
	if g.NumY < 2 {
		return
	}

	flags := make([]bool, len(g.Cells))
	for i := range g.Cells {
		flags[i] = g.Cells[i].Droplet
	}

	for r := 0; r < g.NumY; r++ {
		for c := 0; c < g.NumX; c++ {
			if !flags[g.Idx(r, c)] {
				continue
			}
			if !g.connected(flags, r, c, columns) {
				g.Cells[g.Idx(r, c)].Droplet = false
			}
		}
	}
}

// connected reports whether the cell at (r, c) has two-hop droplet
// support above or below, searching w columns to each side.
func (g *Grid) connected(flags []bool, r, c, w int) bool {
	for _, dir := range [2]int{1, -1} {
		ra := r + dir
		if ra < 0 || ra >= g.NumY {
			continue
		}
		for cc := max(0, c-w); cc <= min(g.NumX-1, c+w); cc++ {
			if !flags[g.Idx(ra, cc)] {
				continue
			}
			raa := r + 2*dir
			if raa < 0 || raa >= g.NumY {
				// Second hop leaves the grid; an unavailable row
				// never disconfirms.
				return true
			}
			for cc2 := max(0, cc-w); cc2 <= min(g.NumX-1, cc+w); cc2++ {
				if flags[g.Idx(raa, cc2)] {
					return true
				}
			}
		}
	}
	return false
}
