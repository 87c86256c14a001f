package datamap

// Combine shrinks the grid by merging blocks of nx by ny cells into
// single cells. Block position is the mean of the member positions,
// atom count and mass are summed, temperature is atom-weighted and the
// flow velocity mass-weighted; blocks with no atoms or no mass get zero
// for the respective averages. A block is a droplet cell when any
// member is. Cells left over past the last full block along either axis
// are discarded.
//
// nx or ny below 1 is treated as 1. Combining a grid smaller than one
// block yields an empty grid.
func (g *Grid) Combine(nx, ny int) *Grid {
	nx = max(nx, 1)
	ny = max(ny, 1)

	out := &Grid{NumX: g.NumX / nx, NumY: g.NumY / ny}
	out.Cells = make([]Cell, out.NumX*out.NumY)
	if out.IsEmpty() {
		return &Grid{}
	}

	for br := 0; br < out.NumY; br++ {
		for bc := 0; bc < out.NumX; bc++ {
			var agg Cell
			var sumUM, sumVM, sumTN float64
			for r := br * ny; r < (br+1)*ny; r++ {
				for c := bc * nx; c < (bc+1)*nx; c++ {
					cell := g.Cells[g.Idx(r, c)]
					agg.X += cell.X
					agg.Y += cell.Y
					agg.N += cell.N
					agg.M += cell.M
					sumUM += cell.U * cell.M
					sumVM += cell.V * cell.M
					sumTN += cell.T * float64(cell.N)
					agg.Droplet = agg.Droplet || cell.Droplet
				}
			}

			size := float64(nx * ny)
			agg.X /= size
			agg.Y /= size
			if agg.M > 0 {
				agg.U = sumUM / agg.M
				agg.V = sumVM / agg.M
			}
			if agg.N > 0 {
				agg.T = sumTN / float64(agg.N)
			}
			out.Cells[out.Idx(br, bc)] = agg
		}
	}
	return out
}
