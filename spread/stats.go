package spread

import (
	"gonum.org/v1/gonum/stat"

	"github.com/flowlab-data/spread.report/datamap"
)

// Stats summarises a sampled quantity around the contact line.
type Stats struct {
	Mean   float64
	StdDev float64
	StdErr float64
	Count  int
}

// ContactLineStats samples a per-cell quantity over the numCells
// droplet cells inward of each contact-line edge on the given row and
// summarises it. The two edge windows overlap on narrow droplets; each
// cell is counted once. ok is false when the row has no droplet cells
// or too few to compute a deviation.
func ContactLineStats(g *datamap.Grid, row, numCells int, value func(*datamap.Cell) float64) (Stats, bool) {
	if numCells < 1 {
		numCells = 1
	}
	left, right, ok := edgeColumns(g, row)
	if !ok {
		return Stats{}, false
	}

	cols := make(map[int]bool)
	for c := left; c < left+numCells && c <= right; c++ {
		cols[c] = true
	}
	for c := right; c > right-numCells && c >= left; c-- {
		cols[c] = true
	}

	var samples []float64
	for c := left; c <= right; c++ {
		if !cols[c] {
			continue
		}
		cell := g.At(row, c)
		if cell.Droplet {
			samples = append(samples, value(cell))
		}
	}
	if len(samples) < 2 {
		return Stats{}, false
	}

	std := stat.StdDev(samples, nil)
	return Stats{
		Mean:   stat.Mean(samples, nil),
		StdDev: std,
		StdErr: stat.StdErr(std, float64(len(samples))),
		Count:  len(samples),
	}, true
}

// edgeColumns returns the leftmost and rightmost droplet columns of a
// row.
func edgeColumns(g *datamap.Grid, row int) (left, right int, ok bool) {
	if row < 0 || row >= g.NumY {
		return 0, 0, false
	}
	left = -1
	for c := 0; c < g.NumX; c++ {
		if g.At(row, c).Droplet {
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
