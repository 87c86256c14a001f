package spread

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowlab-data/spread.report/datamap"
)

func statsGrid() *datamap.Grid {
	g := &datamap.Grid{NumX: 6, NumY: 1, Cells: make([]datamap.Cell, 6)}
	temps := []float64{0, 1, 2, 3, 4, 0}
	for c := 0; c < 6; c++ {
		cell := g.At(0, c)
		cell.X = float64(c) + 0.5
		cell.Y = 0.5
		cell.T = temps[c]
		cell.Droplet = c >= 1 && c <= 4
	}
	return g
}

func TestContactLineStats(t *testing.T) {
	g := statsGrid()
	temp := func(cell *datamap.Cell) float64 { return cell.T }

	// Two cells in from each edge covers all four droplet cells:
	// temperatures 1..4.
	s, ok := ContactLineStats(g, 0, 2, temp)
	require.True(t, ok)

	assert.Equal(t, 4, s.Count)
	assert.InDelta(t, 2.5, s.Mean, 1e-12)
	wantStd := math.Sqrt(5.0 / 3.0)
	assert.InDelta(t, wantStd, s.StdDev, 1e-12)
	assert.InDelta(t, wantStd/2, s.StdErr, 1e-12)
}

func TestContactLineStatsWindows(t *testing.T) {
	g := statsGrid()
	temp := func(cell *datamap.Cell) float64 { return cell.T }

	// One cell per edge: just the boundary cells, temperatures 1 and 4.
	s, ok := ContactLineStats(g, 0, 1, temp)
	require.True(t, ok)
	assert.Equal(t, 2, s.Count)
	assert.InDelta(t, 2.5, s.Mean, 1e-12)

	// Oversized windows overlap without double counting.
	wide, ok := ContactLineStats(g, 0, 100, temp)
	require.True(t, ok)
	assert.Equal(t, 4, wide.Count)
}

func TestContactLineStatsEmptyRow(t *testing.T) {
	g := &datamap.Grid{NumX: 4, NumY: 1, Cells: make([]datamap.Cell, 4)}
	if _, ok := ContactLineStats(g, 0, 1, func(cell *datamap.Cell) float64 { return cell.T }); ok {
		t.Error("stats reported for a row with no droplet cells")
	}
	if _, ok := ContactLineStats(g, 5, 1, func(cell *datamap.Cell) float64 { return cell.T }); ok {
		t.Error("stats reported for a row outside the grid")
	}
}
