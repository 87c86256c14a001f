// Package spread measures how a droplet spreads over a substrate
// across a sequence of data-map frames: per-frame contact-line
// positions, the droplet height above the floor, and summary statistics
// around the contact line.
package spread

import (
	"fmt"

	"github.com/flowlab-data/spread.report/datamap"
)

// Params configures frame processing.
type Params struct {
	// MinMass is passed to the droplet classifier.
	MinMass float64

	// Columns is the classifier's connectivity window half-width.
	// Values below 1 fall back to the classifier default.
	Columns int

	// RequireFlow enables the classifier's activity filter. Leave off
	// for density-only maps.
	RequireFlow bool

	// Floor pins the substrate row used for contact-line extraction.
	// Negative means detect it from each frame's classified grid.
	Floor int

	// DeltaT is the time between consecutive frames in ps. Zero leaves
	// measure times at zero.
	DeltaT float64

	// Workers bounds how many frames Collect processes at once. Values
	// below 1 mean one.
	Workers int
}

// DefaultParams returns the settings used for full data maps with
// automatic floor detection.
func DefaultParams() Params {
	return Params{
		RequireFlow: true,
		Floor:       -1,
		Workers:     1,
	}
}

func (p Params) classifyParams() datamap.ClassifyParams {
	return datamap.ClassifyParams{
		MinMass:     p.MinMass,
		Columns:     p.Columns,
		RequireFlow: p.RequireFlow,
	}
}

// Measure is one frame's spreading measurement.
type Measure struct {
	Frame int
	// Time of the frame in ps, Frame·ΔT.
	Time float64
	// Left and Right are the contact-line positions on the floor row,
	// adjusted to the outer cell edges.
	Left, Right float64
	// FloorRow is the substrate row the contact line was taken on.
	FloorRow int
	// ComX and ComY are the droplet's centre of mass.
	ComX, ComY float64
	// Dist is the centre-of-mass height above the floor row.
	Dist float64
}

// Diameter returns the spread diameter, the contact-line separation.
func (m Measure) Diameter() float64 { return m.Right - m.Left }

// Radius returns half the spread diameter.
func (m Measure) Radius() float64 { return m.Diameter() / 2 }

// ProcessFrame classifies one frame's samples and measures the droplet
// on it. A pure function of its inputs: frames can be processed in any
// order or concurrently.
//
// ok is false when no droplet is found, or when the pinned floor row
// holds no droplet cells; that frame simply contributes no measurement.
func ProcessFrame(samples []datamap.Cell, frame int, p Params) (m Measure, ok bool, err error) {
	g, err := datamap.FromSamples(samples)
	if err != nil {
		return Measure{}, false, fmt.Errorf("frame %d: %w", frame, err)
	}
	g.Classify(p.classifyParams())

	floor := p.Floor
	if floor < 0 {
		floor, ok = g.Floor()
		if !ok {
			return Measure{}, false, nil
		}
	} else if floor >= g.NumY {
		return Measure{}, false, nil
	}

	left, right, ok := g.ContactLine(floor)
	if !ok {
		return Measure{}, false, nil
	}

	comX, comY := g.CenterOfMass()
	return Measure{
		Frame:    frame,
		Time:     float64(frame) * p.DeltaT,
		Left:     left,
		Right:    right,
		FloorRow: floor,
		ComX:     comX,
		ComY:     comY,
		Dist:     comY - g.Y(floor),
	}, true, nil
}
