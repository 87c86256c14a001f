package spread

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Series is an ordered spreading record over the frames where a droplet
// was present. The first measure is the impact frame.
type Series struct {
	Floor    int
	MinMass  float64
	Measures []Measure
}

// Impact returns the first measure, the moment the droplet touches the
// substrate. ok is false for an empty series.
func (s *Series) Impact() (Measure, bool) {
	if len(s.Measures) == 0 {
		return Measure{}, false
	}
	return s.Measures[0], true
}

// AlignToImpact shifts every contact-line position so the impact
// frame's centre of mass sits at x = 0, making series from different
// systems comparable. No-op on an empty series.
func (s *Series) AlignToImpact() {
	impact, ok := s.Impact()
	if !ok {
		return
	}
	for i := range s.Measures {
		s.Measures[i].Left -= impact.ComX
		s.Measures[i].Right -= impact.ComX
	}
}

// Diameters returns the spread diameter per measure.
func (s *Series) Diameters() []float64 {
	out := make([]float64, len(s.Measures))
	for i, m := range s.Measures {
		out[i] = m.Diameter()
	}
	return out
}

// Radii returns half the spread diameter per measure.
func (s *Series) Radii() []float64 {
	out := s.Diameters()
	floats.Scale(0.5, out)
	return out
}

// Times returns the frame times per measure.
func (s *Series) Times() []float64 {
	out := make([]float64, len(s.Measures))
	for i, m := range s.Measures {
		out[i] = m.Time
	}
	return out
}

// Scale multiplies all lengths in the series by factor, for unit
// conversion of a whole record at once.
func (s *Series) Scale(factor float64) {
	for i := range s.Measures {
		m := &s.Measures[i]
		m.Left *= factor
		m.Right *= factor
		m.ComX *= factor
		m.ComY *= factor
		m.Dist *= factor
	}
}

// Save writes the series in the spreading text format: three header
// lines naming the impact frame, floor row and mass threshold, a blank
// line, a column header, and one row of left/right/times/dist values
// per measure.
func (s *Series) Save(w io.Writer) error {
	impact, ok := s.Impact()
	if !ok {
		return fmt.Errorf("refusing to save an empty series")
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Impact frame: %d\n", impact.Frame)
	fmt.Fprintf(bw, "Floor: %d\n", s.Floor)
	fmt.Fprintf(bw, "Min mass: %g\n", s.MinMass)
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "%8s %8s %8s %8s\n", "left", "right", "times", "dist")
	for _, m := range s.Measures {
		fmt.Fprintf(bw, "%8.3f %8.3f %8.3f %8.3f\n", m.Left, m.Right, m.Time, m.Dist)
	}
	return bw.Flush()
}

// ReadSeries reads a series saved by Save. Frame numbers are
// reconstructed by counting up from the impact frame; centre-of-mass
// columns are not part of the format and stay zero.
func ReadSeries(r io.Reader) (*Series, error) {
	scanner := bufio.NewScanner(r)

	headerValue := func(name string) (float64, error) {
		if !scanner.Scan() {
			return 0, fmt.Errorf("missing %q header line", name)
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || !strings.HasPrefix(scanner.Text(), name) {
			return 0, fmt.Errorf("malformed %q header line %q", name, scanner.Text())
		}
		v, err := strconv.ParseFloat(fields[len(fields)-1], 64)
		if err != nil {
			return 0, fmt.Errorf("%q header: %w", name, err)
		}
		return v, nil
	}

	impact, err := headerValue("Impact frame:")
	if err != nil {
		return nil, err
	}
	impactFrame := int(impact)
	floorValue, err := headerValue("Floor:")
	if err != nil {
		return nil, err
	}
	floor := int(floorValue)
	minMass, err := headerValue("Min mass:")
	if err != nil {
		return nil, err
	}

	// Skip forward to the column header.
	found := false
	for scanner.Scan() {
		if strings.Join(strings.Fields(scanner.Text()), " ") == "left right times dist" {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("column header not found")
	}

	s := &Series{Floor: floor, MinMass: minMass}
	frame := impactFrame
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			break
		}
		if len(fields) != 4 {
			return nil, fmt.Errorf("row %q: want 4 columns", scanner.Text())
		}
		var vals [4]float64
		for i, f := range fields {
			if vals[i], err = strconv.ParseFloat(f, 64); err != nil {
				return nil, fmt.Errorf("row %q: %w", scanner.Text(), err)
			}
		}
		s.Measures = append(s.Measures, Measure{
			Frame: frame,
			Left:  vals[0],
			Right: vals[1],
			Time:  vals[2],
			Dist:  vals[3],
		})
		frame++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read series: %w", err)
	}
	return s, nil
}
