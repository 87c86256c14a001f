package spread

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/flowlab-data/spread.report/datamap"
	"github.com/flowlab-data/spread.report/internal/monitoring"
)

// FrameFunc loads the raw samples of one frame. Implementations
// typically wrap a mapio codec over per-frame files.
type FrameFunc func(ctx context.Context, frame int) ([]datamap.Cell, error)

// Collect processes frames 0..numFrames-1 through ProcessFrame and
// assembles the resulting measures in frame order, skipping frames with
// no droplet. Up to p.Workers frames are in flight at once; the result
// is identical to sequential processing. The first frame error cancels
// the remaining work.
//
// The series floor is the pinned row, or with automatic detection
// (p.Floor < 0) the floor found on the impact frame.
func Collect(ctx context.Context, numFrames int, load FrameFunc, p Params) (*Series, error) {
	if p.Workers < 1 {
		p.Workers = 1
	}

	type result struct {
		m  Measure
		ok bool
	}
	results := make([]result, numFrames)

	var done int
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.Workers)
	for frame := 0; frame < numFrames; frame++ {
		frame := frame
		g.Go(func() error {
			samples, err := load(ctx, frame)
			if err != nil {
				return err
			}
			m, ok, err := ProcessFrame(samples, frame, p)
			if err != nil {
				return err
			}
			results[frame] = result{m: m, ok: ok}

			mu.Lock()
			done++
			if done%100 == 0 {
				monitoring.Logf("processed %d of %d frames", done, numFrames)
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s := &Series{Floor: p.Floor, MinMass: p.MinMass}
	for _, r := range results {
		if !r.ok {
			continue
		}
		if len(s.Measures) == 0 {
			s.Floor = r.m.FloorRow
		}
		s.Measures = append(s.Measures, r.m)
	}
	return s, nil
}
