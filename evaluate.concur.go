package rshade

import (
	"context"
	"runtime"
	"sync"

	"github.com/gosuri/uiprogress"
)

// Evaluate segments the channel and runs the shade pipeline over every
// sub-reach with a worker pool. Segmentation faults and gate rejections go
// to the router's error sink; the run never aborts on a per-sub-reach
// fault. Cancellation is honoured between sub-reaches: outputs already
// routed stay valid, the remainder are simply not dispatched.
func (d *Domain) Evaluate(ctx context.Context, cfg *Config, rtr *Router) ([]*SubReach, error) {
	if err := d.checkPrerun(); err != nil {
		return nil, err
	}
	pol, tf := policyFromConfig(cfg), BeersLaw(cfg.ExtinctionCoef)

	srs, faults := d.Segment(cfg)
	for _, f := range faults {
		rtr.fault(f.ID, f.Foot, SegmentationFault, f.Detail)
	}

	uiprogress.Start()
	bar := uiprogress.AddBar(len(srs)).AppendCompleted().PrependElapsed()

	in := make(chan *SubReach)
	go func() {
		defer close(in)
		for _, sr := range srs {
			select {
			case <-ctx.Done():
				return
			case in <- sr:
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < runtime.GOMAXPROCS(0); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sr := range in {
				d.process(sr, cfg, pol, tf, rtr)
				bar.Incr()
			}
		}()
	}
	wg.Wait()
	uiprogress.Stop()

	return srs, ctx.Err()
}
