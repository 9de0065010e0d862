package rshade

// EvaluateSerial runs the pipeline over every sub-reach in order, no
// concurrency. Results are identical to Evaluate: each sub-reach depends
// only on its own geometry and the read-only shared grids.
func (d *Domain) EvaluateSerial(cfg *Config, rtr *Router) ([]*SubReach, error) {
	if err := d.checkPrerun(); err != nil {
		return nil, err
	}
	pol, tf := policyFromConfig(cfg), BeersLaw(cfg.ExtinctionCoef)

	srs, faults := d.Segment(cfg)
	for _, f := range faults {
		rtr.fault(f.ID, f.Foot, SegmentationFault, f.Detail)
	}
	for _, sr := range srs {
		d.process(sr, cfg, pol, tf, rtr)
	}
	return srs, nil
}
