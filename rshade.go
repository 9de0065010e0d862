// Package rshade estimates how much direct sunlight reaches a river's water
// surface through overhanging riparian canopy. Per sub-reach of the
// inundated channel it resolves the direction shade is cast from, gates out
// geometry too degenerate to trust (near north–south or strongly curved
// windows), converts the shading bank's mean leaf-area index to a canopy
// light-transmissivity fraction, and rasterizes that fraction over the
// water footprint. Accepted and rejected sub-reaches are routed to separate
// sinks; no sub-reach is ever dropped.
package rshade

// process runs shade resolution, the quality gate and transmissivity
// estimation for one sub-reach, routing the outcome. Depends only on the
// sub-reach's own geometry and the read-only shared grids, so sub-reaches
// may be processed in any order and concurrently.
func (d *Domain) process(sr *SubReach, cfg *Config, pol ShadePolicy, tf TransFunc, rtr *Router) {
	sr.Shade = d.resolveShade(sr, pol, cfg)

	sr.Verdict = applyGate(sr, cfg, d.GD.Cwidth)
	if !sr.Verdict.Accepted {
		rtr.fault(sr.ID, sr.Foot, sr.Verdict.Reason, sr.Verdict.Detail)
		return
	}

	res, detail := d.estimate(sr, sr.Shade, tf, cfg)
	if res == nil {
		sr.Verdict = QualityVerdict{Reason: DegenerateGeometry, Detail: detail}
		rtr.fault(sr.ID, sr.Foot, DegenerateGeometry, detail)
		return
	}
	rtr.good(sr, res)
}

// policyFromConfig maps the configured policy name to its implementation.
func policyFromConfig(cfg *Config) ShadePolicy {
	if cfg.Policy == "aspect" {
		return AspectPolicy{}
	}
	return CanopyHeightPolicy{}
}
