package rshade

import (
	"fmt"
	"math"
)

// applyGate evaluates sub-reach geometry against the rejection rules, in
// order, first match wins. cw is the grid cell width, the default minimum
// effective water width.
func applyGate(sr *SubReach, cfg *Config, cw float64) QualityVerdict {
	// 1. near north–south channels: the solar sweep crosses both banks
	// through the day, so the casting roles are ambiguous
	fold := math.Mod(sr.TangentDeg, 180.)
	if fold <= cfg.NorthSouthTolDeg || fold >= 180.-cfg.NorthSouthTolDeg {
		return QualityVerdict{
			Reason: NorthSouthOrientation,
			Detail: fmt.Sprintf("tangent azimuth %.1f° within %.0f° of north-south", sr.TangentDeg, cfg.NorthSouthTolDeg),
		}
	}

	// 2. strongly curved (U-shaped) reaches have banks facing multiple
	// directions; a single shade azimuth is meaningless
	if sr.Chord <= 0. || sr.ArcLen/sr.Chord > cfg.CurvatureThresh {
		ratio := math.Inf(1)
		if sr.Chord > 0. {
			ratio = sr.ArcLen / sr.Chord
		}
		return QualityVerdict{
			Reason: ExcessiveCurvature,
			Detail: fmt.Sprintf("curvature ratio %.2f exceeds %.2f", ratio, cfg.CurvatureThresh),
		}
	}

	// 3. near-zero-width slivers, common in braided side channels
	mw := cfg.MinWidth
	if mw <= 0. {
		mw = cw
	}
	if w := ringArea(sr.Foot[0]) / sr.ArcLen; w < mw {
		return QualityVerdict{
			Reason: DegenerateGeometry,
			Detail: fmt.Sprintf("effective width %.2fm below %.2fm", w, mw),
		}
	}

	return QualityVerdict{Accepted: true}
}
