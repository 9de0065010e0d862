package rshade

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"gonum.org/v1/gonum/stat"
)

// ShadePolicy decides which bank casts shade onto a sub-reach's water
// surface. Policies never reject; the quality gate decides what to trust.
type ShadePolicy interface {
	Resolve(sr *SubReach, d *Domain, cfg *Config) BankSide
}

// CanopyHeightPolicy designates the bank with the greater mean canopy
// height within the bank buffer as the shading bank. The default when no
// solar/aspect data are supplied.
type CanopyHeightPolicy struct{}

func (CanopyHeightPolicy) Resolve(sr *SubReach, d *Domain, cfg *Config) BankSide {
	lm, ln := bankMeanVeg(d, sr.LBank, cfg)
	rm, rn := bankMeanVeg(d, sr.RBank, cfg)
	switch {
	case ln == 0 && rn == 0:
		return Left // degenerate either way; estimator will route it
	case rn == 0:
		return Left
	case ln == 0:
		return Right
	case lm >= rm:
		return Left
	}
	return Right
}

// AspectPolicy derives the casting bank from a shade-aspect raster: the
// dominant integer aspect within the footprint gives the direction the
// shadow faces; the shade source is its reversal, and the bank on that
// side of the channel casts the shade. Falls back to the canopy-height
// heuristic where the aspect grid has no coverage.
type AspectPolicy struct{}

func (AspectPolicy) Resolve(sr *SubReach, d *Domain, cfg *Config) BankSide {
	counts := make(map[int]int)
	forFootprintCells(d, sr.Foot, func(c int, _ orb.Point) {
		if v, ok := d.Asp[c]; ok && v != d.Nodata {
			counts[int(v)]++
		}
	})
	if len(counts) == 0 {
		return CanopyHeightPolicy{}.Resolve(sr, d, cfg)
	}
	mode, n := 0, -1
	for a, cnt := range counts {
		if cnt > n || (cnt == n && a < mode) {
			mode, n = a, cnt
		}
	}
	src := math.Mod(float64(mode)-180.+360., 360.) // shadow faces away from its source

	// side of the channel the source lies on, relative to downstream flow
	rel := math.Mod(src-sr.TangentDeg+360., 360.)
	if rel >= 180. {
		return Left
	}
	return Right
}

// resolveShade computes the shade assignment for a sub-reach: the shading
// bank per the policy, and the bank→water perpendicular snapped to the
// nearest compass heading. Always well-defined, even for degenerate
// geometry.
func (d *Domain) resolveShade(sr *SubReach, pol ShadePolicy, cfg *Config) ShadeAssignment {
	side := pol.Resolve(sr, d, cfg)
	perp := sr.TangentDeg - 90. // from the right bank toward the water
	if side == Left {
		perp = sr.TangentDeg + 90.
	}
	perp = math.Mod(perp+360., 360.)
	return ShadeAssignment{Bank: side, AzimuthDeg: compassSnap(perp), PerpDeg: perp}
}

// bankMeanVeg samples canopy height at cells whose centroid falls within
// the bank buffer but outside the water surface.
func bankMeanVeg(d *Domain, bank orb.LineString, cfg *Config) (float64, int) {
	smpl := d.sampleBuffer(bank, cfg.BankBufferWidth, d.Veg)
	if len(smpl) == 0 {
		return 0., 0
	}
	return stat.Mean(smpl, nil), len(smpl)
}

// sampleBuffer collects valid values of grid g at active cells within dist
// of the polyline and outside the inundated polygon (the buffer is the
// riparian zone, not the channel itself).
func (d *Domain) sampleBuffer(ln orb.LineString, dist float64, g map[int]float64) []float64 {
	if len(ln) < 2 {
		return nil
	}
	b := ln.Bound()
	var smpl []float64
	for _, c := range d.GD.Sactives {
		xy := d.GD.Coord[c]
		if xy.X < b.Min[0]-dist || xy.X > b.Max[0]+dist || xy.Y < b.Min[1]-dist || xy.Y > b.Max[1]+dist {
			continue
		}
		v, ok := g[c]
		if !ok || v == d.Nodata || v < 0. {
			continue
		}
		p := orb.Point{xy.X, xy.Y}
		if distToPolyline(ln, p) > dist {
			continue
		}
		if planar.PolygonContains(d.Riv, p) {
			continue
		}
		smpl = append(smpl, v)
	}
	return smpl
}

// forFootprintCells visits every active cell whose centroid lies within the
// footprint polygon.
func forFootprintCells(d *Domain, foot orb.Polygon, fn func(c int, p orb.Point)) {
	if len(foot) == 0 {
		return
	}
	b := foot.Bound()
	for _, c := range d.GD.Sactives {
		xy := d.GD.Coord[c]
		if xy.X < b.Min[0] || xy.X > b.Max[0] || xy.Y < b.Min[1] || xy.Y > b.Max[1] {
			continue
		}
		p := orb.Point{xy.X, xy.Y}
		if planar.PolygonContains(foot, p) {
			fn(c, p)
		}
	}
}
