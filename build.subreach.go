package rshade

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"gonum.org/v1/gonum/stat"
)

// Segment walks the centerline in steps of cfg.SubReachLength, cutting the
// inundated polygon with cross-channel half-planes at each step. The final
// sub-reach may be shorter than L. Windows with degenerate local topology
// (empty clip, self-intersecting centerline slice, locally multi-part
// footprint) are returned as faults; they never abort the walk.
func (d *Domain) Segment(cfg *Config) ([]*SubReach, []*SegFault) {
	ch := chainage(d.Cntr)
	tl := ch[len(ch)-1]
	var srs []*SubReach
	var faults []*SegFault

	id := 0
	for s0 := 0.; s0 < tl-1e-9; s0 += cfg.SubReachLength {
		s1 := math.Min(s0+cfg.SubReachLength, tl)
		sl := slicePolyline(d.Cntr, ch, s0, s1)
		t0x, t0y := tangentAt(d.Cntr, ch, s0+1e-9)
		t1x, t1y := tangentAt(d.Cntr, ch, s1-1e-9)
		p0, p1 := sl[0], sl[len(sl)-1]

		// cross-channel cuts: keep downstream of the upstream cut, upstream
		// of the downstream cut
		r := clipRing(d.Riv[0], p0, t0x, t0y)
		r = clipRing(r, p1, -t1x, -t1y)
		foot := orb.Polygon{r}

		fault := func(detail string) {
			if len(r) < 3 {
				foot = windowQuad(p0, p1, cfg.SubReachLength)
			}
			faults = append(faults, &SegFault{ID: id, Foot: foot, Detail: detail})
		}

		mid := pointAt(d.Cntr, ch, (s0+s1)/2.)
		switch {
		case len(r) < 3 || ringArea(r) == 0.:
			fault("empty footprint at window")
		case selfIntersects(sl):
			fault("centerline self-intersection at window")
		case !planar.RingContains(r, mid),
			ringBridged(r, p0, t0x, t0y),
			ringBridged(r, p1, -t1x, -t1y):
			fault("footprint not simply connected at window")
		default:
			srs = append(srs, &SubReach{
				ID:         id,
				Foot:       foot,
				Cntr:       sl,
				LBank:      clipBank(d.LBank, p0, t0x, t0y, p1, t1x, t1y),
				RBank:      clipBank(d.RBank, p0, t0x, t0y, p1, t1x, t1y),
				TangentDeg: meanTangentDeg(sl),
				ArcLen:     s1 - s0,
				Chord:      planar.Distance(p0, p1),
			})
		}
		id++
	}
	return srs, faults
}

// clipBank restricts a bank polyline to the slab between the two
// cross-channel cuts.
func clipBank(bank orb.LineString, p0 orb.Point, t0x, t0y float64, p1 orb.Point, t1x, t1y float64) orb.LineString {
	b := clipLine(bank, p0, t0x, t0y)
	if b == nil {
		return nil
	}
	return clipLine(b, p1, -t1x, -t1y)
}

// meanTangentDeg is the length-weighted circular-mean azimuth of a
// polyline's segments, folded to [0,360).
func meanTangentDeg(ln orb.LineString) float64 {
	n := len(ln) - 1
	if n < 1 {
		return 0.
	}
	az, w := make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		dx, dy := ln[i+1][0]-ln[i][0], ln[i+1][1]-ln[i][1]
		az[i] = math.Atan2(dx, dy)
		w[i] = math.Hypot(dx, dy)
	}
	a := stat.CircularMean(az, w) * 180. / math.Pi
	if a < 0. {
		a += 360.
	}
	return a
}

// windowQuad builds a reporting polygon for a window whose clip came up
// empty, so the error sink still receives a geometry.
func windowQuad(p0, p1 orb.Point, w float64) orb.Polygon {
	dx, dy := p1[0]-p0[0], p1[1]-p0[1]
	d := math.Hypot(dx, dy)
	if d == 0. {
		d, dx, dy = 1., 0., 1.
	}
	nx, ny := -dy/d*w/2., dx/d*w/2.
	return orb.Polygon{orb.Ring{
		{p0[0] + nx, p0[1] + ny},
		{p1[0] + nx, p1[1] + ny},
		{p1[0] - nx, p1[1] - ny},
		{p0[0] - nx, p0[1] - ny},
		{p0[0] + nx, p0[1] + ny},
	}}
}

func (sr *SubReach) String() string {
	return fmt.Sprintf("subreach %d: az %.0f°, arc %.0fm, chord %.0fm", sr.ID, sr.TangentDeg, sr.ArcLen, sr.Chord)
}
