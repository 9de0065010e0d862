package rshade

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// azimuth returns the compass bearing (degrees clockwise from north) of the
// vector (dx,dy) in a projected, north-up coordinate system.
func azimuth(dx, dy float64) float64 {
	a := math.Atan2(dx, dy) * 180. / math.Pi
	if a < 0. {
		a += 360.
	}
	return a
}

// compassSnap returns the nearest of the eight compass headings.
func compassSnap(az float64) float64 {
	s := math.Mod(45.*math.Round(az/45.), 360.)
	if s < 0. {
		s += 360.
	}
	return s
}

// chainage returns the cumulative distance along a polyline, one entry per
// vertex; the final entry is the total length.
func chainage(ln orb.LineString) []float64 {
	ch := make([]float64, len(ln))
	for i := 1; i < len(ln); i++ {
		ch[i] = ch[i-1] + planar.Distance(ln[i-1], ln[i])
	}
	return ch
}

// pointAt interpolates the position at chainage s.
func pointAt(ln orb.LineString, ch []float64, s float64) orb.Point {
	if s <= 0. {
		return ln[0]
	}
	for i := 1; i < len(ln); i++ {
		if s <= ch[i] {
			d := ch[i] - ch[i-1]
			if d == 0. {
				return ln[i]
			}
			f := (s - ch[i-1]) / d
			return orb.Point{ln[i-1][0] + f*(ln[i][0]-ln[i-1][0]), ln[i-1][1] + f*(ln[i][1]-ln[i-1][1])}
		}
	}
	return ln[len(ln)-1]
}

// tangentAt returns the unit downstream tangent of the segment containing
// chainage s.
func tangentAt(ln orb.LineString, ch []float64, s float64) (tx, ty float64) {
	i := 1
	for ; i < len(ln)-1; i++ {
		if s <= ch[i] && ch[i] > ch[i-1] {
			break
		}
	}
	dx, dy := ln[i][0]-ln[i-1][0], ln[i][1]-ln[i-1][1]
	d := math.Hypot(dx, dy)
	if d == 0. {
		return 0., 1.
	}
	return dx / d, dy / d
}

// slicePolyline extracts the portion of a polyline between chainages s0 and
// s1, with interpolated end points.
func slicePolyline(ln orb.LineString, ch []float64, s0, s1 float64) orb.LineString {
	out := orb.LineString{pointAt(ln, ch, s0)}
	for i := range ln {
		if ch[i] > s0 && ch[i] < s1 {
			out = append(out, ln[i])
		}
	}
	out = append(out, pointAt(ln, ch, s1))
	return out
}

// clipRing keeps the portion of a ring on the non-negative side of the
// half-plane through p with outward normal (nx,ny). Sutherland–Hodgman; the
// result is closed and may be empty.
func clipRing(r orb.Ring, p orb.Point, nx, ny float64) orb.Ring {
	side := func(q orb.Point) float64 { return nx*(q[0]-p[0]) + ny*(q[1]-p[1]) }
	cross := func(a, b orb.Point) orb.Point {
		sa, sb := side(a), side(b)
		f := sa / (sa - sb)
		return orb.Point{a[0] + f*(b[0]-a[0]), a[1] + f*(b[1]-a[1])}
	}

	if len(r) < 3 {
		return nil
	}
	in := r
	if in[0] != in[len(in)-1] {
		in = append(orb.Ring{}, in...)
		in = append(in, in[0])
	}
	var out orb.Ring
	for i := 1; i < len(in); i++ {
		a, b := in[i-1], in[i]
		sa, sb := side(a), side(b)
		switch {
		case sa >= 0. && sb >= 0.:
			out = append(out, b)
		case sa >= 0. && sb < 0.:
			out = append(out, cross(a, b))
		case sa < 0. && sb >= 0.:
			out = append(out, cross(a, b), b)
		}
	}
	if len(out) < 3 {
		return nil
	}
	if out[0] != out[len(out)-1] {
		out = append(out, out[0])
	}
	return out
}

// ringBridged reports whether a clipped ring runs along the cut line through
// p (normal nx,ny) in opposing, overlapping spans. Sutherland–Hodgman joins
// disjoint pieces of a clipped polygon into one ring by bridging them with
// cancelling edges along the cut line, so this is the signature of a window
// that is not simply connected. A genuine cut face is traversed once, in one
// direction, and never triggers it.
func ringBridged(r orb.Ring, p orb.Point, nx, ny float64) bool {
	const eps = 1e-6 // absorbs interpolation roundoff at projected-CRS magnitudes
	side := func(q orb.Point) float64 { return nx*(q[0]-p[0]) + ny*(q[1]-p[1]) }
	proj := func(q orb.Point) float64 { return -ny*q[0] + nx*q[1] }

	type span struct {
		lo, hi float64
		dir    int
	}
	var spans []span
	for i := 1; i < len(r); i++ {
		a, b := r[i-1], r[i]
		if math.Abs(side(a)) > eps || math.Abs(side(b)) > eps {
			continue
		}
		sa, sb := proj(a), proj(b)
		switch {
		case sb > sa+eps:
			spans = append(spans, span{sa, sb, 1})
		case sa > sb+eps:
			spans = append(spans, span{sb, sa, -1})
		}
	}
	for i := 0; i < len(spans); i++ {
		for j := i + 1; j < len(spans); j++ {
			if spans[i].dir != spans[j].dir &&
				spans[i].lo < spans[j].hi-eps && spans[j].lo < spans[i].hi-eps {
				return true
			}
		}
	}
	return false
}

// clipLine keeps the portions of a polyline on the non-negative side of the
// half-plane through p with normal (nx,ny), concatenating crossings with
// interpolated break points.
func clipLine(ln orb.LineString, p orb.Point, nx, ny float64) orb.LineString {
	side := func(q orb.Point) float64 { return nx*(q[0]-p[0]) + ny*(q[1]-p[1]) }
	cross := func(a, b orb.Point) orb.Point {
		sa, sb := side(a), side(b)
		f := sa / (sa - sb)
		return orb.Point{a[0] + f*(b[0]-a[0]), a[1] + f*(b[1]-a[1])}
	}

	var out orb.LineString
	for i := 1; i < len(ln); i++ {
		a, b := ln[i-1], ln[i]
		sa, sb := side(a), side(b)
		switch {
		case sa >= 0. && sb >= 0.:
			if len(out) == 0 {
				out = append(out, a)
			}
			out = append(out, b)
		case sa >= 0. && sb < 0.:
			if len(out) == 0 {
				out = append(out, a)
			}
			out = append(out, cross(a, b))
		case sa < 0. && sb >= 0.:
			out = append(out, cross(a, b), b)
		}
	}
	if len(out) < 2 {
		return nil
	}
	return out
}

// pointSegDist returns the distance from p to the segment ab.
func pointSegDist(a, b, p orb.Point) float64 {
	dx, dy := b[0]-a[0], b[1]-a[1]
	d2 := dx*dx + dy*dy
	if d2 == 0. {
		return planar.Distance(a, p)
	}
	t := ((p[0]-a[0])*dx + (p[1]-a[1])*dy) / d2
	if t < 0. {
		t = 0.
	} else if t > 1. {
		t = 1.
	}
	return planar.Distance(orb.Point{a[0] + t*dx, a[1] + t*dy}, p)
}

// distToPolyline returns the minimum distance from p to a polyline.
func distToPolyline(ln orb.LineString, p orb.Point) float64 {
	d := math.Inf(1)
	for i := 1; i < len(ln); i++ {
		if dd := pointSegDist(ln[i-1], ln[i], p); dd < d {
			d = dd
		}
	}
	return d
}

// selfIntersects reports whether any two non-adjacent segments of a
// polyline cross. Sub-reach centerline slices are short, so the quadratic
// sweep is fine here.
func selfIntersects(ln orb.LineString) bool {
	seg := func(i int) (orb.Point, orb.Point) { return ln[i], ln[i+1] }
	for i := 0; i < len(ln)-1; i++ {
		for j := i + 2; j < len(ln)-1; j++ {
			if i == 0 && j == len(ln)-2 && ln[0] == ln[len(ln)-1] {
				continue // closed loop adjacency
			}
			a, b := seg(i)
			c, d := seg(j)
			if segsCross(a, b, c, d) {
				return true
			}
		}
	}
	return false
}

func segsCross(a, b, c, d orb.Point) bool {
	o := func(p, q, r orb.Point) float64 {
		return (q[0]-p[0])*(r[1]-p[1]) - (q[1]-p[1])*(r[0]-p[0])
	}
	o1, o2, o3, o4 := o(a, b, c), o(a, b, d), o(c, d, a), o(c, d, b)
	return o1*o2 < 0. && o3*o4 < 0.
}

// ringArea returns the unsigned area of a ring.
func ringArea(r orb.Ring) float64 {
	return math.Abs(planar.Area(r))
}
