package rshade

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAzimuth(t *testing.T) {
	assert.InDelta(t, 0., azimuth(0., 1.), 1e-9)
	assert.InDelta(t, 90., azimuth(1., 0.), 1e-9)
	assert.InDelta(t, 180., azimuth(0., -1.), 1e-9)
	assert.InDelta(t, 270., azimuth(-1., 0.), 1e-9)
	assert.InDelta(t, 45., azimuth(1., 1.), 1e-9)
}

func TestCompassSnap(t *testing.T) {
	assert.Equal(t, 0., compassSnap(12.))
	assert.Equal(t, 45., compassSnap(30.))
	assert.Equal(t, 90., compassSnap(100.))
	assert.Equal(t, 315., compassSnap(300.))
	assert.Equal(t, 0., compassSnap(350.))
	assert.Equal(t, 180., compassSnap(180.))
}

func TestChainageAndSlice(t *testing.T) {
	ln := orb.LineString{{0., 0.}, {3., 0.}, {3., 4.}}
	ch := chainage(ln)
	require.Equal(t, []float64{0., 3., 7.}, ch)

	assert.Equal(t, orb.Point{1.5, 0.}, pointAt(ln, ch, 1.5))
	assert.Equal(t, orb.Point{3., 2.}, pointAt(ln, ch, 5.))

	sl := slicePolyline(ln, ch, 1., 5.)
	require.Equal(t, orb.LineString{{1., 0.}, {3., 0.}, {3., 2.}}, sl)
}

func TestClipRing(t *testing.T) {
	sq := orb.Ring{{0., 0.}, {4., 0.}, {4., 4.}, {0., 4.}, {0., 0.}}

	// keep x >= 1
	r := clipRing(sq, orb.Point{1., 0.}, 1., 0.)
	require.NotNil(t, r)
	assert.InDelta(t, 12., ringArea(r), 1e-9)

	// keep x >= 5: nothing survives
	assert.Nil(t, clipRing(sq, orb.Point{5., 0.}, 1., 0.))
}

func TestClipLine(t *testing.T) {
	ln := orb.LineString{{0., 0.}, {10., 0.}}
	got := clipLine(ln, orb.Point{4., 0.}, 1., 0.)
	require.Equal(t, orb.LineString{{4., 0.}, {10., 0.}}, got)

	assert.Nil(t, clipLine(ln, orb.Point{11., 0.}, 1., 0.))
}

func TestSelfIntersects(t *testing.T) {
	assert.False(t, selfIntersects(orb.LineString{{0., 0.}, {1., 0.}, {2., 1.}}))
	// bowtie
	assert.True(t, selfIntersects(orb.LineString{{0., 0.}, {2., 2.}, {2., 0.}, {0., 2.}}))
}

func TestRingBridged(t *testing.T) {
	// two disjoint slabs joined by cancelling bridge edges along x=10, the
	// shape a half-plane clip makes of a channel meandering back through
	// the same slab
	merged := orb.Ring{{10., 18.}, {10., 32.}, {0., 32.}, {0., 28.}, {10., 28.}, {10., 22.}, {0., 22.}, {0., 18.}, {10., 18.}}
	assert.True(t, ringBridged(merged, orb.Point{10., 20.}, -1., 0.))

	// a plain window traverses its cut face once
	sq := orb.Ring{{0., 18.}, {10., 18.}, {10., 22.}, {0., 22.}, {0., 18.}}
	assert.False(t, ringBridged(sq, orb.Point{10., 20.}, -1., 0.))
	assert.False(t, ringBridged(sq, orb.Point{0., 20.}, 1., 0.))
}

func TestMeanTangentDeg(t *testing.T) {
	assert.InDelta(t, 90., meanTangentDeg(orb.LineString{{0., 0.}, {10., 0.}}), 1e-9)
	// U-shape opening east still averages east
	u := orb.LineString{{0., 0.}, {0., 6.}, {12., 6.}, {12., 0.}}
	assert.InDelta(t, 90., meanTangentDeg(u), 1e-9)
}
