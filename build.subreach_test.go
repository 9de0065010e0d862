package rshade

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentStraightChannel(t *testing.T) {
	d := eastDomain(3., 3.)
	srs, faults := d.Segment(testConfig())
	require.Empty(t, faults)
	require.Len(t, srs, 4)
	for i, sr := range srs {
		assert.Equal(t, i, sr.ID)
		assert.InDelta(t, 90., sr.TangentDeg, 1e-9)
		assert.InDelta(t, 40., ringArea(sr.Foot[0]), 1e-9)
	}
}

func TestSegmentReentrantWindow(t *testing.T) {
	// the hairpin's limbs both cross the slab of every lower-limb window;
	// the half-plane clip would join them into one ring, which must be
	// caught and reported, never accepted
	d := uDomain()
	srs, faults := d.Segment(testConfig())

	details := map[int]string{}
	for _, f := range faults {
		details[f.ID] = f.Detail
	}
	require.Contains(t, details, 0)
	assert.Contains(t, details[0], "not simply connected")

	for _, sr := range srs {
		lower := planar.PolygonContains(sr.Foot, orb.Point{5.5, 20.5})
		upper := planar.PolygonContains(sr.Foot, orb.Point{5.5, 30.5})
		assert.False(t, lower && upper, "subreach %d spans both limbs", sr.ID)
	}
}

func TestSegmentTurnWindowAccepted(t *testing.T) {
	// the window rounding the hairpin's connector is a single connected
	// piece and must not be mistaken for a merged one
	d := uDomain()
	cfg := testConfig()
	srs, _ := d.Segment(cfg)

	// lower-limb window ending at the turn: slab x∈[30,38], y≤22
	var turn *SubReach
	for _, sr := range srs {
		if sr.ID == 3 {
			turn = sr
		}
	}
	require.NotNil(t, turn)
	assert.True(t, planar.PolygonContains(turn.Foot, orb.Point{35., 20.}))
	assert.False(t, planar.PolygonContains(turn.Foot, orb.Point{35., 30.}))
}
