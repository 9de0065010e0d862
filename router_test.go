package rshade

import (
	"fmt"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

type failGoodSink struct{ n int }

func (s *failGoodSink) Good(*SubReach, *TransmissivityResult) error {
	s.n++
	return fmt.Errorf("disk full")
}

type failErrorSink struct{ n int }

func (s *failErrorSink) Fault(int, orb.Polygon, Reason, string) error {
	s.n++
	return fmt.Errorf("disk full")
}

func TestRouterCountsSurviveSinkFailure(t *testing.T) {
	gs, es := &failGoodSink{}, &failErrorSink{}
	rtr := NewRouter(gs, es)

	rtr.good(&SubReach{ID: 0}, &TransmissivityResult{Frac: .5})
	rtr.fault(1, nil, ExcessiveCurvature, "curvature ratio 2.00 exceeds 1.50")
	rtr.fault(2, nil, DegenerateGeometry, noLAIDetail)

	// every routing decision stays counted even though both sinks errored
	ng, ne := rtr.Counts()
	assert.Equal(t, 1, ng)
	assert.Equal(t, 2, ne)
	assert.Equal(t, 1, rtr.Tally()[ExcessiveCurvature])
	assert.Equal(t, 1, rtr.Tally()[DegenerateGeometry])
	assert.Equal(t, 1, gs.n)
	assert.Equal(t, 2, es.n)
}

func TestRouterPartition(t *testing.T) {
	rtr := NewRouter(NewMemGoodSink(), NewMemErrorSink())
	rtr.good(&SubReach{ID: 0}, &TransmissivityResult{Frac: .3})
	rtr.good(&SubReach{ID: 1}, &TransmissivityResult{Frac: .7})
	rtr.fault(2, nil, NorthSouthOrientation, "tangent azimuth 4.0° within 20° of north-south")

	ng, ne := rtr.Counts()
	assert.Equal(t, 3, ng+ne)
	assert.Equal(t, map[Reason]int{NorthSouthOrientation: 1}, rtr.Tally())
}
