package rshade

import (
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/maseology/mmaths/slice"
	"github.com/paulmach/orb"
)

// GoodSink receives every accepted sub-reach with its rasterized
// transmissivity; ErrorSink receives every rejected sub-reach with its
// footprint and rejection reason. Implementations need not be safe for
// concurrent use; the Router serializes.
type GoodSink interface {
	Good(sr *SubReach, res *TransmissivityResult) error
}

type ErrorSink interface {
	Fault(id int, foot orb.Polygon, reason Reason, detail string) error
}

// Router fans per-sub-reach outcomes out to the two sinks, one writer lock
// per sink. No sub-reach is ever dropped: every id handed to the router is
// counted under exactly one routing decision, and the per-reason tally is
// kept for audit. A failed sink write is logged but never uncounts the
// decision, so good+error always sum to the routed total.
type Router struct {
	gs GoodSink
	es ErrorSink

	gmu, emu sync.Mutex
	nGood    int
	tally    map[Reason]int
	nNoLAI   int       // DegenerateGeometry routes caused by empty LAI samples
	fracs    []float64 // accepted transmissivity fractions, for the summary
}

func NewRouter(gs GoodSink, es ErrorSink) *Router {
	return &Router{gs: gs, es: es, tally: map[Reason]int{}}
}

func (r *Router) good(sr *SubReach, res *TransmissivityResult) {
	r.gmu.Lock()
	defer r.gmu.Unlock()
	if err := r.gs.Good(sr, res); err != nil {
		log.Printf("rshade: good sink, subreach %d: %v", sr.ID, err)
	}
	r.nGood++
	r.fracs = append(r.fracs, res.Frac)
}

func (r *Router) fault(id int, foot orb.Polygon, reason Reason, detail string) {
	r.emu.Lock()
	defer r.emu.Unlock()
	if err := r.es.Fault(id, foot, reason, detail); err != nil {
		log.Printf("rshade: error sink, subreach %d: %v", id, err)
	}
	r.tally[reason]++
	if reason == DegenerateGeometry && detail == noLAIDetail {
		r.nNoLAI++
	}
}

// Counts returns the number of sub-reaches routed to each sink.
func (r *Router) Counts() (nGood, nErr int) {
	r.gmu.Lock()
	nGood = r.nGood
	r.gmu.Unlock()
	r.emu.Lock()
	for _, n := range r.tally {
		nErr += n
	}
	r.emu.Unlock()
	return
}

// Tally returns a copy of the per-reason rejection counts.
func (r *Router) Tally() map[Reason]int {
	r.emu.Lock()
	defer r.emu.Unlock()
	out := make(map[Reason]int, len(r.tally))
	for k, v := range r.tally {
		out[k] = v
	}
	return out
}

// Checkandprint summarizes the routing.
func (r *Router) Checkandprint() {
	ng, ne := r.Counts()
	fmt.Printf("\nRouting Summary\n==================================\n")
	fmt.Printf(" %d sub-reaches: %d good, %d rejected\n", ng+ne, ng, ne)
	reasons := make([]Reason, 0, len(r.tally))
	r.emu.Lock()
	for k := range r.tally {
		reasons = append(reasons, k)
	}
	r.emu.Unlock()
	sort.Slice(reasons, func(i, j int) bool { return reasons[i] < reasons[j] })
	for _, k := range reasons {
		fmt.Printf("   %-28s%6d\n", k, r.tally[k])
	}
	if r.nNoLAI > 0 {
		fmt.Printf("   (of which no valid LAI:    %6d)\n", r.nNoLAI)
	}
	if len(r.fracs) > 0 {
		fmt.Printf(" median accepted transmissivity: %.3f\n", slice.Median(r.fracs))
	}
}

const (
	noLAIDetail  = "no valid LAI samples in bank buffer"
	noCellDetail = "footprint contains no grid cell centroid"
)
