package rshade

import (
	"math"

	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/stat"
)

// TransFunc maps a mean leaf-area index to a canopy light-transmissivity
// fraction. Implementations must be deterministic, bounded to [0,1] and
// monotone non-increasing; the coefficients are externally calibrated
// configuration, not model logic.
type TransFunc func(meanLAI float64) float64

// BeersLaw returns the standard exponential extinction model
// T = exp(-k·LAI), clamped to [0,1].
func BeersLaw(k float64) TransFunc {
	return func(lai float64) float64 {
		t := math.Exp(-k * lai)
		if t < 0. {
			return 0.
		}
		if t > 1. {
			return 1.
		}
		return t
	}
}

// estimate samples LAI within the shading bank's buffer, applies the
// transmissivity function to the mean, and rasterizes the result uniformly
// over the sub-reach's water footprint. A nil result carries the detail of
// the degenerate condition hit (no valid LAI samples, or a footprint too
// small to hold a single cell centroid); the caller routes those to the
// error sink rather than emitting a nodata raster silently.
func (d *Domain) estimate(sr *SubReach, sa ShadeAssignment, tf TransFunc, cfg *Config) (*TransmissivityResult, string) {
	bank := sr.LBank
	if sa.Bank == Right {
		bank = sr.RBank
	}
	smpl := d.sampleBuffer(bank, cfg.BankBufferWidth, d.LAI)
	if len(smpl) == 0 {
		return nil, noLAIDetail
	}
	ml := stat.Mean(smpl, nil)
	t := tf(ml)

	ras := make(map[int]float64)
	forFootprintCells(d, sr.Foot, func(c int, _ orb.Point) {
		ras[c] = t
	})
	if len(ras) == 0 {
		return nil, noCellDetail
	}
	return &TransmissivityResult{MeanLAI: ml, Frac: t, Raster: ras}, ""
}
