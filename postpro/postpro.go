// Package postpro merges per-sub-reach transmissivity rasters into one
// watershed layer and applies the downstream shade correction. It consumes
// the good/error sinks' outputs; the core pipeline never depends on it.
package postpro

import (
	"fmt"
	"sort"

	"github.com/maseology/goHydro/grid"
	"github.com/maseology/mmio"
)

// MergeMaps mosaics per-sub-reach rasters (cell id → transmissivity) into
// one layer. Adjacent sub-reach rasters may overlap by up to a seam width
// by design; overlapping cells take the mean of contributions.
func MergeMaps(rasters []map[int]float64) map[int]float64 {
	sum, n := map[int]float64{}, map[int]int{}
	for _, r := range rasters {
		for c, v := range r {
			sum[c] += v
			n[c]++
		}
	}
	out := make(map[int]float64, len(sum))
	for c, s := range sum {
		out[c] = s / float64(n[c])
	}
	return out
}

// Merge reads every sub-reach .bil under a good-sink prefix and mosaics
// them with MergeMaps.
func Merge(gd *grid.Definition, dir string, nodata float64) (map[int]float64, error) {
	fps, err := mmio.FileListExt(dir, ".bil")
	if err != nil {
		return nil, fmt.Errorf("postpro.Merge: %v", err)
	}
	if len(fps) == 0 {
		return nil, fmt.Errorf("postpro.Merge: no .bil found under %s", dir)
	}
	sort.Strings(fps)
	rasters := make([]map[int]float64, 0, len(fps))
	for _, fp := range fps {
		var g grid.Real
		g.NewGD32(fp, gd)
		r := make(map[int]float64, len(g.A))
		for c, v := range g.A {
			if v == nodata {
				continue
			}
			r[c] = v
		}
		rasters = append(rasters, r)
	}
	return MergeMaps(rasters), nil
}

// FillRejected assigns fill to cells of the rejected footprints only where
// the merged layer has no data, mirroring the "copy only where the good
// layer is missing" mosaic operator.
func FillRejected(merged map[int]float64, rejected []map[int]float64, fill float64) map[int]float64 {
	out := make(map[int]float64, len(merged))
	for c, v := range merged {
		out[c] = v
	}
	for _, r := range rejected {
		for c := range r {
			if _, ok := out[c]; !ok {
				out[c] = fill
			}
		}
	}
	return out
}

// CorrectShade applies the transmissivity layer to an uncorrected shade
// raster: corrected = uncorrected × transmissivity per cell. Cells without
// a transmissivity value pass through unchanged.
func CorrectShade(shade, trans map[int]float64) map[int]float64 {
	out := make(map[int]float64, len(shade))
	for c, s := range shade {
		if t, ok := trans[c]; ok {
			out[c] = s * t
		} else {
			out[c] = s
		}
	}
	return out
}
