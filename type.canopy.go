package rshade

// buildCanopy differences the surface and terrain models to a canopy-height
// grid. Negative differences (run-to-run lidar noise) are clamped to zero;
// cells missing from either model are dropped.
func buildCanopy(dsm, dtm map[int]float64, nodata float64) map[int]float64 {
	veg := make(map[int]float64, len(dsm))
	for c, s := range dsm {
		t, ok := dtm[c]
		if !ok || s == nodata || t == nodata {
			continue
		}
		d := s - t
		if d < 0. {
			d = 0.
		}
		veg[c] = d
	}
	return veg
}
