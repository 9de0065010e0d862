package rshade

import (
	"github.com/maseology/goHydro/grid"
	"github.com/maseology/mmaths"
	"github.com/paulmach/orb"
)

// testGrid builds an nr×nc unit-cell grid with centroids at (col+.5, row+.5),
// row 0 at the bottom, cell ids row-major from the bottom-left.
func testGrid(nr, nc int) *grid.Definition {
	cids := make([]int, 0, nr*nc)
	coord := make(map[int]mmaths.Point, nr*nc)
	for r := 0; r < nr; r++ {
		for c := 0; c < nc; c++ {
			cid := r*nc + c
			cids = append(cids, cid)
			coord[cid] = mmaths.Point{X: float64(c) + .5, Y: float64(r) + .5}
		}
	}
	return &grid.Definition{Sactives: cids, Coord: coord, Cwidth: 1.}
}

// eastDomain builds a straight east-flowing channel on a 40×40 grid: water
// y∈[18,22], banks at y=22 (left, north) and y=18 (right, south), tall
// canopy and LAI=laiN north of the river, low canopy and LAI=laiS south.
func eastDomain(laiN, laiS float64) *Domain {
	gd := testGrid(40, 40)
	veg, lai := map[int]float64{}, map[int]float64{}
	for _, c := range gd.Sactives {
		xy := gd.Coord[c]
		switch {
		case xy.Y > 22.:
			veg[c] = 15.
			if laiN >= 0. {
				lai[c] = laiN
			}
		case xy.Y < 18.:
			veg[c] = 1.
			if laiS >= 0. {
				lai[c] = laiS
			}
		}
	}
	return &Domain{
		GD:     gd,
		Veg:    veg,
		LAI:    lai,
		Riv:    orb.Polygon{orb.Ring{{0., 18.}, {40., 18.}, {40., 22.}, {0., 22.}, {0., 18.}}},
		Cntr:   orb.LineString{{0., 20.}, {40., 20.}},
		LBank:  orb.LineString{{0., 22.}, {40., 22.}},
		RBank:  orb.LineString{{0., 18.}, {40., 18.}},
		Nodata: -9999.,
	}
}

// northDomain is the eastDomain rotated to flow due north.
func northDomain() *Domain {
	gd := testGrid(40, 40)
	veg, lai := map[int]float64{}, map[int]float64{}
	for _, c := range gd.Sactives {
		xy := gd.Coord[c]
		if xy.X > 22. || xy.X < 18. {
			veg[c] = 10.
			lai[c] = 2.
		}
	}
	return &Domain{
		GD:     gd,
		Veg:    veg,
		LAI:    lai,
		Riv:    orb.Polygon{orb.Ring{{18., 0.}, {22., 0.}, {22., 40.}, {18., 40.}, {18., 0.}}},
		Cntr:   orb.LineString{{20., 0.}, {20., 40.}},
		LBank:  orb.LineString{{18., 0.}, {18., 40.}}, // left of northward flow is the west bank
		RBank:  orb.LineString{{22., 0.}, {22., 40.}},
		Nodata: -9999.,
	}
}

// uDomain builds a hairpin meander opening west: the lower limb (y∈[18,22])
// flows east, the channel turns north through a connector at x∈[36,40], and
// the upper limb (y∈[28,32]) flows back west. Both limbs cross every slab
// cut through the limbs' shared x-range.
func uDomain() *Domain {
	gd := testGrid(40, 40)
	veg, lai := map[int]float64{}, map[int]float64{}
	for _, c := range gd.Sactives {
		veg[c] = 5.
		lai[c] = 2.
	}
	return &Domain{
		GD:  gd,
		Veg: veg,
		LAI: lai,
		Riv: orb.Polygon{orb.Ring{
			{0., 18.}, {40., 18.}, {40., 32.}, {0., 32.}, {0., 28.},
			{36., 28.}, {36., 22.}, {0., 22.}, {0., 18.},
		}},
		Cntr:   orb.LineString{{0., 20.}, {38., 20.}, {38., 30.}, {0., 30.}},
		LBank:  orb.LineString{{0., 22.}, {36., 22.}, {36., 28.}, {0., 28.}},
		RBank:  orb.LineString{{0., 18.}, {40., 18.}, {40., 32.}, {0., 32.}},
		Nodata: -9999.,
	}
}

func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.SubReachLength = 10.
	cfg.BankBufferWidth = 2.
	cfg.ExtinctionCoef = .5
	return cfg
}
