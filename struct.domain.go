package rshade

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/maseology/goHydro/grid"
	"github.com/paulmach/orb"
)

// Domain holds the read-only inputs shared by every sub-reach: the common
// grid definition, the canopy-height and leaf-area-index grids, and the
// channel/bank/inundated-area geometries, all in one projected CRS.
type Domain struct {
	GD           *grid.Definition
	Veg          map[int]float64 // canopy height (DSM − DTM), by cell id
	LAI          map[int]float64 // leaf area index, by cell id
	Asp          map[int]float64 // optional shade-aspect grid (deg), needed by the aspect policy
	Riv          orb.Polygon     // inundated area
	Cntr         orb.LineString  // channel centerline, ordered downstream
	LBank, RBank orb.LineString  // banks relative to flow direction
	Nodata       float64
}

func (d *Domain) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" domain.SaveGob %v", err)
	}
	if err := gob.NewEncoder(f).Encode(d); err != nil {
		return fmt.Errorf(" domain.SaveGob %v", err)
	}
	f.Close()
	return nil
}

func LoadGobDomain(fp string) (*Domain, error) {
	var d Domain
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	if err := gob.NewDecoder(f).Decode(&d); err != nil {
		return nil, err
	}
	f.Close()
	return &d, nil
}

// checkPrerun verifies the input contracts that make the whole run
// untrustworthy when violated. Anything caught here is fatal; per-sub-reach
// faults are recovered downstream.
func (d *Domain) checkPrerun() error {
	if d.GD == nil || d.GD.Cwidth <= 0. {
		return fmt.Errorf("domain: no grid definition")
	}
	if len(d.Veg) == 0 {
		return fmt.Errorf("domain: empty canopy-height grid")
	}
	if len(d.LAI) == 0 {
		return fmt.Errorf("domain: empty LAI grid")
	}
	if len(d.Cntr) < 2 {
		return fmt.Errorf("domain: centerline requires at least 2 vertices")
	}
	if len(d.Riv) == 0 || len(d.Riv[0]) < 4 {
		return fmt.Errorf("domain: degenerate inundated-area polygon")
	}
	if len(d.LBank) < 2 || len(d.RBank) < 2 {
		return fmt.Errorf("domain: degenerate bank polyline")
	}
	return nil
}
