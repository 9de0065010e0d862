package rshade

import (
	"fmt"
	"os"

	"github.com/im7mortal/UTM"
	"github.com/maseology/goHydro/grid"
	"github.com/maseology/mmio"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// BuildDomain assembles the model domain named by a .rshade control file:
// the grid definition, the DSM/DTM/LAI rasters (all required to be
// co-registered to that definition) and the channel geometries. Returns the
// run configuration with any per-run overrides applied.
func BuildDomain(controlFP string) (*Domain, *Config, error) {
	if _, ok := mmio.FileExists(controlFP); !ok {
		return nil, nil, fmt.Errorf("BuildDomain: control file not found: %s", controlFP)
	}
	ins := mmio.NewInstruct(controlFP)
	getfp := func(k string) (string, error) {
		v, ok := ins.Param[k]
		if !ok {
			return "", fmt.Errorf("BuildDomain: control file missing '%s'", k)
		}
		return v[0], nil
	}

	cfg := DefaultConfig()
	if err := cfg.override(ins.Param); err != nil {
		return nil, nil, err
	}
	if cfg.Prfx == "" {
		cfg.Prfx = mmio.GetFileDir(controlFP) + "/"
	}

	println(" loading grid definition..")
	gdeffp, err := getfp("gdeffp")
	if err != nil {
		return nil, nil, err
	}
	gd, err := grid.ReadGDEF(gdeffp, true)
	if err != nil {
		return nil, nil, fmt.Errorf("BuildDomain: %v", err)
	}

	loadReal := func(k string) (map[int]float64, error) {
		fp, err := getfp(k)
		if err != nil {
			return nil, err
		}
		if err := checkCoRegistered(fp, gd); err != nil {
			return nil, err
		}
		fmt.Printf(" loading: %s\n", fp)
		var g grid.Real
		g.NewGD32(fp, gd)
		out := make(map[int]float64, len(g.A))
		for c, v := range g.A {
			if v == cfg.Nodata {
				continue
			}
			out[c] = v
		}
		return out, nil
	}

	dsm, err := loadReal("dsmfp")
	if err != nil {
		return nil, nil, err
	}
	dtm, err := loadReal("dtmfp")
	if err != nil {
		return nil, nil, err
	}
	lai, err := loadReal("laifp")
	if err != nil {
		return nil, nil, err
	}
	var asp map[int]float64
	if _, ok := ins.Param["aspfp"]; ok {
		if asp, err = loadReal("aspfp"); err != nil {
			return nil, nil, err
		}
	} else if cfg.Policy == "aspect" {
		return nil, nil, fmt.Errorf("BuildDomain: aspect policy requires 'aspfp'")
	}

	println(" loading channel geometry..")
	loadLine := func(k string) (orb.LineString, error) {
		fp, err := getfp(k)
		if err != nil {
			return nil, err
		}
		g, err := loadGeoJSON(fp, cfg.GeogCRS)
		if err != nil {
			return nil, err
		}
		ln, ok := g.(orb.LineString)
		if !ok {
			return nil, fmt.Errorf("BuildDomain: %s: expecting LineString", fp)
		}
		return ln, nil
	}
	cntr, err := loadLine("cntrfp")
	if err != nil {
		return nil, nil, err
	}
	lbnk, err := loadLine("lbnkfp")
	if err != nil {
		return nil, nil, err
	}
	rbnk, err := loadLine("rbnkfp")
	if err != nil {
		return nil, nil, err
	}
	rivfp, err := getfp("rivfp")
	if err != nil {
		return nil, nil, err
	}
	g, err := loadGeoJSON(rivfp, cfg.GeogCRS)
	if err != nil {
		return nil, nil, err
	}
	riv, ok := g.(orb.Polygon)
	if !ok {
		return nil, nil, fmt.Errorf("BuildDomain: %s: expecting Polygon", rivfp)
	}

	d := &Domain{
		GD:     gd,
		Veg:    buildCanopy(dsm, dtm, cfg.Nodata),
		LAI:    lai,
		Asp:    asp,
		Riv:    riv,
		Cntr:   cntr,
		LBank:  lbnk,
		RBank:  rbnk,
		Nodata: cfg.Nodata,
	}
	if err := d.checkPrerun(); err != nil {
		return nil, nil, err
	}
	return d, cfg, nil
}

// checkCoRegistered verifies a float32 .bil covers exactly the cells of the
// grid definition. A mismatched raster invalidates every sub-reach, so this
// fails the run before any work starts.
func checkCoRegistered(fp string, gd *grid.Definition) error {
	fi, err := os.Stat(fp)
	if err != nil {
		return fmt.Errorf("checkCoRegistered: %v", err)
	}
	if n := int64(gd.Ncells()) * 4; fi.Size() != n {
		return fmt.Errorf("checkCoRegistered: %s: %d bytes, grid definition requires %d (InputGridMismatch)", fp, fi.Size(), n)
	}
	return nil
}

// loadGeoJSON reads the first feature geometry of a GeoJSON feature
// collection. When the control file declares geographic inputs ('geogcrs'),
// coordinates are projected to UTM so all downstream distances are in
// linear units; otherwise they are taken as already projected.
func loadGeoJSON(fp string, geographic bool) (orb.Geometry, error) {
	b, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf("loadGeoJSON: %v", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(b)
	if err != nil {
		return nil, fmt.Errorf("loadGeoJSON: %s: %v", fp, err)
	}
	if len(fc.Features) == 0 {
		return nil, fmt.Errorf("loadGeoJSON: %s: no features", fp)
	}
	g := fc.Features[0].Geometry
	if geographic {
		if g, err = toUTM(g); err != nil {
			return nil, fmt.Errorf("loadGeoJSON: %s: %v", fp, err)
		}
	}
	return g, nil
}

// toUTM projects a geographic geometry to UTM. Every vertex must fall in the
// same zone; a geometry straddling a zone boundary cannot be represented in
// one planar CRS and is rejected rather than silently mixed.
func toUTM(g orb.Geometry) (orb.Geometry, error) {
	zone0 := 0
	proj := func(p orb.Point) (orb.Point, error) {
		e, n, zone, _, err := UTM.FromLatLon(p[1], p[0], p[1] >= 0.)
		if err != nil {
			return orb.Point{}, err
		}
		if zone0 == 0 {
			zone0 = zone
		} else if zone != zone0 {
			return orb.Point{}, fmt.Errorf("geometry spans UTM zones %d and %d; reproject inputs to a single projected CRS", zone0, zone)
		}
		return orb.Point{e, n}, nil
	}
	switch t := g.(type) {
	case orb.LineString:
		out := make(orb.LineString, len(t))
		for i, p := range t {
			q, err := proj(p)
			if err != nil {
				return nil, err
			}
			out[i] = q
		}
		return out, nil
	case orb.Polygon:
		out := make(orb.Polygon, len(t))
		for i, r := range t {
			out[i] = make(orb.Ring, len(r))
			for j, p := range r {
				q, err := proj(p)
				if err != nil {
					return nil, err
				}
				out[i][j] = q
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("toUTM: unsupported geometry %T", g)
}
