package rshade

import (
	"fmt"
	"strconv"
)

// Config holds the per-run options recognized by the shade pipeline. All
// carry defaults and may be overridden from a .rshade control file.
type Config struct {
	SubReachLength   float64 // target sub-reach length L (m)
	BankBufferWidth  float64 // riparian sampling buffer width along the shading bank (m)
	NorthSouthTolDeg float64 // ± tolerance about a due north/south tangent azimuth (deg)
	CurvatureThresh  float64 // arc-length/chord ratio above which a sub-reach is rejected
	MinWidth         float64 // minimum effective water width, area/arc-length (m); <=0 defaults to one cell width
	ExtinctionCoef   float64 // Beer's-law canopy extinction coefficient k
	Policy           string  // shade-direction policy: "canopy" or "aspect"
	Nodata           float64
	Prfx             string // output prefix; defaults to the control file's directory
	GeogCRS          bool   // geometry inputs are geographic (lon,lat); projected to UTM at load
}

// DefaultConfig returns the standard run options.
func DefaultConfig() *Config {
	return &Config{
		SubReachLength:   70.,
		BankBufferWidth:  30., // roughly 2x the riparian core zone width given in WAC 222-30-021
		NorthSouthTolDeg: 20.,
		CurvatureThresh:  1.5,
		MinWidth:         0.,
		ExtinctionCoef:   0.47687, // Richardson, Moskal and Kim (2009)
		Policy:           "canopy",
		Nodata:           -9999.,
	}
}

// override applies any numeric options present in a parsed control file.
func (c *Config) override(params map[string][]string) error {
	getf := func(k string, dst *float64) error {
		if v, ok := params[k]; ok {
			f, err := strconv.ParseFloat(v[0], 64)
			if err != nil {
				return fmt.Errorf(" Config.override '%s': %v", k, err)
			}
			*dst = f
		}
		return nil
	}
	for k, dst := range map[string]*float64{
		"subreachlength":  &c.SubReachLength,
		"bankbufferwidth": &c.BankBufferWidth,
		"nstoldeg":        &c.NorthSouthTolDeg,
		"curvthresh":      &c.CurvatureThresh,
		"minwidth":        &c.MinWidth,
		"extcoef":         &c.ExtinctionCoef,
		"nodata":          &c.Nodata,
	} {
		if err := getf(k, dst); err != nil {
			return err
		}
	}
	if v, ok := params["prfx"]; ok {
		c.Prfx = v[0]
	}
	if v, ok := params["geogcrs"]; ok {
		b, err := strconv.ParseBool(v[0])
		if err != nil {
			return fmt.Errorf(" Config.override 'geogcrs': %v", err)
		}
		c.GeogCRS = b
	}
	if v, ok := params["policy"]; ok {
		switch v[0] {
		case "canopy", "aspect":
			c.Policy = v[0]
		default:
			return fmt.Errorf(" Config.override: unrecognized policy '%s'", v[0])
		}
	}
	return nil
}
