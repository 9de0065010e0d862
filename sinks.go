package rshade

import (
	"fmt"
	"os"

	"github.com/maseology/goHydro/grid"
	"github.com/maseology/mmio"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// BilSink writes each accepted sub-reach as a full-domain float32 .bil
// (nodata outside the footprint) with an accompanying .hdr, so every output
// is pixel-aligned to the shared grid definition and ready for mean-merge
// mosaicking.
type BilSink struct {
	GD     *grid.Definition
	Dir    string // output prefix, e.g. ".../good/"
	Nodata float64
}

func NewBilSink(gd *grid.Definition, dir string, nodata float64) *BilSink {
	mmio.MakeDir(dir)
	return &BilSink{GD: gd, Dir: dir, Nodata: nodata}
}

func (s *BilSink) Good(sr *SubReach, res *TransmissivityResult) error {
	a := s.GD.NullArray(s.Nodata)
	for c, t := range res.Raster {
		a[c] = t
	}
	fp := fmt.Sprintf("%ssubreach%d.bil", s.Dir, sr.ID)
	if err := writeFloats(fp, a); err != nil {
		return fmt.Errorf(" BilSink.Good %v", err)
	}
	s.GD.ToHDRfloat(mmio.RemoveExtension(fp)+".hdr", 1, 32)
	return nil
}

// GeoJSONSink collects rejected sub-reach footprints as features tagged
// with their rejection reason; Close writes the collection.
type GeoJSONSink struct {
	fp string
	fc *geojson.FeatureCollection
}

func NewGeoJSONSink(fp string) *GeoJSONSink {
	return &GeoJSONSink{fp: fp, fc: geojson.NewFeatureCollection()}
}

func (s *GeoJSONSink) Fault(id int, foot orb.Polygon, reason Reason, detail string) error {
	f := geojson.NewFeature(foot)
	f.Properties = geojson.Properties{"id": id, "reason": reason.String(), "detail": detail}
	s.fc.Append(f)
	return nil
}

func (s *GeoJSONSink) Close() error {
	b, err := s.fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf(" GeoJSONSink.Close %v", err)
	}
	if err := os.WriteFile(s.fp, b, 0644); err != nil {
		return fmt.Errorf(" GeoJSONSink.Close %v", err)
	}
	return nil
}

// MemGoodSink and MemErrorSink collect outcomes in memory; used by the
// tests and by postpro when mosaicking without an intermediate file pass.
type MemGoodSink struct {
	Rasters map[int]map[int]float64
	Fracs   map[int]float64
	MeanLAI map[int]float64
}

func NewMemGoodSink() *MemGoodSink {
	return &MemGoodSink{
		Rasters: map[int]map[int]float64{},
		Fracs:   map[int]float64{},
		MeanLAI: map[int]float64{},
	}
}

func (s *MemGoodSink) Good(sr *SubReach, res *TransmissivityResult) error {
	s.Rasters[sr.ID] = res.Raster
	s.Fracs[sr.ID] = res.Frac
	s.MeanLAI[sr.ID] = res.MeanLAI
	return nil
}

type MemErrorSink struct {
	Feet    map[int]orb.Polygon
	Reasons map[int]Reason
	Details map[int]string
}

func NewMemErrorSink() *MemErrorSink {
	return &MemErrorSink{
		Feet:    map[int]orb.Polygon{},
		Reasons: map[int]Reason{},
		Details: map[int]string{},
	}
}

func (s *MemErrorSink) Fault(id int, foot orb.Polygon, reason Reason, detail string) error {
	s.Feet[id] = foot
	s.Reasons[id] = reason
	s.Details[id] = detail
	return nil
}

// TeeGoodSink forwards to several good sinks in order.
type TeeGoodSink []GoodSink

func (t TeeGoodSink) Good(sr *SubReach, res *TransmissivityResult) error {
	for _, s := range t {
		if err := s.Good(sr, res); err != nil {
			return err
		}
	}
	return nil
}
