package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/maseology/mmio"
	"github.com/maseology/rshade"
	"github.com/maseology/rshade/postpro"
)

func main() {
	var chk bool
	flag.BoolVar(&chk, "check", false, "write diagnostic rasters to <prfx>check/")
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatalf("usage: rshade [-check] <control.rshade>")
	}

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap(fmt.Sprintf("\nRun complete. n processes: %v", runtime.GOMAXPROCS(0)))

	// load data
	dom, cfg, err := rshade.BuildDomain(flag.Arg(0))
	if err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
	tt.Print("domain load complete\n")

	prfx := cfg.Prfx
	good := rshade.NewBilSink(dom.GD, prfx+"good/", cfg.Nodata)
	mem := rshade.NewMemGoodSink()
	errs := rshade.NewGeoJSONSink(prfx + "errors.geojson")
	rtr := rshade.NewRouter(rshade.TeeGoodSink{good, mem}, errs)

	// run pipeline
	srs, err := dom.Evaluate(context.Background(), cfg, rtr)
	if err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
	if err := errs.Close(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
	rtr.Checkandprint()
	if chk {
		dom.Checkandprint(srs, prfx+"check/")
	}
	tt.Print("evaluation complete\n")

	// mosaic the accepted sub-reaches (mean of seam overlaps)
	rasters := make([]map[int]float64, 0, len(mem.Rasters))
	for _, r := range mem.Rasters {
		rasters = append(rasters, r)
	}
	merged := postpro.MergeMaps(rasters)
	a := dom.GD.NullArray(cfg.Nodata)
	for c, t := range merged {
		a[c] = t
	}
	if err := rshade.WriteBil(dom.GD, prfx+"canopy_transmissivity.bil", a); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}
