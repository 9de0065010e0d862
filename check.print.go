package rshade

import (
	"fmt"

	"github.com/maseology/mmio"
	"github.com/paulmach/orb"
)

// Checkandprint writes diagnostic check rasters to chkdirprfx and prints a
// segmentation summary: sub-reach ids, tangent azimuths, shade azimuths and
// verdict codes over the water footprints.
func (d *Domain) Checkandprint(srs []*SubReach, chkdirprfx string) {
	mmio.MakeDir(mmio.GetFileDir(chkdirprfx + "x"))

	sid, vcode := d.GD.NullInt32(-9999), d.GD.NullInt32(-9999)
	taz, saz := d.GD.NullArray(-9999.), d.GD.NullArray(-9999.)
	for _, sr := range srs {
		srsr := sr
		forFootprintCells(d, sr.Foot, func(c int, _ orb.Point) {
			sid[c] = int32(srsr.ID)
			vcode[c] = int32(srsr.Verdict.Reason)
			taz[c] = srsr.TangentDeg
			saz[c] = srsr.Shade.AzimuthDeg
		})
	}

	chkInts := func(nam string, a []int32) {
		writeInts(chkdirprfx+nam+".bil", a)
		d.GD.ToHDR(chkdirprfx+nam+".hdr", 1, 32)
	}
	chkFloats := func(nam string, a []float64) {
		writeFloats(chkdirprfx+nam+".bil", a)
		d.GD.ToHDRfloat(chkdirprfx+nam+".hdr", 1, 32)
	}
	chkInts("subreach.id", sid)        // sub-reach id
	chkInts("subreach.verdict", vcode) // 0 accepted; else Reason code
	chkFloats("subreach.tangent", taz) // tangent azimuth (deg)
	chkFloats("subreach.shadeaz", saz) // snapped shade azimuth (deg)

	nacc := 0
	for _, sr := range srs {
		if sr.Verdict.Accepted {
			nacc++
		}
	}
	fmt.Printf("   %d sub-reaches segmented, %d passed the quality gate:\n", len(srs), nacc)
	if len(srs) <= 12 {
		println("        ID     tangent    shade az  bank   verdict")
		for _, sr := range srs {
			fmt.Printf("%10d%10.1f%12.0f%6s   %s\n", sr.ID, sr.TangentDeg, sr.Shade.AzimuthDeg, sr.Shade.Bank, sr.Verdict.Reason)
		}
	}
}
