package rshade

import "github.com/paulmach/orb"

// BankSide identifies a bank relative to the downstream flow direction.
type BankSide int

const (
	Left BankSide = iota
	Right
)

func (b BankSide) String() string {
	if b == Left {
		return "LEFT"
	}
	return "RIGHT"
}

// Reason codes a sub-reach's route to the error sink.
type Reason int

const (
	NoRejection Reason = iota
	SegmentationFault
	NorthSouthOrientation
	ExcessiveCurvature
	DegenerateGeometry
)

func (r Reason) String() string {
	switch r {
	case SegmentationFault:
		return "GeometrySegmentationFault"
	case NorthSouthOrientation:
		return "NorthSouthOrientation"
	case ExcessiveCurvature:
		return "ExcessiveCurvature"
	case DegenerateGeometry:
		return "DegenerateGeometry"
	}
	return "NoRejection"
}

// SubReach is a short longitudinal segment of the river's inundated area,
// the unit of independent processing. Built by Segment; read-only thereafter
// except for its own derived Shade and Verdict, which are written once by
// the worker processing it.
type SubReach struct {
	ID           int
	Foot         orb.Polygon    // water footprint clipped between the two cross-channel cuts
	Cntr         orb.LineString // centerline slice
	LBank, RBank orb.LineString // bank segments bounding the footprint (may be empty at spurs)
	TangentDeg   float64        // length-weighted circular-mean tangent azimuth (compass deg)
	ArcLen       float64        // centerline arc length (m)
	Chord        float64        // straight-line distance between centerline endpoints (m)

	Shade   ShadeAssignment
	Verdict QualityVerdict
}

// ShadeAssignment gives the bank casting shade onto the water surface and
// the compass direction the shade is cast toward.
type ShadeAssignment struct {
	Bank       BankSide
	AzimuthDeg float64 // bank→water perpendicular, snapped to the nearest compass heading
	PerpDeg    float64 // unsnapped perpendicular, kept for diagnostics
}

// QualityVerdict is the quality gate's decision for one sub-reach.
type QualityVerdict struct {
	Accepted bool
	Reason   Reason
	Detail   string
}

// TransmissivityResult holds the estimated canopy light transmissivity for
// an accepted sub-reach, rasterized over its water footprint.
type TransmissivityResult struct {
	MeanLAI float64
	Frac    float64
	Raster  map[int]float64 // grid cell id → transmissivity fraction, footprint cells only
}

// SegFault records a window the segmenter could not resolve.
type SegFault struct {
	ID     int
	Foot   orb.Polygon
	Detail string
}
