package domain

// Voyage aggregate holding the ordered route segments and the starting
// HFO quantity. It is the caller-owned route session: every plan
// computation is a full recomputation from StartFuelMt over the whole
// segment sequence.
type Voyage struct {
	VoyageID    int
	Name        string
	StartFuelMt float64
	Segments    []RouteSegment
}

func NewVoyage(id int, name string, startFuelMt float64) *Voyage {
	return &Voyage{
		VoyageID:    id,
		Name:        name,
		StartFuelMt: coerceNonNegative(startFuelMt),
	}
}

// AddSegment appends a segment to the route, normalizing its inputs.
func (v *Voyage) AddSegment(seg RouteSegment) {
	seg.Normalize()
	v.Segments = append(v.Segments, seg)
}

// ReplaceSegments swaps the entire ordered segment list, normalizing
// each entry. Used when the map UI rewrites the route wholesale.
func (v *Voyage) ReplaceSegments(segs []RouteSegment) {
	v.Segments = v.Segments[:0]
	for _, seg := range segs {
		v.AddSegment(seg)
	}
}
