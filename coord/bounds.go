package coord

// Shape selects how a Bounds region is tested.
type Shape int

const (
	// Unbounded regions contain every point.
	Unbounded Shape = iota

	// Rectangular regions check X, Y and Z against Min and Max inclusively.
	Rectangular

	// Circular regions check the XY distance from the origin against Radius.
	// Z is only checked when CheckZ is set.
	Circular
)

func (s Shape) String() string {
	switch s {
	case Rectangular:
		return "rectangular"
	case Circular:
		return "circular"
	}
	return "unbounded"
}

// Bounds describes the region in which a position is considered in-bounds.
type Bounds struct {
	Shape    Shape
	Min, Max Point

	// Radius of a circular bed, centered on the origin.
	Radius float64

	// CheckZ enables the Min.Z/Max.Z range for circular beds.
	CheckZ bool
}

// Box returns rectangular bounds spanning min to max.
func Box(min, max Point) Bounds {
	return Bounds{Shape: Rectangular, Min: min, Max: max}
}

// Circle returns circular bounds of radius r with no Z limit.
func Circle(r float64) Bounds {
	return Bounds{Shape: Circular, Radius: r}
}

// IsBound reports whether b restricts anything at all.
func (b Bounds) IsBound() bool { return b.Shape != Unbounded }

// Contains returns true if p lies inside the region.
func (b Bounds) Contains(p Point) bool {
	switch b.Shape {
	case Rectangular:
		return !(Less(p.X, b.Min.X) || Greater(p.X, b.Max.X) ||
			Less(p.Y, b.Min.Y) || Greater(p.Y, b.Max.Y) ||
			Less(p.Z, b.Min.Z) || Greater(p.Z, b.Max.Z))
	case Circular:
		if b.CheckZ && (Less(p.Z, b.Min.Z) || Greater(p.Z, b.Max.Z)) {
			return false
		}
		return LessEq(Point{}.DistanceXY(p.X, p.Y), b.Radius)
	}
	return true
}
