// Package feature classifies the print region a command belongs to, using the
// section markers slicers write into gcode comments.
package feature

import "fmt"

// Type is a classified print feature.
type Type int

const (
	Unknown Type = iota
	Bridge
	OuterPerimeter
	UnknownPerimeter
	InnerPerimeter
	Skirt
	SolidInfill
	OozeShield
	Infill
	PrimePillar

	numTypes
)

var names = [numTypes]string{
	Unknown:          "unknown_feature",
	Bridge:           "bridge_feature",
	OuterPerimeter:   "outer_perimeter_feature",
	UnknownPerimeter: "unknown_perimeter_feature",
	InnerPerimeter:   "inner_perimeter_feature",
	Skirt:            "skirt_feature",
	SolidInfill:      "solid_infill_feature",
	OozeShield:       "ooze_shield_feature",
	Infill:           "infill_feature",
	PrimePillar:      "prime_pillar_feature",
}

// Higher is better: a snapshot taken while printing infill hides any
// artifact, one taken mid-bridge does not.
var quality = [numTypes]int{
	Unknown:          0,
	Bridge:           -1,
	OuterPerimeter:   1,
	UnknownPerimeter: 2,
	InnerPerimeter:   3,
	Skirt:            4,
	SolidInfill:      5,
	OozeShield:       6,
	Infill:           7,
	PrimePillar:      8,
}

func (t Type) valid() bool { return t >= 0 && t < numTypes }

func (t Type) String() string {
	if !t.valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return names[t]
}

// Quality returns the snapshot preference rank of t.
func (t Type) Quality() int {
	if !t.valid() {
		return quality[Unknown]
	}
	return quality[t]
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(b []byte) error {
	for i, n := range names {
		if n == string(b) {
			*t = Type(i)
			return nil
		}
	}
	return fmt.Errorf("unknown feature type %q", string(b))
}

// Best returns the candidate with the highest quality, preferring the
// earliest one on ties. It returns Unknown when called with no candidates.
func Best(types ...Type) Type {
	if len(types) == 0 {
		return Unknown
	}
	best := types[0]
	for _, t := range types[1:] {
		if t.Quality() > best.Quality() {
			best = t
		}
	}
	return best
}
