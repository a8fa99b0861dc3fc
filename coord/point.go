package coord

import (
	"math"
)

// Point is a resolved XYZ machine coordinate.
type Point struct{ X, Y, Z float64 }

// Equal reports whether p and b match within Tolerance on every axis.
func (p Point) Equal(b Point) bool {
	return IsEqual(p.X, b.X) && IsEqual(p.Y, b.Y) && IsEqual(p.Z, b.Z)
}

// Sub will subtract the target values from p.
func (p Point) Sub(target Point) Point {
	p.X -= target.X
	p.Y -= target.Y
	p.Z -= target.Z
	return p
}

// DistanceXY will return the 2D distance to p from (x,y).
func (p Point) DistanceXY(x, y float64) float64 {
	return math.Sqrt(math.Pow(x-p.X, 2) + math.Pow(y-p.Y, 2))
}
