package coord

import "math"

// Tolerance is the absolute difference under which two values are
// considered equal. Slicers round E and Z to a few decimals, so exact
// float comparison would flag phantom moves.
const Tolerance = 0.000005

func IsZero(x float64) bool       { return math.Abs(x) < Tolerance }
func IsEqual(x, y float64) bool   { return math.Abs(x-y) < Tolerance }
func Greater(x, y float64) bool   { return x > y && !IsEqual(x, y) }
func GreaterEq(x, y float64) bool { return x > y || IsEqual(x, y) }
func Less(x, y float64) bool      { return x < y && !IsEqual(x, y) }
func LessEq(x, y float64) bool    { return x < y || IsEqual(x, y) }
