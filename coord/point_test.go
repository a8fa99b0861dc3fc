package coord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint_Sub(t *testing.T) {
	a := Point{X: 10, Y: 10, Z: 0.2}
	b := Point{X: 10, Y: 5, Z: 0.2}

	assert.Equal(t, Point{X: 0, Y: 5, Z: 0}, a.Sub(b))
}

func TestPoint_DistanceXY(t *testing.T) {
	dist := Point{X: 1, Y: 2, Z: 3}.DistanceXY(4, 5)
	assert.InEpsilon(t, 4.24264, dist, .01)
}

func TestPoint_Equal(t *testing.T) {
	assert.True(t, Point{X: 1, Y: 2, Z: 0.3}.Equal(Point{X: 1, Y: 2, Z: 0.1 + 0.2}))
	assert.False(t, Point{X: 1, Y: 2, Z: 0.3}.Equal(Point{X: 1, Y: 2, Z: 0.31}))
}

func TestTolerance(t *testing.T) {
	assert.True(t, IsZero(0.000001))
	assert.False(t, IsZero(0.00001))
	assert.True(t, GreaterEq(1, 1.000001))
	assert.False(t, Greater(1.000001, 1))
	assert.True(t, Greater(1.1, 1))
	assert.True(t, LessEq(1.000001, 1))
	assert.False(t, Less(1, 1.000001))
}
