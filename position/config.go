package position

import (
	"log"

	"github.com/mastercactapus/gpos/coord"
	"github.com/mastercactapus/gpos/feature"
)

// AxisMode is the default relative/absolute mode of an axis group.
type AxisMode string

const (
	Absolute AxisMode = "absolute"
	Relative AxisMode = "relative"

	// RequireExplicit leaves the mode unknown until G90/G91 (or M82/M83) is seen.
	RequireExplicit AxisMode = "require_explicit"
)

// Units is the default unit system.
type Units string

const (
	Millimeters Units = "millimeters"
	Inches      Units = "inches"
)

// DefaultDepth is the number of positions kept in history.
const DefaultDepth = 5

// Config holds the printer settings an Engine is built with. It must not be
// changed once the engine exists.
type Config struct {
	// Home coordinates applied by G28. Nil leaves the axis value untouched.
	HomeX, HomeY, HomeZ *float64

	// RetractionLength is the retraction at which the extruder is
	// considered fully retracted.
	RetractionLength float64
	ZLiftHeight      float64

	// PrimingHeight, when positive, requires the first extrusion to happen
	// below this height before layers are tracked.
	PrimingHeight      float64
	MinimumLayerHeight float64

	// G90InfluencesExtruder makes G90/G91 also set the extruder mode.
	G90InfluencesExtruder bool

	XYZAxisDefaultMode AxisMode
	EAxisDefaultMode   AxisMode
	UnitsDefault       Units

	// Bounds is the snapshot region used for IsInBounds.
	Bounds coord.Bounds

	// Dialect of slicer comments, DialectUnknown to detect.
	Dialect feature.Dialect

	// Depth of the position history, DefaultDepth if < 2.
	Depth int

	// Logger receives diagnostics, log.Default() if nil.
	Logger *log.Logger
}

// DefaultConfig returns an absolute-mode, metric, unbounded configuration
// homing to 0,0,0.
func DefaultConfig() Config {
	return Config{
		HomeX: Float(0),
		HomeY: Float(0),
		HomeZ: Float(0),

		RetractionLength:   2,
		ZLiftHeight:        0.5,
		MinimumLayerHeight: 0.05,

		XYZAxisDefaultMode: Absolute,
		EAxisDefaultMode:   Absolute,
		UnitsDefault:       Millimeters,

		Depth: DefaultDepth,
	}
}

// Float returns a pointer to v, for the optional Config fields.
func Float(v float64) *float64 { return &v }

func (cfg Config) depth() int {
	if cfg.Depth < 2 {
		return DefaultDepth
	}
	return cfg.Depth
}
