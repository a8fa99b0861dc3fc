package position

import (
	"github.com/mastercactapus/gpos/coord"
	"github.com/mastercactapus/gpos/feature"
	"github.com/mastercactapus/gpos/gcode"
)

// Position is the fully resolved printer state after one command.
//
// Coordinates are machine coordinates: the gcode coordinate plus the active
// offset. A *Null flag marks a value that is not known yet.
type Position struct {
	Command gcode.Command `json:"command"`

	X     float64 `json:"x"`
	XNull bool    `json:"x_null"`
	Y     float64 `json:"y"`
	YNull bool    `json:"y_null"`
	Z     float64 `json:"z"`
	ZNull bool    `json:"z_null"`
	E     float64 `json:"e"`
	F     float64 `json:"f"`
	FNull bool    `json:"f_null"`

	XOffset float64 `json:"x_offset"`
	YOffset float64 `json:"y_offset"`
	ZOffset float64 `json:"z_offset"`
	EOffset float64 `json:"e_offset"`

	IsRelative             bool `json:"is_relative"`
	IsRelativeNull         bool `json:"is_relative_null"`
	IsExtruderRelative     bool `json:"is_extruder_relative"`
	IsExtruderRelativeNull bool `json:"is_extruder_relative_null"`
	IsMetric               bool `json:"is_metric"`
	IsMetricNull           bool `json:"is_metric_null"`

	XHomed bool `json:"x_homed"`
	YHomed bool `json:"y_homed"`
	ZHomed bool `json:"z_homed"`

	ERelative float64 `json:"e_relative"`
	ZRelative float64 `json:"z_relative"`

	RetractionLength     float64 `json:"retraction_length"`
	ExtrusionLength      float64 `json:"extrusion_length"`
	DeretractionLength   float64 `json:"deretraction_length"`
	ExtrusionLengthTotal float64 `json:"extrusion_length_total"`

	IsExtruding          bool `json:"is_extruding"`
	IsExtrudingStart     bool `json:"is_extruding_start"`
	IsRetracting         bool `json:"is_retracting"`
	IsRetractingStart    bool `json:"is_retracting_start"`
	IsPartiallyRetracted bool `json:"is_partially_retracted"`
	IsRetracted          bool `json:"is_retracted"`
	IsDeretracting       bool `json:"is_deretracting"`
	IsDeretractingStart  bool `json:"is_deretracting_start"`
	IsDeretracted        bool `json:"is_deretracted"`
	IsPrimed             bool `json:"is_primed"`

	LastExtrusionHeight     float64 `json:"last_extrusion_height"`
	LastExtrusionHeightNull bool    `json:"last_extrusion_height_null"`
	Height                  float64 `json:"height"`
	Layer                   int     `json:"layer"`
	IsLayerChange           bool    `json:"is_layer_change"`
	IsZHop                  bool    `json:"is_zhop"`
	IsPrinterPrimed         bool    `json:"is_printer_primed"`

	HasXYPositionChanged bool `json:"has_xy_position_changed"`
	HasPositionChanged   bool `json:"has_position_changed"`
	HasDefinitePosition  bool `json:"has_definite_position"`
	IsXYTravel           bool `json:"is_xy_travel"`
	IsXYZTravel          bool `json:"is_xyz_travel"`

	IsInBounds  bool         `json:"is_in_bounds"`
	FeatureType feature.Type `json:"feature_type"`

	FileLineNumber int  `json:"file_line_number"`
	GcodeNumber    int  `json:"gcode_number"`
	GcodeIgnored   bool `json:"gcode_ignored"`
	IsEmpty        bool `json:"is_empty"`
}

func initialPosition(cfg Config) Position {
	p := Position{
		XNull: true,
		YNull: true,
		ZNull: true,
		FNull: true,

		LastExtrusionHeightNull: true,
		IsInBounds:              true,
		GcodeIgnored:            true,
		IsEmpty:                 true,
	}
	p.IsRelative, p.IsRelativeNull = axisMode(cfg.XYZAxisDefaultMode)
	p.IsExtruderRelative, p.IsExtruderRelativeNull = axisMode(cfg.EAxisDefaultMode)
	switch cfg.UnitsDefault {
	case Millimeters:
		p.IsMetric = true
	case Inches:
	default:
		p.IsMetricNull = true
	}
	return p
}

func axisMode(m AxisMode) (relative, null bool) {
	switch m {
	case Absolute:
		return false, false
	case Relative:
		return true, false
	}
	return false, true
}

// resetState clears the fields that describe a single command.
func (p *Position) resetState() {
	p.ERelative = 0
	p.ZRelative = 0
	p.IsLayerChange = false
	p.IsZHop = false
	p.IsXYTravel = false
	p.IsXYZTravel = false
	p.HasPositionChanged = false
	p.HasXYPositionChanged = false
	p.FeatureType = feature.Unknown
	p.GcodeIgnored = true
	p.IsEmpty = false
}

// XYZ returns the machine coordinate.
func (p Position) XYZ() coord.Point {
	return coord.Point{X: p.X, Y: p.Y, Z: p.Z}
}

// Offset returns the active XYZ coordinate system offset.
func (p Position) Offset() coord.Point {
	return coord.Point{X: p.XOffset, Y: p.YOffset, Z: p.ZOffset}
}

// GcodeXYZ returns the coordinate as the gcode stream sees it.
func (p Position) GcodeXYZ() coord.Point {
	return p.XYZ().Sub(p.Offset())
}

// GcodeE returns the extruder position as the gcode stream sees it.
func (p Position) GcodeE() float64 {
	return p.E - p.EOffset
}
