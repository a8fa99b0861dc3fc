// Package profile loads printer profiles describing how positions are tracked.
package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/mastercactapus/gpos/coord"
	"github.com/mastercactapus/gpos/feature"
	"github.com/mastercactapus/gpos/position"
	"gopkg.in/yaml.v3"
)

// Profile is the on-disk form of a position.Config.
type Profile struct {
	Name string `toml:"name" json:"name" yaml:"name"`

	// Home coordinates applied by G28. A JSON or YAML null leaves the axis
	// untouched.
	HomeX *float64 `toml:"home_x" json:"home_x" yaml:"home_x"`
	HomeY *float64 `toml:"home_y" json:"home_y" yaml:"home_y"`
	HomeZ *float64 `toml:"home_z" json:"home_z" yaml:"home_z"`

	RetractionLength      float64 `toml:"retraction_length" json:"retraction_length" yaml:"retraction_length"`
	ZLiftHeight           float64 `toml:"z_lift_height" json:"z_lift_height" yaml:"z_lift_height"`
	PrimingHeight         float64 `toml:"priming_height" json:"priming_height" yaml:"priming_height"`
	MinimumLayerHeight    float64 `toml:"minimum_layer_height" json:"minimum_layer_height" yaml:"minimum_layer_height"`
	G90InfluencesExtruder bool    `toml:"g90_influences_extruder" json:"g90_influences_extruder" yaml:"g90_influences_extruder"`

	XYZAxisDefaultMode string `toml:"xyz_axis_default_mode" json:"xyz_axis_default_mode" yaml:"xyz_axis_default_mode"`
	EAxisDefaultMode   string `toml:"e_axis_default_mode" json:"e_axis_default_mode" yaml:"e_axis_default_mode"`
	UnitsDefault       string `toml:"units_default" json:"units_default" yaml:"units_default"`

	// Slicer selects the comment dialect: auto, off, slic3r-pe, cura or simplify3d.
	Slicer string `toml:"slicer" json:"slicer" yaml:"slicer"`

	HistoryDepth int `toml:"history_depth" json:"history_depth" yaml:"history_depth"`

	Bounds Bounds `toml:"bounds" json:"bounds" yaml:"bounds"`
}

// Bounds is the snapshot region of a profile.
type Bounds struct {
	// Shape is none, rectangular or circular.
	Shape string `toml:"shape" json:"shape" yaml:"shape"`

	XMin float64 `toml:"x_min" json:"x_min" yaml:"x_min"`
	XMax float64 `toml:"x_max" json:"x_max" yaml:"x_max"`
	YMin float64 `toml:"y_min" json:"y_min" yaml:"y_min"`
	YMax float64 `toml:"y_max" json:"y_max" yaml:"y_max"`
	ZMin float64 `toml:"z_min" json:"z_min" yaml:"z_min"`
	ZMax float64 `toml:"z_max" json:"z_max" yaml:"z_max"`

	// Radius of a circular bed. When zero, x_max is used.
	Radius float64 `toml:"radius" json:"radius" yaml:"radius"`

	// CheckZ applies z_min/z_max to circular beds.
	CheckZ bool `toml:"check_z" json:"check_z" yaml:"check_z"`
}

// Default returns the profile matching position.DefaultConfig.
func Default() *Profile {
	cfg := position.DefaultConfig()
	return &Profile{
		Name:               "default",
		HomeX:              cfg.HomeX,
		HomeY:              cfg.HomeY,
		HomeZ:              cfg.HomeZ,
		RetractionLength:   cfg.RetractionLength,
		ZLiftHeight:        cfg.ZLiftHeight,
		MinimumLayerHeight: cfg.MinimumLayerHeight,
		XYZAxisDefaultMode: string(cfg.XYZAxisDefaultMode),
		EAxisDefaultMode:   string(cfg.EAxisDefaultMode),
		UnitsDefault:       string(cfg.UnitsDefault),
		Slicer:             "auto",
		HistoryDepth:       cfg.Depth,
		Bounds:             Bounds{Shape: "none"},
	}
}

var dialects = map[string]feature.Dialect{
	"":           feature.DialectUnknown,
	"auto":       feature.DialectUnknown,
	"off":        feature.DialectOff,
	"slic3r-pe":  feature.DialectSlic3rPE,
	"cura":       feature.DialectCura,
	"simplify3d": feature.DialectSimplify3D,
}

func validMode(m string) bool {
	switch position.AxisMode(m) {
	case position.Absolute, position.Relative, position.RequireExplicit:
		return true
	}
	return false
}

// Validate checks that every field has a usable value.
func (p *Profile) Validate() error {
	if !validMode(p.XYZAxisDefaultMode) {
		return fmt.Errorf("xyz_axis_default_mode: unknown mode %q", p.XYZAxisDefaultMode)
	}
	if !validMode(p.EAxisDefaultMode) {
		return fmt.Errorf("e_axis_default_mode: unknown mode %q", p.EAxisDefaultMode)
	}
	switch position.Units(p.UnitsDefault) {
	case position.Millimeters, position.Inches:
	default:
		return fmt.Errorf("units_default: unknown units %q", p.UnitsDefault)
	}
	if _, ok := dialects[p.Slicer]; !ok {
		return fmt.Errorf("slicer: unknown slicer %q", p.Slicer)
	}
	if p.RetractionLength < 0 || p.ZLiftHeight < 0 || p.PrimingHeight < 0 || p.MinimumLayerHeight < 0 {
		return errors.New("lengths and heights must not be negative")
	}
	if p.HistoryDepth != 0 && p.HistoryDepth < 2 {
		return errors.New("history_depth must be at least 2")
	}

	b := p.Bounds
	switch b.Shape {
	case "", "none":
	case "rectangular":
		if b.XMin > b.XMax || b.YMin > b.YMax || b.ZMin > b.ZMax {
			return errors.New("bounds: min is greater than max")
		}
	case "circular":
		if b.radius() <= 0 {
			return errors.New("bounds: circular bed needs a positive radius")
		}
		if b.CheckZ && b.ZMin > b.ZMax {
			return errors.New("bounds: z_min is greater than z_max")
		}
	default:
		return fmt.Errorf("bounds: unknown shape %q", b.Shape)
	}

	return nil
}

func (b Bounds) radius() float64 {
	if b.Radius == 0 {
		return b.XMax
	}
	return b.Radius
}

func (b Bounds) bounds() coord.Bounds {
	min := coord.Point{X: b.XMin, Y: b.YMin, Z: b.ZMin}
	max := coord.Point{X: b.XMax, Y: b.YMax, Z: b.ZMax}
	switch b.Shape {
	case "rectangular":
		return coord.Box(min, max)
	case "circular":
		c := coord.Circle(b.radius())
		c.CheckZ = b.CheckZ
		c.Min, c.Max = min, max
		return c
	}
	return coord.Bounds{}
}

// Config converts p to an engine configuration.
func (p *Profile) Config() position.Config {
	return position.Config{
		HomeX:                 p.HomeX,
		HomeY:                 p.HomeY,
		HomeZ:                 p.HomeZ,
		RetractionLength:      p.RetractionLength,
		ZLiftHeight:           p.ZLiftHeight,
		PrimingHeight:         p.PrimingHeight,
		MinimumLayerHeight:    p.MinimumLayerHeight,
		G90InfluencesExtruder: p.G90InfluencesExtruder,
		XYZAxisDefaultMode:    position.AxisMode(p.XYZAxisDefaultMode),
		EAxisDefaultMode:      position.AxisMode(p.EAxisDefaultMode),
		UnitsDefault:          position.Units(p.UnitsDefault),
		Bounds:                p.Bounds.bounds(),
		Dialect:               dialects[p.Slicer],
		Depth:                 p.HistoryDepth,
	}
}

// Load reads and validates the profile at path. A missing file yields the
// default profile.
func Load(path string) (*Profile, error) {
	p, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	return p, nil
}

// loadFile decodes path based on its extension over the default profile.
func loadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}

	p := Default()
	switch filepath.Ext(path) {
	case ".toml":
		if _, err := toml.Decode(string(data), p); err != nil {
			return nil, fmt.Errorf("decode TOML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, p); err != nil {
			return nil, fmt.Errorf("decode JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, p); err != nil {
			return nil, fmt.Errorf("decode YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown profile format %q", filepath.Ext(path))
	}

	return p, nil
}
