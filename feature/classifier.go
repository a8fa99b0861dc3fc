package feature

import "strings"

// Dialect identifies the slicer comment style being processed.
type Dialect int

const (
	// DialectUnknown detects the dialect from the first recognized marker.
	DialectUnknown Dialect = iota
	DialectSlic3rPE
	DialectCura
	DialectSimplify3D

	// DialectOff disables classification.
	DialectOff
)

func (d Dialect) String() string {
	switch d {
	case DialectSlic3rPE:
		return "slic3r-pe"
	case DialectCura:
		return "cura"
	case DialectSimplify3D:
		return "simplify3d"
	case DialectOff:
		return "off"
	}
	return "unknown"
}

// Section is the slicer section the stream is currently in.
type Section int

const (
	NoSection Section = iota
	OuterPerimeterSection
	InnerPerimeterSection
	InfillSection
	SkirtSection
	SolidLayerSection
	OozeShieldSection
	PrimePillarSection
)

// section markers written on their own comment line
var (
	curaSections = map[string]Section{
		"TYPE:WALL-OUTER": OuterPerimeterSection,
		"TYPE:WALL-INNER": InnerPerimeterSection,
		"TYPE:FILL":       InfillSection,
		"TYPE:SKIRT":      SkirtSection,
		"TYPE:SKIN":       SolidLayerSection,
	}
	simplify3DSections = map[string]Section{
		"outer perimeter": OuterPerimeterSection,
		"inner perimeter": InnerPerimeterSection,
		"infill":          InfillSection,
		"skirt":           SkirtSection,
		"solid layer":     SolidLayerSection,
		"ooze shield":     OozeShieldSection,
		"prime pillar":    PrimePillarSection,
		"support":         NoSection,
		"dense support":   NoSection,
		"gap fill":        NoSection,
	}
)

// Slic3r PE labels each extrusion on the command itself.
var slic3rFeatures = map[string]Type{
	"perimeter":                          UnknownPerimeter,
	"move to first perimeter point":      UnknownPerimeter,
	"infill":                             Infill,
	"move to first infill point":         Infill,
	"infill(bridge)":                     Bridge,
	"move to first infill(bridge) point": Bridge,
	"skirt":                              Skirt,
	"move to first skirt point":          Skirt,

	// recognized, so they fix the dialect, but not ranked
	"support material":                               Unknown,
	"move to first support material point":           Unknown,
	"support material interface":                     Unknown,
	"move to first support material interface point": Unknown,
}

var (
	curaFeatures = map[Section]Type{
		OuterPerimeterSection: OuterPerimeter,
		InnerPerimeterSection: InnerPerimeter,
		InfillSection:         Infill,
		SkirtSection:          Skirt,
		SolidLayerSection:     SolidInfill,
	}
	simplify3DFeatures = map[Section]Type{
		OuterPerimeterSection: OuterPerimeter,
		InnerPerimeterSection: InnerPerimeter,
		InfillSection:         Infill,
		SkirtSection:          Skirt,
		SolidLayerSection:     SolidInfill,
		OozeShieldSection:     OozeShield,
		PrimePillarSection:    PrimePillar,
	}
)

// Classifier tracks slicer sections across comment lines and labels
// commands with a feature Type. It is not safe for concurrent use.
type Classifier struct {
	dialect Dialect
	section Section
	bridge  bool
}

// NewClassifier returns a Classifier fixed to d. Pass DialectUnknown to
// detect the dialect from the stream.
func NewClassifier(d Dialect) *Classifier {
	return &Classifier{dialect: d}
}

func (c *Classifier) Dialect() Dialect { return c.dialect }
func (c *Classifier) Section() Section { return c.section }

// Comment processes a comment-only line.
func (c *Classifier) Comment(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	switch c.dialect {
	case DialectUnknown:
		if c.curaSection(text) {
			c.dialect = DialectCura
		} else if c.simplify3DSection(text) {
			c.dialect = DialectSimplify3D
		}
	case DialectCura:
		c.curaSection(text)
	case DialectSimplify3D:
		c.simplify3DSection(text)
	}
}

func (c *Classifier) curaSection(text string) bool {
	s, ok := curaSections[text]
	if !ok {
		if c.dialect != DialectCura || !strings.HasPrefix(text, "TYPE:") {
			return false
		}
		// support, travel and other types we don't rank
		s = NoSection
	}
	c.section = s
	c.bridge = false
	return true
}

func (c *Classifier) simplify3DSection(text string) bool {
	text = strings.TrimPrefix(text, "feature ")
	if text == "bridge" {
		c.bridge = true
		return true
	}
	s, ok := simplify3DSections[text]
	if !ok {
		return false
	}
	c.section = s
	c.bridge = false
	return true
}

// Classify returns the feature of a command carrying the given trailing
// comment, given the sections seen so far.
func (c *Classifier) Classify(comment string) Type {
	switch c.dialect {
	case DialectOff:
		return Unknown
	case DialectCura, DialectSimplify3D:
		return c.fromSection()
	}

	t, ok := slic3rFeatures[strings.TrimSpace(comment)]
	if ok {
		c.dialect = DialectSlic3rPE
	}
	return t
}

func (c *Classifier) fromSection() Type {
	if c.bridge {
		return Bridge
	}
	if c.dialect == DialectCura {
		return curaFeatures[c.section]
	}
	return simplify3DFeatures[c.section]
}
