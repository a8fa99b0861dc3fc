package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifier_Cura(t *testing.T) {
	c := NewClassifier(DialectUnknown)
	assert.Equal(t, Unknown, c.Classify(""))

	c.Comment("LAYER:0")
	assert.Equal(t, DialectUnknown, c.Dialect())

	c.Comment("TYPE:WALL-OUTER")
	assert.Equal(t, DialectCura, c.Dialect())
	assert.Equal(t, OuterPerimeterSection, c.Section())
	assert.Equal(t, OuterPerimeter, c.Classify(""))

	c.Comment("TYPE:SKIN")
	assert.Equal(t, SolidInfill, c.Classify(""))

	c.Comment("TYPE:SUPPORT")
	assert.Equal(t, NoSection, c.Section())
	assert.Equal(t, Unknown, c.Classify(""))

	c.Comment("TYPE:FILL")
	assert.Equal(t, Infill, c.Classify("perimeter"), "trailing comments are ignored once sections are known")
}

func TestClassifier_Simplify3D(t *testing.T) {
	c := NewClassifier(DialectUnknown)

	c.Comment(" feature inner perimeter")
	assert.Equal(t, DialectSimplify3D, c.Dialect())
	assert.Equal(t, InnerPerimeter, c.Classify(""))

	c.Comment("ooze shield")
	assert.Equal(t, OozeShield, c.Classify(""))

	c.Comment("bridge")
	assert.Equal(t, Bridge, c.Classify(""), "bridge overrides the section")
	assert.Equal(t, OozeShieldSection, c.Section())

	c.Comment("prime pillar")
	assert.Equal(t, PrimePillar, c.Classify(""))

	c.Comment("gap fill")
	assert.Equal(t, Unknown, c.Classify(""))

	// cura markers are not recognized once the dialect is fixed
	c.Comment("TYPE:FILL")
	assert.Equal(t, NoSection, c.Section())
}

func TestClassifier_Slic3rPE(t *testing.T) {
	c := NewClassifier(DialectUnknown)

	assert.Equal(t, UnknownPerimeter, c.Classify("move to first perimeter point"))
	assert.Equal(t, DialectSlic3rPE, c.Dialect())
	assert.Equal(t, UnknownPerimeter, c.Classify(" perimeter"))
	assert.Equal(t, Bridge, c.Classify("infill(bridge)"))
	assert.Equal(t, Skirt, c.Classify("skirt"))
	assert.Equal(t, Unknown, c.Classify("retract"))

	c.Comment("TYPE:FILL")
	assert.Equal(t, DialectSlic3rPE, c.Dialect())
	assert.Equal(t, Unknown, c.Classify(""))
}

func TestClassifier_Slic3rSupportFirst(t *testing.T) {
	c := NewClassifier(DialectUnknown)

	assert.Equal(t, Unknown, c.Classify("move to first support material point"))
	assert.Equal(t, DialectSlic3rPE, c.Dialect())
	assert.Equal(t, Unknown, c.Classify("support material"))

	// a Cura marker no longer switches dialects
	c.Comment("TYPE:FILL")
	assert.Equal(t, DialectSlic3rPE, c.Dialect())
	assert.Equal(t, Infill, c.Classify("infill"))
}

func TestClassifier_Off(t *testing.T) {
	c := NewClassifier(DialectOff)

	c.Comment("TYPE:FILL")
	assert.Equal(t, Unknown, c.Classify("infill"))
	assert.Equal(t, DialectOff, c.Dialect())
}
