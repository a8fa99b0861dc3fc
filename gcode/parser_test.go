package gcode

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	cases := []struct {
		line string
		exp  Command
	}{
		{"G1 X10 Y10 E1 F1200", Command{Name: "G1", Params: []Word{{'X', 10}, {'Y', 10}, {'E', 1}, {'F', 1200}}}},
		{"g1 x-0.5 e.25 ; perimeter", Command{Name: "G1", Params: []Word{{'X', -0.5}, {'E', 0.25}}, Comment: "perimeter"}},
		{"G01X5", Command{Name: "G1", Params: []Word{{'X', 5}}}},
		{"G28", Command{Name: "G28"}},
		{"G92 E0", Command{Name: "G92", Params: []Word{{'E', 0}}}},
		{"G92.1", Command{Name: "G92.1"}},
		{"M83 ; relative extrusion", Command{Name: "M83", Comment: "relative extrusion"}},
		{"N12 G1 Z0.2*34", Command{Name: "G1", Params: []Word{{'Z', 0.2}}}},
		{";TYPE:WALL-OUTER", Command{Comment: "TYPE:WALL-OUTER"}},
		{"M117 Printing layer 3", Command{Name: "M117"}},
		{"T0", Command{Name: "T0"}},
	}

	for _, c := range cases {
		t.Run(c.line, func(t *testing.T) {
			cmd, err := ParseLine(c.line)
			require.NoError(t, err)
			assert.Equal(t, c.exp, cmd)
		})
	}
}

func TestParseLine_Invalid(t *testing.T) {
	_, err := ParseLine("X10 Y10")
	assert.Error(t, err)
	assert.IsType(t, &SyntaxError{}, err)
}

func TestParser_Read(t *testing.T) {
	p := NewParser(bytes.NewBufferString("G28\n\n; layer 1\nbogus\nG1 X1\n"))

	c, err := p.Read()
	require.NoError(t, err)
	assert.Equal(t, "G28", c.Name)
	assert.Equal(t, 1, p.Line())

	c, err = p.Read()
	require.NoError(t, err)
	assert.True(t, c.IsComment())
	assert.Equal(t, "layer 1", c.Comment)
	assert.Equal(t, 3, p.Line())

	_, err = p.Read()
	if assert.IsType(t, &SyntaxError{}, err) {
		assert.Equal(t, 4, err.(*SyntaxError).Line)
	}

	c, err = p.Read()
	require.NoError(t, err)
	assert.Equal(t, "G1 X1", c.String())
	assert.Equal(t, 5, p.Line())

	_, err = p.Read()
	assert.Equal(t, io.EOF, err)
}

func TestCommand_Arg(t *testing.T) {
	c, err := ParseLine("G92 X5 O1")
	require.NoError(t, err)

	ok, x := c.Arg('X')
	assert.True(t, ok)
	assert.Equal(t, 5.0, x)
	assert.True(t, c.Has('O'))
	assert.False(t, c.Has('Y'))
}

func TestCommand_String(t *testing.T) {
	c := Command{Name: "G1", Params: []Word{{'X', 1.25}, {'E', 0.0333333}}, Comment: "infill"}
	assert.Equal(t, "G1 X1.25 E0.03333 ; infill", c.String())
	assert.Equal(t, "; skirt", Command{Comment: "skirt"}.String())
}

func TestParseLine_BareAxes(t *testing.T) {
	cmd, err := ParseLine("G28 X Y")
	require.NoError(t, err)
	assert.Equal(t, Command{Name: "G28", Params: []Word{{'X', 0}, {'Y', 0}}}, cmd)
	assert.True(t, cmd.Has('Y'))
	assert.False(t, cmd.Has('Z'))
}
