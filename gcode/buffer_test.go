package gcode

import (
	"io/ioutil"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer(t *testing.T) {
	in := "N10 G1 X1.500 Y2 *35\n\n;TYPE:SKIRT\ng1 x3 e0.25 ; perimeter\nM117 Hello World\n"
	data, err := ioutil.ReadAll(NewBuffer(NewParser(strings.NewReader(in))))
	require.NoError(t, err)
	assert.Equal(t, "G1 X1.5 Y2\n; TYPE:SKIRT\nG1 X3 E0.25 ; perimeter\nM117\n", string(data))
}

func TestBufferSyntaxError(t *testing.T) {
	_, err := ioutil.ReadAll(NewBuffer(NewParser(strings.NewReader("G1 X1\n@bogus\n"))))
	assert.IsType(t, &SyntaxError{}, err)
}
