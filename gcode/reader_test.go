package gcode

import (
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceReader(t *testing.T) {
	var r SliceReader
	require.NoError(t, json.Unmarshal([]byte(`["g1 x1 e2", ";TYPE:FILL"]`), &r))

	c, err := r.Read()
	assert.NoError(t, err)
	assert.Equal(t, Command{Name: "G1", Params: []Word{{W: 'X', Arg: 1}, {W: 'E', Arg: 2}}}, c)

	c, err = r.Read()
	assert.NoError(t, err)
	assert.Equal(t, Command{Comment: "TYPE:FILL"}, c)

	c, err = r.Read()
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, Command{}, c)
	assert.Len(t, r, 0)
}

func TestSliceReader_BadCommand(t *testing.T) {
	var r SliceReader
	err := json.Unmarshal([]byte(`["G1 X1", "@bogus"]`), &r)
	assert.IsType(t, &SyntaxError{}, err)
}
