package gcode

import (
	"bytes"
	"io"
)

// Buffer re-serializes the commands of a Reader, one normalized command per
// line. Comment-only lines are kept.
type Buffer struct {
	gr  Reader
	buf bytes.Buffer
	err error
}

var _ io.Reader = &Buffer{}

func NewBuffer(r Reader) *Buffer {
	return &Buffer{gr: r}
}

func (b *Buffer) Read(p []byte) (n int, err error) {
	var cmd Command
	for b.err == nil && b.buf.Len() < len(p) {
		cmd, b.err = b.gr.Read()
		if b.err != nil {
			break
		}
		if cmd.IsComment() && cmd.Comment == "" {
			continue
		}
		b.buf.WriteString(cmd.String() + "\n")
	}

	if b.buf.Len() > 0 {
		return b.buf.Read(p)
	}
	return 0, b.err
}
