package gcode

import "io"

// Reader is a source of commands in file order.
type Reader interface {
	Read() (Command, error)
}

// SliceReader hands out commands that were parsed elsewhere, such as the
// elements of a JSON request body. It has no file lines; Track counts them.
type SliceReader []Command

// Read removes and returns the first command, or io.EOF once empty.
func (s *SliceReader) Read() (Command, error) {
	if len(*s) == 0 {
		return Command{}, io.EOF
	}
	c := (*s)[0]
	*s = (*s)[1:]
	return c, nil
}
