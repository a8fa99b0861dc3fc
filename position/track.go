package position

import (
	"io"

	"github.com/mastercactapus/gpos/gcode"
)

type lineReader interface {
	Line() int
}

// Track feeds every command read from r into e. fn is called with each
// position that advanced the history; returning an error from fn stops
// tracking. Lines the reader cannot tokenize are logged and skipped.
func Track(r gcode.Reader, e *Engine, fn func(Position) error) error {
	lr, _ := r.(lineReader)
	var line, n int
	for {
		cmd, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if serr, ok := err.(*gcode.SyntaxError); ok {
			e.log.Println("ERROR: parse:", serr)
			continue
		}
		if err != nil {
			return err
		}

		if lr != nil {
			line = lr.Line()
		} else {
			line++
		}
		if cmd.IsComment() {
			e.Update(cmd, line, n)
			continue
		}

		n++
		e.Update(cmd, line, n)
		if fn == nil {
			continue
		}
		err = fn(e.Current())
		if err != nil {
			return err
		}
	}
}
